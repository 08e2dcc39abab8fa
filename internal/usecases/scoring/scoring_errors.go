package scoring

import "errors"

var (
	ErrCustomerNotFound = errors.New("cliente não encontrado")
	ErrInvalidStatus    = errors.New("status de avaliação inválido")
)
