package insighting

import "errors"

var (
	ErrCustomerNotFound     = errors.New("cliente não encontrado")
	ErrInvalidInsightStatus = errors.New("status de insight inválido")
)
