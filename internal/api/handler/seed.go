package handler

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/bank-intelligence-api/internal/usecases/seeding"
	"github.com/vfg2006/bank-intelligence-api/pkg/apiErrors"
)

// RunSeed dispara uma carga de dados sintéticos. Corpo vazio usa os padrões
// da configuração; a semente efetiva volta na resposta
func RunSeed(service seeding.Seeder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RunSeed")

		var opts seeding.Options
		if err := json.NewDecoder(r.Body).Decode(&opts); err != nil && err != io.EOF {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido: "+err.Error(), nil)
			return
		}

		result, err := service.Seed(r.Context(), opts)
		if err != nil {
			logrus.Error("Error seeding data:", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao inserir dados sintéticos", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")

		if err := json.NewEncoder(w).Encode(result); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}
