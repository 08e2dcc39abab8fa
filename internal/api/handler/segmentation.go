package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/bank-intelligence-api/internal/usecases/segmenting"
	"github.com/vfg2006/bank-intelligence-api/pkg/apiErrors"
)

func SegmentList(service segmenting.Segmenter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		segments, err := service.ListSegments()
		if err != nil {
			logrus.Error("Error listing segments:", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao consultar segmentos no banco de dados", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")

		if err := json.NewEncoder(w).Encode(segments); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

func SegmentMembers(service segmenting.Segmenter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do segmento é obrigatório", nil)
			return
		}

		assignments, err := service.ListSegmentMembers(id)
		if err != nil {
			logrus.Error("Error listing segment members:", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao consultar membros do segmento", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")

		if err := json.NewEncoder(w).Encode(assignments); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

// RefreshSegments recalcula a segmentação da carteira inteira. A resposta
// informa a origem do resultado: refinado por IA ou pelas regras fixas
func RefreshSegments(service segmenting.Segmenter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RefreshSegments")

		response, err := service.RefreshSegments(r.Context())
		if err != nil {
			logrus.Error("Error refreshing segments:", err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao recalcular a segmentação", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")

		if err := json.NewEncoder(w).Encode(response); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}
