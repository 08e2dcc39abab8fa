package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/bank-intelligence-api/internal/domain"
	"github.com/vfg2006/bank-intelligence-api/internal/usecases/insighting"
	"github.com/vfg2006/bank-intelligence-api/pkg/apiErrors"
)

func InsightList(service insighting.Insighter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		filters := &domain.InsightFilters{
			CustomerID: r.URL.Query().Get("customer_id"),
		}

		if raw := r.URL.Query().Get("status"); raw != "" {
			status := domain.InsightStatus(raw)
			filters.Status = &status
		}

		if raw := r.URL.Query().Get("type"); raw != "" {
			insightType := domain.InsightType(raw)
			filters.Type = &insightType
		}

		if raw := r.URL.Query().Get("limit"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "limit deve ser um inteiro", nil)
				return
			}
			filters.Limit = parsed
		}

		insights, err := service.ListInsights(filters)
		if err != nil {
			logrus.Error("Error listing insights:", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao consultar insights no banco de dados", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")

		if err := json.NewEncoder(w).Encode(insights); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

// GenerateInsights dispara uma rodada de geração de insights de portfólio.
// Com o provedor de IA desabilitado a resposta é uma lista vazia
func GenerateInsights(service insighting.Insighter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GenerateInsights")

		insights, err := service.GenerateInsights(r.Context())
		if err != nil {
			logrus.Error("Error generating insights:", err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao gerar insights de portfólio", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")

		if err := json.NewEncoder(w).Encode(insights); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

func UpdateInsightStatus(service insighting.Insighter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - UpdateInsightStatus")

		w.Header().Set("Content-Type", "application/json")

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do insight é obrigatório", nil)
			return
		}

		var updateRequest domain.UpdateInsightStatusRequest
		if err := json.NewDecoder(r.Body).Decode(&updateRequest); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido: "+err.Error(), nil)
			return
		}

		updateRequest.ID = id

		if err := service.UpdateInsightStatus(&updateRequest); err != nil {
			if errors.Is(err, insighting.ErrInvalidInsightStatus) {
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
				return
			}

			logrus.Error("Error updating insight status:", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao atualizar status do insight", nil)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})
}
