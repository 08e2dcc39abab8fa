package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/bank-intelligence-api/internal/domain"
	"github.com/vfg2006/bank-intelligence-api/internal/usecases/scoring"
	"github.com/vfg2006/bank-intelligence-api/pkg/apiErrors"
)

// AssessCustomerRisk avalia o risco de um único cliente. A avaliação usa IA
// quando disponível; caso contrário cai para as regras determinísticas
func AssessCustomerRisk(service scoring.RiskScorer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - AssessCustomerRisk")

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do cliente é obrigatório", nil)
			return
		}

		assessment, err := service.AssessCustomer(r.Context(), id)
		if err != nil {
			if errors.Is(err, scoring.ErrCustomerNotFound) {
				apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, "Cliente não encontrado", nil)
				return
			}

			logrus.Error("Error assessing customer risk:", err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao avaliar risco do cliente", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")

		if err := json.NewEncoder(w).Encode(assessment); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

// RunBatchRiskAnalysis avalia a carteira em lote, estritamente em sequência e
// limitada aos primeiros clientes da listagem
func RunBatchRiskAnalysis(service scoring.RiskScorer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RunBatchRiskAnalysis")

		assessments, err := service.AnalyzeBatch(r.Context())
		if err != nil {
			logrus.Error("Error running batch risk analysis:", err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao executar análise de risco em lote", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")

		if err := json.NewEncoder(w).Encode(assessments); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

func RiskAssessmentList(service scoring.RiskScorer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var status *domain.RiskAssessmentStatus
		if raw := r.URL.Query().Get("status"); raw != "" {
			parsed := domain.RiskAssessmentStatus(raw)
			status = &parsed
		}

		limit := 0
		if raw := r.URL.Query().Get("limit"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "limit deve ser um inteiro", nil)
				return
			}
			limit = parsed
		}

		assessments, err := service.ListAssessments(status, r.URL.Query().Get("customer_id"), limit)
		if err != nil {
			logrus.Error("Error listing risk assessments:", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao consultar avaliações de risco", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")

		if err := json.NewEncoder(w).Encode(assessments); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

// UpdateRiskAssessmentStatus é a única mutação permitida sobre uma avaliação
func UpdateRiskAssessmentStatus(service scoring.RiskScorer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - UpdateRiskAssessmentStatus")

		w.Header().Set("Content-Type", "application/json")

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da avaliação é obrigatório", nil)
			return
		}

		var updateRequest domain.UpdateRiskAssessmentStatusRequest
		if err := json.NewDecoder(r.Body).Decode(&updateRequest); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido: "+err.Error(), nil)
			return
		}

		updateRequest.ID = id

		if err := service.UpdateAssessmentStatus(&updateRequest); err != nil {
			if errors.Is(err, scoring.ErrInvalidStatus) {
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
				return
			}

			logrus.Error("Error updating risk assessment status:", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao atualizar status da avaliação", nil)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})
}
