package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/bank-intelligence-api/internal/domain"
	"github.com/vfg2006/bank-intelligence-api/internal/usecases/customer"
	"github.com/vfg2006/bank-intelligence-api/internal/usecases/insighting"
	"github.com/vfg2006/bank-intelligence-api/pkg/apiErrors"
)

func CustomerList(service customer.CustomerService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		filters := &domain.CustomerFilters{
			Region:  r.URL.Query().Get("region"),
			OrderBy: r.URL.Query().Get("order_by"),
		}

		if kycStatus := r.URL.Query().Get("kyc_status"); kycStatus != "" {
			status := domain.KYCStatus(kycStatus)
			filters.KYCStatus = &status
		}

		if minRisk := r.URL.Query().Get("min_risk"); minRisk != "" {
			parsed, err := strconv.ParseFloat(minRisk, 64)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "min_risk deve ser um número", nil)
				return
			}
			filters.MinRisk = &parsed
		}

		if limit := r.URL.Query().Get("limit"); limit != "" {
			parsed, err := strconv.Atoi(limit)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "limit deve ser um inteiro", nil)
				return
			}
			filters.Limit = parsed
		}

		customers, err := service.ListCustomers(filters)
		if err != nil {
			logrus.Error("Error listing customers:", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao consultar clientes no banco de dados", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")

		if err := json.NewEncoder(w).Encode(customers); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

func GetCustomer(service customer.CustomerService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do cliente é obrigatório", nil)
			return
		}

		found, err := service.GetCustomer(id)
		if err != nil {
			if errors.Is(err, customer.ErrCustomerNotFound) {
				apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, "Cliente não encontrado", nil)
				return
			}

			logrus.Error("Error getting customer:", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao consultar cliente no banco de dados", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")

		if err := json.NewEncoder(w).Encode(found); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

func UpdateCustomer(service customer.CustomerService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - UpdateCustomer")

		w.Header().Set("Content-Type", "application/json")

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do cliente é obrigatório", nil)
			return
		}

		var updateRequest domain.UpdateCustomerRequest
		if err := json.NewDecoder(r.Body).Decode(&updateRequest); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido: "+err.Error(), nil)
			return
		}

		// Garante que o ID da URL seja usado
		updateRequest.ID = id

		if err := service.UpdateCustomer(&updateRequest); err != nil {
			logrus.Error("Error updating customer:", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao atualizar cliente", nil)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})
}

func CustomerTransactions(service customer.CustomerService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do cliente é obrigatório", nil)
			return
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

		transactions, err := service.ListCustomerTransactions(id, limit)
		if err != nil {
			logrus.Error("Error listing customer transactions:", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao consultar transações no banco de dados", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")

		if err := json.NewEncoder(w).Encode(transactions); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

func CustomerInteractions(service customer.CustomerService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do cliente é obrigatório", nil)
			return
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

		interactions, err := service.ListCustomerInteractions(id, limit)
		if err != nil {
			logrus.Error("Error listing customer interactions:", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao consultar interações no banco de dados", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")

		if err := json.NewEncoder(w).Encode(interactions); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

// RecommendProducts gera ofertas de produto para o cliente via IA. Quando o
// provedor está desabilitado a resposta é uma lista vazia, não um erro
func RecommendProducts(service insighting.Insighter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RecommendProducts")

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do cliente é obrigatório", nil)
			return
		}

		recommendations, err := service.RecommendProducts(r.Context(), id)
		if err != nil {
			if errors.Is(err, insighting.ErrCustomerNotFound) {
				apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, "Cliente não encontrado", nil)
				return
			}

			logrus.Error("Error recommending products:", err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao gerar recomendações de produto", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")

		if err := json.NewEncoder(w).Encode(recommendations); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}
