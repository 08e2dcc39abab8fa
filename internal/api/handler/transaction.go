package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/bank-intelligence-api/internal/domain"
	"github.com/vfg2006/bank-intelligence-api/internal/usecases/customer"
	"github.com/vfg2006/bank-intelligence-api/pkg/apiErrors"
	"github.com/vfg2006/bank-intelligence-api/pkg/utils"
)

func TransactionList(service customer.CustomerService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		filters := &domain.TransactionFilters{
			CustomerID: r.URL.Query().Get("customer_id"),
		}

		if transactionType := r.URL.Query().Get("type"); transactionType != "" {
			parsed := domain.TransactionType(transactionType)
			filters.Type = &parsed
		}

		if since := r.URL.Query().Get("since"); since != "" {
			parsed, err := utils.ParseDate(since)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "since deve estar no formato AAAA-MM-DD", nil)
				return
			}
			filters.Since = parsed
		}

		if limit := r.URL.Query().Get("limit"); limit != "" {
			parsed, err := strconv.Atoi(limit)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "limit deve ser um inteiro", nil)
				return
			}
			filters.Limit = parsed
		}

		transactions, err := service.ListTransactions(filters)
		if err != nil {
			logrus.Error("Error listing transactions:", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao consultar transações no banco de dados", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")

		if err := json.NewEncoder(w).Encode(transactions); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}
