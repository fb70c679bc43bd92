package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/ordersaga/choreography/product-validation-service/application"
	"github.com/ordersaga/choreography/product-validation-service/domain"
	"github.com/pkg/errors"
)

// ValidationHandlers contains validation HTTP handlers
type ValidationHandlers struct {
	getValidation *application.GetValidation
}

// NewValidationHandlers creates new validation handlers
func NewValidationHandlers(getValidation *application.GetValidation) *ValidationHandlers {
	return &ValidationHandlers{
		getValidation: getValidation,
	}
}

// GetValidation handles validation retrieval requests
func (h *ValidationHandlers) GetValidation(w http.ResponseWriter, r *http.Request) {
	query := &application.GetValidationQuery{
		OrderID:       r.URL.Query().Get("orderId"),
		TransactionID: r.URL.Query().Get("transactionId"),
	}

	response, err := h.getValidation.Execute(r.Context(), query)
	if err != nil {
		switch {
		case errors.Is(err, application.ErrEmptyFilters):
			http.Error(w, err.Error(), http.StatusBadRequest)
		case errors.Is(err, domain.ErrValidationNotFound):
			http.Error(w, "Validation not found by orderId and transactionId.", http.StatusNotFound)
		default:
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

// RegisterRoutes registers validation routes
func (h *ValidationHandlers) RegisterRoutes(r chi.Router) {
	r.Route("/api/validation", func(r chi.Router) {
		r.Get("/", h.GetValidation)
	})
}
