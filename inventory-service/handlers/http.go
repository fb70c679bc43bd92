package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/ordersaga/choreography/inventory-service/application"
	"github.com/ordersaga/choreography/inventory-service/domain"
	"github.com/pkg/errors"
)

// InventoryHandlers contains inventory HTTP handlers
type InventoryHandlers struct {
	getInventory *application.GetInventory
}

// NewInventoryHandlers creates new inventory handlers
func NewInventoryHandlers(getInventory *application.GetInventory) *InventoryHandlers {
	return &InventoryHandlers{
		getInventory: getInventory,
	}
}

// GetInventory handles availability requests for one product
func (h *InventoryHandlers) GetInventory(w http.ResponseWriter, r *http.Request) {
	productCode := chi.URLParam(r, "productCode")

	response, err := h.getInventory.ByProductCode(r.Context(), productCode)
	if err != nil {
		if errors.Is(err, domain.ErrInventoryNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

// GetOrderInventory handles requests for the lines recorded by one saga attempt
func (h *InventoryHandlers) GetOrderInventory(w http.ResponseWriter, r *http.Request) {
	items, err := h.getInventory.ByOrder(r.Context(), r.URL.Query().Get("orderId"), r.URL.Query().Get("transactionId"))
	if err != nil {
		if errors.Is(err, application.ErrEmptyFilters) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(items)
}

// RegisterRoutes registers inventory routes
func (h *InventoryHandlers) RegisterRoutes(r chi.Router) {
	r.Route("/api/inventory", func(r chi.Router) {
		r.Get("/order", h.GetOrderInventory)
		r.Get("/{productCode}", h.GetInventory)
	})
}
