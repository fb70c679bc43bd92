package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/ordersaga/choreography/order-service/application"
	"github.com/ordersaga/choreography/order-service/domain"
	"github.com/pkg/errors"
)

// OrderHandlers contains order and saga audit HTTP handlers
type OrderHandlers struct {
	createOrder *application.CreateOrder
	getOrder    *application.GetOrder
	getEvents   *application.GetEvents
}

// NewOrderHandlers creates new order handlers
func NewOrderHandlers(
	createOrder *application.CreateOrder,
	getOrder *application.GetOrder,
	getEvents *application.GetEvents,
) *OrderHandlers {
	return &OrderHandlers{
		createOrder: createOrder,
		getOrder:    getOrder,
		getEvents:   getEvents,
	}
}

// CreateOrder handles order creation requests
func (h *OrderHandlers) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var cmd application.CreateOrderCommand
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	response, err := h.createOrder.Execute(r.Context(), &cmd)
	if err != nil {
		if errors.Is(err, domain.ErrNoProducts) || errors.Is(err, domain.ErrInvalidLine) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, response)
}

// GetOrder handles order retrieval requests
func (h *OrderHandlers) GetOrder(w http.ResponseWriter, r *http.Request) {
	order, err := h.getOrder.Execute(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, domain.ErrOrderNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, order)
}

// GetEvent returns the latest saga event of an order or a transaction
func (h *OrderHandlers) GetEvent(w http.ResponseWriter, r *http.Request) {
	filters := application.EventFilters{
		OrderID:       r.URL.Query().Get("orderId"),
		TransactionID: r.URL.Query().Get("transactionId"),
	}

	event, err := h.getEvents.FindByFilters(r.Context(), filters)
	if err != nil {
		switch {
		case errors.Is(err, application.ErrEmptyFilters):
			http.Error(w, err.Error(), http.StatusBadRequest)
		case errors.Is(err, application.ErrEventNotFoundByOrderID),
			errors.Is(err, application.ErrEventNotFoundByTransactionID):
			http.Error(w, err.Error(), http.StatusNotFound)
		default:
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	writeJSON(w, http.StatusOK, event)
}

// GetAllEvents lists every saga event, most recent first
func (h *OrderHandlers) GetAllEvents(w http.ResponseWriter, r *http.Request) {
	all, err := h.getEvents.FindAll(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, all)
}

// RegisterRoutes registers order and event routes
func (h *OrderHandlers) RegisterRoutes(r chi.Router) {
	r.Route("/api/order", func(r chi.Router) {
		r.Post("/", h.CreateOrder)
		r.Get("/{id}", h.GetOrder)
	})
	r.Route("/api/event", func(r chi.Router) {
		r.Get("/", h.GetEvent)
		r.Get("/all", h.GetAllEvents)
	})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
