package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"admybrand-insights/internal/core/domain"
)

func (h *Handler) handleListOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.svc.ListOrders(r.Context())
	if err != nil {
		h.logger.Error("list orders error", slog.Any("error", err))
		h.writeMessage(w, http.StatusInternalServerError, "Failed to fetch orders")
		return
	}
	if orders == nil {
		orders = []domain.Order{}
	}
	h.writeJSON(w, http.StatusOK, orders)
}

func (h *Handler) handleCreateOrder(w http.ResponseWriter, r *http.Request) {
	var payload domain.InsertOrder
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		h.writeMessage(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	order, err := h.svc.CreateOrder(r.Context(), payload)
	if errors.Is(err, domain.ErrInvalidStatus) {
		h.writeMessage(w, http.StatusBadRequest, "Invalid order status")
		return
	}
	if err != nil {
		h.logger.Error("create order error", slog.Any("error", err))
		h.writeMessage(w, http.StatusInternalServerError, "Failed to create order")
		return
	}
	h.writeJSON(w, http.StatusCreated, order)
}
