package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"admybrand-insights/internal/core/domain"
)

func (h *Handler) handleListProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.svc.ListProducts(r.Context())
	if err != nil {
		h.logger.Error("list products error", slog.Any("error", err))
		h.writeMessage(w, http.StatusInternalServerError, "Failed to fetch products")
		return
	}
	if products == nil {
		products = []domain.Product{}
	}
	h.writeJSON(w, http.StatusOK, products)
}

func (h *Handler) handleCreateProduct(w http.ResponseWriter, r *http.Request) {
	var payload domain.InsertProduct
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		h.writeMessage(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	product, err := h.svc.CreateProduct(r.Context(), payload)
	if errors.Is(err, domain.ErrInvalidStatus) {
		h.writeMessage(w, http.StatusBadRequest, "Invalid product status")
		return
	}
	if err != nil {
		h.logger.Error("create product error", slog.Any("error", err))
		h.writeMessage(w, http.StatusInternalServerError, "Failed to create product")
		return
	}
	h.writeJSON(w, http.StatusCreated, product)
}
