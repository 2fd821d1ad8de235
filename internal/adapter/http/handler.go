package httpadapter

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"admybrand-insights/internal/core/port"
)

// Handler contains dependencies and routes. It is an inbound adapter for
// HTTP: it holds the DashboardUseCase to execute business logic and a logger
// for structured logging. Routes are registered on a chi.Router for
// convenient method handling.
type Handler struct {
	svc    port.DashboardUseCase
	logger *slog.Logger
	router chi.Router
}

// NewHandler creates a handler with all routes configured. The CORS
// middleware wraps the whole router so pre-flight requests succeed on any
// path, known or not; unsupported verbs on known paths get a JSON 405.
func NewHandler(svc port.DashboardUseCase, logger *slog.Logger) *Handler {
	h := &Handler{svc: svc, logger: logger}
	r := chi.NewRouter()
	r.Use(corsMiddleware)
	r.MethodNotAllowed(h.handleMethodNotAllowed)

	r.Get("/campaigns", h.handleListCampaigns)
	r.Post("/campaigns", h.handleCreateCampaign)
	r.Get("/campaigns/{id}", h.handleGetCampaign)
	r.Put("/campaigns/{id}", h.handleUpdateCampaign)
	r.Delete("/campaigns/{id}", h.handleDeleteCampaign)

	r.Get("/orders", h.handleListOrders)
	r.Post("/orders", h.handleCreateOrder)

	r.Get("/products", h.handleListProducts)
	r.Post("/products", h.handleCreateProduct)

	r.Get("/metrics", h.handleGetMetrics)
	r.Get("/stats/overview", h.handleStatsOverview)

	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

func (h *Handler) handleMethodNotAllowed(w http.ResponseWriter, _ *http.Request) {
	h.writeMessage(w, http.StatusMethodNotAllowed, "Method not allowed")
}
