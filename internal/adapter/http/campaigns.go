package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"admybrand-insights/internal/core/domain"
)

// handleListCampaigns returns all campaigns. An optional `status` query
// parameter narrows the list to one lifecycle state.
func (h *Handler) handleListCampaigns(w http.ResponseWriter, r *http.Request) {
	campaigns, err := h.svc.ListCampaigns(r.Context(), r.URL.Query().Get("status"))
	if err != nil {
		h.logger.Error("list campaigns error", slog.Any("error", err))
		h.writeMessage(w, http.StatusInternalServerError, "Failed to fetch campaigns")
		return
	}
	if campaigns == nil {
		campaigns = []domain.Campaign{}
	}
	h.writeJSON(w, http.StatusOK, campaigns)
}

// handleCreateCampaign creates a campaign from the JSON body and returns it
// with 201. Undecodable bodies and invalid status values produce 400.
func (h *Handler) handleCreateCampaign(w http.ResponseWriter, r *http.Request) {
	var payload domain.InsertCampaign
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		h.writeMessage(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	campaign, err := h.svc.CreateCampaign(r.Context(), payload)
	if errors.Is(err, domain.ErrInvalidStatus) {
		h.writeMessage(w, http.StatusBadRequest, "Invalid campaign status")
		return
	}
	if err != nil {
		h.logger.Error("create campaign error", slog.Any("error", err))
		h.writeMessage(w, http.StatusInternalServerError, "Failed to create campaign")
		return
	}
	h.writeJSON(w, http.StatusCreated, campaign)
}

func (h *Handler) handleGetCampaign(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		h.writeMessage(w, http.StatusBadRequest, "Invalid campaign ID")
		return
	}
	campaign, err := h.svc.GetCampaign(r.Context(), id)
	if err != nil {
		h.logger.Error("get campaign error", slog.Any("error", err))
		h.writeMessage(w, http.StatusInternalServerError, "Failed to fetch campaign")
		return
	}
	if campaign == nil {
		h.writeMessage(w, http.StatusNotFound, "Campaign not found")
		return
	}
	h.writeJSON(w, http.StatusOK, campaign)
}

func (h *Handler) handleUpdateCampaign(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		h.writeMessage(w, http.StatusBadRequest, "Invalid campaign ID")
		return
	}
	var patch domain.CampaignPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		h.writeMessage(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	campaign, err := h.svc.UpdateCampaign(r.Context(), id, patch)
	if errors.Is(err, domain.ErrInvalidStatus) {
		h.writeMessage(w, http.StatusBadRequest, "Invalid campaign status")
		return
	}
	if err != nil {
		h.logger.Error("update campaign error", slog.Any("error", err))
		h.writeMessage(w, http.StatusInternalServerError, "Failed to update campaign")
		return
	}
	if campaign == nil {
		h.writeMessage(w, http.StatusNotFound, "Campaign not found")
		return
	}
	h.writeJSON(w, http.StatusOK, campaign)
}

func (h *Handler) handleDeleteCampaign(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		h.writeMessage(w, http.StatusBadRequest, "Invalid campaign ID")
		return
	}
	deleted, err := h.svc.DeleteCampaign(r.Context(), id)
	if err != nil {
		h.logger.Error("delete campaign error", slog.Any("error", err))
		h.writeMessage(w, http.StatusInternalServerError, "Failed to delete campaign")
		return
	}
	if !deleted {
		h.writeMessage(w, http.StatusNotFound, "Campaign not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
