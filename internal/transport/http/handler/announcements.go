package handler

import (
	"encoding/json"
	"net/http"

	"github.com/hackforge-dev/admin-api/internal/application/announcement"
	"github.com/hackforge-dev/admin-api/internal/domain"
	"github.com/hackforge-dev/admin-api/internal/transport/http/middleware"
)

// AnnouncementHandler handles announcement endpoints.
type AnnouncementHandler struct {
	svc announcement.Service
}

func NewAnnouncementHandler(svc announcement.Service) *AnnouncementHandler {
	return &AnnouncementHandler{svc: svc}
}

// Create persists a new announcement and broadcasts it. The 201 confirms the
// write, not delivery.
func (h *AnnouncementHandler) Create(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	var req domain.CreateAnnouncementRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	created, err := h.svc.Create(r.Context(), req, claims.UserID)
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// Delete removes the announcement named by the id query parameter.
func (h *AnnouncementHandler) Delete(w http.ResponseWriter, r *http.Request) {
	announcementID := r.URL.Query().Get("id")
	if announcementID == "" {
		writeError(w, http.StatusBadRequest, "announcement id is required")
		return
	}
	deleted, err := h.svc.Delete(r.Context(), announcementID)
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, DeletedAnnouncementEnvelope{
		Message: "announcement deleted successfully",
		Deleted: deleted,
	})
}

func (h *AnnouncementHandler) List(w http.ResponseWriter, r *http.Request) {
	announcements, err := h.svc.List(r.Context())
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, announcements)
}
