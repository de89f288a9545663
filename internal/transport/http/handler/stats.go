package handler

import (
	"net/http"

	"github.com/hackforge-dev/admin-api/internal/application/stats"
)

// StatsHandler serves the admin dashboard counters.
type StatsHandler struct {
	svc stats.Service
}

func NewStatsHandler(svc stats.Service) *StatsHandler { return &StatsHandler{svc: svc} }

func (h *StatsHandler) AnnouncementTotal(w http.ResponseWriter, r *http.Request) {
	total, err := h.svc.AnnouncementTotal(r.Context())
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, AnnouncementStatsEnvelope{TotalAnnouncements: total})
}

func (h *StatsHandler) UserTotal(w http.ResponseWriter, r *http.Request) {
	total, err := h.svc.UserTotal(r.Context())
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, UserStatsEnvelope{TotalUsers: total})
}
