package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/hackforge-dev/admin-api/internal/domain"
)

// MessageEnvelope is the generic response wrapper.
type MessageEnvelope struct {
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

// DeletedAnnouncementEnvelope wraps the delete-announcement response.
type DeletedAnnouncementEnvelope struct {
	Message string               `json:"message"`
	Deleted *domain.Announcement `json:"deleted_announcement"`
}

// AnnouncementStatsEnvelope wraps the dashboard announcement counter.
type AnnouncementStatsEnvelope struct {
	TotalAnnouncements int `json:"total_announcements"`
}

// UserStatsEnvelope wraps the dashboard user counter.
type UserStatsEnvelope struct {
	TotalUsers int `json:"total_users"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, MessageEnvelope{Error: msg})
}

// httpError maps domain sentinel errors to HTTP status codes. Anything
// unrecognized is an internal error and the message is not leaked.
func httpError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrBadRequest):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, err.Error())
	case errors.Is(err, domain.ErrForbidden):
		writeError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, domain.ErrConflict):
		writeError(w, http.StatusConflict, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}
