package domain

import (
	"errors"
	"fmt"
	"net/http"
)

// Sentinel errors for domain-level error discrimination.
// Services wrap these so handlers can map to HTTP status codes without leaking infrastructure details.
var (
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrBadRequest   = errors.New("bad request")
)

// DeliveryError is a push delivery failure carrying the HTTP status returned
// by the push service, so the broadcaster can tell a dead endpoint from a
// transient outage.
type DeliveryError struct {
	StatusCode int
}

func (e *DeliveryError) Error() string {
	return fmt.Sprintf("push service returned status %d", e.StatusCode)
}

// Permanent reports whether the endpoint is gone for good. The push protocol
// signals that with 400, 404 or 410; everything else (5xx, 429, timeouts) is
// transient and the subscription must be kept.
func (e *DeliveryError) Permanent() bool {
	switch e.StatusCode {
	case http.StatusBadRequest, http.StatusNotFound, http.StatusGone:
		return true
	}
	return false
}
