package handler

import (
	"encoding/json"
	"net/http"

	"github.com/ainame-auth/internal/application/session"
	"github.com/ainame-auth/internal/domain"
	"github.com/ainame-auth/internal/pkg/validate"
	"github.com/ainame-auth/internal/transport/http/middleware"
)

// SessionHandler handles login, token refresh and current-user endpoints.
type SessionHandler struct {
	svc session.Service
}

func NewSessionHandler(svc session.Service) *SessionHandler {
	return &SessionHandler{svc: svc}
}

func (h *SessionHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req domain.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	pair, err := h.svc.Login(r.Context(), req)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, pair)
}

// Refresh runs behind RequireRefresh and returns a new access token.
func (h *SessionHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	uid, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	upd, err := h.svc.Refresh(r.Context(), uid)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, upd)
}

// GetCurrent runs behind RequireAccess and returns the caller's user record.
func (h *SessionHandler) GetCurrent(w http.ResponseWriter, r *http.Request) {
	uid, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusForbidden, "forbidden")
		return
	}
	u, err := h.svc.GetCurrent(r.Context(), uid)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, u)
}
