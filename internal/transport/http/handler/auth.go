package handler

import (
	"encoding/json"
	"net/http"

	"github.com/ainame-auth/internal/application/auth"
	"github.com/ainame-auth/internal/domain"
	"github.com/ainame-auth/internal/pkg/validate"
)

// AuthHandler handles verification code and registration endpoints.
type AuthHandler struct {
	svc auth.Service
}

func NewAuthHandler(svc auth.Service) *AuthHandler { return &AuthHandler{svc: svc} }

type codeQuery struct {
	Email string `validate:"required,email"`
}

// RequestCode handles GET /auth/code?email=.
func (h *AuthHandler) RequestCode(w http.ResponseWriter, r *http.Request) {
	q := codeQuery{Email: r.URL.Query().Get("email")}
	if err := validate.Struct(q); err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	if err := h.svc.RequestCode(r.Context(), q.Email); err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, MessageEnvelope{Message: "verification code sent"})
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req domain.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	if _, err := h.svc.Register(r.Context(), req); err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, MessageEnvelope{Message: "registered"})
}
