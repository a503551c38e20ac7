package http

import (
	"net/http"

	"github.com/dmitrijs2005/artspace/internal/domain"
)

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type meResponse struct {
	User *domain.User `json:"user"`
}

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var input registerRequest
	if !decodeJSON(w, r, &input) {
		return
	}

	u, err := h.session(r).Register(r.Context(), input.Username, input.Email, input.Password)
	if err != nil {
		h.fail(w, r, "register", err)
		return
	}

	writeJSON(w, http.StatusCreated, meResponse{User: u})
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var input loginRequest
	if !decodeJSON(w, r, &input) {
		return
	}

	u, err := h.session(r).Login(r.Context(), input.Username, input.Password)
	if err != nil {
		h.fail(w, r, "login", err)
		return
	}

	writeJSON(w, http.StatusOK, meResponse{User: u})
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	h.session(r).Logout(r.Context())
	w.WriteHeader(http.StatusNoContent)
}

// Me returns the signed-in user, or {"user":null} for anonymous profiles.
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	u := h.actor(r)
	if u == nil {
		writeJSON(w, http.StatusOK, meResponse{})
		return
	}
	writeJSON(w, http.StatusOK, meResponse{User: u})
}

func (h *Handler) Profile(w http.ResponseWriter, r *http.Request) {
	p, err := h.gallery.Profile(r.Context(), h.actor(r))
	if err != nil {
		h.fail(w, r, "profile", err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}
