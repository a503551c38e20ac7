package http

import (
	"net/http"

	"github.com/dmitrijs2005/artspace/internal/community"
	"github.com/dmitrijs2005/artspace/internal/gallery"
	"github.com/dmitrijs2005/artspace/internal/validator"
)

const (
	tabCurated   = "curated"
	tabCommunity = "community"
)

type submitRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	// Image is an http(s) URL or a data: URL with the uploaded file.
	Image string `json:"image"`
}

type listResponse struct {
	Tab      string         `json:"tab"`
	Artworks []gallery.Card `json:"artworks"`
}

// List serves the gallery home; tab defaults to curated.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	tab := r.URL.Query().Get("tab")
	actor := h.actor(r)

	var cards []gallery.Card
	switch tab {
	case "", tabCurated:
		tab = tabCurated
		cards = h.gallery.Curated(r.Context(), actor)
	case tabCommunity:
		cards = h.gallery.Community(r.Context(), actor)
	default:
		writeValidationErrors(w, validator.ValidationErrors{"tab": "Tab must be curated or community"})
		return
	}

	writeJSON(w, http.StatusOK, listResponse{Tab: tab, Artworks: cards})
}

// Detail always answers 200; unknown ids resolve to placeholder artworks.
func (h *Handler) Detail(w http.ResponseWriter, r *http.Request) {
	card := h.gallery.Detail(r.Context(), h.actor(r), r.PathValue("id"))
	writeJSON(w, http.StatusOK, card)
}

func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	var input submitRequest
	if !decodeJSON(w, r, &input) {
		return
	}

	card, err := h.gallery.Submit(r.Context(), h.actor(r), community.SubmitInput{
		Title:       input.Title,
		Description: input.Description,
		ImageURL:    input.Image,
	})
	if err != nil {
		h.fail(w, r, "submit", err)
		return
	}

	writeJSON(w, http.StatusCreated, card)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.gallery.Delete(r.Context(), h.actor(r), r.PathValue("id")); err != nil {
		h.fail(w, r, "delete", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) Like(w http.ResponseWriter, r *http.Request) {
	res, err := h.gallery.Like(r.Context(), h.actor(r), r.PathValue("id"))
	if err != nil {
		h.fail(w, r, "like", err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (h *Handler) Share(w http.ResponseWriter, r *http.Request) {
	card := h.gallery.Detail(r.Context(), h.actor(r), r.PathValue("id"))
	writeJSON(w, http.StatusOK, gallery.ShareOf(card.Artwork, baseURL(r)))
}

func baseURL(r *http.Request) string {
	scheme := "http"
	if r.TLS != nil || r.Header.Get("X-Forwarded-Proto") == "https" {
		scheme = "https"
	}
	return scheme + "://" + r.Host
}
