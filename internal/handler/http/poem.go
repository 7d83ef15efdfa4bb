package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/MKhiriev/poem-catalog/internal/logger"
	"github.com/MKhiriev/poem-catalog/internal/utils"
	"github.com/MKhiriev/poem-catalog/models"
	"github.com/go-chi/chi/v5"
)

// listPoems returns the catalog, optionally filtered by exactly one of the
// `tag`, `dynasty`, `author` or `q` query parameters. Filters are checked in
// that order; the first present one wins.
func (h *Handler) listPoems(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	query := r.URL.Query()

	var poems []models.Poem
	switch {
	case query.Get("tag") != "":
		poems = h.services.Poem.GetPoemsByTag(ctx, query.Get("tag"))
	case query.Get("dynasty") != "":
		poems = h.services.Poem.GetPoemsByDynasty(ctx, query.Get("dynasty"))
	case query.Get("author") != "":
		poems = h.services.Poem.GetPoemsByAuthor(ctx, query.Get("author"))
	case query.Has("q"):
		poems = h.services.Poem.SearchPoems(ctx, query.Get("q"))
	default:
		poems = h.services.Poem.GetAllPoems(ctx)
	}

	utils.WriteJSON(w, poems, http.StatusOK)
}

func (h *Handler) listTags(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, h.services.Poem.GetAllTags(r.Context()), http.StatusOK)
}

func (h *Handler) listDynasties(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, h.services.Poem.GetAllDynasties(r.Context()), http.StatusOK)
}

func (h *Handler) listAuthors(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, h.services.Poem.GetAllAuthors(r.Context()), http.StatusOK)
}

// addPoem inserts a new poem and returns the stored row.
func (h *Handler) addPoem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var poem models.Poem
	if err := json.NewDecoder(r.Body).Decode(&poem); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	created, err := h.services.Poem.AddPoem(ctx, poem)
	if err != nil {
		log.Err(err).Msg("failed to add poem")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, created, http.StatusCreated)
}

// updatePoem replaces the mutable fields of the poem addressed by the URL and
// returns the stored row.
func (h *Handler) updatePoem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid poem id", http.StatusBadRequest)
		return
	}

	var poem models.Poem
	if err := json.NewDecoder(r.Body).Decode(&poem); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}
	poem.ID = id

	updated, err := h.services.Poem.UpdatePoem(ctx, poem)
	if err != nil {
		log.Err(err).Int64("id", id).Msg("failed to update poem")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, updated, http.StatusOK)
}

// deletePoem removes the poem addressed by the URL.
func (h *Handler) deletePoem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid poem id", http.StatusBadRequest)
		return
	}

	if err := h.services.Poem.DeletePoem(ctx, id); err != nil {
		log.Err(err).Int64("id", id).Msg("failed to delete poem")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
