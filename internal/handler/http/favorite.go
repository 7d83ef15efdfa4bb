package http

import (
	"net/http"
	"strconv"

	"github.com/MKhiriev/poem-catalog/internal/utils"
	"github.com/go-chi/chi/v5"
)

// Favorite handlers always answer 200 with a tagged result body; callers
// branch on the success field, not the HTTP status.

func (h *Handler) listFavorites(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	utils.WriteJSON(w, h.services.Favorite.GetUserFavorites(ctx, userID), http.StatusOK)
}

func (h *Handler) listFavoritePoems(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	utils.WriteJSON(w, h.services.Favorite.GetFavoritePoems(ctx, userID), http.StatusOK)
}

func (h *Handler) addFavorite(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	poemID, err := strconv.ParseInt(chi.URLParam(r, "poemID"), 10, 64)
	if err != nil {
		http.Error(w, "invalid poem id", http.StatusBadRequest)
		return
	}

	utils.WriteJSON(w, h.services.Favorite.AddFavorite(ctx, userID, poemID), http.StatusOK)
}

func (h *Handler) removeFavorite(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	poemID, err := strconv.ParseInt(chi.URLParam(r, "poemID"), 10, 64)
	if err != nil {
		http.Error(w, "invalid poem id", http.StatusBadRequest)
		return
	}

	utils.WriteJSON(w, h.services.Favorite.RemoveFavorite(ctx, userID, poemID), http.StatusOK)
}

func (h *Handler) favoriteStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	poemID, err := strconv.ParseInt(chi.URLParam(r, "poemID"), 10, 64)
	if err != nil {
		http.Error(w, "invalid poem id", http.StatusBadRequest)
		return
	}

	utils.WriteJSON(w, h.services.Favorite.IsFavorite(ctx, userID, poemID), http.StatusOK)
}
