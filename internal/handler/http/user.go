package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/poem-catalog/internal/logger"
	"github.com/MKhiriev/poem-catalog/internal/utils"
	"github.com/MKhiriev/poem-catalog/models"
)

// credentialsRequest is the JSON body of register and login requests.
type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// register creates a new account. On success the response carries the tagged
// result body plus a Bearer session token in the Authorization header.
func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var creds credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	result := h.services.User.Register(ctx, creds.Username, creds.Password)
	if !result.Success {
		utils.WriteJSON(w, result, http.StatusOK)
		return
	}

	token, err := h.services.Auth.CreateToken(ctx, *result.User)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
	utils.WriteJSON(w, result, http.StatusOK)
}

// login verifies credentials. The failure body never reveals whether the
// username or the password was wrong.
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var creds credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	result := h.services.User.Login(ctx, creds.Username, creds.Password)
	if !result.Success {
		utils.WriteJSON(w, result, http.StatusOK)
		return
	}

	log.Debug().Int64("id", result.User.ID).Msg("user successfully logged in")

	token, err := h.services.Auth.CreateToken(ctx, *result.User)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
	utils.WriteJSON(w, result, http.StatusOK)
}

// checkUserExists reports whether the username given in the `username` query
// parameter is taken.
func (h *Handler) checkUserExists(w http.ResponseWriter, r *http.Request) {
	username := r.URL.Query().Get("username")
	if username == "" {
		http.Error(w, "missing `username` query parameter", http.StatusBadRequest)
		return
	}

	utils.WriteJSON(w, h.services.User.CheckUserExists(r.Context(), username), http.StatusOK)
}

// getUserInfo returns the profile of the authenticated user, lazily creating
// a default one on first access. The optional `username` query parameter
// seeds the default nickname and avatar.
func (h *Handler) getUserInfo(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	fallbackUsername := r.URL.Query().Get("username")
	utils.WriteJSON(w, h.services.User.GetUserInfo(ctx, userID, fallbackUsername), http.StatusOK)
}

// updateUserInfo merges the supplied profile fields into the authenticated
// user's profile. Absent JSON fields are left untouched.
func (h *Handler) updateUserInfo(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var update models.UserInfoUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	utils.WriteJSON(w, h.services.User.UpdateUserInfo(ctx, userID, update), http.StatusOK)
}

// listUsers returns every account. Maintenance listing behind authentication.
func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, h.services.User.GetAllUsers(r.Context()), http.StatusOK)
}
