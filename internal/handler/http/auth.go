package http

import (
	"net/http"

	"github.com/MKhiriev/nurse-notes/internal/app"
	"github.com/MKhiriev/nurse-notes/internal/logger"
	"github.com/MKhiriev/nurse-notes/internal/utils"
	"github.com/MKhiriev/nurse-notes/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var user models.User
	if err := utils.DecodeJSON(r, &user); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeError(w, r, http.StatusBadRequest, app.MsgInvalidDataProvided)
		return
	}

	registeredUser, err := h.services.AuthService.RegisterUser(ctx, user)
	if err != nil {
		log.Err(err).Msg("user registration failed")
		status, msg := responseFromError(err)
		writeError(w, r, status, msg)
		return
	}

	h.writeSession(w, r, registeredUser, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var credentials models.Credentials
	if err := utils.DecodeJSON(r, &credentials); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeError(w, r, http.StatusBadRequest, app.MsgInvalidDataProvided)
		return
	}

	foundUser, err := h.services.AuthService.Login(ctx, credentials)
	if err != nil {
		log.Err(err).Msg("user login failed")
		status, msg := responseFromError(err)
		writeError(w, r, status, msg)
		return
	}

	log.Debug().Str("user_id", foundUser.UserID).Msg("user successfully logged in")
	h.writeSession(w, r, foundUser, http.StatusOK)
}

// writeSession issues a token for user and writes the login response body.
func (h *Handler) writeSession(w http.ResponseWriter, r *http.Request, user models.User, status int) {
	log := logger.FromRequest(r)

	token, err := h.services.AuthService.CreateToken(r.Context(), user)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		writeError(w, r, http.StatusInternalServerError, app.MsgInternalServerError)
		return
	}

	profile := user.Profile()
	w.Header().Set("Authorization", "Bearer "+token.SignedString)
	writeJSON(w, r, models.LoginResponse{OK: true, Token: token.SignedString, User: &profile}, status)
}

func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userID, ok := userIDFromContext(r.Context())
	if !ok {
		log.Err(ErrNoUserIDInContext).Send()
		writeError(w, r, http.StatusUnauthorized, app.MsgUnauthorized)
		return
	}

	profile, err := h.services.AuthService.Profile(r.Context(), userID)
	if err != nil {
		log.Err(err).Str("user_id", userID).Msg("profile lookup failed")
		status, msg := responseFromError(err)
		writeError(w, r, status, msg)
		return
	}

	writeJSON(w, r, models.LoginResponse{OK: true, User: &profile}, http.StatusOK)
}
