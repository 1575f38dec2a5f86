package http

import (
	"context"
	"net/http"

	"github.com/MKhiriev/nurse-notes/internal/app"
	"github.com/MKhiriev/nurse-notes/internal/logger"
	"github.com/MKhiriev/nurse-notes/internal/utils"
)

type userIDCtxKey struct{}

// auth enforces bearer authentication. On success the token owner is stored
// in the request context; see userIDFromContext.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Err(ErrEmptyAuthorizationHeader).Send()
			writeError(w, r, http.StatusUnauthorized, app.MsgUnauthorized)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			log.Err(ErrInvalidAuthorizationHeader).Send()
			writeError(w, r, http.StatusUnauthorized, app.MsgUnauthorized)
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			log.Err(err).Msg("error occurred during parsing token")
			status, msg := responseFromError(err)
			writeError(w, r, status, msg)
			return
		}

		ctx = context.WithValue(ctx, userIDCtxKey{}, token.UserID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func userIDFromContext(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(userIDCtxKey{}).(string)
	return userID, ok && userID != ""
}
