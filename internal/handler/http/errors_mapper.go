package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/nurse-notes/internal/app"
	"github.com/MKhiriev/nurse-notes/internal/service"
	"github.com/MKhiriev/nurse-notes/internal/store"
)

type errorResponse struct {
	status  int
	message string
}

var errorStatusMap = []struct {
	target error
	errorResponse
}{
	{service.ErrInvalidDataProvided, errorResponse{http.StatusBadRequest, app.MsgInvalidDataProvided}},
	{service.ErrWrongPassword, errorResponse{http.StatusUnauthorized, app.MsgInvalidEmailPassword}},
	{service.ErrTokenIsExpiredOrInvalid, errorResponse{http.StatusUnauthorized, app.MsgTokenIsExpiredOrInvalid}},
	{store.ErrEmailAlreadyExists, errorResponse{http.StatusConflict, app.MsgEmailAlreadyExists}},
	{store.ErrNoUserWasFound, errorResponse{http.StatusNotFound, app.MsgUserNotFound}},
}

// responseFromError maps err to a status code and a client-safe message.
// Unknown errors become 500 with a generic message.
func responseFromError(err error) (int, string) {
	for _, e := range errorStatusMap {
		if errors.Is(err, e.target) {
			return e.status, e.message
		}
	}
	return http.StatusInternalServerError, app.MsgInternalServerError
}
