package adapter

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/go-resty/resty/v2"
)

const maxDetailLength = 200

type errorBody struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func mapHTTPError(resp *resty.Response) error {
	status := resp.StatusCode()
	if status >= http.StatusOK && status < http.StatusMultipleChoices {
		return nil
	}

	var kind error
	switch {
	case status == http.StatusBadRequest:
		kind = ErrBadRequest
	case status == http.StatusUnauthorized:
		kind = ErrInvalidCredentials
	case status >= http.StatusInternalServerError:
		kind = ErrServerError
	default:
		kind = fmt.Errorf("%w: http %d", ErrUnexpectedStatus, status)
	}

	return withDetail(kind, serverDetail(resp.Body()))
}

// serverDetail extracts the human-readable part of an error body and
// sanitizes it.
func serverDetail(body []byte) string {
	var parsed errorBody
	detail := ""
	if err := json.Unmarshal(body, &parsed); err == nil {
		detail = parsed.Error
		if detail == "" {
			detail = parsed.Message
		}
	} else {
		detail = string(body)
	}

	detail = SanitizeMessage(detail)
	if len(detail) > maxDetailLength {
		cut := maxDetailLength
		for cut > 0 && !utf8.RuneStart(detail[cut]) {
			cut--
		}
		detail = strings.TrimSpace(detail[:cut]) + "…"
	}
	return detail
}

func withDetail(kind error, detail string) error {
	if detail == "" {
		return kind
	}
	return fmt.Errorf("%w: %s", kind, detail)
}

// UserMessage returns a short message for err suitable for showing next to
// the login form. It never contains transport details.
func UserMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrServerUnreachable):
		return "Cannot reach the server. Check your connection and try again."
	case errors.Is(err, ErrInvalidCredentials):
		return "Incorrect email or password."
	case errors.Is(err, ErrBadRequest):
		return "Please check the email and password you entered."
	case errors.Is(err, ErrServerError):
		return "The server ran into a problem. Please try again later."
	case errors.Is(err, ErrInvalidServerResponse):
		return "The server sent an invalid response. Please try again."
	case errors.Is(err, ErrUnexpectedStatus):
		return "Sign-in failed. Please try again."
	default:
		return "Something went wrong. Please try again."
	}
}
