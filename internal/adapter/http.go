package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/MKhiriev/nurse-notes/internal/config"
	"github.com/MKhiriev/nurse-notes/internal/logger"
	"github.com/MKhiriev/nurse-notes/internal/utils"
	"github.com/MKhiriev/nurse-notes/models"
)

const (
	loginPath   = "/api/auth/login"
	profilePath = "/api/auth/me"
	healthPath  = "/health"
)

type httpAuthAPI struct {
	client *utils.HTTPClient

	loginTimeout  time.Duration
	healthTimeout time.Duration

	logger *logger.Logger
}

// NewHTTPAuthAPI constructs the HTTP implementation of [AuthAPI]. The base
// URL may omit the scheme, in which case http is assumed.
func NewHTTPAuthAPI(cfg config.ClientAdapter, logger *logger.Logger) (AuthAPI, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient()
	client.SetBaseURL(baseURL)

	return &httpAuthAPI{
		client:        client,
		loginTimeout:  cfg.LoginTimeout,
		healthTimeout: cfg.HealthTimeout,
		logger:        logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func withTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, d)
}

// Login implements [AuthAPI]. It posts the credentials to
// POST /api/auth/login and accepts only {"ok":true} bodies carrying a token
// and a user with an id.
func (h *httpAuthAPI) Login(ctx context.Context, credentials models.Credentials) (models.LoginResult, error) {
	ctx, cancel := withTimeout(ctx, h.loginTimeout)
	defer cancel()

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(credentials).
		Post(loginPath)
	if err != nil {
		// the transport error names the request URL, keep it in the log only
		h.logger.Err(err).Str("func", "*httpAuthAPI.Login").Msg("login request failed")
		return models.LoginResult{}, ErrServerUnreachable
	}
	if err = mapHTTPError(resp); err != nil {
		h.logger.Warn().Int("status", resp.StatusCode()).Str("func", "*httpAuthAPI.Login").Msg("login rejected")
		return models.LoginResult{}, err
	}

	var body models.LoginResponse
	if err = json.Unmarshal(resp.Body(), &body); err != nil {
		h.logger.Err(err).Str("func", "*httpAuthAPI.Login").Msg("error decoding login response")
		return models.LoginResult{}, ErrInvalidServerResponse
	}
	if !body.OK || body.Token == "" || body.User == nil || body.User.ID == "" {
		h.logger.Warn().Bool("ok", body.OK).Str("func", "*httpAuthAPI.Login").Msg("login response rejected")
		return models.LoginResult{}, withDetail(ErrInvalidServerResponse, SanitizeMessage(body.Error))
	}

	return models.LoginResult{Token: body.Token, User: *body.User}, nil
}

// Profile implements [AuthAPI]. It sends GET /api/auth/me with the token as
// a bearer credential and shares the login timeout.
func (h *httpAuthAPI) Profile(ctx context.Context, token string) (models.UserProfile, error) {
	ctx, cancel := withTimeout(ctx, h.loginTimeout)
	defer cancel()

	resp, err := h.client.R().
		SetContext(ctx).
		SetAuthToken(token).
		Get(profilePath)
	if err != nil {
		h.logger.Err(err).Str("func", "*httpAuthAPI.Profile").Msg("profile request failed")
		return models.UserProfile{}, ErrServerUnreachable
	}
	if err = mapHTTPError(resp); err != nil {
		h.logger.Warn().Int("status", resp.StatusCode()).Str("func", "*httpAuthAPI.Profile").Msg("profile rejected")
		return models.UserProfile{}, err
	}

	var body models.LoginResponse
	if err = json.Unmarshal(resp.Body(), &body); err != nil {
		h.logger.Err(err).Str("func", "*httpAuthAPI.Profile").Msg("error decoding profile response")
		return models.UserProfile{}, ErrInvalidServerResponse
	}
	if !body.OK || body.User == nil || body.User.ID == "" {
		return models.UserProfile{}, withDetail(ErrInvalidServerResponse, SanitizeMessage(body.Error))
	}

	return *body.User, nil
}

// HealthCheck implements [AuthAPI].
func (h *httpAuthAPI) HealthCheck(ctx context.Context) bool {
	ctx, cancel := withTimeout(ctx, h.healthTimeout)
	defer cancel()

	resp, err := h.client.R().
		SetContext(ctx).
		Get(healthPath)
	if err != nil {
		h.logger.Debug().Err(err).Str("func", "*httpAuthAPI.HealthCheck").Msg("health check failed")
		return false
	}

	return resp.StatusCode() == http.StatusOK
}
