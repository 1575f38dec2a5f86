package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/nurse-notes/internal/adapter"
	"github.com/MKhiriev/nurse-notes/internal/logger"
	"github.com/MKhiriev/nurse-notes/internal/session"
	"github.com/MKhiriev/nurse-notes/internal/validators"
	"github.com/MKhiriev/nurse-notes/models"
)

type clientAuthService struct {
	api       adapter.AuthAPI
	session   *session.Store
	validator validators.Validator
	logger    *logger.Logger
}

func NewClientAuthService(api adapter.AuthAPI, sessionStore *session.Store, logger *logger.Logger) ClientAuthService {
	return &clientAuthService{
		api:       api,
		session:   sessionStore,
		validator: validators.NewAccountValidator(),
		logger:    logger,
	}
}

func (a *clientAuthService) SignIn(ctx context.Context, credentials models.Credentials) (models.UserProfile, error) {
	credentials.Email = strings.TrimSpace(credentials.Email)
	if err := a.validator.Validate(ctx, credentials); err != nil {
		return models.UserProfile{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	result, err := a.api.Login(ctx, credentials)
	if err != nil {
		a.logger.Warn().Err(err).Str("func", "*clientAuthService.SignIn").Msg("login on server failed")
		return models.UserProfile{}, fmt.Errorf("%w: %w", ErrLoginOnServer, err)
	}

	if err = a.session.Login(ctx, result.Token, result.User); err != nil {
		return models.UserProfile{}, fmt.Errorf("%w: %w", ErrSessionNotPersisted, err)
	}

	a.logger.Info().Str("user_id", result.User.ID).Msg("signed in")
	return result.User, nil
}

func (a *clientAuthService) SignOut(ctx context.Context) error {
	return a.session.Logout(ctx)
}

func (a *clientAuthService) RefreshProfile(ctx context.Context) (models.UserProfile, error) {
	token := a.session.Token()
	if token == "" {
		return models.UserProfile{}, ErrNotSignedIn
	}

	user, err := a.api.Profile(ctx, token)
	if errors.Is(err, adapter.ErrInvalidCredentials) {
		a.logger.Info().Str("func", "*clientAuthService.RefreshProfile").Msg("token rejected, signing out")
		_ = a.session.Logout(ctx)
		return models.UserProfile{}, fmt.Errorf("%w: %w", ErrSessionExpired, err)
	}
	if err != nil {
		a.logger.Warn().Err(err).Str("func", "*clientAuthService.RefreshProfile").Msg("profile request failed")
		return models.UserProfile{}, fmt.Errorf("%w: %w", ErrProfileNotRefreshed, err)
	}

	if err = a.session.UpdateUser(ctx, user); err != nil {
		a.logger.Warn().Err(err).Str("func", "*clientAuthService.RefreshProfile").Msg("profile not stored")
		return models.UserProfile{}, fmt.Errorf("%w: %w", ErrProfileNotRefreshed, err)
	}

	return user, nil
}

func (a *clientAuthService) ServerAvailable(ctx context.Context) bool {
	return a.api.HealthCheck(ctx)
}
