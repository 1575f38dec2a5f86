package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/nurse-notes/internal/adapter"
	"github.com/MKhiriev/nurse-notes/internal/config"
	"github.com/MKhiriev/nurse-notes/internal/logger"
	"github.com/MKhiriev/nurse-notes/internal/onboarding"
	"github.com/MKhiriev/nurse-notes/internal/service"
	"github.com/MKhiriev/nurse-notes/internal/session"
	"github.com/MKhiriev/nurse-notes/internal/store"
	"github.com/MKhiriev/nurse-notes/internal/tui"
	"github.com/MKhiriev/nurse-notes/models"
)

// UI is the screen layer run by [App].
type UI interface {
	Run(ctx context.Context) error
}

type App struct {
	storages *store.ClientStorages
	session  *session.Store
	gate     *onboarding.Gate
	ui       UI

	logger *logger.Logger
}

// NewApp opens the local store and wires the Auth API client, the session
// core and the TUI.
func NewApp(cfg *config.ClientConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) (*App, error) {
	storages, err := store.NewClientStorages(cfg.Storage, logger)
	if err != nil {
		return nil, fmt.Errorf("create local storage: %w", err)
	}

	api, err := adapter.NewHTTPAuthAPI(cfg.Adapter, logger)
	if err != nil {
		_ = storages.Close()
		return nil, fmt.Errorf("create auth api client: %w", err)
	}

	sessionStore := session.NewStore(storages.KeyValue, logger)
	services := service.NewClientServices(api, sessionStore, logger)

	return &App{
		storages: storages,
		session:  sessionStore,
		gate:     onboarding.NewGate(storages.KeyValue, logger),
		ui:       tui.New(services, cfg.App.SettleDelay, buildInfo, logger),
		logger:   logger,
	}, nil
}

// Run makes the gate and the session store available to the screens and
// runs the UI until it exits. The local store is closed on return.
func (a *App) Run(ctx context.Context) error {
	defer func() {
		if err := a.storages.Close(); err != nil {
			a.logger.Err(err).Msg("error closing local storage")
		}
	}()

	ctx = onboarding.Provide(ctx, a.gate)
	ctx = session.Provide(ctx, a.session)

	a.logger.Info().Msg("client started")
	if err := a.ui.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	a.logger.Info().Msg("client stopped")

	return nil
}
