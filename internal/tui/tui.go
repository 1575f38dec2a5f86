package tui

import (
	"context"
	"errors"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/nurse-notes/internal/logger"
	"github.com/MKhiriev/nurse-notes/internal/navigation"
	"github.com/MKhiriev/nurse-notes/internal/service"
	"github.com/MKhiriev/nurse-notes/models"
)

type TUI struct {
	services    *service.ClientServices
	settleDelay time.Duration
	buildInfo   models.AppBuildInfo

	logger *logger.Logger
}

func New(services *service.ClientServices, settleDelay time.Duration, buildInfo models.AppBuildInfo, logger *logger.Logger) *TUI {
	return &TUI{
		services:    services,
		settleDelay: settleDelay,
		buildInfo:   buildInfo,
		logger:      logger,
	}
}

// Run shows the TUI until the user quits or ctx is cancelled. ctx must carry
// the onboarding gate and the session store.
func (t *TUI) Run(ctx context.Context) error {
	nav := &programNavigator{}
	guard := navigation.NewGuard(nav, t.settleDelay, t.logger)
	defer guard.Close()

	root := NewRootModel(ctx, guard, t.pages(ctx), t.logger)

	program := tea.NewProgram(root, tea.WithAltScreen(), tea.WithContext(ctx))
	nav.program = program

	if _, err := program.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("tui program: %w", err)
	}

	return nil
}

func (t *TUI) pages(ctx context.Context) map[string]tea.Model {
	auth := t.services.AuthService

	return map[string]tea.Model{
		navigation.RouteOnboarding: NewOnboardingModel(ctx),
		navigation.RouteLogin:      NewLoginModel(ctx, auth, t.buildInfo),
		navigation.RouteHome:       NewHomeModel(ctx, auth),
	}
}

// programNavigator posts guard redirects into the running program. Send
// blocks until the event loop takes the message, and the guard may call
// Replace from inside Update, so delivery is asynchronous.
type programNavigator struct {
	program *tea.Program
}

func (n *programNavigator) Replace(path string) {
	go n.program.Send(NavigateTo{Path: path})
}
