package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/nurse-notes/internal/logger"
	"github.com/MKhiriev/nurse-notes/internal/navigation"
	"github.com/MKhiriev/nurse-notes/internal/onboarding"
	"github.com/MKhiriev/nurse-notes/internal/session"
)

// RootModel is the TUI router:
//  1. starts both hydrations concurrently
//  2. handles the global ctrl+c quit
//  3. handles NavigateTo messages (replace-style)
//  4. delegates all other messages to the active page
//  5. feeds the navigation guard after every update
//
// Pages are keyed by the first route segment. The root route has no page;
// it shows the loading screen and forwards to login once both stores are
// hydrated and the guard has nothing to do.
type RootModel struct {
	ctx     context.Context
	gate    *onboarding.Gate
	session *session.Store
	guard   *navigation.Guard

	pages   map[string]tea.Model
	route   navigation.Route
	current tea.Model

	logger *logger.Logger
}

// NewRootModel registers pages and starts at the root route. ctx must carry
// the onboarding gate and the session store.
func NewRootModel(ctx context.Context, guard *navigation.Guard, pages map[string]tea.Model, logger *logger.Logger) RootModel {
	return RootModel{
		ctx:     ctx,
		gate:    onboarding.Use(ctx),
		session: session.Use(ctx),
		guard:   guard,
		pages:   pages,
		logger:  logger,
	}
}

func (r RootModel) Init() tea.Cmd {
	return tea.Batch(r.cmdCheckOnboarding(), r.cmdRestoreSession())
}

func (r RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := r.update(msg)
	return next, tea.Batch(cmd, next.evaluate())
}

func (r RootModel) update(msg tea.Msg) (RootModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, keys.quit) {
			return r, tea.Quit
		}
	case NavigateTo:
		return r.navigate(msg.Path)
	case onboardingCheckedMsg, sessionRestoredMsg:
		return r, nil
	}

	if r.current == nil {
		return r, nil
	}

	updated, cmd := r.current.Update(msg)
	r.current = updated
	return r, cmd
}

func (r RootModel) navigate(path string) (RootModel, tea.Cmd) {
	route := navigation.ParseRoute(path)
	if route.Equal(r.route) {
		return r, nil
	}

	page, ok := r.pages[route.First()]
	if !ok {
		r.logger.Warn().Str("path", path).Msg("navigation to unknown route ignored")
		return r, nil
	}

	r.logger.Debug().Str("from", r.route.String()).Str("to", route.String()).Msg("navigate")
	r.route = route
	r.current = page
	return r, page.Init()
}

func (r RootModel) inputs() navigation.Inputs {
	return navigation.Inputs{
		Onboarding: r.gate.Status(),
		Session:    r.session.Snapshot(),
		Route:      r.route,
	}
}

// evaluate runs the guard on the current state.
func (r RootModel) evaluate() tea.Cmd {
	in := r.inputs()
	r.guard.Evaluate(in)

	if len(r.route) == 0 && navigation.Ready(in) && navigation.Decide(in).Action == navigation.ActionNone {
		return func() tea.Msg { return NavigateTo{Path: navigation.PathLogin} }
	}
	return nil
}

func (r RootModel) View() string {
	if r.current == nil || !navigation.Ready(r.inputs()) {
		return renderPage("NURSE NOTES", "Loading…", "")
	}
	return r.current.View()
}

// Route returns the current route.
func (r RootModel) Route() navigation.Route {
	return r.route
}

func (r RootModel) cmdCheckOnboarding() tea.Cmd {
	ctx := r.ctx
	gate := r.gate

	return func() tea.Msg {
		gate.CheckStatus(ctx)
		return onboardingCheckedMsg{}
	}
}

func (r RootModel) cmdRestoreSession() tea.Cmd {
	ctx := r.ctx
	store := r.session

	return func() tea.Msg {
		store.RestoreSession(ctx)
		return sessionRestoredMsg{}
	}
}
