package tui

import (
	"context"
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/nurse-notes/internal/service"
	"github.com/MKhiriev/nurse-notes/internal/session"
)

type homeTab int

const (
	tabNotes homeTab = iota
	tabProfile
)

var homeTabs = []string{"Notes", "Profile"}

// HomeModel is the authenticated home tree with a notes tab and a profile
// tab. Signing out only ends the session; the navigation guard takes the
// user back to the login screen.
type HomeModel struct {
	ctx     context.Context
	auth    service.ClientAuthService
	session *session.Store

	tab        homeTab
	signingOut bool
	staleUser  bool
}

func NewHomeModel(ctx context.Context, auth service.ClientAuthService) *HomeModel {
	return &HomeModel{
		ctx:     ctx,
		auth:    auth,
		session: session.Use(ctx),
	}
}

func (m *HomeModel) Init() tea.Cmd {
	m.tab = tabNotes
	m.signingOut = false
	m.staleUser = false
	return m.cmdRefreshProfile()
}

func (m *HomeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case signedOutMsg:
		m.signingOut = false
		return m, nil
	case profileRefreshedMsg:
		// an expired session is handled by the guard
		m.staleUser = errors.Is(msg.err, service.ErrProfileNotRefreshed)
		return m, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.tab), key.Matches(msg, keys.right):
			m.tab = (m.tab + 1) % homeTab(len(homeTabs))
		case key.Matches(msg, keys.backtab), key.Matches(msg, keys.left):
			m.tab = (m.tab - 1 + homeTab(len(homeTabs))) % homeTab(len(homeTabs))
		case key.Matches(msg, keys.logout):
			if m.tab != tabProfile || m.signingOut {
				return m, nil
			}
			m.signingOut = true
			return m, m.cmdSignOut()
		}
	}

	return m, nil
}

func (m *HomeModel) View() string {
	var b strings.Builder

	for i, name := range homeTabs {
		if homeTab(i) == m.tab {
			b.WriteString(activeTab.Render(name))
		} else {
			b.WriteString(inactiveTab.Render(name))
		}
		b.WriteString("   ")
	}
	b.WriteString("\n\n")

	hotKeys := "tab: switch tab"
	switch m.tab {
	case tabNotes:
		b.WriteString(helpStyle.Render("No notes yet. Notes you write during a shift will appear here."))
	case tabProfile:
		b.WriteString(m.profileView())
		if m.staleUser {
			b.WriteString("\n\n")
			b.WriteString(warningStyle.Render("Could not refresh your profile. Showing the details saved on this device."))
		}
		if m.signingOut {
			hotKeys += " │ signing out…"
		} else {
			hotKeys += " │ o: sign out"
		}
	}

	return renderPage("NURSE NOTES", b.String(), hotKeys)
}

func (m *HomeModel) profileView() string {
	user := m.session.Snapshot().User
	if user == nil {
		return "-"
	}

	var b strings.Builder
	b.WriteString("Name   │ ")
	b.WriteString(valueOrDash(user.FullName))
	b.WriteString("\nEmail  │ ")
	b.WriteString(valueOrDash(user.Email))
	b.WriteString("\nRole   │ ")
	b.WriteString(valueOrDash(user.Role))
	return b.String()
}

func (m *HomeModel) cmdRefreshProfile() tea.Cmd {
	ctx := m.ctx
	auth := m.auth

	return func() tea.Msg {
		_, err := auth.RefreshProfile(ctx)
		return profileRefreshedMsg{err: err}
	}
}

func (m *HomeModel) cmdSignOut() tea.Cmd {
	ctx := m.ctx
	auth := m.auth

	return func() tea.Msg {
		_ = auth.SignOut(ctx)
		return signedOutMsg{}
	}
}
