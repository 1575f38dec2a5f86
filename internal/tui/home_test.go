package tui

import (
	"context"
	"fmt"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/nurse-notes/internal/logger"
	"github.com/MKhiriev/nurse-notes/internal/mock"
	"github.com/MKhiriev/nurse-notes/internal/service"
	"github.com/MKhiriev/nurse-notes/internal/session"
	"github.com/MKhiriev/nurse-notes/internal/store"
)

func TestHomeModel_LogoutOnlyFromProfile(t *testing.T) {
	auth := mock.NewMockClientAuthService(gomock.NewController(t))
	sessionStore := session.NewStore(store.NewMemoryKeyValueStore(), logger.Nop())
	require.NoError(t, sessionStore.Login(context.Background(), "tok", nurse))

	m := NewHomeModel(session.Provide(context.Background(), sessionStore), auth)
	m.Init()

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("o")})
	assert.Nil(t, cmd, "o does nothing on the notes tab")

	m.Update(tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, tabProfile, m.tab)
	view := m.View()
	assert.Contains(t, view, "Ann Nurse")
	assert.Contains(t, view, "o: sign out")

	auth.EXPECT().SignOut(gomock.Any()).Return(nil)
	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("o")})
	require.NotNil(t, cmd)

	_, again := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("o")})
	assert.Nil(t, again, "sign-out runs once")

	assert.Equal(t, signedOutMsg{}, cmd())
}

func TestHomeModel_TabsWrap(t *testing.T) {
	sessionStore := session.NewStore(store.NewMemoryKeyValueStore(), logger.Nop())
	m := NewHomeModel(session.Provide(context.Background(), sessionStore), nil)

	m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, tabProfile, m.tab)
	m.Update(tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, tabNotes, m.tab)
	assert.Contains(t, m.View(), "No notes yet")
}

func TestHomeModel_ProfileRefreshOnInit(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		wantStale bool
	}{
		{name: "refreshed"},
		{name: "server down", err: fmt.Errorf("%w: cannot reach server", service.ErrProfileNotRefreshed), wantStale: true},
		{name: "expired", err: service.ErrSessionExpired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			auth := mock.NewMockClientAuthService(gomock.NewController(t))
			sessionStore := session.NewStore(store.NewMemoryKeyValueStore(), logger.Nop())
			require.NoError(t, sessionStore.Login(context.Background(), "tok", nurse))

			m := NewHomeModel(session.Provide(context.Background(), sessionStore), auth)
			cmd := m.Init()
			require.NotNil(t, cmd)

			auth.EXPECT().RefreshProfile(gomock.Any()).Return(nurse, tt.err)
			m.Update(cmd())
			m.Update(tea.KeyMsg{Type: tea.KeyTab})

			assert.Equal(t, tt.wantStale, m.staleUser)
			if tt.wantStale {
				assert.Contains(t, m.View(), "Could not refresh your profile")
			} else {
				assert.NotContains(t, m.View(), "Could not refresh your profile")
			}
		})
	}
}
