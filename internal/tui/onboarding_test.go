package tui

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/nurse-notes/internal/logger"
	"github.com/MKhiriev/nurse-notes/internal/navigation"
	"github.com/MKhiriev/nurse-notes/internal/onboarding"
	"github.com/MKhiriev/nurse-notes/internal/store"
)

func TestOnboardingModel_Slides(t *testing.T) {
	kv := store.NewMemoryKeyValueStore()
	gate := onboarding.NewGate(kv, logger.Nop())
	m := NewOnboardingModel(onboarding.Provide(context.Background(), gate))

	m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	assert.Equal(t, 0, m.idx, "cannot go before the first slide")

	m.Update(tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, 1, m.idx)
	m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	assert.Equal(t, 0, m.idx)

	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, cmd)
	assert.Contains(t, m.View(), "get started")

	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)

	_, again := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, again, "finishing runs once")

	assert.Equal(t, NavigateTo{Path: navigation.PathLogin}, cmd())
	assert.Equal(t, onboarding.Yes, gate.Status().HasSeen)
}

func TestOnboardingModel_MarkFailureStillContinues(t *testing.T) {
	kv := store.NewMemoryKeyValueStore()
	require.NoError(t, kv.Close())
	gate := onboarding.NewGate(kv, logger.Nop())
	m := NewOnboardingModel(onboarding.Provide(context.Background(), gate))

	var cmd tea.Cmd
	for range introSlides {
		_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	}
	require.NotNil(t, cmd)

	assert.Equal(t, NavigateTo{Path: navigation.PathLogin}, cmd())
	assert.Equal(t, onboarding.Yes, gate.Status().HasSeen)
}
