package tui

import (
	"context"
	"encoding/json"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/nurse-notes/internal/adapter"
	"github.com/MKhiriev/nurse-notes/internal/logger"
	"github.com/MKhiriev/nurse-notes/internal/navigation"
	"github.com/MKhiriev/nurse-notes/internal/session"
	"github.com/MKhiriev/nurse-notes/internal/store"
	"github.com/MKhiriev/nurse-notes/models"
)

func persistedSession(t *testing.T) map[string]string {
	t.Helper()

	rawUser, err := json.Marshal(nurse)
	require.NoError(t, err)

	return map[string]string{
		store.KeyHasSeenOnboarding: "true",
		store.KeyAuthToken:         "tok",
		store.KeyAuthUser:          string(rawUser),
	}
}

func TestRootModel_LoadingUntilHydrated(t *testing.T) {
	h := newHarness(t, nil)

	assert.Contains(t, h.root.View(), "Loading")
	assert.Empty(t, h.root.Route())
}

func TestRootModel_FreshInstallGoesToOnboarding(t *testing.T) {
	h := newHarness(t, nil)
	h.start()

	assert.Equal(t, []string{navigation.PathOnboarding}, h.nav.history())
	assert.Equal(t, navigation.RouteOnboarding, h.root.Route().First())
	assert.Contains(t, h.root.View(), "Welcome to Nurse Notes")
}

func TestRootModel_OnboardingCompletionOpensLogin(t *testing.T) {
	h := newHarness(t, nil)
	h.api.EXPECT().HealthCheck(gomock.Any()).Return(true).AnyTimes()
	h.start()

	for range introSlides {
		h.key(tea.KeyEnter)
	}

	assert.Equal(t, navigation.RouteLogin, h.root.Route().First())
	assert.Contains(t, h.root.View(), "SIGN IN")

	seen, found, err := h.kv.Get(context.Background(), store.KeyHasSeenOnboarding)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "true", seen)

	// the guard itself never redirected away from onboarding
	assert.Equal(t, []string{navigation.PathOnboarding}, h.nav.history())
}

func TestRootModel_ReturningUserWithoutSessionLandsOnLogin(t *testing.T) {
	h := newHarness(t, map[string]string{store.KeyHasSeenOnboarding: "true"})
	h.api.EXPECT().HealthCheck(gomock.Any()).Return(true).AnyTimes()
	h.start()

	assert.Equal(t, navigation.RouteLogin, h.root.Route().First())
	assert.Empty(t, h.nav.history(), "the root route forwards to login without a guard redirect")
}

func TestRootModel_RestoredSessionGoesHome(t *testing.T) {
	h := newHarness(t, persistedSession(t))
	h.api.EXPECT().Profile(gomock.Any(), "tok").Return(nurse, nil)
	h.start()

	assert.Equal(t, []string{navigation.PathHome}, h.nav.history())
	assert.True(t, h.root.Route().InHome())
	assert.Contains(t, h.root.View(), "No notes yet")
}

func TestRootModel_SignInThenSettleDelay(t *testing.T) {
	h := newHarness(t, map[string]string{store.KeyHasSeenOnboarding: "true"})
	h.api.EXPECT().HealthCheck(gomock.Any()).Return(true).AnyTimes()
	h.api.EXPECT().Login(gomock.Any(), models.Credentials{Email: "ann@example.com", Password: "secret"}).
		Return(models.LoginResult{Token: "tok", User: nurse}, nil)
	h.api.EXPECT().Profile(gomock.Any(), "tok").Return(nurse, nil)
	h.start()

	h.typeText("ann@example.com")
	h.key(tea.KeyTab)
	h.typeText("secret")
	h.key(tea.KeyEnter)

	// still on login, showing the confirmation, until the timer fires
	assert.Equal(t, navigation.RouteLogin, h.root.Route().First())
	assert.Contains(t, h.root.View(), "Signed in")
	assert.Contains(t, h.root.View(), "Ann Nurse")

	h.fireTimers()

	assert.True(t, h.root.Route().InHome())
	assert.Equal(t, []string{navigation.PathHome}, h.nav.history())

	token, found, err := h.kv.Get(context.Background(), store.KeyAuthToken)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "tok", token)
}

func TestRootModel_SignInRejected(t *testing.T) {
	h := newHarness(t, map[string]string{store.KeyHasSeenOnboarding: "true"})
	h.api.EXPECT().HealthCheck(gomock.Any()).Return(true).AnyTimes()
	h.api.EXPECT().Login(gomock.Any(), gomock.Any()).Return(models.LoginResult{}, adapter.ErrInvalidCredentials)
	h.start()

	h.typeText("ann@example.com")
	h.key(tea.KeyTab)
	h.typeText("wrong")
	h.key(tea.KeyEnter)

	assert.Equal(t, navigation.RouteLogin, h.root.Route().First())
	assert.Contains(t, h.root.View(), "Incorrect email or password.")
	assert.Empty(t, h.nav.history())
}

func TestRootModel_ServerDownBanner(t *testing.T) {
	h := newHarness(t, map[string]string{store.KeyHasSeenOnboarding: "true"})
	h.api.EXPECT().HealthCheck(gomock.Any()).Return(false).AnyTimes()
	h.start()

	assert.Contains(t, h.root.View(), "server is not reachable")
	assert.Contains(t, h.root.View(), "[Sign in]", "the form stays usable")
}

func TestRootModel_SignOutReturnsToLogin(t *testing.T) {
	h := newHarness(t, persistedSession(t))
	h.api.EXPECT().HealthCheck(gomock.Any()).Return(true).AnyTimes()
	h.api.EXPECT().Profile(gomock.Any(), "tok").Return(nurse, nil)
	h.start()
	require.True(t, h.root.Route().InHome())

	h.key(tea.KeyTab)
	assert.Contains(t, h.root.View(), "ann@example.com")

	h.typeText("o")

	assert.Equal(t, navigation.RouteLogin, h.root.Route().First())
	assert.Equal(t, []string{navigation.PathHome, navigation.PathLogin}, h.nav.history())

	_, found, err := h.kv.Get(context.Background(), store.KeyAuthToken)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestRootModel_HomeRefreshesProfile(t *testing.T) {
	h := newHarness(t, persistedSession(t))
	promoted := nurse
	promoted.Role = "charge_nurse"
	h.api.EXPECT().Profile(gomock.Any(), "tok").Return(promoted, nil)
	h.start()

	h.key(tea.KeyTab)
	assert.Contains(t, h.root.View(), "charge_nurse")

	var saved models.UserProfile
	raw, _, err := h.kv.Get(context.Background(), store.KeyAuthUser)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal([]byte(raw), &saved))
	assert.Equal(t, promoted, saved)
}

func TestRootModel_ExpiredTokenReturnsToLogin(t *testing.T) {
	h := newHarness(t, persistedSession(t))
	h.api.EXPECT().HealthCheck(gomock.Any()).Return(true).AnyTimes()
	h.api.EXPECT().Profile(gomock.Any(), "tok").Return(models.UserProfile{}, adapter.ErrInvalidCredentials)
	h.start()

	assert.Equal(t, navigation.RouteLogin, h.root.Route().First())
	assert.Equal(t, []string{navigation.PathHome, navigation.PathLogin}, h.nav.history())

	_, found, err := h.kv.Get(context.Background(), store.KeyAuthToken)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestRootModel_CtrlCQuits(t *testing.T) {
	h := newHarness(t, nil)
	h.start()

	h.key(tea.KeyCtrlC)

	assert.True(t, h.quit)
}

func TestRootModel_UnknownRouteIgnored(t *testing.T) {
	h := newHarness(t, nil)
	h.start()

	h.send(NavigateTo{Path: "/settings"})

	assert.Equal(t, navigation.RouteOnboarding, h.root.Route().First())
}

func TestNewRootModel_WithoutProvidersPanics(t *testing.T) {
	assert.PanicsWithError(t, "onboarding.Use must be called within a context returned by onboarding.Provide", func() {
		NewRootModel(context.Background(), nil, nil, logger.Nop())
	})

	sessionStore := session.NewStore(store.NewMemoryKeyValueStore(), logger.Nop())
	assert.Panics(t, func() {
		NewRootModel(session.Provide(context.Background(), sessionStore), nil, nil, logger.Nop())
	})
}
