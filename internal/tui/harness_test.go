package tui

import (
	"context"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/nurse-notes/internal/logger"
	"github.com/MKhiriev/nurse-notes/internal/mock"
	"github.com/MKhiriev/nurse-notes/internal/navigation"
	"github.com/MKhiriev/nurse-notes/internal/onboarding"
	"github.com/MKhiriev/nurse-notes/internal/service"
	"github.com/MKhiriev/nurse-notes/internal/session"
	"github.com/MKhiriev/nurse-notes/internal/store"
	"github.com/MKhiriev/nurse-notes/models"
)

// recordingNavigator stands in for the program bridge: redirects are
// collected and fed back as NavigateTo by the harness.
type recordingNavigator struct {
	mu      sync.Mutex
	pending []string
	all     []string
}

func (n *recordingNavigator) Replace(path string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.pending = append(n.pending, path)
	n.all = append(n.all, path)
}

func (n *recordingNavigator) drain() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := n.pending
	n.pending = nil
	return out
}

func (n *recordingNavigator) history() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]string(nil), n.all...)
}

type manualTimer struct {
	f       func()
	stopped bool
}

func (t *manualTimer) Stop() bool {
	was := !t.stopped
	t.stopped = true
	return was
}

type manualClock struct {
	mu     sync.Mutex
	timers []*manualTimer
}

func (c *manualClock) afterFunc(_ time.Duration, f func()) navigation.Timer {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := &manualTimer{f: f}
	c.timers = append(c.timers, t)
	return t
}

func (c *manualClock) fire() {
	c.mu.Lock()
	var due []*manualTimer
	for _, t := range c.timers {
		if !t.stopped {
			t.stopped = true
			due = append(due, t)
		}
	}
	c.timers = nil
	c.mu.Unlock()

	for _, t := range due {
		t.f()
	}
}

type harness struct {
	t     *testing.T
	root  RootModel
	nav   *recordingNavigator
	clock *manualClock
	kv    *store.MemoryKeyValueStore
	api   *mock.MockAuthAPI
	quit  bool
}

var nurse = models.UserProfile{ID: "u-1", Email: "ann@example.com", FullName: "Ann Nurse", Role: "nurse"}

// newHarness wires the real gate, session store and client service over an
// in-memory store, with the Auth API mocked. HealthCheck reports the server
// as available unless a test overrides it before the login page opens.
func newHarness(t *testing.T, seed map[string]string) *harness {
	t.Helper()

	kv := store.NewMemoryKeyValueStore()
	for k, v := range seed {
		require.NoError(t, kv.Set(context.Background(), k, v))
	}

	ctrl := gomock.NewController(t)
	api := mock.NewMockAuthAPI(ctrl)

	gate := onboarding.NewGate(kv, logger.Nop())
	sessionStore := session.NewStore(kv, logger.Nop())
	ctx := session.Provide(onboarding.Provide(context.Background(), gate), sessionStore)

	nav := &recordingNavigator{}
	clock := &manualClock{}
	guard := navigation.NewGuard(nav, time.Second, logger.Nop(), navigation.WithAfterFunc(clock.afterFunc))
	t.Cleanup(guard.Close)

	auth := service.NewClientAuthService(api, sessionStore, logger.Nop())
	pages := map[string]tea.Model{
		navigation.RouteOnboarding: NewOnboardingModel(ctx),
		navigation.RouteLogin:      NewLoginModel(ctx, auth, models.NewAppBuildInfo("1.0.0", "", "")),
		navigation.RouteHome:       NewHomeModel(ctx, auth),
	}

	return &harness{
		t:     t,
		root:  NewRootModel(ctx, guard, pages, logger.Nop()),
		nav:   nav,
		clock: clock,
		kv:    kv,
		api:   api,
	}
}

func (h *harness) start() {
	h.run(h.root.Init())
}

func (h *harness) send(msg tea.Msg) {
	h.process([]tea.Msg{msg})
}

func (h *harness) key(k tea.KeyType) {
	h.send(tea.KeyMsg{Type: k})
}

func (h *harness) typeText(s string) {
	h.send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
}

// fireTimers runs the pending settle delay and delivers its redirect.
func (h *harness) fireTimers() {
	h.clock.fire()
	h.process(nil)
}

func (h *harness) run(cmd tea.Cmd) {
	h.process(execCmd(cmd))
}

// process delivers msgs, every message the resulting commands produce and
// every guard redirect, until nothing is left.
func (h *harness) process(queue []tea.Msg) {
	h.t.Helper()

	for i := 0; ; i++ {
		require.Less(h.t, i, 200, "message loop did not settle")

		for _, path := range h.nav.drain() {
			queue = append(queue, NavigateTo{Path: path})
		}
		if len(queue) == 0 {
			return
		}

		msg := queue[0]
		queue = queue[1:]

		if _, ok := msg.(tea.QuitMsg); ok {
			h.quit = true
			continue
		}

		model, cmd := h.root.Update(msg)
		h.root = model.(RootModel)
		queue = append(queue, execCmd(cmd)...)
	}
}

func execCmd(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}

	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, execCmd(c)...)
		}
		return out
	}
	if msg == nil {
		return nil
	}
	return []tea.Msg{msg}
}
