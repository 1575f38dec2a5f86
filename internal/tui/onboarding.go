package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/nurse-notes/internal/navigation"
	"github.com/MKhiriev/nurse-notes/internal/onboarding"
)

type slide struct {
	title string
	body  string
}

var introSlides = []slide{
	{
		title: "Welcome to Nurse Notes",
		body:  "Keep shift notes, handovers and reminders in one place.",
	},
	{
		title: "Your notes stay with you",
		body:  "Notes are kept on this device and linked to your hospital account.",
	},
	{
		title: "Sign in to get started",
		body:  "Use the email and password provided by your ward administrator.",
	},
}

// OnboardingModel shows the intro slides. Finishing the last slide marks
// onboarding as seen and opens the login screen.
type OnboardingModel struct {
	ctx  context.Context
	gate *onboarding.Gate

	slides    []slide
	idx       int
	finishing bool
}

func NewOnboardingModel(ctx context.Context) *OnboardingModel {
	return &OnboardingModel{
		ctx:    ctx,
		gate:   onboarding.Use(ctx),
		slides: introSlides,
	}
}

func (m *OnboardingModel) Init() tea.Cmd {
	m.idx = 0
	m.finishing = false
	return nil
}

func (m *OnboardingModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || m.finishing {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.left):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(keyMsg, keys.right), key.Matches(keyMsg, keys.enter):
		if m.idx < len(m.slides)-1 {
			m.idx++
			return m, nil
		}
		m.finishing = true
		return m, m.cmdFinish()
	}

	return m, nil
}

func (m *OnboardingModel) View() string {
	s := m.slides[m.idx]

	var b strings.Builder
	b.WriteString(slideBoxStyle.Render(titleStyle.Render(s.title) + "\n\n" + s.body))
	b.WriteString("\n\n")
	for i := range m.slides {
		if i == m.idx {
			b.WriteString("● ")
		} else {
			b.WriteString("○ ")
		}
	}

	hotKeys := "←/→: previous/next │ enter: next"
	if m.idx == len(m.slides)-1 {
		hotKeys = "←: previous │ enter: get started"
	}

	return renderPage(fmt.Sprintf("GETTING STARTED (%d/%d)", m.idx+1, len(m.slides)), b.String(), hotKeys)
}

// cmdFinish marks onboarding as seen and moves on to the login screen.
// MarkAsSeen never fails the flow.
func (m *OnboardingModel) cmdFinish() tea.Cmd {
	ctx := m.ctx
	gate := m.gate

	return func() tea.Msg {
		_ = gate.MarkAsSeen(ctx)
		return NavigateTo{Path: navigation.PathLogin}
	}
}
