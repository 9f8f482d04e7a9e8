// Package tui holds the interactive setup form.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/kwchen/ccnotify/internal/core/config"
)

// setup form field indices
const (
	fieldWebhook = iota
	fieldBark
	fieldPush
	fieldScope
	fieldCount
)

// SetupResult is what the form hands back to the setup command.
type SetupResult struct {
	Config       config.Config
	ProjectScope bool
	Aborted      bool
}

type setupModel struct {
	webhook textinput.Model
	barkURL textinput.Model
	pushOn  bool
	project bool
	focus   int
	aborted bool
	initial config.Config
}

func newSetupModel(initial config.Config) setupModel {
	wh := textinput.New()
	wh.Placeholder = "https://open.feishu.cn/open-apis/bot/v2/hook/..."
	wh.CharLimit = 300
	wh.Width = 60
	wh.SetValue(initial.FeishuWebhookURL)
	wh.Focus()

	bk := textinput.New()
	bk.Placeholder = "https://api.day.app/YOUR_KEY or just YOUR_KEY"
	bk.CharLimit = 300
	bk.Width = 60
	bk.SetValue(initial.IOSPushURL)

	return setupModel{
		webhook: wh,
		barkURL: bk,
		pushOn:  initial.IOSPushEnabled,
		focus:   fieldWebhook,
		initial: initial,
	}
}

// RunSetupForm shows the interactive form and returns the edited config.
func RunSetupForm(initial config.Config) (SetupResult, error) {
	final, err := tea.NewProgram(newSetupModel(initial)).Run()
	if err != nil {
		return SetupResult{}, fmt.Errorf("setup form: %w", err)
	}

	m, ok := final.(setupModel)
	if !ok || m.aborted {
		return SetupResult{Aborted: true}, nil
	}

	cfg := m.initial
	cfg.FeishuWebhookURL = strings.TrimSpace(m.webhook.Value())
	cfg.IOSPushURL = strings.TrimSpace(m.barkURL.Value())
	cfg.IOSPushEnabled = m.pushOn && cfg.IOSPushURL != ""
	return SetupResult{Config: cfg, ProjectScope: m.project}, nil
}

func (m setupModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m setupModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m.updateFocused(msg)
	}

	switch keyMsg.String() {
	case "esc", "ctrl+c":
		m.aborted = true
		return m, tea.Quit

	case "tab", "down":
		m.blurCurrent()
		m.focus = (m.focus + 1) % fieldCount
		m.focusCurrent()
		return m, nil

	case "shift+tab", "up":
		m.blurCurrent()
		m.focus = (m.focus - 1 + fieldCount) % fieldCount
		m.focusCurrent()
		return m, nil

	case "enter":
		return m, tea.Quit
	}

	// toggles react to space / arrows, text fields take everything else
	switch m.focus {
	case fieldPush:
		switch keyMsg.String() {
		case " ", "space", "left", "right":
			m.pushOn = !m.pushOn
		}
		return m, nil
	case fieldScope:
		switch keyMsg.String() {
		case " ", "space", "left", "right":
			m.project = !m.project
		}
		return m, nil
	}
	return m.updateFocused(msg)
}

func (m setupModel) updateFocused(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.focus {
	case fieldWebhook:
		m.webhook, cmd = m.webhook.Update(msg)
	case fieldBark:
		m.barkURL, cmd = m.barkURL.Update(msg)
	}
	return m, cmd
}

func (m *setupModel) blurCurrent() {
	switch m.focus {
	case fieldWebhook:
		m.webhook.Blur()
	case fieldBark:
		m.barkURL.Blur()
	}
}

func (m *setupModel) focusCurrent() {
	switch m.focus {
	case fieldWebhook:
		m.webhook.Focus()
	case fieldBark:
		m.barkURL.Focus()
	}
}

func (m setupModel) View() string {
	var b strings.Builder

	b.WriteString(HeaderStyle.Render("ccnotify setup"))
	b.WriteString("\n\n")

	b.WriteString(m.label(fieldWebhook, "Feishu webhook URL (leave empty to skip)"))
	b.WriteString("\n" + m.webhook.View() + "\n\n")

	b.WriteString(m.label(fieldBark, "Bark push URL or device key (leave empty to skip)"))
	b.WriteString("\n" + m.barkURL.View() + "\n\n")

	b.WriteString(m.label(fieldPush, "iOS push enabled"))
	b.WriteString("  " + toggleView(m.pushOn, "yes", "no") + "\n\n")

	b.WriteString(m.label(fieldScope, "Save config to"))
	b.WriteString("  " + toggleView(m.project, ".ccnotify.toml (project)", "~/.config/ccnotify/config.toml (user)"))
	b.WriteString("\n\n")

	b.WriteString(hintStyle.Render("tab/shift+tab: move · space: toggle · enter: save · esc: abort"))
	b.WriteString("\n")
	return b.String()
}

func (m setupModel) label(field int, text string) string {
	if m.focus == field {
		return focusedLabelStyle.Render("▸ " + text)
	}
	return labelStyle.Render("  " + text)
}

func toggleView(on bool, yes, no string) string {
	if on {
		return "(•) " + yes
	}
	return "( ) " + no
}
