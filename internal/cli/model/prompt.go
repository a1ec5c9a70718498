// Package model holds the bubbletea models of the CLI.
package model

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/tabcast/internal/cli/styles"
	"github.com/bnema/tabcast/internal/domain/entity"
)

const promptPlaceholder = "Type a prompt and press Enter"

// PromptActions are what the prompt entry can trigger.
type PromptActions struct {
	Send         func(ctx context.Context, prompt string) error
	OpenSettings func(ctx context.Context) error
}

type noticeLevel int

const (
	noticeInfo noticeLevel = iota
	noticeWarning
	noticeError
)

// sentMsg reports the outcome of a send.
type sentMsg struct {
	err error
}

// settingsMsg reports the outcome of /settings.
type settingsMsg struct {
	err error
}

// PromptModel is a terminal version of the quick window: one entry whose
// text is forwarded to the running instance.
type PromptModel struct {
	ctx     context.Context
	actions PromptActions
	theme   *styles.Theme
	keys    styles.PromptKeyMap
	help    help.Model
	input   textinput.Model

	notice  string
	level   noticeLevel
	sending bool
	// Sent is set once a prompt was accepted.
	Sent bool
	width int
}

// NewPromptModel creates the model.
func NewPromptModel(ctx context.Context, theme *styles.Theme, actions PromptActions) PromptModel {
	input := styles.NewPromptInput(theme, promptPlaceholder)
	input.Focus()
	return PromptModel{
		ctx:     ctx,
		actions: actions,
		theme:   theme,
		keys:    styles.DefaultPromptKeyMap(),
		help:    styles.NewHelp(theme),
		input:   input,
	}
}

// Init implements tea.Model.
func (m PromptModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m PromptModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.input.Width = max(msg.Width-8, 10)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Send):
			if m.sending {
				return m, nil
			}
			return m.submit()
		}

	case sentMsg:
		m.sending = false
		if msg.err != nil {
			m.setNotice(noticeError, "sending failed: "+msg.err.Error())
			return m, nil
		}
		m.Sent = true
		return m, tea.Quit

	case settingsMsg:
		if msg.err != nil {
			m.setNotice(noticeError, msg.err.Error())
			return m, nil
		}
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m PromptModel) submit() (tea.Model, tea.Cmd) {
	in := entity.ParseQuickInput(m.input.Value())
	switch in.Command {
	case entity.QuickCommandSettings:
		m.input.SetValue("")
		return m, m.openSettings()
	case entity.QuickCommandClear:
		m.input.SetValue("")
		m.notice = ""
		return m, nil
	case entity.QuickCommandHelp:
		m.setNotice(noticeInfo, entity.QuickHelp)
		return m, nil
	case entity.QuickCommandUnknown:
		m.setNotice(noticeWarning, "unknown command: "+in.Name)
		return m, nil
	}

	if in.Prompt == "" {
		m.setNotice(noticeWarning, "type a prompt first")
		return m, nil
	}
	m.sending = true
	m.setNotice(noticeInfo, "sending…")
	return m, m.send(in.Prompt)
}

func (m PromptModel) send(prompt string) tea.Cmd {
	ctx, send := m.ctx, m.actions.Send
	return func() tea.Msg {
		return sentMsg{err: send(ctx, prompt)}
	}
}

func (m PromptModel) openSettings() tea.Cmd {
	ctx, open := m.ctx, m.actions.OpenSettings
	return func() tea.Msg {
		return settingsMsg{err: open(ctx)}
	}
}

func (m *PromptModel) setNotice(level noticeLevel, text string) {
	m.level = level
	m.notice = text
}

// Value returns the current entry text.
func (m PromptModel) Value() string {
	return m.input.Value()
}

// View implements tea.Model.
func (m PromptModel) View() string {
	var b strings.Builder
	b.WriteString(m.theme.Title.Render(styles.IconSend + " tabcast"))
	b.WriteString("\n")
	b.WriteString(m.theme.InputBox(m.input.View(), !m.sending))
	b.WriteString("\n")
	if m.notice != "" {
		b.WriteString(m.noticeStyle().Render(m.notice))
		b.WriteString("\n")
	}
	b.WriteString(m.help.View(m.keys))
	return lipgloss.NewStyle().Padding(0, 1).Render(b.String())
}

func (m PromptModel) noticeStyle() lipgloss.Style {
	switch m.level {
	case noticeWarning:
		return m.theme.WarningStyle
	case noticeError:
		return m.theme.ErrorStyle
	default:
		return m.theme.Subtle
	}
}
