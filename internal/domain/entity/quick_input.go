package entity

import "strings"

// QuickCommand is a slash command typed into the quick window.
type QuickCommand string

const (
	QuickCommandNone     QuickCommand = ""
	QuickCommandSettings QuickCommand = "settings"
	QuickCommandClear    QuickCommand = "clear"
	QuickCommandHelp     QuickCommand = "help"
	QuickCommandUnknown  QuickCommand = "unknown"
)

// QuickHelp lists the quick window commands.
const QuickHelp = "commands: /settings /clear /help"

// QuickInput is parsed quick window text.
type QuickInput struct {
	Command QuickCommand
	// Name is the raw command word, kept for unknown-command messages.
	Name   string
	Prompt string
}

// ParseQuickInput trims text and recognizes leading slash commands.
func ParseQuickInput(text string) QuickInput {
	trimmed := strings.TrimSpace(text)
	if !strings.HasPrefix(trimmed, "/") {
		return QuickInput{Prompt: trimmed}
	}

	name := strings.Fields(trimmed)[0]
	in := QuickInput{Name: name}
	switch name {
	case "/settings", "/config":
		in.Command = QuickCommandSettings
	case "/clear":
		in.Command = QuickCommandClear
	case "/help", "/?":
		in.Command = QuickCommandHelp
	default:
		in.Command = QuickCommandUnknown
	}
	return in
}
