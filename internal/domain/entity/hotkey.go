package entity

import (
	"errors"
	"strings"
)

var (
	// ErrHotkeyEmpty is returned for a blank accelerator.
	ErrHotkeyEmpty = errors.New("hotkey is empty")
	// ErrHotkeyReserved is returned for Esc, which dismisses windows.
	ErrHotkeyReserved = errors.New("hotkey is reserved")
)

// DefaultHotkey toggles the quick window.
const DefaultHotkey = "Alt+Q"

// NormalizeHotkey trims surrounding whitespace.
func NormalizeHotkey(hotkey string) string {
	return strings.TrimSpace(hotkey)
}

// IsReservedHotkey reports whether hotkey is Esc or Escape, in any case.
func IsReservedHotkey(hotkey string) bool {
	switch strings.ToLower(NormalizeHotkey(hotkey)) {
	case "esc", "escape":
		return true
	}
	return false
}

// ValidateHotkey returns the normalized hotkey or why it cannot be applied.
func ValidateHotkey(hotkey string) (string, error) {
	normalized := NormalizeHotkey(hotkey)
	if IsReservedHotkey(normalized) {
		return "", ErrHotkeyReserved
	}
	if normalized == "" {
		return "", ErrHotkeyEmpty
	}
	return normalized, nil
}

// KeyState discriminates accelerator press and release transitions.
type KeyState int

const (
	KeyPressed KeyState = iota + 1
	KeyReleased
)

func (s KeyState) String() string {
	switch s {
	case KeyPressed:
		return "pressed"
	case KeyReleased:
		return "released"
	}
	return "unknown"
}
