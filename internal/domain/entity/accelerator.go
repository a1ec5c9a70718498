package entity

import (
	"fmt"
	"regexp"
	"strings"
)

// Modifier is a canonical accelerator modifier name.
type Modifier string

const (
	ModCtrl  Modifier = "Ctrl"
	ModAlt   Modifier = "Alt"
	ModShift Modifier = "Shift"
	ModSuper Modifier = "Super"
)

// modifierOrder is the canonical rendering order.
var modifierOrder = []Modifier{ModCtrl, ModAlt, ModShift, ModSuper}

var modifierAliases = map[string]Modifier{
	"ctrl":             ModCtrl,
	"control":          ModCtrl,
	"cmdorctrl":        ModCtrl,
	"commandorcontrol": ModCtrl,
	"alt":              ModAlt,
	"option":           ModAlt,
	"shift":            ModShift,
	"super":            ModSuper,
	"meta":             ModSuper,
	"cmd":              ModSuper,
	"command":          ModSuper,
	"win":              ModSuper,
}

var keyAliases = map[string]string{
	"space":      "Space",
	"esc":        "Esc",
	"escape":     "Esc",
	"up":         "Up",
	"arrowup":    "Up",
	"down":       "Down",
	"arrowdown":  "Down",
	"left":       "Left",
	"arrowleft":  "Left",
	"right":      "Right",
	"arrowright": "Right",
	"enter":      "Enter",
	"return":     "Enter",
	"tab":        "Tab",
	"backspace":  "Backspace",
	"delete":     "Delete",
	"insert":     "Insert",
	"home":       "Home",
	"end":        "End",
	"pageup":     "PageUp",
	"pagedown":   "PageDown",
}

var functionKey = regexp.MustCompile(`(?i)^f([1-9]|1[0-9]|2[0-4])$`)

// Accelerator is a parsed global shortcut such as Ctrl+Shift+K.
type Accelerator struct {
	Modifiers []Modifier
	Key       string
}

// ParseAccelerator parses a "+"-separated accelerator. Modifier aliases are
// folded (Control, Option, Cmd...) and the key is canonicalized.
func ParseAccelerator(s string) (Accelerator, error) {
	normalized := NormalizeHotkey(s)
	if normalized == "" {
		return Accelerator{}, ErrHotkeyEmpty
	}

	var (
		acc  Accelerator
		seen = map[Modifier]bool{}
	)
	for _, part := range strings.Split(normalized, "+") {
		token := strings.TrimSpace(part)
		if token == "" {
			return Accelerator{}, fmt.Errorf("accelerator %q: empty segment", s)
		}
		if mod, ok := modifierAliases[strings.ToLower(token)]; ok {
			seen[mod] = true
			continue
		}
		if acc.Key != "" {
			return Accelerator{}, fmt.Errorf("accelerator %q: more than one key", s)
		}
		key, ok := canonicalKey(token)
		if !ok {
			return Accelerator{}, fmt.Errorf("accelerator %q: unknown key %q", s, token)
		}
		acc.Key = key
	}
	if acc.Key == "" {
		return Accelerator{}, fmt.Errorf("accelerator %q: missing key", s)
	}
	for _, mod := range modifierOrder {
		if seen[mod] {
			acc.Modifiers = append(acc.Modifiers, mod)
		}
	}
	return acc, nil
}

func canonicalKey(token string) (string, bool) {
	if alias, ok := keyAliases[strings.ToLower(token)]; ok {
		return alias, true
	}
	if functionKey.MatchString(token) {
		return strings.ToUpper(token), true
	}
	if len(token) == 1 {
		c := token[0]
		if (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9') {
			return strings.ToUpper(token), true
		}
	}
	return "", false
}

// Has reports whether mod is part of the accelerator.
func (a Accelerator) Has(mod Modifier) bool {
	for _, m := range a.Modifiers {
		if m == mod {
			return true
		}
	}
	return false
}

// String renders the canonical form, e.g. "Ctrl+Alt+K".
func (a Accelerator) String() string {
	parts := make([]string, 0, len(a.Modifiers)+1)
	for _, mod := range a.Modifiers {
		parts = append(parts, string(mod))
	}
	return strings.Join(append(parts, a.Key), "+")
}

// KeyModifiers is the modifier state of a captured key event.
type KeyModifiers struct {
	Ctrl, Alt, Shift, Super bool
}

// CaptureAccelerator builds an accelerator string from a recorded key event,
// using DOM-style key and code names. It returns false while only a modifier
// is held.
func CaptureAccelerator(key, code string, mods KeyModifiers) (string, bool) {
	name, ok := captureKey(key, code)
	if !ok {
		return "", false
	}

	var parts []string
	if mods.Ctrl {
		parts = append(parts, string(ModCtrl))
	}
	if mods.Alt {
		parts = append(parts, string(ModAlt))
	}
	if mods.Shift {
		parts = append(parts, string(ModShift))
	}
	if mods.Super {
		parts = append(parts, string(ModSuper))
	}
	return strings.Join(append(parts, name), "+"), true
}

var captureAliases = map[string]string{
	" ":          "Space",
	"Escape":     "Esc",
	"ArrowUp":    "Up",
	"ArrowDown":  "Down",
	"ArrowLeft":  "Left",
	"ArrowRight": "Right",
	"PageUp":     "PageUp",
	"PageDown":   "PageDown",
	"Backspace":  "Backspace",
	"Delete":     "Delete",
	"Insert":     "Insert",
	"Home":       "Home",
	"End":        "End",
	"Tab":        "Tab",
}

func captureKey(key, code string) (string, bool) {
	switch key {
	case "Shift", "Control", "Alt", "Meta", "":
		return "", false
	}
	if alias, ok := captureAliases[key]; ok {
		return alias, true
	}
	if len([]rune(key)) == 1 {
		return strings.ToUpper(key), true
	}
	if functionKey.MatchString(key) {
		return strings.ToUpper(key), true
	}
	if rest, ok := strings.CutPrefix(code, "Key"); ok {
		return strings.ToUpper(rest), true
	}
	if rest, ok := strings.CutPrefix(code, "Digit"); ok {
		return rest, true
	}
	return key, true
}
