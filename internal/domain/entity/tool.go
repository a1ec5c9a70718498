// Package entity defines the domain entities of tabcast.
package entity

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strconv"
	"strings"
	"time"
	"unicode/utf16"
)

// SurfacePrefix marks every embedded surface owned by tabcast.
// Reconciliation only ever closes labels carrying it.
const SurfacePrefix = "ai-tab-"

// Tool describes one third-party chat site a prompt can be delivered to.
type Tool struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	URL     string `json:"url"`
	Enabled bool   `json:"enabled"`
	// InputSelector overrides the built-in input heuristics when set.
	InputSelector string `json:"input_selector,omitempty"`
	// SendSelector overrides the built-in send button heuristics when set.
	SendSelector  string `json:"send_selector,omitempty"`
	SendWithEnter bool   `json:"send_with_enter"`
}

// Label returns the surface label derived from the tool identity.
func (t Tool) Label() string {
	return SurfaceLabel(t.ID, t.Name)
}

// SurfaceLabel derives a surface label from id, falling back to name and
// then to "tool".
func SurfaceLabel(id, name string) string {
	base := id
	if base == "" {
		base = name
	}
	if base == "" {
		base = "tool"
	}
	return SurfacePrefix + normalizeLabel(base)
}

// IsSurfaceLabel reports whether label belongs to a tool surface.
func IsSurfaceLabel(label string) bool {
	return strings.HasPrefix(label, SurfacePrefix)
}

// normalizeLabel replaces every UTF-16 code unit outside [a-z0-9_-] with a
// dash, so a character outside the BMP yields two dashes.
func normalizeLabel(s string) string {
	units := utf16.Encode([]rune(strings.ToLower(s)))
	var b strings.Builder
	b.Grow(len(units))
	for _, u := range units {
		switch {
		case u >= 'a' && u <= 'z', u >= '0' && u <= '9', u == '-', u == '_':
			b.WriteByte(byte(u))
		default:
			b.WriteByte('-')
		}
	}
	return b.String()
}

// EnabledTools returns the enabled tools, preserving order.
func EnabledTools(tools []Tool) []Tool {
	enabled := make([]Tool, 0, len(tools))
	for _, tool := range tools {
		if tool.Enabled {
			enabled = append(enabled, tool)
		}
	}
	return enabled
}

// FindTool returns the tool with the given id.
func FindTool(tools []Tool, id string) (Tool, bool) {
	for _, tool := range tools {
		if tool.ID == id {
			return tool, true
		}
	}
	return Tool{}, false
}

// NewToolID generates an id of the form tool-<unix millis>-<random base36>.
func NewToolID(now time.Time) string {
	n, err := rand.Int(rand.Reader, big.NewInt(36*36*36*36*36*36))
	suffix := "0"
	if err == nil {
		suffix = strconv.FormatInt(n.Int64(), 36)
	}
	suffix = strings.Repeat("0", 6-len(suffix)) + suffix
	return fmt.Sprintf("tool-%d-%s", now.UnixMilli(), suffix)
}
