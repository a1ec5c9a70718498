// Package clipboard reads and writes the desktop clipboard through
// wl-clipboard on Wayland, or xclip/xsel on X11.
package clipboard

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/bnema/tabcast/internal/logging"
)

// ErrUnavailable is returned when no clipboard tool was found.
var ErrUnavailable = errors.New("no clipboard tool available (install wl-clipboard or xclip)")

// command is one external program with its arguments.
type command struct {
	path string
	args []string
}

type backend struct {
	display   string
	copyBin   string
	copyArgs  []string
	pasteBin  string
	pasteArgs []string
}

// backends in preference order.
var backends = []backend{
	{display: "WAYLAND_DISPLAY", copyBin: "wl-copy", pasteBin: "wl-paste", pasteArgs: []string{"--no-newline"}},
	{display: "DISPLAY", copyBin: "xclip", copyArgs: []string{"-selection", "clipboard"}, pasteBin: "xclip", pasteArgs: []string{"-selection", "clipboard", "-o"}},
	{display: "DISPLAY", copyBin: "xsel", copyArgs: []string{"--clipboard", "--input"}, pasteBin: "xsel", pasteArgs: []string{"--clipboard", "--output"}},
}

// Clipboard copies and pastes text.
type Clipboard struct {
	copy  *command
	paste *command
}

// New picks the first backend whose display is set and whose tools exist.
func New() *Clipboard {
	return detect(os.Getenv, exec.LookPath)
}

func detect(getenv func(string) string, lookPath func(string) (string, error)) *Clipboard {
	for _, b := range backends {
		if getenv(b.display) == "" {
			continue
		}
		copyPath, err := lookPath(b.copyBin)
		if err != nil {
			continue
		}
		c := &Clipboard{copy: &command{path: copyPath, args: b.copyArgs}}
		if pastePath, err := lookPath(b.pasteBin); err == nil {
			c.paste = &command{path: pastePath, args: b.pasteArgs}
		}
		return c
	}
	return &Clipboard{}
}

// Available reports whether text can be read.
func (c *Clipboard) Available() bool {
	return c.paste != nil
}

// WriteText replaces the clipboard content with text.
func (c *Clipboard) WriteText(ctx context.Context, text string) error {
	if c.copy == nil {
		return ErrUnavailable
	}
	cmd := exec.CommandContext(ctx, c.copy.path, c.copy.args...)
	cmd.Stdin = strings.NewReader(text)
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("clipboard write: %w", err)
	}
	logging.FromContext(ctx).Debug().Str("tool", c.copy.path).Int("len", len(text)).Msg("clipboard written")
	return nil
}

// ReadText returns the clipboard content.
func (c *Clipboard) ReadText(ctx context.Context) (string, error) {
	if c.paste == nil {
		return "", ErrUnavailable
	}
	out, err := exec.CommandContext(ctx, c.paste.path, c.paste.args...).Output()
	if err != nil {
		return "", fmt.Errorf("clipboard read: %w", err)
	}
	logging.FromContext(ctx).Debug().Str("tool", c.paste.path).Int("len", len(out)).Msg("clipboard read")
	return string(out), nil
}
