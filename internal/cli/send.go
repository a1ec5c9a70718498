package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/bnema/tabcast/internal/infrastructure/control"
)

// ErrNotRunningHint wraps control.ErrNotRunning with what to do about it.
var ErrNotRunningHint = fmt.Errorf("%w: start it with `tabcast run`", control.ErrNotRunning)

// PromptSender forwards prompts to the running instance.
type PromptSender interface {
	SendPrompt(ctx context.Context, prompt string) error
}

// Send forwards prompt to the main window of the running instance.
func Send(ctx context.Context, client PromptSender, prompt string) error {
	if strings.TrimSpace(prompt) == "" {
		return errors.New("prompt is empty")
	}
	return remoteErr(client.SendPrompt(ctx, prompt))
}

// ReadPrompt joins args, or reads r when args is empty or "-".
func ReadPrompt(args []string, r io.Reader) (string, error) {
	if len(args) > 0 && !(len(args) == 1 && args[0] == "-") {
		return strings.Join(args, " "), nil
	}
	data, err := io.ReadAll(bufio.NewReader(r))
	if err != nil {
		return "", fmt.Errorf("read prompt: %w", err)
	}
	return strings.TrimRight(string(data), "\r\n"), nil
}

// remoteErr turns transport and API failures into user-facing errors.
func remoteErr(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, control.ErrNotRunning) {
		return ErrNotRunningHint
	}
	var apiErr *control.APIError
	if errors.As(err, &apiErr) {
		return errors.New(apiErr.Message)
	}
	return err
}

// TextReader reads text from somewhere outside the process.
type TextReader interface {
	ReadText(ctx context.Context) (string, error)
}

// ClipboardPrompt reads the prompt from the clipboard.
func ClipboardPrompt(ctx context.Context, r TextReader) (string, error) {
	text, err := r.ReadText(ctx)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(text) == "" {
		return "", errors.New("clipboard is empty")
	}
	return text, nil
}
