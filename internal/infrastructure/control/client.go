package control

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"
)

// ErrNotRunning is returned when no instance listens on the socket.
var ErrNotRunning = errors.New("tabcast is not running")

// Client talks to a running instance over its control socket.
type Client struct {
	http *http.Client
	base string
}

// NewClient creates a client for socketPath.
func NewClient(socketPath string) *Client {
	transport := &http.Transport{
		DialContext: func(ctx context.Context, _, _ string) (net.Conn, error) {
			var d net.Dialer
			return d.DialContext(ctx, "unix", socketPath)
		},
	}
	return &Client{
		http: &http.Client{Transport: transport, Timeout: 10 * time.Second},
		base: "http://tabcast",
	}
}

// Status returns the hotkey and tools of the running instance.
func (c *Client) Status(ctx context.Context) (*Status, error) {
	var status Status
	if err := c.do(ctx, http.MethodGet, "/v1/status", nil, &status); err != nil {
		return nil, err
	}
	return &status, nil
}

// SendPrompt shows the main window and broadcasts prompt.
func (c *Client) SendPrompt(ctx context.Context, prompt string) error {
	return c.do(ctx, http.MethodPost, "/v1/prompt", PromptRequest{Prompt: prompt}, nil)
}

// ToggleQuick toggles the quick window.
func (c *Client) ToggleQuick(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "/v1/quick/toggle", nil, nil)
}

// ShowMain shows the main window.
func (c *Client) ShowMain(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "/v1/main/show", nil, nil)
}

// OpenSettings opens the settings tab of the main window.
func (c *Client) OpenSettings(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "/v1/settings/open", nil, nil)
}

// SetHotkey replaces the global accelerator and returns the applied value.
func (c *Client) SetHotkey(ctx context.Context, hotkey string) (string, error) {
	var resp HotkeyRequest
	if err := c.do(ctx, http.MethodPut, "/v1/hotkey", HotkeyRequest{Hotkey: hotkey}, &resp); err != nil {
		return "", err
	}
	return resp.Hotkey, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.base+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		var opErr *net.OpError
		if errors.As(err, &opErr) && opErr.Op == "dial" {
			return ErrNotRunning
		}
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		var eb ErrorBody
		if err := json.NewDecoder(resp.Body).Decode(&eb); err != nil || eb.Error.Code == "" {
			return fmt.Errorf("%s %s: %s", method, path, resp.Status)
		}
		return &eb.Error
	}
	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
