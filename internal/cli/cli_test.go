package cli

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bnema/tabcast/internal/infrastructure/config"
	"github.com/bnema/tabcast/internal/infrastructure/control"
)

func newTestApp(t *testing.T) *App {
	t.Helper()
	mgr, err := config.NewManagerForFile(filepath.Join(t.TempDir(), "config.toml"))
	require.NoError(t, err)
	require.NoError(t, mgr.Load())
	return NewAppWithManager(mgr, &bytes.Buffer{})
}

// fakeClient stands in for control.Client. A nil err field means success.
type fakeClient struct {
	status *control.Status
	err    error

	sent    []string
	hotkeys []string
	calls   []string
}

func (f *fakeClient) Status(context.Context) (*control.Status, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.status, nil
}

func (f *fakeClient) SendPrompt(_ context.Context, prompt string) error {
	f.sent = append(f.sent, prompt)
	return f.err
}

func (f *fakeClient) SetHotkey(_ context.Context, hotkey string) (string, error) {
	f.hotkeys = append(f.hotkeys, hotkey)
	if f.err != nil {
		return "", f.err
	}
	return hotkey, nil
}

func (f *fakeClient) ToggleQuick(context.Context) error {
	f.calls = append(f.calls, "toggle")
	return f.err
}

func (f *fakeClient) ShowMain(context.Context) error {
	f.calls = append(f.calls, "show")
	return f.err
}

func (f *fakeClient) OpenSettings(context.Context) error {
	f.calls = append(f.calls, "settings")
	return f.err
}

func newManagerAt(t *testing.T, path string) *config.Manager {
	t.Helper()
	mgr, err := config.NewManagerForFile(path)
	require.NoError(t, err)
	require.NoError(t, mgr.Load())
	return mgr
}
