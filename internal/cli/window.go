package cli

import (
	"context"
)

// WindowClient drives the windows of the running instance.
type WindowClient interface {
	ToggleQuick(ctx context.Context) error
	ShowMain(ctx context.Context) error
	OpenSettings(ctx context.Context) error
}

// ToggleQuick shows or hides the quick window.
func ToggleQuick(ctx context.Context, c WindowClient) error {
	return remoteErr(c.ToggleQuick(ctx))
}

// ShowMain raises the main window.
func ShowMain(ctx context.Context, c WindowClient) error {
	return remoteErr(c.ShowMain(ctx))
}

// OpenSettings raises the main window on its settings tab.
func OpenSettings(ctx context.Context, c WindowClient) error {
	return remoteErr(c.OpenSettings(ctx))
}
