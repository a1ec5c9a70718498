package port

import (
	"context"

	"github.com/bnema/tabcast/internal/domain/entity"
)

// SettingsSource is a synchronous, read-only view of the settings store.
type SettingsSource interface {
	Settings() entity.Settings
}

// SettingsWriter persists settings edits.
type SettingsWriter interface {
	SaveSettings(ctx context.Context, settings entity.Settings) error
}

// SettingsStore is both.
type SettingsStore interface {
	SettingsSource
	SettingsWriter
}
