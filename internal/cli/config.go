package cli

import (
	"github.com/bnema/tabcast/internal/infrastructure/config"
)

// ConfigPath returns the config file in use.
func (a *App) ConfigPath() string {
	return a.Manager.GetConfigFile()
}

// WriteSchema writes the JSON schema next to the config file and returns
// its path.
func (a *App) WriteSchema() (string, error) {
	return config.GenerateSchemaFile(a.ConfigPath())
}
