package inject

import (
	"fmt"

	"github.com/grafana/sobek"
)

// Validate parses script as ECMAScript without executing it.
func Validate(script string) error {
	if _, err := sobek.Compile("deliver.js", script, false); err != nil {
		return fmt.Errorf("invalid delivery script: %w", err)
	}
	return nil
}
