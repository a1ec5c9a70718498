package cli

import (
	"fmt"

	"github.com/bnema/tabcast/internal/domain/entity"
	"github.com/bnema/tabcast/internal/domain/inject"
)

// Script builds the delivery script tool id would receive for prompt.
// The script is parsed before it is returned.
func Script(s entity.Settings, id, prompt string) (string, error) {
	tool, ok := entity.FindTool(s.Tools, id)
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrToolNotFound, id)
	}
	return inject.BuildValidated(prompt, tool)
}
