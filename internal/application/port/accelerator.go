package port

//go:generate mockgen -source=accelerator.go -destination=gomocks/mock_accelerator.go -package=mock_port

import (
	"context"

	"github.com/bnema/tabcast/internal/domain/entity"
)

// AcceleratorHandler is called on every press and release of a registered
// accelerator.
type AcceleratorHandler func(state entity.KeyState)

// GlobalAccelerator is the OS-level hotkey table.
type GlobalAccelerator interface {
	Register(ctx context.Context, accelerator string, handler AcceleratorHandler) error
	Unregister(ctx context.Context, accelerator string) error
	IsRegistered(ctx context.Context, accelerator string) (bool, error)
}
