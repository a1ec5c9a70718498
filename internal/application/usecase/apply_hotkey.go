package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/bnema/tabcast/internal/application/port"
	"github.com/bnema/tabcast/internal/domain/entity"
	"github.com/bnema/tabcast/internal/logging"
)

var (
	// ErrCoordinatorClosed is returned by Apply after Close.
	ErrCoordinatorClosed = errors.New("hotkey coordinator closed")
	// ErrHotkeyUnavailable wraps registration failures.
	ErrHotkeyUnavailable = errors.New("hotkey unavailable")
)

// hotkeyQueueSize is the number of apply requests that can wait for the worker.
const hotkeyQueueSize = 16

const (
	requestPending int32 = iota
	requestTaken
	requestAbandoned
)

type hotkeyRequest struct {
	ctx    context.Context
	hotkey string
	result chan error
	state  *atomic.Int32
}

// take marks the request as started by the worker.
func (r hotkeyRequest) take() bool {
	return r.state.CompareAndSwap(requestPending, requestTaken)
}

// abandon withdraws a request the worker has not started.
func (r hotkeyRequest) abandon() bool {
	return r.state.CompareAndSwap(requestPending, requestAbandoned)
}

// HotkeyCoordinator owns the single global accelerator registered by this
// process. Apply requests run one at a time, in arrival order, on a
// dedicated worker so register and unregister calls never interleave.
type HotkeyCoordinator struct {
	accel     port.GlobalAccelerator
	onPressed func(ctx context.Context)

	mu      sync.RWMutex
	current string

	// sendMu orders enqueues before Close so no request is left unanswered.
	sendMu    sync.RWMutex
	closed    bool
	requests  chan hotkeyRequest
	done      chan struct{}
	closeOnce sync.Once
	wg        sync.WaitGroup
	ctx       context.Context // Base context for accelerator callbacks
}

// NewHotkeyCoordinator starts the apply worker. onPressed runs on every
// press of the registered accelerator.
func NewHotkeyCoordinator(ctx context.Context, accel port.GlobalAccelerator, onPressed func(ctx context.Context)) *HotkeyCoordinator {
	c := &HotkeyCoordinator{
		accel:     accel,
		onPressed: onPressed,
		requests:  make(chan hotkeyRequest, hotkeyQueueSize),
		done:      make(chan struct{}),
		ctx:       logging.WithComponent(ctx, "hotkey"),
	}

	c.wg.Add(1)
	go c.worker()

	return c
}

// Current returns the registered accelerator, or "" when none is.
func (c *HotkeyCoordinator) Current() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.current
}

// Apply replaces the registered accelerator with hotkey.
// Empty and reserved values are rejected before queueing. Applying the
// current value is a no-op. Cancelling ctx withdraws a queued request, but
// once the worker has started it Apply waits for and returns its outcome.
func (c *HotkeyCoordinator) Apply(ctx context.Context, hotkey string) error {
	normalized, err := entity.ValidateHotkey(hotkey)
	if err != nil {
		return err
	}

	req := hotkeyRequest{
		ctx:    ctx,
		hotkey: normalized,
		result: make(chan error, 1),
		state:  new(atomic.Int32),
	}
	if err := c.enqueue(ctx, req); err != nil {
		return err
	}

	select {
	case err := <-req.result:
		return err
	case <-ctx.Done():
		if req.abandon() {
			return ctx.Err()
		}
		return <-req.result
	}
}

func (c *HotkeyCoordinator) enqueue(ctx context.Context, req hotkeyRequest) error {
	c.sendMu.RLock()
	defer c.sendMu.RUnlock()

	if c.closed {
		return ErrCoordinatorClosed
	}
	select {
	case c.requests <- req:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close stops the worker, fails queued requests with ErrCoordinatorClosed
// and unregisters the current accelerator.
func (c *HotkeyCoordinator) Close() {
	c.closeOnce.Do(func() {
		c.sendMu.Lock()
		c.closed = true
		c.sendMu.Unlock()

		close(c.done)
		c.wg.Wait()

		current := c.Current()
		if current == "" {
			return
		}
		if err := c.accel.Unregister(c.ctx, current); err != nil {
			logging.FromContext(c.ctx).Warn().Err(err).Str("hotkey", current).Msg("failed to unregister hotkey on close")
		}
		c.setCurrent("")
	})
}

func (c *HotkeyCoordinator) worker() {
	defer c.wg.Done()

	for {
		select {
		case <-c.done:
			for {
				select {
				case req := <-c.requests:
					req.result <- ErrCoordinatorClosed
				default:
					return
				}
			}
		case req := <-c.requests:
			if err := req.ctx.Err(); err != nil {
				req.result <- err
				continue
			}
			if !req.take() {
				req.result <- context.Canceled
				continue
			}
			req.result <- c.apply(context.WithoutCancel(req.ctx), req.hotkey)
		}
	}
}

func (c *HotkeyCoordinator) apply(ctx context.Context, hotkey string) error {
	log := logging.FromContext(ctx)
	previous := c.Current()
	if hotkey == previous {
		log.Debug().Str("hotkey", hotkey).Msg("hotkey unchanged")
		return nil
	}

	if previous != "" {
		if err := c.accel.Unregister(ctx, previous); err != nil {
			log.Warn().Err(err).Str("hotkey", previous).Msg("failed to unregister previous hotkey")
		}
	}

	regErr := c.accel.Register(ctx, hotkey, c.handle)
	if regErr == nil {
		c.setCurrent(hotkey)
		log.Info().Str("hotkey", hotkey).Msg("hotkey registered")
		return nil
	}

	// The table may already hold this accelerator; adopt it as ours.
	registered, err := c.accel.IsRegistered(ctx, hotkey)
	if err == nil && registered {
		c.setCurrent(hotkey)
		log.Info().Str("hotkey", hotkey).Msg("hotkey already registered, adopted")
		return nil
	}

	log.Error().Err(regErr).Str("hotkey", hotkey).Msg("hotkey registration failed")
	return fmt.Errorf("register hotkey %q: %w: %w", hotkey, ErrHotkeyUnavailable, regErr)
}

func (c *HotkeyCoordinator) handle(state entity.KeyState) {
	if state != entity.KeyPressed || c.onPressed == nil {
		return
	}
	c.onPressed(c.ctx)
}

func (c *HotkeyCoordinator) setCurrent(hotkey string) {
	c.mu.Lock()
	c.current = hotkey
	c.mu.Unlock()
}
