// Package accelerator registers process-wide keyboard shortcuts with the
// windowing system.
package accelerator

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/bnema/tabcast/internal/application/port"
	"github.com/bnema/tabcast/internal/domain/entity"
	"github.com/bnema/tabcast/internal/logging"
	"github.com/jezek/xgb/xproto"
)

var (
	// ErrAlreadyRegistered is returned when this process already holds the accelerator.
	ErrAlreadyRegistered = errors.New("accelerator already registered")
	// ErrNotRegistered is returned by Unregister for an unknown accelerator.
	ErrNotRegistered = errors.New("accelerator not registered")
	// ErrUnsupportedKey is returned when the key has no native equivalent.
	ErrUnsupportedKey = errors.New("unsupported accelerator key")
	// ErrGrabbedElsewhere is returned when another client holds the key.
	ErrGrabbedElsewhere = errors.New("accelerator grabbed by another client")
	// ErrNoDisplay is returned when no X display can be reached.
	ErrNoDisplay = errors.New("no X display")
	// ErrClosed is returned by Register after Close.
	ErrClosed = errors.New("accelerator manager closed")
)

type registration struct {
	name    string
	combo   combo
	handler port.AcceleratorHandler
}

// Manager implements port.GlobalAccelerator with X11 key grabs on the root
// window. The display is dialed on the first Register, so a Manager can be
// built on machines without X. IsRegistered only knows about grabs made
// through this Manager.
type Manager struct {
	mu      sync.Mutex
	display display
	regs    map[string]*registration
	byCombo map[combo]*registration
	closed  bool
	wg      sync.WaitGroup
	ctx     context.Context

	dial func() (display, error)
}

var _ port.GlobalAccelerator = (*Manager)(nil)

// NewManager creates a Manager. ctx carries the logger for event callbacks.
func NewManager(ctx context.Context) *Manager {
	return &Manager{
		regs:    make(map[string]*registration),
		byCombo: make(map[combo]*registration),
		ctx:     logging.WithComponent(ctx, "accelerator"),
		dial:    dialX11,
	}
}

// Register grabs accel and calls handler on every press and release.
func (m *Manager) Register(ctx context.Context, accel string, handler port.AcceleratorHandler) error {
	parsed, err := entity.ParseAccelerator(accel)
	if err != nil {
		return err
	}
	mods, sym, err := nativeAccelerator(parsed)
	if err != nil {
		return err
	}
	name := parsed.String()

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return ErrClosed
	}
	if _, ok := m.regs[name]; ok {
		return fmt.Errorf("%w: %s", ErrAlreadyRegistered, name)
	}

	d, err := m.connect()
	if err != nil {
		return err
	}
	code, err := d.Keycode(sym)
	if err != nil {
		return fmt.Errorf("grab %s: %w", name, err)
	}
	c := combo{mods: mods, code: code}
	if err := d.Grab(c); err != nil {
		return fmt.Errorf("grab %s: %w", name, err)
	}

	reg := &registration{name: name, combo: c, handler: handler}
	m.regs[name] = reg
	m.byCombo[c] = reg

	logging.FromContext(ctx).Debug().Str("accelerator", name).Msg("accelerator grabbed")
	return nil
}

// Unregister releases accel. It returns once the display has dropped the grab.
func (m *Manager) Unregister(ctx context.Context, accel string) error {
	parsed, err := entity.ParseAccelerator(accel)
	if err != nil {
		return err
	}
	name := parsed.String()

	m.mu.Lock()
	defer m.mu.Unlock()

	reg, ok := m.regs[name]
	if !ok {
		return fmt.Errorf("%w: %s", ErrNotRegistered, name)
	}
	delete(m.regs, name)
	delete(m.byCombo, reg.combo)

	if err := m.display.Ungrab(reg.combo); err != nil {
		return fmt.Errorf("release %s: %w", name, err)
	}
	logging.FromContext(ctx).Debug().Str("accelerator", name).Msg("accelerator released")
	return nil
}

// IsRegistered reports whether this Manager holds accel.
func (m *Manager) IsRegistered(_ context.Context, accel string) (bool, error) {
	parsed, err := entity.ParseAccelerator(accel)
	if err != nil {
		return false, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.regs[parsed.String()]
	return ok, nil
}

// Close releases every accelerator and disconnects from the display.
func (m *Manager) Close() error {
	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return nil
	}
	m.closed = true
	d := m.display
	regs := m.regs
	m.regs = make(map[string]*registration)
	m.byCombo = make(map[combo]*registration)
	m.mu.Unlock()

	if d == nil {
		return nil
	}

	var errs []error
	for name, reg := range regs {
		if err := d.Ungrab(reg.combo); err != nil {
			errs = append(errs, fmt.Errorf("release %s: %w", name, err))
		}
	}
	if err := d.Close(); err != nil {
		errs = append(errs, err)
	}
	m.wg.Wait()
	return errors.Join(errs...)
}

// connect dials the display once. Callers hold m.mu.
func (m *Manager) connect() (display, error) {
	if m.display != nil {
		return m.display, nil
	}
	d, err := m.dial()
	if err != nil {
		return nil, err
	}
	m.display = d

	m.wg.Add(1)
	go m.dispatch(d.Events())
	return d, nil
}

// dispatch routes key events to handlers. A release is matched by keycode
// alone because the modifiers may already be up.
func (m *Manager) dispatch(events <-chan keyEvent) {
	defer m.wg.Done()
	log := logging.FromContext(m.ctx)
	held := make(map[xproto.Keycode]*registration)

	for ev := range events {
		var reg *registration
		switch ev.state {
		case entity.KeyPressed:
			m.mu.Lock()
			reg = m.byCombo[ev.combo]
			m.mu.Unlock()
			if reg != nil {
				held[ev.combo.code] = reg
			}
		case entity.KeyReleased:
			reg = held[ev.combo.code]
			delete(held, ev.combo.code)
		}
		if reg == nil {
			continue
		}

		log.Trace().Str("accelerator", reg.name).Stringer("state", ev.state).Msg("accelerator event")
		if reg.handler != nil {
			reg.handler(ev.state)
		}
	}
}
