package accelerator

import (
	"errors"
	"fmt"

	"github.com/bnema/tabcast/internal/domain/entity"
	"github.com/jezek/xgb"
	"github.com/jezek/xgb/xproto"
)

// combo is a grabbed key: a modifier mask plus a keycode.
type combo struct {
	mods uint16
	code xproto.Keycode
}

type keyEvent struct {
	combo combo
	state entity.KeyState
}

// display is the windowing-system connection behind a Manager.
type display interface {
	Keycode(sym xproto.Keysym) (xproto.Keycode, error)
	Grab(c combo) error
	Ungrab(c combo) error
	// Events is closed once the connection is gone.
	Events() <-chan keyEvent
	Close() error
}

// x11 grabs keys on the root window of the default screen.
type x11 struct {
	conn     *xgb.Conn
	root     xproto.Window
	min, max xproto.Keycode
	events   chan keyEvent
}

func dialX11() (display, error) {
	conn, err := xgb.NewConn()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNoDisplay, err)
	}
	setup := xproto.Setup(conn)
	d := &x11{
		conn:   conn,
		root:   setup.DefaultScreen(conn).Root,
		min:    setup.MinKeycode,
		max:    setup.MaxKeycode,
		events: make(chan keyEvent, 16),
	}
	go d.read()
	return d, nil
}

func (d *x11) Keycode(sym xproto.Keysym) (xproto.Keycode, error) {
	count := int(d.max) - int(d.min) + 1
	reply, err := xproto.GetKeyboardMapping(d.conn, d.min, byte(count)).Reply()
	if err != nil {
		return 0, fmt.Errorf("keyboard mapping: %w", err)
	}
	per := int(reply.KeysymsPerKeycode)
	for i := 0; i < count; i++ {
		for j := 0; j < per && i*per+j < len(reply.Keysyms); j++ {
			if reply.Keysyms[i*per+j] == sym {
				return d.min + xproto.Keycode(i), nil
			}
		}
	}
	return 0, fmt.Errorf("%w: keysym %#x is not on the keyboard", ErrUnsupportedKey, uint32(sym))
}

func (d *x11) Grab(c combo) error {
	for _, lock := range lockMasks {
		err := xproto.GrabKeyChecked(d.conn, true, d.root, c.mods|lock, c.code,
			xproto.GrabModeAsync, xproto.GrabModeAsync).Check()
		if err != nil {
			_ = d.Ungrab(c)
			return grabError(err)
		}
	}
	return nil
}

// Ungrab waits for the server to acknowledge every release.
func (d *x11) Ungrab(c combo) error {
	var errs []error
	for _, lock := range lockMasks {
		if err := xproto.UngrabKeyChecked(d.conn, c.code, d.root, c.mods|lock).Check(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (d *x11) Events() <-chan keyEvent { return d.events }

func (d *x11) Close() error {
	d.conn.Close()
	return nil
}

func (d *x11) read() {
	defer close(d.events)
	for {
		ev, err := d.conn.WaitForEvent()
		if ev == nil && err == nil {
			return
		}
		switch e := ev.(type) {
		case xproto.KeyPressEvent:
			d.events <- keyEvent{combo{e.State & significantMods, e.Detail}, entity.KeyPressed}
		case xproto.KeyReleaseEvent:
			d.events <- keyEvent{combo{e.State & significantMods, e.Detail}, entity.KeyReleased}
		}
	}
}

// grabError reports a key held by another client as ErrGrabbedElsewhere.
func grabError(err error) error {
	var access xproto.AccessError
	if errors.As(err, &access) {
		return fmt.Errorf("%w: %w", ErrGrabbedElsewhere, err)
	}
	return err
}
