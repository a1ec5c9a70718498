package accelerator

import (
	"fmt"

	"github.com/bnema/tabcast/internal/domain/entity"
	"github.com/jezek/xgb/xproto"
)

// X11 modifier masks: Mod1 is Alt and Mod4 is Super on common keymaps.
var nativeModifiers = map[entity.Modifier]uint16{
	entity.ModCtrl:  xproto.ModMaskControl,
	entity.ModAlt:   xproto.ModMask1,
	entity.ModShift: xproto.ModMaskShift,
	entity.ModSuper: xproto.ModMask4,
}

// lockMasks are the Caps Lock and Num Lock states a grab must also cover.
var lockMasks = []uint16{
	0,
	xproto.ModMaskLock,
	xproto.ModMask2,
	xproto.ModMaskLock | xproto.ModMask2,
}

// significantMods strips lock and pointer button bits from an event state.
const significantMods = (xproto.ModMaskShift | xproto.ModMaskControl |
	xproto.ModMask1 | xproto.ModMask3 | xproto.ModMask4 | xproto.ModMask5)

// X11 keysyms for named keys.
var nativeKeys = map[string]xproto.Keysym{
	"Space":     0x0020,
	"Enter":     0xff0d,
	"Esc":       0xff1b,
	"Tab":       0xff09,
	"Delete":    0xffff,
	"Backspace": 0xff08,
	"Home":      0xff50,
	"Left":      0xff51,
	"Up":        0xff52,
	"Right":     0xff53,
	"Down":      0xff54,
	"PageUp":    0xff55,
	"PageDown":  0xff56,
	"End":       0xff57,
	"Insert":    0xff63,
}

const (
	keysymLowerA = 0x0061
	keysym0      = 0x0030
	keysymF1     = 0xffbe
)

// nativeAccelerator maps a parsed accelerator to an X11 modifier mask and keysym.
func nativeAccelerator(acc entity.Accelerator) (uint16, xproto.Keysym, error) {
	var mods uint16
	for _, m := range acc.Modifiers {
		mods |= nativeModifiers[m]
	}

	sym, err := nativeKey(acc.Key)
	if err != nil {
		return 0, 0, err
	}
	return mods, sym, nil
}

func nativeKey(name string) (xproto.Keysym, error) {
	if sym, ok := nativeKeys[name]; ok {
		return sym, nil
	}
	if len(name) == 1 {
		c := name[0]
		switch {
		case c >= 'A' && c <= 'Z':
			return keysymLowerA + xproto.Keysym(c-'A'), nil
		case c >= '0' && c <= '9':
			return keysym0 + xproto.Keysym(c-'0'), nil
		}
	}
	var n int
	if _, err := fmt.Sscanf(name, "F%d", &n); err == nil && n >= 1 && n <= 24 {
		return keysymF1 + xproto.Keysym(n-1), nil
	}
	return 0, fmt.Errorf("%w: %s", ErrUnsupportedKey, name)
}
