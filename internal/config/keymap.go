package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jezek/xgb/xproto"
)

// resolveMod translates the configured modifier alias into an X modifier
// mask. Caps Lock is kept available as an option for users who prefer it,
// but the default is the conventional Super/Mod4 key most tiling setups
// use.
func resolveMod(name string) (uint16, error) {
	switch strings.ToLower(name) {
	case "", "mod4", "super", "win":
		return xproto.ModMask4, nil
	case "mod1", "alt":
		return xproto.ModMask1, nil
	case "capslock", "lock":
		return xproto.ModMaskLock, nil
	case "control", "ctrl":
		return xproto.ModMaskControl, nil
	case "shift":
		return xproto.ModMaskShift, nil
	default:
		return 0, fmt.Errorf("unknown mod_key %q", name)
	}
}

// parseKeyCombo parses a "+"-joined combo string such as "mod+shift+Return"
// into a modifier mask and keysym. "mod" expands to the configured modMask;
// other tokens are either modifier names or resolved through keysymByName.
func parseKeyCombo(combo string, modMask uint16) (uint16, xproto.Keysym, error) {
	parts := strings.Split(combo, "+")
	if len(parts) == 0 {
		return 0, 0, fmt.Errorf("empty combo")
	}
	var mods uint16
	var keyToken string
	for i, p := range parts {
		last := i == len(parts)-1
		if !last {
			m, ok := modifierToken(p, modMask)
			if !ok {
				return 0, 0, fmt.Errorf("unknown modifier %q", p)
			}
			mods |= m
			continue
		}
		keyToken = p
	}
	sym, ok := keysymByName[keyToken]
	if !ok {
		return 0, 0, fmt.Errorf("unknown key %q", keyToken)
	}
	return mods, sym, nil
}

// parseButtonCombo is parseKeyCombo's counterpart for pointer buttons: the
// final token must be a button number (1-5) rather than a keysym name.
func parseButtonCombo(combo string, modMask uint16) (uint16, xproto.Button, error) {
	parts := strings.Split(combo, "+")
	if len(parts) == 0 {
		return 0, 0, fmt.Errorf("empty combo")
	}
	var mods uint16
	var buttonToken string
	for i, p := range parts {
		last := i == len(parts)-1
		if !last {
			m, ok := modifierToken(p, modMask)
			if !ok {
				return 0, 0, fmt.Errorf("unknown modifier %q", p)
			}
			mods |= m
			continue
		}
		buttonToken = p
	}
	n, err := strconv.Atoi(buttonToken)
	if err != nil || n < 1 || n > 5 {
		return 0, 0, fmt.Errorf("button token must be 1-5, got %q", buttonToken)
	}
	return mods, xproto.Button(n), nil
}

func modifierToken(tok string, modMask uint16) (uint16, bool) {
	switch strings.ToLower(tok) {
	case "mod":
		return modMask, true
	case "shift":
		return xproto.ModMaskShift, true
	case "ctrl", "control":
		return xproto.ModMaskControl, true
	case "mod1", "alt":
		return xproto.ModMask1, true
	case "mod4", "super":
		return xproto.ModMask4, true
	default:
		return 0, false
	}
}

// keysymByName covers a small set of common keys (digits, a few letters,
// and editing/navigation keys); it is not exhaustive, and a combo naming
// any other key is rejected.
var keysymByName = map[string]xproto.Keysym{
	"Return": 0xff0d, "Escape": 0xff1b, "Tab": 0xff09, "space": 0x0020,
	"Left": 0xff51, "Up": 0xff52, "Right": 0xff53, "Down": 0xff54,
	"comma": 0x002c, "period": 0x002e,
	"j": 0x006a, "k": 0x006b, "h": 0x0068, "l": 0x006c,
	"q": 0x0071, "c": 0x0063, "f": 0x0066, "t": 0x0074, "m": 0x006d,
	"b": 0x0062, "p": 0x0070, "i": 0x0069, "d": 0x0064,
	"0": 0x0030, "1": 0x0031, "2": 0x0032, "3": 0x0033, "4": 0x0034,
	"5": 0x0035, "6": 0x0036, "7": 0x0037, "8": 0x0038, "9": 0x0039,
}
