package wm

import (
	"github.com/jezek/xgb/xproto"
	"github.com/jezek/xgbutil"
	"github.com/jezek/xgbutil/keybind"
)

// numLockMask is the modifier bit Num Lock is conventionally mapped to.
// dwm resolves this dynamically from the X keyboard mapping at startup;
// Mod2 is the mapping every common X server ships, so grabbing the same
// four lock combinations dwm does (none, Caps, Num, both) without querying
// the mapping table covers the cases that matter in practice.
const numLockMask = xproto.ModMask2

// cleanMods strips the lock modifiers (Caps Lock, Num Lock) a keypress or
// click may carry so bindings match regardless of lock state, matching
// dwm's CLEANMASK macro.
func cleanMods(state uint16) uint16 {
	return state &^ (xproto.ModMaskLock | numLockMask) &
		(xproto.ModMaskShift | xproto.ModMaskControl | xproto.ModMask1 |
			xproto.ModMask2 | xproto.ModMask3 | xproto.ModMask4 | xproto.ModMask5)
}

// lookupKeycodes finds all keycodes mapped to a keysym in the current X
// keyboard mapping. keybind.Initialize must have been called first. This
// mirrors keybind's own (unexported) keycodesGet, which this xgbutil
// version does not expose publicly.
func lookupKeycodes(xu *xgbutil.XUtil, keysym xproto.Keysym) []xproto.Keycode {
	min, max := xu.Setup().MinKeycode, xu.Setup().MaxKeycode
	keyMap := keybind.KeyMapGet(xu)
	if keyMap == nil {
		return nil
	}

	set := make(map[xproto.Keycode]bool)
	codes := make([]xproto.Keycode, 0)
	for kc := int(min); kc <= int(max); kc++ {
		code := xproto.Keycode(kc)
		for c := byte(0); c < keyMap.KeysymsPerKeycode; c++ {
			if keysym == keybind.KeysymGet(xu, code, c) && !set[code] {
				codes = append(codes, code)
				set[code] = true
			}
		}
	}
	return codes
}

// GrabKeys (re-)installs the root window key grabs for every configured
// KeyBinding, once for the bare modifier and once more each for it combined
// with Caps Lock / Num Lock, so bindings work regardless of lock state
// (dwm's grabkeys()). It is called at startup and again on MappingNotify.
func (x *xconn) GrabKeys(keys []KeyBinding) error {
	if err := xproto.UngrabKeyChecked(x.xu.Conn(), xproto.GrabAny, x.root, xproto.ModMaskAny).Check(); err != nil {
		x.log.WithError(err).Debug("ungrab all keys failed")
	}
	lockCombos := []uint16{0, xproto.ModMaskLock, numLockMask, xproto.ModMaskLock | numLockMask}
	for _, k := range keys {
		codes := lookupKeycodes(x.xu, k.Keysym)
		for _, code := range codes {
			for _, lock := range lockCombos {
				if err := xproto.GrabKeyChecked(x.xu.Conn(), true, x.root,
					k.Mod|lock, code, xproto.GrabModeAsync, xproto.GrabModeAsync).Check(); err != nil {
					x.log.WithError(err).WithField("keysym", k.Keysym).Debug("grab key failed")
				}
			}
		}
	}
	return nil
}
