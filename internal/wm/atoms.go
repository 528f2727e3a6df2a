package wm

import (
	"github.com/jezek/xgb/xproto"
	"github.com/jezek/xgbutil"
	"github.com/jezek/xgbutil/xprop"
)

// AtomCache is the atom registry: it caches interned protocol-atom
// identifiers so repeated lookups of the same
// symbolic name (WM_PROTOCOLS, WM_DELETE_WINDOW, ...) don't round-trip to
// the server. xgbutil's own xprop.Atm cache already does this for calls
// made through ewmh/icccm helpers; AtomCache exists for the handful of
// atoms this package interns directly that aren't wrapped by those
// packages (WM_PROTOCOLS, WM_TAKE_FOCUS and WM_DELETE_WINDOW for protocol
// messages, and the property and client-message atoms Run matches events
// against).
type AtomCache struct {
	xu    *xgbutil.XUtil
	cache map[string]xproto.Atom
}

// NewAtomCache constructs an empty registry bound to an XUtil connection.
func NewAtomCache(xu *xgbutil.XUtil) *AtomCache {
	return &AtomCache{xu: xu, cache: make(map[string]xproto.Atom)}
}

// Atom interns (or returns the cached) atom for name, populated once at
// startup as each symbolic name is first requested.
func (a *AtomCache) Atom(name string) (xproto.Atom, error) {
	if id, ok := a.cache[name]; ok {
		return id, nil
	}
	id, err := xprop.Atm(a.xu, name)
	if err != nil {
		return 0, err
	}
	a.cache[name] = id
	return id, nil
}

// MustAtom interns name, returning 0 on failure without logging. Used for
// atoms whose absence is non-fatal: an event carrying an atom that failed
// to intern is simply not matched.
func (a *AtomCache) MustAtom(name string) xproto.Atom {
	id, err := a.Atom(name)
	if err != nil {
		return 0
	}
	return id
}
