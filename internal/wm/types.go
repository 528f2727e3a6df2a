// Package wm implements the window-management state machine: the layered
// model of monitors, tag-sets, client lists and focus stacks, the rules by
// which X events and user actions mutate them, and the geometry algorithms
// that turn a set of visible clients into on-screen rectangles.
//
// The state machine never touches the X wire protocol directly. All its I/O
// with the display server goes through the XServer interface in xserver.go,
// whose production implementation (xconn.go) lives in this package, so the
// state machine itself can be driven and asserted against in tests without
// a running X server.
package wm

import (
	"strings"

	"github.com/jezek/xgb/xproto"
)

// NumTags is the number of selectable tags. The bound is chosen so tag
// bitmasks fit comfortably in a uint32, with room for configurations that
// want more than nine tags without changing the underlying type.
const NumTags = 9

// TagMask is the bitmask covering every valid tag bit.
const TagMask = (1 << NumTags) - 1

// Rect is an axis-aligned rectangle in root-window coordinates.
type Rect struct {
	X, Y          int32
	Width, Height uint32
}

// Contains reports whether (x, y) lies within r, inclusive of the far edge;
// used to determine which monitor's screen rect the pointer currently sits
// in.
func (r Rect) Contains(x, y int32) bool {
	return r.X <= x && x <= r.X+int32(r.Width) &&
		r.Y <= y && y <= r.Y+int32(r.Height)
}

// Intersects reports whether r and o share any area.
func (r Rect) Intersects(o Rect) bool {
	return r.X < o.X+int32(o.Width) && o.X < r.X+int32(r.Width) &&
		r.Y < o.Y+int32(o.Height) && o.Y < r.Y+int32(r.Height)
}

// SameGeometry reports whether r and o describe the same rectangle, used by
// update_geom to deduplicate identical Xinerama outputs.
func (r Rect) SameGeometry(o Rect) bool {
	return r == o
}

// SizeHints mirrors the ICCCM WM_NORMAL_HINTS fields consulted by
// apply_size_hints.
type SizeHints struct {
	BaseW, BaseH         int32
	IncW, IncH           int32
	MaxW, MaxH           int32
	MinW, MinH           int32
	MinAspect, MaxAspect float64
	HasAspect            bool
}

// WindowKind classifies a managed window by its _NET_WM_WINDOW_TYPE, used by
// PropertyNotify handling to decide floating/fullscreen defaults.
type WindowKind int

const (
	WindowKindNormal WindowKind = iota
	WindowKindDialog
	WindowKindFullscreen
)

// Direction is the wrap-around sense used by focus_stack, focus_monitor,
// tag_monitor and move_stack.
type Direction int

const (
	Next Direction = 1
	Prev Direction = -1
)

// ArrangeFunc computes per-client geometries for the visible, non-floating
// clients of a monitor. It is pure: it reads Monitor/Client fields and
// returns a geometry per client without performing any X I/O itself; the
// caller (World.Arrange in layout.go) applies the results.
type ArrangeFunc func(m *Monitor, visible []*Client) map[*Client]Rect

// Layout is a named arrangement. A nil Arrange means floating: arrange()
// leaves client geometries untouched.
type Layout struct {
	Symbol  string
	Arrange ArrangeFunc
}

// Rule is a static match consulted by manage() to initialize a Client.
type Rule struct {
	Class, Instance, Title string
	Tags                   uint32
	Floating               bool
	Monitor                int
	ObeySizeHints          bool
}

// Matches reports whether the rule's substrings all match (case-sensitively,
// as dwm does) the given class/instance/title triple. Empty rule fields are
// wildcards.
func (ru Rule) Matches(class, instance, title string) bool {
	return containsOrEmpty(ru.Class, class) &&
		containsOrEmpty(ru.Instance, instance) &&
		containsOrEmpty(ru.Title, title)
}

func containsOrEmpty(needle, haystack string) bool {
	return needle == "" || strings.Contains(haystack, needle)
}

// Argument is a heterogeneous action-table argument: a tagged variant
// standing in for the untyped int/unsigned/float/pointer union a C action
// table would use.
type Argument struct {
	Int    int
	UInt   uint32
	Float  float64
	Str    []string
	Dir    Direction
}

// Action is a user-facing operation bound to a key or button combination.
// It reports whether the bound operation actually changed anything, so
// callers can skip unnecessary follow-up work on a no-op binding.
type Action func(w *World, mon *Monitor, arg Argument) bool

// KeyBinding and ButtonBinding are the static tables supplied by the
// external configuration loader.
type KeyBinding struct {
	Mod     uint16
	Keysym  xproto.Keysym
	Action  Action
	ActionName string
	Arg     Argument
}

type ButtonBinding struct {
	Mod    uint16
	Button xproto.Button
	Action Action
	ActionName string
	Arg    Argument
}

