package wm

import "github.com/jezek/xgb/xproto"

// XServer is the X-adapter boundary: every operation the state machine
// needs to perform against a real display connection, named by intent
// rather than by X request. Production
// code is backed by xconn (xconn.go), wired on top of jezek/xgbutil; tests
// are backed by the in-memory fakeServer in xserver_fake_test.go.
//
// Keeping this boundary explicit is what lets the Monitor/Client/focus/
// layout/dispatch logic in this package be unit tested without an X
// display, which a CI environment will rarely have.
type XServer interface {
	// Window lifecycle and geometry.
	ConfigureWindow(win xproto.Window, r Rect, borderWidth uint32) error
	SendSyntheticConfigure(win xproto.Window, r Rect, borderWidth uint32) error
	ForwardConfigureRequest(win xproto.Window, mask uint16, values []uint32) error
	MapWindow(win xproto.Window) error
	RaiseWindow(win xproto.Window) error
	RestackBelow(win, sibling xproto.Window) error
	SelectClientEvents(win xproto.Window) error

	// Focus and input.
	SetInputFocus(win xproto.Window) error
	SendTakeFocus(win xproto.Window) error
	SendDeleteWindow(win xproto.Window) error
	KillClient(win xproto.Window) error
	GrabServer() error
	UngrabServer() error
	GrabButtons(win xproto.Window, focused bool) error
	SetBorderColor(win xproto.Window, focused bool) error
	WarpPointer(x, y int32) error
	QueryPointer() (x, y int32, err error)
	DrawBar(win xproto.Window) error

	// PumpDrag grabs the pointer and drives the nested event loop a
	// mouse-driven move or resize runs under: while the button stays down,
	// motion is reported through onMotion, and any ConfigureRequest,
	// Expose or MapRequest that arrives mid-drag is still forwarded to w's
	// normal handlers rather than queued. It returns once the button is
	// released and the pointer is ungrabbed.
	PumpDrag(w *World, onMotion func(x, y int32)) error

	// Property read/write.
	WindowTitle(win xproto.Window) string
	WindowClass(win xproto.Window) (class, instance string)
	TransientFor(win xproto.Window) (xproto.Window, bool)
	SizeHints(win xproto.Window) SizeHints
	IsUrgent(win xproto.Window) bool
	NeverFocus(win xproto.Window) bool
	WindowKind(win xproto.Window) WindowKind
	SetNetClientList(wins []xproto.Window)
	SetActiveWindow(win xproto.Window)
	SetFullscreenState(win xproto.Window, fullscreen bool)
	SetWMStateNormal(win xproto.Window)
	SetWMStateWithdrawn(win xproto.Window)

	// Monitor discovery.
	QueryScreens() ([]Rect, error)
	QueryTree() ([]xproto.Window, error)
	IsOverrideRedirect(win xproto.Window) bool
	IsUnmapped(win xproto.Window) bool
}
