package wm

import (
	"fmt"

	"github.com/jezek/xgb"
	"github.com/jezek/xgb/shape"
	"github.com/jezek/xgb/xproto"
	"github.com/jezek/xgbutil"
	"github.com/jezek/xgbutil/ewmh"
	"github.com/jezek/xgbutil/icccm"
	"github.com/jezek/xgbutil/keybind"
	"github.com/jezek/xgbutil/xinerama"
	"github.com/jezek/xgbutil/xwindow"
	"github.com/sirupsen/logrus"
)

// xconn is the production XServer (xserver.go), wired on top of
// jezek/xgbutil. It is the adapter collaborator kept separate from the
// core state machine: every method here issues a real X request.
// Other files in this package reference xproto.Window only as an opaque id
// type; xconn.go, runloop.go and atoms.go are the only files that actually
// talk to the wire.
type xconn struct {
	xu     *xgbutil.XUtil
	root   xproto.Window
	atoms  *AtomCache
	log    *logrus.Logger
	shapeOK bool

	colorFocused, colorUnfocused uint32
	borderPixelWidth             uint32
}

// Dial opens the X display connection, becomes the window manager (failing
// distinctly if one is already running), and returns the adapter plus the
// root window id.
func Dial(log *logrus.Logger, focusedColor, unfocusedColor uint32) (*xconn, xproto.Window, error) {
	xu, err := xgbutil.NewConn()
	if err != nil {
		return nil, 0, fmt.Errorf("connect to X display: %w", err)
	}
	root := xu.RootWin()

	if err := becomeTheWM(xu, root); err != nil {
		return nil, 0, err
	}
	keybind.Initialize(xu)

	xc := &xconn{
		xu:              xu,
		root:            root,
		atoms:           NewAtomCache(xu),
		log:             log,
		colorFocused:    focusedColor,
		colorUnfocused:  unfocusedColor,
	}

	if err := shape.Init(xu.Conn()); err != nil {
		log.WithError(err).Info("Shape extension unavailable, decorated-clip disabled")
	} else {
		xc.shapeOK = true
	}

	if err := ewmh.SupportedSet(xu, []string{
		"_NET_ACTIVE_WINDOW",
		"_NET_WM_NAME",
		"_NET_WM_STATE",
		"_NET_WM_STATE_FULLSCREEN",
		"_NET_WM_WINDOW_TYPE",
		"_NET_WM_WINDOW_TYPE_DIALOG",
		"_NET_CLIENT_LIST",
	}); err != nil {
		log.WithError(err).Warn("failed to advertise _NET_SUPPORTED")
	}

	return xc, root, nil
}

// becomeTheWM selects for SubstructureRedirect on the root window with a
// checked request and reports a resulting access error as "another window
// manager is already running"; the caller decides to exit.
func becomeTheWM(xu *xgbutil.XUtil, root xproto.Window) error {
	err := xproto.ChangeWindowAttributesChecked(xu.Conn(), root, xproto.CwEventMask,
		[]uint32{
			uint32(xproto.EventMaskSubstructureRedirect |
				xproto.EventMaskSubstructureNotify |
				xproto.EventMaskButtonPress |
				xproto.EventMaskButtonRelease |
				xproto.EventMaskPointerMotion |
				xproto.EventMaskStructureNotify),
		}).Check()
	if err != nil {
		if _, ok := err.(xproto.AccessError); ok {
			return fmt.Errorf("another window manager is already running")
		}
		return err
	}
	return nil
}

// QueryScreens implements XServer.QueryScreens via the Xinerama extension,
// degrading to a single screen spanning the root window if Xinerama is
// unavailable: extension absence is non-fatal and just reduces capability.
func (x *xconn) QueryScreens() ([]Rect, error) {
	heads, err := xinerama.PhysicalHeads(x.xu)
	if err != nil || len(heads) == 0 {
		geom, gerr := xwindow.New(x.xu, x.root).Geometry()
		if gerr != nil {
			return nil, gerr
		}
		return []Rect{{X: 0, Y: 0, Width: uint32(geom.Width()), Height: uint32(geom.Height())}}, nil
	}
	out := make([]Rect, len(heads))
	for i, h := range heads {
		out[i] = Rect{X: int32(h.X()), Y: int32(h.Y()), Width: uint32(h.Width()), Height: uint32(h.Height())}
	}
	return out, nil
}

func (x *xconn) QueryTree() ([]xproto.Window, error) {
	tree, err := xproto.QueryTree(x.xu.Conn(), x.root).Reply()
	if err != nil {
		return nil, err
	}
	return tree.Children, nil
}

func (x *xconn) IsOverrideRedirect(win xproto.Window) bool {
	attrs, err := xproto.GetWindowAttributes(x.xu.Conn(), win).Reply()
	if err != nil {
		return false
	}
	return attrs.OverrideRedirect
}

func (x *xconn) IsUnmapped(win xproto.Window) bool {
	attrs, err := xproto.GetWindowAttributes(x.xu.Conn(), win).Reply()
	if err != nil {
		return true
	}
	return attrs.MapState == xproto.MapStateUnmapped
}

func (x *xconn) ConfigureWindow(win xproto.Window, r Rect, borderWidth uint32) error {
	return xproto.ConfigureWindowChecked(x.xu.Conn(), win,
		xproto.ConfigWindowX|xproto.ConfigWindowY|xproto.ConfigWindowWidth|
			xproto.ConfigWindowHeight|xproto.ConfigWindowBorderWidth,
		[]uint32{uint32(r.X), uint32(r.Y), r.Width, r.Height, borderWidth},
	).Check()
}

// SendSyntheticConfigure pins a tiled window to its current geometry by
// synthesizing a ConfigureNotify rather than honoring the client's
// requested move/resize.
func (x *xconn) SendSyntheticConfigure(win xproto.Window, r Rect, borderWidth uint32) error {
	ev := xproto.ConfigureNotifyEvent{
		Event:            win,
		Window:           win,
		X:                int16(r.X),
		Y:                int16(r.Y),
		Width:            uint16(r.Width),
		Height:           uint16(r.Height),
		BorderWidth:      uint16(borderWidth),
		OverrideRedirect: false,
	}
	return xproto.SendEventChecked(x.xu.Conn(), false, win, xproto.EventMaskStructureNotify, string(ev.Bytes())).Check()
}

func (x *xconn) ForwardConfigureRequest(win xproto.Window, mask uint16, values []uint32) error {
	return xproto.ConfigureWindowChecked(x.xu.Conn(), win, mask, values).Check()
}

func (x *xconn) MapWindow(win xproto.Window) error {
	return xproto.MapWindowChecked(x.xu.Conn(), win).Check()
}

func (x *xconn) RaiseWindow(win xproto.Window) error {
	return xproto.ConfigureWindowChecked(x.xu.Conn(), win,
		xproto.ConfigWindowStackMode, []uint32{xproto.StackModeAbove}).Check()
}

func (x *xconn) RestackBelow(win, sibling xproto.Window) error {
	return xproto.ConfigureWindowChecked(x.xu.Conn(), win,
		xproto.ConfigWindowSibling|xproto.ConfigWindowStackMode,
		[]uint32{uint32(sibling), xproto.StackModeBelow}).Check()
}

func (x *xconn) SelectClientEvents(win xproto.Window) error {
	return xproto.ChangeWindowAttributesChecked(x.xu.Conn(), win, xproto.CwEventMask,
		[]uint32{uint32(
			xproto.EventMaskEnterWindow |
				xproto.EventMaskFocusChange |
				xproto.EventMaskPropertyChange |
				xproto.EventMaskStructureNotify,
		)}).Check()
}

func (x *xconn) SetInputFocus(win xproto.Window) error {
	return xproto.SetInputFocusChecked(x.xu.Conn(), xproto.InputFocusPointerRoot, win, xproto.TimeCurrentTime).Check()
}

func (x *xconn) SendTakeFocus(win xproto.Window) error {
	protocols, err := icccm.WmProtocolsGet(x.xu, win)
	if err != nil {
		return err
	}
	for _, p := range protocols {
		if p == "WM_TAKE_FOCUS" {
			return x.sendProtocolMessage(win, "WM_TAKE_FOCUS")
		}
	}
	return nil
}

func (x *xconn) SendDeleteWindow(win xproto.Window) error {
	protocols, err := icccm.WmProtocolsGet(x.xu, win)
	if err != nil {
		return err
	}
	for _, p := range protocols {
		if p == "WM_DELETE_WINDOW" {
			return x.sendProtocolMessage(win, "WM_DELETE_WINDOW")
		}
	}
	return fmt.Errorf("window does not support WM_DELETE_WINDOW")
}

func (x *xconn) sendProtocolMessage(win xproto.Window, atomName string) error {
	wmProtocols, err := x.atoms.Atom("WM_PROTOCOLS")
	if err != nil {
		return err
	}
	target, err := x.atoms.Atom(atomName)
	if err != nil {
		return err
	}
	ev := xproto.ClientMessageEvent{
		Format: 32,
		Window: win,
		Type:   wmProtocols,
		Data: xproto.ClientMessageDataUnionData32New([]uint32{
			uint32(target), uint32(xproto.TimeCurrentTime), 0, 0, 0,
		}),
	}
	return xproto.SendEventChecked(x.xu.Conn(), false, win, xproto.EventMaskNoEvent, string(ev.Bytes())).Check()
}

// KillClient force-terminates an uncooperative client under a server grab
// so no other client can slip a request in between the grab and the kill.
func (x *xconn) KillClient(win xproto.Window) error {
	if err := x.GrabServer(); err != nil {
		return err
	}
	defer x.UngrabServer()
	return xproto.KillClientChecked(x.xu.Conn(), uint32(win)).Check()
}

// GrabServer freezes processing of requests and events on all other
// connections, used to bracket sequences that must appear atomic to
// clients (killing a window, restoring state on teardown).
func (x *xconn) GrabServer() error {
	return xproto.GrabServerChecked(x.xu.Conn()).Check()
}

func (x *xconn) UngrabServer() error {
	return xproto.UngrabServerChecked(x.xu.Conn()).Check()
}

func (x *xconn) GrabButtons(win xproto.Window, focused bool) error {
	if err := xproto.UngrabButtonChecked(x.xu.Conn(), xproto.ButtonIndexAny, win, xproto.ModMaskAny).Check(); err != nil {
		return err
	}
	if !focused {
		return xproto.GrabButtonChecked(x.xu.Conn(), false, win,
			xproto.EventMaskButtonPress,
			xproto.GrabModeSync, xproto.GrabModeSync,
			xproto.WindowNone, xproto.CursorNone,
			xproto.ButtonIndexAny, xproto.ModMaskAny).Check()
	}
	return nil
}

func (x *xconn) SetBorderColor(win xproto.Window, focused bool) error {
	color := x.colorUnfocused
	if focused {
		color = x.colorFocused
	}
	return xproto.ChangeWindowAttributesChecked(x.xu.Conn(), win, xproto.CwBorderPixel, []uint32{color}).Check()
}

func (x *xconn) WarpPointer(px, py int32) error {
	return xproto.WarpPointerChecked(x.xu.Conn(), xproto.WindowNone, x.root, 0, 0, 0, 0, int16(px), int16(py)).Check()
}

// DrawBar clears the bar window so it repaints against its background;
// the window status content rendered over it is a separate, unmanaged
// concern this package does not own.
func (x *xconn) DrawBar(win xproto.Window) error {
	return xproto.ClearAreaChecked(x.xu.Conn(), false, win, 0, 0, 0, 0).Check()
}

// PumpDrag implements XServer.PumpDrag: grab the pointer for the duration
// of a mouse-driven move or resize, then loop handling the filtered event
// subset a nested drag needs — pointer motion drives onMotion, a
// ConfigureRequest/Expose/MapRequest arriving mid-drag is dispatched to w's
// normal handlers exactly as the main loop would, and a ButtonRelease ends
// the grab.
func (x *xconn) PumpDrag(w *World, onMotion func(x, y int32)) error {
	reply, err := xproto.GrabPointer(x.xu.Conn(), false, x.root,
		uint16(xproto.EventMaskButtonRelease|xproto.EventMaskPointerMotion),
		xproto.GrabModeAsync, xproto.GrabModeAsync,
		xproto.WindowNone, xproto.CursorNone, xproto.TimeCurrentTime).Reply()
	if err != nil {
		return err
	}
	if reply.Status != xproto.GrabStatusSuccess {
		return fmt.Errorf("grab pointer failed: status %d", reply.Status)
	}
	defer xproto.UngrabPointerChecked(x.xu.Conn(), xproto.TimeCurrentTime).Check()

	for {
		ev, xerr := x.xu.Conn().WaitForEvent()
		if xerr != nil {
			errorWhitelist(x.log)(xerr)
			continue
		}
		if ev == nil {
			continue
		}
		switch e := ev.(type) {
		case xproto.MotionNotifyEvent:
			onMotion(int32(e.RootX), int32(e.RootY))
		case xproto.ButtonReleaseEvent:
			return nil
		case xproto.ConfigureRequestEvent:
			if e.Window == x.root {
				continue
			}
			rect := Rect{X: int32(e.X), Y: int32(e.Y), Width: uint32(e.Width), Height: uint32(e.Height)}
			w.HandleConfigureRequest(e.Window, rect, e.ValueMask, configureValues(e))
		case xproto.ExposeEvent:
			w.HandleExpose(e.Window, int32(e.Count))
		case xproto.MapRequestEvent:
			if x.IsOverrideRedirect(e.Window) {
				continue
			}
			if _, mon := w.FindClient(e.Window); mon != nil {
				continue
			}
			geom, gerr := xproto.GetGeometry(x.xu.Conn(), xproto.Drawable(e.Window)).Reply()
			if gerr != nil {
				continue
			}
			w.HandleMapRequest(e.Window, int32(geom.X), int32(geom.Y), uint32(geom.Width), uint32(geom.Height), uint32(geom.BorderWidth))
		}
	}
}

func (x *xconn) QueryPointer() (int32, int32, error) {
	p, err := xproto.QueryPointer(x.xu.Conn(), x.root).Reply()
	if err != nil {
		return 0, 0, err
	}
	return int32(p.RootX), int32(p.RootY), nil
}

func (x *xconn) WindowTitle(win xproto.Window) string {
	if name, err := ewmh.WmNameGet(x.xu, win); err == nil && name != "" {
		return name
	}
	if name, err := icccm.WmNameGet(x.xu, win); err == nil {
		return name
	}
	return ""
}

func (x *xconn) WindowClass(win xproto.Window) (string, string) {
	cls, err := icccm.WmClassGet(x.xu, win)
	if err != nil || cls == nil {
		return "", ""
	}
	return cls.Class, cls.Instance
}

func (x *xconn) TransientFor(win xproto.Window) (xproto.Window, bool) {
	t, err := icccm.WmTransientForGet(x.xu, win)
	if err != nil || t == 0 {
		return 0, false
	}
	return t, true
}

func (x *xconn) SizeHints(win xproto.Window) SizeHints {
	h, err := icccm.WmNormalHintsGet(x.xu, win)
	if err != nil || h == nil {
		return SizeHints{}
	}
	sh := SizeHints{
		BaseW: int32(h.BaseWidth), BaseH: int32(h.BaseHeight),
		IncW: int32(h.WidthInc), IncH: int32(h.HeightInc),
		MaxW: int32(h.MaxWidth), MaxH: int32(h.MaxHeight),
		MinW: int32(h.MinWidth), MinH: int32(h.MinHeight),
	}
	if h.Flags&icccm.SizeHintPAspect != 0 && h.MinAspectDen != 0 && h.MaxAspectNum != 0 {
		sh.HasAspect = true
		sh.MinAspect = float64(h.MinAspectNum) / float64(h.MinAspectDen)
		sh.MaxAspect = float64(h.MaxAspectNum) / float64(h.MaxAspectDen)
	}
	return sh
}

func (x *xconn) IsUrgent(win xproto.Window) bool {
	h, err := icccm.WmHintsGet(x.xu, win)
	if err != nil || h == nil {
		return false
	}
	return h.Flags&icccm.HintUrgency != 0
}

func (x *xconn) NeverFocus(win xproto.Window) bool {
	h, err := icccm.WmHintsGet(x.xu, win)
	if err != nil || h == nil {
		return false
	}
	return h.Flags&icccm.HintInput != 0 && h.Input == 0
}

func (x *xconn) WindowKind(win xproto.Window) WindowKind {
	types, err := ewmh.WmWindowTypeGet(x.xu, win)
	if err != nil {
		return WindowKindNormal
	}
	for _, t := range types {
		switch t {
		case "_NET_WM_WINDOW_TYPE_DIALOG":
			return WindowKindDialog
		case "_NET_WM_STATE_FULLSCREEN":
			return WindowKindFullscreen
		}
	}
	return WindowKindNormal
}

func (x *xconn) SetNetClientList(wins []xproto.Window) {
	if err := ewmh.ClientListSet(x.xu, wins); err != nil {
		x.log.WithError(err).Debug("set _NET_CLIENT_LIST failed")
	}
}

func (x *xconn) SetActiveWindow(win xproto.Window) {
	if err := ewmh.ActiveWindowSet(x.xu, win); err != nil {
		x.log.WithError(err).Debug("set _NET_ACTIVE_WINDOW failed")
	}
}

func (x *xconn) SetFullscreenState(win xproto.Window, fullscreen bool) {
	state := []string{}
	if fullscreen {
		state = []string{"_NET_WM_STATE_FULLSCREEN"}
	}
	if err := ewmh.WmStateSet(x.xu, win, state); err != nil {
		x.log.WithError(err).Debug("set _NET_WM_STATE failed")
	}
	if x.shapeOK && fullscreen {
		if err := shape.MaskChecked(x.xu.Conn(), shape.SoSet, shape.SkInput, win, 0, 0, 0).Check(); err != nil {
			x.log.WithError(err).Debug("shape clip failed")
		}
	}
}

func (x *xconn) SetWMStateNormal(win xproto.Window) {
	if err := icccm.WmStateSet(x.xu, win, &icccm.WmState{State: icccm.StateNormal}); err != nil {
		x.log.WithError(err).Debug("set WM_STATE normal failed")
	}
}

func (x *xconn) SetWMStateWithdrawn(win xproto.Window) {
	if err := icccm.WmStateSet(x.xu, win, &icccm.WmState{State: icccm.StateWithdrawn}); err != nil {
		x.log.WithError(err).Debug("set WM_STATE withdrawn failed")
	}
}

// Scan performs the startup enumeration a real window manager needs to
// adopt windows that existed before it started, not only ones mapped
// afterward: walk the root window's children and Manage every one that is
// already mapped, not override-redirect and not a transient, then in a
// second pass manage the mapped transients. Non-transients go first, so a
// transient's owner is already managed when the transient itself is
// processed. Unmapped windows, iconified ones included, are not adopted.
func (x *xconn) Scan(w *World) error {
	children, err := x.QueryTree()
	if err != nil {
		return err
	}
	var transients []xproto.Window
	for _, win := range children {
		if x.IsOverrideRedirect(win) || x.IsUnmapped(win) {
			continue
		}
		if _, ok := x.TransientFor(win); ok {
			transients = append(transients, win)
			continue
		}
		x.manageScanned(w, win)
	}
	for _, win := range transients {
		x.manageScanned(w, win)
	}
	return nil
}

func (x *xconn) manageScanned(w *World, win xproto.Window) {
	geom, err := xproto.GetGeometry(x.xu.Conn(), xproto.Drawable(win)).Reply()
	if err != nil {
		x.log.WithError(err).WithField("window", win).Debug("geometry query failed during scan")
		return
	}
	w.Manage(win, int32(geom.X), int32(geom.Y), uint32(geom.Width), uint32(geom.Height), uint32(geom.BorderWidth))
}

// Run drives the single-threaded event loop: block on
// the next X event, translate it into the already-decoded form the wm
// package's Handle* methods expect, dispatch, repeat until the World is
// marked quitting. Apart from the nested drag loop in PumpDrag, this is the
// one place in the package that blocks on events and decodes the xgb wire
// format; everything downstream of it is plain Go values.
func (x *xconn) Run(w *World) error {
	atomWMName := x.atoms.MustAtom("WM_NAME")
	atomNetWMName := x.atoms.MustAtom("_NET_WM_NAME")
	atomWMHints := x.atoms.MustAtom("WM_HINTS")
	atomWMNormalHints := x.atoms.MustAtom("WM_NORMAL_HINTS")
	atomWMTransientFor := x.atoms.MustAtom("WM_TRANSIENT_FOR")
	atomNetWMWindowType := x.atoms.MustAtom("_NET_WM_WINDOW_TYPE")
	atomNetWMState := x.atoms.MustAtom("_NET_WM_STATE")
	atomNetWMStateFullscreen := x.atoms.MustAtom("_NET_WM_STATE_FULLSCREEN")
	atomNetActiveWindow := x.atoms.MustAtom("_NET_ACTIVE_WINDOW")

	for !w.Quitting() {
		ev, xerr := x.xu.Conn().WaitForEvent()
		if xerr != nil {
			errorWhitelist(x.log)(xerr)
			continue
		}
		if ev == nil {
			continue
		}
		switch e := ev.(type) {
		case xproto.ButtonPressEvent:
			w.HandleButtonPress(int32(e.RootX), int32(e.RootY), e.Event, cleanMods(e.State), e.Detail)
		case xproto.ConfigureRequestEvent:
			if e.Window == x.root {
				continue
			}
			rect := Rect{X: int32(e.X), Y: int32(e.Y), Width: uint32(e.Width), Height: uint32(e.Height)}
			w.HandleConfigureRequest(e.Window, rect, e.ValueMask, configureValues(e))
		case xproto.ConfigureNotifyEvent:
			if e.Window == x.root {
				w.HandleRootResize()
			}
		case xproto.DestroyNotifyEvent:
			w.HandleDestroyNotify(e.Window)
		case xproto.EnterNotifyEvent:
			if (e.Mode != xproto.NotifyModeNormal || e.Detail == xproto.NotifyDetailInferior) && e.Event != x.root {
				continue
			}
			w.HandleEnterNotify(e.Event)
		case xproto.FocusInEvent:
			w.HandleFocusIn(e.Event)
		case xproto.KeyPressEvent:
			sym := keybind.KeysymGet(x.xu, e.Detail, 0)
			w.HandleKeyPress(sym, cleanMods(e.State))
		case xproto.MappingNotifyEvent:
			x.GrabKeys(w.Keys)
			w.HandleMappingNotify()
		case xproto.MapRequestEvent:
			if x.IsOverrideRedirect(e.Window) {
				continue
			}
			if _, mon := w.FindClient(e.Window); mon != nil {
				continue
			}
			geom, err := xproto.GetGeometry(x.xu.Conn(), xproto.Drawable(e.Window)).Reply()
			if err != nil {
				continue
			}
			w.HandleMapRequest(e.Window, int32(geom.X), int32(geom.Y), uint32(geom.Width), uint32(geom.Height), uint32(geom.BorderWidth))
		case xproto.MotionNotifyEvent:
			if e.Event != x.root {
				continue
			}
			w.HandleMotionNotify(int32(e.RootX), int32(e.RootY))
		case xproto.PropertyNotifyEvent:
			switch e.Atom {
			case atomWMName:
				w.HandlePropertyNotify(e.Window, PropWMName)
			case atomNetWMName:
				w.HandlePropertyNotify(e.Window, PropNetWMName)
			case atomWMHints:
				w.HandlePropertyNotify(e.Window, PropWMHints)
			case atomWMNormalHints:
				w.HandlePropertyNotify(e.Window, PropWMNormalHints)
			case atomWMTransientFor:
				w.HandlePropertyNotify(e.Window, PropWMTransientFor)
			case atomNetWMWindowType:
				w.HandlePropertyNotify(e.Window, PropNetWMWindowType)
			}
		case xproto.UnmapNotifyEvent:
			w.HandleUnmapNotify(e.Window, e.FromConfigure)
		case xproto.ExposeEvent:
			w.HandleExpose(e.Window, int32(e.Count))
		case xproto.ClientMessageEvent:
			x.handleClientMessage(w, e, atomNetWMState, atomNetWMStateFullscreen, atomNetActiveWindow)
		}
	}
	return nil
}

func configureValues(e xproto.ConfigureRequestEvent) []uint32 {
	var values []uint32
	if e.ValueMask&xproto.ConfigWindowX != 0 {
		values = append(values, uint32(e.X))
	}
	if e.ValueMask&xproto.ConfigWindowY != 0 {
		values = append(values, uint32(e.Y))
	}
	if e.ValueMask&xproto.ConfigWindowWidth != 0 {
		values = append(values, uint32(e.Width))
	}
	if e.ValueMask&xproto.ConfigWindowHeight != 0 {
		values = append(values, uint32(e.Height))
	}
	if e.ValueMask&xproto.ConfigWindowBorderWidth != 0 {
		values = append(values, uint32(e.BorderWidth))
	}
	if e.ValueMask&xproto.ConfigWindowSibling != 0 {
		values = append(values, uint32(e.Sibling))
	}
	if e.ValueMask&xproto.ConfigWindowStackMode != 0 {
		values = append(values, uint32(e.StackMode))
	}
	return values
}

func (x *xconn) handleClientMessage(w *World, e xproto.ClientMessageEvent, netWMState, netWMStateFullscreen, netActiveWindow xproto.Atom) {
	data := e.Data.Data32
	switch e.Type {
	case netWMState:
		if len(data) < 2 {
			return
		}
		if xproto.Atom(data[1]) != netWMStateFullscreen && (len(data) < 3 || xproto.Atom(data[2]) != netWMStateFullscreen) {
			return
		}
		w.HandleWMStateFullscreen(e.Window, StateVerb(data[0]))
	case netActiveWindow:
		w.HandleActiveWindow(e.Window)
	}
}

// errorWhitelist defines a fixed set of benign X errors
// (BadWindow from destroyed clients, BadMatch from focus on unmapped
// windows, BadDrawable on draw to defunct pixmaps, BadAccess on contested
// grabs) are logged at Debug and otherwise ignored; everything else is
// fatal and aborts the process.
func errorWhitelist(log *logrus.Logger) func(xgb.Error) {
	return func(err xgb.Error) {
		switch err.(type) {
		case xproto.WindowError, xproto.MatchError, xproto.DrawableError, xproto.AccessError:
			log.WithError(err).Debug("ignored benign X error")
		default:
			log.WithError(err).Fatal("unrecoverable X error")
		}
	}
}
