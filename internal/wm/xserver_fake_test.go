package wm

import "github.com/jezek/xgb/xproto"

// fakeServer is an in-memory XServer double used by every test in this
// package: it records the effects that would otherwise be X requests (the
// last ConfigureWindow rect per window, which windows are mapped, grab
// state, ...) instead of issuing them, so the state machine can be driven
// and asserted against without a display connection.
type fakeServer struct {
	nextWin xproto.Window

	rects      map[xproto.Window]Rect
	borders    map[xproto.Window]uint32
	mapped     map[xproto.Window]bool
	raised     []xproto.Window
	focused    xproto.Window
	activeWin  xproto.Window
	clientList []xproto.Window

	titles      map[xproto.Window]string
	classes     map[xproto.Window]string
	instances   map[xproto.Window]string
	transients  map[xproto.Window]xproto.Window
	sizeHints   map[xproto.Window]SizeHints
	urgent      map[xproto.Window]bool
	neverFocus  map[xproto.Window]bool
	kinds       map[xproto.Window]WindowKind
	killed      map[xproto.Window]bool
	deleteSent  map[xproto.Window]bool
	fullscreens map[xproto.Window]bool
	wmState     map[xproto.Window]string

	screens []Rect
	tree    []xproto.Window
	ptrX, ptrY int32

	barsDrawn  []xproto.Window
	grabCount  int
	ungrabCount int

	dragPositions []fakeDragPoint
}

type fakeDragPoint struct{ x, y int32 }

func newFakeServer() *fakeServer {
	return &fakeServer{
		nextWin:     1,
		rects:       map[xproto.Window]Rect{},
		borders:     map[xproto.Window]uint32{},
		mapped:      map[xproto.Window]bool{},
		titles:      map[xproto.Window]string{},
		classes:     map[xproto.Window]string{},
		instances:   map[xproto.Window]string{},
		transients:  map[xproto.Window]xproto.Window{},
		sizeHints:   map[xproto.Window]SizeHints{},
		urgent:      map[xproto.Window]bool{},
		neverFocus:  map[xproto.Window]bool{},
		kinds:       map[xproto.Window]WindowKind{},
		killed:      map[xproto.Window]bool{},
		deleteSent:  map[xproto.Window]bool{},
		fullscreens: map[xproto.Window]bool{},
		wmState:     map[xproto.Window]string{},
		screens:     []Rect{{X: 0, Y: 0, Width: 1920, Height: 1080}},
	}
}

// newWindow allocates a fresh fake window id, registers basic class/title
// metadata, and returns it for use in a test.
func (f *fakeServer) newWindow(class, instance, title string) xproto.Window {
	w := f.nextWin
	f.nextWin++
	f.classes[w] = class
	f.instances[w] = instance
	f.titles[w] = title
	f.tree = append(f.tree, w)
	return w
}

func (f *fakeServer) ConfigureWindow(win xproto.Window, r Rect, borderWidth uint32) error {
	f.rects[win] = r
	f.borders[win] = borderWidth
	return nil
}

func (f *fakeServer) SendSyntheticConfigure(win xproto.Window, r Rect, borderWidth uint32) error {
	f.rects[win] = r
	f.borders[win] = borderWidth
	return nil
}

func (f *fakeServer) ForwardConfigureRequest(win xproto.Window, mask uint16, values []uint32) error {
	return nil
}

func (f *fakeServer) MapWindow(win xproto.Window) error {
	f.mapped[win] = true
	return nil
}

func (f *fakeServer) RaiseWindow(win xproto.Window) error {
	f.raised = append(f.raised, win)
	return nil
}

func (f *fakeServer) RestackBelow(win, sibling xproto.Window) error { return nil }

func (f *fakeServer) SelectClientEvents(win xproto.Window) error { return nil }

func (f *fakeServer) SetInputFocus(win xproto.Window) error {
	f.focused = win
	return nil
}

func (f *fakeServer) SendTakeFocus(win xproto.Window) error { return nil }

func (f *fakeServer) SendDeleteWindow(win xproto.Window) error {
	f.deleteSent[win] = true
	return nil
}

func (f *fakeServer) KillClient(win xproto.Window) error {
	f.killed[win] = true
	return nil
}

func (f *fakeServer) GrabServer() error {
	f.grabCount++
	return nil
}

func (f *fakeServer) UngrabServer() error {
	f.ungrabCount++
	return nil
}

func (f *fakeServer) GrabButtons(win xproto.Window, focused bool) error { return nil }

func (f *fakeServer) SetBorderColor(win xproto.Window, focused bool) error { return nil }

func (f *fakeServer) WarpPointer(x, y int32) error {
	f.ptrX, f.ptrY = x, y
	return nil
}

func (f *fakeServer) QueryPointer() (int32, int32, error) {
	return f.ptrX, f.ptrY, nil
}

func (f *fakeServer) WindowTitle(win xproto.Window) string { return f.titles[win] }

func (f *fakeServer) WindowClass(win xproto.Window) (string, string) {
	return f.classes[win], f.instances[win]
}

func (f *fakeServer) TransientFor(win xproto.Window) (xproto.Window, bool) {
	t, ok := f.transients[win]
	return t, ok
}

func (f *fakeServer) SizeHints(win xproto.Window) SizeHints { return f.sizeHints[win] }

func (f *fakeServer) IsUrgent(win xproto.Window) bool { return f.urgent[win] }

func (f *fakeServer) NeverFocus(win xproto.Window) bool { return f.neverFocus[win] }

func (f *fakeServer) WindowKind(win xproto.Window) WindowKind { return f.kinds[win] }

func (f *fakeServer) SetNetClientList(wins []xproto.Window) { f.clientList = wins }

func (f *fakeServer) SetActiveWindow(win xproto.Window) { f.activeWin = win }

func (f *fakeServer) SetFullscreenState(win xproto.Window, fullscreen bool) {
	f.fullscreens[win] = fullscreen
}

func (f *fakeServer) SetWMStateNormal(win xproto.Window) { f.wmState[win] = "normal" }

func (f *fakeServer) SetWMStateWithdrawn(win xproto.Window) { f.wmState[win] = "withdrawn" }

func (f *fakeServer) QueryScreens() ([]Rect, error) { return f.screens, nil }

func (f *fakeServer) QueryTree() ([]xproto.Window, error) { return f.tree, nil }

func (f *fakeServer) IsOverrideRedirect(win xproto.Window) bool { return false }

func (f *fakeServer) IsUnmapped(win xproto.Window) bool { return false }

func (f *fakeServer) DrawBar(win xproto.Window) error {
	f.barsDrawn = append(f.barsDrawn, win)
	return nil
}

// PumpDrag replays the queued drag positions (set by a test via
// dragPositions) through onMotion and returns, standing in for a real
// pointer grab plus event loop.
func (f *fakeServer) PumpDrag(w *World, onMotion func(x, y int32)) error {
	for _, p := range f.dragPositions {
		onMotion(p.x, p.y)
	}
	return nil
}
