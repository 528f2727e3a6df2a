package wm

import "testing"

func newTestWorld(t *testing.T, f *fakeServer) *World {
	t.Helper()
	w := NewWorld(f, testLogger(), nil, []*Layout{TileLayout(), MonocleLayout(), FloatingLayout()}, nil, nil, 0.55, 1, 0, false, false, 32)
	if err := w.UpdateGeom(); err != nil {
		t.Fatalf("UpdateGeom: %v", err)
	}
	return w
}

// TestManageSingleMap checks that a single xterm fills the work
// area: the first managed client on an empty monitor
// receives the full work-area geometry and is selected.
func TestManageSingleMap(t *testing.T) {
	f := newFakeServer()
	w := newTestWorld(t, f)
	win := f.newWindow("XTerm", "xterm", "xterm")

	c := w.Manage(win, 0, 0, 0, 0, 1)
	if c == nil {
		t.Fatal("Manage returned nil")
	}
	if w.Sel.Selected() != c {
		t.Fatalf("expected newly managed client to be selected")
	}
	wa := w.Sel.WorkArea
	if c.Rect.Width != wa.Width-2*c.Border || c.Rect.Height != wa.Height-2*c.Border {
		t.Fatalf("expected client to fill work area, got %+v against %+v", c.Rect, wa)
	}
	if !f.mapped[win] {
		t.Fatalf("expected window to be mapped")
	}
}

// TestManageRuleFloating exercises the rule-match floating scenario: a
// client whose class matches a configured rule starts floating and on the
// tags the rule names, regardless of the currently active tag-set.
func TestManageRuleFloating(t *testing.T) {
	f := newFakeServer()
	w := newTestWorld(t, f)
	w.Rules = []Rule{{Class: "Gimp", Floating: true, Tags: 1 << 3}}
	win := f.newWindow("Gimp", "gimp", "GNU Image Manipulation Program")

	c := w.Manage(win, 0, 0, 200, 200, 1)
	if !c.IsFloating {
		t.Fatalf("expected rule-matched client to float")
	}
	if c.Tags != 1<<3 {
		t.Fatalf("expected rule tags 0x%x, got 0x%x", 1<<3, c.Tags)
	}
}

// TestFocusStackWrapAndReturn checks the focus-stack wraparound
// property: cycling Next around a three-client monitor N times returns to
// the starting client, and cycling forward then back returns immediately.
func TestFocusStackWrapAndReturn(t *testing.T) {
	f := newFakeServer()
	w := newTestWorld(t, f)
	var clients []*Client
	for i := 0; i < 3; i++ {
		win := f.newWindow("xterm", "xterm", "xterm")
		clients = append(clients, w.Manage(win, 0, 0, 0, 0, 1))
	}
	start := w.Sel.Selected()

	w.FocusStack(w.Sel, Next)
	w.FocusStack(w.Sel, Prev)
	if w.Sel.Selected() != start {
		t.Fatalf("Next then Prev did not return to start")
	}

	for i := 0; i < len(clients); i++ {
		w.FocusStack(w.Sel, Next)
	}
	if w.Sel.Selected() != start {
		t.Fatalf("cycling Next len(clients) times did not return to start")
	}
}

// TestViewInvolution checks the view-history property: viewing
// the same tag-set twice in a row is a no-op, and toggling back to the
// previous tag-set (View swaps the seltags slot) restores the prior
// selection, since only two slots of history are kept.
func TestViewInvolution(t *testing.T) {
	f := newFakeServer()
	w := newTestWorld(t, f)
	m := w.Sel
	initial := m.ActiveTags()

	w.View(m, 1<<2)
	if m.ActiveTags() != 1<<2 {
		t.Fatalf("expected tags 0x%x after View, got 0x%x", 1<<2, m.ActiveTags())
	}
	w.View(m, 1<<2)
	if m.ActiveTags() != 1<<2 {
		t.Fatalf("View to the same mask should be a no-op, got 0x%x", m.ActiveTags())
	}

	w.View(m, initial)
	w.View(m, 1<<2)
	if m.ActiveTags() != 1<<2 {
		t.Fatalf("expected flip back to 0x%x, got 0x%x", 1<<2, m.ActiveTags())
	}
}

// TestUpdateGeomMigratesClients checks that
// removing a monitor migrates its clients onto the primary monitor's
// client list, with their own tags unchanged.
func TestUpdateGeomMigratesClients(t *testing.T) {
	f := newFakeServer()
	f.screens = []Rect{
		{X: 0, Y: 0, Width: 1920, Height: 1080},
		{X: 1920, Y: 0, Width: 1920, Height: 1080},
	}
	w := newTestWorld(t, f)
	if len(w.Monitors) != 2 {
		t.Fatalf("expected 2 monitors, got %d", len(w.Monitors))
	}
	secondary := w.Monitors[1]
	win := f.newWindow("xterm", "xterm", "xterm")
	w.Sel = secondary
	c := w.Manage(win, 1920, 0, 0, 0, 1)
	if c.Mon != secondary {
		t.Fatalf("expected client managed on secondary monitor")
	}
	c.Tags = 1 << 4
	secondary.Tagset[secondary.SelTags] = 1 << 2

	f.screens = []Rect{{X: 0, Y: 0, Width: 1920, Height: 1080}}
	if err := w.UpdateGeom(); err != nil {
		t.Fatalf("UpdateGeom: %v", err)
	}
	if len(w.Monitors) != 1 {
		t.Fatalf("expected 1 monitor after removal, got %d", len(w.Monitors))
	}
	if c.Mon != w.Monitors[0] {
		t.Fatalf("expected migrated client to now belong to the surviving monitor")
	}
	if c.Tags != 1<<4 {
		t.Fatalf("expected migrated client to keep its own tags, got %#x", c.Tags)
	}
	found := false
	for _, v := range w.Monitors[0].Clients() {
		if v == c {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected migrated client to appear in surviving monitor's client list")
	}
}

// TestFullscreenRoundTrip checks the fullscreen round-trip property:
// toggling fullscreen on and back off restores the exact pre-fullscreen
// geometry, border and floating state.
func TestFullscreenRoundTrip(t *testing.T) {
	f := newFakeServer()
	w := newTestWorld(t, f)
	win := f.newWindow("xterm", "xterm", "xterm")
	c := w.Manage(win, 0, 0, 0, 0, 1)
	before := c.Rect
	beforeBorder := c.Border
	beforeFloating := c.IsFloating

	w.ToggleFullscreen(c)
	if !c.IsFullscreen {
		t.Fatalf("expected fullscreen after toggle")
	}
	if c.Rect != w.Sel.Screen {
		t.Fatalf("expected fullscreen client to cover the full screen")
	}

	w.ToggleFullscreen(c)
	if c.IsFullscreen {
		t.Fatalf("expected fullscreen cleared after second toggle")
	}
	if c.Rect != before || c.Border != beforeBorder || c.IsFloating != beforeFloating {
		t.Fatalf("expected exact restore: got rect=%+v border=%d floating=%v", c.Rect, c.Border, c.IsFloating)
	}
}

// TestHandleActiveWindowSwitchesView checks that the _NET_ACTIVE_WINDOW
// handling: activating a client on a hidden tag switches
// the monitor's view to include it, then focuses and raises it.
func TestHandleActiveWindowSwitchesView(t *testing.T) {
	f := newFakeServer()
	w := newTestWorld(t, f)
	win := f.newWindow("xterm", "xterm", "xterm")
	c := w.Manage(win, 0, 0, 0, 0, 1)
	w.Tag(w.Sel, 1<<5)
	w.View(w.Sel, 1<<1)
	if w.Sel.Visible(c) {
		t.Fatalf("precondition failed: client should be hidden")
	}

	w.HandleActiveWindow(win)
	if !w.Sel.Visible(c) {
		t.Fatalf("expected view switched to include activated client")
	}
	if w.Sel.Selected() != c {
		t.Fatalf("expected activated client to be selected")
	}
	if len(f.raised) == 0 || f.raised[len(f.raised)-1] != win {
		t.Fatalf("expected activated client to be raised")
	}
}
