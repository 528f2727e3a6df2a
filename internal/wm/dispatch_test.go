package wm

import "testing"

// TestHandleConfigureRequestPinsTiled checks ConfigureRequest
// handling: a tiled client's requested geometry is
// ignored in favor of a synthetic ConfigureNotify reasserting its current
// rect, while a floating client's request is honored.
func TestHandleConfigureRequestPinsTiled(t *testing.T) {
	f := newFakeServer()
	w := newTestWorld(t, f)
	win := f.newWindow("xterm", "xterm", "xterm")
	c := w.Manage(win, 0, 0, 0, 0, 1)
	pinned := c.Rect

	w.HandleConfigureRequest(win, Rect{X: 500, Y: 500, Width: 300, Height: 300}, 0, nil)
	if c.Rect != pinned {
		t.Fatalf("expected tiled client geometry unchanged, got %+v want %+v", c.Rect, pinned)
	}
	if f.rects[win] != pinned {
		t.Fatalf("expected synthetic configure to reassert pinned rect, got %+v", f.rects[win])
	}
}

func TestHandleConfigureRequestHonorsFloating(t *testing.T) {
	f := newFakeServer()
	w := newTestWorld(t, f)
	win := f.newWindow("Gimp", "gimp", "Gimp")
	w.Rules = []Rule{{Class: "Gimp", Floating: true}}
	w.Manage(win, 0, 0, 200, 200, 1)

	req := Rect{X: 50, Y: 60, Width: 300, Height: 200}
	w.HandleConfigureRequest(win, req, 0, nil)
	c, _ := w.FindClient(win)
	if c.Rect != req {
		t.Fatalf("expected floating client honored request, got %+v want %+v", c.Rect, req)
	}
}

// TestHandleDestroyNotifyUnmanages confirms a destroyed client is no longer
// found and leaves the monitor's client list empty.
func TestHandleDestroyNotifyUnmanages(t *testing.T) {
	f := newFakeServer()
	w := newTestWorld(t, f)
	win := f.newWindow("xterm", "xterm", "xterm")
	w.Manage(win, 0, 0, 0, 0, 1)

	w.HandleDestroyNotify(win)
	if c, _ := w.FindClient(win); c != nil {
		t.Fatalf("expected client removed after DestroyNotify")
	}
	if len(w.Sel.Clients()) != 0 {
		t.Fatalf("expected empty client list after last client destroyed")
	}
}

// TestActionZoomPromotesSecondClient checks that selecting
// the master client and zooming swaps it with the next tiled client.
func TestActionZoomPromotesSecondClient(t *testing.T) {
	f := newFakeServer()
	w := newTestWorld(t, f)
	win1 := f.newWindow("a", "a", "a")
	win2 := f.newWindow("b", "b", "b")
	c1 := w.Manage(win1, 0, 0, 0, 0, 1)
	c2 := w.Manage(win2, 0, 0, 0, 0, 1)

	if w.Sel.Clients()[0] != c2 {
		t.Fatalf("expected most recently managed client at head (attach-at-head)")
	}
	w.Focus(c2)
	ActionZoom(w, w.Sel, Argument{})
	if w.Sel.Clients()[0] != c1 {
		t.Fatalf("zooming the already-master client should promote the next tiled client to master")
	}
	if w.Sel.Selected() != c1 {
		t.Fatalf("expected focus to follow the newly promoted master")
	}
}
