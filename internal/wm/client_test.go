package wm

import "testing"

// TestApplySizeHintsIdempotent checks an important property:
// applying ApplySizeHints twice to the same input yields the
// same geometry the second time (a resize that has already settled against
// increment/aspect constraints must not keep drifting).
func TestApplySizeHintsIdempotent(t *testing.T) {
	c := &Client{
		Border:         2,
		ObeysSizeHints: true,
		Hints: SizeHints{
			BaseW: 10, BaseH: 10,
			IncW: 7, IncH: 13,
			MinW: 20, MinH: 20,
			MaxW: 500, MaxH: 500,
		},
	}
	bound := Rect{X: 0, Y: 0, Width: 1920, Height: 1080}

	x1, y1, w1, h1, _ := c.ApplySizeHints(100, 100, 233, 241, false, false, bound)
	c.Rect = Rect{X: x1, Y: y1, Width: w1, Height: h1}

	x2, y2, w2, h2, changed := c.ApplySizeHints(x1, y1, w1, h1, false, false, bound)
	if changed {
		t.Fatalf("second application changed geometry: (%d,%d,%d,%d) -> (%d,%d,%d,%d)", x1, y1, w1, h1, x2, y2, w2, h2)
	}
	if x2 != x1 || y2 != y1 || w2 != w1 || h2 != h1 {
		t.Fatalf("second application altered values despite changed=false")
	}
}

// TestApplySizeHintsSkippedWhenNotObeying checks the "honors" gate
// directly: a tiled, non-floating client that does not obey size hints
// gets no increment/aspect snapping at all, only the minimum 1x1 floor.
func TestApplySizeHintsSkippedWhenNotObeying(t *testing.T) {
	c := &Client{
		ObeysSizeHints: false,
		Hints:          SizeHints{IncW: 10, IncH: 10, BaseW: 0, BaseH: 0},
	}
	bound := Rect{X: 0, Y: 0, Width: 1920, Height: 1080}
	_, _, w, h, _ := c.ApplySizeHints(0, 0, 233, 241, false, false, bound)
	if w != 233 || h != 241 {
		t.Fatalf("expected increments skipped for non-obeying tiled client, got %dx%d", w, h)
	}
}

// TestApplySizeHintsFloatingAlwaysHonors confirms a floating client gets
// increment snapping even with ObeysSizeHints false, since floating status
// alone satisfies the honors gate.
func TestApplySizeHintsFloatingAlwaysHonors(t *testing.T) {
	c := &Client{
		IsFloating:     true,
		ObeysSizeHints: false,
		Hints:          SizeHints{IncW: 10, IncH: 10, MinW: 1, MinH: 1},
	}
	bound := Rect{X: 0, Y: 0, Width: 1920, Height: 1080}
	_, _, w, h, _ := c.ApplySizeHints(0, 0, 233, 241, false, false, bound)
	if w%10 != 0 || h%10 != 0 {
		t.Fatalf("expected floating client geometry snapped to 10px increments, got %dx%d", w, h)
	}
}

func TestClientFixed(t *testing.T) {
	c := &Client{Hints: SizeHints{MinW: 400, MaxW: 400, MinH: 300, MaxH: 300}}
	c.RefreshSizeHints(c.Hints)
	if !c.IsFixed {
		t.Fatalf("expected client with min==max on both axes to be fixed")
	}
}
