package wm

import "testing"

func newTestMonitor(n int) *Monitor {
	return NewMonitor(0, Rect{X: 0, Y: 0, Width: 1600, Height: 900}, []*Layout{TileLayout()}, 0.55, n, 0, false, false)
}

// TestTileLayoutNoOverlap checks an important tiling property: for any
// client count, the tile arrangement produces non-overlapping rectangles
// that stay within the work area.
func TestTileLayoutNoOverlap(t *testing.T) {
	for _, n := range []int{1, 2, 3, 4, 5, 8} {
		m := newTestMonitor(1)
		var clients []*Client
		for i := 0; i < n; i++ {
			clients = append(clients, &Client{Border: 1})
		}
		geoms := tileArrange(m, clients)
		if len(geoms) != n {
			t.Fatalf("n=%d: expected %d geometries, got %d", n, n, len(geoms))
		}
		rects := make([]Rect, 0, n)
		for _, c := range clients {
			r := geoms[c]
			if r.X < m.WorkArea.X || r.Y < m.WorkArea.Y ||
				int32(r.Width)+r.X > m.WorkArea.X+int32(m.WorkArea.Width) ||
				int32(r.Height)+r.Y > m.WorkArea.Y+int32(m.WorkArea.Height) {
				t.Fatalf("n=%d: rect %+v escapes work area %+v", n, r, m.WorkArea)
			}
			rects = append(rects, r)
		}
		for i := 0; i < len(rects); i++ {
			for j := i + 1; j < len(rects); j++ {
				if rects[i].Intersects(rects[j]) {
					t.Fatalf("n=%d: rects %+v and %+v overlap", n, rects[i], rects[j])
				}
			}
		}
	}
}

func TestSymbolForMonocleShowsCount(t *testing.T) {
	m := newTestMonitor(1)
	m.Layout = MonocleLayout()
	m.clients = []*Client{{Tags: 1}, {Tags: 1}, {Tags: 1}}
	m.Tagset = [2]uint32{1, 1}
	if got := SymbolFor(m); got != "[3]" {
		t.Fatalf("expected [3], got %q", got)
	}
}

func TestSymbolForTile(t *testing.T) {
	m := newTestMonitor(1)
	if got := SymbolFor(m); got != "[]=" {
		t.Fatalf("expected []=, got %q", got)
	}
}
