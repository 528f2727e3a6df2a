package wm

// UpdateGeom reconciles the monitor list with the X server's reported
// screen geometry:
//
//  1. Query screen info; deduplicate by identical (x, y, w, h).
//  2. If unique count >= existing count, append new Monitor records; for
//     each index, if geometry changed or newly-added, update the screen
//     rect and bar position. LastMouseX/LastMouseY are not reset.
//  3. If unique count < existing count, drain clients from the excess
//     monitors into the primary monitor (index 0), preserving stack
//     order, and free the monitors.
//  4. If anything changed, re-point Sel to the monitor under the pointer.
func (w *World) UpdateGeom() error {
	screens, err := w.Server.QueryScreens()
	if err != nil {
		return err
	}
	unique := dedupeRects(screens)
	if len(unique) == 0 {
		unique = []Rect{{X: 0, Y: 0, Width: 1, Height: 1}}
	}

	changed := false
	if len(unique) >= len(w.Monitors) {
		for i, r := range unique {
			if i >= len(w.Monitors) {
				m := NewMonitor(i, r, w.Layouts, w.MFact, w.NMaster, w.Gap, w.ShowBar, w.TopBar)
				w.Monitors = append(w.Monitors, m)
				changed = true
				continue
			}
			if !w.Monitors[i].Screen.SameGeometry(r) {
				w.Monitors[i].Screen = r
				w.Monitors[i].updateBar()
				changed = true
			}
		}
	} else {
		primary := w.Monitors[0]
		for i := len(unique); i < len(w.Monitors); i++ {
			w.drainMonitor(w.Monitors[i], primary)
		}
		w.Monitors = w.Monitors[:len(unique)]
		for i, r := range unique {
			if !w.Monitors[i].Screen.SameGeometry(r) {
				w.Monitors[i].Screen = r
				w.Monitors[i].updateBar()
			}
		}
		changed = true
	}

	if changed {
		if x, y, err := w.Server.QueryPointer(); err == nil {
			w.Sel = w.MonitorAt(x, y)
		} else if w.Sel == nil && len(w.Monitors) > 0 {
			w.Sel = w.Monitors[0]
		}
		w.Arrange(nil)
	}
	return nil
}

// drainMonitor reparents every client of a removed monitor onto dest,
// preserving each list's relative order: clients are appended to the
// primary monitor's list and stack, keeping their existing tags. Tag
// reassignment on a monitor change is tag_monitor's job (moveClientToMonitor
// in focus.go), not this cleanup path's.
func (w *World) drainMonitor(dead, dest *Monitor) {
	for _, c := range append([]*Client(nil), dead.clients...) {
		dead.Detach(c)
		c.Mon = dest
		dest.clients = append(dest.clients, c)
	}
	for _, c := range append([]*Client(nil), dead.stack...) {
		dead.DetachStack(c)
		dest.stack = append(dest.stack, c)
	}
}

func dedupeRects(rects []Rect) []Rect {
	var out []Rect
	for _, r := range rects {
		dup := false
		for _, o := range out {
			if o.SameGeometry(r) {
				dup = true
				break
			}
		}
		if !dup {
			out = append(out, r)
		}
	}
	return out
}
