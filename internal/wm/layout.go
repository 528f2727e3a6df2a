package wm

import "strconv"

// TileLayout is the master/stack tiling layout: the effective master count is
// the configured NMaster if nonzero, else min(max(n/2, 1), dynamicMax); the
// master column takes ww*mfact of the work-area width when there is a
// stack, else the full width; heights are partitioned by repeatedly
// dividing the *remaining* slots so rounding error accumulates in the last
// slot of each column.
const dynamicMax = 4

func TileLayout() *Layout {
	return &Layout{Symbol: "[]=", Arrange: tileArrange}
}

func tileArrange(m *Monitor, visible []*Client) map[*Client]Rect {
	out := make(map[*Client]Rect, len(visible))
	n := len(visible)
	if n == 0 {
		return out
	}

	masterCount := m.NMaster
	if masterCount == 0 {
		masterCount = n / 2
		if masterCount < 1 {
			masterCount = 1
		}
		if masterCount > dynamicMax {
			masterCount = dynamicMax
		}
	}
	if masterCount > n {
		masterCount = n
	}

	wa := m.WorkArea
	gap := int32(m.Gap)

	masterWidth := wa.Width
	if n > masterCount && masterCount > 0 {
		masterWidth = uint32(float64(wa.Width) * m.MFact)
	}

	my, ty := wa.Y, wa.Y
	for i, c := range visible {
		if i < masterCount {
			h := remainingHeight(wa.Height, masterCount, i, my-wa.Y)
			r := Rect{X: wa.X + gap, Y: my + gap, Width: masterWidth - 2*uint32(gap), Height: h - 2*uint32(gap)}
			r = shrinkForBorder(r, c.Border)
			out[c] = r
			my += int32(h)
		} else {
			stackCount := n - masterCount
			h := remainingHeight(wa.Height, stackCount, i-masterCount, ty-wa.Y)
			r := Rect{X: wa.X + int32(masterWidth) + gap, Y: ty + gap, Width: wa.Width - masterWidth - 2*uint32(gap), Height: h - 2*uint32(gap)}
			r = shrinkForBorder(r, c.Border)
			out[c] = r
			ty += int32(h)
		}
	}
	return out
}

// remainingHeight divides the height still left in a column (total minus
// what earlier slots already consumed) among the slots not yet placed,
// so rounding error accumulates in the last slot of each column rather
// than compounding across slots.
func remainingHeight(total uint32, slotsInColumn int, i int, consumed int32) uint32 {
	remaining := int32(total) - consumed
	left := slotsInColumn - i
	if left <= 0 {
		left = 1
	}
	h := remaining / int32(left)
	if h < 1 {
		h = 1
	}
	return uint32(h)
}

func shrinkForBorder(r Rect, border uint32) Rect {
	if 2*border < r.Width {
		r.Width -= 2 * border
	}
	if 2*border < r.Height {
		r.Height -= 2 * border
	}
	return r
}

// MonocleLayout is the full-area layout: every visible client
// fills the work area minus gaps. The displayed symbol is overridden to
// "[N]" by callers that render it (the drawing collaborator is out of
// scope; SymbolFor below returns the string so a caller can).
func MonocleLayout() *Layout {
	return &Layout{Symbol: "[M]", Arrange: monocleArrange}
}

func monocleArrange(m *Monitor, visible []*Client) map[*Client]Rect {
	out := make(map[*Client]Rect, len(visible))
	gap := int32(m.Gap)
	r := Rect{
		X:      m.WorkArea.X + gap,
		Y:      m.WorkArea.Y + gap,
		Width:  m.WorkArea.Width - uint32(2*gap),
		Height: m.WorkArea.Height - uint32(2*gap),
	}
	for _, c := range visible {
		out[c] = shrinkForBorder(r, c.Border)
	}
	return out
}

// FloatingLayout is the null arrangement: arrange() leaves geometries
// untouched.
func FloatingLayout() *Layout {
	return &Layout{Symbol: "><>", Arrange: nil}
}

// SymbolFor returns the layout symbol to display for m, applying the
// Monocle "[N]" override.
func SymbolFor(m *Monitor) string {
	if m.Layout == nil {
		return ""
	}
	if m.Layout.Symbol == "[M]" {
		return symbolN(len(m.VisibleClients()))
	}
	return m.Layout.Symbol
}

func symbolN(n int) string {
	return "[" + strconv.Itoa(n) + "]"
}

// Arrange applies m's current layout to its visible tiled clients and
// restacks. Passing a nil m arranges every monitor.
func (w *World) Arrange(m *Monitor) {
	if m == nil {
		for _, mon := range w.Monitors {
			w.arrangeOne(mon)
		}
		return
	}
	w.arrangeOne(m)
}

func (w *World) arrangeOne(m *Monitor) {
	for _, c := range m.VisibleClients() {
		if c.IsFullscreen {
			w.applyGeometry(c, m.Screen, 0)
		}
	}

	tiled := m.VisibleTiled()
	if m.Layout != nil && m.Layout.Arrange != nil && len(tiled) > 0 {
		geoms := m.Layout.Arrange(m, tiled)
		for _, c := range tiled {
			if r, ok := geoms[c]; ok {
				w.applyGeometry(c, r, c.Border)
			}
		}
	}

	w.Restack(m)
}

func (w *World) applyGeometry(c *Client, r Rect, border uint32) {
	x, y, width, height, changed := c.ApplySizeHints(r.X, r.Y, r.Width, r.Height, false, c.Mon.Layout == nil || c.Mon.Layout.Arrange == nil, c.Mon.WorkArea)
	if !changed && c.Border == border {
		return
	}
	c.Rect = Rect{X: x, Y: y, Width: width, Height: height}
	c.Border = border
	if err := w.Server.ConfigureWindow(c.Win, c.Rect, c.Border); err != nil {
		w.Log.WithError(err).Debug("configure during arrange failed")
	}
}

// Restack raises the selected floating client and drops all tiled,
// visible clients into a well-defined stacking order: a chain in focus-stack
// order, headed below the monitor's bar window when it has one.
func (w *World) Restack(m *Monitor) {
	if m == nil {
		return
	}
	sel := m.Selected()
	if sel != nil && (sel.IsFloating || sel.IsFullscreen) {
		if err := w.Server.RaiseWindow(sel.Win); err != nil {
			w.Log.WithError(err).Debug("raise selected failed")
		}
	}
	prevWin := m.BarWin
	for _, c := range m.Stack() {
		if !m.Visible(c) || c.IsFloating || c.IsFullscreen {
			continue
		}
		if prevWin != 0 {
			if err := w.Server.RestackBelow(c.Win, prevWin); err != nil {
				w.Log.WithError(err).Debug("restack failed")
			}
		}
		prevWin = c.Win
	}
}
