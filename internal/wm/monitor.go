package wm

import "github.com/jezek/xgb/xproto"

// Monitor is one physical screen's worth of window-management state: its
// geometry, its bar, its tag-sets, and the two orderings (client list,
// focus stack) over the same set of Clients.
//
// A C implementation of this model typically uses intrusive doubly-linked
// lists threaded through each window struct. Two ordinary slices serve the
// same purpose here: Go's garbage collector removes the need for the
// arena-style stable-id indirection a manually-memory-managed version would
// need to avoid a double-free on detach — a *Client can appear in at most
// one Monitor's two slices at a time, and removing it from both leaves
// nothing else holding it, so it is simply collected.
type Monitor struct {
	Num int

	Screen    Rect // mx, my, mw, mh
	WorkArea  Rect // wx, wy, ww, wh
	Bar       Rect
	BarWin    xproto.Window
	ShowBar   bool
	TopBar    bool

	MFact   float64
	NMaster int

	Tagset   [2]uint32
	SelTags  int

	Layout    *Layout
	layoutIdx int
	layouts   []*Layout

	Gap uint32

	LastMouseX, LastMouseY int32

	clients []*Client // creation order; tiled placement order
	stack   []*Client // LRU of selection, most-recently-focused first
	sel     *Client
}

// NewMonitor constructs a Monitor over the given screen rect using the
// first configured layout as its default.
func NewMonitor(num int, screen Rect, layouts []*Layout, mfact float64, nmaster int, gap uint32, showbar, topbar bool) *Monitor {
	m := &Monitor{
		Num:     num,
		Screen:  screen,
		MFact:   mfact,
		NMaster: nmaster,
		Gap:     gap,
		ShowBar: showbar,
		TopBar:  topbar,
		layouts: layouts,
		Tagset:  [2]uint32{1, 1},
	}
	if len(layouts) > 0 {
		m.Layout = layouts[0]
	}
	m.updateBar()
	return m
}

const barHeight = 22

// updateBar recomputes WorkArea and Bar from Screen, ShowBar and TopBar.
func (m *Monitor) updateBar() {
	m.WorkArea = m.Screen
	if m.ShowBar {
		m.WorkArea.Height -= barHeight
		m.Bar = Rect{X: m.Screen.X, Width: m.Screen.Width, Height: barHeight}
		if m.TopBar {
			m.Bar.Y = m.Screen.Y
			m.WorkArea.Y = m.Screen.Y + barHeight
		} else {
			m.Bar.Y = m.Screen.Y + int32(m.WorkArea.Height)
			m.WorkArea.Y = m.Screen.Y
		}
	} else {
		m.Bar = Rect{X: m.Screen.X, Y: -barHeight, Width: m.Screen.Width, Height: barHeight}
	}
}

// SetShowBar toggles the bar and recomputes geometry.
func (m *Monitor) SetShowBar(show bool) {
	m.ShowBar = show
	m.updateBar()
}

// ActiveTags returns the currently-selected tag-set bitmask.
func (m *Monitor) ActiveTags() uint32 {
	return m.Tagset[m.SelTags]
}

// Visible reports whether c is displayed under m's active tag-set: a
// client is visible on a monitor iff its tags share a bit with the
// monitor's currently-selected tag-set.
func (m *Monitor) Visible(c *Client) bool {
	return c.Tags&m.ActiveTags() != 0
}

// Selected returns the monitor's selected client, or nil.
func (m *Monitor) Selected() *Client {
	return m.sel
}

// Clients returns the client list in creation/tiling order. Callers must
// not retain the returned slice across a mutating call.
func (m *Monitor) Clients() []*Client {
	return m.clients
}

// Stack returns the focus stack, most-recently-selected first.
func (m *Monitor) Stack() []*Client {
	return m.stack
}

// VisibleClients returns, in client-list order, the clients visible under
// the active tag-set.
func (m *Monitor) VisibleClients() []*Client {
	var out []*Client
	for _, c := range m.clients {
		if m.Visible(c) {
			out = append(out, c)
		}
	}
	return out
}

// VisibleTiled returns the visible, non-floating, non-fullscreen clients in
// client-list order: the set the layout engine arranges.
func (m *Monitor) VisibleTiled() []*Client {
	var out []*Client
	for _, c := range m.clients {
		if m.Visible(c) && !c.IsFloating && !c.IsFullscreen {
			out = append(out, c)
		}
	}
	return out
}

// Attach inserts c at the head of the client list.
func (m *Monitor) Attach(c *Client) {
	c.Mon = m
	m.clients = append([]*Client{c}, m.clients...)
}

// AttachStack inserts c at the head of the focus stack.
func (m *Monitor) AttachStack(c *Client) {
	m.stack = append([]*Client{c}, m.stack...)
}

// Detach removes c from the client list.
func (m *Monitor) Detach(c *Client) {
	m.clients = removeClient(m.clients, c)
}

// DetachStack removes c from the focus stack, and if c was selected,
// reassigns m.sel to the next-most-recently-focused visible client.
func (m *Monitor) DetachStack(c *Client) {
	m.stack = removeClient(m.stack, c)
	if m.sel == c {
		m.sel = nil
		for _, s := range m.stack {
			if m.Visible(s) {
				m.sel = s
				break
			}
		}
	}
}

func removeClient(list []*Client, c *Client) []*Client {
	for i, v := range list {
		if v == c {
			out := make([]*Client, 0, len(list)-1)
			out = append(out, list[:i]...)
			out = append(out, list[i+1:]...)
			return out
		}
	}
	return list
}

// SetSelected records m's selected client without touching the focus
// stack ordering (callers that also need LRU reordering should call
// DetachStack/AttachStack around this).
func (m *Monitor) SetSelected(c *Client) {
	m.sel = c
}

// MoveStackPosition swaps the client list position of c with the next or
// previous tiled, visible client.
func (m *Monitor) MoveStackPosition(c *Client, dir Direction) {
	tiled := m.VisibleTiled()
	if len(tiled) < 2 {
		return
	}
	idx := -1
	for i, v := range tiled {
		if v == c {
			idx = i
			break
		}
	}
	if idx < 0 {
		return
	}
	var other *Client
	if dir == Next {
		other = tiled[(idx+1)%len(tiled)]
	} else {
		other = tiled[(idx-1+len(tiled))%len(tiled)]
	}
	if other == c {
		return
	}
	ci, oi := indexOfClient(m.clients, c), indexOfClient(m.clients, other)
	if ci < 0 || oi < 0 {
		return
	}
	m.clients[ci], m.clients[oi] = m.clients[oi], m.clients[ci]
}

// MoveToFront relocates c to the head of the client list, used by the
// zoom action to promote a client into the master slot.
func (m *Monitor) MoveToFront(c *Client) {
	idx := indexOfClient(m.clients, c)
	if idx <= 0 {
		return
	}
	m.clients = append(m.clients[:idx], m.clients[idx+1:]...)
	m.clients = append([]*Client{c}, m.clients...)
}

func indexOfClient(list []*Client, c *Client) int {
	for i, v := range list {
		if v == c {
			return i
		}
	}
	return -1
}

// CycleLayout advances to the next configured layout.
func (m *Monitor) CycleLayout() {
	if len(m.layouts) == 0 {
		return
	}
	m.layoutIdx = (m.layoutIdx + 1) % len(m.layouts)
	m.Layout = m.layouts[m.layoutIdx]
}

// SetLayoutIndex selects a layout by its configured index.
func (m *Monitor) SetLayoutIndex(i int) {
	if i < 0 || i >= len(m.layouts) {
		return
	}
	m.layoutIdx = i
	m.Layout = m.layouts[i]
}

// AdjustMFact changes the master-area fraction by delta; a change that
// would leave [0.05, 0.95] is ignored.
func (m *Monitor) AdjustMFact(delta float64) {
	f := m.MFact + delta
	if f < 0.05 || f > 0.95 {
		return
	}
	m.MFact = f
}

// AdjustNMaster changes the configured master-client count, floored at
// zero. A configured value of 0 means "derive dynamically" — see
// dynamicMax in layout.go.
func (m *Monitor) AdjustNMaster(delta int) {
	n := m.NMaster + delta
	if n < 0 {
		n = 0
	}
	m.NMaster = n
}

// AdjustGap changes the inter-client gap, floored at zero.
func (m *Monitor) AdjustGap(delta int32) {
	g := int32(m.Gap) + delta
	if g < 0 {
		g = 0
	}
	m.Gap = uint32(g)
}

// windowOf locates the Client owning an X window id among m's clients.
func (m *Monitor) windowOf(xWin xproto.Window) *Client {
	for _, c := range m.clients {
		if c.Win == xWin {
			return c
		}
	}
	return nil
}
