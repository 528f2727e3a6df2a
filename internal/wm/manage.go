package wm

import "github.com/jezek/xgb/xproto"

// Manage allocates a Client for a newly-mapped (or startup-scanned) window
// and wires it into the model:
//
//	Allocate a Client, read its title,
//	transient-for hint, class hints, size hints and window type; applies
//	rules; clamps its geometry so it fits within its monitor; sets the
//	border width; selects for EnterWindow|FocusChange|PropertyChange|
//	StructureNotify; installs unfocused button grabs; attaches to the
//	monitor's client list and focus stack (both at head); appends to
//	_NET_CLIENT_LIST; transmits the initial NormalState; arranges the
//	monitor; and focuses.
func (w *World) Manage(xWin xproto.Window, x, y int32, width, height uint32, borderWidth uint32) *Client {
	if c, _ := w.FindClient(xWin); c != nil {
		return c
	}

	c := &Client{
		Win:            xWin,
		Rect:           Rect{X: x, Y: y, Width: width, Height: height},
		OldRect:        Rect{X: x, Y: y, Width: width, Height: height},
		Border:         borderWidth,
		OldBorder:      borderWidth,
		ObeysSizeHints: true,
	}
	c.Title = w.Server.WindowTitle(xWin)
	c.RefreshSizeHints(w.Server.SizeHints(xWin))

	mon := w.Sel
	if mon == nil && len(w.Monitors) > 0 {
		mon = w.Monitors[0]
	}

	if transWin, ok := w.Server.TransientFor(xWin); ok {
		if t, tm := w.FindClient(transWin); t != nil {
			c.Tags = t.Tags
			mon = tm
		}
	} else {
		c.Tags = mon.ActiveTags()
	}
	if c.Tags&TagMask == 0 {
		c.Tags = mon.ActiveTags()
	}

	class, instance := w.Server.WindowClass(xWin)
	w.applyRules(c, class, instance, &mon)

	kind := w.Server.WindowKind(xWin)
	switch kind {
	case WindowKindDialog:
		c.IsFloating = true
	case WindowKindFullscreen:
		w.SetFullscreen(c, true)
	}
	if c.IsFixed {
		c.IsFloating = true
	}

	c.Mon = mon
	c.clampToMonitor(mon)

	if err := w.Server.SelectClientEvents(xWin); err != nil {
		w.Log.WithError(err).WithField("window", xWin).Warn("select client events failed")
	}
	if err := w.Server.GrabButtons(xWin, false); err != nil {
		w.Log.WithError(err).WithField("window", xWin).Debug("grab buttons failed")
	}

	mon.Attach(c)
	mon.AttachStack(c)
	w.rebuildClientList()
	w.Server.SetWMStateNormal(xWin)

	if err := w.Server.ConfigureWindow(xWin, c.Rect, c.Border); err != nil {
		w.Log.WithError(err).Debug("configure on manage failed")
	}
	if err := w.Server.MapWindow(xWin); err != nil {
		w.Log.WithError(err).Debug("map window failed")
	}

	w.Arrange(mon)
	w.Focus(c)
	w.Trace.Record("manage:" + class)
	return c
}

// clampToMonitor ensures a newly-managed client's geometry fits within its
// monitor: a client mapped with no explicit geometry request fills the
// work area, and one that would fall outside the monitor's bounds is
// pulled back in.
func (c *Client) clampToMonitor(m *Monitor) {
	if c.Rect.Width == 0 {
		c.Rect.Width = m.WorkArea.Width - 2*c.Border
	}
	if c.Rect.Height == 0 {
		c.Rect.Height = m.WorkArea.Height - 2*c.Border
	}
	if c.Rect.X == 0 && c.Rect.Y == 0 {
		c.Rect.X = m.WorkArea.X
		c.Rect.Y = m.WorkArea.Y
	}
	if c.Rect.X < m.Screen.X {
		c.Rect.X = m.Screen.X
	}
	if c.Rect.Y < m.Screen.Y {
		c.Rect.Y = m.Screen.Y
	}
	maxX := m.Screen.X + int32(m.Screen.Width) - int32(c.Rect.Width) - 2*int32(c.Border)
	maxY := m.Screen.Y + int32(m.Screen.Height) - int32(c.Rect.Height) - 2*int32(c.Border)
	if c.Rect.X > maxX && maxX > m.Screen.X {
		c.Rect.X = maxX
	}
	if c.Rect.Y > maxY && maxY > m.Screen.Y {
		c.Rect.Y = maxY
	}
}

// applyRules matches c against the configured Rule table and initializes
// its tags, floating flag, target monitor and size-hints policy.
func (w *World) applyRules(c *Client, class, instance string, mon **Monitor) {
	c.ObeysSizeHints = true
	for _, r := range w.Rules {
		if !r.Matches(class, instance, c.Title) {
			continue
		}
		if r.Tags != 0 {
			c.Tags = r.Tags & TagMask
		}
		if r.Floating {
			c.IsFloating = true
		}
		if !r.ObeySizeHints {
			c.ObeysSizeHints = false
		}
		if r.Monitor >= 0 && r.Monitor < len(w.Monitors) {
			*mon = w.Monitors[r.Monitor]
		}
	}
}

// Unmanage detaches a client from both lists and frees it: detach from
// both lists; if not destroyed, grab the server, restore the original
// border width, release button grabs, mark the client Withdrawn, then
// release the grab; rebuild _NET_CLIENT_LIST, re-focus, re-arrange.
//
// The grab brackets the restore-and-withdraw sequence so the client
// vanishing mid-teardown (it is, after all, already on its way out) can't
// race another client's request against these calls.
func (w *World) Unmanage(xWin xproto.Window, destroyed bool) {
	c, mon := w.FindClient(xWin)
	if c == nil {
		return
	}

	mon.Detach(c)
	mon.DetachStack(c)
	if w.PrevClient == c {
		w.PrevClient = nil
	}

	if !destroyed {
		if err := w.Server.GrabServer(); err != nil {
			w.Log.WithError(err).Debug("grab server on unmanage failed")
		}
		if err := w.Server.ConfigureWindow(xWin, c.Rect, c.OldBorder); err != nil {
			w.Log.WithError(err).Debug("restore border on unmanage failed")
		}
		if err := w.Server.GrabButtons(xWin, false); err != nil {
			w.Log.WithError(err).Debug("ungrab on unmanage failed")
		}
		w.Server.SetWMStateWithdrawn(xWin)
		if err := w.Server.UngrabServer(); err != nil {
			w.Log.WithError(err).Debug("ungrab server on unmanage failed")
		}
	}

	w.rebuildClientList()
	w.Focus(nil)
	w.Arrange(mon)
	w.Trace.Record("unmanage")
}
