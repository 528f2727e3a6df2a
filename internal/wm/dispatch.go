package wm

import "github.com/jezek/xgb/xproto"

// This file is the event dispatcher: a constant-time
// lookup on event kind (the type switch in xconn.go's Run loop, which
// decodes each xgb event) followed by exactly one handler per kind here. Handlers take already-decoded,
// X-library-agnostic arguments so they can be exercised directly from
// tests without an X connection.

// StateVerb is the _NET_WM_STATE ADD/REMOVE/TOGGLE verb.
type StateVerb int

const (
	StateRemove StateVerb = 0
	StateAdd    StateVerb = 1
	StateToggle StateVerb = 2
)

// HandleButtonPress handles a ButtonPress event: locate the
// monitor containing the pointer; if different from current, unfocus and
// switch monitors; if the event window belongs to a managed client, focus
// it; match the click against the button table under cleaned modifiers.
func (w *World) HandleButtonPress(rootX, rootY int32, win xproto.Window, cleanMods uint16, button xproto.Button) {
	w.Trace.Record("ButtonPress")
	m := w.MonitorAt(rootX, rootY)
	if m != w.Sel {
		if w.Sel != nil {
			w.unfocus(w.Sel.Selected(), true)
		}
		w.Sel = m
		w.Focus(nil)
	}
	if c, cm := w.FindClient(win); c != nil {
		w.Sel = cm
		w.Focus(c)
	}
	for _, b := range w.Buttons {
		if b.Mod == cleanMods && b.Button == button {
			b.Action(w, w.Sel, b.Arg)
			return
		}
	}
}

// HandleWMStateFullscreen and HandleActiveWindow together handle a
// ClientMessage event: for _NET_WM_STATE carrying
// _NET_WM_STATE_FULLSCREEN, apply the verb; for _NET_ACTIVE_WINDOW, switch
// to a tag-set containing the client's tags if it is not visible, then
// raise-and-focus.
func (w *World) HandleWMStateFullscreen(win xproto.Window, verb StateVerb) {
	w.Trace.Record("ClientMessage:wm_state_fullscreen")
	c, _ := w.FindClient(win)
	if c == nil {
		return
	}
	switch verb {
	case StateAdd:
		w.SetFullscreen(c, true)
	case StateRemove:
		w.SetFullscreen(c, false)
	case StateToggle:
		w.ToggleFullscreen(c)
	}
}

// HandleActiveWindow handles the _NET_ACTIVE_WINDOW half of a
// ClientMessage event.
func (w *World) HandleActiveWindow(win xproto.Window) {
	w.Trace.Record("ClientMessage:active_window")
	c, m := w.FindClient(win)
	if c == nil {
		return
	}
	if !m.Visible(c) {
		w.View(m, c.Tags)
	}
	w.Sel = m
	w.Focus(c)
	if err := w.Server.RaiseWindow(c.Win); err != nil {
		w.Log.WithError(err).Debug("raise on active-window failed")
	}
}

// HandleConfigureRequest handles a ConfigureRequest event: a
// managed floating client (or floating layout) is translated relative to
// the monitor origin and centered if it would exceed monitor bounds;
// tiled clients are pinned via a synthesized ConfigureNotify; unmanaged
// windows are forwarded verbatim.
func (w *World) HandleConfigureRequest(win xproto.Window, req Rect, mask uint16, values []uint32) {
	w.Trace.Record("ConfigureRequest")
	c, m := w.FindClient(win)
	if c == nil {
		if err := w.Server.ForwardConfigureRequest(win, mask, values); err != nil {
			w.Log.WithError(err).Debug("forward configure request failed")
		}
		return
	}
	floatingLayout := m.Layout == nil || m.Layout.Arrange == nil
	if c.IsFloating || floatingLayout {
		r := req
		r.X = m.Screen.X + req.X
		r.Y = m.Screen.Y + req.Y
		if r.X+int32(r.Width) > m.Screen.X+int32(m.Screen.Width) ||
			r.Y+int32(r.Height) > m.Screen.Y+int32(m.Screen.Height) {
			r.X = m.Screen.X + (int32(m.Screen.Width)-int32(r.Width))/2
			r.Y = m.Screen.Y + (int32(m.Screen.Height)-int32(r.Height))/2
		}
		c.Rect = r
		if err := w.Server.ConfigureWindow(win, r, c.Border); err != nil {
			w.Log.WithError(err).Debug("configure floating request failed")
		}
		return
	}
	if err := w.Server.SendSyntheticConfigure(win, c.Rect, c.Border); err != nil {
		w.Log.WithError(err).Debug("pin tiled configure failed")
	}
}

// HandleRootResize handles a root-window ConfigureNotify event: if the root
// window resized, rebuild the monitor list, reposition bars, re-arrange.
func (w *World) HandleRootResize() {
	w.Trace.Record("ConfigureNotify:root")
	if err := w.UpdateGeom(); err != nil {
		w.Log.WithError(err).Warn("update geometry failed")
	}
}

// HandleDestroyNotify handles a DestroyNotify event: unmanage the
// client unconditionally.
func (w *World) HandleDestroyNotify(win xproto.Window) {
	w.Trace.Record("DestroyNotify")
	w.Unmanage(win, true)
	w.checkQuitDone()
}

// HandleEnterNotify handles an EnterNotify event: focus the client
// whose window the pointer entered; ignore sub-window crossings and
// non-normal modes (filtered by the caller in xconn.go before this is
// invoked).
func (w *World) HandleEnterNotify(win xproto.Window) {
	w.Trace.Record("EnterNotify")
	c, m := w.FindClient(win)
	if c == nil {
		return
	}
	w.Sel = m
	w.Focus(c)
}

// HandleFocusIn handles a FocusIn event: re-assert focus on the
// selected client if an external client stole focus.
func (w *World) HandleFocusIn(win xproto.Window) {
	if w.Sel == nil {
		return
	}
	sel := w.Sel.Selected()
	if sel != nil && sel.Win != win {
		w.setFocusInput(sel)
	}
}

// HandleKeyPress handles a KeyPress event: look up the keysym
// under cleaned modifiers and invoke the bound action.
func (w *World) HandleKeyPress(keysym xproto.Keysym, cleanMods uint16) {
	w.Trace.Record("KeyPress")
	for _, k := range w.Keys {
		if k.Mod == cleanMods && k.Keysym == keysym {
			if k.Action(w, w.Sel, k.Arg) {
				w.Trace.Record("action:" + k.ActionName)
			}
			return
		}
	}
}

// HandleMappingNotify handles a MappingNotify event by recording it for
// diagnostics. Re-grabbing keys happens in xconn's Run loop, which calls
// GrabKeys before this; GrabKeys resolves keycodes from the keyboard
// mapping loaded at startup, and that mapping is not re-read here.
func (w *World) HandleMappingNotify() {
	w.Trace.Record("MappingNotify")
}

// HandleMapRequest handles a MapRequest event: manage the window
// if it is not already managed and is not override-redirect. The
// override-redirect / already-managed checks happen in xconn.go before
// this is called, since they require raw attribute queries this package
// does not perform itself.
func (w *World) HandleMapRequest(win xproto.Window, x, y int32, width, height, border uint32) {
	w.Trace.Record("MapRequest")
	w.Manage(win, x, y, width, height, border)
}

// HandleMotionNotify handles a MotionNotify event: update the
// current monitor when the pointer crosses a monitor boundary.
func (w *World) HandleMotionNotify(rootX, rootY int32) {
	m := w.MonitorAt(rootX, rootY)
	if m != w.Sel {
		if w.Sel != nil {
			w.unfocus(w.Sel.Selected(), true)
		}
		w.Sel = m
		w.Focus(nil)
	}
	if w.Sel != nil {
		w.Sel.LastMouseX, w.Sel.LastMouseY = rootX, rootY
	}
}

// PropertyKind names the WM_* / _NET_* properties a
// PropertyNotify event distinguishes between.
type PropertyKind int

const (
	PropWMName PropertyKind = iota
	PropNetWMName
	PropWMHints
	PropWMNormalHints
	PropWMTransientFor
	PropNetWMWindowType
)

// HandlePropertyNotify handles a PropertyNotify event.
func (w *World) HandlePropertyNotify(win xproto.Window, kind PropertyKind) {
	c, _ := w.FindClient(win)
	if c == nil {
		return
	}
	switch kind {
	case PropWMName, PropNetWMName:
		c.Title = w.Server.WindowTitle(win)
	case PropWMHints:
		c.IsUrgent = w.Server.IsUrgent(win)
		c.NeverFocus = w.Server.NeverFocus(win)
		w.drawBars()
	case PropWMNormalHints:
		c.RefreshSizeHints(w.Server.SizeHints(win))
	case PropWMTransientFor:
		if transWin, ok := w.Server.TransientFor(win); ok {
			if t, _ := w.FindClient(transWin); t != nil {
				c.IsFloating = true
			}
		}
	case PropNetWMWindowType:
		switch w.Server.WindowKind(win) {
		case WindowKindDialog:
			c.IsFloating = true
		case WindowKindFullscreen:
			w.SetFullscreen(c, true)
		}
	}
}

// drawBars redraws every monitor's bar; HandlePropertyNotify calls it after
// a WM_HINTS change updates a client's urgency.
func (w *World) drawBars() {
	for _, m := range w.Monitors {
		if err := w.Server.DrawBar(m.BarWin); err != nil {
			w.Log.WithError(err).Debug("draw bar failed")
		}
	}
}

// HandleExpose handles an Expose event: once the series of stacked expose
// events for a window has drained (count == 0), redraw the bar it belongs
// to. Earlier events in the series are superseded by the final one and
// ignored. Windows that aren't a monitor's bar are ignored outright.
func (w *World) HandleExpose(win xproto.Window, count int32) {
	if count != 0 {
		return
	}
	for _, m := range w.Monitors {
		if m.BarWin == win {
			if err := w.Server.DrawBar(win); err != nil {
				w.Log.WithError(err).Debug("draw bar failed")
			}
			return
		}
	}
}

// HandleUnmapNotify handles an UnmapNotify event: synthetic events
// (withdrawn request) set Withdrawn state; real unmap unmanages the
// client.
func (w *World) HandleUnmapNotify(win xproto.Window, synthetic bool) {
	w.Trace.Record("UnmapNotify")
	if synthetic {
		w.Server.SetWMStateWithdrawn(win)
		return
	}
	w.Unmanage(win, false)
	w.checkQuitDone()
}

// checkQuitDone calls Quit once a quit is in progress and no managed
// client remains. ActionQuit already sets the quitting flag that xconn's
// Run loop polls via Quitting(), so the loop stops right after that action
// and does not wait for this condition.
func (w *World) checkQuitDone() {
	if w.quitting && len(w.AllClients()) == 0 {
		w.Quit()
	}
}
