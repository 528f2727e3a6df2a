package wm

// View switches the active tag-set: if mask equals the current
// tag-set, no-op; otherwise flip seltags (swap current/previous slots),
// write the new mask into the now-current slot if mask&TAGMASK is
// nonzero, refocus, arrange.
func (w *World) View(m *Monitor, mask uint32) {
	if mask&TagMask == m.ActiveTags() {
		return
	}
	m.SelTags ^= 1
	if mask&TagMask != 0 {
		m.Tagset[m.SelTags] = mask & TagMask
	}
	w.Focus(nil)
	w.Arrange(m)
}

// ToggleView XORs mask into the current tag-set; if the result is nonzero,
// applies it.
func (w *World) ToggleView(m *Monitor, mask uint32) {
	newTags := m.Tagset[m.SelTags] ^ (mask & TagMask)
	if newTags == 0 {
		return
	}
	m.Tagset[m.SelTags] = newTags
	w.Focus(nil)
	w.Arrange(m)
}

// Tag sets the selected client's tags to mask&TAGMASK if nonzero, refocuses
// and arranges.
func (w *World) Tag(m *Monitor, mask uint32) {
	c := m.Selected()
	if c == nil || mask&TagMask == 0 {
		return
	}
	c.Tags = mask & TagMask
	w.Focus(nil)
	w.Arrange(m)
}

// ToggleTag XORs mask into the selected client's tags; if nonzero, applies
// it.
func (w *World) ToggleTag(m *Monitor, mask uint32) {
	c := m.Selected()
	if c == nil {
		return
	}
	newTags := c.Tags ^ (mask & TagMask)
	if newTags == 0 {
		return
	}
	c.Tags = newTags
	w.Focus(nil)
	w.Arrange(m)
}

// FocusStack moves focus along the monitor's client list, skipping
// invisible clients, wrapping at the ends.
func (w *World) FocusStack(m *Monitor, dir Direction) {
	visible := m.VisibleClients()
	if len(visible) == 0 {
		return
	}
	cur := m.Selected()
	idx := indexOfClient(visible, cur)
	var next *Client
	if idx < 0 {
		next = visible[0]
	} else if dir == Next {
		next = visible[(idx+1)%len(visible)]
	} else {
		next = visible[(idx-1+len(visible))%len(visible)]
	}
	w.Focus(next)
	w.Restack(m)
}

// FocusMonitor moves focus to the next/previous monitor; a no-op if only
// one monitor exists.
func (w *World) FocusMonitor(dir Direction) {
	if len(w.Monitors) < 2 || w.Sel == nil {
		return
	}
	idx := indexOfMonitor(w.Monitors, w.Sel)
	if idx < 0 {
		return
	}
	var m *Monitor
	if dir == Next {
		m = w.Monitors[(idx+1)%len(w.Monitors)]
	} else {
		m = w.Monitors[(idx-1+len(w.Monitors))%len(w.Monitors)]
	}
	w.unfocus(w.Sel.Selected(), true)
	w.Sel = m
	w.Focus(nil)
}

// TagMonitor moves the selected client to the next/previous monitor,
// acquiring that monitor's current tag-set.
func (w *World) TagMonitor(dir Direction) {
	if len(w.Monitors) < 2 || w.Sel == nil {
		return
	}
	c := w.Sel.Selected()
	if c == nil {
		return
	}
	idx := indexOfMonitor(w.Monitors, w.Sel)
	if idx < 0 {
		return
	}
	var dest *Monitor
	if dir == Next {
		dest = w.Monitors[(idx+1)%len(w.Monitors)]
	} else {
		dest = w.Monitors[(idx-1+len(w.Monitors))%len(w.Monitors)]
	}
	w.moveClientToMonitor(c, dest)
	w.Focus(nil)
	w.Arrange(w.Sel)
	w.Arrange(dest)
}

func (w *World) moveClientToMonitor(c *Client, dest *Monitor) {
	src := c.Mon
	if src == dest {
		return
	}
	src.Detach(c)
	src.DetachStack(c)
	c.Tags = dest.ActiveTags()
	dest.Attach(c)
	dest.AttachStack(c)
	if err := w.Server.ConfigureWindow(c.Win, c.Rect, c.Border); err != nil {
		w.Log.WithError(err).Debug("configure on monitor move failed")
	}
}

func indexOfMonitor(list []*Monitor, m *Monitor) int {
	for i, v := range list {
		if v == m {
			return i
		}
	}
	return -1
}

// Focus sets the monitor's selected client: if c is nil or
// invisible, picks the topmost visible client from the focus stack;
// unfocuses the current selection; detaches then reattaches the new focus
// at the head of the focus stack; installs focused-mode button grabs; sets
// the border color; sets input focus via WM_TAKE_FOCUS unless NeverFocus;
// updates _NET_ACTIVE_WINDOW.
func (w *World) Focus(c *Client) {
	m := w.Sel
	if c != nil {
		m = c.Mon
	}
	if m == nil {
		return
	}

	if c == nil || !m.Visible(c) {
		c = nil
		for _, s := range m.Stack() {
			if m.Visible(s) {
				c = s
				break
			}
		}
	}

	if m.Selected() != nil && m.Selected() != c {
		w.unfocus(m.Selected(), false)
	}

	if c != nil {
		m.DetachStack(c)
		m.AttachStack(c)
		if err := w.Server.GrabButtons(c.Win, true); err != nil {
			w.Log.WithError(err).Debug("grab focused buttons failed")
		}
		if err := w.Server.SetBorderColor(c.Win, true); err != nil {
			w.Log.WithError(err).Debug("set border color failed")
		}
		w.setFocusInput(c)
	}

	m.SetSelected(c)
	w.Sel = m
	if c != nil {
		w.Server.SetActiveWindow(c.Win)
	}
}

func (w *World) setFocusInput(c *Client) {
	if c.NeverFocus {
		return
	}
	if err := w.Server.SetInputFocus(c.Win); err != nil {
		w.Log.WithError(err).Debug("set input focus failed")
	}
	if err := w.Server.SendTakeFocus(c.Win); err != nil {
		w.Log.WithError(err).Debug("send take-focus failed")
	}
}

// unfocus clears a client's focused-state X side effects. setSel controls
// whether the monitor's selection pointer is also cleared; Focus() manages
// that itself when switching to a new client, but FocusMonitor() needs the
// old monitor's selection cleared outright.
func (w *World) unfocus(c *Client, setSel bool) {
	if c == nil {
		return
	}
	if err := w.Server.GrabButtons(c.Win, false); err != nil {
		w.Log.WithError(err).Debug("grab unfocused buttons failed")
	}
	if err := w.Server.SetBorderColor(c.Win, false); err != nil {
		w.Log.WithError(err).Debug("set border color failed")
	}
	w.PrevClient = c
	if setSel {
		c.Mon.SetSelected(nil)
	}
}
