package wm

// SetFullscreen toggles a client between its normal placement and
// fullscreen: entering fullscreen saves the previous floating/border-width
// state, forces floating with zero border, resizes to the full monitor
// rect, sets _NET_WM_STATE_FULLSCREEN, and raises; leaving restores all
// saved fields and re-arranges. Fullscreen clients reject mouse move/resize
// (enforced by the action layer, not here).
func (w *World) SetFullscreen(c *Client, fullscreen bool) {
	if fullscreen == c.IsFullscreen {
		return
	}
	if fullscreen {
		c.OldRect = c.Rect
		c.OldBorder = c.Border
		c.OldState = c.IsFloating
		c.IsFloating = true
		c.IsFullscreen = true
		c.Border = 0
		w.Server.SetFullscreenState(c.Win, true)
		if err := w.Server.ConfigureWindow(c.Win, c.Mon.Screen, 0); err != nil {
			w.Log.WithError(err).Debug("configure fullscreen failed")
		}
		c.Rect = c.Mon.Screen
		if err := w.Server.RaiseWindow(c.Win); err != nil {
			w.Log.WithError(err).Debug("raise fullscreen failed")
		}
	} else {
		c.IsFullscreen = false
		c.IsFloating = c.OldState
		c.Border = c.OldBorder
		c.Rect = c.OldRect
		w.Server.SetFullscreenState(c.Win, false)
		if err := w.Server.ConfigureWindow(c.Win, c.Rect, c.Border); err != nil {
			w.Log.WithError(err).Debug("configure un-fullscreen failed")
		}
		w.Arrange(c.Mon)
	}
}

// ToggleFullscreen flips the fullscreen state (the ADD/REMOVE/TOGGLE verbs
// of _NET_WM_STATE's ClientMessage handling collapse to this plus the two
// explicit-state branches in the dispatcher).
func (w *World) ToggleFullscreen(c *Client) {
	w.SetFullscreen(c, !c.IsFullscreen)
}
