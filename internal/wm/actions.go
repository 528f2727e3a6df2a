package wm

import "os/exec"

// The action layer is the set of user-facing operations bound to keys and
// buttons; each is expressed purely as a mutation over the models in this
// package. Every function here has the Action signature so it can be
// placed directly into a KeyBinding or ButtonBinding.

// ActionView binds World.View.
func ActionView(w *World, mon *Monitor, arg Argument) bool {
	w.View(mon, arg.UInt)
	return true
}

// ActionToggleView binds World.ToggleView.
func ActionToggleView(w *World, mon *Monitor, arg Argument) bool {
	w.ToggleView(mon, arg.UInt)
	return true
}

// ActionTag binds World.Tag.
func ActionTag(w *World, mon *Monitor, arg Argument) bool {
	w.Tag(mon, arg.UInt)
	return true
}

// ActionToggleTag binds World.ToggleTag.
func ActionToggleTag(w *World, mon *Monitor, arg Argument) bool {
	w.ToggleTag(mon, arg.UInt)
	return true
}

// ActionFocusStack binds World.FocusStack.
func ActionFocusStack(w *World, mon *Monitor, arg Argument) bool {
	w.FocusStack(mon, arg.Dir)
	return true
}

// ActionFocusMonitor binds World.FocusMonitor.
func ActionFocusMonitor(w *World, mon *Monitor, arg Argument) bool {
	w.FocusMonitor(arg.Dir)
	return true
}

// ActionTagMonitor binds World.TagMonitor.
func ActionTagMonitor(w *World, mon *Monitor, arg Argument) bool {
	w.TagMonitor(arg.Dir)
	return true
}

// ActionMoveStack binds Monitor.MoveStackPosition for the selected client.
func ActionMoveStack(w *World, mon *Monitor, arg Argument) bool {
	c := mon.Selected()
	if c == nil {
		return false
	}
	mon.MoveStackPosition(c, arg.Dir)
	w.Arrange(mon)
	return true
}

// ActionSpawn starts a configured command detached from the window
// manager: the child is released so it reparents to init and the window
// manager never waits on it.
func ActionSpawn(w *World, mon *Monitor, arg Argument) bool {
	if len(arg.Str) == 0 {
		return false
	}
	cmd := arg.Str
	go func() {
		c := exec.Command(cmd[0], cmd[1:]...)
		if err := c.Start(); err != nil {
			w.Log.WithError(err).WithField("cmd", cmd).Warn("spawn failed")
			return
		}
		_ = c.Process.Release()
	}()
	return false
}

// ActionKillClient sends WM_DELETE_WINDOW politely if supported, else
// force-kills via XKillClient under a server grab.
func ActionKillClient(w *World, mon *Monitor, arg Argument) bool {
	c := mon.Selected()
	if c == nil {
		return false
	}
	if err := w.Server.SendDeleteWindow(c.Win); err != nil {
		if err := w.Server.KillClient(c.Win); err != nil {
			w.Log.WithError(err).WithField("window", c.Win).Warn("kill client failed")
		}
	}
	return true
}

// abs32 is the int32 absolute value, used by the snap-distance checks
// below.
func abs32(v int32) int32 {
	if v < 0 {
		return -v
	}
	return v
}

// ActionMoveMouse drags the selected client under the pointer. A tiled
// client only floats once the drag has displaced it past the monitor's
// snap threshold; a floating client snaps back to the work-area edge
// when the pointer comes back within that threshold of it.
func ActionMoveMouse(w *World, mon *Monitor, arg Argument) bool {
	c := mon.Selected()
	if c == nil || c.IsFullscreen {
		return false
	}
	w.Restack(mon)
	ocx, ocy := c.Rect.X, c.Rect.Y
	startX, startY, err := w.Server.QueryPointer()
	if err != nil {
		w.Log.WithError(err).Debug("query pointer for move failed")
		return false
	}
	snap := w.SnapThreshold
	wa := mon.WorkArea
	if err := w.Server.PumpDrag(w, func(x, y int32) {
		nx := ocx + (x - startX)
		ny := ocy + (y - startY)
		if nx >= wa.X && nx <= wa.X+int32(wa.Width) && ny >= wa.Y && ny <= wa.Y+int32(wa.Height) {
			if abs32(wa.X-nx) < snap {
				nx = wa.X
			} else if abs32((wa.X+int32(wa.Width))-(nx+int32(c.Rect.Width))) < snap {
				nx = wa.X + int32(wa.Width) - int32(c.Rect.Width)
			}
			if abs32(wa.Y-ny) < snap {
				ny = wa.Y
			} else if abs32((wa.Y+int32(wa.Height))-(ny+int32(c.Rect.Height))) < snap {
				ny = wa.Y + int32(wa.Height) - int32(c.Rect.Height)
			}
			if !c.IsFloating && mon.Layout != nil && mon.Layout.Arrange != nil &&
				(abs32(nx-c.Rect.X) > snap || abs32(ny-c.Rect.Y) > snap) {
				c.IsFloating = true
				w.Arrange(mon)
			}
		}
		if mon.Layout == nil || mon.Layout.Arrange == nil || c.IsFloating {
			c.Rect.X, c.Rect.Y = nx, ny
			if err := w.Server.ConfigureWindow(c.Win, c.Rect, c.Border); err != nil {
				w.Log.WithError(err).Debug("configure during move failed")
			}
		}
	}); err != nil {
		w.Log.WithError(err).Debug("move pump failed")
	}
	w.Arrange(mon)
	return true
}

// ActionResizeMouse resizes the selected client from its bottom-right
// corner: warps the pointer there, then feeds every reported pointer
// position into its size (honoring its size hints), floating a tiled
// client only once the size change exceeds the monitor's snap threshold.
func ActionResizeMouse(w *World, mon *Monitor, arg Argument) bool {
	c := mon.Selected()
	if c == nil || c.IsFullscreen || c.IsFixed {
		return false
	}
	w.Restack(mon)
	cornerX := c.Rect.X + int32(c.Rect.Width) + int32(c.Border) - 1
	cornerY := c.Rect.Y + int32(c.Rect.Height) + int32(c.Border) - 1
	if err := w.Server.WarpPointer(cornerX, cornerY); err != nil {
		w.Log.WithError(err).Debug("warp pointer for resize failed")
	}
	snap := w.SnapThreshold
	wa := mon.WorkArea
	if err := w.Server.PumpDrag(w, func(x, y int32) {
		nw := x - c.Rect.X - 2*int32(c.Border) + 1
		nh := y - c.Rect.Y - 2*int32(c.Border) + 1
		if nw < 1 {
			nw = 1
		}
		if nh < 1 {
			nh = 1
		}
		if c.Rect.X+nw >= wa.X && c.Rect.X+nw <= wa.X+int32(wa.Width) &&
			c.Rect.Y+nh >= wa.Y && c.Rect.Y+nh <= wa.Y+int32(wa.Height) {
			if !c.IsFloating && mon.Layout != nil && mon.Layout.Arrange != nil &&
				(abs32(nw-int32(c.Rect.Width)) > snap || abs32(nh-int32(c.Rect.Height)) > snap) {
				c.IsFloating = true
				w.Arrange(mon)
			}
		}
		if mon.Layout == nil || mon.Layout.Arrange == nil || c.IsFloating {
			nx, ny, neww, newh, _ := c.ApplySizeHints(c.Rect.X, c.Rect.Y, uint32(nw), uint32(nh), true, false, mon.Screen)
			c.Rect = Rect{X: nx, Y: ny, Width: neww, Height: newh}
			if err := w.Server.ConfigureWindow(c.Win, c.Rect, c.Border); err != nil {
				w.Log.WithError(err).Debug("configure during resize failed")
			}
		}
	}); err != nil {
		w.Log.WithError(err).Debug("resize pump failed")
	}
	w.Arrange(mon)
	return true
}

// ActionZoom swaps the selected client into (or out of) the master slot:
// if the selected client is already the first in the client list, swap
// with the next tiled client instead.
func ActionZoom(w *World, mon *Monitor, arg Argument) bool {
	c := mon.Selected()
	if c == nil || c.IsFloating {
		return false
	}
	tiled := mon.VisibleTiled()
	if len(tiled) == 0 {
		return false
	}
	if c == tiled[0] {
		if len(tiled) < 2 {
			return false
		}
		c = tiled[1]
	}
	mon.MoveToFront(c)
	w.Focus(c)
	w.Arrange(mon)
	return true
}

// ActionSetMFact adjusts the master-area fraction (setmfact()).
func ActionSetMFact(w *World, mon *Monitor, arg Argument) bool {
	mon.AdjustMFact(arg.Float)
	w.Arrange(mon)
	return true
}

// ActionIncNMaster adjusts the configured master-client count
// (incnmaster()).
func ActionIncNMaster(w *World, mon *Monitor, arg Argument) bool {
	mon.AdjustNMaster(arg.Int)
	w.Arrange(mon)
	return true
}

// ActionSetGaps adjusts the inter-client gap (setgaps()).
func ActionSetGaps(w *World, mon *Monitor, arg Argument) bool {
	mon.AdjustGap(int32(arg.Int))
	w.Arrange(mon)
	return true
}

// ActionToggleBar toggles the bar's visibility (togglebar()).
func ActionToggleBar(w *World, mon *Monitor, arg Argument) bool {
	mon.SetShowBar(!mon.ShowBar)
	w.Arrange(mon)
	return true
}

// ActionSetLayout cycles (arg.Int < 0) or selects (arg.Int >= 0) a layout.
func ActionSetLayout(w *World, mon *Monitor, arg Argument) bool {
	if arg.Int < 0 {
		mon.CycleLayout()
	} else {
		mon.SetLayoutIndex(arg.Int)
	}
	w.Arrange(mon)
	return true
}

// ActionToggleFloating flips the selected client's floating flag, unless
// it is fullscreen (which rejects the toggle) or size-fixed (always
// floating).
func ActionToggleFloating(w *World, mon *Monitor, arg Argument) bool {
	c := mon.Selected()
	if c == nil || c.IsFullscreen || c.IsFixed {
		return false
	}
	c.IsFloating = !c.IsFloating
	if c.IsFloating {
		c.Rect = c.OldRect
	}
	w.Arrange(mon)
	return true
}

// ActionToggleFullscreen flips the selected client's fullscreen state.
func ActionToggleFullscreen(w *World, mon *Monitor, arg Argument) bool {
	c := mon.Selected()
	if c == nil {
		return false
	}
	w.ToggleFullscreen(c)
	return true
}

// ActionQuit asks every WM_DELETE_WINDOW-capable client to close and marks
// the World quitting. The event loop stops after the event that invoked
// this action; it does not wait for the clients to close.
func ActionQuit(w *World, mon *Monitor, arg Argument) bool {
	w.quitting = true
	for _, c := range w.AllClients() {
		if err := w.Server.SendDeleteWindow(c.Win); err != nil {
			w.Log.WithError(err).Debug("delete-window during quit failed")
		}
	}
	if len(w.AllClients()) == 0 {
		w.Quit()
	}
	return true
}

// Quitting reports whether a quit has been requested.
func (w *World) Quitting() bool {
	return w.quitting
}

// Quit marks the World as done; xconn's Run loop checks Quitting() after
// each dispatch and exits once true.
func (w *World) Quit() {
	w.quitting = true
}
