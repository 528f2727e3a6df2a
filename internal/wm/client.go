package wm

import "github.com/jezek/xgb/xproto"

// Client is a managed top-level window.
type Client struct {
	Win   xproto.Window
	Mon   *Monitor
	Title string

	Rect     Rect
	OldRect  Rect
	Border   uint32
	OldBorder uint32

	Hints SizeHints

	Tags uint32

	IsFixed         bool
	IsFloating      bool
	IsUrgent        bool
	NeverFocus      bool
	IsFullscreen    bool
	ObeysSizeHints  bool
	OldState        bool // was-floating, saved across fullscreen toggle
}

// fixed reports whether the client's min/max size hints pin it to a single
// size on both axes, in which case it is always treated as floating.
func (c *Client) fixed() bool {
	return c.Hints.MaxW > 0 && c.Hints.MaxW == c.Hints.MinW &&
		c.Hints.MaxH > 0 && c.Hints.MaxH == c.Hints.MinH
}

// RefreshSizeHints stores freshly-read ICCCM hints and recomputes IsFixed
// from them; ObeysSizeHints is left as the rules set it.
func (c *Client) RefreshSizeHints(h SizeHints) {
	c.Hints = h
	c.IsFixed = c.fixed()
}

// ApplySizeHints enforces ICCCM 4.1.2.3. It clamps (x, y, w,
// h) against bound: the monitor's full screen rect for an interactive
// (mouse-driven) resize, or its work area otherwise. Then, if the client
// honors size hints (tiled-and-honoring, or floating, or the layout itself
// is floating), it applies aspect-ratio and increment constraints. It
// returns whether the resulting geometry differs from the client's current
// geometry (c.Rect), so callers can skip redundant
// X calls on a no-op resize — and, by construction, applying it twice to
// the same input yields the same output (idempotence is exercised in
// client_test.go).
func (c *Client) ApplySizeHints(x, y int32, w, h uint32, interactive bool, floatingLayout bool, bound Rect) (rx, ry int32, rw, rh uint32, changed bool) {
	nx, ny, nw, nh := x, y, int32(w), int32(h)

	if nw < 1 {
		nw = 1
	}
	if nh < 1 {
		nh = 1
	}

	if interactive {
		if nx > bound.X+int32(bound.Width) {
			nx = bound.X + int32(bound.Width) - nw
		}
		if ny > bound.Y+int32(bound.Height) {
			ny = bound.Y + int32(bound.Height) - nh
		}
		if nx+nw+2*int32(c.Border) < bound.X {
			nx = bound.X
		}
		if ny+nh+2*int32(c.Border) < bound.Y {
			ny = bound.Y
		}
	} else {
		if nx >= bound.X+int32(bound.Width) {
			nx = bound.X + int32(bound.Width) - nw
		}
		if ny >= bound.Y+int32(bound.Height) {
			ny = bound.Y + int32(bound.Height) - nh
		}
		if nx+nw+2*int32(c.Border) <= bound.X {
			nx = bound.X
		}
		if ny+nh+2*int32(c.Border) <= bound.Y {
			ny = bound.Y
		}
	}
	if nh < 1 {
		nh = 1
	}
	if nw < 1 {
		nw = 1
	}

	honors := c.IsFloating || floatingLayout || (c.tiledNonFloating() && c.ObeysSizeHints)

	if honors {
		baseW, baseH := c.Hints.BaseW, c.Hints.BaseH
		// Per the last two sentences of ICCCM 4.1.2.3: a client that never
		// set an explicit base size (base == min) has its base subtracted
		// after the aspect check instead of before.
		baseIsMin := baseW == c.Hints.MinW && baseH == c.Hints.MinH

		w0, h0 := nw, nh
		if !baseIsMin {
			w0 -= baseW
			h0 -= baseH
		}

		if c.Hints.HasAspect {
			fw, fh := float64(w0), float64(h0)
			if c.Hints.MinAspect > 0 && fh > 0 && fw/fh < c.Hints.MinAspect {
				fw = fh * c.Hints.MinAspect
				w0 = int32(fw)
			} else if c.Hints.MaxAspect > 0 && fh > 0 && fw/fh > c.Hints.MaxAspect {
				fh = fw / c.Hints.MaxAspect
				h0 = int32(fh)
			}
		}

		if baseIsMin {
			w0 -= baseW
			h0 -= baseH
		}

		if c.Hints.IncW > 0 {
			w0 -= w0 % c.Hints.IncW
		}
		if c.Hints.IncH > 0 {
			h0 -= h0 % c.Hints.IncH
		}

		nw = max32(w0+baseW, c.Hints.MinW)
		nh = max32(h0+baseH, c.Hints.MinH)
		if c.Hints.MaxW > 0 && nw > c.Hints.MaxW {
			nw = c.Hints.MaxW
		}
		if c.Hints.MaxH > 0 && nh > c.Hints.MaxH {
			nh = c.Hints.MaxH
		}
	}

	if nw < 1 {
		nw = 1
	}
	if nh < 1 {
		nh = 1
	}

	changed = nx != c.Rect.X || ny != c.Rect.Y || uint32(nw) != c.Rect.Width || uint32(nh) != c.Rect.Height
	return nx, ny, uint32(nw), uint32(nh), changed
}

// tiledNonFloating reports whether the client is currently placed by the
// tiled layout (neither floating itself nor fullscreen).
func (c *Client) tiledNonFloating() bool {
	return !c.IsFloating && !c.IsFullscreen
}

func max32(a, b int32) int32 {
	if a > b {
		return a
	}
	if b < 0 {
		return 0
	}
	return b
}
