package wm

import (
	"github.com/jezek/xgb/xproto"
	"github.com/sirupsen/logrus"
)

// World groups every piece of mutable state a handler needs into one
// explicit context object, instead of the global singletons (a monitor
// list, a selected monitor, a previously-focused client, an atom table)
// a C implementation typically scatters across file-scope statics. The
// event loop owns it uniquely, so no synchronization is needed.
type World struct {
	Server XServer
	Log    *logrus.Logger

	Monitors []*Monitor
	Sel      *Monitor

	Rules    []Rule
	Layouts  []*Layout
	Keys     []KeyBinding
	Buttons  []ButtonBinding

	MFact    float64
	NMaster  int
	Gap      uint32
	ShowBar  bool
	TopBar   bool

	// SnapThreshold is the pixel distance within which a mouse-driven
	// move/resize floats a tiled client or snaps a floating one to the
	// work-area edge.
	SnapThreshold int32

	// PrevClient is process-wide state updated on every unfocus and cleared
	// when that client is unmanaged. No action in this build reads it.
	PrevClient *Client

	Trace *Trace

	quitting bool
}

// NewWorld constructs a World with no monitors yet; call UpdateGeom to
// populate Monitors from the XServer.
func NewWorld(server XServer, log *logrus.Logger, rules []Rule, layouts []*Layout, keys []KeyBinding, buttons []ButtonBinding, mfact float64, nmaster int, gap uint32, showbar, topbar bool, snapThreshold int32) *World {
	return &World{
		Server:        server,
		Log:           log,
		Rules:         rules,
		Layouts:       layouts,
		Keys:          keys,
		Buttons:       buttons,
		MFact:         mfact,
		NMaster:       nmaster,
		Gap:           gap,
		ShowBar:       showbar,
		TopBar:        topbar,
		SnapThreshold: snapThreshold,
		Trace:         NewTrace(256),
	}
}

// MonitorAt returns the Monitor whose screen rect contains (x, y), or the
// first monitor if none does.
func (w *World) MonitorAt(x, y int32) *Monitor {
	for _, m := range w.Monitors {
		if m.Screen.Contains(x, y) {
			return m
		}
	}
	if len(w.Monitors) > 0 {
		return w.Monitors[0]
	}
	return nil
}

// FindClient searches every monitor's client list for the client owning
// xWin.
func (w *World) FindClient(xWin xproto.Window) (*Client, *Monitor) {
	for _, m := range w.Monitors {
		if c := m.windowOf(xWin); c != nil {
			return c, m
		}
	}
	return nil, nil
}

// AllClients returns every managed client across every monitor, in no
// particular order; used by _NET_CLIENT_LIST rebuilds and the quit path.
func (w *World) AllClients() []*Client {
	var out []*Client
	for _, m := range w.Monitors {
		out = append(out, m.clients...)
	}
	return out
}

// rebuildClientList pushes the full client set to _NET_CLIENT_LIST, as
// manage()/unmanage() do after every membership change.
func (w *World) rebuildClientList() {
	all := w.AllClients()
	wins := make([]xproto.Window, len(all))
	for i, c := range all {
		wins[i] = c.Win
	}
	w.Server.SetNetClientList(wins)
}
