// Package config loads the YAML file that supplies the static tables the
// window-management state machine needs at startup: tag names, layout
// order, per-client rules, appearance, and the key/button bindings. This is
// the external configuration collaborator the core state machine never
// constructs itself — the action table and rule set are values handed in
// from outside.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/dtwm-project/dtwm/internal/wm"
)

// Config is the root of the YAML document.
type Config struct {
	ModKey  string   `yaml:"mod_key"`
	Tags    []string `yaml:"tags"`
	Layouts []string `yaml:"layouts"`

	Appearance Appearance `yaml:"appearance"`

	MFact   float64 `yaml:"mfact"`
	NMaster int     `yaml:"nmaster"`
	Gap     uint32  `yaml:"gap"`
	ShowBar bool    `yaml:"show_bar"`
	TopBar  bool    `yaml:"top_bar"`

	Rules    []RuleSpec    `yaml:"rules"`
	Keys     []KeySpec     `yaml:"keys"`
	Buttons  []ButtonSpec  `yaml:"buttons"`
}

// Appearance controls border and bar colors, carried straight through to
// xconn's SetBorderColor calls.
type Appearance struct {
	BorderWidth    uint32 `yaml:"border_width"`
	ColorFocused   string `yaml:"color_focused"`
	ColorUnfocused string `yaml:"color_unfocused"`
	Font           string `yaml:"font"`
	SnapThreshold  int32  `yaml:"snap_threshold"`
}

// RuleSpec is the YAML shape of a wm.Rule, with Tags expressed as a list of
// tag indices (1-based, matching the Tags list above) rather than a raw
// bitmask, since hand-writing bitmasks in a config file invites mistakes.
type RuleSpec struct {
	Class         string `yaml:"class"`
	Instance      string `yaml:"instance"`
	Title         string `yaml:"title"`
	Tags          []int  `yaml:"tags"`
	Floating      bool   `yaml:"floating"`
	Monitor       int    `yaml:"monitor"`
	ObeySizeHints bool   `yaml:"obey_size_hints"`
}

// KeySpec binds a key combination (e.g. "mod+shift+c") to an action name
// plus its argument.
type KeySpec struct {
	Combo  string      `yaml:"combo"`
	Action string      `yaml:"action"`
	Arg    interface{} `yaml:"arg"`
}

// ButtonSpec is KeySpec's counterpart for pointer buttons ("mod+1", "mod+3").
type ButtonSpec struct {
	Combo  string      `yaml:"combo"`
	Action string      `yaml:"action"`
	Arg    interface{} `yaml:"arg"`
}

// Load reads and parses path, applying defaults for anything the document
// omits (mirroring config.def.h's role of supplying built-in fallbacks).
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Default returns the built-in configuration used when no file is
// supplied or to seed fields a partial file omits.
func Default() *Config {
	return &Config{
		ModKey:  "mod4",
		Tags:    []string{"1", "2", "3", "4", "5", "6", "7", "8", "9"},
		Layouts: []string{"tile", "monocle", "floating"},
		Appearance: Appearance{
			BorderWidth:    1,
			ColorFocused:   "#5f87af",
			ColorUnfocused: "#444444",
			Font:           "monospace:size=10",
			SnapThreshold:  32,
		},
		MFact:   0.55,
		NMaster: 1,
		Gap:     0,
		ShowBar: true,
		TopBar:  true,
	}
}

// Validate reports the first structural problem found, so callers fail
// fast before any X connection is opened.
func (c *Config) Validate() error {
	if len(c.Tags) == 0 || len(c.Tags) > wm.NumTags {
		return fmt.Errorf("tags: must configure 1-%d tags, got %d", wm.NumTags, len(c.Tags))
	}
	if len(c.Layouts) == 0 {
		return fmt.Errorf("layouts: at least one layout required")
	}
	if c.MFact <= 0 || c.MFact >= 1 {
		return fmt.Errorf("mfact: must be in (0, 1), got %v", c.MFact)
	}
	for i, r := range c.Rules {
		for _, t := range r.Tags {
			if t < 1 || t > len(c.Tags) {
				return fmt.Errorf("rules[%d]: tag index %d out of range", i, t)
			}
		}
	}
	return nil
}

// TagsMask converts a list of 1-based tag indices into the bitmask the wm
// package operates on.
func TagsMask(indices []int) uint32 {
	var mask uint32
	for _, i := range indices {
		if i >= 1 && i <= wm.NumTags {
			mask |= 1 << uint(i-1)
		}
	}
	return mask
}

// BuildRules converts the YAML rule specs into wm.Rule values.
func (c *Config) BuildRules() []wm.Rule {
	out := make([]wm.Rule, 0, len(c.Rules))
	for _, r := range c.Rules {
		mask := TagsMask(r.Tags)
		if mask == 0 {
			mask = 1
		}
		out = append(out, wm.Rule{
			Class:         r.Class,
			Instance:      r.Instance,
			Title:         r.Title,
			Tags:          mask,
			Floating:      r.Floating,
			Monitor:       r.Monitor,
			ObeySizeHints: r.ObeySizeHints,
		})
	}
	return out
}

// BuildLayouts resolves the configured layout-name order into the concrete
// wm.Layout values (tile/monocle/floating are the only ones this build
// ships; an unknown name is an error returned here, not a silent skip).
func (c *Config) BuildLayouts() ([]*wm.Layout, error) {
	out := make([]*wm.Layout, 0, len(c.Layouts))
	for _, name := range c.Layouts {
		switch name {
		case "tile":
			out = append(out, wm.TileLayout())
		case "monocle":
			out = append(out, wm.MonocleLayout())
		case "floating":
			out = append(out, wm.FloatingLayout())
		default:
			return nil, fmt.Errorf("unknown layout %q", name)
		}
	}
	return out, nil
}

// BuildKeys resolves KeySpecs into wm.KeyBinding values using the action
// registry and the mod-key alias configured above.
func (c *Config) BuildKeys(registry ActionRegistry) ([]wm.KeyBinding, error) {
	modMask, err := resolveMod(c.ModKey)
	if err != nil {
		return nil, err
	}
	out := make([]wm.KeyBinding, 0, len(c.Keys))
	for _, k := range c.Keys {
		mods, keysym, err := parseKeyCombo(k.Combo, modMask)
		if err != nil {
			return nil, fmt.Errorf("key %q: %w", k.Combo, err)
		}
		action, ok := registry[k.Action]
		if !ok {
			return nil, fmt.Errorf("key %q: unknown action %q", k.Combo, k.Action)
		}
		out = append(out, wm.KeyBinding{
			Mod:        mods,
			Keysym:     keysym,
			Action:     action,
			ActionName: k.Action,
			Arg:        toArgument(k.Arg),
		})
	}
	return out, nil
}

// BuildButtons is BuildKeys' counterpart for pointer bindings.
func (c *Config) BuildButtons(registry ActionRegistry) ([]wm.ButtonBinding, error) {
	modMask, err := resolveMod(c.ModKey)
	if err != nil {
		return nil, err
	}
	out := make([]wm.ButtonBinding, 0, len(c.Buttons))
	for _, b := range c.Buttons {
		mods, button, err := parseButtonCombo(b.Combo, modMask)
		if err != nil {
			return nil, fmt.Errorf("button %q: %w", b.Combo, err)
		}
		action, ok := registry[b.Action]
		if !ok {
			return nil, fmt.Errorf("button %q: unknown action %q", b.Combo, b.Action)
		}
		out = append(out, wm.ButtonBinding{
			Mod:        mods,
			Button:     button,
			Action:     action,
			ActionName: b.Action,
			Arg:        toArgument(b.Arg),
		})
	}
	return out, nil
}

// ActionRegistry maps the YAML "action" string to the compiled wm.Action
// function. cmd/dtwm builds the production registry; tests can supply a
// smaller one.
type ActionRegistry map[string]wm.Action

// DefaultRegistry is every action this build ships, keyed by the name used
// in the YAML schema documented alongside this package.
func DefaultRegistry() ActionRegistry {
	return ActionRegistry{
		"view":               wm.ActionView,
		"toggleview":         wm.ActionToggleView,
		"tag":                wm.ActionTag,
		"toggletag":          wm.ActionToggleTag,
		"focusstack":         wm.ActionFocusStack,
		"focusmonitor":       wm.ActionFocusMonitor,
		"tagmonitor":         wm.ActionTagMonitor,
		"movestack":          wm.ActionMoveStack,
		"spawn":              wm.ActionSpawn,
		"killclient":         wm.ActionKillClient,
		"move_mouse":         wm.ActionMoveMouse,
		"resize_mouse":       wm.ActionResizeMouse,
		"zoom":               wm.ActionZoom,
		"setmfact":           wm.ActionSetMFact,
		"incnmaster":         wm.ActionIncNMaster,
		"setgaps":            wm.ActionSetGaps,
		"togglebar":          wm.ActionToggleBar,
		"setlayout":          wm.ActionSetLayout,
		"togglefloating":     wm.ActionToggleFloating,
		"togglefullscreen":   wm.ActionToggleFullscreen,
		"quit":               wm.ActionQuit,
	}
}

func toArgument(v interface{}) wm.Argument {
	switch t := v.(type) {
	case int:
		return wm.Argument{Int: t}
	case float64:
		if t == float64(int(t)) {
			return wm.Argument{Int: int(t), Float: t}
		}
		return wm.Argument{Float: t}
	case string:
		switch t {
		case "next":
			return wm.Argument{Dir: wm.Next}
		case "prev":
			return wm.Argument{Dir: wm.Prev}
		default:
			return wm.Argument{Str: []string{t}}
		}
	case []interface{}:
		strs := make([]string, 0, len(t))
		for _, e := range t {
			strs = append(strs, fmt.Sprint(e))
		}
		return wm.Argument{Str: strs}
	case uint32:
		return wm.Argument{UInt: t}
	default:
		return wm.Argument{}
	}
}
