// Command dtwm is a tiling window manager for X11. It is grounded on the
// same event-driven architecture as the reference implementations in its
// lineage: a single-threaded loop blocks on the display connection, decodes
// each event, and mutates an explicit in-memory model of monitors, tags and
// clients rather than any global window-manager state.
package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/dtwm-project/dtwm/internal/config"
	"github.com/dtwm-project/dtwm/internal/wm"
)

var (
	version = "dev"

	cfgPath     string
	logLevel    string
	showVersion bool
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "dtwm",
		Short: "A tiling window manager for X11",
		RunE:  runWM,
	}
	root.Flags().StringVarP(&cfgPath, "config", "c", "", "path to a YAML configuration file (defaults built in if omitted)")
	root.Flags().StringVar(&logLevel, "log-level", "info", "panic, fatal, error, warn, info, debug, or trace")
	root.Flags().BoolVarP(&showVersion, "version", "v", false, "print the dtwm version and exit")
	root.AddCommand(newVersionCmd())
	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the dtwm version",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), version)
			return nil
		},
	}
}

func newLogger(level string) (*logrus.Logger, error) {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("log-level: %w", err)
	}
	log.SetLevel(lvl)
	return log, nil
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Default(), nil
	}
	return config.Load(path)
}

func packColor(hex string, fallback uint32) uint32 {
	c, err := parseHexColor(hex)
	if err != nil {
		return fallback
	}
	return c
}

func runWM(cmd *cobra.Command, args []string) error {
	if showVersion {
		fmt.Fprintln(cmd.OutOrStdout(), version)
		return nil
	}

	log, err := newLogger(logLevel)
	if err != nil {
		return err
	}

	cfg, err := loadConfig(cfgPath)
	if err != nil {
		return err
	}

	registry := config.DefaultRegistry()
	keys, err := cfg.BuildKeys(registry)
	if err != nil {
		return fmt.Errorf("building key bindings: %w", err)
	}
	buttons, err := cfg.BuildButtons(registry)
	if err != nil {
		return fmt.Errorf("building button bindings: %w", err)
	}
	layouts, err := cfg.BuildLayouts()
	if err != nil {
		return fmt.Errorf("building layouts: %w", err)
	}
	rules := cfg.BuildRules()

	focused := packColor(cfg.Appearance.ColorFocused, 0x5f87af)
	unfocused := packColor(cfg.Appearance.ColorUnfocused, 0x444444)

	xc, _, err := wm.Dial(log, focused, unfocused)
	if err != nil {
		return fmt.Errorf("connecting to X display: %w", err)
	}

	world := wm.NewWorld(xc, log, rules, layouts, keys, buttons,
		cfg.MFact, cfg.NMaster, cfg.Gap, cfg.ShowBar, cfg.TopBar, cfg.Appearance.SnapThreshold)

	if err := world.UpdateGeom(); err != nil {
		return fmt.Errorf("querying initial screen geometry: %w", err)
	}
	if err := xc.GrabKeys(world.Keys); err != nil {
		log.WithError(err).Warn("initial key grab failed")
	}
	if err := xc.Scan(world); err != nil {
		log.WithError(err).Warn("startup window scan failed")
	}
	world.Arrange(nil)

	log.WithField("version", version).Info("dtwm starting")
	return xc.Run(world)
}
