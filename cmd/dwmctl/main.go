// Command dwmctl validates and inspects a dtwm configuration file offline.
// It never opens an X connection: there is no IPC channel between it and a
// running dtwm, so it exists purely as a config linter and pretty-printer
// a user can run before reloading or restarting the window manager.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/dtwm-project/dtwm/internal/config"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "dwmctl",
		Short: "Validate and inspect a dtwm configuration file",
	}
	root.AddCommand(newCheckCmd())
	root.AddCommand(newDumpCmd())
	return root
}

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <config.yaml>",
		Short: "Parse and validate a configuration file, reporting the first error found",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(args[0])
			if err != nil {
				return err
			}
			registry := config.DefaultRegistry()
			if _, err := cfg.BuildKeys(registry); err != nil {
				return err
			}
			if _, err := cfg.BuildButtons(registry); err != nil {
				return err
			}
			if _, err := cfg.BuildLayouts(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "ok")
			return nil
		},
	}
}

func newDumpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dump <config.yaml>",
		Short: "Load a configuration file (with defaults applied) and print it back as YAML",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(args[0])
			if err != nil {
				return err
			}
			out, err := yaml.Marshal(cfg)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), string(out))
			return nil
		},
	}
}
