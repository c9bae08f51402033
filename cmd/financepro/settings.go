package main

import (
	"fmt"

	"github.com/financepro/planner/internal/config"

	"github.com/spf13/cobra"
)

func newSettingsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Show the settings in effect",
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			path := a.settingsFile()
			fmt.Fprintf(out, "  Settings file: %s\n", path)
			if config.Exists(path) {
				fmt.Fprintln(out, "  Status: loaded")
			} else {
				fmt.Fprintln(out, "  Status: using defaults (no settings file)")
			}
			fmt.Fprintln(out)

			s := a.settings
			fmt.Fprintln(out, "  [output]")
			fmt.Fprintf(out, "    format:          %s\n", s.Output.Format)
			if s.Output.Directory != "" {
				fmt.Fprintf(out, "    directory:       %s\n", s.Output.Directory)
			}
			fmt.Fprintf(out, "    currency_symbol: %s\n", s.Output.CurrencySymbol)
			fmt.Fprintln(out)
			fmt.Fprintln(out, "  [logging]")
			fmt.Fprintf(out, "    level: %s\n", s.Logging.Level)
			fmt.Fprintf(out, "    json:  %v\n", s.Logging.JSON)
			return nil
		},
	}
	cmd.AddCommand(newSettingsInitCmd(a))
	return cmd
}

func newSettingsInitCmd(a *app) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a settings file with the default values",
		RunE: func(cmd *cobra.Command, _ []string) error {
			path := a.settingsFile()
			if config.Exists(path) && !force {
				return fmt.Errorf("settings file %s already exists, use --force to overwrite", path)
			}
			if err := config.Save(config.DefaultSettings(), path); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "  Settings written to %s\n", path)
			a.logger.Debugf("default settings written to %s", path)
			return nil
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing settings file")
	return cmd
}

