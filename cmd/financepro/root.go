package main

import (
	"context"
	"fmt"
	"io"

	"github.com/financepro/planner/internal/calculation"
	"github.com/financepro/planner/internal/config"
	"github.com/financepro/planner/internal/domain"
	"github.com/financepro/planner/internal/output"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var _ calculation.Logger = (*logrus.Logger)(nil)

// app holds the global flags and the state shared by every command
type app struct {
	format       string
	outputDir    string
	settingsPath string
	verbose      bool

	settings config.Settings
	logger   *logrus.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:          "financepro",
		Short:        "Financial projection CLI",
		Long:         "Project retirement savings, amortize loans and compare investing against buying property.",
		SilenceUsage: true,

		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd.ErrOrStderr())
		},
	}

	rootCmd.PersistentFlags().StringVarP(&a.format, "format", "f", "", "Output format (console, csv, detailed-csv, json, html, xlsx, all)")
	rootCmd.PersistentFlags().StringVarP(&a.outputDir, "output-dir", "o", "", "Directory for report files")
	rootCmd.PersistentFlags().StringVar(&a.settingsPath, "settings", "", "Settings file (default "+config.Path()+")")
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Log calculation progress")

	rootCmd.AddCommand(
		newRetirementCmd(a),
		newLoanCmd(a),
		newPlannerCmd(a),
		newRunCmd(a),
		newExampleCmd(a),
		newProductsCmd(),
		newSettingsCmd(a),
	)
	return rootCmd
}

// setup loads the settings and configures the logger and currency symbol.
// Flags take precedence over the settings file.
func (a *app) setup(logOut io.Writer) error {
	var (
		settings config.Settings
		err      error
	)
	if a.settingsPath == "" {
		settings, err = config.Load()
	} else {
		settings, err = config.LoadFrom(a.settingsPath)
	}
	if err != nil {
		return err
	}
	a.settings = settings

	if a.format == "" {
		a.format = settings.Output.Format
	}
	if a.outputDir == "" {
		a.outputDir = settings.Output.Directory
	}
	if a.outputDir == "" {
		a.outputDir = "."
	}
	output.SetCurrencySymbol(settings.Output.CurrencySymbol)

	logger, err := newLogger(settings.Logging, a.verbose, logOut)
	if err != nil {
		return err
	}
	a.logger = logger
	return nil
}

// settingsFile is the settings path in effect
func (a *app) settingsFile() string {
	if a.settingsPath == "" {
		return config.Path()
	}
	return a.settingsPath
}

func newLogger(ls config.LoggingSettings, verbose bool, out io.Writer) (*logrus.Logger, error) {
	logger := logrus.New()
	logger.SetOutput(out)
	if ls.JSON {
		logger.SetFormatter(&logrus.JSONFormatter{})
	}

	level := logrus.WarnLevel
	if ls.Level != "" {
		parsed, err := logrus.ParseLevel(ls.Level)
		if err != nil {
			return nil, fmt.Errorf("logging level: %w", err)
		}
		level = parsed
	}
	if verbose {
		level = logrus.DebugLevel
	}
	logger.SetLevel(level)
	return logger, nil
}

// run validates the configuration, runs every scenario and renders the report
func (a *app) run(cmd *cobra.Command, cfg *domain.Configuration) error {
	if err := config.NewInputParser().ValidateConfiguration(cfg); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	engine := calculation.NewCalculationEngine()
	engine.SetLogger(a.logger)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	report, err := engine.RunScenarios(ctx, cfg)
	if err != nil {
		return err
	}
	return a.render(cmd.OutOrStdout(), report)
}

// render prints console output or writes report files and lists them
func (a *app) render(out io.Writer, report *domain.Report) error {
	if output.NormalizeFormatName(a.format) == "console" {
		data, err := output.ConsoleFormatter{}.Format(report)
		if err != nil {
			return err
		}
		_, err = out.Write(data)
		return err
	}

	files, err := output.GenerateReport(report, a.format, a.outputDir)
	if err != nil {
		return err
	}
	for _, f := range files {
		fmt.Fprintf(out, "  Report written to %s\n", f)
	}
	a.logger.Infof("wrote %d report file(s) to %s", len(files), a.outputDir)
	return nil
}
