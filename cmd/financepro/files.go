package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/financepro/planner/internal/config"
	"github.com/financepro/planner/internal/domain"
	"github.com/financepro/planner/internal/output"

	"github.com/spf13/cobra"
)

func newRunCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "run <scenarios.yaml>",
		Short: "Run every scenario of a scenario file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.NewInputParser().LoadFromFile(args[0])
			if err != nil {
				return err
			}
			a.logger.Debugf("loaded %d scenario(s) from %s", cfg.ScenarioCount(), args[0])
			return a.run(cmd, cfg)
		},
	}
}

func newExampleCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "example [file]",
		Short: "Write an example scenario file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			filename := "financepro_example.yaml"
			if len(args) == 1 {
				filename = args[0]
			}
			parser := config.NewInputParser()
			if err := parser.SaveConfiguration(parser.CreateExampleConfiguration(), filename); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "  Example scenarios written to %s\n", filename)
			fmt.Fprintf(cmd.OutOrStdout(), "  Run `financepro run %s` to see the report.\n", filename)
			a.logger.Debugf("example written to %s", filename)
			return nil
		},
	}
}

func newProductsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "products",
		Short: "List the financial product presets",
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "  KEY\tNAME\tEXPECTED RETURN")
			for _, p := range domain.Products() {
				fmt.Fprintf(w, "  %s\t%s\t%s\n", p.Key, p.Name, output.FormatPercentage(p.ExpectedReturn))
			}
			return w.Flush()
		},
	}
}
