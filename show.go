package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"pacer/internal/report"
)

type showFlags struct {
	format string
}

func newShowCmd(root *rootFlags) *cobra.Command {
	flags := &showFlags{}

	cmd := &cobra.Command{
		Use:     "show",
		Short:   "Print the plan of the saved session",
		Example: `  pacer show --format json`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(root.configPath)
			if err != nil {
				return err
			}

			s, db, err := openSession(cfg, zap.NewNop(), nil)
			if err != nil {
				return err
			}
			defer db.Close()

			plan, err := s.Plan()
			if err != nil {
				return err
			}
			units := report.NewUnits(cfg.Display.DistanceUnit)
			return report.Write(cmd.OutOrStdout(), report.NewSummary(plan, units), flags.format)
		},
	}

	cmd.Flags().StringVarP(&flags.format, "format", "f", report.FormatText, "Output format: text, json or yaml")

	return cmd
}
