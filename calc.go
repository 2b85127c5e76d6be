package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"pacer/internal/pacing"
	"pacer/internal/report"
)

type calcFlags struct {
	distance  string
	intervals []string
	unit      string
	splitUnit float64
	format    string
}

func newCalcCmd(root *rootFlags) *cobra.Command {
	flags := &calcFlags{}

	cmd := &cobra.Command{
		Use:   "calc",
		Short: "Compute a plan from flags without touching the saved session",
		Long: `Compute the average split and projected time for a distance and a list of
intervals. Each interval is SIZE@SPLIT, where SIZE is its relative share of
the distance and SPLIT is the target time per split unit (M:SS or M:SS.D).`,
		Example: `  pacer calc --distance 2000 --interval 25@1:45 --interval 75@1:50
  pacer calc --distance 5 --unit km -i 50@2:00 -i 50@1:55.5 --format yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(root.configPath)
			if err != nil {
				return err
			}

			unit := flags.unit
			if unit == "" {
				unit = cfg.Display.DistanceUnit
			}
			units := report.NewUnits(unit)

			distance := cfg.Plan.DefaultDistance
			if flags.distance != "" {
				distance, err = units.ParseDistance(flags.distance)
				if err != nil {
					return err
				}
			}
			if err := pacing.ValidateDistance(distance); err != nil {
				return err
			}

			set, err := parseIntervals(flags.intervals)
			if err != nil {
				return err
			}

			splitUnit := flags.splitUnit
			if splitUnit <= 0 {
				splitUnit = cfg.Plan.SplitUnit
			}

			plan, err := pacing.NewPlan(set, distance, splitUnit)
			if err != nil {
				return err
			}
			return report.Write(cmd.OutOrStdout(), report.NewSummary(plan, units), flags.format)
		},
	}

	cmd.Flags().StringVarP(&flags.distance, "distance", "d", "", "Total distance in --unit (default from config)")
	cmd.Flags().StringArrayVarP(&flags.intervals, "interval", "i", nil, "Interval as SIZE@SPLIT, repeatable (default 100@2:00)")
	cmd.Flags().StringVarP(&flags.unit, "unit", "u", "", "Distance unit: m, km or mi (default from config)")
	cmd.Flags().Float64Var(&flags.splitUnit, "split-unit", 0, "Meters a split refers to (default from config)")
	cmd.Flags().StringVarP(&flags.format, "format", "f", report.FormatText, "Output format: text, json or yaml")

	return cmd
}

// parseIntervals turns SIZE@SPLIT arguments into an interval set. No
// arguments yields the default set.
func parseIntervals(args []string) (pacing.IntervalSet, error) {
	if len(args) == 0 {
		return pacing.DefaultIntervals(), nil
	}

	set := make(pacing.IntervalSet, 0, len(args))
	for _, arg := range args {
		iv, err := parseInterval(arg)
		if err != nil {
			return nil, err
		}
		set = append(set, iv)
	}
	return set, nil
}

func parseInterval(arg string) (pacing.Interval, error) {
	sizeText, splitText, ok := strings.Cut(arg, "@")
	if !ok {
		return pacing.Interval{}, fmt.Errorf("interval %q: want SIZE@SPLIT", arg)
	}

	size, err := strconv.ParseFloat(strings.TrimSpace(sizeText), 64)
	if err != nil || !(size >= pacing.SmallestIntervalSize) {
		return pacing.Interval{}, fmt.Errorf("interval %q: size must be a number of at least %g", arg, pacing.SmallestIntervalSize)
	}

	split := pacing.ParseTime(splitText)
	if err := pacing.ValidateSplit(split.Minutes, split.Seconds, split.Milliseconds); err != nil {
		return pacing.Interval{}, fmt.Errorf("interval %q: %w", arg, err)
	}

	iv := pacing.Interval{Size: size}
	iv.SetSplit(split)
	iv.RawInput = pacing.FormatSplit(iv)
	return iv, nil
}
