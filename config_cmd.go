package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"pacer/internal/config"
)

func newConfigCmd(root *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the config file",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "init",
		Short: "Write an example config file if none exists",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := root.configPath
			if path == "" {
				dir, err := config.GetConfigDir()
				if err != nil {
					return err
				}
				path = filepath.Join(dir, "config.json")
			}

			written, err := config.CreateExample(path)
			if err != nil {
				return fmt.Errorf("creating example config: %w", err)
			}
			if written {
				fmt.Fprintf(cmd.OutOrStdout(), "Wrote example config to %s\n", path)
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "Config already exists at %s\n", path)
			}
			return nil
		},
	})

	return cmd
}
