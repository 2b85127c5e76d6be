package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"pacer/internal/store"
)

func newForgetCmd(root *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "forget",
		Short: "Delete the saved session so the next run starts from defaults",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(root.configPath)
			if err != nil {
				return err
			}

			db, err := store.Open(cfg.Storage.Path, zap.NewNop())
			if err != nil {
				return fmt.Errorf("opening database: %w", err)
			}
			defer db.Close()

			keys, err := db.Keys()
			if err != nil {
				return fmt.Errorf("listing saved values: %w", err)
			}
			if len(keys) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "Nothing saved")
				return nil
			}

			for _, k := range keys {
				if err := db.Delete(k); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Removed %s\n", k)
			}
			return nil
		},
	}
}
