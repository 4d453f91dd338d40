package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Ch3mestry/bioTest/internal/config"
)

func newConfigCommand(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect or create the configuration file",
	}

	var path string
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write the effective configuration to the user config file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(cmd, opts.configFile)
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}
			if path == "" {
				if path, err = config.Path(); err != nil {
					return err
				}
			}
			if err := config.Write(cfg, path); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}
	initCmd.Flags().StringVarP(&path, "output", "o", "", "destination file (default is the user config file)")

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(cmd, opts.configFile)
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "language: %s\nlog.file: %s\nlog.level: %s\n",
				cfg.Language, cfg.Log.File, cfg.Log.Level)
			return nil
		},
	}

	cmd.AddCommand(initCmd, showCmd)
	return cmd
}
