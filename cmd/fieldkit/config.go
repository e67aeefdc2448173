package main

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/indico/fieldkit/internal/config"
	"github.com/indico/fieldkit/internal/errors"
)

func configCmd(configPath *string) *cobra.Command {
	var initFile bool

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show the effective configuration",
		Long: `Print the effective configuration as JSON, with defaults applied.

With --init, write a default fieldkit.json to the working directory.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if initFile {
				wd, err := os.Getwd()
				if err != nil {
					return errors.New("F001").Wrap(err)
				}
				path := filepath.Join(wd, config.ConfigFileName)
				if _, err := os.Stat(path); err == nil {
					return errors.New("F003").
						WithDetail(path + " already exists")
				}
				if err := config.New().SaveTo(path); err != nil {
					return err
				}
				success(out, "Created %s", path)
				return nil
			}

			cfg, err := loadConfig(*configPath)
			if err != nil {
				return err
			}
			if cfg.Path() != "" {
				info(out, "Loaded from %s", cfg.Path())
			} else {
				info(out, "No %s found, showing defaults", config.ConfigFileName)
			}
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(cfg)
		},
	}

	cmd.Flags().BoolVar(&initFile, "init", false, "Write a default fieldkit.json")

	return cmd
}
