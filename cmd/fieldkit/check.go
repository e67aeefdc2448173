package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/indico/fieldkit/internal/errors"
)

func checkCmd(configPath *string) *cobra.Command {
	var showMetrics bool

	cmd := &cobra.Command{
		Use:   "check <fixture.yaml>...",
		Short: "Replay interaction fixtures against a dialog",
		Long: `Replay scripted user interactions from YAML fixtures and compare the
visible errors, stored values and submit outcome with the expectations.

Example fixture:

  dialog: add-file-type
  event_id: 1
  existing:
    - name: Slides
  steps:
    - field: name
      change: "slides"
    - submit: true
  expect:
    outcome: rejected
    errors:
      name: A file type with this name already exists.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := newEnv(*configPath, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			failed := 0
			for _, path := range args {
				fx, err := loadFixture(path)
				if err != nil {
					return err
				}
				res, err := runFixture(cmd.Context(), e, fx)
				if err != nil {
					return err
				}
				name := filepath.Base(path)
				if len(res.failures) == 0 {
					success(out, "%s", name)
					continue
				}
				failed++
				errorMsg(out, "%s", name)
				for _, f := range res.failures {
					info(out, "%s", f)
				}
			}

			if showMetrics {
				if err := writeMetrics(out, e); err != nil {
					return err
				}
			}

			if failed > 0 {
				return errors.New("F302").WithDetail(fmt.Sprintf("%d of %d fixtures failed", failed, len(args)))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&showMetrics, "metrics", false, "Print collected form metrics (requires metrics.enabled)")

	return cmd
}
