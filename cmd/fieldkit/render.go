package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/indico/fieldkit/internal/errors"
	"github.com/indico/fieldkit/internal/filetypes"
	"github.com/indico/fieldkit/pkg/render"
)

const dialogAddFileType = "add-file-type"

func renderCmd(configPath *string) *cobra.Command {
	var (
		eventID int
		lang    string
		pretty  bool
		page    bool
	)

	cmd := &cobra.Command{
		Use:   "render <dialog>",
		Short: "Render a dialog as HTML",
		Long: `Render a dialog to standard output.

Dialogs:
  add-file-type   the "add file type" modal of an event

Examples:
  fieldkit render add-file-type --event-id 42
  fieldkit render add-file-type --lang fr --pretty --page`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := newEnv(*configPath, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			if args[0] != dialogAddFileType {
				return errors.New("F301").
					WithDetail(fmt.Sprintf("unknown dialog %q", args[0])).
					WithSuggestion("Available dialogs: " + dialogAddFileType)
			}

			dialog := e.dialog(eventID, lang, filetypes.NewMemoryStore(e.translator(lang)))
			r := render.NewRenderer(render.RendererConfig{
				Pretty: pretty || e.cfg.Render.Pretty,
				Indent: e.cfg.Render.Indent,
			})

			out := cmd.OutOrStdout()
			if page {
				return r.RenderPage(out, render.PageData{
					Body:        dialog.Render(),
					Title:       e.translator(lang).T(pageTitle(e.cfg.Render.Title)),
					Lang:        e.catalog.Match(langOr(lang, e.cfg.Locale)),
					StyleSheets: e.cfg.Render.StyleSheets,
				})
			}
			if err := r.RenderToWriter(out, dialog.Render()); err != nil {
				return err
			}
			_, err = fmt.Fprintln(out)
			return err
		},
	}

	cmd.Flags().IntVar(&eventID, "event-id", 0, "Event the dialog belongs to")
	cmd.Flags().StringVar(&lang, "lang", "", "Language (default: configured locale)")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "Indent the output")
	cmd.Flags().BoolVar(&page, "page", false, "Wrap the dialog in a full HTML page")

	return cmd
}

func pageTitle(title string) string {
	if title == "" {
		return "Add a new file type"
	}
	return title
}

func langOr(lang, fallback string) string {
	if lang == "" {
		return fallback
	}
	return lang
}
