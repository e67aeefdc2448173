package render

import (
	"io"

	"github.com/indico/fieldkit/pkg/vdom"
)

// PageData contains all data needed to render a complete HTML page.
type PageData struct {
	// Body is the root VNode for the page content.
	Body *vdom.VNode

	// Title is the page title.
	Title string

	// Lang is the language attribute for the html element.
	// Defaults to "en" if not specified.
	Lang string

	// StyleSheets contains paths to external stylesheets.
	StyleSheets []string
}

// RenderPage writes a complete HTML5 document around page.Body.
func (r *Renderer) RenderPage(w io.Writer, page PageData) error {
	lang := page.Lang
	if lang == "" {
		lang = "en"
	}

	if _, err := io.WriteString(w, "<!DOCTYPE html>\n"); err != nil {
		return err
	}
	if _, err := io.WriteString(w, `<html lang="`+escapeAttr(lang)+`"><head><meta charset="utf-8">`); err != nil {
		return err
	}
	if page.Title != "" {
		if _, err := io.WriteString(w, "<title>"+escapeHTML(page.Title)+"</title>"); err != nil {
			return err
		}
	}
	for _, href := range page.StyleSheets {
		if _, err := io.WriteString(w, `<link rel="stylesheet" href="`+escapeAttr(href)+`">`); err != nil {
			return err
		}
	}
	if _, err := io.WriteString(w, "</head><body>\n"); err != nil {
		return err
	}
	if err := r.RenderToWriter(w, page.Body); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n</body></html>\n")
	return err
}
