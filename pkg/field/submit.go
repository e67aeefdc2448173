package field

import (
	"context"
	"log/slog"

	"github.com/indico/fieldkit/pkg/formstate"
	"github.com/indico/fieldkit/pkg/i18n"
	"github.com/indico/fieldkit/pkg/vdom"
)

// SubmitButton renders the form's submit control. Its state follows the
// form: disabled while pristine, invalid or submitting, and loading while a
// submission runs.
type SubmitButton struct {
	Form    *formstate.Form
	Handler formstate.SubmitHandler

	// Label defaults to "Submit". It is translated.
	Label      string
	Translator i18n.Translator

	// AllowPristine keeps the button enabled before any change.
	AllowPristine bool

	// AllowInvalid keeps the button enabled while fields fail validation.
	AllowInvalid bool

	// Context is passed to Handler on click. Default: context.Background().
	Context context.Context

	// LastError is the result of the last click.
	LastError error
}

// Disabled reports whether clicking would be ignored.
func (b *SubmitButton) Disabled() bool {
	if b.Form.Submitting() {
		return true
	}
	if !b.AllowPristine && b.Form.Pristine() {
		return true
	}
	if !b.AllowInvalid && b.Form.HasValidationErrors() {
		return true
	}
	return false
}

// Loading reports whether the loading indicator is shown.
func (b *SubmitButton) Loading() bool {
	return b.Form.Submitting()
}

// Click submits the form unless the button is disabled.
func (b *SubmitButton) Click() error {
	if b.Disabled() {
		return nil
	}
	ctx := b.Context
	if ctx == nil {
		ctx = context.Background()
	}
	b.LastError = b.Form.Submit(ctx, b.Handler)
	if b.LastError != nil {
		slog.Default().Debug("submit finished with error", "component", "field", "error", b.LastError)
	}
	return b.LastError
}

// Render implements vdom.Component.
func (b *SubmitButton) Render() *vdom.VNode {
	label := b.Label
	if label == "" {
		label = "Submit"
	}
	loading := b.Loading()
	return vdom.Button(
		vdom.Type("submit"),
		vdom.Class("ui primary button"),
		vdom.ClassIf(loading, "loading"),
		vdom.Disabled(b.Disabled()),
		vdom.AriaBusy(loading),
		vdom.OnClick(func(...any) { _ = b.Click() }),
		i18n.Or(b.Translator).T(label),
	)
}
