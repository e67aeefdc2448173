package filetypes

import (
	"context"
	"log/slog"
	"strconv"

	"github.com/indico/fieldkit/pkg/field"
	"github.com/indico/fieldkit/pkg/formstate"
	"github.com/indico/fieldkit/pkg/i18n"
	"github.com/indico/fieldkit/pkg/validate"
	"github.com/indico/fieldkit/pkg/vdom"
)

const (
	dialogTitleID = "add-file-type-title"
	templateHint  = "{code}_slides"
)

// DefaultExtensions are offered in the extensions dropdown.
var DefaultExtensions = []string{"pdf", "doc", "docx", "ppt", "pptx", "odt", "odp", "zip"}

// Option configures a Dialog.
type Option func(*Dialog)

// WithTranslator sets the translator for labels and messages.
func WithTranslator(tr i18n.Translator) Option {
	return func(d *Dialog) {
		d.tr = i18n.Or(tr)
	}
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(d *Dialog) {
		if logger != nil {
			d.logger = logger
		}
	}
}

// WithMetrics records form metrics for the dialog.
func WithMetrics(m *formstate.Metrics) Option {
	return func(d *Dialog) {
		d.metrics = m
	}
}

// WithExtensions replaces the suggested extensions.
func WithExtensions(exts ...string) Option {
	return func(d *Dialog) {
		d.suggestions = exts
	}
}

// WithOnClose is called after a successful save and on cancel.
func WithOnClose(fn func()) Option {
	return func(d *Dialog) {
		d.onClose = fn
	}
}

// Dialog is the "add file type" modal of one event.
type Dialog struct {
	EventID int

	creator     Creator
	tr          i18n.Translator
	logger      *slog.Logger
	metrics     *formstate.Metrics
	suggestions []string
	onClose     func()

	form   *formstate.Form
	fields []*field.Field
	submit *field.SubmitButton
}

// NewDialog builds the dialog and registers its fields.
func NewDialog(eventID int, creator Creator, opts ...Option) *Dialog {
	d := &Dialog{
		EventID:     eventID,
		creator:     creator,
		tr:          i18n.Identity,
		logger:      slog.Default().With("component", "filetypes"),
		suggestions: DefaultExtensions,
	}
	for _, opt := range opts {
		opt(d)
	}

	d.form = formstate.New(formstate.WithLogger(d.logger), formstate.WithMetrics(d.metrics))
	d.build()
	return d
}

func (d *Dialog) build() {
	tr := d.tr

	choices := make([]field.Choice, 0, len(d.suggestions))
	for _, ext := range d.suggestions {
		ext = NormalizeExtension(ext)
		choices = append(choices, field.Choice{Value: ext, Text: ext})
	}

	invalidExt := tr.T("Invalid file extension.")
	extensions := field.Dropdown(d.form, FieldExtensions, field.DropdownConfig{
		Choices:        choices,
		Multiple:       true,
		AllowAdditions: true,
	}, field.Options{
		Label:       "Extensions",
		Description: "Allowed file extensions. Leave empty to allow any extension.",
		Translator:  tr,
		Validate: validate.Custom(func(v any) string {
			list, _ := v.([]any)
			for _, e := range list {
				if s, ok := e.(string); !ok || !ValidExtension(s) {
					return invalidExt
				}
			}
			return ""
		}),
	})
	extensions.Parse = normalizeExtensions

	d.fields = []*field.Field{
		field.TextInput(d.form, FieldName, field.Options{
			Label:      "Name",
			Required:   true,
			Translator: tr,
		}),
		extensions,
		field.TextInput(d.form, FieldFilenameTemplate, field.Options{
			Label:             "Filename template",
			Description:       "Expected filename, e.g. %{example}. Leave empty to accept any name.",
			DescriptionParams: []string{"example", templateHint},
			NullIfEmpty:       true,
			Translator:        tr,
		}),
		field.Checkbox(d.form, FieldAllowMultipleFiles, field.Options{
			Label:      "Allow multiple files",
			Translator: tr,
		}),
		field.Checkbox(d.form, FieldRequired, field.Options{
			Label:      "Required",
			Translator: tr,
		}),
		field.Checkbox(d.form, FieldPublishable, field.Options{
			Label:       "Publishable",
			Description: "Files of this type can be published to attendees.",
			Translator:  tr,
		}),
	}

	d.submit = &field.SubmitButton{
		Form:       d.form,
		Handler:    d.handle,
		Label:      "Save",
		Translator: tr,
	}
}

// Form returns the dialog's form state.
func (d *Dialog) Form() *formstate.Form { return d.form }

// Field returns the bound field with the given name, or nil.
func (d *Dialog) Field(name string) *field.Field {
	for _, f := range d.fields {
		if f.Name() == name {
			return f
		}
	}
	return nil
}

// SubmitButton returns the dialog's submit button.
func (d *Dialog) SubmitButton() *field.SubmitButton { return d.submit }

// Submit validates the form and hands the file type to the Creator.
func (d *Dialog) Submit(ctx context.Context) error {
	return d.form.Submit(ctx, d.handle)
}

// Cancel discards all input.
func (d *Dialog) Cancel() {
	d.form.Reset()
	if d.onClose != nil {
		d.onClose()
	}
}

func (d *Dialog) handle(ctx context.Context, values map[string]any) error {
	ft, err := FromValues(values)
	if err != nil {
		return err
	}
	if err := d.creator.CreateFileType(ctx, d.EventID, ft); err != nil {
		return err
	}
	d.logger.Info("file type created", "event_id", d.EventID, "name", ft.Name)
	if d.onClose != nil {
		d.onClose()
	}
	return nil
}

// Render implements vdom.Component.
func (d *Dialog) Render() *vdom.VNode {
	tr := d.tr

	var formError *vdom.VNode
	if msg := d.form.FormError(); msg != "" {
		formError = vdom.Div(vdom.Class("ui error message"), vdom.Role("alert"), msg)
	}

	return vdom.Div(
		vdom.Class("ui modal add-file-type"),
		vdom.Role("dialog"),
		vdom.AriaModal(true),
		vdom.AriaLabelledBy(dialogTitleID),
		vdom.Data("event-id", strconv.Itoa(d.EventID)),
		vdom.H2(vdom.ID(dialogTitleID), vdom.Class("header"), tr.T("Add a new file type")),
		vdom.Form(
			vdom.Class("ui form content"),
			vdom.ID("add-file-type-form"),
			vdom.OnSubmit(func(...any) { _ = d.Submit(context.Background()) }),
			vdom.Range(d.fields, func(f *field.Field, _ int) *vdom.VNode {
				return f.Render()
			}),
			formError,
		),
		vdom.Div(
			vdom.Class("actions"),
			d.submit,
			vdom.Button(
				vdom.Type("button"),
				vdom.Class("ui button"),
				vdom.OnClick(func(...any) { d.Cancel() }),
				tr.T("Cancel"),
			),
		),
	)
}
