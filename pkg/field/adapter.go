package field

import (
	"log/slog"
	"regexp"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"

	"github.com/indico/fieldkit/pkg/formstate"
	"github.com/indico/fieldkit/pkg/vdom"
)

// Adapter binds one form field to a Control.
type Adapter struct {
	form    *formstate.Form
	name    string
	id      string
	control Control
	opts    Options

	// Extract maps the control's native change arguments to the value to
	// store. When nil the first argument is stored as is.
	Extract func(args ...any) any

	// Parse post-processes the extracted value before it is stored.
	Parse func(value any) any

	// FormatOnBlur rewrites the stored value when the field loses focus.
	FormatOnBlur func(value any) any

	logger *slog.Logger
}

// NewAdapter creates an adapter for an already registered field.
func NewAdapter(form *formstate.Form, name string, control Control, opts Options) *Adapter {
	return &Adapter{
		form:    form,
		name:    name,
		id:      fieldID(name),
		control: control,
		opts:    opts,
		logger:  slog.Default().With("component", "field", "field", name),
	}
}

// Name returns the bound field name.
func (a *Adapter) Name() string { return a.name }

// ID returns the id of the control element.
func (a *Adapter) ID() string { return a.id }

// Form returns the bound form.
func (a *Adapter) Form() *formstate.Form { return a.form }

// State returns a fresh snapshot of the field.
func (a *Adapter) State() formstate.FieldState {
	return a.form.State(a.name)
}

// Decision applies the visibility policy to the current state.
func (a *Adapter) Decision() ErrorDecision {
	return DecideError(a.State(), a.opts.flags())
}

// Disabled reports whether the control is disabled, either by option or
// because the form is submitting.
func (a *Adapter) Disabled() bool {
	return a.opts.Disabled || a.State().Submitting
}

// HandleChange stores the value carried by a native change event.
func (a *Adapter) HandleChange(args ...any) {
	var value any
	switch {
	case a.Extract != nil:
		value = a.Extract(args...)
	case len(args) > 0:
		value = args[0]
	}
	if a.Parse != nil {
		value = a.Parse(value)
	}
	if err := a.form.Change(a.name, value); err != nil {
		a.logger.Warn("change dropped", "error", err)
	}
}

// HandleFocus marks the field active.
func (a *Adapter) HandleFocus(...any) {
	if err := a.form.Focus(a.name); err != nil {
		a.logger.Warn("focus dropped", "error", err)
	}
}

// HandleBlur applies FormatOnBlur and marks the field touched.
func (a *Adapter) HandleBlur(...any) {
	if a.FormatOnBlur != nil {
		value := a.FormatOnBlur(a.form.Value(a.name))
		if a.Parse != nil {
			value = a.Parse(value)
		}
		if err := a.form.Change(a.name, value); err != nil {
			a.logger.Warn("blur format dropped", "error", err)
		}
	}
	if err := a.form.Blur(a.name); err != nil {
		a.logger.Warn("blur dropped", "error", err)
	}
}

// Render builds the field: label, control, description and the error
// message when one is visible.
func (a *Adapter) Render() *vdom.VNode {
	st := a.State()
	decision := DecideError(st, a.opts.flags())
	if decision.Visible {
		a.form.Metrics().ObserveShownError(decision.Kind.String())
	}

	tr := a.opts.translator()
	label := ""
	if a.opts.Label != "" {
		label = tr.T(a.opts.Label)
	}
	placeholder := ""
	if a.opts.Placeholder != "" {
		placeholder = tr.T(a.opts.Placeholder)
	}

	errorID := a.id + "-error"
	disabled := a.opts.Disabled || st.Submitting
	inline := a.control.InlineLabel()

	control := a.control.Render(ControlProps{
		ID:          a.id,
		Name:        a.name,
		Label:       label,
		Placeholder: placeholder,
		Value:       st.Value,
		Required:    a.opts.Required,
		Disabled:    disabled,
		Invalid:     decision.Visible,
		DescribedBy: errorID,
		OnChange:    a.HandleChange,
		OnFocus:     a.HandleFocus,
		OnBlur:      a.HandleBlur,
		Attrs:       callerAttrs(a.opts.Attrs),
	})

	var labelNode, description, message *vdom.VNode
	if !inline && label != "" {
		labelNode = vdom.Label(vdom.For(a.id), label)
	}
	if html := sanitizeDescription(tr.T(a.opts.Description, a.opts.DescriptionParams...)); a.opts.Description != "" && html != "" {
		description = vdom.Div(vdom.Class("field-description"), vdom.Raw(html))
	}
	if decision.Visible {
		message = vdom.Div(
			vdom.ID(errorID),
			vdom.Class("field-error-message"),
			vdom.Role("alert"),
			decision.Message,
		)
	}

	return vdom.Div(
		vdom.Class("field"),
		vdom.ClassIf(a.opts.Required, "required"),
		vdom.ClassIf(disabled, "disabled"),
		vdom.ClassIf(decision.Visible, "error"),
		vdom.ClassIf(inline, "inline"),
		labelNode,
		control,
		description,
		message,
	)
}

var idUnsafe = regexp.MustCompile(`[^a-zA-Z0-9_-]+`)

func fieldID(name string) string {
	return "field-" + strings.Trim(idUnsafe.ReplaceAllString(name, "-"), "-")
}

var (
	descriptionPolicyOnce sync.Once
	descriptionPolicy     *bluemonday.Policy
)

func sanitizeDescription(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	return strings.TrimSpace(descriptionSanitizer().Sanitize(trimmed))
}

func descriptionSanitizer() *bluemonday.Policy {
	descriptionPolicyOnce.Do(func() {
		policy := bluemonday.UGCPolicy()
		policy.RequireNoFollowOnLinks(true)
		policy.AddTargetBlankToFullyQualifiedLinks(true)
		descriptionPolicy = policy
	})
	return descriptionPolicy
}
