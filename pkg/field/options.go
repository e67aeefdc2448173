package field

import (
	"strings"

	"github.com/indico/fieldkit/pkg/i18n"
	"github.com/indico/fieldkit/pkg/validate"
	"github.com/indico/fieldkit/pkg/vdom"
)

// Options configures a field wrapper. Every key is optional.
type Options struct {
	// Label is shown above the control, or beside it for checkboxes and
	// radios. It is translated.
	Label string

	// Description is helper text below the control. Basic HTML is kept
	// after sanitising. It is translated.
	Description string

	// DescriptionParams are %{key} substitution pairs for Description.
	DescriptionParams []string

	// Placeholder is the control's placeholder text. It is translated.
	Placeholder string

	// Required attaches a required rule and marks the field.
	Required bool

	// Disabled disables the control. Controls are also disabled while the
	// form is submitting.
	Disabled bool

	// Validate is chained after the built-in rules. It never replaces them.
	Validate validate.Validator

	// HideValidationError never shows local validation errors.
	HideValidationError bool

	// HideErrorWhileActive hides messages while the field has focus.
	HideErrorWhileActive bool

	// NullIfEmpty stores nil instead of "" for text fields.
	NullIfEmpty bool

	// Initial overrides the kind's default initial value.
	Initial any

	// OnChange is called with (new, previous) when the value changes.
	OnChange func(next, prev any)

	// Translator translates labels and built-in messages. Nil leaves them
	// untranslated.
	Translator i18n.Translator

	// Attrs are extra attributes for the control element. Attributes the
	// adapter owns (name, value, checked, disabled, id, event handlers)
	// are dropped.
	Attrs []vdom.Attr
}

func (o Options) translator() i18n.Translator {
	return i18n.Or(o.Translator)
}

func (o Options) flags() ErrorFlags {
	return ErrorFlags{
		Required:             o.Required,
		HideValidationError:  o.HideValidationError,
		HideErrorWhileActive: o.HideErrorWhileActive,
	}
}

// validator builds the field's rule: required first, then the kind's own
// rules, then the caller's.
func (o Options) validator(kind ...validate.Validator) validate.Validator {
	rules := make([]validate.Validator, 0, len(kind)+2)
	if o.Required {
		rules = append(rules, validate.Required(o.translator().T(validate.MsgRequired)))
	}
	rules = append(rules, kind...)
	rules = append(rules, o.Validate)
	return validate.Chain(rules...)
}

var ownedAttrs = map[string]bool{
	"id":       true,
	"name":     true,
	"value":    true,
	"checked":  true,
	"disabled": true,
	"required": true,
	"type":     true,
}

// callerAttrs drops attributes the adapter controls.
func callerAttrs(attrs []vdom.Attr) []vdom.Attr {
	out := make([]vdom.Attr, 0, len(attrs))
	for _, a := range attrs {
		if a.IsEmpty() || ownedAttrs[a.Key] || strings.HasPrefix(a.Key, "on") {
			continue
		}
		out = append(out, a)
	}
	return out
}
