package field

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/indico/fieldkit/pkg/formstate"
	"github.com/indico/fieldkit/pkg/signal"
	"github.com/indico/fieldkit/pkg/validate"
	"github.com/indico/fieldkit/pkg/vdom"
)

// Field is a registered field bound to its control.
type Field struct {
	*Adapter
	unwatch func()
}

// Close stops the OnChange observer.
func (f *Field) Close() {
	if f.unwatch != nil {
		f.unwatch()
		f.unwatch = nil
	}
}

// bind registers the field and wraps it in an Adapter. OnChange is observed
// only by the first binding of a name, so a radio group notifies once per
// change however many options share the field.
func bind(form *formstate.Form, name string, control Control, opts Options, initial any, rules ...validate.Validator) *Field {
	if opts.Initial != nil {
		initial = opts.Initial
	}
	bound := form.Has(name)
	form.Register(name, initial, opts.validator(rules...))

	f := &Field{Adapter: NewAdapter(form, name, control, opts)}
	if cb := opts.OnChange; cb != nil && !bound {
		f.unwatch = form.Watch(name, func(next, prev any) {
			if !signal.Equal(next, prev) {
				cb(next, prev)
			}
		})
	}
	return f
}

// TextInput is a single-line text field. The value is trimmed on blur.
func TextInput(form *formstate.Form, name string, opts Options) *Field {
	return textField(form, name, TextControl{}, opts)
}

// EmailInput is a text field that validates non-empty values as an email
// address.
func EmailInput(form *formstate.Form, name string, opts Options) *Field {
	rule := validate.Optional(validate.Email(opts.translator().T(validate.MsgEmail)))
	return textField(form, name, TextControl{Type: "email"}, opts, rule)
}

// TextArea is a multi-line text field. The value is trimmed on blur.
func TextArea(form *formstate.Form, name string, rows int, opts Options) *Field {
	return textField(form, name, TextAreaControl{Rows: rows}, opts)
}

func textField(form *formstate.Form, name string, control Control, opts Options, rules ...validate.Validator) *Field {
	var initial any = ""
	if opts.NullIfEmpty {
		initial = nil
	}
	f := bind(form, name, control, opts, initial, rules...)
	f.Extract = ExtractText
	f.FormatOnBlur = TrimSpace
	if opts.NullIfEmpty {
		f.Parse = NullIfEmpty
	}
	return f
}

// NumberInput is a numeric text field. See ParseNumber for the stored value.
func NumberInput(form *formstate.Form, name string, opts Options) *Field {
	rule := validate.Number(opts.translator().T(validate.MsgNumber))
	f := bind(form, name, TextControl{Type: "number"}, opts, nil, rule)
	f.Extract = ExtractText
	f.Parse = ParseNumber
	return f
}

// Checkbox is a boolean field. Required means it must be checked.
func Checkbox(form *formstate.Form, name string, opts Options) *Field {
	f := bind(form, name, CheckboxControl{}, opts, false)
	f.Extract = ExtractChecked
	return f
}

// Radio is one option of a radio group. Call it once per option with the
// same name; the group stores the value of the checked option. The first
// option's OnChange observes the whole group.
func Radio(form *formstate.Form, name string, value any, opts Options) *Field {
	f := bind(form, name, RadioControl{Value: value}, opts, nil)
	f.id = fieldID(name + "-" + DisplayText(value))
	f.Extract = func(args ...any) any {
		for _, arg := range args {
			if data, ok := arg.(vdom.CheckboxData); ok && !data.Checked {
				return form.Value(name)
			}
		}
		return value
	}
	return f
}

// DropdownConfig describes a dropdown's options.
type DropdownConfig struct {
	Choices        []Choice
	Multiple       bool
	AllowAdditions bool
}

// Dropdown is a select field. It is clearable unless required and stores
// []any when Multiple is set.
func Dropdown(form *formstate.Form, name string, cfg DropdownConfig, opts Options) *Field {
	control := DropdownControl{
		Choices:        cfg.Choices,
		Multiple:       cfg.Multiple,
		Clearable:      !opts.Required,
		AllowAdditions: cfg.AllowAdditions,
	}
	var initial any
	if cfg.Multiple {
		initial = []any{}
	}
	f := bind(form, name, control, opts, initial)
	f.Extract = ExtractDropdown(cfg.Multiple)
	return f
}

// ExtractText returns the text of an input event.
func ExtractText(args ...any) any {
	if len(args) == 0 {
		return ""
	}
	switch v := args[0].(type) {
	case vdom.InputEvent:
		return v.Value
	case *vdom.InputEvent:
		if v == nil {
			return ""
		}
		return v.Value
	case string:
		return v
	case nil:
		return ""
	default:
		return fmt.Sprint(v)
	}
}

// ExtractChecked returns the checked flag of a checkbox event.
func ExtractChecked(args ...any) any {
	for _, arg := range args {
		switch v := arg.(type) {
		case vdom.CheckboxData:
			return v.Checked
		case bool:
			return v
		}
	}
	return false
}

// ExtractDropdown returns the selection of a dropdown event. With multiple
// set the result is always a []any.
func ExtractDropdown(multiple bool) func(args ...any) any {
	return func(args ...any) any {
		var value any
		for _, arg := range args {
			switch v := arg.(type) {
			case vdom.DropdownData:
				value = v.Value
			case vdom.InputEvent:
				if value == nil && v.Value != "" {
					value = v.Value
				}
			}
		}
		if !multiple {
			if s, ok := value.(string); ok && s == "" {
				return nil
			}
			return value
		}
		return toList(value)
	}
}

func toList(value any) []any {
	switch v := value.(type) {
	case nil:
		return []any{}
	case []any:
		return v
	case []string:
		out := make([]any, len(v))
		for i, s := range v {
			out[i] = s
		}
		return out
	default:
		return []any{v}
	}
}

// TrimSpace trims string values and leaves others untouched.
func TrimSpace(value any) any {
	if s, ok := value.(string); ok {
		return strings.TrimSpace(s)
	}
	return value
}

// NullIfEmpty maps "" to nil.
func NullIfEmpty(value any) any {
	if s, ok := value.(string); ok && s == "" {
		return nil
	}
	return value
}

// InvalidNumber holds text a number field could not parse. It fails the
// number rule and is shown back to the user unchanged.
type InvalidNumber string

func (n InvalidNumber) String() string { return string(n) }

// ParseNumber converts number field text. Surrounding space is ignored;
// empty text is nil; text that strconv.ParseFloat accepts in full is a
// float64; anything else, including "42abc", NaN and infinities, is kept as
// InvalidNumber. Input is never truncated to a numeric prefix.
func ParseNumber(value any) any {
	var s string
	switch v := value.(type) {
	case string:
		s = v
	case InvalidNumber:
		s = string(v)
	default:
		return value
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return InvalidNumber(s)
	}
	return f
}
