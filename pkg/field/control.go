package field

import (
	"fmt"
	"math"
	"strconv"

	"github.com/indico/fieldkit/pkg/signal"
	"github.com/indico/fieldkit/pkg/vdom"
)

// ControlProps is what an Adapter hands to its Control on each render.
type ControlProps struct {
	ID          string
	Name        string
	Label       string // only rendered by controls with inline labels
	Placeholder string
	Value       any

	Required bool
	Disabled bool
	Invalid  bool

	// DescribedBy is the id of the visible error message, if any.
	DescribedBy string

	OnChange vdom.Handler
	OnFocus  vdom.Handler
	OnBlur   vdom.Handler

	// Attrs come from Options.Attrs with adapter-owned keys removed.
	Attrs []vdom.Attr
}

// Control is a bindable input. It renders the element for the given props
// and emits its native change payload through props.OnChange.
type Control interface {
	Render(p ControlProps) *vdom.VNode

	// InlineLabel reports that the control renders its own label beside
	// the input instead of the adapter placing one above it.
	InlineLabel() bool
}

func commonAttrs(p ControlProps) []vdom.Attr {
	attrs := append([]vdom.Attr(nil), p.Attrs...)
	attrs = append(attrs,
		vdom.ID(p.ID),
		vdom.Name(p.Name),
		vdom.Disabled(p.Disabled),
		vdom.Required(p.Required),
	)
	if p.Invalid {
		attrs = append(attrs, vdom.AriaInvalid(true), vdom.AriaDescribedBy(p.DescribedBy))
	}
	return attrs
}

func handlers(p ControlProps, change string) []vdom.EventHandler {
	h := []vdom.EventHandler{vdom.OnFocus(p.OnFocus), vdom.OnBlur(p.OnBlur)}
	switch change {
	case "input":
		h = append(h, vdom.OnInput(p.OnChange))
	default:
		h = append(h, vdom.OnChange(p.OnChange))
	}
	return h
}

// TextControl is a single-line <input>.
type TextControl struct {
	Type string // "text" when empty
}

func (c TextControl) InlineLabel() bool { return false }

func (c TextControl) Render(p ControlProps) *vdom.VNode {
	typ := c.Type
	if typ == "" {
		typ = "text"
	}
	return vdom.Input(
		commonAttrs(p),
		vdom.Type(typ),
		vdom.Value(DisplayText(p.Value)),
		vdom.Placeholder(p.Placeholder),
		handlers(p, "input"),
	)
}

// TextAreaControl is a multi-line <textarea>.
type TextAreaControl struct {
	Rows int
}

func (c TextAreaControl) InlineLabel() bool { return false }

func (c TextAreaControl) Render(p ControlProps) *vdom.VNode {
	var rows vdom.Attr
	if c.Rows > 0 {
		rows = vdom.Rows(c.Rows)
	}
	return vdom.Textarea(
		commonAttrs(p),
		rows,
		vdom.Placeholder(p.Placeholder),
		handlers(p, "input"),
		vdom.Text(DisplayText(p.Value)),
	)
}

// CheckboxControl is a toggle with its label beside it.
type CheckboxControl struct{}

func (CheckboxControl) InlineLabel() bool { return true }

func (CheckboxControl) Render(p ControlProps) *vdom.VNode {
	checked, _ := p.Value.(bool)
	return vdom.Div(
		vdom.Class("ui checkbox"),
		vdom.Input(
			commonAttrs(p),
			vdom.Type("checkbox"),
			vdom.Checked(checked),
			handlers(p, "change"),
		),
		vdom.Label(vdom.For(p.ID), p.Label),
	)
}

// RadioControl is one option of a radio group. Every radio of a group binds
// the same field.
type RadioControl struct {
	Value any
}

func (RadioControl) InlineLabel() bool { return true }

func (c RadioControl) Render(p ControlProps) *vdom.VNode {
	return vdom.Div(
		vdom.Class("ui radio checkbox"),
		vdom.Input(
			commonAttrs(p),
			vdom.Type("radio"),
			vdom.Value(DisplayText(c.Value)),
			vdom.Checked(p.Value != nil && signal.Equal(p.Value, c.Value)),
			handlers(p, "change"),
		),
		vdom.Label(vdom.For(p.ID), p.Label),
	)
}

// Choice is one dropdown option.
type Choice struct {
	Value any
	Text  string
}

// DropdownControl is a <select>. Clearable single selects get an empty
// option; blurring never changes the selection. With AllowAdditions, stored
// values missing from Choices are rendered as extra options.
type DropdownControl struct {
	Choices        []Choice
	Multiple       bool
	Clearable      bool
	AllowAdditions bool
}

func (DropdownControl) InlineLabel() bool { return false }

func (c DropdownControl) Render(p ControlProps) *vdom.VNode {
	var empty *vdom.VNode
	if c.Clearable && !c.Multiple {
		empty = vdom.Option(vdom.Value(""), vdom.Selected(p.Value == nil), p.Placeholder)
	}
	options := vdom.Range(c.choices(p.Value), func(ch Choice, _ int) *vdom.VNode {
		return vdom.Option(
			vdom.Value(DisplayText(ch.Value)),
			vdom.Selected(c.selected(p.Value, ch.Value)),
			ch.Text,
		)
	})
	return vdom.Select(
		commonAttrs(p),
		vdom.Multiple(c.Multiple),
		vdom.Data("clearable", strconv.FormatBool(c.Clearable)),
		vdom.Data("select-on-blur", "false"),
		vdom.Data("allow-additions", strconv.FormatBool(c.AllowAdditions)),
		handlers(p, "change"),
		empty,
		options,
	)
}

func (c DropdownControl) choices(current any) []Choice {
	if !c.AllowAdditions || current == nil {
		return c.Choices
	}
	values, ok := current.([]any)
	if !ok {
		values = []any{current}
	}
	out := append([]Choice(nil), c.Choices...)
	for _, v := range values {
		known := false
		for _, ch := range out {
			if signal.Equal(ch.Value, v) {
				known = true
				break
			}
		}
		if !known {
			out = append(out, Choice{Value: v, Text: DisplayText(v)})
		}
	}
	return out
}

func (c DropdownControl) selected(current, option any) bool {
	if list, ok := current.([]any); ok {
		for _, v := range list {
			if signal.Equal(v, option) {
				return true
			}
		}
		return false
	}
	return current != nil && signal.Equal(current, option)
}

// DisplayText is the text a control shows for a stored value.
func DisplayText(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case InvalidNumber:
		return string(x)
	case float64:
		if math.IsInf(x, 0) || math.IsNaN(x) {
			return ""
		}
		return strconv.FormatFloat(x, 'f', -1, 64)
	case fmt.Stringer:
		return x.String()
	default:
		return fmt.Sprint(x)
	}
}
