package vdom

import "strings"

func attr(key string, value any) Attr {
	return Attr{Key: key, Value: value}
}

// Custom returns an arbitrary attribute.
func Custom(key string, value any) Attr { return attr(key, value) }

// ID sets the id attribute.
func ID(id string) Attr { return attr("id", id) }

// Class adds classes to the class attribute. Empty names are dropped.
func Class(classes ...string) Attr { return attr("class", joinClasses(classes...)) }

// ClassIf adds class only when cond holds.
func ClassIf(cond bool, class string) Attr {
	if !cond {
		return Attr{}
	}
	return Class(class)
}

// Data creates a data-* attribute.
func Data(key, value string) Attr { return attr("data-"+key, value) }

// Role sets the role attribute.
func Role(role string) Attr { return attr("role", role) }

// AriaInvalid sets the aria-invalid attribute.
func AriaInvalid(invalid bool) Attr { return attr("aria-invalid", invalid) }

// AriaDescribedBy sets the aria-describedby attribute.
func AriaDescribedBy(id string) Attr { return attr("aria-describedby", id) }

// AriaLabelledBy sets the aria-labelledby attribute.
func AriaLabelledBy(id string) Attr { return attr("aria-labelledby", id) }

// AriaBusy sets the aria-busy attribute.
func AriaBusy(busy bool) Attr { return attr("aria-busy", busy) }

// AriaModal sets the aria-modal attribute.
func AriaModal(modal bool) Attr { return attr("aria-modal", modal) }

// Form attributes

// Name sets the name attribute.
func Name(name string) Attr { return attr("name", name) }

// Value sets the value attribute.
func Value(value any) Attr { return attr("value", value) }

// Type sets the type attribute.
func Type(t string) Attr { return attr("type", t) }

// Placeholder sets the placeholder attribute.
func Placeholder(text string) Attr { return attr("placeholder", text) }

// For sets the for attribute of a label.
func For(id string) Attr { return attr("for", id) }

// Rows sets the rows attribute of a textarea.
func Rows(n int) Attr { return attr("rows", n) }

// Disabled sets the disabled attribute.
func Disabled(disabled bool) Attr { return attr("disabled", disabled) }

// Required sets the required attribute.
func Required(required bool) Attr { return attr("required", required) }

// Checked sets the checked attribute.
func Checked(checked bool) Attr { return attr("checked", checked) }

// Selected sets the selected attribute.
func Selected(selected bool) Attr { return attr("selected", selected) }

// Multiple sets the multiple attribute.
func Multiple(multiple bool) Attr { return attr("multiple", multiple) }

// Step sets the step attribute of a number input.
func Step(step string) Attr { return attr("step", step) }

// joinClasses merges class lists, dropping empties and duplicates.
func joinClasses(lists ...string) string {
	seen := make(map[string]bool)
	out := make([]string, 0, len(lists))
	for _, list := range lists {
		for _, c := range splitClasses(list) {
			if !seen[c] {
				seen[c] = true
				out = append(out, c)
			}
		}
	}
	return strings.Join(out, " ")
}

func splitClasses(s string) []string {
	return strings.Fields(s)
}
