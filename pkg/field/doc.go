// Package field binds form-state fields to rendered controls.
//
// An Adapter pairs one registered formstate field with a Control (text input,
// checkbox, dropdown, ...). On every render it takes a fresh snapshot of the
// field, decides whether an error message should be visible, and builds the
// vdom tree. Native control events flow the other way: the Adapter extracts
// the stored value from the event payload and forwards it to the form.
//
// The wrappers (TextInput, NumberInput, Checkbox, Dropdown, ...) preconfigure
// an Adapter for one kind of input and register the field with its
// validators:
//
//	form := formstate.New()
//	name := field.TextInput(form, "name", field.Options{
//	    Label:    "Name",
//	    Required: true,
//	})
//	defer name.Close()
//
//	html, _ := render.NewRenderer(render.RendererConfig{}).RenderToString(name.Render())
//
// # Error visibility
//
// DecideError implements the policy shared by every field: a local
// validation error shows once the field was touched and is either dirty or
// required; a submit error shows until the value changes or a new submission
// starts; HideErrorWhileActive keeps messages away from a focused field.
package field
