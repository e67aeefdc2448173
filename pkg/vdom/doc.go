// Package vdom is the component kit the field adapters render into.
//
// A VNode tree is an in-memory description of the markup for a form: element
// tags, attributes, text and event handlers. Trees are built with variadic
// element constructors and rendered to HTML by package render.
//
//	Div(Class("field", "required"),
//	    Label(For("name"), Text("Name")),
//	    Input(Type("text"), Name("name"), OnInput(handler)),
//	)
//
// Event handlers are stored in Props under their "on"-prefixed name and can be
// invoked server-side with Trigger. Each input kind emits its own change
// payload: text inputs an InputEvent, dropdowns an (InputEvent, DropdownData)
// pair and checkboxes an (InputEvent, CheckboxData) pair.
package vdom
