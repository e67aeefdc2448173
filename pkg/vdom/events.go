package vdom

// Handler is an event handler. The arguments are the native event payload of
// the control that emitted it.
type Handler func(args ...any)

// EventHandler represents an event handler.
type EventHandler struct {
	Event   string // "onclick", "oninput", etc.
	Handler Handler
}

// event creates an EventHandler with the given name and handler.
// The name is prefixed with "on" (e.g., "click" becomes "onclick").
func event(name string, handler Handler) EventHandler {
	return EventHandler{Event: "on" + name, Handler: handler}
}

// OnClick handles click events.
func OnClick(handler Handler) EventHandler { return event("click", handler) }

// OnInput handles input events (fired when value changes).
func OnInput(handler Handler) EventHandler { return event("input", handler) }

// OnChange handles change events (fired when value is committed).
func OnChange(handler Handler) EventHandler { return event("change", handler) }

// OnFocus handles focus events.
func OnFocus(handler Handler) EventHandler { return event("focus", handler) }

// OnBlur handles blur events.
func OnBlur(handler Handler) EventHandler { return event("blur", handler) }

// OnSubmit handles form submit events.
func OnSubmit(handler Handler) EventHandler { return event("submit", handler) }

// InputEvent is the native payload of a text-like control.
type InputEvent struct {
	Type  string // "input", "change", "blur", ...
	Value string
}

// DropdownData is the second argument of a dropdown change event.
// Value is a single option value, or []any for multiple selection.
type DropdownData struct {
	Value any
}

// CheckboxData is the second argument of a checkbox or radio change event.
type CheckboxData struct {
	Checked bool
	Value   any
}

// Trigger invokes the handler registered for event ("input", "blur", ...) on
// node. It reports whether a handler was found.
func Trigger(node *VNode, event string, args ...any) bool {
	if node == nil || node.Props == nil {
		return false
	}
	h, ok := node.Props["on"+event].(Handler)
	if !ok || h == nil {
		return false
	}
	h(args...)
	return true
}
