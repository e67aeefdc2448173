// Package formstate is the form-state engine the field adapters bind to.
//
// A Form tracks, for every registered field, the current value and the
// interaction and validation flags that decide what the user sees: touched,
// dirty, dirty-since-last-submit, active, the local validation error and the
// error returned by the last submission. Adapters never mutate this state
// directly; they forward user events through Change, Focus and Blur and read
// snapshots back with State.
//
// # Lifecycle
//
//	form := formstate.New()
//	form.Register("name", "", validate.Required(""))
//
//	form.Focus("name")
//	form.Change("name", "Slides")
//	form.Blur("name")
//
//	err := form.Submit(ctx, func(ctx context.Context, values map[string]any) error {
//	    if exists(values["name"]) {
//	        return formstate.SubmitErrors{"name": "Already exists"}
//	    }
//	    return nil
//	})
//
// Submit marks every field touched and refuses to call the handler while any
// field has a validation error. A handler returning SubmitErrors attaches the
// messages to the named fields; they stay visible until the field is edited
// again or the form is resubmitted.
//
// # Observers
//
// Watch registers an observer on one field's value stream; it fires with the
// (next, previous) pair only when the value actually changes. Subscribe fires
// after any state change and is what re-renders form-wide controls such as
// the submit button.
package formstate
