package formstate

import (
	"context"
	"sort"
	"strings"

	"github.com/indico/fieldkit/pkg/signal"
	"github.com/indico/fieldkit/pkg/validate"
)

// FieldState is a snapshot of one field.
type FieldState struct {
	Name  string
	Value any

	// Touched is set once the field has been blurred, and for every field
	// by a submit attempt.
	Touched bool

	// Dirty reports that Value differs from the initial value.
	Dirty bool

	// DirtySinceLastSubmit reports that Value differs from the value sent
	// with the last submission. Always false before the first submit.
	DirtySinceLastSubmit bool

	// Active reports that the field has focus.
	Active bool

	// Error is the local validation error, "" when valid.
	Error string

	// SubmitError is the message the last submission returned for this field.
	SubmitError string

	// Submitting mirrors the form-wide flag.
	Submitting bool
}

// SubmitHandler receives the collected values of a valid form.
// Returning SubmitErrors attaches messages to fields.
type SubmitHandler func(ctx context.Context, values map[string]any) error

// SubmitErrors maps field names to messages. The empty key, or any name that
// is not a registered field, is a form-level message.
type SubmitErrors map[string]string

func (e SubmitErrors) Error() string {
	keys := make([]string, 0, len(e))
	for k := range e {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		if k == "" {
			parts = append(parts, e[k])
			continue
		}
		parts = append(parts, k+": "+e[k])
	}
	return "submission rejected: " + strings.Join(parts, "; ")
}

// fieldEntry is the engine-side record of a field.
type fieldEntry struct {
	name      string
	initial   any
	value     *signal.Signal[any]
	validator validate.Validator

	touched bool
	active  bool
	err     string

	submitErr     string
	lastSubmitted any
}

func newFieldEntry(name string, initial any, v validate.Validator) *fieldEntry {
	return &fieldEntry{
		name:      name,
		initial:   initial,
		value:     signal.New[any](initial),
		validator: v,
	}
}

func (e *fieldEntry) validate(value any) string {
	if e.validator == nil {
		return ""
	}
	return validate.Message(e.validator.Validate(value))
}

func (e *fieldEntry) snapshot(submitted, submitting bool) FieldState {
	value := e.value.Get()
	return FieldState{
		Name:                 e.name,
		Value:                value,
		Touched:              e.touched,
		Dirty:                !signal.Equal(value, e.initial),
		DirtySinceLastSubmit: submitted && !signal.Equal(value, e.lastSubmitted),
		Active:               e.active,
		Error:                e.err,
		SubmitError:          e.submitErr,
		Submitting:           submitting,
	}
}
