package formstate

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"

	fkerrors "github.com/indico/fieldkit/internal/errors"
	"github.com/indico/fieldkit/pkg/signal"
	"github.com/indico/fieldkit/pkg/validate"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const defaultTracerName = "github.com/indico/fieldkit/formstate"

var (
	// ErrValidation is returned by Submit when a field has a validation error.
	ErrValidation = errors.New("formstate: form has validation errors")

	// ErrSubmitInFlight is returned by Submit while another submission runs.
	ErrSubmitInFlight = errors.New("formstate: submission already in progress")

	// ErrUnknownField is returned for operations on unregistered fields.
	ErrUnknownField = fkerrors.New("F200")
)

// Option configures a Form.
type Option func(*Form)

// WithLogger sets the logger. Default: slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(f *Form) {
		if logger != nil {
			f.logger = logger
		}
	}
}

// WithMetrics records submit outcomes and shown errors.
func WithMetrics(m *Metrics) Option {
	return func(f *Form) {
		f.metrics = m
	}
}

// WithTracerName sets the OpenTelemetry tracer used for submit spans.
func WithTracerName(name string) Option {
	return func(f *Form) {
		f.tracer = otel.Tracer(name)
	}
}

// Form holds the state of every registered field.
type Form struct {
	mu     sync.Mutex
	fields map[string]*fieldEntry
	order  []string

	submitting      bool
	submitted       bool
	submitFailed    bool
	submitSucceeded bool
	formError       string

	// version is bumped after every state change; Subscribe observes it.
	version *signal.Signal[uint64]

	logger  *slog.Logger
	metrics *Metrics
	tracer  trace.Tracer
}

// New creates an empty form.
func New(opts ...Option) *Form {
	f := &Form{
		fields:  make(map[string]*fieldEntry),
		version: signal.New[uint64](0),
		logger:  slog.Default().With("component", "formstate"),
		tracer:  otel.Tracer(defaultTracerName),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Metrics returns the metrics the form records to, possibly nil.
func (f *Form) Metrics() *Metrics {
	return f.metrics
}

// Register adds a field with its initial value and validator. Registering
// an existing name keeps its state and only replaces the validator.
func (f *Form) Register(name string, initial any, v validate.Validator) {
	f.mu.Lock()
	e, ok := f.fields[name]
	if !ok {
		e = newFieldEntry(name, initial, v)
		f.fields[name] = e
		f.order = append(f.order, name)
	} else {
		e.validator = v
	}
	e.err = e.validate(e.value.Get())
	f.mu.Unlock()

	f.bump()
}

// Has reports whether name is registered.
func (f *Form) Has(name string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.fields[name]
	return ok
}

// Names returns the registered field names in registration order.
func (f *Form) Names() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.order...)
}

func (f *Form) lookup(name string) (*fieldEntry, error) {
	e, ok := f.fields[name]
	if !ok {
		return nil, fkerrors.New("F200").WithDetail(fmt.Sprintf("field %q is not registered", name))
	}
	return e, nil
}

// Change stores a new value and revalidates the field.
func (f *Form) Change(name string, value any) error {
	f.mu.Lock()
	e, err := f.lookup(name)
	if err != nil {
		f.mu.Unlock()
		return err
	}
	e.err = e.validate(value)
	f.mu.Unlock()

	// Observers run without the form lock so they can read state back.
	e.value.Set(value)
	f.bump()
	return nil
}

// Focus marks the field active.
func (f *Form) Focus(name string) error {
	return f.mutate(name, func(e *fieldEntry) {
		e.active = true
	})
}

// Blur clears the active flag and marks the field touched.
func (f *Form) Blur(name string) error {
	return f.mutate(name, func(e *fieldEntry) {
		e.active = false
		e.touched = true
	})
}

func (f *Form) mutate(name string, fn func(*fieldEntry)) error {
	f.mu.Lock()
	e, err := f.lookup(name)
	if err != nil {
		f.mu.Unlock()
		return err
	}
	fn(e)
	f.mu.Unlock()

	f.bump()
	return nil
}

// State returns a snapshot of the named field. Unknown names yield the zero
// FieldState.
func (f *Form) State(name string) FieldState {
	f.mu.Lock()
	defer f.mu.Unlock()
	e, ok := f.fields[name]
	if !ok {
		return FieldState{Name: name}
	}
	return e.snapshot(f.submitted, f.submitting)
}

// Value returns the current value of the named field.
func (f *Form) Value(name string) any {
	return f.State(name).Value
}

// Values returns a copy of all current values.
func (f *Form) Values() map[string]any {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.valuesLocked()
}

func (f *Form) valuesLocked() map[string]any {
	out := make(map[string]any, len(f.fields))
	for name, e := range f.fields {
		out[name] = e.value.Get()
	}
	return out
}

// Watch observes value changes of a field. fn receives the new and the
// previous value and is not called when a write leaves the value unchanged.
func (f *Form) Watch(name string, fn func(next, prev any)) (unsubscribe func()) {
	f.mu.Lock()
	e, ok := f.fields[name]
	f.mu.Unlock()
	if !ok {
		f.logger.Warn("watch on unregistered field", "field", name)
		return func() {}
	}
	return e.value.Subscribe(func(next, prev any) {
		fn(next, prev)
	})
}

// Subscribe calls fn after every state change of the form.
func (f *Form) Subscribe(fn func()) (unsubscribe func()) {
	return f.version.Subscribe(func(uint64, uint64) {
		fn()
	})
}

func (f *Form) bump() {
	f.version.Update(func(v uint64) uint64 { return v + 1 })
}

// Validate runs every validator and reports whether the form is valid.
// It does not touch fields.
func (f *Form) Validate() bool {
	f.mu.Lock()
	valid := true
	for _, e := range f.fields {
		e.err = e.validate(e.value.Get())
		if e.err != "" {
			valid = false
		}
	}
	f.mu.Unlock()

	f.bump()
	return valid
}

// Pristine reports that no field differs from its initial value.
func (f *Form) Pristine() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, e := range f.fields {
		if !signal.Equal(e.value.Get(), e.initial) {
			return false
		}
	}
	return true
}

// HasValidationErrors reports whether any field currently fails validation.
func (f *Form) HasValidationErrors() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, e := range f.fields {
		if e.err != "" {
			return true
		}
	}
	return false
}

// Submitting reports whether a submit handler is running.
func (f *Form) Submitting() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.submitting
}

// SubmitFailed reports that the last submit attempt failed, either on
// validation or in the handler.
func (f *Form) SubmitFailed() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.submitFailed
}

// SubmitSucceeded reports that the last submission's handler returned nil.
func (f *Form) SubmitSucceeded() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.submitSucceeded
}

// FormError returns the form-level message of the last submission.
func (f *Form) FormError() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.formError
}

// Submit validates the form and, if it is valid, calls handler with the
// current values.
//
// Errors:
//   - ErrSubmitInFlight if another submission has not returned yet
//   - ErrValidation if any field fails validation; handler is not called
//   - SubmitErrors as returned by handler, after storing them on fields
//   - an F201 FieldkitError wrapping any other handler error
func (f *Form) Submit(ctx context.Context, handler SubmitHandler) error {
	f.mu.Lock()
	if f.submitting {
		f.mu.Unlock()
		f.metrics.ObserveSubmission(OutcomeInFlight)
		return ErrSubmitInFlight
	}

	var invalid []string
	for _, e := range f.fields {
		e.touched = true
		e.err = e.validate(e.value.Get())
		if e.err != "" {
			invalid = append(invalid, e.name)
		}
	}
	if len(invalid) > 0 {
		f.submitFailed = true
		f.submitSucceeded = false
		f.mu.Unlock()

		sort.Strings(invalid)
		for _, name := range invalid {
			f.metrics.ObserveValidationFailure(name)
		}
		f.metrics.ObserveSubmission(OutcomeInvalid)
		f.logger.Debug("submit blocked by validation", "fields", invalid)
		f.bump()
		return ErrValidation
	}

	f.submitting = true
	f.submitted = true
	f.formError = ""
	values := f.valuesLocked()
	for name, e := range f.fields {
		e.lastSubmitted = values[name]
		e.submitErr = ""
	}
	f.mu.Unlock()
	f.bump()

	ctx, span := f.tracer.Start(ctx, "fieldkit.form.submit",
		trace.WithSpanKind(trace.SpanKindInternal),
		trace.WithAttributes(attribute.Int("fieldkit.form.fields", len(values))),
	)
	defer span.End()

	start := time.Now()
	err := f.runHandler(ctx, handler, values)
	f.metrics.ObserveSubmitDuration(time.Since(start))

	outcome, result := f.finishSubmit(err)
	span.SetAttributes(attribute.String("fieldkit.form.outcome", outcome))
	if result != nil {
		span.RecordError(result)
		span.SetStatus(codes.Error, result.Error())
	} else {
		span.SetStatus(codes.Ok, "")
	}
	f.metrics.ObserveSubmission(outcome)
	f.bump()
	return result
}

// runHandler converts a handler panic into an error so the submitting flag
// is always cleared.
func (f *Form) runHandler(ctx context.Context, handler SubmitHandler, values map[string]any) (err error) {
	defer func() {
		if r := recover(); r != nil {
			f.logger.Error("submit handler panicked", "panic", r)
			err = fmt.Errorf("submit handler panic: %v", r)
		}
	}()
	return handler(ctx, values)
}

func (f *Form) finishSubmit(err error) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.submitting = false

	if err == nil {
		f.submitFailed = false
		f.submitSucceeded = true
		return OutcomeSucceeded, nil
	}

	f.submitFailed = true
	f.submitSucceeded = false

	var rejected SubmitErrors
	if errors.As(err, &rejected) {
		names := make([]string, 0, len(rejected))
		for name := range rejected {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			msg := rejected[name]
			if e, ok := f.fields[name]; ok {
				e.submitErr = msg
				continue
			}
			if f.formError != "" {
				f.formError += "\n"
			}
			f.formError += msg
		}
		f.logger.Info("submission rejected", "fields", len(rejected))
		return OutcomeRejected, rejected
	}

	f.formError = err.Error()
	f.logger.Error("submit handler failed", "error", err)
	return OutcomeFailed, fkerrors.New("F201").Wrap(err)
}

// Reset restores initial values and clears all interaction and submit state.
func (f *Form) Reset() {
	f.mu.Lock()
	entries := make([]*fieldEntry, 0, len(f.order))
	for _, name := range f.order {
		e := f.fields[name]
		e.touched = false
		e.active = false
		e.submitErr = ""
		e.lastSubmitted = nil
		e.err = e.validate(e.initial)
		entries = append(entries, e)
	}
	f.submitted = false
	f.submitFailed = false
	f.submitSucceeded = false
	f.formError = ""
	f.mu.Unlock()

	for _, e := range entries {
		e.value.Set(e.initial)
	}
	f.bump()
}
