package main

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/indico/fieldkit/internal/errors"
	"github.com/indico/fieldkit/internal/filetypes"
	"github.com/indico/fieldkit/pkg/formstate"
	"github.com/indico/fieldkit/pkg/signal"
	"github.com/indico/fieldkit/pkg/vdom"
)

// Fixture is a scripted interaction with a dialog.
type Fixture struct {
	Dialog   string               `yaml:"dialog"`
	EventID  int                  `yaml:"event_id"`
	Lang     string               `yaml:"lang"`
	Existing []filetypes.FileType `yaml:"existing"`
	Steps    []Step               `yaml:"steps"`
	Expect   Expect               `yaml:"expect"`
}

// Step is one user action. Exactly one of Change, Focus, Blur or Submit is
// expected per step.
type Step struct {
	Field  string `yaml:"field"`
	Change any    `yaml:"change"`
	Focus  bool   `yaml:"focus"`
	Blur   bool   `yaml:"blur"`
	Submit bool   `yaml:"submit"`
}

// Expect is checked after the last step.
type Expect struct {
	// Outcome of the last submit: succeeded, rejected, invalid or failed.
	Outcome string `yaml:"outcome"`

	// Errors maps field names to the visible message; "" means none.
	Errors map[string]string `yaml:"errors"`

	// Values maps field names to the stored value.
	Values map[string]any `yaml:"values"`

	// SubmitDisabled checks the submit button.
	SubmitDisabled *bool `yaml:"submit_disabled"`
}

func loadFixture(path string) (*Fixture, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.New("F300").Wrap(err)
	}
	defer f.Close()
	return decodeFixture(f)
}

func decodeFixture(r io.Reader) (*Fixture, error) {
	var fx Fixture
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&fx); err != nil {
		return nil, errors.New("F300").WithDetail(err.Error())
	}
	if fx.Dialog == "" {
		fx.Dialog = dialogAddFileType
	}
	if fx.Dialog != dialogAddFileType {
		return nil, errors.New("F301").WithDetail(fmt.Sprintf("unknown dialog %q", fx.Dialog))
	}
	for i, st := range fx.Steps {
		if !st.Submit && st.Field == "" {
			return nil, errors.New("F300").WithDetail(fmt.Sprintf("step %d has no field", i+1))
		}
	}
	return &fx, nil
}

// nativeEvent shapes a fixture value like the event the matching control
// emits.
func nativeEvent(value any) []any {
	switch v := value.(type) {
	case bool:
		return []any{vdom.InputEvent{Type: "change"}, vdom.CheckboxData{Checked: v}}
	case []any:
		return []any{vdom.InputEvent{Type: "change"}, vdom.DropdownData{Value: v}}
	case nil:
		return []any{vdom.InputEvent{Type: "input"}}
	default:
		return []any{vdom.InputEvent{Type: "input", Value: fmt.Sprint(v)}}
	}
}

// runResult collects mismatches of a fixture run.
type runResult struct {
	outcome  string
	failures []string
}

func (r *runResult) failf(format string, args ...any) {
	r.failures = append(r.failures, fmt.Sprintf(format, args...))
}

func outcomeOf(err error) string {
	var rejected formstate.SubmitErrors
	switch {
	case err == nil:
		return formstate.OutcomeSucceeded
	case stderrors.Is(err, formstate.ErrValidation):
		return formstate.OutcomeInvalid
	case stderrors.As(err, &rejected):
		return formstate.OutcomeRejected
	default:
		return formstate.OutcomeFailed
	}
}

func runFixture(ctx context.Context, e *env, fx *Fixture) (*runResult, error) {
	store := filetypes.NewMemoryStore(e.translator(fx.Lang))
	for _, ft := range fx.Existing {
		if err := store.CreateFileType(ctx, fx.EventID, ft); err != nil {
			return nil, errors.New("F300").WithDetail("existing file type " + ft.Name).Wrap(err)
		}
	}
	dialog := e.dialog(fx.EventID, fx.Lang, store)
	res := &runResult{}

	for i, st := range fx.Steps {
		if st.Submit {
			res.outcome = outcomeOf(dialog.Submit(ctx))
			continue
		}
		f := dialog.Field(st.Field)
		if f == nil {
			return nil, errors.New("F200").WithDetail(fmt.Sprintf("step %d: field %q", i+1, st.Field))
		}
		switch {
		case st.Focus:
			f.HandleFocus()
		case st.Blur:
			f.HandleBlur()
		default:
			f.HandleChange(nativeEvent(st.Change)...)
		}
	}

	ex := fx.Expect
	if ex.Outcome != "" && ex.Outcome != res.outcome {
		res.failf("outcome = %q, want %q", res.outcome, ex.Outcome)
	}
	for _, name := range sortedKeys(ex.Errors) {
		f := dialog.Field(name)
		if f == nil {
			res.failf("unknown field %q in expected errors", name)
			continue
		}
		got := ""
		if d := f.Decision(); d.Visible {
			got = d.Message
		}
		if got != ex.Errors[name] {
			res.failf("%s: shown error = %q, want %q", name, got, ex.Errors[name])
		}
	}
	for _, name := range sortedKeys(ex.Values) {
		got := dialog.Form().Value(name)
		if !signal.Equal(normalizeValue(got), normalizeValue(ex.Values[name])) {
			res.failf("%s: value = %#v, want %#v", name, got, ex.Values[name])
		}
	}
	if ex.SubmitDisabled != nil && dialog.SubmitButton().Disabled() != *ex.SubmitDisabled {
		res.failf("submit disabled = %v, want %v", !*ex.SubmitDisabled, *ex.SubmitDisabled)
	}
	return res, nil
}

// normalizeValue maps YAML integers to float64 so numeric comparisons do
// not depend on how the fixture spells them.
func normalizeValue(v any) any {
	switch x := v.(type) {
	case int:
		return float64(x)
	case []any:
		out := make([]any, len(x))
		for i, e := range x {
			out[i] = normalizeValue(e)
		}
		return out
	}
	return v
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
