package field

import (
	"context"
	"testing"

	"github.com/indico/fieldkit/pkg/formstate"
	"github.com/indico/fieldkit/pkg/validate"
	"github.com/indico/fieldkit/pkg/vdom"
)

func TestSubmitButtonDisabled(t *testing.T) {
	tests := []struct {
		name          string
		change        any
		allowPristine bool
		allowInvalid  bool
		want          bool
	}{
		{name: "pristine", change: nil, want: true},
		{name: "pristine allowed", change: nil, allowPristine: true, want: false},
		{name: "invalid", change: "ab", want: true},
		{name: "invalid allowed", change: "ab", allowInvalid: true, want: false},
		{name: "changed and valid", change: "abcd", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := formstate.New()
			form.Register("name", "", validate.MinLength(3, ""))
			if tt.change != nil {
				_ = form.Change("name", tt.change)
			}

			b := &SubmitButton{
				Form:          form,
				AllowPristine: tt.allowPristine,
				AllowInvalid:  tt.allowInvalid,
			}
			if got := b.Disabled(); got != tt.want {
				t.Errorf("Disabled() = %v, want %v", got, tt.want)
			}
			if got := b.Render().BoolProp("disabled"); got != tt.want {
				t.Errorf("rendered disabled = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSubmitButtonPristineValidForm(t *testing.T) {
	form := formstate.New()
	form.Register("flag", false, nil)

	b := &SubmitButton{Form: form}
	if !b.Disabled() {
		t.Error("pristine form enabled")
	}
	b.AllowPristine = true
	if b.Disabled() {
		t.Error("AllowPristine ignored")
	}
}

func TestSubmitButtonLoadingAndClick(t *testing.T) {
	form := formstate.New()
	form.Register("name", "", nil)
	_ = form.Change("name", "Slides")

	var b *SubmitButton
	calls := 0
	b = &SubmitButton{
		Form:  form,
		Label: "Save",
		Handler: func(ctx context.Context, values map[string]any) error {
			calls++
			if !b.Disabled() || !b.Loading() {
				t.Error("button not disabled and loading during submit")
			}
			node := b.Render()
			if !node.HasClass("loading") {
				t.Error("missing loading class")
			}
			return nil
		},
	}

	node := b.Render()
	if got := vdom.TextContent(node); got != "Save" {
		t.Errorf("label = %q", got)
	}
	if !vdom.Trigger(node, "click") {
		t.Fatal("no click handler")
	}
	if calls != 1 {
		t.Fatalf("handler calls = %d, want 1", calls)
	}
	if b.LastError != nil {
		t.Errorf("LastError = %v", b.LastError)
	}
	if b.Render().HasClass("loading") {
		t.Error("loading class after submit")
	}
}

func TestSubmitButtonIgnoresClickWhenDisabled(t *testing.T) {
	form := formstate.New()
	form.Register("name", "", validate.Required(""))

	b := &SubmitButton{
		Form: form,
		Handler: func(context.Context, map[string]any) error {
			t.Error("handler called")
			return nil
		},
	}
	if err := b.Click(); err != nil {
		t.Errorf("Click() error = %v", err)
	}
	if form.State("name").Touched {
		t.Error("disabled click reached the form")
	}
}
