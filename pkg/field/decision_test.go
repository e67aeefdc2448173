package field

import (
	"testing"

	"github.com/indico/fieldkit/pkg/formstate"
)

func TestDecideError(t *testing.T) {
	tests := []struct {
		name        string
		state       formstate.FieldState
		flags       ErrorFlags
		wantKind    ErrorKind
		wantMessage string
		wantVisible bool
	}{
		{
			name:  "pristine required field stays quiet",
			state: formstate.FieldState{Error: "required"},
			flags: ErrorFlags{Required: true},
		},
		{
			name:        "touched dirty field shows local error",
			state:       formstate.FieldState{Touched: true, Dirty: true, Error: "too short"},
			wantKind:    ErrorValidation,
			wantMessage: "too short",
			wantVisible: true,
		},
		{
			name:        "touched required field shows local error without edits",
			state:       formstate.FieldState{Touched: true, Error: "required"},
			flags:       ErrorFlags{Required: true},
			wantKind:    ErrorValidation,
			wantMessage: "required",
			wantVisible: true,
		},
		{
			name:  "touched optional pristine field stays quiet",
			state: formstate.FieldState{Touched: true, Error: "bad"},
		},
		{
			name:  "hideValidationError suppresses local error",
			state: formstate.FieldState{Touched: true, Dirty: true, Error: "bad", SubmitError: "taken"},
			flags: ErrorFlags{HideValidationError: true},
		},
		{
			name:        "hideValidationError keeps submit errors",
			state:       formstate.FieldState{SubmitError: "taken"},
			flags:       ErrorFlags{HideValidationError: true},
			wantKind:    ErrorSubmit,
			wantMessage: "taken",
			wantVisible: true,
		},
		{
			name:        "submit error shows until edited",
			state:       formstate.FieldState{Touched: true, SubmitError: "taken"},
			wantKind:    ErrorSubmit,
			wantMessage: "taken",
			wantVisible: true,
		},
		{
			name:  "submit error hidden after edit",
			state: formstate.FieldState{Touched: true, Dirty: true, DirtySinceLastSubmit: true, SubmitError: "taken"},
		},
		{
			name:  "submit error hidden while submitting",
			state: formstate.FieldState{SubmitError: "taken", Submitting: true},
		},
		{
			name:        "local error wins over submit error",
			state:       formstate.FieldState{Touched: true, Dirty: true, Error: "bad", SubmitError: "taken"},
			wantKind:    ErrorValidation,
			wantMessage: "bad",
			wantVisible: true,
		},
		{
			name:        "hideErrorWhileActive hides focused field",
			state:       formstate.FieldState{Touched: true, Dirty: true, Active: true, Error: "bad"},
			flags:       ErrorFlags{HideErrorWhileActive: true},
			wantKind:    ErrorValidation,
			wantMessage: "bad",
			wantVisible: false,
		},
		{
			name:        "active field shows error by default",
			state:       formstate.FieldState{Touched: true, Dirty: true, Active: true, Error: "bad"},
			wantKind:    ErrorValidation,
			wantMessage: "bad",
			wantVisible: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DecideError(tt.state, tt.flags)
			if got.Kind != tt.wantKind {
				t.Errorf("Kind = %v, want %v", got.Kind, tt.wantKind)
			}
			if got.Message != tt.wantMessage {
				t.Errorf("Message = %q, want %q", got.Message, tt.wantMessage)
			}
			if got.Visible != tt.wantVisible {
				t.Errorf("Visible = %v, want %v", got.Visible, tt.wantVisible)
			}
		})
	}
}

func TestHideValidationErrorNeverShows(t *testing.T) {
	flags := ErrorFlags{HideValidationError: true, Required: true}
	for _, touched := range []bool{false, true} {
		for _, dirty := range []bool{false, true} {
			for _, active := range []bool{false, true} {
				st := formstate.FieldState{Touched: touched, Dirty: dirty, Active: active, Error: "bad"}
				if d := DecideError(st, flags); d.Kind == ErrorValidation || d.Visible {
					t.Errorf("DecideError(%+v) = %+v, want nothing", st, d)
				}
			}
		}
	}
}

func TestErrorKindString(t *testing.T) {
	tests := map[ErrorKind]string{
		ErrorNone:       "none",
		ErrorValidation: "validation",
		ErrorSubmit:     "submit",
	}
	for kind, want := range tests {
		if got := kind.String(); got != want {
			t.Errorf("%d.String() = %q, want %q", kind, got, want)
		}
	}
}
