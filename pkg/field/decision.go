package field

import "github.com/indico/fieldkit/pkg/formstate"

// ErrorKind tells which error source produced a message.
type ErrorKind int

const (
	ErrorNone ErrorKind = iota
	ErrorValidation
	ErrorSubmit
)

// String returns the metrics label of the kind.
func (k ErrorKind) String() string {
	switch k {
	case ErrorValidation:
		return "validation"
	case ErrorSubmit:
		return "submit"
	default:
		return "none"
	}
}

// ErrorFlags are the adapter-side inputs of the visibility policy.
type ErrorFlags struct {
	Required             bool
	HideValidationError  bool
	HideErrorWhileActive bool
}

// ErrorDecision is the outcome of DecideError.
type ErrorDecision struct {
	// Kind and Message describe the selected error, if any.
	Kind    ErrorKind
	Message string

	// Visible reports whether Message is rendered. A selected message stays
	// hidden while the field is focused and HideErrorWhileActive is set.
	Visible bool
}

// DecideError selects the message to show for a field. The first matching
// rule wins:
//
//  1. touched with a local error, and dirty or required: the local error,
//     unless HideValidationError suppresses it
//  2. a submit error, unchanged since the last submit, and not submitting:
//     the submit error
//  3. nothing
func DecideError(st formstate.FieldState, flags ErrorFlags) ErrorDecision {
	var d ErrorDecision
	switch {
	case st.Touched && st.Error != "" && (st.Dirty || flags.Required):
		if flags.HideValidationError {
			return d
		}
		d.Kind, d.Message = ErrorValidation, st.Error
	case st.SubmitError != "" && !st.DirtySinceLastSubmit && !st.Submitting:
		d.Kind, d.Message = ErrorSubmit, st.SubmitError
	default:
		return d
	}
	d.Visible = !flags.HideErrorWhileActive || !st.Active
	return d
}
