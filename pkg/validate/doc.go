// Package validate provides the validation rules attached to form fields.
//
// A rule inspects a field value and returns nil when the value is acceptable
// or a *ValidationError carrying the message to show. Rules other than
// Required let empty values pass, so a field is only forced to hold a value
// when Required is attached.
//
// Chain combines rules with logical AND: each rule runs in turn and the first
// failure is returned.
//
//	rule := validate.Chain(
//	    validate.Required(""),
//	    validate.MaxLength(100, ""),
//	)
//	if err := rule.Validate(value); err != nil {
//	    fmt.Println(err) // "This field is required."
//	}
package validate
