// Package errors provides coded, actionable errors for fieldkit.
//
// Programmer and configuration mistakes (an unreadable config file, a broken
// translation catalog, an unknown field name) are reported as *FieldkitError
// values carrying a registered code, a category, an explanation and an
// optional hint. Validation and submission messages shown to end users are not
// errors of this kind; they live in the form state.
//
// # Error Codes
//
//   - F0xx: configuration
//   - F1xx: translation catalogs
//   - F2xx: form state and submission
//   - F3xx: command line
//
// # Usage
//
//	err := errors.New("F101").
//	    WithDetail("catalogs/fr.yaml: line 3: mapping values are not allowed").
//	    WithSuggestion("Check the indentation of the catalog")
//
//	fmt.Fprintln(os.Stderr, err.Format())
package errors
