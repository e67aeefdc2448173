package validate

import (
	"fmt"
	"net/mail"
	"net/url"
	"reflect"
	"regexp"
	"strconv"
	"strings"
)

// Validator is an interface for form field validation.
type Validator interface {
	// Validate checks if the value is valid.
	// Returns nil if valid, or an error with a message if invalid.
	Validate(value any) error
}

// ValidatorFunc is a function that implements Validator.
type ValidatorFunc func(value any) error

func (f ValidatorFunc) Validate(value any) error {
	return f(value)
}

// ValidationError represents a validation failure.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Fail returns a ValidationError with the given message.
func Fail(msg string) error {
	return &ValidationError{Message: msg}
}

// Message extracts the user-facing message from a validation result.
// It returns "" for nil.
func Message(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}

// Default messages. Callers translate them through their translator.
const (
	MsgRequired  = "This field is required."
	MsgNumber    = "Please enter a valid number."
	MsgEmail     = "Please enter a valid email address."
	MsgURL       = "Please enter a valid URL."
	MsgPattern   = "Invalid format."
	MsgMinLength = "Must be at least %d characters."
	MsgMaxLength = "Must be at most %d characters."
	MsgMin       = "Must be at least %v."
	MsgMax       = "Must be at most %v."
)

// Required validates that the value is present. Nil, blank strings, false,
// and empty slices or maps are missing; zero numbers are present.
func Required(msg string) Validator {
	if msg == "" {
		msg = MsgRequired
	}
	return ValidatorFunc(func(value any) error {
		if IsEmpty(value) {
			return Fail(msg)
		}
		return nil
	})
}

// Optional runs v only when the value is present.
func Optional(v Validator) Validator {
	if v == nil {
		return nil
	}
	return ValidatorFunc(func(value any) error {
		if IsEmpty(value) {
			return nil
		}
		return v.Validate(value)
	})
}

// Chain returns a validator that runs each rule in order and reports the
// first failure. Nil rules are skipped; Chain of nothing returns nil.
func Chain(rules ...Validator) Validator {
	active := make([]Validator, 0, len(rules))
	for _, r := range rules {
		if r != nil {
			active = append(active, r)
		}
	}
	switch len(active) {
	case 0:
		return nil
	case 1:
		return active[0]
	}
	return ValidatorFunc(func(value any) error {
		for _, r := range active {
			if err := r.Validate(value); err != nil {
				return err
			}
		}
		return nil
	})
}

// MinLength validates that a string has at least n characters.
func MinLength(n int, msg string) Validator {
	if msg == "" {
		msg = fmt.Sprintf(MsgMinLength, n)
	}
	return ValidatorFunc(func(value any) error {
		s := toString(value)
		if s == "" {
			return nil
		}
		if len([]rune(s)) < n {
			return Fail(msg)
		}
		return nil
	})
}

// MaxLength validates that a string has at most n characters.
func MaxLength(n int, msg string) Validator {
	if msg == "" {
		msg = fmt.Sprintf(MsgMaxLength, n)
	}
	return ValidatorFunc(func(value any) error {
		if len([]rune(toString(value))) > n {
			return Fail(msg)
		}
		return nil
	})
}

// Pattern validates that a string matches the given regular expression.
func Pattern(pattern string, msg string) Validator {
	re := regexp.MustCompile(pattern)
	if msg == "" {
		msg = MsgPattern
	}
	return ValidatorFunc(func(value any) error {
		s := toString(value)
		if s == "" {
			return nil
		}
		if !re.MatchString(s) {
			return Fail(msg)
		}
		return nil
	})
}

// Email validates that the value is a single bare email address.
func Email(msg string) Validator {
	if msg == "" {
		msg = MsgEmail
	}
	return ValidatorFunc(func(value any) error {
		s := toString(value)
		if s == "" {
			return nil
		}
		addr, err := mail.ParseAddress(s)
		if err != nil || addr.Address != s || !strings.Contains(s[strings.LastIndex(s, "@"):], ".") {
			return Fail(msg)
		}
		return nil
	})
}

// URL validates that the value is an absolute URL.
func URL(msg string) Validator {
	if msg == "" {
		msg = MsgURL
	}
	return ValidatorFunc(func(value any) error {
		s := toString(value)
		if s == "" {
			return nil
		}
		u, err := url.Parse(s)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return Fail(msg)
		}
		return nil
	})
}

// Number validates that the value is numeric. Nil passes; numeric strings
// are accepted.
func Number(msg string) Validator {
	if msg == "" {
		msg = MsgNumber
	}
	return ValidatorFunc(func(value any) error {
		if value == nil {
			return nil
		}
		if _, ok := toFloat64(value); !ok {
			return Fail(msg)
		}
		return nil
	})
}

// Min validates that a numeric value is >= n.
func Min(n float64, msg string) Validator {
	if msg == "" {
		msg = fmt.Sprintf(MsgMin, n)
	}
	return ValidatorFunc(func(value any) error {
		v, ok := toFloat64(value)
		if !ok {
			return nil
		}
		if v < n {
			return Fail(msg)
		}
		return nil
	})
}

// Max validates that a numeric value is <= n.
func Max(n float64, msg string) Validator {
	if msg == "" {
		msg = fmt.Sprintf(MsgMax, n)
	}
	return ValidatorFunc(func(value any) error {
		v, ok := toFloat64(value)
		if !ok {
			return nil
		}
		if v > n {
			return Fail(msg)
		}
		return nil
	})
}

// Custom creates a validator from a function returning a message, or "" when
// the value is fine.
func Custom(fn func(value any) string) Validator {
	return ValidatorFunc(func(value any) error {
		if msg := fn(value); msg != "" {
			return Fail(msg)
		}
		return nil
	})
}

// IsEmpty reports whether value counts as missing for Required.
func IsEmpty(value any) bool {
	if value == nil {
		return true
	}
	switch v := value.(type) {
	case string:
		return strings.TrimSpace(v) == ""
	case bool:
		return !v
	case []byte:
		return len(v) == 0
	}
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Slice, reflect.Map, reflect.Array:
		return rv.Len() == 0
	case reflect.Ptr, reflect.Interface:
		return rv.IsNil()
	case reflect.String:
		return strings.TrimSpace(rv.String()) == ""
	}
	return false
}

func toString(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case []byte:
		return string(v)
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}

// toFloat64 converts numeric values and numeric strings.
func toFloat64(value any) (float64, bool) {
	switch v := value.(type) {
	case int:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint:
		return float64(v), true
	case uint64:
		return float64(v), true
	case float32:
		return float64(v), true
	case float64:
		return v, true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		return f, err == nil
	default:
		return 0, false
	}
}
