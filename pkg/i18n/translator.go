package i18n

import (
	"io"
	"log/slog"
	"regexp"
)

// Translator produces localized strings. Params are key/value pairs
// substituted into %{key} placeholders.
type Translator interface {
	T(msg string, params ...string) string
}

// TranslatorFunc adapts a function to Translator.
type TranslatorFunc func(msg string, params ...string) string

// T implements Translator.
func (f TranslatorFunc) T(msg string, params ...string) string {
	return f(msg, params...)
}

// Identity returns messages untranslated, with placeholders substituted.
var Identity Translator = TranslatorFunc(Sprintf)

// Or returns t, or Identity when t is nil.
func Or(t Translator) Translator {
	if t == nil {
		return Identity
	}
	return t
}

var paramRegex = regexp.MustCompile(`%\{([^}]+)\}`)

// Sprintf substitutes %{key} placeholders in tmpl. Unknown placeholders are
// kept; an odd trailing param is ignored.
func Sprintf(tmpl string, params ...string) string {
	if len(params) < 2 {
		return tmpl
	}
	values := make(map[string]string, len(params)/2)
	for i := 0; i+1 < len(params); i += 2 {
		values[params[i]] = params[i+1]
	}
	return paramRegex.ReplaceAllStringFunc(tmpl, func(match string) string {
		if v, ok := values[match[2:len(match)-1]]; ok {
			return v
		}
		return match
	})
}

// boundTranslator serves one language of a catalog.
type boundTranslator struct {
	lang     string
	messages map[string]string
	logger   *slog.Logger
	logMiss  bool
}

func (b *boundTranslator) T(msg string, params ...string) string {
	if translated, ok := b.messages[msg]; ok && translated != "" {
		return Sprintf(translated, params...)
	}
	if b.logMiss {
		b.logger.Debug("missing translation", "lang", b.lang, "msg", msg)
	}
	return Sprintf(msg, params...)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
