// Package i18n is the translation utility used for labels, button captions and
// validation messages.
//
// Messages are keyed by their English source text, gettext style, so an
// untranslated message falls back to readable English. Catalogs are YAML
// documents mapping language tags to flat message tables:
//
//	fr:
//	  "Add a new file type": "Ajouter un nouveau type de fichier"
//	  "Hello, %{name}": "Bonjour, %{name}"
//
// A Catalog picks the best available language for a requested tag using
// golang.org/x/text/language matching, so "fr-CH" is served from "fr".
//
//	cat, _ := i18n.Default()
//	tr := cat.Translator("fr-CH")
//	tr.T("Hello, %{name}", "name", "Ada")
package i18n
