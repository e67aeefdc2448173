package i18n_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/indico/fieldkit/internal/errors"
	"github.com/indico/fieldkit/pkg/i18n"
)

const sampleCatalog = `
fr:
  "Save": "Enregistrer"
  "Hello, %{name}": "Bonjour, %{name}"
de:
  "Save": "Speichern"
`

func TestDefaultCatalog(t *testing.T) {
	cat, err := i18n.Default()
	require.NoError(t, err)

	assert.Equal(t, []string{"de", "fr"}, cat.Languages())
	assert.Equal(t, "Ce champ est obligatoire.", cat.Translator("fr").T("This field is required."))
	assert.Equal(t, "Speichern", cat.Translator("de-AT").T("Save"))
}

func TestLoadYAMLAndTranslate(t *testing.T) {
	cat := i18n.NewCatalog()
	require.NoError(t, cat.LoadYAML(strings.NewReader(sampleCatalog)))

	fr := cat.Translator("fr")
	assert.Equal(t, "Enregistrer", fr.T("Save"))
	assert.Equal(t, "Bonjour, Ada", fr.T("Hello, %{name}", "name", "Ada"))
	assert.Equal(t, "Cancel", fr.T("Cancel"), "missing messages fall back to the source text")
}

func TestLoadYAMLMerges(t *testing.T) {
	cat := i18n.NewCatalog()
	require.NoError(t, cat.LoadYAML(strings.NewReader(sampleCatalog)))
	require.NoError(t, cat.LoadYAML(strings.NewReader("fr:\n  \"Save\": \"Sauvegarder\"\n  \"Cancel\": \"Annuler\"\n")))

	fr := cat.Translator("fr")
	assert.Equal(t, "Sauvegarder", fr.T("Save"))
	assert.Equal(t, "Annuler", fr.T("Cancel"))
	assert.Equal(t, "Bonjour, %{name}", fr.T("Hello, %{name}"))
}

func TestLoadYAMLErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		code string
	}{
		{"nested tables", "fr:\n  forms:\n    save: Enregistrer\n", "F101"},
		{"not yaml", "fr: [unterminated", "F101"},
		{"bad language tag", "not_a-tag!:\n  a: b\n", "F102"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := i18n.NewCatalog().LoadYAML(strings.NewReader(tt.doc))
			require.Error(t, err)
			assert.True(t, errors.HasCode(err, tt.code), "got %v", err)
		})
	}

	assert.NoError(t, i18n.NewCatalog().LoadYAML(strings.NewReader("")))
}

func TestMatch(t *testing.T) {
	cat := i18n.NewCatalog()
	require.NoError(t, cat.LoadYAML(strings.NewReader(sampleCatalog)))

	tests := []struct {
		requested []string
		want      string
	}{
		{[]string{"fr-CH"}, "fr"},
		{[]string{"de-DE,fr;q=0.5"}, "de"},
		{[]string{"ja"}, "en"},
		{nil, "en"},
		{[]string{"!!!"}, "en"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, cat.Match(tt.requested...), "requested %v", tt.requested)
	}

	assert.Equal(t, "Save", cat.Translator("ja").T("Save"))
}

func TestLoadFileAndFS(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "extra.yaml")
	require.NoError(t, os.WriteFile(path, []byte("it:\n  \"Save\": \"Salva\"\n"), 0o644))

	cat := i18n.NewCatalog()
	require.NoError(t, cat.LoadFile(path))
	assert.Equal(t, "Salva", cat.Translator("it").T("Save"))

	err := cat.LoadFile(filepath.Join(dir, "missing.yaml"))
	assert.True(t, errors.HasCode(err, "F100"))

	fsys := fstest.MapFS{
		"c/a.yaml": {Data: []byte("es:\n  \"Save\": \"Guardar\"\n")},
		"c/b.yaml": {Data: []byte("es:\n  \"Save\": \"Grabar\"\n")},
	}
	require.NoError(t, cat.LoadFS(fsys, "c/*.yaml"))
	assert.Equal(t, "Grabar", cat.Translator("es").T("Save"), "later files win")
}

func TestSprintfAndIdentity(t *testing.T) {
	assert.Equal(t, "a 1 %{b}", i18n.Sprintf("a %{a} %{b}", "a", "1"))
	assert.Equal(t, "x %{a}", i18n.Sprintf("x %{a}", "a"))
	assert.Equal(t, "Hi Bo", i18n.Identity.T("Hi %{n}", "n", "Bo"))
	assert.Equal(t, "Save", i18n.Or(nil).T("Save"))
}
