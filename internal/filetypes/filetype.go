package filetypes

import (
	"context"
	"fmt"
	"regexp"
	"sort"
	"strings"
	"sync"

	"github.com/indico/fieldkit/pkg/formstate"
	"github.com/indico/fieldkit/pkg/i18n"
)

// Form field names.
const (
	FieldName               = "name"
	FieldExtensions         = "extensions"
	FieldFilenameTemplate   = "filename_template"
	FieldAllowMultipleFiles = "allow_multiple_files"
	FieldRequired           = "required"
	FieldPublishable        = "publishable"
)

// FileType is a file type as submitted by the dialog.
type FileType struct {
	Name               string   `json:"name" yaml:"name"`
	Extensions         []string `json:"extensions" yaml:"extensions"`
	FilenameTemplate   *string  `json:"filename_template" yaml:"filename_template"`
	AllowMultipleFiles bool     `json:"allow_multiple_files" yaml:"allow_multiple_files"`
	Required           bool     `json:"required" yaml:"required"`
	Publishable        bool     `json:"publishable" yaml:"publishable"`
}

// Creator persists a new file type for an event. Returning
// formstate.SubmitErrors reports field problems back to the dialog.
type Creator interface {
	CreateFileType(ctx context.Context, eventID int, ft FileType) error
}

// CreatorFunc adapts a function to Creator.
type CreatorFunc func(ctx context.Context, eventID int, ft FileType) error

func (f CreatorFunc) CreateFileType(ctx context.Context, eventID int, ft FileType) error {
	return f(ctx, eventID, ft)
}

var extensionRegex = regexp.MustCompile(`^[a-z0-9]+(\.[a-z0-9]+)*$`)

// NormalizeExtension lower-cases an extension and strips surrounding space
// and leading dots: " .PDF" becomes "pdf".
func NormalizeExtension(ext string) string {
	return strings.TrimLeft(strings.ToLower(strings.TrimSpace(ext)), ".")
}

// ValidExtension reports whether ext is a normalized extension.
func ValidExtension(ext string) bool {
	return extensionRegex.MatchString(ext)
}

// normalizeExtensions is the Parse step of the extensions dropdown. Empty
// entries and duplicates are dropped; order is kept.
func normalizeExtensions(value any) any {
	list, ok := value.([]any)
	if !ok {
		return value
	}
	seen := make(map[string]bool, len(list))
	out := make([]any, 0, len(list))
	for _, v := range list {
		s, ok := v.(string)
		if !ok {
			out = append(out, v)
			continue
		}
		ext := NormalizeExtension(s)
		if ext == "" || seen[ext] {
			continue
		}
		seen[ext] = true
		out = append(out, ext)
	}
	return out
}

// FromValues converts submitted form values.
func FromValues(values map[string]any) (FileType, error) {
	var ft FileType

	name, ok := values[FieldName].(string)
	if !ok {
		return ft, fmt.Errorf("filetypes: %s has type %T", FieldName, values[FieldName])
	}
	ft.Name = name

	switch exts := values[FieldExtensions].(type) {
	case nil:
	case []any:
		for _, e := range exts {
			s, ok := e.(string)
			if !ok {
				return ft, fmt.Errorf("filetypes: extension %v has type %T", e, e)
			}
			ft.Extensions = append(ft.Extensions, s)
		}
	default:
		return ft, fmt.Errorf("filetypes: %s has type %T", FieldExtensions, exts)
	}

	if tmpl, ok := values[FieldFilenameTemplate].(string); ok {
		ft.FilenameTemplate = &tmpl
	}
	ft.AllowMultipleFiles, _ = values[FieldAllowMultipleFiles].(bool)
	ft.Required, _ = values[FieldRequired].(bool)
	ft.Publishable, _ = values[FieldPublishable].(bool)
	return ft, nil
}

// MemoryStore is an in-process Creator keyed by event. Names are unique per
// event, compared case-insensitively.
type MemoryStore struct {
	mu         sync.Mutex
	types      map[int][]FileType
	translator i18n.Translator
}

// NewMemoryStore creates an empty store. Messages returned to the dialog
// are translated with tr.
func NewMemoryStore(tr i18n.Translator) *MemoryStore {
	return &MemoryStore{
		types:      make(map[int][]FileType),
		translator: i18n.Or(tr),
	}
}

// CreateFileType implements Creator.
func (s *MemoryStore) CreateFileType(ctx context.Context, eventID int, ft FileType) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.types[eventID] {
		if strings.EqualFold(existing.Name, ft.Name) {
			return formstate.SubmitErrors{
				FieldName: s.translator.T("A file type with this name already exists."),
			}
		}
	}
	s.types[eventID] = append(s.types[eventID], ft)
	return nil
}

// List returns the file types of an event sorted by name.
func (s *MemoryStore) List(eventID int) []FileType {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := append([]FileType(nil), s.types[eventID]...)
	sort.Slice(out, func(i, j int) bool {
		return strings.ToLower(out[i].Name) < strings.ToLower(out[j].Name)
	})
	return out
}
