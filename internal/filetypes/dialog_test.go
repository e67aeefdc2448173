package filetypes

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/indico/fieldkit/pkg/formstate"
	"github.com/indico/fieldkit/pkg/i18n"
	"github.com/indico/fieldkit/pkg/render"
	"github.com/indico/fieldkit/pkg/validate"
	"github.com/indico/fieldkit/pkg/vdom"
)

func input(t *testing.T, d *Dialog, name string) *vdom.VNode {
	t.Helper()
	n := vdom.Find(d.Render(), vdom.ByName(name))
	if n == nil {
		t.Fatalf("control %q not rendered", name)
	}
	return n
}

func TestNormalizeExtension(t *testing.T) {
	tests := map[string]string{
		"pdf":     "pdf",
		".PDF":    "pdf",
		" ..Doc ": "doc",
		"tar.gz":  "tar.gz",
		"":        "",
	}
	for in, want := range tests {
		if got := NormalizeExtension(in); got != want {
			t.Errorf("NormalizeExtension(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestDialogRender(t *testing.T) {
	d := NewDialog(42, NewMemoryStore(nil))
	root := d.Render()

	if got := root.StringProp("data-event-id"); got != "42" {
		t.Errorf("data-event-id = %q, want 42", got)
	}
	if got := vdom.TextContent(vdom.Find(root, vdom.ByTag("h2"))); got != "Add a new file type" {
		t.Errorf("title = %q", got)
	}
	for _, name := range []string{
		FieldName, FieldExtensions, FieldFilenameTemplate,
		FieldAllowMultipleFiles, FieldRequired, FieldPublishable,
	} {
		input(t, d, name)
	}

	html, err := render.NewRenderer(render.RendererConfig{}).RenderToString(root)
	if err != nil {
		t.Fatalf("RenderToString() error = %v", err)
	}
	for _, want := range []string{
		`role="dialog"`,
		`aria-modal="true"`,
		`{code}_slides`,
		`<button`,
	} {
		if !strings.Contains(html, want) {
			t.Errorf("html missing %q", want)
		}
	}
}

func TestDialogTranslated(t *testing.T) {
	catalog, err := i18n.Default()
	if err != nil {
		t.Fatalf("Default() error = %v", err)
	}
	d := NewDialog(1, NewMemoryStore(nil), WithTranslator(catalog.Translator("fr")))
	root := d.Render()

	if got := vdom.TextContent(vdom.Find(root, vdom.ByTag("h2"))); got != "Ajouter un nouveau type de fichier" {
		t.Errorf("title = %q", got)
	}
	if got := vdom.TextContent(vdom.Find(root, vdom.ByTag("button"))); got != "Enregistrer" {
		t.Errorf("submit label = %q", got)
	}
}

func TestDialogDescriptionTranslatedOnce(t *testing.T) {
	catalog, err := i18n.Default()
	if err != nil {
		t.Fatalf("Default() error = %v", err)
	}
	fr := catalog.Translator("fr")

	var lookups []string
	tr := i18n.TranslatorFunc(func(msg string, params ...string) string {
		lookups = append(lookups, msg)
		return fr.T(msg, params...)
	})
	d := NewDialog(1, NewMemoryStore(nil), WithTranslator(tr))

	f := d.Field(FieldFilenameTemplate)
	desc := vdom.Find(f.Render(), vdom.ByClass("field-description"))
	if desc == nil || len(desc.Children) == 0 {
		t.Fatal("filename template description not rendered")
	}
	want := "Nom de fichier attendu, p. ex. {code}_slides. Laisser vide pour accepter tout nom."
	if got := desc.Children[0].Text; got != want {
		t.Errorf("description = %q, want %q", got, want)
	}
	for _, msg := range lookups {
		if strings.Contains(msg, templateHint) {
			t.Errorf("translated text looked up again as a message: %q", msg)
		}
	}
}

func TestDialogSubmitCreatesFileType(t *testing.T) {
	store := NewMemoryStore(nil)
	closed := 0
	d := NewDialog(7, store, WithOnClose(func() { closed++ }))

	name := d.Field(FieldName)
	name.HandleChange(vdom.InputEvent{Value: "  Slides "})
	name.HandleBlur()
	d.Field(FieldExtensions).HandleChange(nil, vdom.DropdownData{Value: []string{".PDF", "pptx", "pdf", ""}})
	d.Field(FieldPublishable).HandleChange(nil, vdom.CheckboxData{Checked: true})

	if d.SubmitButton().Disabled() {
		t.Fatal("submit button disabled for a valid form")
	}
	if err := d.Submit(context.Background()); err != nil {
		t.Fatalf("Submit() error = %v", err)
	}
	if closed != 1 {
		t.Errorf("onClose calls = %d, want 1", closed)
	}

	want := []FileType{{
		Name:        "Slides",
		Extensions:  []string{"pdf", "pptx"},
		Publishable: true,
	}}
	if diff := cmp.Diff(want, store.List(7)); diff != "" {
		t.Errorf("stored file types mismatch (-want +got):\n%s", diff)
	}
}

func TestDialogRejectsDuplicateName(t *testing.T) {
	store := NewMemoryStore(nil)
	_ = store.CreateFileType(context.Background(), 7, FileType{Name: "Slides"})

	d := NewDialog(7, store)
	d.Field(FieldName).HandleChange(vdom.InputEvent{Value: "slides"})

	err := d.Submit(context.Background())
	var rejected formstate.SubmitErrors
	if !errors.As(err, &rejected) {
		t.Fatalf("Submit() error = %v, want SubmitErrors", err)
	}

	msg := vdom.Find(d.Field(FieldName).Render(), vdom.ByClass("field-error-message"))
	if got := vdom.TextContent(msg); got != "A file type with this name already exists." {
		t.Errorf("name error = %q", got)
	}

	d.Field(FieldName).HandleChange(vdom.InputEvent{Value: "Minutes"})
	if vdom.Find(d.Field(FieldName).Render(), vdom.ByClass("field-error-message")) != nil {
		t.Error("duplicate error still shown after edit")
	}
}

func TestDialogRequiresName(t *testing.T) {
	d := NewDialog(1, CreatorFunc(func(context.Context, int, FileType) error {
		t.Error("creator called")
		return nil
	}))

	if err := d.Submit(context.Background()); !errors.Is(err, formstate.ErrValidation) {
		t.Fatalf("Submit() error = %v, want ErrValidation", err)
	}
	if got := d.Form().State(FieldName).Error; got != validate.MsgRequired {
		t.Errorf("name error = %q", got)
	}
	if !input(t, d, FieldName).BoolProp("aria-invalid") {
		t.Error("name control not marked invalid")
	}
}

func TestDialogInvalidExtension(t *testing.T) {
	d := NewDialog(1, NewMemoryStore(nil))
	d.Field(FieldName).HandleChange(vdom.InputEvent{Value: "Poster"})
	d.Field(FieldExtensions).HandleChange(nil, vdom.DropdownData{Value: []string{"p d f"}})

	if got := d.Form().State(FieldExtensions).Error; got != "Invalid file extension." {
		t.Errorf("extensions error = %q", got)
	}

	options := vdom.FindAll(input(t, d, FieldExtensions), vdom.ByTag("option"))
	last := options[len(options)-1]
	if last.StringProp("value") != "p d f" || !last.BoolProp("selected") {
		t.Errorf("added extension not rendered as selected option: %+v", last.Props)
	}
}

func TestDialogFilenameTemplateNullIfEmpty(t *testing.T) {
	store := NewMemoryStore(nil)
	d := NewDialog(3, store)
	d.Field(FieldName).HandleChange(vdom.InputEvent{Value: "Paper"})
	tmpl := d.Field(FieldFilenameTemplate)
	tmpl.HandleChange(vdom.InputEvent{Value: "x"})
	tmpl.HandleChange(vdom.InputEvent{Value: " "})
	tmpl.HandleBlur()

	if err := d.Submit(context.Background()); err != nil {
		t.Fatalf("Submit() error = %v", err)
	}
	if got := store.List(3)[0].FilenameTemplate; got != nil {
		t.Errorf("FilenameTemplate = %q, want nil", *got)
	}
}

func TestDialogCancelResets(t *testing.T) {
	closed := false
	d := NewDialog(1, NewMemoryStore(nil), WithOnClose(func() { closed = true }))
	d.Field(FieldName).HandleChange(vdom.InputEvent{Value: "Draft"})

	cancel := vdom.Find(d.Render(), func(n *vdom.VNode) bool {
		return n.Kind == vdom.KindElement && n.Tag == "button" && n.StringProp("type") == "button"
	})
	if !vdom.Trigger(cancel, "click") {
		t.Fatal("cancel has no click handler")
	}
	if !closed {
		t.Error("onClose not called")
	}
	if !d.Form().Pristine() {
		t.Error("form not reset")
	}
}

func TestFromValuesRejectsWrongTypes(t *testing.T) {
	if _, err := FromValues(map[string]any{FieldName: 3}); err == nil {
		t.Error("FromValues accepted numeric name")
	}
	if _, err := FromValues(map[string]any{FieldName: "x", FieldExtensions: "pdf"}); err == nil {
		t.Error("FromValues accepted string extensions")
	}
}
