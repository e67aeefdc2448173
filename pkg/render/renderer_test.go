package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/indico/fieldkit/pkg/vdom"
)

func TestRenderText(t *testing.T) {
	renderer := NewRenderer(RendererConfig{})

	html, err := renderer.RenderToString(vdom.Text("Hello, World!"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if html != "Hello, World!" {
		t.Errorf("got %q, want %q", html, "Hello, World!")
	}
}

func TestRenderTextEscaping(t *testing.T) {
	renderer := NewRenderer(RendererConfig{})

	html, err := renderer.RenderToString(vdom.Text("<script>alert('xss')</script>"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(html, "<script>") {
		t.Errorf("HTML should be escaped, got %q", html)
	}
	if !strings.Contains(html, "&lt;script&gt;") {
		t.Errorf("should contain escaped script tag, got %q", html)
	}
}

func TestRenderElement(t *testing.T) {
	renderer := NewRenderer(RendererConfig{})

	node := vdom.Div(vdom.Class("field"), vdom.ID("f"),
		vdom.Label(vdom.For("name"), vdom.Text("Name")),
		vdom.Input(vdom.Type("text"), vdom.Name("name"), vdom.Value("a\"b")),
	)
	html, err := renderer.RenderToString(node)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := `<div class="field" id="f"><label for="name">Name</label><input name="name" type="text" value="a&quot;b"></div>`
	if html != want {
		t.Errorf("got  %s\nwant %s", html, want)
	}
}

func TestRenderBooleanAttributes(t *testing.T) {
	renderer := NewRenderer(RendererConfig{})

	html, _ := renderer.RenderToString(vdom.Input(vdom.Disabled(true), vdom.Required(false), vdom.Checked(true)))
	if html != `<input checked disabled>` {
		t.Errorf("got %q", html)
	}
}

func TestRenderEmptyValueKept(t *testing.T) {
	renderer := NewRenderer(RendererConfig{})

	html, _ := renderer.RenderToString(vdom.Input(vdom.Value(""), vdom.Placeholder("")))
	if html != `<input value="">` {
		t.Errorf("got %q", html)
	}
}

func TestRenderEventMarkers(t *testing.T) {
	renderer := NewRenderer(RendererConfig{})

	node := vdom.Input(
		vdom.OnInput(func(...any) {}),
		vdom.OnBlur(func(...any) {}),
	)
	html, _ := renderer.RenderToString(node)

	if !strings.Contains(html, `data-on-blur="true"`) || !strings.Contains(html, `data-on-input="true"`) {
		t.Errorf("missing event markers: %s", html)
	}
	if strings.Contains(html, "oninput") {
		t.Errorf("handler rendered as attribute: %s", html)
	}
}

func TestRenderFragmentComponentRaw(t *testing.T) {
	renderer := NewRenderer(RendererConfig{})

	comp := vdom.Func(func() *vdom.VNode { return vdom.Span(vdom.Text("c")) })
	node := vdom.Fragment(vdom.Text("a"), comp, vdom.Raw("<b>raw</b>"))
	html, err := renderer.RenderToString(node)
	if err != nil {
		t.Fatal(err)
	}
	if html != "a<span>c</span><b>raw</b>" {
		t.Errorf("got %q", html)
	}
}

func TestRenderPretty(t *testing.T) {
	renderer := NewRenderer(RendererConfig{Pretty: true})

	node := vdom.Div(vdom.P(vdom.Text("x")), vdom.Span(vdom.Text("y")))
	html, _ := renderer.RenderToString(node)

	want := "<div>\n  <p>x</p>\n  <span>y</span>\n</div>\n"
	if html != want {
		t.Errorf("got %q, want %q", html, want)
	}
}

func TestRenderUnknownKind(t *testing.T) {
	renderer := NewRenderer(RendererConfig{})
	if _, err := renderer.RenderToString(&vdom.VNode{Kind: vdom.VKind(42)}); err == nil {
		t.Error("expected error for unknown kind")
	}
}

func TestRenderPage(t *testing.T) {
	renderer := NewRenderer(RendererConfig{})
	var buf bytes.Buffer

	err := renderer.RenderPage(&buf, PageData{
		Body:        vdom.Div(vdom.Text("body")),
		Title:       "Add <file> type",
		Lang:        "fr",
		StyleSheets: []string{"/static/forms.css"},
	})
	if err != nil {
		t.Fatal(err)
	}

	out := buf.String()
	for _, want := range []string{
		"<!DOCTYPE html>",
		`<html lang="fr">`,
		"<title>Add &lt;file&gt; type</title>",
		`<link rel="stylesheet" href="/static/forms.css">`,
		"<div>body</div>",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("page missing %q:\n%s", want, out)
		}
	}
}
