// Package render converts vdom trees into HTML.
//
//	r := render.NewRenderer(render.RendererConfig{Pretty: true})
//	html, err := r.RenderToString(node)
//
// Text and attribute values are escaped. Event handlers are not rendered as
// attributes; instead each element carrying a handler gets a data-on-<event>
// marker so client code knows which events to forward. KindRaw nodes are
// written verbatim and must only carry sanitised markup.
//
// RenderPage wraps a body in a minimal HTML5 document.
package render
