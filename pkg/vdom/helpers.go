package vdom

import "fmt"

// Text creates a text node.
func Text(content string) *VNode {
	return &VNode{
		Kind: KindText,
		Text: content,
	}
}

// Textf creates a formatted text node.
func Textf(format string, args ...any) *VNode {
	return Text(fmt.Sprintf(format, args...))
}

// Raw creates an unescaped HTML node. Content must already be sanitised.
func Raw(html string) *VNode {
	return &VNode{
		Kind: KindRaw,
		Text: html,
	}
}

// Fragment groups children without a wrapper element.
func Fragment(children ...any) *VNode {
	node := &VNode{
		Kind:     KindFragment,
		Children: make([]*VNode, 0),
	}

	for _, child := range children {
		switch v := child.(type) {
		case nil:
			continue
		case *VNode:
			if v != nil {
				node.Children = append(node.Children, v)
			}
		case []*VNode:
			for _, c := range v {
				if c != nil {
					node.Children = append(node.Children, c)
				}
			}
		case string:
			node.Children = append(node.Children, Text(v))
		case Component:
			node.Children = append(node.Children, &VNode{
				Kind: KindComponent,
				Comp: v,
			})
		}
	}

	return node
}

// If returns the node if condition is true, nil otherwise.
func If(condition bool, node *VNode) *VNode {
	if condition {
		return node
	}
	return nil
}

// When is like If but with lazy evaluation.
// The function is only called if condition is true.
func When(condition bool, fn func() *VNode) *VNode {
	if condition {
		return fn()
	}
	return nil
}

// Range maps a slice to VNodes.
func Range[T any](items []T, fn func(item T, index int) *VNode) []*VNode {
	result := make([]*VNode, 0, len(items))
	for i, item := range items {
		if node := fn(item, i); node != nil {
			result = append(result, node)
		}
	}
	return result
}

// Walk visits node and its descendants depth-first. Component nodes are
// rendered and their output visited. Returning false from fn stops the walk.
func Walk(node *VNode, fn func(*VNode) bool) bool {
	if node == nil {
		return true
	}
	if !fn(node) {
		return false
	}
	if node.Kind == KindComponent && node.Comp != nil {
		return Walk(node.Comp.Render(), fn)
	}
	for _, child := range node.Children {
		if !Walk(child, fn) {
			return false
		}
	}
	return true
}

// Find returns the first node for which match returns true.
func Find(root *VNode, match func(*VNode) bool) *VNode {
	var found *VNode
	Walk(root, func(n *VNode) bool {
		if match(n) {
			found = n
			return false
		}
		return true
	})
	return found
}

// FindAll returns every node for which match returns true.
func FindAll(root *VNode, match func(*VNode) bool) []*VNode {
	var found []*VNode
	Walk(root, func(n *VNode) bool {
		if match(n) {
			found = append(found, n)
		}
		return true
	})
	return found
}

// ByTag matches elements with the given tag.
func ByTag(tag string) func(*VNode) bool {
	return func(n *VNode) bool {
		return n.Kind == KindElement && n.Tag == tag
	}
}

// ByName matches elements whose name attribute equals name.
func ByName(name string) func(*VNode) bool {
	return func(n *VNode) bool {
		return n.Kind == KindElement && n.StringProp("name") == name
	}
}

// ByClass matches elements carrying the given class.
func ByClass(class string) func(*VNode) bool {
	return func(n *VNode) bool {
		return n.Kind == KindElement && n.HasClass(class)
	}
}

// TextContent concatenates the text of node and its descendants.
func TextContent(node *VNode) string {
	var out string
	Walk(node, func(n *VNode) bool {
		if n.Kind == KindText {
			out += n.Text
		}
		return true
	})
	return out
}
