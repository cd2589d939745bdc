package elem

import (
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strings"

	"golang.org/x/net/html"
)

// Renderer serializes element trees to HTML. The zero value is ready to
// use and renders attributes in lexicographic key order.
type Renderer struct {
	// KeepAttrOrder renders attributes in the order they were set instead
	// of sorting them by key.
	KeepAttrOrder bool

	// Logger configures logging for render diagnostics. If not set,
	// logging is disabled.
	Logger *slog.Logger
}

var defaultRenderer = &Renderer{}

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

// Render writes the HTML serialization of c to w using a default Renderer.
func Render(w io.Writer, c Child) error {
	return defaultRenderer.Render(w, c)
}

// RenderString returns the HTML serialization of c using a default
// Renderer.
func RenderString(c Child) (string, error) {
	return defaultRenderer.RenderString(c)
}

// RenderString returns the HTML serialization of c.
func (r *Renderer) RenderString(c Child) (string, error) {
	var sb strings.Builder
	if err := r.Render(&sb, c); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// Render writes the HTML serialization of c to w. Text is HTML-escaped,
// Raw content is written verbatim and fragments are concatenated in order.
// Rendering is depth-first: if it fails mid-tree, the output of earlier
// siblings has already been written to w.
//
// Rendering does not modify the tree; rendering the same built tree twice
// produces identical output.
func (r *Renderer) Render(w io.Writer, c Child) error {
	switch v := c.(type) {
	case nil:
		return nil
	case Text:
		_, err := io.WriteString(w, html.EscapeString(string(v)))
		return err
	case Raw:
		_, err := io.WriteString(w, string(v))
		return err
	case Fragment:
		for _, child := range v {
			if err := r.Render(w, child); err != nil {
				return err
			}
		}
		return nil
	case *Node:
		return r.renderNode(w, v)
	default:
		return fmt.Errorf("unexpected child type: %T", c)
	}
}

func (r *Renderer) renderNode(w io.Writer, n *Node) error {
	if n == nil {
		return nil
	}

	attrs := n.attrs
	if !r.KeepAttrOrder && len(attrs) > 1 {
		attrs = sortedAttrs(attrs)
	}

	var sb strings.Builder
	sb.WriteByte('<')
	sb.WriteString(n.tag)
	for _, a := range attrs {
		s, err := renderAttr(a)
		if err != nil {
			r.logger().Error("Render attribute", "tag", n.tag, "key", a.Key, "error", err)
			return err
		}
		sb.WriteByte(' ')
		sb.WriteString(s)
	}

	if voidTags[n.tag] {
		sb.WriteString("/>")
		_, err := io.WriteString(w, sb.String())
		return err
	}

	sb.WriteByte('>')
	if _, err := io.WriteString(w, sb.String()); err != nil {
		return err
	}
	for _, child := range n.children {
		if err := r.Render(w, child); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "</"+n.tag+">")
	return err
}

func (r *Renderer) logger() *slog.Logger {
	if r.Logger != nil {
		return r.Logger
	}
	return discardLogger
}

// renderAttr formats a single attribute as `key="value"`. Falsy values
// produce the bare key (the boolean attribute form) and Raw values are
// inserted into the quotes verbatim. The key is re-checked here so trees
// are never serialized with a broken attribute, whatever constructed them.
func renderAttr(a Attr) (string, error) {
	if a.Key == "" || strings.ContainsRune(a.Key, ' ') {
		return "", &InvalidAttributeError{Role: "attribute name", Value: a.Key}
	}

	switch v := a.Value.(type) {
	case Raw:
		return a.Key + `="` + string(v) + `"`, nil
	case string:
		if v == "" {
			return a.Key, nil
		}
		return a.Key + `="` + html.EscapeString(v) + `"`, nil
	case bool, nil:
		return a.Key, nil
	default:
		return "", &InvalidAttributeError{Role: a.Key, Value: fmt.Sprint(v)}
	}
}

// sortedAttrs returns a copy of attrs ordered by key.
func sortedAttrs(attrs []Attr) []Attr {
	out := slices.Clone(attrs)
	slices.SortStableFunc(out, func(a, b Attr) int {
		return strings.Compare(a.Key, b.Key)
	})
	return out
}
