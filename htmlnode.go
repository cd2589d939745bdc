package elem

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"
)

// HTMLNode converts the tree rooted at c into a golang.org/x/net/html node
// tree, for interop with code that walks or transforms html.Node values.
// The result is a DocumentNode whose children are the converted tree;
// fragments become runs of siblings.
//
// Text maps to html.TextNode and Raw to html.RawNode, so html.Render emits
// raw content verbatim. Attribute values are carried unescaped in
// html.Attribute (html.Render escapes them on output, including Raw
// values); boolean attributes become empty-valued ones. Attributes keep
// their insertion order.
func HTMLNode(c Child) (*html.Node, error) {
	doc := &html.Node{Type: html.DocumentNode}
	if err := appendHTMLNode(doc, c); err != nil {
		return nil, err
	}
	return doc, nil
}

func appendHTMLNode(parent *html.Node, c Child) error {
	switch v := c.(type) {
	case nil:
		return nil
	case Text:
		parent.AppendChild(&html.Node{Type: html.TextNode, Data: string(v)})
		return nil
	case Raw:
		parent.AppendChild(&html.Node{Type: html.RawNode, Data: string(v)})
		return nil
	case Fragment:
		for _, child := range v {
			if err := appendHTMLNode(parent, child); err != nil {
				return err
			}
		}
		return nil
	case *Node:
		if v == nil {
			return nil
		}
		el := &html.Node{Type: html.ElementNode, Data: v.tag}
		for _, a := range v.attrs {
			if a.Key == "" || strings.ContainsRune(a.Key, ' ') {
				return &InvalidAttributeError{Role: "attribute name", Value: a.Key}
			}
			el.Attr = append(el.Attr, html.Attribute{Key: a.Key, Val: attrString(a.Value)})
		}
		parent.AppendChild(el)
		for _, child := range v.children {
			if err := appendHTMLNode(el, child); err != nil {
				return err
			}
		}
		return nil
	default:
		return fmt.Errorf("unexpected child type: %T", c)
	}
}
