package elem

import (
	"fmt"
	"strings"

	g "maragu.dev/gomponents"
)

// Gomponents lowers the tree rooted at c into a maragu.dev/gomponents
// node, so trees built with this package can be spliced into gomponents
// views. Boolean attributes map to value-less gomponents attributes.
// Escaping of text and attribute values in the lowered tree is up to
// gomponents; Raw attribute values pass their content through as an
// ordinary attribute value.
func Gomponents(c Child) (g.Node, error) {
	switch v := c.(type) {
	case nil:
		return nil, nil
	case Text:
		return g.Text(string(v)), nil
	case Raw:
		return g.Raw(string(v)), nil
	case Fragment:
		group := make([]g.Node, 0, len(v))
		for _, child := range v {
			n, err := Gomponents(child)
			if err != nil {
				return nil, err
			}
			if n != nil {
				group = append(group, n)
			}
		}
		return g.Group(group), nil
	case *Node:
		if v == nil {
			return nil, nil
		}
		args := make([]g.Node, 0, len(v.attrs)+len(v.children))
		for _, a := range v.attrs {
			if a.Key == "" || strings.ContainsRune(a.Key, ' ') {
				return nil, &InvalidAttributeError{Role: "attribute name", Value: a.Key}
			}
			switch t := a.Value.(type) {
			case string:
				if t == "" {
					args = append(args, g.Attr(a.Key))
				} else {
					args = append(args, g.Attr(a.Key, t))
				}
			case Raw:
				args = append(args, g.Attr(a.Key, string(t)))
			case bool, nil:
				args = append(args, g.Attr(a.Key))
			default:
				return nil, &InvalidAttributeError{Role: a.Key, Value: fmt.Sprint(t)}
			}
		}
		for _, child := range v.children {
			n, err := Gomponents(child)
			if err != nil {
				return nil, err
			}
			if n != nil {
				args = append(args, n)
			}
		}
		return g.El(v.tag, args...), nil
	default:
		return nil, fmt.Errorf("unexpected child type: %T", c)
	}
}
