package elem

import (
	"fmt"
	"strings"

	"github.com/beevik/etree"
)

// Indent returns a pretty-printed serialization of c, indented with the
// given number of spaces per level. It is meant for debugging and test
// output, not for serving: the tree is written through an XML writer, so
// the output is normalized compared to Render. Boolean attributes get an
// empty value and Raw content is escaped like regular text.
func Indent(c Child, spaces int) (string, error) {
	doc := etree.NewDocument()
	if err := appendEtree(&doc.Element, c); err != nil {
		return "", err
	}
	doc.Indent(spaces)
	return doc.WriteToString()
}

func appendEtree(parent *etree.Element, c Child) error {
	switch v := c.(type) {
	case nil:
		return nil
	case Text:
		parent.AddChild(etree.NewText(string(v)))
		return nil
	case Raw:
		parent.AddChild(etree.NewText(string(v)))
		return nil
	case Fragment:
		for _, child := range v {
			if err := appendEtree(parent, child); err != nil {
				return err
			}
		}
		return nil
	case *Node:
		if v == nil {
			return nil
		}
		el := parent.CreateElement(v.tag)
		for _, a := range v.attrs {
			if a.Key == "" || strings.ContainsRune(a.Key, ' ') {
				return &InvalidAttributeError{Role: "attribute name", Value: a.Key}
			}
			el.CreateAttr(a.Key, attrString(a.Value))
		}
		for _, child := range v.children {
			if err := appendEtree(el, child); err != nil {
				return err
			}
		}
		return nil
	default:
		return fmt.Errorf("unexpected child type: %T", c)
	}
}
