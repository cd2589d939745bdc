// Package elem builds HTML element trees from code and renders them to
// strings with automatic escaping.
//
// Elements are created with New, get their attributes through With (which
// understands a CSS-selector-like shorthand such as ".thick#main[data-x=1]")
// and their children through Add. The resulting tree is rendered with
// Render or RenderString:
//
//	list, _ := elem.New("ul").Add(
//		elem.Must(elem.New("li").Add(elem.Text("One"))),
//		elem.Must(elem.New("li").Add(elem.Text("Two"))),
//	)
//	s, _ := elem.RenderString(list) // <ul><li>One</li><li>Two</li></ul>
//
// Text content and attribute values are HTML-escaped; Raw marks a string
// as already escaped. Children can be attached to an element at most once,
// and never to a void element such as <br> or <img>.
package elem

import (
	"fmt"
	"iter"
	"slices"
	"strings"
)

// voidTags are elements that cannot have children and render self-closed.
var voidTags = map[string]bool{
	"area":   true,
	"base":   true,
	"br":     true,
	"col":    true,
	"embed":  true,
	"hr":     true,
	"img":    true,
	"input":  true,
	"keygen": true,
	"link":   true,
	"meta":   true,
	"param":  true,
	"source": true,
	"track":  true,
	"wbr":    true,
}

// IsVoid reports whether tag is a void element.
func IsVoid(tag string) bool {
	return voidTags[tag]
}

// Child is a value that can appear in an element tree: Text, Raw, Fragment
// or *Node. A nil Child renders as the empty string.
type Child interface {
	isChild()
}

// Text is a plain text node. It is HTML-escaped when rendered.
type Text string

// Raw is a string emitted verbatim, bypassing escaping. It can be used
// both as a child and as an attribute value.
type Raw string

// Fragment renders as the concatenation of its elements, without a
// wrapping tag.
type Fragment []Child

func (Text) isChild()     {}
func (Raw) isChild()      {}
func (Fragment) isChild() {}
func (*Node) isChild()    {}

// Collect materializes a lazy child sequence into a Fragment. The sequence
// is consumed once, so the resulting tree renders the same on every pass.
func Collect(seq iter.Seq[Child]) Fragment {
	return Fragment(slices.Collect(seq))
}

// Attr is a single element attribute. Value must be a string, Raw or bool.
// Empty strings and false are dropped at merge time; true renders as a
// bare attribute (`disabled` rather than `disabled="..."`).
type Attr struct {
	Key   string
	Value any
}

// Node represents one HTML element: a tag, its attributes and, once
// attached, its children.
type Node struct {
	tag      string
	attrs    []Attr
	children []Child
	assigned bool
}

// New returns a bare element with the given tag and no attributes. Any tag
// name is accepted; the void-element set only affects child attachment and
// rendering.
func New(tag string) *Node {
	return &Node{tag: tag}
}

// Must returns n and panics if err is non-nil. It allows inlining With and
// Add calls when the inputs are known to be valid.
func Must(n *Node, err error) *Node {
	if err != nil {
		panic(err)
	}
	return n
}

// Tag returns the element name.
func (n *Node) Tag() string {
	return n.tag
}

// With returns a new element with the same tag and a merged attribute set;
// the receiver is not modified and the new element has no children.
//
// shortcut is a CSS-selector-like string setting classes, an id and named
// attributes, e.g. ".thick#main[data-x=1]". attrs are explicit attributes;
// their keys are normalized so identifier-safe names map to HTML ones:
// surrounding underscores are trimmed and inner underscores become hyphens
// ("data_x" becomes "data-x"). If the same key is given twice, the last
// value wins.
//
// Shorthand classes come first in the merged class list, followed by the
// space-split explicit class value. For any other key present in both,
// including id, the shorthand value overwrites the explicit one.
//
// Attributes whose final value is falsy (empty string, false, nil) are
// dropped and will not be rendered.
func (n *Node) With(shortcut string, attrs ...Attr) (*Node, error) {
	merged := make([]Attr, 0, len(attrs)+4)
	index := map[string]int{} // key -> position in merged

	set := func(key string, value any) {
		if i, ok := index[key]; ok {
			merged[i].Value = value
			return
		}
		index[key] = len(merged)
		merged = append(merged, Attr{Key: key, Value: value})
	}

	for _, a := range attrs {
		key := normalizeKey(a.Key)
		if key == "" || strings.ContainsRune(key, ' ') {
			return nil, &InvalidAttributeError{Role: "attribute name", Value: a.Key}
		}
		switch a.Value.(type) {
		case string, Raw, bool, nil:
		default:
			return nil, &InvalidAttributeError{Role: key, Value: fmt.Sprint(a.Value)}
		}
		set(key, a.Value)
	}

	sc, err := parseShorthand(shortcut)
	if err != nil {
		return nil, err
	}

	// Combine the shorthand and the explicit class lists, shorthand first.
	classes := slices.Clone(sc.classes)
	if i, ok := index["class"]; ok {
		classes = append(classes, strings.Split(attrString(merged[i].Value), " ")...)
	}
	var kept []string
	for _, c := range classes {
		if c == "" {
			continue
		}
		if err := checkToken(c, "class"); err != nil {
			return nil, err
		}
		kept = append(kept, c)
	}

	// Shorthand attributes overwrite explicit ones for the same key.
	for _, a := range sc.attrs {
		set(a.Key, a.Value)
	}
	if sc.id != "" {
		set("id", sc.id)
	}
	set("class", strings.Join(kept, " "))

	if i, ok := index["id"]; ok {
		if id := attrString(merged[i].Value); id != "" {
			if err := checkToken(id, "id"); err != nil {
				return nil, err
			}
		}
	}

	out := make([]Attr, 0, len(merged))
	for _, a := range merged {
		if isFalsy(a.Value) {
			continue
		}
		out = append(out, a)
	}

	return &Node{tag: n.tag, attrs: out}, nil
}

// Add attaches children to the element and returns it. Children can be
// attached at most once; a second call returns ErrChildrenAssigned even if
// the first call attached nothing. Attaching to a void element returns
// ErrVoidElement.
func (n *Node) Add(children ...Child) (*Node, error) {
	if n.assigned {
		return nil, fmt.Errorf("<%s>: %w", n.tag, ErrChildrenAssigned)
	}
	if voidTags[n.tag] {
		return nil, fmt.Errorf("<%s>: %w", n.tag, ErrVoidElement)
	}
	n.children = slices.Clone(children)
	n.assigned = true
	return n, nil
}

// normalizeKey maps an identifier-safe attribute name to its HTML form.
func normalizeKey(k string) string {
	return strings.ReplaceAll(strings.Trim(k, "_"), "_", "-")
}

// checkToken rejects class and id values that would break the rendered
// attribute: spaces, commas and periods.
func checkToken(v, role string) error {
	if strings.ContainsAny(v, " .,") {
		return &InvalidAttributeError{Role: role, Value: v}
	}
	return nil
}

// attrString returns the string form of an attribute value.
func attrString(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case Raw:
		return string(t)
	case bool, nil:
		return ""
	default:
		return fmt.Sprint(t)
	}
}

// isFalsy reports whether an attribute value should be dropped from the
// merged set. Raw values are always kept.
func isFalsy(v any) bool {
	switch t := v.(type) {
	case nil:
		return true
	case string:
		return t == ""
	case bool:
		return !t
	}
	return false
}
