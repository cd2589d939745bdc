package elem

import (
	"regexp"
	"strings"
)

// The shorthand grammar: class and id tokens may appear in any order and
// repeat; named attributes are bracket groups with an optionally quoted
// value.
var (
	rgxClassID   = regexp.MustCompile(`(?i)([.#]-?[_a-z]+[_a-z0-9-]*)`)
	rgxNamedAttr = regexp.MustCompile(`(?i)\[([_a-z0-9-]+)=["']?([\w\s]+)["']?\]`)
)

// shorthandResult is the transient output of parseShorthand, consumed by
// Node.With.
type shorthandResult struct {
	id      string
	classes []string
	attrs   []Attr
}

// parseShorthand converts a CSS-selector-like shortcut string such as
// ".thick#main[data-x=1]" into the attribute set it denotes. Classes
// accumulate in scan order (duplicates kept), the first id wins and the
// first occurrence of a named attribute wins. An id given as [id=...] is
// used only if no #id token was present.
//
// The bracket and quote balance checks are a structural sanity check, not
// a grammar validation: balanced but otherwise malformed input is not
// rejected, unrecognized tokens are skipped.
func parseShorthand(s string) (*shorthandResult, error) {
	res := &shorthandResult{}
	if s == "" {
		return res, nil
	}

	if strings.Count(s, "[") != strings.Count(s, "]") {
		return nil, &MismatchedGroupingError{Input: s, Group: "brackets"}
	}
	if strings.Count(s, `"`)%2 != 0 || strings.Count(s, `'`)%2 != 0 {
		return nil, &MismatchedGroupingError{Input: s, Group: "quotes"}
	}

	for _, m := range rgxClassID.FindAllString(s, -1) {
		switch m[0] {
		case '#':
			if res.id == "" {
				res.id = m[1:]
			}
		case '.':
			res.classes = append(res.classes, m[1:])
		}
	}

	seen := map[string]bool{}
	for _, m := range rgxNamedAttr.FindAllStringSubmatch(s, -1) {
		key, value := m[1], m[2]
		switch {
		case key == "class" || seen[key]:
			// Classes only come from "." tokens.
		case key == "id":
			if res.id == "" {
				res.id = value
			}
		default:
			seen[key] = true
			res.attrs = append(res.attrs, Attr{Key: key, Value: value})
		}
	}

	return res, nil
}
