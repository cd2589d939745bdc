package elem

import (
	"errors"
	"fmt"
)

// ErrChildrenAssigned is returned by Node.Add when the element already has
// children. Reattaching would silently discard the first set, so it is
// rejected instead.
var ErrChildrenAssigned = errors.New("children already assigned")

// ErrVoidElement is returned by Node.Add for elements that cannot have
// children, such as <br> or <img>.
var ErrVoidElement = errors.New("void element cannot have children")

// InvalidAttributeError reports a malformed attribute name, a class or id
// token with illegal characters, or an unsupported attribute value.
type InvalidAttributeError struct {
	Role  string // what the value was used as: "class", "id", "attribute name" or an attribute key
	Value string
}

func (e *InvalidAttributeError) Error() string {
	return fmt.Sprintf("%q is an invalid %s value", e.Value, e.Role)
}

// MismatchedGroupingError reports a shorthand string whose brackets or
// quotes do not pair up.
type MismatchedGroupingError struct {
	Input string
	Group string // "brackets" or "quotes"
}

func (e *MismatchedGroupingError) Error() string {
	return fmt.Sprintf("mismatched %s in shorthand %q", e.Group, e.Input)
}
