// typetag.go — element type constraint and its runtime validator.
//
// A TypeTag is the declared constraint on what every element of an Array
// must be. The set is a closed sum: the host's primitive kinds, the opaque
// handle kind, and the two wildcard escape hatches (any/unknown) which
// disable checking entirely. The tag is fixed at construction and never
// changes for the lifetime of an Array.
package array

import "fmt"

// TypeTag is the closed set of element type constraints.
type TypeTag int

const (
	TagAny TypeTag = iota // wildcard: accept everything
	TagUnknown            // wildcard: same as any, kept distinct for hosts that care
	TagString
	TagBoolean
	TagNumber
	TagFunction
	TagTable
	TagHandle // any opaque engine kind
)

var tagNames = map[TypeTag]string{
	TagAny:      "any",
	TagUnknown:  "unknown",
	TagString:   "string",
	TagBoolean:  "boolean",
	TagNumber:   "number",
	TagFunction: "function",
	TagTable:    "table",
	TagHandle:   "handle",
}

// ParseTypeTag resolves a host type name to its tag. Unrecognized names are
// an error rather than a silent fallback to any.
func ParseTypeTag(name string) (TypeTag, error) {
	for tag, s := range tagNames {
		if s == name {
			return tag, nil
		}
	}
	return TagAny, fmt.Errorf("array: unknown element type %q", name)
}

func (t TypeTag) String() string {
	if s, ok := tagNames[t]; ok {
		return s
	}
	return "unknown"
}

// wildcard reports whether t disables validation.
func (t TypeTag) wildcard() bool { return t == TagAny || t == TagUnknown }

// kind returns the value kind a non-wildcard tag demands.
func (t TypeTag) kind() Kind {
	switch t {
	case TagString:
		return KString
	case TagBoolean:
		return KBoolean
	case TagNumber:
		return KNumber
	case TagFunction:
		return KFunction
	case TagTable:
		return KTable
	case TagHandle:
		return KHandle
	default:
		return KNil
	}
}

// Check validates v against the tag. It is a no-op for the wildcards;
// otherwise a *TypeMismatchError names both the expected and the actual
// type. Pure and synchronous.
func (t TypeTag) Check(v Value) error {
	if t.wildcard() {
		return nil
	}
	if v.Kind != t.kind() {
		return &TypeMismatchError{Want: t.String(), Got: v.TypeName()}
	}
	return nil
}
