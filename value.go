// value.go
//
// Host value model for the container.
//
// The container stores values of an embedded scripting host. Rather than
// depending on a particular engine, it carries its own small tagged value
// type: a Kind discriminant plus a payload whose Go type is fixed per Kind.
// The set of kinds is closed — hosts with richer object models wrap their
// values in a Handle, which stays opaque to the container.
//
// Equality follows the usual host semantics: scalars compare by value,
// tables compare structurally (deep), functions and handles compare by
// identity.
package array

import (
	"fmt"
	"reflect"
	"strconv"
)

// Kind enumerates all runtime kinds a Value may hold.
// The kind determines which Go type Value.Data carries.
type Kind int

const (
	KNil      Kind = iota // nil (no payload)
	KBoolean              // bool
	KNumber               // float64
	KString               // string
	KFunction             // NativeFunc
	KTable                // []Value (a host sequence)
	KHandle               // *Handle (opaque host object)
)

// NativeFunc is the calling convention for host callbacks stored as values
// (comparators, predicates, transforms passed through the dynamic facade).
type NativeFunc func(args ...Value) (Value, error)

// Handle is an opaque, engine-specific payload. The container never looks
// inside Data; HandleKind only names the host-side kind for diagnostics.
type Handle struct {
	HandleKind string
	Data       any
}

// Value is the universal carrier for container elements.
//
// Invariants:
//   - When Kind==KNil, Data is nil.
//   - When Kind==KTable, Data is []Value.
//   - When Kind==KHandle, Data is *Handle.
type Value struct {
	Kind Kind
	Data any
}

// Nil is the singleton nil Value.
var Nil = Value{}

// Primitive constructors.
func Boolean(b bool) Value         { return Value{Kind: KBoolean, Data: b} }
func Number(f float64) Value       { return Value{Kind: KNumber, Data: f} }
func String(s string) Value        { return Value{Kind: KString, Data: s} }
func Function(fn NativeFunc) Value { return Value{Kind: KFunction, Data: fn} }
func Table(xs []Value) Value       { return Value{Kind: KTable, Data: xs} }

// HandleVal wraps an opaque host object.
func HandleVal(kind string, data any) Value {
	return Value{Kind: KHandle, Data: &Handle{HandleKind: kind, Data: data}}
}

// TypeName returns the host-visible runtime type name of v. These are the
// strings the type tag validator compares against.
func (v Value) TypeName() string {
	switch v.Kind {
	case KNil:
		return "nil"
	case KBoolean:
		return "boolean"
	case KNumber:
		return "number"
	case KString:
		return "string"
	case KFunction:
		return "function"
	case KTable:
		return "table"
	case KHandle:
		if h, ok := v.Data.(*Handle); ok && h.HandleKind != "" {
			return h.HandleKind
		}
		return "handle"
	default:
		return "unknown"
	}
}

// Equal reports host equality of two values: scalars by value, tables
// structurally, functions and handles by identity.
func (v Value) Equal(o Value) bool {
	if v.Kind != o.Kind {
		return false
	}
	switch v.Kind {
	case KNil:
		return true
	case KBoolean:
		return v.Data.(bool) == o.Data.(bool)
	case KNumber:
		return v.Data.(float64) == o.Data.(float64)
	case KString:
		return v.Data.(string) == o.Data.(string)
	case KTable:
		a := v.Data.([]Value)
		b := o.Data.([]Value)
		if len(a) != len(b) {
			return false
		}
		for i := range a {
			if !a[i].Equal(b[i]) {
				return false
			}
		}
		return true
	case KFunction:
		// Function values have no structural identity; compare code pointers.
		return reflect.ValueOf(v.Data).Pointer() == reflect.ValueOf(o.Data).Pointer()
	case KHandle:
		return v.Data.(*Handle) == o.Data.(*Handle)
	default:
		return false
	}
}

// String renders a human-friendly debug representation.
func (v Value) String() string {
	switch v.Kind {
	case KNil:
		return "nil"
	case KBoolean:
		return strconv.FormatBool(v.Data.(bool))
	case KNumber:
		return strconv.FormatFloat(v.Data.(float64), 'g', -1, 64)
	case KString:
		return fmt.Sprintf("%q", v.Data.(string))
	case KTable:
		return fmt.Sprintf("<table len=%d>", len(v.Data.([]Value)))
	case KFunction:
		return "<function>"
	case KHandle:
		return "<" + v.TypeName() + ">"
	default:
		return "<unknown>"
	}
}
