// encode.go — text rendering through the structured-data encoder.
//
// The container's only external collaborator: something that can turn a
// nested structure into text. It is deliberately a one-method interface so
// hosts can plug their own serializer; the default uses encoding/json over
// a Value→Go bridge.
package array

import "encoding/json"

// Encoder serializes a host value to text.
type Encoder interface {
	Encode(v Value) (string, error)
}

// JSONEncoder is the default Encoder. A non-empty Indent switches to
// indented output.
type JSONEncoder struct {
	Indent string
}

func (e JSONEncoder) Encode(v Value) (string, error) {
	g := valueToGo(v)
	var (
		b   []byte
		err error
	)
	if e.Indent != "" {
		b, err = json.MarshalIndent(g, "", e.Indent)
	} else {
		b, err = json.Marshal(g)
	}
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// valueToGo lowers a Value to a JSON-compatible Go graph. Values with no
// structural representation (functions, handles) fall back to their text
// representation, so encoding is total.
func valueToGo(v Value) any {
	switch v.Kind {
	case KNil:
		return nil
	case KBoolean:
		return v.Data.(bool)
	case KNumber:
		return v.Data.(float64)
	case KString:
		return v.Data.(string)
	case KTable:
		xs := v.Data.([]Value)
		out := make([]any, 0, len(xs))
		for _, x := range xs {
			out = append(out, valueToGo(x))
		}
		return out
	case KHandle:
		// Nested containers render recursively, like any other sequence.
		if h := v.Data.(*Handle); h.HandleKind == arrayHandleKind {
			if nested, ok := h.Data.(*Array); ok {
				return valueToGo(nested.ToTable())
			}
		}
		return v.String()
	default:
		return v.String()
	}
}

// ToText serializes the Array's contents through enc. Nested Arrays (as
// array handles or tables) are rendered recursively; elements without a
// structural form appear as their text representation.
func (a *Array) ToText(enc Encoder) (string, error) {
	if enc == nil {
		enc = JSONEncoder{}
	}
	return enc.Encode(a.ToTable())
}

// String renders the Array with the default encoder, falling back to a
// debug form when encoding fails.
func (a *Array) String() string {
	s, err := a.ToText(nil)
	if err != nil {
		return a.ToTable().String()
	}
	return s
}
