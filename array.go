// Package array implements a runtime-type-checked dynamic array for
// embedded scripting hosts.
//
// An Array owns a dense, 1-based, insertion-ordered sequence of host
// values and enforces an optional element type constraint on every write.
// On top of the store sit a lazy iteration protocol (Indexes/Values), an
// in-place quicksort, and a functional operation layer (Map/Filter/Reduce
// and friends). The Facade type additionally presents the container as an
// index-addressable object with deferred, cooperatively scheduled writes —
// the shape a dynamic host expects.
//
// The zero Array is not useful; construct with New, NewWith or FromValue.
package array

// Array is the container. It owns its backing store outright: the elems
// field is the single store shared by the operation layer and any Facade
// wrapping this Array — never copied implicitly.
type Array struct {
	elemType TypeTag
	elems    []Value
}

// New returns an empty Array constrained to tag.
func New(tag TypeTag) *Array {
	return &Array{elemType: tag}
}

// NewWith returns an Array constrained to tag and seeded with preset.
// Every preset element is validated before the Array is observable; a
// single invalid element aborts construction entirely. The preset elements
// are copied by reference (element values are shallow — nested tables and
// handles alias the caller's).
func NewWith(tag TypeTag, preset []Value) (*Array, error) {
	for _, v := range preset {
		if err := tag.Check(v); err != nil {
			return nil, err
		}
	}
	elems := make([]Value, len(preset))
	copy(elems, preset)
	return &Array{elemType: tag, elems: elems}, nil
}

// FromValue builds an Array from a host value. The preset must be
// sequence-shaped (a table); anything else is an *InvalidPresetError.
func FromValue(tag TypeTag, preset Value) (*Array, error) {
	if preset.Kind == KNil {
		return New(tag), nil
	}
	if preset.Kind != KTable {
		return nil, &InvalidPresetError{Got: preset.TypeName()}
	}
	return NewWith(tag, preset.Data.([]Value))
}

// ElemType returns the declared element type, fixed at construction.
func (a *Array) ElemType() TypeTag { return a.elemType }

// Len returns the current element count.
func (a *Array) Len() int { return len(a.elems) }

// Get returns the element at the 1-based index i, or false if absent.
func (a *Array) Get(i int) (Value, bool) {
	if i < 1 || i > len(a.elems) {
		return Nil, false
	}
	return a.elems[i-1], true
}

// Set validates v and stores it at the 1-based index i, which must address
// an existing element.
func (a *Array) Set(i int, v Value) error {
	if i < 1 || i > len(a.elems) {
		return &IndexOutOfRangeError{Index: i, Length: len(a.elems)}
	}
	if err := a.elemType.Check(v); err != nil {
		return err
	}
	a.elems[i-1] = v
	return nil
}

// First returns the first element, or false if the Array is empty.
func (a *Array) First() (Value, bool) {
	if len(a.elems) == 0 {
		return Nil, false
	}
	return a.elems[0], true
}

// Last returns the last element, or false if the Array is empty.
func (a *Array) Last() (Value, bool) {
	if len(a.elems) == 0 {
		return Nil, false
	}
	return a.elems[len(a.elems)-1], true
}

// Push appends the given values in argument order. Validation is
// all-or-nothing: every argument is checked before any is appended, so a
// mismatch leaves the store unchanged.
func (a *Array) Push(vs ...Value) error {
	for _, v := range vs {
		if err := a.elemType.Check(v); err != nil {
			return err
		}
	}
	a.elems = append(a.elems, vs...)
	return nil
}

// Unshift inserts the given values at position 1, one at a time in argument
// order. Sequential insertion at the head reverses the arguments relative
// to a bulk prepend: Unshift(a, b, c) on [x] yields [c, b, a, x]. That is
// the contract. Validation is all-or-nothing, as with Push.
func (a *Array) Unshift(vs ...Value) error {
	for _, v := range vs {
		if err := a.elemType.Check(v); err != nil {
			return err
		}
	}
	for _, v := range vs {
		a.elems = append(a.elems, Nil)
		copy(a.elems[1:], a.elems)
		a.elems[0] = v
	}
	return nil
}

// Insert validates v and places it at the 1-based index, shifting
// subsequent elements right. Valid indices are 1..Len()+1; anything else is
// an *IndexOutOfRangeError.
func (a *Array) Insert(v Value, index int) error {
	if index < 1 || index > len(a.elems)+1 {
		return &IndexOutOfRangeError{Index: index, Length: len(a.elems)}
	}
	if err := a.elemType.Check(v); err != nil {
		return err
	}
	a.elems = append(a.elems, Nil)
	copy(a.elems[index:], a.elems[index-1:])
	a.elems[index-1] = v
	return nil
}

// Pop removes and returns the last element, or false if empty.
func (a *Array) Pop() (Value, bool) {
	n := len(a.elems)
	if n == 0 {
		return Nil, false
	}
	v := a.elems[n-1]
	a.elems[n-1] = Nil // drop the reference
	a.elems = a.elems[:n-1]
	return v, true
}

// Shift removes and returns the first element, or false if empty.
func (a *Array) Shift() (Value, bool) {
	if len(a.elems) == 0 {
		return Nil, false
	}
	v := a.elems[0]
	copy(a.elems, a.elems[1:])
	a.elems[len(a.elems)-1] = Nil
	a.elems = a.elems[:len(a.elems)-1]
	return v, true
}

// Remove deletes and returns the element at the 1-based index. An index
// outside 1..Len() is an *IndexOutOfRangeError, never a silent no-op.
func (a *Array) Remove(index int) (Value, error) {
	if index < 1 || index > len(a.elems) {
		return Nil, &IndexOutOfRangeError{Index: index, Length: len(a.elems)}
	}
	v := a.elems[index-1]
	copy(a.elems[index-1:], a.elems[index:])
	a.elems[len(a.elems)-1] = Nil
	a.elems = a.elems[:len(a.elems)-1]
	return v, nil
}

// RemoveValue deletes the first element equal to v, located via IndexOf.
// A value that is not present is a *ValueNotFoundError.
func (a *Array) RemoveValue(v Value) error {
	i, ok := a.IndexOf(v)
	if !ok {
		return &ValueNotFoundError{Value: v}
	}
	_, err := a.Remove(i)
	return err
}

// Has reports whether some element equals v under host equality.
func (a *Array) Has(v Value) bool {
	_, ok := a.IndexOf(v)
	return ok
}

// IndexOf returns the 1-based index of the first element equal to v, or
// false if none. Linear scan over the iteration protocol.
func (a *Array) IndexOf(v Value) (int, bool) {
	for e, i := range a.Values() {
		if e.Equal(v) {
			return i, true
		}
	}
	return 0, false
}

// Combine builds a new Array with this Array's element type, seeded with a
// copy of its elements, then appends every element of each other Array in
// argument order. No input is mutated. Elements of the others are validated
// against the receiver's element type.
func (a *Array) Combine(others ...*Array) (*Array, error) {
	out := New(a.elemType)
	out.elems = make([]Value, len(a.elems))
	copy(out.elems, a.elems)
	for _, o := range others {
		if err := out.Push(o.elems...); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// ToTable returns the store as a table value. The slice is a copy; the
// element values themselves are shared, per host reference semantics.
func (a *Array) ToTable() Value {
	return Table(a.Unpack())
}

// Unpack spreads the store as a positional argument list.
func (a *Array) Unpack() []Value {
	out := make([]Value, len(a.elems))
	copy(out, a.elems)
	return out
}
