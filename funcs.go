// funcs.go — the functional operation layer.
//
// Everything here traverses through the iteration protocol, so each
// operation observes a single-pass snapshot of the index range taken when
// it starts. Callbacks receive (value, index) with 1-based indices.
package array

// Map returns a new Array whose elements are transform(value, index) for
// each element, in order. The result's element type is any: a transform can
// produce whatever it likes.
func (a *Array) Map(transform func(v Value, i int) Value) *Array {
	out := New(TagAny)
	out.elems = make([]Value, 0, len(a.elems))
	for v, i := range a.Values() {
		out.elems = append(out.elems, transform(v, i))
	}
	return out
}

// Filter returns a new Array, with the same element type, of the elements
// for which pred holds. Order is preserved.
func (a *Array) Filter(pred func(v Value, i int) bool) *Array {
	out := New(a.elemType)
	for v, i := range a.Values() {
		if pred(v, i) {
			out.elems = append(out.elems, v)
		}
	}
	return out
}

// Find returns the first element for which pred holds, or false if none.
func (a *Array) Find(pred func(v Value, i int) bool) (Value, bool) {
	for v, i := range a.Values() {
		if pred(v, i) {
			return v, true
		}
	}
	return Nil, false
}

// FindAndRemove removes the first element for which pred holds and returns
// it. When nothing matches it is a no-op, reported through the boolean.
func (a *Array) FindAndRemove(pred func(v Value, i int) bool) (Value, bool) {
	v, ok := a.Find(pred)
	if !ok {
		return Nil, false
	}
	if err := a.RemoveValue(v); err != nil {
		return Nil, false
	}
	return v, true
}

// Reduce left-folds the elements with accumulate. With an initial value the
// fold starts at the first element; without one the first element seeds the
// accumulator and folding starts from the second. Reducing an empty Array
// with no initial value is ErrEmptyReduce.
func (a *Array) Reduce(accumulate func(acc, v Value) Value, initial ...Value) (Value, error) {
	var acc Value
	seeded := false
	if len(initial) > 0 {
		acc = initial[0]
		seeded = true
	}
	for v := range a.Values() {
		if !seeded {
			acc = v
			seeded = true
			continue
		}
		acc = accumulate(acc, v)
	}
	if !seeded {
		return Nil, ErrEmptyReduce
	}
	return acc, nil
}

// Every reports whether pred holds for all elements. An empty Array yields
// false — a deliberate deviation from vacuous truth, matching Some, so the
// two quantifiers agree on "there is nothing here".
func (a *Array) Every(pred func(v Value, i int) bool) bool {
	if len(a.elems) == 0 {
		return false
	}
	for v, i := range a.Values() {
		if !pred(v, i) {
			return false
		}
	}
	return true
}

// Some reports whether pred holds for at least one element. False on an
// empty Array.
func (a *Array) Some(pred func(v Value, i int) bool) bool {
	for v, i := range a.Values() {
		if pred(v, i) {
			return true
		}
	}
	return false
}

// Truncate returns a new Array of the leading elements, stopping when the
// 1-based index reaches count: the result holds count-1 elements, so
// Truncate(3) of [10,20,30,40] is [10,20]. A count that the index never
// reaches (count < 1 or count > Len()) copies everything. The off-by-one is
// the contract; callers wanting exactly n elements pass n+1.
func (a *Array) Truncate(count int) *Array {
	out := New(a.elemType)
	for v, i := range a.Values() {
		if i == count {
			break
		}
		out.elems = append(out.elems, v)
	}
	return out
}

// ForEach applies fn to every (value, index) pair, for side effects only.
func (a *Array) ForEach(fn func(v Value, i int)) {
	for v, i := range a.Values() {
		fn(v, i)
	}
}
