// iter.go — the iteration protocol.
//
// Indexes and Values produce lazy sequences over the backing store. The
// store length is captured when the sequence is created, not re-read per
// step: mutating the Array afterwards does not change how many indices the
// sequence yields, but it does change what each index reads, since lookups
// happen at consumption time. Every operation-layer traversal goes through
// this protocol so all of them share that single-pass snapshot behavior.
package array

import "iter"

// Indexes returns a lazy sequence of the integers 1..N where N is the
// store length at the moment of the call. The returned sequence is
// independent and restartable: ranging over it again yields a fresh cursor.
func (a *Array) Indexes() iter.Seq[int] {
	n := len(a.elems)
	return func(yield func(int) bool) {
		for i := 1; i <= n; i++ {
			if !yield(i) {
				return
			}
		}
	}
}

// Values composes Indexes with a store lookup per index, yielding
// (value, index) pairs. Iteration stops at the first missing index, which
// can happen when the Array shrinks while the sequence is consumed.
func (a *Array) Values() iter.Seq2[Value, int] {
	idx := a.Indexes()
	return func(yield func(Value, int) bool) {
		for i := range idx {
			v, ok := a.Get(i)
			if !ok {
				return
			}
			if !yield(v, i) {
				return
			}
		}
	}
}
