// sort.go — partition-exchange sort over the backing store.
//
// Plain quicksort with Lomuto partitioning: the pivot is the last element
// of the current sub-range, and elements for which less(elem, pivot) holds
// end up before the pivot's final position. Not stable.
package array

// Less orders two values for sorting. It must be a strict weak ordering.
type Less func(a, b Value) bool

// DefaultLess is the ascending host ordering used when no comparator is
// given: nil < false < true < numbers (low to high) < strings (lexical) <
// everything else (left where it lies).
func DefaultLess(a, b Value) bool {
	ca, cb := sortCategory(a), sortCategory(b)
	if ca != cb {
		return ca < cb
	}
	switch ca {
	case 3:
		return a.Data.(float64) < b.Data.(float64)
	case 4:
		return a.Data.(string) < b.Data.(string)
	default:
		return false
	}
}

// 0=nil, 1=false, 2=true, 3=number, 4=string, 5=other
func sortCategory(v Value) int {
	switch v.Kind {
	case KNil:
		return 0
	case KBoolean:
		if v.Data.(bool) {
			return 2
		}
		return 1
	case KNumber:
		return 3
	case KString:
		return 4
	default:
		return 5
	}
}

// SortMutable sorts the backing store in place. A nil comparator means
// DefaultLess.
func (a *Array) SortMutable(less Less) {
	if less == nil {
		less = DefaultLess
	}
	quicksort(a.elems, 0, len(a.elems)-1, less)
}

// Sort returns a new Array containing this Array's elements in sorted
// order. The backing store is copied before partitioning, so the receiver
// is never touched — the two Arrays share no storage.
func (a *Array) Sort(less Less) *Array {
	cp := make([]Value, len(a.elems))
	copy(cp, a.elems)
	out := &Array{elemType: a.elemType, elems: cp}
	out.SortMutable(less)
	return out
}

func quicksort(xs []Value, lo, hi int, less Less) {
	if lo >= hi {
		return
	}
	p := partition(xs, lo, hi, less)
	quicksort(xs, lo, p-1, less)
	quicksort(xs, p+1, hi, less)
}

// Lomuto partition: pivot is xs[hi].
func partition(xs []Value, lo, hi int, less Less) int {
	pivot := xs[hi]
	i := lo
	for j := lo; j < hi; j++ {
		if less(xs[j], pivot) {
			xs[i], xs[j] = xs[j], xs[i]
			i++
		}
	}
	xs[i], xs[hi] = xs[hi], xs[i]
	return i
}
