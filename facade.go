// facade.go — the dynamic host-facing surface.
//
// A Facade presents one Array the way a dynamic scripting host expects an
// object to behave: integer keys read the store, string keys dispatch to
// operation-layer methods, and writes are intercepted — each assignment is
// queued on the scheduler as its own validate-then-mutate unit of work
// rather than running inline. Immediately after Set returns, a synchronous
// Get may still observe the old value; Flush is the yield point that makes
// queued writes visible.
//
// Facade and Array share one backing store. There is never a hidden copy.
package array

import (
	"fmt"
	"iter"
	"sync"
)

// arrayHandleKind is the handle kind used to pass Arrays through Values.
const arrayHandleKind = "array"

// WrapArray boxes an Array as an opaque handle value, the form in which
// derived containers travel through the dynamic surface.
func WrapArray(a *Array) Value { return HandleVal(arrayHandleKind, a) }

// AsArray unboxes an array handle.
func AsArray(v Value) (*Array, bool) {
	if v.Kind != KHandle {
		return nil, false
	}
	h, ok := v.Data.(*Handle)
	if !ok || h.HandleKind != arrayHandleKind {
		return nil, false
	}
	a, ok := h.Data.(*Array)
	if !ok {
		return nil, false
	}
	return a, true
}

// Facade wraps an Array with intercepted access.
type Facade struct {
	arr   *Array
	sched *Scheduler
	enc   Encoder
	owned bool // we started the scheduler and must close it

	mu   sync.Mutex
	wErr error // first error from a failed deferred write
}

// NewFacade wraps a. A nil scheduler means the Facade runs its own (closed
// by Close); a nil encoder means the JSON default.
func NewFacade(a *Array, sched *Scheduler, enc Encoder) *Facade {
	owned := false
	if sched == nil {
		sched = NewScheduler()
		owned = true
	}
	if enc == nil {
		enc = JSONEncoder{}
	}
	return &Facade{arr: a, sched: sched, enc: enc, owned: owned}
}

// Array returns the wrapped container — the same store, not a copy.
func (f *Facade) Array() *Array { return f.arr }

// Len reports the current store length.
func (f *Facade) Len() int { return f.arr.Len() }

// Get reads the element at the 1-based index i, or false if absent.
func (f *Facade) Get(i int) (Value, bool) { return f.arr.Get(i) }

// Set schedules a write of v to index i. The call returns once the unit is
// queued; validation and the store mutation run later, on the scheduler.
// A validation failure fails that unit of work, not the caller — it is
// recorded and readable through Err.
func (f *Facade) Set(i int, v Value) {
	f.sched.Go(func() {
		if err := f.arr.Set(i, v); err != nil {
			f.mu.Lock()
			if f.wErr == nil {
				f.wErr = err
			}
			f.mu.Unlock()
		}
	})
}

// Err returns and clears the first error produced by a failed deferred
// write since the last call.
func (f *Facade) Err() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	err := f.wErr
	f.wErr = nil
	return err
}

// Flush waits for every write queued so far to run.
func (f *Facade) Flush() { f.sched.Drain() }

// Close flushes and, when the Facade owns its scheduler, shuts it down.
func (f *Facade) Close() {
	if f.owned {
		f.sched.Close()
		return
	}
	f.sched.Drain()
}

// String renders the wrapped Array through the Facade's encoder.
func (f *Facade) String() string {
	s, err := f.arr.ToText(f.enc)
	if err != nil {
		return f.arr.ToTable().String()
	}
	return s
}

// Invoke dispatches a string key to the corresponding operation-layer
// method, the way the host would resolve container.name. Arguments and
// results cross the boundary as Values: indices are numbers, callbacks are
// function values called as fn(value, index), derived containers come back
// as array handles. Absent results are nil values, never errors.
func (f *Facade) Invoke(name string, args ...Value) (Value, error) {
	a := f.arr
	switch name {
	case "first":
		return orNil(a.First()), nil
	case "last":
		return orNil(a.Last()), nil
	case "push":
		return Nil, a.Push(args...)
	case "unshift":
		return Nil, a.Unshift(args...)
	case "insert":
		if len(args) != 2 {
			return Nil, fmt.Errorf("array: insert wants (value, index), got %d args", len(args))
		}
		i, err := argIndex(args[1])
		if err != nil {
			return Nil, err
		}
		return Nil, a.Insert(args[0], i)
	case "pop":
		return orNil(a.Pop()), nil
	case "shift":
		return orNil(a.Shift()), nil
	case "remove":
		i, err := argIndex(arg(args, 0))
		if err != nil {
			return Nil, err
		}
		return a.Remove(i)
	case "removeValue":
		return Nil, a.RemoveValue(arg(args, 0))
	case "has":
		return Boolean(a.Has(arg(args, 0))), nil
	case "indexOf":
		if i, ok := a.IndexOf(arg(args, 0)); ok {
			return Number(float64(i)), nil
		}
		return Nil, nil
	case "combine":
		others, err := argArrays(args)
		if err != nil {
			return Nil, err
		}
		out, err := a.Combine(others...)
		if err != nil {
			return Nil, err
		}
		return WrapArray(out), nil
	case "sort":
		less, err := argLess(args)
		if err != nil {
			return Nil, err
		}
		return WrapArray(a.Sort(less)), nil
	case "sortMutable":
		less, err := argLess(args)
		if err != nil {
			return Nil, err
		}
		a.SortMutable(less)
		return Nil, nil
	case "map":
		fn, err := argFunc(arg(args, 0))
		if err != nil {
			return Nil, err
		}
		var cbErr error
		out := a.Map(func(v Value, i int) Value {
			r, err := fn(v, Number(float64(i)))
			if err != nil && cbErr == nil {
				cbErr = err
			}
			return r
		})
		if cbErr != nil {
			return Nil, cbErr
		}
		return WrapArray(out), nil
	case "filter":
		pred, err := argPred(arg(args, 0))
		if err != nil {
			return Nil, err
		}
		return WrapArray(a.Filter(pred)), nil
	case "find":
		pred, err := argPred(arg(args, 0))
		if err != nil {
			return Nil, err
		}
		return orNil(a.Find(pred)), nil
	case "findAndRemove":
		pred, err := argPred(arg(args, 0))
		if err != nil {
			return Nil, err
		}
		return orNil(a.FindAndRemove(pred)), nil
	case "reduce":
		fn, err := argFunc(arg(args, 0))
		if err != nil {
			return Nil, err
		}
		var cbErr error
		acc := func(acc, v Value) Value {
			r, err := fn(acc, v)
			if err != nil && cbErr == nil {
				cbErr = err
			}
			return r
		}
		var out Value
		if len(args) > 1 {
			out, err = a.Reduce(acc, args[1])
		} else {
			out, err = a.Reduce(acc)
		}
		if cbErr != nil {
			return Nil, cbErr
		}
		return out, err
	case "every":
		pred, err := argPred(arg(args, 0))
		if err != nil {
			return Nil, err
		}
		return Boolean(a.Every(pred)), nil
	case "some":
		pred, err := argPred(arg(args, 0))
		if err != nil {
			return Nil, err
		}
		return Boolean(a.Some(pred)), nil
	case "truncate":
		i, err := argIndex(arg(args, 0))
		if err != nil {
			return Nil, err
		}
		return WrapArray(a.Truncate(i)), nil
	case "forEach":
		fn, err := argFunc(arg(args, 0))
		if err != nil {
			return Nil, err
		}
		var cbErr error
		a.ForEach(func(v Value, i int) {
			if _, err := fn(v, Number(float64(i))); err != nil && cbErr == nil {
				cbErr = err
			}
		})
		return Nil, cbErr
	case "indexes":
		return stepperIndexes(a), nil
	case "values":
		return stepperValues(a), nil
	case "toTable":
		return a.ToTable(), nil
	case "toString":
		return String(f.String()), nil
	case "unpack":
		return Table(a.Unpack()), nil
	case "length":
		return Number(float64(a.Len())), nil
	default:
		return Nil, fmt.Errorf("array: no method %q", name)
	}
}

// --- argument plumbing -------------------------------------------------

func arg(args []Value, i int) Value {
	if i < len(args) {
		return args[i]
	}
	return Nil
}

func orNil(v Value, ok bool) Value {
	if !ok {
		return Nil
	}
	return v
}

func argIndex(v Value) (int, error) {
	if v.Kind != KNumber {
		return 0, fmt.Errorf("array: expected number index, got %s", v.TypeName())
	}
	return int(v.Data.(float64)), nil
}

func argFunc(v Value) (NativeFunc, error) {
	if v.Kind != KFunction {
		return nil, fmt.Errorf("array: expected function, got %s", v.TypeName())
	}
	return v.Data.(NativeFunc), nil
}

// argPred adapts a function value to a predicate. Host truthiness: nil and
// false are falsy, everything else is truthy. Callback errors read as
// false.
func argPred(v Value) (func(Value, int) bool, error) {
	fn, err := argFunc(v)
	if err != nil {
		return nil, err
	}
	return func(v Value, i int) bool {
		r, err := fn(v, Number(float64(i)))
		if err != nil {
			return false
		}
		return truthy(r)
	}, nil
}

// argLess adapts an optional comparator argument. No argument (or nil)
// means the default ordering.
func argLess(args []Value) (Less, error) {
	if len(args) == 0 || args[0].Kind == KNil {
		return nil, nil
	}
	fn, err := argFunc(args[0])
	if err != nil {
		return nil, err
	}
	return func(x, y Value) bool {
		r, err := fn(x, y)
		if err != nil {
			return false
		}
		return truthy(r)
	}, nil
}

// argArrays converts combine's arguments: array handles or plain tables.
func argArrays(args []Value) ([]*Array, error) {
	out := make([]*Array, 0, len(args))
	for _, v := range args {
		if a, ok := AsArray(v); ok {
			out = append(out, a)
			continue
		}
		if v.Kind == KTable {
			out = append(out, &Array{elemType: TagAny, elems: v.Data.([]Value)})
			continue
		}
		return nil, fmt.Errorf("array: combine expects arrays or tables, got %s", v.TypeName())
	}
	return out, nil
}

func truthy(v Value) bool {
	switch v.Kind {
	case KNil:
		return false
	case KBoolean:
		return v.Data.(bool)
	default:
		return true
	}
}

// stepperIndexes exposes the lazy index sequence as a host-callable
// stepper: each call yields the next index, then nil once exhausted.
func stepperIndexes(a *Array) Value {
	next, stop := iter.Pull(a.Indexes())
	return Function(func(...Value) (Value, error) {
		i, ok := next()
		if !ok {
			stop()
			return Nil, nil
		}
		return Number(float64(i)), nil
	})
}

// stepperValues does the same for (value, index) pairs, yielded as
// two-element tables.
func stepperValues(a *Array) Value {
	next, stop := iter.Pull2(a.Values())
	return Function(func(...Value) (Value, error) {
		v, i, ok := next()
		if !ok {
			stop()
			return Nil, nil
		}
		return Table([]Value{v, Number(float64(i))}), nil
	})
}
