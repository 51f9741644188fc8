// errors.go — the container's error taxonomy.
//
// Every failure mode of the public surface is a distinct, catchable error
// type so embedders can dispatch with errors.As. Operations that have a
// legitimate "absent" outcome (First, Last, Pop, Shift, Find, IndexOf, Get)
// report it through a boolean instead — absence there is not an error.
package array

import (
	"errors"
	"fmt"
)

// TypeMismatchError: an element's runtime type disagrees with the Array's
// declared element type. Raised synchronously by the validator; a scheduled
// facade write that trips it fails that unit of work, not the caller.
type TypeMismatchError struct {
	Want string
	Got  string
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("array: type mismatch: expected %s, got %s", e.Want, e.Got)
}

// InvalidPresetError: the constructor was given a preset value that is not
// sequence-shaped. Construction does not complete.
type InvalidPresetError struct {
	Got string
}

func (e *InvalidPresetError) Error() string {
	return fmt.Sprintf("array: invalid preset: expected table, got %s", e.Got)
}

// IndexOutOfRangeError: an index outside the valid bound was given to
// Insert, Remove or Set.
type IndexOutOfRangeError struct {
	Index  int
	Length int
}

func (e *IndexOutOfRangeError) Error() string {
	return fmt.Sprintf("array: index %d out of range (length %d)", e.Index, e.Length)
}

// ValueNotFoundError: RemoveValue was asked to remove a value that is not
// present.
type ValueNotFoundError struct {
	Value Value
}

func (e *ValueNotFoundError) Error() string {
	return fmt.Sprintf("array: value %s not found", e.Value)
}

// ErrEmptyReduce: Reduce on an empty Array with no initial accumulator.
var ErrEmptyReduce = errors.New("array: reduce of empty array with no initial value")
