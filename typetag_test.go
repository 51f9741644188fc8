package array

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTypeTag(t *testing.T) {
	cases := map[string]TypeTag{
		"any":      TagAny,
		"unknown":  TagUnknown,
		"string":   TagString,
		"boolean":  TagBoolean,
		"number":   TagNumber,
		"function": TagFunction,
		"table":    TagTable,
		"handle":   TagHandle,
	}
	for name, want := range cases {
		tag, err := ParseTypeTag(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, tag, name)
		assert.Equal(t, name, tag.String())
	}

	_, err := ParseTypeTag("Instance")
	require.Error(t, err)
}

func TestCheck(t *testing.T) {
	cases := []struct {
		tag TypeTag
		ok  Value
		bad Value
	}{
		{TagString, String("s"), Number(1)},
		{TagBoolean, Boolean(true), String("t")},
		{TagNumber, Number(1), Boolean(false)},
		{TagFunction, Function(func(...Value) (Value, error) { return Nil, nil }), Number(0)},
		{TagTable, Table(nil), String("{}")},
		{TagHandle, HandleVal("socket", nil), Table(nil)},
	}
	for _, c := range cases {
		assert.NoError(t, c.tag.Check(c.ok), c.tag.String())

		err := c.tag.Check(c.bad)
		var tm *TypeMismatchError
		require.ErrorAs(t, err, &tm, c.tag.String())
		assert.Equal(t, c.tag.String(), tm.Want)
		assert.Equal(t, c.bad.TypeName(), tm.Got)
	}
}

func TestCheckWildcards(t *testing.T) {
	everything := []Value{Nil, Boolean(true), Number(1), String("s"), Table(nil), HandleVal("x", 7)}
	for _, v := range everything {
		assert.NoError(t, TagAny.Check(v))
		assert.NoError(t, TagUnknown.Check(v))
	}
}

func TestHandleTypeName(t *testing.T) {
	v := HandleVal("Instance", nil)
	assert.Equal(t, "Instance", v.TypeName())

	// The handle tag accepts any opaque engine kind.
	assert.NoError(t, TagHandle.Check(v))
}
