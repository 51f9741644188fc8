package array

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTypeNames(t *testing.T) {
	cases := []struct {
		v    Value
		want string
	}{
		{Nil, "nil"},
		{Boolean(true), "boolean"},
		{Number(1.5), "number"},
		{String("s"), "string"},
		{Function(func(...Value) (Value, error) { return Nil, nil }), "function"},
		{Table(nil), "table"},
		{HandleVal("", nil), "handle"},
		{HandleVal("Instance", nil), "Instance"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, c.v.TypeName())
	}
}

func TestEqualScalars(t *testing.T) {
	assert.True(t, Nil.Equal(Nil))
	assert.True(t, Number(1).Equal(Number(1)))
	assert.False(t, Number(1).Equal(Number(2)))
	assert.False(t, Number(1).Equal(String("1")))
	assert.True(t, String("a").Equal(String("a")))
	assert.True(t, Boolean(false).Equal(Boolean(false)))
}

func TestEqualTablesDeep(t *testing.T) {
	a := Table([]Value{Number(1), Table([]Value{String("x")})})
	b := Table([]Value{Number(1), Table([]Value{String("x")})})
	c := Table([]Value{Number(1), Table([]Value{String("y")})})
	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.False(t, a.Equal(Table([]Value{Number(1)})))
}

func TestEqualIdentityKinds(t *testing.T) {
	fn := func(...Value) (Value, error) { return Nil, nil }
	f1 := Function(fn)
	f2 := Function(fn)
	assert.True(t, f1.Equal(f2), "same code pointer")
	assert.False(t, f1.Equal(Function(func(...Value) (Value, error) { return Nil, nil })))

	h := HandleVal("x", 1)
	assert.True(t, h.Equal(h))
	assert.False(t, h.Equal(HandleVal("x", 1)), "distinct handles differ")
}

func TestValueDebugString(t *testing.T) {
	assert.Equal(t, "nil", Nil.String())
	assert.Equal(t, "true", Boolean(true).String())
	assert.Equal(t, "1.5", Number(1.5).String())
	assert.Equal(t, `"hi"`, String("hi").String())
	assert.Equal(t, "<table len=2>", Table(nums(1, 2)).String())
	assert.Equal(t, "<function>", Function(nil).String())
	assert.Equal(t, "<socket>", HandleVal("socket", nil).String())
}
