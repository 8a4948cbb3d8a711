/*
File    : di/value/value_test.go
Project : di compiler front-end
*/

package value

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValue_TypesAndEquality(t *testing.T) {
	values := []Value{
		&Integer{Value: 42},
		&Double{Value: 3.14},
		&Boolean{Value: true},
		&Null{},
		&String{Value: "foo-bar-baz"},
		&Array{Elems: []Value{&Integer{Value: 1}, &Null{}}},
	}
	types := []Type{IntegerType, DoubleType, BooleanType, NullType, StringType, ArrayType}
	for i, v := range values {
		assert.Equal(t, types[i], v.GetType())
		assert.True(t, v.Equal(v))
		for j, other := range values {
			if i != j {
				assert.False(t, v.Equal(other), "%s == %s", v.ToString(), other.ToString())
			}
		}
	}
	// same type, different value
	assert.False(t, (&Integer{Value: 1}).Equal(&Integer{Value: 2}))
	assert.False(t, (&Integer{Value: 1}).Equal(&Double{Value: 1}))
}

func TestValue_ArrayPushIsNonDestructive(t *testing.T) {
	a := &Array{}
	b := a.Push(&Integer{Value: 1})
	assert.Len(t, a.Elems, 0)
	require.Len(t, b.Elems, 1)
	assert.True(t, (&Integer{Value: 1}).Equal(b.Elems[0]))
}

func TestValue_DictSetGetDelete(t *testing.T) {
	d := NewDict()
	k1 := &String{Value: "one"}
	k2 := &Integer{Value: 2}

	d2 := d.Set(k1, &Integer{Value: 1}).Set(k2, &String{Value: "two"})
	assert.Equal(t, 0, d.Len())
	assert.Equal(t, 2, d2.Len())
	assert.True(t, d2.Contains(k1))
	assert.True(t, (&Integer{Value: 1}).Equal(d2.Get(k1)))
	assert.Nil(t, d2.Get(&String{Value: "absent"}))

	d3 := d2.Delete(k1)
	assert.False(t, d3.Contains(k1))
	assert.True(t, d3.Contains(k2))
	assert.Equal(t, 2, d2.Len())
}

func TestValue_DictIterInsertionOrder(t *testing.T) {
	d := NewDict().
		Set(&String{Value: "b"}, &Integer{Value: 1}).
		Set(&String{Value: "a"}, &Integer{Value: 2})
	var keys []string
	d.Iter(func(k, v Value) bool {
		keys = append(keys, k.(*String).Value)
		return true
	})
	assert.Equal(t, []string{"b", "a"}, keys)
}

func TestValue_DictEqualityIgnoresOrder(t *testing.T) {
	a := NewDict().
		Set(&String{Value: "x"}, &Integer{Value: 1}).
		Set(&String{Value: "y"}, &Integer{Value: 2})
	b := NewDict().
		Set(&String{Value: "y"}, &Integer{Value: 2}).
		Set(&String{Value: "x"}, &Integer{Value: 1})
	assert.True(t, a.Equal(b))
}

func TestValue_DecodeNumber(t *testing.T) {
	v, err := DecodeNumber("42")
	require.NoError(t, err)
	assert.True(t, (&Integer{Value: 42}).Equal(v))

	v, err = DecodeNumber("3.5")
	require.NoError(t, err)
	assert.True(t, (&Double{Value: 3.5}).Equal(v))

	v, err = DecodeNumber("1E2")
	require.NoError(t, err)
	assert.True(t, (&Double{Value: 100}).Equal(v))

	// out of int32 range falls back to double
	v, err = DecodeNumber("4294967296")
	require.NoError(t, err)
	assert.Equal(t, DoubleType, v.GetType())
}

func TestValue_DecodeString(t *testing.T) {
	v, err := DecodeString(`"a\tb!"`)
	require.NoError(t, err)
	assert.True(t, (&String{Value: "a\tb!"}).Equal(v))

	_, err = DecodeString(`"\q"`)
	assert.Error(t, err)
}

func TestValue_QuoteRoundTrip(t *testing.T) {
	for _, s := range []string{"", "plain", "with \"quotes\"", "tab\there", "nyckelpiga 🐞"} {
		v, err := DecodeString(Quote(s))
		require.NoError(t, err)
		assert.True(t, (&String{Value: s}).Equal(v), "string: %q", s)
	}
}

func TestValue_ToString(t *testing.T) {
	assert.Equal(t, "42", (&Integer{Value: 42}).ToString())
	assert.Equal(t, "true", (&Boolean{Value: true}).ToString())
	assert.Equal(t, "null", (&Null{}).ToString())
	assert.Equal(t, `"hi"`, (&String{Value: "hi"}).ToString())
	arr := &Array{Elems: []Value{&Integer{Value: 1}, &String{Value: "x"}}}
	assert.Equal(t, `[1,"x"]`, arr.ToString())
}
