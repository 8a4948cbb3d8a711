/*
File    : di/value/value.go
Project : di compiler front-end
*/

// Package value defines the tagged immutable value system shared by the di
// compiler passes. It provides implementations for the JSON-compatible
// primitive types (integers, doubles, strings, booleans, null) and the
// composite types (arrays and dicts). All types implement the Value
// interface, which allows for type checking, structural equality and
// source-like string representation.
//
// Values are immutable from the caller's perspective: the helpers that
// "modify" an array or a dict return a new value that may share
// substructure with its input.
package value

import (
	"fmt"
	"strconv"
	"strings"
)

// Type represents the type of a di value as a string constant.
// These constants are used to identify the type of values in the language,
// enabling type checking and polymorphic behavior across the value kinds.
type Type string

const (
	// IntegerType represents 32-bit signed integer values
	IntegerType Type = "int"
	// DoubleType represents 64-bit floating-point values
	DoubleType Type = "double"
	// BooleanType represents boolean (true/false) values
	BooleanType Type = "bool"
	// NullType represents the null value
	NullType Type = "null"
	// StringType represents string values (byte sequences, UTF-8 by convention)
	StringType Type = "string"
	// ArrayType represents ordered sequences of values
	ArrayType Type = "array"
	// DictType represents mappings from string/number keys to values
	DictType Type = "dict"
)

// Value is the core interface that all di values implement.
// It provides methods for type identification, structural equality and
// a source-like string representation used by the debug dump commands.
type Value interface {
	// GetType returns the Type of the value, used for type checking
	GetType() Type
	// Equal reports structural equality with another value.
	// Dict entry order is not observable through Equal.
	Equal(other Value) bool
	// ToString returns a source-like representation of the value
	// (JSON syntax for the JSON-compatible kinds)
	ToString() string
}

// Integer represents a 32-bit signed integer value.
type Integer struct {
	Value int32
}

func (i *Integer) GetType() Type { return IntegerType }

func (i *Integer) Equal(other Value) bool {
	o, ok := other.(*Integer)
	return ok && o.Value == i.Value
}

func (i *Integer) ToString() string { return strconv.FormatInt(int64(i.Value), 10) }

// Double represents a 64-bit floating-point value.
type Double struct {
	Value float64
}

func (d *Double) GetType() Type { return DoubleType }

func (d *Double) Equal(other Value) bool {
	o, ok := other.(*Double)
	return ok && o.Value == d.Value
}

func (d *Double) ToString() string { return strconv.FormatFloat(d.Value, 'g', -1, 64) }

// Boolean represents a boolean value.
type Boolean struct {
	Value bool
}

func (b *Boolean) GetType() Type { return BooleanType }

func (b *Boolean) Equal(other Value) bool {
	o, ok := other.(*Boolean)
	return ok && o.Value == b.Value
}

func (b *Boolean) ToString() string { return strconv.FormatBool(b.Value) }

// Null represents the null value.
type Null struct{}

func (n *Null) GetType() Type { return NullType }

func (n *Null) Equal(other Value) bool {
	_, ok := other.(*Null)
	return ok
}

func (n *Null) ToString() string { return "null" }

// String represents a string value. The content is a byte sequence which is
// UTF-8 by convention; the lexer decodes \uHHHH escapes into UTF-8 bytes.
type String struct {
	Value string
}

func (s *String) GetType() Type { return StringType }

func (s *String) Equal(other Value) bool {
	o, ok := other.(*String)
	return ok && o.Value == s.Value
}

// ToString returns the string in its JSON-quoted source form.
func (s *String) ToString() string { return Quote(s.Value) }

// Array represents an ordered sequence of values.
type Array struct {
	Elems []Value
}

func (a *Array) GetType() Type { return ArrayType }

func (a *Array) Equal(other Value) bool {
	o, ok := other.(*Array)
	if !ok || len(o.Elems) != len(a.Elems) {
		return false
	}
	for i, e := range a.Elems {
		if !e.Equal(o.Elems[i]) {
			return false
		}
	}
	return true
}

func (a *Array) ToString() string {
	parts := make([]string, len(a.Elems))
	for i, e := range a.Elems {
		parts[i] = e.ToString()
	}
	return "[" + strings.Join(parts, ",") + "]"
}

// Push returns a new array with v appended. The input is not modified.
func (a *Array) Push(v Value) *Array {
	elems := make([]Value, len(a.Elems)+1)
	copy(elems, a.Elems)
	elems[len(a.Elems)] = v
	return &Array{Elems: elems}
}

// Dict represents a mapping from keys to values. Keys are restricted to
// strings and numbers. Iteration follows insertion order; equality does not
// observe entry order.
type Dict struct {
	keys  []Value
	index map[string]int
	vals  []Value
}

// NewDict creates an empty dict.
func NewDict() *Dict {
	return &Dict{index: make(map[string]int)}
}

// keyString maps a dict key to its index representation. Only strings and
// numbers are valid keys.
func keyString(key Value) string {
	switch k := key.(type) {
	case *String:
		return "s:" + k.Value
	case *Integer:
		return "i:" + k.ToString()
	case *Double:
		return "d:" + k.ToString()
	default:
		panic(fmt.Sprintf("invalid dict key type %s", key.GetType()))
	}
}

func (d *Dict) GetType() Type { return DictType }

// Len returns the number of entries.
func (d *Dict) Len() int { return len(d.keys) }

// Get returns the value for key, or nil if the key is absent.
func (d *Dict) Get(key Value) Value {
	if i, ok := d.index[keyString(key)]; ok {
		return d.vals[i]
	}
	return nil
}

// Contains reports whether key is present.
func (d *Dict) Contains(key Value) bool {
	_, ok := d.index[keyString(key)]
	return ok
}

// Set returns a new dict with key bound to val. The input is not modified.
func (d *Dict) Set(key Value, val Value) *Dict {
	out := d.clone()
	ks := keyString(key)
	if i, ok := out.index[ks]; ok {
		out.vals[i] = val
	} else {
		out.index[ks] = len(out.keys)
		out.keys = append(out.keys, key)
		out.vals = append(out.vals, val)
	}
	return out
}

// Delete returns a new dict without key. The input is not modified.
func (d *Dict) Delete(key Value) *Dict {
	ks := keyString(key)
	if _, ok := d.index[ks]; !ok {
		return d
	}
	out := NewDict()
	for i, k := range d.keys {
		if keyString(k) != ks {
			out.index[keyString(k)] = len(out.keys)
			out.keys = append(out.keys, k)
			out.vals = append(out.vals, d.vals[i])
		}
	}
	return out
}

// Iter calls fn for each entry in insertion order. Iteration stops early if
// fn returns false.
func (d *Dict) Iter(fn func(key, val Value) bool) {
	for i, k := range d.keys {
		if !fn(k, d.vals[i]) {
			return
		}
	}
}

func (d *Dict) clone() *Dict {
	out := &Dict{
		keys:  make([]Value, len(d.keys)),
		vals:  make([]Value, len(d.vals)),
		index: make(map[string]int, len(d.index)),
	}
	copy(out.keys, d.keys)
	copy(out.vals, d.vals)
	for k, v := range d.index {
		out.index[k] = v
	}
	return out
}

func (d *Dict) Equal(other Value) bool {
	o, ok := other.(*Dict)
	if !ok || o.Len() != d.Len() {
		return false
	}
	for i, k := range d.keys {
		ov := o.Get(k)
		if ov == nil || !d.vals[i].Equal(ov) {
			return false
		}
	}
	return true
}

func (d *Dict) ToString() string {
	parts := make([]string, len(d.keys))
	for i, k := range d.keys {
		parts[i] = k.ToString() + ":" + d.vals[i].ToString()
	}
	return "{" + strings.Join(parts, ",") + "}"
}
