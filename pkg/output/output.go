// Package output builds result lines of the form
//
//	OUTPUT 13 :Fresh Avacado: 1.1
//
// A line starts with the marker token, numbers are separated by single
// spaces and text is wrapped in single colons. An Output is an immutable
// value: every Push method returns a new Output and leaves the receiver
// untouched, so values can be shared freely between goroutines and used as
// map keys.
package output

import (
	"reflect"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/exp/constraints"
)

// Marker is the token every rendered line starts with.
const Marker = "OUTPUT"

// Number is the set of types accepted by PushNumeric.
type Number interface {
	constraints.Integer | constraints.Float
}

// Output accumulates formatted fragments. The zero value is an empty
// Output.
type Output struct {
	// content holds the fragments in append order, each one followed by a
	// single space. It never contains the marker.
	content string
}

// New returns an Output without fragments.
func New() Output {
	return Output{}
}

// FromText returns an Output holding s as its only text fragment.
func FromText(s string) Output {
	return New().PushText(s)
}

// Parse is the text-parsing form of FromText. The returned error is always
// nil; the signature exists so Parse can be used where a fallible
// constructor is expected.
func Parse(s string) (Output, error) {
	return FromText(s), nil
}

// PushText appends s wrapped in colons. s is not escaped.
func (o Output) PushText(s string) Output {
	return Output{content: o.content + ":" + s + ": "}
}

// PushInt appends the decimal form of v.
func (o Output) PushInt(v int64) Output {
	return o.push(strconv.FormatInt(v, 10))
}

// PushUint appends the decimal form of v.
func (o Output) PushUint(v uint64) Output {
	return o.push(strconv.FormatUint(v, 10))
}

// PushFloat appends the shortest decimal form of v that parses back to the
// same value. Exponent notation is never used, so 2.0 becomes "2".
func (o Output) PushFloat(v float64) Output {
	return o.push(strconv.FormatFloat(v, 'f', -1, 64))
}

// PushNumeric appends v to o using the canonical text of its type. Named
// numeric types are formatted by their underlying kind.
func PushNumeric[T Number](o Output, v T) Output {
	switch rv := reflect.ValueOf(v); rv.Kind() {
	case reflect.Float32:
		return o.push(strconv.FormatFloat(rv.Float(), 'f', -1, 32))
	case reflect.Float64:
		return o.PushFloat(rv.Float())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return o.PushInt(rv.Int())
	default:
		return o.PushUint(rv.Uint())
	}
}

func (o Output) push(num string) Output {
	return Output{content: o.content + num + " "}
}

// IsEmpty reports whether no fragment has been pushed.
func (o Output) IsEmpty() bool {
	return o.content == ""
}

// Render returns the finished line: the marker followed by all fragments,
// with trailing whitespace removed. An empty Output renders as "OUTPUT".
func (o Output) Render() string {
	return strings.TrimRightFunc(Marker+" "+o.content, unicode.IsSpace)
}

// String implements fmt.Stringer.
func (o Output) String() string {
	return o.Render()
}

// MarshalText implements encoding.TextMarshaler.
func (o Output) MarshalText() ([]byte, error) {
	return []byte(o.Render()), nil
}

// Equal reports whether o and other hold the same fragments.
func (o Output) Equal(other Output) bool {
	return o.content == other.content
}

// Less reports whether o sorts before other.
func (o Output) Less(other Output) bool {
	return Compare(o, other) < 0
}

// Compare orders a and b lexically by their fragments. The result is -1, 0
// or +1. Because Render prepends the marker and trims trailing whitespace,
// this can differ from comparing the rendered lines when a fragment holds
// bytes below ' ': FromText("a") sorts after FromText("a:\tb"), while
// "OUTPUT :a:" sorts before "OUTPUT :a:\tb:".
func Compare(a, b Output) int {
	return strings.Compare(a.content, b.content)
}
