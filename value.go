package dbotjson

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrType is returned when a Value is accessed through an As* method
// that does not match its Kind.
var ErrType = errors.New("dbotjson: type error")

// Kind identifies which of the six JSON value shapes a Value holds.
type Kind int

// The possible kinds of a decoded Value.
const (
	Null Kind = iota
	Bool
	Integer
	Float
	String
	Array
	Object
	numKinds
)

var kindStrings = [numKinds]string{
	"<null>", "<bool>", "<integer>", "<float>", "<string>", "<array>", "<object>",
}

func (k Kind) String() string {
	if k < 0 || k >= numKinds {
		return "<unknown>"
	}
	return kindStrings[k]
}

// Pair is a single key/value entry of an object decoded with
// WithOrderedObjects, preserving source order and duplicates.
type Pair struct {
	Key   string
	Value Value
}

// Value is a decoded JSON value: a tagged union over the six JSON
// shapes. The zero Value is Null.
//
// Containers either own a Go map (default, last-key-wins) or an
// ordered []Pair (WithOrderedObjects); exactly one of obj/pairs is
// populated for an Object, selected by the ordered flag recorded on
// the value at construction time.
type Value struct {
	kind Kind

	i   int64
	f   float64
	b   bool
	s   []byte

	arr     []Value
	obj     map[string]Value
	pairs   []Pair
	ordered bool
}

// Kind reports which JSON shape this value holds.
func (v Value) Kind() Kind { return v.kind }

// IsNull reports whether v is the JSON null value.
func (v Value) IsNull() bool { return v.kind == Null }

// AsBool extracts a boolean. Returns ErrType if v is not a Bool.
func (v Value) AsBool() (bool, error) {
	if v.kind != Bool {
		return false, fmt.Errorf("%w: %v is not a bool", ErrType, v.kind)
	}
	return v.b, nil
}

// AsInt64 extracts an integer. It does not convert from Float; use
// AsFloat64 when fractional precision is acceptable. Returns ErrType
// if v is not an Integer.
func (v Value) AsInt64() (int64, error) {
	if v.kind != Integer {
		return 0, fmt.Errorf("%w: %v is not an integer", ErrType, v.kind)
	}
	return v.i, nil
}

// AsFloat64 extracts a number as a float64, widening an Integer if
// necessary. Returns ErrType if v is neither Integer nor Float.
func (v Value) AsFloat64() (float64, error) {
	switch v.kind {
	case Integer:
		return float64(v.i), nil
	case Float:
		return v.f, nil
	default:
		return 0, fmt.Errorf("%w: %v is not a number", ErrType, v.kind)
	}
}

// AsString extracts the UTF-8 bytes of a String value. Returns ErrType
// if v is not a String.
func (v Value) AsString() (string, error) {
	if v.kind != String {
		return "", fmt.Errorf("%w: %v is not a string", ErrType, v.kind)
	}
	return string(v.s), nil
}

// AsArray extracts the ordered elements of an Array. Returns ErrType
// if v is not an Array.
func (v Value) AsArray() ([]Value, error) {
	if v.kind != Array {
		return nil, fmt.Errorf("%w: %v is not an array", ErrType, v.kind)
	}
	return v.arr, nil
}

// AsObject extracts an Object as a map, regardless of whether it was
// decoded in ordered mode. Returns ErrType if v is not an Object.
func (v Value) AsObject() (map[string]Value, error) {
	if v.kind != Object {
		return nil, fmt.Errorf("%w: %v is not an object", ErrType, v.kind)
	}
	if !v.ordered {
		return v.obj, nil
	}
	m := make(map[string]Value, len(v.pairs))
	for _, p := range v.pairs {
		m[p.Key] = p.Value
	}
	return m, nil
}

// AsPairs extracts an Object decoded with WithOrderedObjects as its
// ordered, duplicate-preserving pairs. Returns ErrType if v is not an
// Object decoded in ordered mode.
func (v Value) AsPairs() ([]Pair, error) {
	if v.kind != Object || !v.ordered {
		return nil, fmt.Errorf("%w: %v is not an ordered object", ErrType, v.kind)
	}
	return v.pairs, nil
}

// Index is a fluent array accessor: returns the i'th element (0-based)
// or the zero Value (Null) if v is not an Array or i is out of range.
func (v Value) Index(i int) Value {
	if v.kind != Array || i < 0 || i >= len(v.arr) {
		return Value{}
	}
	return v.arr[i]
}

// Key is a fluent object accessor: returns the value for k, or the
// zero Value (Null) if v is not an Object or has no such key.
func (v Value) Key(k string) Value {
	if v.kind != Object {
		return Value{}
	}
	if !v.ordered {
		if val, ok := v.obj[k]; ok {
			return val
		}
		return Value{}
	}
	for i := len(v.pairs) - 1; i >= 0; i-- {
		if v.pairs[i].Key == k {
			return v.pairs[i].Value
		}
	}
	return Value{}
}

// Len returns the number of elements in an Array or entries in an
// Object, or 0 for any other kind.
func (v Value) Len() int {
	switch v.kind {
	case Array:
		return len(v.arr)
	case Object:
		if v.ordered {
			return len(v.pairs)
		}
		return len(v.obj)
	default:
		return 0
	}
}

// Equal reports whether v and other represent the same JSON value,
// independent of whether either was decoded with WithOrderedObjects.
// go-cmp calls this method automatically instead of reflecting into
// Value's unexported fields.
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case Null:
		return true
	case Bool:
		return v.b == other.b
	case Integer:
		return v.i == other.i
	case Float:
		return v.f == other.f
	case String:
		return string(v.s) == string(other.s)
	case Array:
		if len(v.arr) != len(other.arr) {
			return false
		}
		for i := range v.arr {
			if !v.arr[i].Equal(other.arr[i]) {
				return false
			}
		}
		return true
	case Object:
		am, _ := v.AsObject()
		bm, _ := other.AsObject()
		if len(am) != len(bm) {
			return false
		}
		for k, av := range am {
			bv, ok := bm[k]
			if !ok || !av.Equal(bv) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// String renders a debugging representation. It is NOT guaranteed to
// be valid JSON (object key order for the default, unordered mapping
// is Go's map iteration order, which is unspecified).
func (v Value) String() string {
	switch v.kind {
	case Null:
		return "null"
	case Bool:
		if v.b {
			return "true"
		}
		return "false"
	case Integer:
		return strconv.FormatInt(v.i, 10)
	case Float:
		return strconv.FormatFloat(v.f, 'g', -1, 64)
	case String:
		return strconv.Quote(string(v.s))
	case Array:
		out := "["
		for i, e := range v.arr {
			if i > 0 {
				out += ","
			}
			out += e.String()
		}
		return out + "]"
	case Object:
		out := "{"
		if v.ordered {
			for i, p := range v.pairs {
				if i > 0 {
					out += ","
				}
				out += strconv.Quote(p.Key) + ":" + p.Value.String()
			}
		} else {
			i := 0
			for k, val := range v.obj {
				if i > 0 {
					out += ","
				}
				out += strconv.Quote(k) + ":" + val.String()
				i++
			}
		}
		return out + "}"
	default:
		return "<unknown>"
	}
}
