package dbotjson

import (
	"github.com/olagood/dbotjson/internal/scanner"
	"github.com/olagood/dbotjson/internal/scratch"
)

// decoder holds the state threaded through a single Decode or Get
// call: the byte cursor, the behavior switches, and a reusable scratch
// buffer for strings that need escape processing.
type decoder struct {
	sc      *scanner.Scanner
	cfg     config
	scratch *scratch.Scratch
	step    stepFunc
}

func newDecoder(buf []byte, cfg config) *decoder {
	step := defaultStep
	if cfg.utf8FastScan {
		step = utf8Step
	}
	return &decoder{
		sc:      scanner.New(buf),
		cfg:     cfg,
		scratch: &scratch.Scratch{Data: make([]byte, 64)},
		step:    step,
	}
}

// skipSpaces advances past whitespace and returns the first non-
// whitespace byte, leaving the cursor positioned on it. It always
// advances at least once, which is what lets the very first call pump
// the cursor off its initial before-the-buffer sentinel position.
func (d *decoder) skipSpaces() byte {
	for !d.sc.Eof() {
		switch c := d.sc.Next(); c {
		case ' ', '\t', '\n', '\r':
			continue
		default:
			return c
		}
	}
	return 0
}

// any dispatches on d.sc.Cur(), which the caller must already have
// positioned on the first byte of a value (via skipSpaces or a prior
// container's comma handling).
func (d *decoder) any() (Value, error) {
	switch c := d.sc.Cur(); {
	case c == '{':
		return d.object()
	case c == '[':
		return d.array()
	case c == '"':
		return d.string()
	case c == '-':
		return d.number(true)
	case c >= '0' && c <= '9':
		return d.number(false)
	case c == 't':
		return d.literal("rue", Value{kind: Bool, b: true})
	case c == 'f':
		return d.literal("alse", Value{kind: Bool, b: false})
	case c == 'n':
		return d.literal("ull", Value{kind: Null})
	default:
		return Value{}, errSyntax(d.sc.Pos()-1, "looking for beginning of value")
	}
}

// literal consumes the remaining bytes of a true/false/null keyword,
// d.sc.Cur() assumed to already be its first letter.
func (d *decoder) literal(rest string, val Value) (Value, error) {
	for i := 0; i < len(rest); i++ {
		if c := d.sc.Next(); c != rest[i] {
			return Value{}, errSyntax(d.sc.Pos()-1, "in literal")
		}
	}
	return val, nil
}

func (d *decoder) stringBytes() ([]byte, error) {
	return d.scanString(d.step)
}

func (d *decoder) string() (Value, error) {
	b, err := d.stringBytes()
	if err != nil {
		return Value{}, err
	}
	return Value{kind: String, s: b}, nil
}

// object parses an object value, d.sc.Cur() assumed to be '{'.
func (d *decoder) object() (Value, error) {
	var obj map[string]Value
	var pairs []Pair
	if d.cfg.ordered {
		pairs = []Pair{}
	} else {
		obj = map[string]Value{}
	}

	c := d.skipSpaces()
	if c == '}' {
		return d.finishObject(obj, pairs), nil
	}

	for {
		if c != '"' {
			return Value{}, errSyntax(d.sc.Pos()-1, "looking for beginning of object key string")
		}
		keyBytes, err := d.stringBytes()
		if err != nil {
			return Value{}, err
		}
		key := string(keyBytes)

		if c = d.skipSpaces(); c != ':' {
			return Value{}, errSyntax(d.sc.Pos()-1, "after object key")
		}
		d.skipSpaces()

		val, err := d.any()
		if err != nil {
			return Value{}, err
		}

		if d.cfg.ordered {
			pairs = append(pairs, Pair{Key: key, Value: val})
		} else {
			obj[key] = val
		}

		switch c = d.skipSpaces(); c {
		case '}':
			return d.finishObject(obj, pairs), nil
		case ',':
			c = d.skipSpaces()
		default:
			return Value{}, errSyntax(d.sc.Pos()-1, "after object key:value pair")
		}
	}
}

func (d *decoder) finishObject(obj map[string]Value, pairs []Pair) Value {
	if d.cfg.ordered {
		return Value{kind: Object, ordered: true, pairs: pairs}
	}
	return Value{kind: Object, obj: obj}
}

// array parses an array value, d.sc.Cur() assumed to be '['.
func (d *decoder) array() (Value, error) {
	arr := []Value{}

	c := d.skipSpaces()
	if c == ']' {
		return Value{kind: Array, arr: arr}, nil
	}

	for {
		val, err := d.any()
		if err != nil {
			return Value{}, err
		}
		arr = append(arr, val)

		switch c = d.skipSpaces(); c {
		case ']':
			return Value{kind: Array, arr: arr}, nil
		case ',':
			d.skipSpaces()
		default:
			return Value{}, errSyntax(d.sc.Pos()-1, "after array element")
		}
	}
}

// Decode parses buffer as a single complete JSON document and returns
// the decoded root Value. By default it ignores trailing bytes after
// the root value; pass WithStrictTrailing to reject them.
func Decode(buffer []byte, opts ...Option) (Value, error) {
	cfg := applyOptions(opts)
	d := newDecoder(buffer, cfg)

	d.skipSpaces()
	if d.sc.Eof() {
		return Value{}, errSyntax(d.sc.Pos()-1, "unexpected end of input")
	}

	val, err := d.any()
	if err != nil {
		return Value{}, err
	}

	if cfg.strictTrailing {
		d.skipSpaces()
		if !d.sc.Eof() {
			return Value{}, errSyntax(d.sc.Pos()-1, "after top-level value")
		}
	}

	return val, nil
}
