package dbotjson

import "github.com/olagood/dbotjson/internal/scanner"

// stepFunc advances the scanner by one logical string character and
// returns it. The default step is one byte; the UTF-8 fast-scan step
// advances a whole multi-byte rune at once but still returns its lead
// byte, which is all the fast path needs to test for '"' and '\\'
// (continuation bytes are always >= 0x80 and can never match either).
type stepFunc func(sc *scanner.Scanner) byte

func defaultStep(sc *scanner.Scanner) byte { return sc.Next() }

// scanString consumes a JSON string, d.sc.Cur() assumed to be the
// opening quote. The fast path returns a subslice of the input
// directly; the first backslash hands off to the slow, scratch-buffer
// path, and the fast path is never re-entered for the remainder of the
// string.
func (d *decoder) scanString(step stepFunc) ([]byte, error) {
	start := d.sc.Pos()
	c := step(d.sc)

	for {
		if d.sc.Eof() {
			return nil, errSyntax(d.sc.Len(), "unexpected end of input in string")
		}
		switch c {
		case '"':
			return d.sc.Slice(start, d.sc.Pos()-1), nil
		case '\\':
			return d.scanStringSlow(start)
		default:
			c = step(d.sc)
		}
	}
}

// scanStringSlow resumes string scanning byte-at-a-time once an escape
// is seen, materialising the result in the decoder's scratch buffer.
// start is the offset of the string's first content byte, used to seed
// the scratch buffer with everything scanned so far.
func (d *decoder) scanStringSlow(start int) ([]byte, error) {
	d.scratch.Reset()
	backslashPos := d.sc.Pos() - 1
	d.scratch.AddBytes(d.sc.Slice(start, backslashPos))

	c := d.sc.Next()

scanEsc:
	switch c {
	case '"', '\\', '/':
		d.scratch.Add(c)
	case 'b':
		d.scratch.Add(0x08)
	case 'f':
		d.scratch.Add(0x0C)
	case 'n':
		d.scratch.Add(0x0A)
	case 'r':
		d.scratch.Add(0x0D)
	case 't':
		d.scratch.Add(0x09)
	case 'u':
		if err := d.scanUnicodeEscape(); err != nil {
			return nil, err
		}
	default:
		return nil, errSyntax(d.sc.Pos()-1, "in string escape code")
	}
	c = d.sc.Next()

	for {
		if d.sc.Eof() {
			return nil, errSyntax(d.sc.Len(), "unexpected end of input in string")
		}
		switch c {
		case '"':
			out := make([]byte, len(d.scratch.Bytes()))
			copy(out, d.scratch.Bytes())
			return out, nil
		case '\\':
			c = d.sc.Next()
			goto scanEsc
		default:
			d.scratch.Add(c)
			c = d.sc.Next()
		}
	}
}

// scanUnicodeEscape handles a \uXXXX escape already positioned right
// after the 'u'. A high surrogate triggers a speculative lookahead for
// its paired low surrogate; if the pair doesn't materialise, it emits a
// literal '?' and rewinds, tolerating the malformed escape rather than
// failing the whole decode.
func (d *decoder) scanUnicodeEscape() error {
	hexStart := d.sc.Pos()
	r, ok := d.scanHex4()
	if !ok {
		return errSyntax(d.sc.Pos()-1, "in unicode escape sequence")
	}

	switch {
	case r >= 0xD800 && r <= 0xDBFF:
		mark := d.sc.Pos()
		if c1 := d.sc.Next(); c1 == '\\' {
			if c2 := d.sc.Next(); c2 == 'u' {
				if r2, ok2 := d.scanHex4(); ok2 && r2 >= 0xDC00 && r2 <= 0xDFFF {
					combined := rune((r-0xD800)*0x400+(r2-0xDC00)) + 0x10000
					d.scratch.AddRune(combined)
					return nil
				}
			}
		}
		// Lone high surrogate: emit a literal '?' and resume scanning
		// right after the four hex digits already consumed, discarding
		// the speculative lookahead entirely.
		d.scratch.Add('?')
		d.sc.Seek(mark)
		return nil
	case r >= 0xDC00 && r <= 0xDFFF:
		return errSyntax(hexStart-2, "lone low surrogate in unicode escape")
	default:
		d.scratch.AddRune(r)
		return nil
	}
}

func (d *decoder) scanHex4() (rune, bool) {
	var r rune
	for i := 0; i < 4; i++ {
		c := d.sc.Next()
		var v rune
		switch {
		case c >= '0' && c <= '9':
			v = rune(c - '0')
		case c >= 'a' && c <= 'f':
			v = rune(c-'a') + 10
		case c >= 'A' && c <= 'F':
			v = rune(c-'A') + 10
		default:
			return 0, false
		}
		r = r<<4 | v
	}
	return r, true
}
