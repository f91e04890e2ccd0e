package dbotjson

import "github.com/olagood/dbotjson/internal/numstate"

// The skip* methods mirror the decode-mode parsers in decode.go and
// string.go byte for byte, but never materialise a Value, a string
// copy, or a scratch-buffer write: they only advance the cursor over a
// well-formed value. Get uses them to fly over every branch that
// doesn't match the requested path instead of paying decode's
// allocation cost for data the caller never asked for.

func (d *decoder) skipValue() error {
	switch c := d.sc.Cur(); {
	case c == '{':
		return d.skipObject()
	case c == '[':
		return d.skipArray()
	case c == '"':
		return d.skipString()
	case c == '-':
		return d.skipNumber(true)
	case c >= '0' && c <= '9':
		return d.skipNumber(false)
	case c == 't':
		return d.skipLiteral("rue")
	case c == 'f':
		return d.skipLiteral("alse")
	case c == 'n':
		return d.skipLiteral("ull")
	default:
		return errSyntax(d.sc.Pos()-1, "looking for beginning of value")
	}
}

func (d *decoder) skipLiteral(rest string) error {
	for i := 0; i < len(rest); i++ {
		if c := d.sc.Next(); c != rest[i] {
			return errSyntax(d.sc.Pos()-1, "in literal")
		}
	}
	return nil
}

func (d *decoder) skipNumber(neg bool) error {
	startPos := d.sc.Pos() - 1
	if neg {
		c := d.sc.Next()
		if c < '0' || c > '9' {
			return errSyntax(d.sc.Pos()-1, "in negative numeric literal")
		}
	}
	if _, err := numstate.Scan(d.sc, startPos); err != nil {
		if ne, ok := err.(*numstate.Error); ok {
			return errSyntax(ne.Pos, "in numeric literal")
		}
		return err
	}
	return nil
}

// skipString tracks position until an unescaped closing quote. It never
// interprets an escape sequence the way string.go's scanString does: a
// backslash simply makes the byte after it count as content instead of
// a terminator, whatever that byte is. This still lands on exactly the
// position the full decode would, including through \uXXXX surrogate
// pairs and the lone-high-surrogate tolerance rewind, since both sides
// consume the same total byte count to reach the closing quote; skip
// mode just never needs to know what the bytes decode to.
func (d *decoder) skipString() error {
	c := d.step(d.sc)
	for {
		if d.sc.Eof() {
			return errSyntax(d.sc.Len(), "unexpected end of input in string")
		}
		switch c {
		case '"':
			return nil
		case '\\':
			d.sc.Next()
			if d.sc.Eof() {
				return errSyntax(d.sc.Len(), "unexpected end of input in string")
			}
			c = d.step(d.sc)
		default:
			c = d.step(d.sc)
		}
	}
}

func (d *decoder) skipObject() error {
	c := d.skipSpaces()
	if c == '}' {
		return nil
	}
	for {
		if c != '"' {
			return errSyntax(d.sc.Pos()-1, "looking for beginning of object key string")
		}
		if err := d.skipString(); err != nil {
			return err
		}
		if c = d.skipSpaces(); c != ':' {
			return errSyntax(d.sc.Pos()-1, "after object key")
		}
		d.skipSpaces()
		if err := d.skipValue(); err != nil {
			return err
		}
		switch c = d.skipSpaces(); c {
		case '}':
			return nil
		case ',':
			c = d.skipSpaces()
		default:
			return errSyntax(d.sc.Pos()-1, "after object key:value pair")
		}
	}
}

func (d *decoder) skipArray() error {
	c := d.skipSpaces()
	if c == ']' {
		return nil
	}
	for {
		if err := d.skipValue(); err != nil {
			return err
		}
		switch c = d.skipSpaces(); c {
		case ']':
			return nil
		case ',':
			d.skipSpaces()
		default:
			return errSyntax(d.sc.Pos()-1, "after array element")
		}
	}
}
