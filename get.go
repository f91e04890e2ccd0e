package dbotjson

// Get resolves path against buffer and decodes only the matched
// sub-value, skipping every sibling branch the path doesn't visit
// without allocating for it. Returns a *PathError if path cannot be
// resolved, or a *SyntaxError if the bytes it does have to walk are
// malformed JSON.
func Get(path Path, buffer []byte, opts ...Option) (Value, error) {
	cfg := applyOptions(opts)
	d := newDecoder(buffer, cfg)

	d.skipSpaces()
	if d.sc.Eof() {
		return Value{}, errSyntax(d.sc.Pos()-1, "unexpected end of input")
	}

	return d.getPath(path)
}

// getPath consumes one path component per recursion, dispatching to
// the matching container walker; d.sc.Cur() must already sit on the
// first byte of the value path describes.
func (d *decoder) getPath(path Path) (Value, error) {
	if len(path) == 0 {
		return d.any()
	}
	comp := path[0]
	switch c := d.sc.Cur(); {
	case c == '{' && comp.isKey:
		return d.getObjectKey(comp.key, path[1:])
	case c == '[' && !comp.isKey:
		return d.getArrayIndex(comp.idx, path[1:])
	default:
		return Value{}, &PathError{Pos: d.sc.Pos() - 1}
	}
}

// getObjectKey walks an object's entries, skipping every value whose
// key doesn't match target, and descends as soon as one does. A
// duplicate key resolves to its first occurrence: the single-pass walk
// never looks ahead for a later one, and never reads past the matched
// value, so malformed JSON after the target is never observed. This
// intentionally diverges from Decode's last-key-wins Value.Key default,
// which sees the whole object before any key is resolved.
func (d *decoder) getObjectKey(target string, rest Path) (Value, error) {
	c := d.skipSpaces()

	for c != '}' {
		if c != '"' {
			return Value{}, errSyntax(d.sc.Pos()-1, "looking for beginning of object key string")
		}
		keyBytes, err := d.stringBytes()
		if err != nil {
			return Value{}, err
		}
		match := string(keyBytes) == target

		if c = d.skipSpaces(); c != ':' {
			return Value{}, errSyntax(d.sc.Pos()-1, "after object key")
		}
		d.skipSpaces()

		if match {
			return d.getPath(rest)
		}
		if err := d.skipValue(); err != nil {
			return Value{}, err
		}

		switch c = d.skipSpaces(); c {
		case '}':
		case ',':
			c = d.skipSpaces()
		default:
			return Value{}, errSyntax(d.sc.Pos()-1, "after object key:value pair")
		}
	}

	return Value{}, &PathError{Pos: d.sc.Pos() - 1}
}

// getArrayIndex walks an array's elements under a 1-based index
// starting at 1 for the first element, skipping every one before
// target and recursing into the one that reaches it.
func (d *decoder) getArrayIndex(target int, rest Path) (Value, error) {
	c := d.skipSpaces()
	if target < 1 || c == ']' {
		return Value{}, &PathError{Pos: d.sc.Pos() - 1}
	}

	for idx := 1; ; idx++ {
		if idx == target {
			return d.getPath(rest)
		}
		if err := d.skipValue(); err != nil {
			return Value{}, err
		}
		switch c = d.skipSpaces(); c {
		case ']':
			return Value{}, &PathError{Pos: d.sc.Pos() - 1}
		case ',':
			d.skipSpaces()
		default:
			return Value{}, errSyntax(d.sc.Pos()-1, "after array element")
		}
	}
}
