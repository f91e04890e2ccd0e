package dbotjson

import (
	"fmt"
	"strconv"
)

// PathComponent is one step of a Path: either an object key or an
// array index.
type PathComponent struct {
	key   string
	idx   int
	isKey bool
}

// Key builds a Path component that selects an object field.
func Key(k string) PathComponent { return PathComponent{key: k, isKey: true} }

// Index builds a Path component that selects an array element. i is
// 1-based: Index(1) selects the first element. This differs from
// Value.Index, which is the ordinary 0-based Go slice accessor used to
// navigate an already-decoded tree.
func Index(i int) PathComponent { return PathComponent{idx: i} }

// Path is a sequence of components describing a single value reachable
// from the document root, e.g. Path{Key("items"), Index(1), Key("id")}
// for the id field of the first element of items.
type Path []PathComponent

// ParsePathString parses a dotted path literal such as
// "items[1].id" or "a.b.c" into a Path. Bracketed indices are 1-based,
// matching Index. An empty string parses to the empty Path, which
// selects the document root.
func ParsePathString(s string) (Path, error) {
	var path Path
	i := 0
	for i < len(s) {
		switch s[i] {
		case '.':
			i++
		case '[':
			end := i + 1
			for end < len(s) && s[end] != ']' {
				end++
			}
			if end >= len(s) {
				return nil, fmt.Errorf("dbotjson: unterminated index in path %q", s)
			}
			n, err := strconv.Atoi(s[i+1 : end])
			if err != nil {
				return nil, fmt.Errorf("dbotjson: invalid index %q in path %q", s[i+1:end], s)
			}
			path = append(path, Index(n))
			i = end + 1
		default:
			end := i
			for end < len(s) && s[end] != '.' && s[end] != '[' {
				end++
			}
			if end == i {
				return nil, fmt.Errorf("dbotjson: empty key in path %q", s)
			}
			path = append(path, Key(s[i:end]))
			i = end
		}
	}
	return path, nil
}
