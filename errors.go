package dbotjson

import (
	"fmt"
	"strconv"
)

// SyntaxError reports malformed input: the byte offset of the first
// byte that could not be consumed in the parser's current state. It
// carries no message beyond a short fixed classification and no
// line/column mapping — callers that need a location work from Pos.
type SyntaxError struct {
	// Pos is the byte offset of the offending byte.
	Pos int
	// Context is a short, fixed description of what was being parsed,
	// e.g. "looking for beginning of value". It exists for humans
	// reading a returned error; callers should only depend on Pos.
	Context string
}

func (e *SyntaxError) Error() string {
	if e.Context == "" {
		return fmt.Sprintf("invalid character at byte %d", e.Pos)
	}
	return fmt.Sprintf("invalid character %s at byte %d", e.Context, e.Pos)
}

// PathError reports that a Get path could not be resolved against the
// document. Pos is the last byte position visited during the
// unsuccessful search — typically the closing '}' or ']' of the
// container that should have held the target.
type PathError struct {
	Pos int
}

func (e *PathError) Error() string {
	return "path not found, last position " + strconv.Itoa(e.Pos)
}

func errSyntax(pos int, context string) error {
	return &SyntaxError{Pos: pos, Context: context}
}
