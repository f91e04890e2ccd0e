package dbotjson

import "github.com/olagood/dbotjson/internal/scanner"

// utf8Step advances past one full UTF-8 rune at a time instead of one
// byte, letting the string fast path skip ahead by up to four bytes per
// check instead of testing every continuation byte individually.
// Continuation bytes (0x80-0xBF) can never equal '"' or '\\', so
// returning the lead byte is sufficient for the fast-path comparisons
// in scanString.
func utf8Step(sc *scanner.Scanner) byte {
	c := sc.Next()
	switch {
	case c < 0x80:
		return c
	case c >= 0xC2 && c <= 0xDF:
		sc.Next()
	case c >= 0xE0 && c <= 0xEF:
		sc.Next()
		sc.Next()
	case c >= 0xF0 && c <= 0xF4:
		sc.Next()
		sc.Next()
		sc.Next()
	}
	return c
}
