package domain

import (
	"fmt"
	"unicode/utf8"
)

// BoundedText is a validated string whose codepoint count was checked
// against a closed range at construction. Values coming off the wire must go
// through Bounds.New; values read back from the store use Trusted.
type BoundedText struct {
	value string
}

// Bounds is an inclusive [Min, Max] range of Unicode codepoints.
type Bounds struct {
	Min int
	Max int
}

// Field bounds shared by the API boundary and the tests.
var (
	UsernameBounds = Bounds{Min: 6, Max: 64}
	EmailBounds    = Bounds{Min: 2, Max: 128}
	TitleBounds    = Bounds{Min: 2, Max: 128}
	PostBodyBounds = Bounds{Min: 32, Max: 50000}
	CommentBounds  = Bounds{Min: 4, Max: 2000}
)

// LengthError reports a field whose codepoint count fell outside its bounds.
type LengthError struct {
	Field  string
	Actual int
	Min    int
	Max    int
}

func (e *LengthError) Error() string {
	return fmt.Sprintf("%s must be between %d and %d characters, got %d", e.Field, e.Min, e.Max, e.Actual)
}

// New validates s against the bounds. Length is counted in codepoints, not
// bytes, so multi-byte characters count once.
func (b Bounds) New(field, s string) (BoundedText, error) {
	n := utf8.RuneCountInString(s)
	if n < b.Min || n > b.Max {
		return BoundedText{}, &LengthError{Field: field, Actual: n, Min: b.Min, Max: b.Max}
	}
	return BoundedText{value: s}, nil
}

// Trusted wraps a value already known to satisfy its bounds, typically one
// just read from the store. Never call this with untrusted input.
func Trusted(s string) BoundedText {
	return BoundedText{value: s}
}

func (t BoundedText) String() string {
	return t.value
}
