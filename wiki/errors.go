package wiki

import (
	"fmt"
)

// ParseError reports a guard/expression mini-language parse failure at a
// byte offset into the input string.
type ParseError struct {
	Offset  int
	Message string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("wiki: parse error at offset %d: %s", e.Offset, e.Message)
}
