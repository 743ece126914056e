package position

import (
	"errors"
	"fmt"
	"strings"
)

// Position state errors.
var (
	// ErrPositionNotFrozen is returned when an operation that requires a
	// validated Position receives a draft.
	ErrPositionNotFrozen = errors.New("position is not frozen")
)

// ParseError reports a malformed descriptor or expression. Token is the
// offending token and Index its rune offset within the input.
type ParseError struct {
	Input string
	Token string
	Index int
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	if e.Token == "" {
		return fmt.Sprintf("parsing %q: wrong arity", e.Input)
	}
	return fmt.Sprintf("parsing %q: unexpected %q at %d", e.Input, e.Token, e.Index)
}

// InvalidPositionError reports a syntactically well-formed but historically
// unattested five-tuple. Axes names the conflicting axes so callers can
// diagnose which part of the tuple to correct.
type InvalidPositionError struct {
	Descriptor string
	Axes       []Axis
	Reason     string
}

// Error implements the error interface.
func (e *InvalidPositionError) Error() string {
	names := make([]string, len(e.Axes))
	for i, a := range e.Axes {
		names[i] = string(a)
	}
	return fmt.Sprintf("invalid position <%s>: %s (axes: %s)",
		e.Descriptor, e.Reason, strings.Join(names, ", "))
}

// IncompleteRuleTableError reports that a validated Position has no
// applicable rule in a derivation or scheme table. It signals a defect in
// the table itself, not a bad input, and is not recoverable.
type IncompleteRuleTableError struct {
	Table      string
	Descriptor string
}

// Error implements the error interface.
func (e *IncompleteRuleTableError) Error() string {
	return fmt.Sprintf("incomplete rule table %s: no rule for <%s>", e.Table, e.Descriptor)
}
