package variable

import "fmt"

// Variable is a single-character symbol standing for a value that is
// arbitrary or unknown until evaluation time, when it is looked up in a
// binding table by its symbol.
type Variable struct {
	Symbol rune
}

// New creates a variable with the given symbol.
func New(symbol rune) Variable {
	return Variable{Symbol: symbol}
}

// Parse constructs a variable from a one-character string. Strings holding
// zero runes or more than one rune fail with *InvalidLengthError.
func Parse(s string) (Variable, error) {
	runes := []rune(s)
	switch len(runes) {
	case 0:
		return Variable{}, &InvalidLengthError{Count: 0}
	case 1:
		return Variable{Symbol: runes[0]}, nil
	default:
		return Variable{}, &InvalidLengthError{Count: len(runes)}
	}
}

// String renders the bare symbol, with no quoting or type name.
func (v Variable) String() string {
	return string(v.Symbol)
}

// InvalidLengthError reports a variable name that is not exactly one
// character long. Count is the number of characters observed.
type InvalidLengthError struct {
	Count int
}

func (e *InvalidLengthError) Error() string {
	if e.Count == 0 {
		return "Variables must be one character long (none given)."
	}
	return fmt.Sprintf("Variables cannot be longer than one character (%d found).", e.Count)
}

var _ error = (*InvalidLengthError)(nil)
