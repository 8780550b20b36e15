package term

import "fmt"

// MissingBindingsError reports a variable reached during Reduce, where no
// binding table exists at all.
type MissingBindingsError struct {
	Symbol rune
}

func (e *MissingBindingsError) Error() string {
	return fmt.Sprintf("No variable values provided (looking for %c)", e.Symbol)
}

// UnboundVariableError reports a binding table that lacks an entry for the
// variable's symbol.
type UnboundVariableError struct {
	Symbol rune
}

func (e *UnboundVariableError) Error() string {
	return fmt.Sprintf("No value provided for variable %c", e.Symbol)
}

// DivisionByZeroError reports a quotient divisor whose magnitude fell below
// the near-zero threshold.
type DivisionByZeroError struct{}

func (e *DivisionByZeroError) Error() string {
	return "Attempted division by zero."
}

// EmptyTermError reports a Difference or Quotient node evaluated with no
// child terms. Such nodes have no defined value; the constructors make them
// impossible, but struct literals can still produce them.
type EmptyTermError struct {
	Op AggOp
}

func (e *EmptyTermError) Error() string {
	return fmt.Sprintf("A %s requires at least one child term", e.Op)
}

var (
	_ error = (*MissingBindingsError)(nil)
	_ error = (*UnboundVariableError)(nil)
	_ error = (*DivisionByZeroError)(nil)
	_ error = (*EmptyTermError)(nil)
)
