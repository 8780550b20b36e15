package term

import "github.com/wildfunctions/symbolic_terms/pkg/variable"

// Bindings maps variable symbols to their numeric values. It is supplied by
// the caller at evaluation time and is never written to by this package.
type Bindings map[rune]float64

// Term is the interface for all expression tree nodes. The variant set is
// closed: the unexported eval method keeps outside packages from adding
// node types, so evaluation can match exhaustively.
type Term interface {
	// Evaluate resolves the term to a numeric value, looking variables up
	// in vals. A variable whose symbol is absent from vals is an error.
	Evaluate(vals Bindings) (float64, error)
	// Reduce evaluates a term assuming only constants. Any variable
	// encountered is unresolvable and fails with *MissingBindingsError.
	Reduce() (float64, error)
	// Clone returns an independent deep copy of the tree.
	Clone() Term
	String() string
	LaTeX() string
	NodeCount() int
	Depth() int

	eval(vals Bindings, haveVals bool) (float64, error)
}

// AggOp identifies an n-ary aggregate operation over an ordered child list.
type AggOp int

const (
	OpSum AggOp = iota
	OpDifference
	OpProduct
	OpQuotient
)

// String returns the operation name, e.g. "sum".
func (op AggOp) String() string {
	switch op {
	case OpSum:
		return "sum"
	case OpDifference:
		return "difference"
	case OpProduct:
		return "product"
	case OpQuotient:
		return "quotient"
	default:
		return "aggregate"
	}
}

// TrigOp identifies a unary trigonometric operation.
type TrigOp int

const (
	OpSine TrigOp = iota
	OpCosine
	OpTangent
	OpArcSine
	OpArcCosine
	OpArcTangent
)

// String returns the conventional function name, e.g. "sin".
func (op TrigOp) String() string {
	switch op {
	case OpSine:
		return "sin"
	case OpCosine:
		return "cos"
	case OpTangent:
		return "tan"
	case OpArcSine:
		return "asin"
	case OpArcCosine:
		return "acos"
	case OpArcTangent:
		return "atan"
	default:
		return "trig"
	}
}

// ConstNode is a fixed-value leaf term.
type ConstNode struct {
	Val float64
}

// VarNode is a leaf term whose value is resolved against the bindings at
// evaluation time.
type VarNode struct {
	Sym variable.Variable
}

// AggNode combines an ordered sequence of child terms under one n-ary
// operation. The node exclusively owns its children; trees never share
// subterms.
type AggNode struct {
	Op    AggOp
	Terms []Term
}

// TrigNode applies a trigonometric function, in radians, to a single owned
// child term.
type TrigNode struct {
	Op    TrigOp
	Child Term
}

// Constant returns a fixed-value term.
func Constant(val float64) *ConstNode {
	return &ConstNode{Val: val}
}

// Symbol returns a variable term for the given symbol.
func Symbol(symbol rune) *VarNode {
	return &VarNode{Sym: variable.New(symbol)}
}

// Var returns a variable term wrapping an existing variable.
func Var(v variable.Variable) *VarNode {
	return &VarNode{Sym: v}
}

// Sum returns a term adding the given children left to right. With no
// children it evaluates to 0.
func Sum(terms ...Term) *AggNode {
	return &AggNode{Op: OpSum, Terms: terms}
}

// Difference returns a term subtracting each of rest, in order, from first.
func Difference(first Term, rest ...Term) *AggNode {
	return &AggNode{Op: OpDifference, Terms: prepend(first, rest)}
}

// Product returns a term multiplying the given children left to right. With
// no children it evaluates to 1.
func Product(terms ...Term) *AggNode {
	return &AggNode{Op: OpProduct, Terms: terms}
}

// Quotient returns a term combining children by division. Evaluation seeds
// the running result with the first child and then divides by every child in
// order, the first included, so a two-child quotient yields
// first/first/second. Callers wanting a plain a/b can pass Constant(1) as
// the first child.
func Quotient(first Term, rest ...Term) *AggNode {
	return &AggNode{Op: OpQuotient, Terms: prepend(first, rest)}
}

// Sine returns a term applying the sine of the child's value, in radians.
func Sine(child Term) *TrigNode {
	return &TrigNode{Op: OpSine, Child: child}
}

// Cosine returns a term applying the cosine of the child's value, in radians.
func Cosine(child Term) *TrigNode {
	return &TrigNode{Op: OpCosine, Child: child}
}

// Tangent returns a term applying the tangent of the child's value, in
// radians.
func Tangent(child Term) *TrigNode {
	return &TrigNode{Op: OpTangent, Child: child}
}

// ArcSine returns a term applying the inverse sine of the child's value.
// Inputs outside [-1, 1] yield NaN, as math.Asin does.
func ArcSine(child Term) *TrigNode {
	return &TrigNode{Op: OpArcSine, Child: child}
}

// ArcCosine returns a term applying the inverse cosine of the child's value.
// Inputs outside [-1, 1] yield NaN, as math.Acos does.
func ArcCosine(child Term) *TrigNode {
	return &TrigNode{Op: OpArcCosine, Child: child}
}

// ArcTangent returns a term applying the inverse tangent of the child's
// value.
func ArcTangent(child Term) *TrigNode {
	return &TrigNode{Op: OpArcTangent, Child: child}
}

func prepend(first Term, rest []Term) []Term {
	terms := make([]Term, 0, 1+len(rest))
	terms = append(terms, first)
	return append(terms, rest...)
}
