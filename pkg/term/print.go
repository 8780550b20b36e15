package term

import (
	"strconv"
	"strings"
)

var aggOpSymbols = map[AggOp]string{
	OpSum:        "+",
	OpDifference: "-",
	OpProduct:    "*",
	OpQuotient:   "/",
}

var trigLaTeXNames = map[TrigOp]string{
	OpSine:       "\\sin",
	OpCosine:     "\\cos",
	OpTangent:    "\\tan",
	OpArcSine:    "\\arcsin",
	OpArcCosine:  "\\arccos",
	OpArcTangent: "\\arctan",
}

// String methods

func (c *ConstNode) String() string {
	return strconv.FormatFloat(c.Val, 'g', -1, 64)
}

func (v *VarNode) String() string {
	return v.Sym.String()
}

func (a *AggNode) String() string {
	if len(a.Terms) == 0 {
		if a.Op == OpProduct {
			return "1"
		}
		return "0"
	}
	parts := make([]string, len(a.Terms))
	for i, t := range a.Terms {
		parts[i] = t.String()
	}
	sym := aggOpSymbols[a.Op]
	return "(" + strings.Join(parts, " "+sym+" ") + ")"
}

func (tr *TrigNode) String() string {
	return tr.Op.String() + "(" + tr.Child.String() + ")"
}

// LaTeX methods

func (c *ConstNode) LaTeX() string {
	return c.String()
}

func (v *VarNode) LaTeX() string {
	return v.Sym.String()
}

func (a *AggNode) LaTeX() string {
	if len(a.Terms) == 0 {
		if a.Op == OpProduct {
			return "1"
		}
		return "0"
	}
	parts := make([]string, len(a.Terms))
	for i, t := range a.Terms {
		parts[i] = t.LaTeX()
	}
	switch a.Op {
	case OpSum:
		return "{" + strings.Join(parts, "} + {") + "}"
	case OpDifference:
		return "{" + strings.Join(parts, "} - {") + "}"
	case OpProduct:
		return "{" + strings.Join(parts, "} \\cdot {") + "}"
	case OpQuotient:
		// Fold left so (a / b / c) renders as nested fractions.
		acc := parts[0]
		for _, p := range parts[1:] {
			acc = "\\frac{" + acc + "}{" + p + "}"
		}
		return acc
	default:
		return strings.Join(parts, " ")
	}
}

func (tr *TrigNode) LaTeX() string {
	return trigLaTeXNames[tr.Op] + "{(" + tr.Child.LaTeX() + ")}"
}
