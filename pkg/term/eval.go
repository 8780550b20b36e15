package term

import (
	"fmt"
	"math"
)

// divisionEpsilon is the magnitude below which a divisor is treated as zero.
const divisionEpsilon = 1e-17

func (c *ConstNode) Evaluate(vals Bindings) (float64, error) { return c.eval(vals, true) }

func (c *ConstNode) Reduce() (float64, error) { return c.eval(nil, false) }

func (c *ConstNode) eval(vals Bindings, haveVals bool) (float64, error) {
	return c.Val, nil
}

func (v *VarNode) Evaluate(vals Bindings) (float64, error) { return v.eval(vals, true) }

func (v *VarNode) Reduce() (float64, error) { return v.eval(nil, false) }

func (v *VarNode) eval(vals Bindings, haveVals bool) (float64, error) {
	if !haveVals {
		return 0, &MissingBindingsError{Symbol: v.Sym.Symbol}
	}
	val, ok := vals[v.Sym.Symbol]
	if !ok {
		return 0, &UnboundVariableError{Symbol: v.Sym.Symbol}
	}
	return val, nil
}

func (a *AggNode) Evaluate(vals Bindings) (float64, error) { return a.eval(vals, true) }

func (a *AggNode) Reduce() (float64, error) { return a.eval(nil, false) }

func (a *AggNode) eval(vals Bindings, haveVals bool) (float64, error) {
	switch a.Op {
	case OpSum:
		sum := 0.0
		for _, t := range a.Terms {
			v, err := t.eval(vals, haveVals)
			if err != nil {
				return 0, err
			}
			sum += v
		}
		return sum, nil

	case OpDifference:
		if len(a.Terms) == 0 {
			return 0, &EmptyTermError{Op: OpDifference}
		}
		diff, err := a.Terms[0].eval(vals, haveVals)
		if err != nil {
			return 0, err
		}
		for _, t := range a.Terms[1:] {
			v, err := t.eval(vals, haveVals)
			if err != nil {
				return 0, err
			}
			diff -= v
		}
		return diff, nil

	case OpProduct:
		product := 1.0
		for _, t := range a.Terms {
			v, err := t.eval(vals, haveVals)
			if err != nil {
				return 0, err
			}
			product *= v
		}
		return product, nil

	case OpQuotient:
		if len(a.Terms) == 0 {
			return 0, &EmptyTermError{Op: OpQuotient}
		}
		quotient, err := a.Terms[0].eval(vals, haveVals)
		if err != nil {
			return 0, err
		}
		// The divisor loop starts at index 0, so the first child divides
		// itself out before the remaining children apply.
		for _, t := range a.Terms {
			v, err := t.eval(vals, haveVals)
			if err != nil {
				return 0, err
			}
			if math.Abs(v) < divisionEpsilon {
				return 0, &DivisionByZeroError{}
			}
			quotient /= v
		}
		return quotient, nil

	default:
		return 0, fmt.Errorf("unknown aggregate op %d", a.Op)
	}
}

func (tr *TrigNode) Evaluate(vals Bindings) (float64, error) { return tr.eval(vals, true) }

func (tr *TrigNode) Reduce() (float64, error) { return tr.eval(nil, false) }

func (tr *TrigNode) eval(vals Bindings, haveVals bool) (float64, error) {
	v, err := tr.Child.eval(vals, haveVals)
	if err != nil {
		return 0, err
	}
	switch tr.Op {
	case OpSine:
		return math.Sin(v), nil
	case OpCosine:
		return math.Cos(v), nil
	case OpTangent:
		return math.Tan(v), nil
	case OpArcSine:
		return math.Asin(v), nil
	case OpArcCosine:
		return math.Acos(v), nil
	case OpArcTangent:
		return math.Atan(v), nil
	default:
		return 0, fmt.Errorf("unknown trig op %d", tr.Op)
	}
}
