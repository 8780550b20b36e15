package term

// Add returns a new term representing l + r. Sum trees are kept flat: when
// either operand is itself a Sum its children are spliced into the result
// rather than nested, so repeated addition never builds a Sum-of-Sums.
// Operand order is preserved; l's contribution always precedes r's. The
// operands are cloned into the result and never mutated.
func Add(l, r Term) Term {
	ls, lok := sumChildren(l)
	rs, rok := sumChildren(r)
	switch {
	case lok && rok:
		terms := make([]Term, 0, len(ls)+len(rs))
		terms = append(terms, cloneAll(ls)...)
		terms = append(terms, cloneAll(rs)...)
		return &AggNode{Op: OpSum, Terms: terms}
	case lok:
		terms := make([]Term, 0, len(ls)+1)
		terms = append(terms, cloneAll(ls)...)
		terms = append(terms, r.Clone())
		return &AggNode{Op: OpSum, Terms: terms}
	case rok:
		terms := make([]Term, 0, 1+len(rs))
		terms = append(terms, l.Clone())
		terms = append(terms, cloneAll(rs)...)
		return &AggNode{Op: OpSum, Terms: terms}
	default:
		return &AggNode{Op: OpSum, Terms: []Term{l.Clone(), r.Clone()}}
	}
}

// sumChildren reports whether t is a Sum node, returning its child list.
func sumChildren(t Term) ([]Term, bool) {
	if a, ok := t.(*AggNode); ok && a.Op == OpSum {
		return a.Terms, true
	}
	return nil, false
}

func cloneAll(terms []Term) []Term {
	out := make([]Term, len(terms))
	for i, t := range terms {
		out[i] = t.Clone()
	}
	return out
}
