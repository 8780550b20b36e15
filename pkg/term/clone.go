package term

func (c *ConstNode) Clone() Term {
	return &ConstNode{Val: c.Val}
}

func (v *VarNode) Clone() Term {
	return &VarNode{Sym: v.Sym}
}

func (a *AggNode) Clone() Term {
	return &AggNode{
		Op:    a.Op,
		Terms: cloneAll(a.Terms),
	}
}

func (tr *TrigNode) Clone() Term {
	return &TrigNode{
		Op:    tr.Op,
		Child: tr.Child.Clone(),
	}
}
