package term

func (c *ConstNode) NodeCount() int { return 1 }
func (v *VarNode) NodeCount() int   { return 1 }

func (a *AggNode) NodeCount() int {
	n := 1
	for _, t := range a.Terms {
		n += t.NodeCount()
	}
	return n
}

func (tr *TrigNode) NodeCount() int { return 1 + tr.Child.NodeCount() }

func (c *ConstNode) Depth() int { return 1 }
func (v *VarNode) Depth() int   { return 1 }

func (a *AggNode) Depth() int {
	max := 0
	for _, t := range a.Terms {
		if d := t.Depth(); d > max {
			max = d
		}
	}
	return 1 + max
}

func (tr *TrigNode) Depth() int { return 1 + tr.Child.Depth() }
