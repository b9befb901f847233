package compiler

import "github.com/cwbudde/go-xpr/internal/operand"

// reduce implements constant folding (spec §4.5 "Constant folding"):
// an Operator whose every child is a Constant is evaluated once and
// replaced by the resulting Constant; every other variant recurses into
// its children but is never itself folded, and Function calls are never
// folded even with all-constant arguments since they may be effectful or
// context-dependent.
//
// Variants with typed fields (If.Condition, While.Body, ...) are reduced
// through those fields, which is what their Eval and Serialize read. The
// generic children slice shares the same Operand pointers, so folding
// inside a child shows in both; when a typed field itself is replaced by
// a new Constant, Children() still reports the pre-fold operand.
func reduce(op operand.Operand) (operand.Operand, error) {
	switch o := op.(type) {
	case *operand.Operator:
		return reduceOperator(o)
	case *operand.If:
		return reduceIf(o)
	case *operand.While:
		var err error
		if o.Condition, err = reduce(o.Condition); err != nil {
			return nil, err
		}
		if o.Body, err = reduce(o.Body); err != nil {
			return nil, err
		}
		return o, nil
	case *operand.For:
		var err error
		if o.Init, err = reduce(o.Init); err != nil {
			return nil, err
		}
		if o.Condition, err = reduce(o.Condition); err != nil {
			return nil, err
		}
		if o.Step, err = reduce(o.Step); err != nil {
			return nil, err
		}
		if o.Body, err = reduce(o.Body); err != nil {
			return nil, err
		}
		return o, nil
	case *operand.ForIn:
		var err error
		if o.Iterable, err = reduce(o.Iterable); err != nil {
			return nil, err
		}
		if o.Body, err = reduce(o.Body); err != nil {
			return nil, err
		}
		return o, nil
	case *operand.Switch:
		return reduceSwitch(o)
	case *operand.ArrowFunction:
		var err error
		if o.Receiver, err = reduce(o.Receiver); err != nil {
			return nil, err
		}
		if o.Body != nil {
			if o.Body, err = reduce(o.Body); err != nil {
				return nil, err
			}
		}
		return o, nil
	case *operand.Return:
		if o.ValueExpr != nil {
			reduced, err := reduce(o.ValueExpr)
			if err != nil {
				return nil, err
			}
			o.ValueExpr = reduced
		}
		return o, nil
	default:
		return reduceChildrenInPlace(op)
	}
}

func reduceOperator(o *operand.Operator) (operand.Operand, error) {
	allConstant := true
	for i, child := range o.Children() {
		reduced, err := reduce(child)
		if err != nil {
			return nil, err
		}
		o.SetChild(i, reduced)
		if _, ok := reduced.(*operand.Constant); !ok {
			allConstant = false
		}
	}
	if !allConstant {
		return o, nil
	}
	v, sig, err := o.Eval()
	if err != nil {
		return nil, err
	}
	if sig != operand.SigNone {
		return o, nil
	}
	return operand.NewConstant(v), nil
}

func reduceIf(o *operand.If) (operand.Operand, error) {
	var err error
	if o.Condition, err = reduce(o.Condition); err != nil {
		return nil, err
	}
	if o.Then, err = reduce(o.Then); err != nil {
		return nil, err
	}
	for _, elif := range o.Elifs {
		if elif.Condition, err = reduce(elif.Condition); err != nil {
			return nil, err
		}
		if elif.Body, err = reduce(elif.Body); err != nil {
			return nil, err
		}
	}
	if o.Else != nil {
		if o.Else, err = reduce(o.Else); err != nil {
			return nil, err
		}
	}
	return o, nil
}

func reduceSwitch(o *operand.Switch) (operand.Operand, error) {
	var err error
	if o.Value, err = reduce(o.Value); err != nil {
		return nil, err
	}
	for _, c := range o.Cases {
		if c.Body, err = reduce(c.Body); err != nil {
			return nil, err
		}
	}
	if o.Default != nil {
		if o.Default, err = reduce(o.Default); err != nil {
			return nil, err
		}
	}
	return o, nil
}

// reduceChildrenInPlace handles every variant without typed sub-fields
// (Block, Array, Object, KeyValue, Function, ContextFunction,
// ShortCircuitOperator, AssignmentOperator, Break,
// Continue, Constant, Variable): recurse into Children() and write back
// through SetChild, never replacing the node itself with a Constant.
func reduceChildrenInPlace(op operand.Operand) (operand.Operand, error) {
	for i, child := range op.Children() {
		reduced, err := reduce(child)
		if err != nil {
			return nil, err
		}
		op.SetChild(i, reduced)
	}
	return op, nil
}
