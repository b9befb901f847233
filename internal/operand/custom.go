package operand

import (
	"fmt"

	"github.com/cwbudde/go-xpr/internal/value"
)

// ShortCircuitOperator implements && and || without evaluating the second
// operand unless needed (spec §9 "Short-circuit &&/||"). It is built by a
// library's custom constructor hook, not the generic Operator path.
type ShortCircuitOperator struct {
	base
	IsOr bool
}

// NewShortCircuitOperator builds a && (isOr=false) or || (isOr=true)
// operand over the two unevaluated children.
func NewShortCircuitOperator(name string, children []Operand, isOr bool) *ShortCircuitOperator {
	return &ShortCircuitOperator{base: base{name: name, children: children}, IsOr: isOr}
}

func (s *ShortCircuitOperator) Eval() (value.Value, Signal, error) {
	left, sig, err := s.children[0].Eval()
	if err != nil || sig != SigNone {
		return nil, sig, err
	}
	leftTrue := value.IsTruthy(left)
	if s.IsOr && leftTrue {
		return true, SigNone, nil
	}
	if !s.IsOr && !leftTrue {
		return false, SigNone, nil
	}
	right, sig, err := s.children[1].Eval()
	if err != nil || sig != SigNone {
		return nil, sig, err
	}
	return value.IsTruthy(right), SigNone, nil
}

// AssignmentOperator implements `=` and the compound assignments (`+=`,
// `-=`, ...) (spec §9 "assignment = , += ..."). Combine is nil for plain
// `=`; otherwise it combines the target's current value with the RHS
// before storing (e.g. `+=` calls the `+` implementation).
type AssignmentOperator struct {
	base
	Combine PlainFunc
}

// NewAssignmentOperator builds an assignment operand. children[0] must be
// a Variable or a `[]` index Operator; children[1] is the RHS expression.
func NewAssignmentOperator(name string, children []Operand, combine PlainFunc) *AssignmentOperator {
	return &AssignmentOperator{base: base{name: name, children: children}, Combine: combine}
}

func (a *AssignmentOperator) Eval() (value.Value, Signal, error) {
	rhs, sig, err := a.children[1].Eval()
	if err != nil || sig != SigNone {
		return nil, sig, err
	}

	target := a.children[0]
	if a.Combine != nil {
		current, sig, err := target.Eval()
		if err != nil || sig != SigNone {
			return nil, sig, err
		}
		rhs, err = a.Combine([]value.Value{current, rhs})
		if err != nil {
			return nil, SigNone, err
		}
	}

	switch t := target.(type) {
	case *Variable:
		t.Context().Set(t.NameString(), rhs)
		return rhs, SigNone, nil
	case *Operator:
		if t.NameString() != "[]" || len(t.Children()) != 2 {
			return nil, SigNone, fmt.Errorf("cannot assign to %q", t.NameString())
		}
		return rhs, SigNone, assignIndexed(t.Children()[0], t.Children()[1], rhs)
	default:
		return nil, SigNone, fmt.Errorf("cannot assign to %T", target)
	}
}

// assignIndexed handles `name[index] = value` by re-reading the
// container, mutating a copy, and writing it back to the variable that
// holds it. Values have no interior mutability (slices/maps are plain Go
// values here), so index-assignment is always read-modify-write on the
// base variable.
func assignIndexed(base Operand, index Operand, rhs value.Value) error {
	variable, ok := base.(*Variable)
	if !ok {
		return fmt.Errorf("indexed assignment requires a variable base")
	}
	idx, sig, err := index.Eval()
	if err != nil {
		return err
	}
	if sig != SigNone {
		return nil
	}

	container, _ := variable.Context().Get(variable.NameString())
	switch c := container.(type) {
	case []value.Value:
		i, ok := idx.(int64)
		if !ok || i < 0 || int(i) >= len(c) {
			return fmt.Errorf("array index out of range")
		}
		updated := make([]value.Value, len(c))
		copy(updated, c)
		updated[i] = rhs
		variable.Context().Set(variable.NameString(), updated)
		return nil
	case map[string]value.Value:
		key, ok := idx.(string)
		if !ok {
			return fmt.Errorf("object key must be a string")
		}
		updated := make(map[string]value.Value, len(c)+1)
		for k, v := range c {
			updated[k] = v
		}
		updated[key] = rhs
		variable.Context().Set(variable.NameString(), updated)
		return nil
	default:
		return fmt.Errorf("cannot index into %T", container)
	}
}
