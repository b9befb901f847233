package operand

import "github.com/cwbudde/go-xpr/internal/value"

// Constant holds a literal value baked in at compile time, either because
// the source had a literal (number/string/true/false) or because constant
// folding (spec §4.5 "reduce") replaced a subtree that was provably
// constant.
type Constant struct {
	base
	Value value.Value
}

// NewConstant builds a Constant operand with no children. It serves both
// parsed literals and reduce(), which uses it to replace a folded
// Operator subtree with its value.
func NewConstant(v value.Value) *Constant {
	return &Constant{base: base{name: v}, Value: v}
}

// Type returns the value's library-facing type tag.
func (c *Constant) Type() string { return value.TypeName(c.Value) }

func (c *Constant) Eval() (value.Value, Signal, error) {
	return c.Value, SigNone, nil
}

// Variable looks up a name in the current Context at eval time.
type Variable struct {
	base
}

// NewVariable builds a Variable operand bound to name.
func NewVariable(name string) *Variable {
	return &Variable{base: base{name: name}}
}

// Eval resolves the variable against the current Context. A variable that
// is not bound anywhere in the scope chain evaluates to null rather than
// raising — the lenient default a rules/filter engine's end users expect
// (see DESIGN.md for the Open Question this resolves).
func (v *Variable) Eval() (value.Value, Signal, error) {
	val, _ := v.Context().Get(v.NameString())
	return val, SigNone, nil
}
