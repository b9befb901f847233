// Introspection queries over a compiled Operand tree (spec §4.7): vars,
// constants, operators, functions, and operandType. Each walks the tree
// once, recording what it finds by name; nested children are only
// recursed into when a node isn't itself one of the kinds being collected,
// matching the shape of the original py-expression SourceManager queries.
package operand

import "github.com/cwbudde/go-xpr/internal/value"

// Vars returns every Variable name reachable from op, mapped to its
// inferred type (via OperandType).
func Vars(op Operand) map[string]string {
	out := map[string]string{}
	collectVars(op, out)
	return out
}

func collectVars(op Operand, out map[string]string) {
	if v, ok := op.(*Variable); ok {
		out[v.NameString()] = OperandType(v)
	}
	for _, child := range op.Children() {
		if v, ok := child.(*Variable); ok {
			out[v.NameString()] = OperandType(v)
		} else if len(child.Children()) > 0 {
			collectVars(child, out)
		}
	}
}

// Constants returns every Constant value reachable from op, keyed by its
// rendered value and mapped to its type tag.
func Constants(op Operand) map[string]string {
	out := map[string]string{}
	collectConstants(op, out)
	return out
}

func collectConstants(op Operand, out map[string]string) {
	if c, ok := op.(*Constant); ok {
		out[value.String(c.Value)] = c.Type()
	}
	for _, child := range op.Children() {
		if c, ok := child.(*Constant); ok {
			out[value.String(c.Value)] = c.Type()
		} else if len(child.Children()) > 0 {
			collectConstants(child, out)
		}
	}
}

// Operators returns the Operator names found from op downward, mapped to
// their category. An Operator met as a child is recorded but its own
// operands are not searched, so an operator nested inside another
// operator's operands is not listed.
func Operators(op Operand) map[string]string {
	out := map[string]string{}
	collectOperators(op, out)
	return out
}

func collectOperators(op Operand, out map[string]string) {
	if o, ok := op.(*Operator); ok {
		out[o.NameString()] = string(o.Meta.Category)
	}
	for _, child := range op.Children() {
		if o, ok := child.(*Operator); ok {
			out[o.NameString()] = string(o.Meta.Category)
		} else if len(child.Children()) > 0 {
			collectOperators(child, out)
		}
	}
}

// Functions returns the Function names found from op downward, mapped to
// their metadata. A Function met as a child is recorded but its own
// arguments are not searched, so a call nested inside another call's
// arguments is not listed.
func Functions(op Operand) map[string]any {
	out := map[string]any{}
	collectFunctions(op, out)
	return out
}

func collectFunctions(op Operand, out map[string]any) {
	if f, ok := op.(*Function); ok {
		out[f.NameString()] = f.Meta
	}
	for _, child := range op.Children() {
		if f, ok := child.(*Function); ok {
			out[f.NameString()] = f.Meta
		} else if len(child.Children()) > 0 {
			collectFunctions(child, out)
		}
	}
}

// OperandType infers op's expected type from its parent (spec §4.7): for
// an Operator parent it consults the matching arg spec, except in the
// comparison category where the sibling's type is returned instead; for a
// Function parent it reads the matching arg spec. A variable with no
// operator/function parent has no way to infer a type and is "any" (spec
// §9 Open Questions).
func OperandType(op Operand) string {
	parent := op.Parent()
	if parent == nil {
		return "any"
	}

	switch p := parent.(type) {
	case *Operator:
		if p.Meta.Category == "comparison" {
			otherIndex := 1
			if op.Index() == 1 {
				otherIndex = 0
			}
			return siblingType(p.Children()[otherIndex])
		}
		if op.Index() < len(p.Meta.Args) {
			return p.Meta.Args[op.Index()].Type
		}
		return "any"
	case *Function:
		if op.Index() < len(p.Meta.Args) {
			return p.Meta.Args[op.Index()].Type
		}
		return "any"
	default:
		return "any"
	}
}

func siblingType(sibling Operand) string {
	switch s := sibling.(type) {
	case *Constant:
		return s.Type()
	case *Function:
		return s.Meta.Return
	case *Operator:
		return s.Meta.Return
	default:
		return "any"
	}
}
