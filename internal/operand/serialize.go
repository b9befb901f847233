package operand

import "github.com/cwbudde/go-xpr/internal/ast"

// Serialize converts a compiled Operand tree back to the same {n,t,c} wire
// shape ast.Node uses (spec §4.3, §6 "serialize"). The result is a faithful
// re-derivation of what the parser would have produced: typed sub-fields
// (If.Elifs, Switch.Cases, ...) are expanded back into elif/else/case/default
// wrapper nodes so that handing the result to ast.Deserialize and recompiling
// it reproduces an equivalent tree. Deserializing an Operand therefore goes
// through the Compiler rather than trying to directly rebuild bound
// callables, which can only be found again by name through the installed
// libraries anyway.
func Serialize(op Operand) ast.Serialized {
	switch o := op.(type) {
	case *Constant:
		return leaf(o.Value, ast.KindConstant)

	case *Variable:
		return leaf(o.NameString(), ast.KindVariable)

	case *KeyValue:
		return wrap(o.NameString(), ast.KindKeyValue, serializeAll(o.children))

	case *Array:
		return wrap("array", ast.KindArray, serializeAll(o.children))

	case *Object:
		return wrap("object", ast.KindObject, serializeAll(o.children))

	case *Operator:
		return wrap(o.NameString(), ast.KindOperator, serializeAll(o.children))
	case *ShortCircuitOperator:
		return wrap(o.NameString(), ast.KindOperator, serializeAll(o.children))
	case *AssignmentOperator:
		return wrap(o.NameString(), ast.KindOperator, serializeAll(o.children))

	case *Function:
		return wrap(o.NameString(), ast.KindFunctionRef, serializeAll(o.children))

	case *ContextFunction:
		return wrap(o.NameString(), ast.KindChildFunction, serializeAll(o.children))

	case *ArrowFunction:
		children := []ast.Serialized{Serialize(o.Receiver)}
		if o.Body != nil {
			children = append(children, leaf(o.Param.NameString(), ast.KindVariable), Serialize(o.Body))
		}
		return wrap(o.NameString(), ast.KindArrowFunction, children)

	case *Block:
		return wrap("block", ast.KindBlock, serializeAll(o.children))

	case *If:
		children := []ast.Serialized{Serialize(o.Condition), Serialize(o.Then)}
		for _, elif := range o.Elifs {
			children = append(children, wrap("elif", ast.KindElif, []ast.Serialized{Serialize(elif.Condition), Serialize(elif.Body)}))
		}
		if o.Else != nil {
			children = append(children, wrap("else", ast.KindElse, []ast.Serialized{Serialize(o.Else)}))
		}
		return wrap("if", ast.KindIf, children)

	case *While:
		return wrap("while", ast.KindWhile, []ast.Serialized{Serialize(o.Condition), Serialize(o.Body)})

	case *For:
		return wrap("for", ast.KindFor, []ast.Serialized{Serialize(o.Init), Serialize(o.Condition), Serialize(o.Step), Serialize(o.Body)})

	case *ForIn:
		return wrap("forIn", ast.KindForIn, []ast.Serialized{leaf(o.Variable.NameString(), ast.KindVariable), Serialize(o.Iterable), Serialize(o.Body)})

	case *Switch:
		var options []ast.Serialized
		for _, c := range o.Cases {
			options = append(options, wrap(c.Literal, ast.KindCase, []ast.Serialized{Serialize(c.Body)}))
		}
		if o.Default != nil {
			options = append(options, wrap("default", ast.KindDefault, []ast.Serialized{Serialize(o.Default)}))
		}
		return wrap("switch", ast.KindSwitch, []ast.Serialized{Serialize(o.Value), wrap("options", ast.KindOptions, options)})

	case *Break:
		return leaf("break", ast.KindBreak)
	case *Continue:
		return leaf("continue", ast.KindContinue)

	case *Return:
		if o.ValueExpr == nil {
			return leaf("return", ast.KindReturn)
		}
		return wrap("return", ast.KindReturn, []ast.Serialized{Serialize(o.ValueExpr)})

	default:
		return wrap(op.NameString(), ast.KindBlock, serializeAll(op.Children()))
	}
}

func serializeAll(children []Operand) []ast.Serialized {
	out := make([]ast.Serialized, 0, len(children))
	for _, c := range children {
		out = append(out, Serialize(c))
	}
	return out
}

func leaf(name any, kind ast.Kind) ast.Serialized {
	return ast.Serialized{N: name, T: string(kind)}
}

func wrap(name any, kind ast.Kind, children []ast.Serialized) ast.Serialized {
	return ast.Serialized{N: name, T: string(kind), C: children}
}
