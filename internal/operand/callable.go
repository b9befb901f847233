package operand

import (
	"github.com/cwbudde/go-xpr/internal/model"
	"github.com/cwbudde/go-xpr/internal/value"
)

// PlainFunc is the shape every ordinary library-supplied operator or
// function implementation has: evaluated argument values in, a value or
// error out (spec §4.2 Library: "function is a plain callable").
type PlainFunc func(args []value.Value) (value.Value, error)

// MethodFunc resolves a ContextFunction call: receiver value plus
// evaluated arguments in, a value or error out. Keyed by method name only
// (not by receiver type) — implementations switch on the receiver's
// dynamic type internally when a method means different things for
// different value shapes (spec §9 "ContextFunction ... dynamic dispatch on
// the receiver's runtime type and method name").
type MethodFunc func(receiver value.Value, args []value.Value) (value.Value, error)

// Operator is a regular (non-custom) binary or unary operator: every
// child is evaluated, then fn is called with their values.
type Operator struct {
	base
	Meta model.OperatorMetadata
	fn   PlainFunc
}

// NewOperator builds a plain Operator bound to fn.
func NewOperator(name string, children []Operand, meta model.OperatorMetadata, fn PlainFunc) *Operator {
	return &Operator{base: base{name: name, children: children}, Meta: meta, fn: fn}
}

func (o *Operator) Eval() (value.Value, Signal, error) {
	args, sig, err := evalAll(o.children)
	if err != nil || sig != SigNone {
		return nil, sig, err
	}
	v, err := o.fn(args)
	return v, SigNone, err
}

// Function is a regular (non-arrow, non-custom) function call: every
// argument is evaluated in order, then fn is called.
type Function struct {
	base
	Meta model.FunctionMetadata
	fn   PlainFunc
}

// NewFunction builds a plain Function bound to fn.
func NewFunction(name string, children []Operand, meta model.FunctionMetadata, fn PlainFunc) *Function {
	return &Function{base: base{name: name, children: children}, Meta: meta, fn: fn}
}

func (f *Function) Eval() (value.Value, Signal, error) {
	args, sig, err := evalAll(f.children)
	if err != nil || sig != SigNone {
		return nil, sig, err
	}
	v, err := f.fn(args)
	return v, SigNone, err
}

// ContextFunction is a `receiver.method(args...)` call where method is not
// a registered function name (spec §4.5: "ContextFunction to be resolved
// at eval time"). Children[0] is the receiver expression, the rest are
// arguments.
type ContextFunction struct {
	base
	resolver MethodFunc
}

// NewContextFunction builds a ContextFunction. resolver may be nil, in
// which case Eval fails with an unresolved-method error — the Compiler
// looks resolver up across installed libraries by method name before
// constructing this operand.
func NewContextFunction(name string, children []Operand, resolver MethodFunc) *ContextFunction {
	return &ContextFunction{base: base{name: name, children: children}, resolver: resolver}
}

func (c *ContextFunction) Eval() (value.Value, Signal, error) {
	if len(c.children) == 0 {
		return nil, SigNone, methodReceiverError(c.NameString())
	}
	recv, sig, err := c.children[0].Eval()
	if err != nil || sig != SigNone {
		return nil, sig, err
	}
	args, sig, err := evalAll(c.children[1:])
	if err != nil || sig != SigNone {
		return nil, sig, err
	}
	if c.resolver == nil {
		return nil, SigNone, methodReceiverError(c.NameString())
	}
	v, err := c.resolver(recv, args)
	return v, SigNone, err
}

// LambdaInvoker is how an ArrowFunction's higher-order behavior (map,
// filter, any, all, ...) is supplied by the library: given the receiver's
// elements and a `call` closure that invokes the lambda body on one
// element, it assembles whatever the higher-order function returns.
type LambdaInvoker func(items []value.Value, call func(value.Value) (value.Value, error)) (value.Value, error)

// ArrowFunction represents `receiver.name(x => body)` or the no-lambda
// form `receiver.name()` (spec §4.4 "Method / arrow calls", §4.6).
type ArrowFunction struct {
	base
	Receiver Operand
	Param    *Variable // nil when called with no lambda
	Body     Operand   // nil when called with no lambda
	invoke   LambdaInvoker
}

// NewArrowFunction builds an ArrowFunction. param/body are nil for the
// no-lambda call form (e.g. `list.map()`).
func NewArrowFunction(name string, receiver Operand, param *Variable, body Operand, invoke LambdaInvoker) *ArrowFunction {
	children := []Operand{receiver}
	if body != nil {
		children = append(children, body)
	}
	return &ArrowFunction{base: base{name: name, children: children}, Receiver: receiver, Param: param, Body: body, invoke: invoke}
}

// Eval evaluates the receiver to an array, then hands the elements to the
// library-supplied invoker. Each lambda invocation gets a fresh child
// Context with only the parameter bound, so outer bindings of the same
// name are shadowed during the call and restored afterward (spec §8
// property 7); `call` wires the body to that child Context.
func (a *ArrowFunction) Eval() (value.Value, Signal, error) {
	recv, sig, err := a.Receiver.Eval()
	if err != nil || sig != SigNone {
		return nil, sig, err
	}
	items, ok := recv.([]value.Value)
	if !ok {
		return nil, SigNone, arrowReceiverError(a.NameString())
	}

	call := func(x value.Value) (value.Value, error) {
		if a.Param == nil || a.Body == nil {
			return nil, nil
		}
		child := a.Context().NewChild()
		child.Declare(a.Param.NameString(), x)
		Wire(a.Body, child)
		v, _, err := a.Body.Eval()
		return v, err
	}

	v, err := a.invoke(items, call)
	return v, SigNone, err
}

func evalAll(operands []Operand) ([]value.Value, Signal, error) {
	values := make([]value.Value, 0, len(operands))
	for _, op := range operands {
		v, sig, err := op.Eval()
		if err != nil || sig != SigNone {
			return nil, sig, err
		}
		values = append(values, v)
	}
	return values, SigNone, nil
}
