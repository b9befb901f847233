package compiler

import (
	"github.com/cwbudde/go-xpr/internal/ast"
	"github.com/cwbudde/go-xpr/internal/errors"
	"github.com/cwbudde/go-xpr/internal/operand"
)

func (c *Compiler) compileOperator(n *ast.Node) (operand.Operand, error) {
	name := n.NameString()
	children, err := c.compileChildren(n.Children)
	if err != nil {
		return nil, err
	}

	meta, err := c.model.GetOperatorMetadata(name, len(children))
	if err != nil {
		return nil, err
	}
	lib, err := c.libraryFor(meta.Lib)
	if err != nil {
		return nil, err
	}

	if ctor, ok := lib.OperatorConstructor(name, len(children)); ok {
		return ctor(name, children), nil
	}
	fn, ok := lib.OperatorFunc(name, len(children))
	if !ok {
		return nil, errors.NewModelError("operator %q has no implementation in library %q", name, lib.Name)
	}
	return operand.NewOperator(name, children, meta, fn), nil
}

// compileFunction handles a flat, non-dotted call: `name(args...)`. Arrow
// functions are never reachable this way — only through a dotted
// receiver, which the parser emits as an arrowFunction node directly.
func (c *Compiler) compileFunction(n *ast.Node) (operand.Operand, error) {
	name := n.NameString()
	meta, err := c.model.GetFunctionMetadata(name)
	if err != nil {
		return nil, err
	}
	lib, err := c.libraryFor(meta.Lib)
	if err != nil {
		return nil, err
	}

	children, err := c.compileChildren(n.Children)
	if err != nil {
		return nil, err
	}
	fn, ok := lib.FunctionFunc(name)
	if !ok {
		return nil, errors.NewModelError("function %q has no implementation in library %q", name, lib.Name)
	}
	return operand.NewFunction(name, children, meta, fn), nil
}

// compileChildFunction handles a dotted call to a non-arrow function:
// `receiver.name(args...)`, where children is already [receiver, ...args]
// (spec §4.5). A registered name is a regular function call; an
// unregistered one becomes a ContextFunction resolved against every
// installed library's method table at eval time.
func (c *Compiler) compileChildFunction(n *ast.Node) (operand.Operand, error) {
	name := n.NameString()
	children, err := c.compileChildren(n.Children)
	if err != nil {
		return nil, err
	}

	if !c.model.HasFunction(name) {
		resolver, _ := c.resolveMethod(name)
		return operand.NewContextFunction(name, children, resolver), nil
	}

	meta, err := c.model.GetFunctionMetadata(name)
	if err != nil {
		return nil, err
	}
	lib, err := c.libraryFor(meta.Lib)
	if err != nil {
		return nil, err
	}
	fn, ok := lib.FunctionFunc(name)
	if !ok {
		return nil, errors.NewModelError("function %q has no implementation in library %q", name, lib.Name)
	}
	return operand.NewFunction(name, children, meta, fn), nil
}

// compileArrowFunction handles an arrowFunction node: name is the
// receiver method (map, filter, ...), children is [receiver] for the
// no-lambda call form or [receiver, paramVariable, body] when a lambda
// was supplied (spec §4.4 "Method / arrow calls").
func (c *Compiler) compileArrowFunction(n *ast.Node) (operand.Operand, error) {
	name := n.NameString()
	if len(n.Children) == 0 {
		return nil, errors.NewModelError("arrow function %q requires a receiver", name)
	}

	meta, err := c.model.GetFunctionMetadata(name)
	if err != nil {
		return nil, err
	}
	lib, err := c.libraryFor(meta.Lib)
	if err != nil {
		return nil, err
	}

	receiver, err := c.compileNode(n.Children[0])
	if err != nil {
		return nil, err
	}
	children := []operand.Operand{receiver}

	if len(n.Children) >= 3 {
		paramVar := operand.NewVariable(n.Children[1].NameString())
		body, err := c.compileNode(n.Children[2])
		if err != nil {
			return nil, err
		}
		children = append(children, paramVar, body)
	}

	ctor, ok := lib.FunctionConstructor(name)
	if !ok {
		return nil, errors.NewModelError("arrow function %q has no implementation in library %q", name, lib.Name)
	}
	return ctor(name, children), nil
}

// resolveMethod searches every installed library's method table for name,
// in install order; the first match wins.
func (c *Compiler) resolveMethod(name string) (operand.MethodFunc, bool) {
	for _, lib := range c.methodByLib {
		if fn, ok := lib.Method(name); ok {
			return fn, true
		}
	}
	return nil, false
}
