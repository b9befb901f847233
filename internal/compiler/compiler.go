// Package compiler implements the Operand compiler (spec §4.5): it
// lowers an untyped ast.Node tree into an executable operand.Operand
// tree, binding operator/function names to the callables and
// constructor hooks installed libraries supply through the Model.
package compiler

import (
	"fmt"

	"github.com/cwbudde/go-xpr/internal/ast"
	"github.com/cwbudde/go-xpr/internal/errors"
	"github.com/cwbudde/go-xpr/internal/library"
	"github.com/cwbudde/go-xpr/internal/model"
	"github.com/cwbudde/go-xpr/internal/operand"
)

// Compiler binds a Model plus the concrete libraries that back it
// (metadata alone isn't enough — the Compiler needs the actual callables
// and custom constructors, which live on the Library, not the Model).
type Compiler struct {
	model      *model.Model
	libraries  map[string]*library.Library
	methodByLib []*library.Library // searched in install order for ContextFunction resolution
}

// New builds a Compiler over model, indexing libraries by name.
func New(m *model.Model, libraries ...*library.Library) *Compiler {
	byName := make(map[string]*library.Library, len(libraries))
	for _, lib := range libraries {
		byName[lib.Name] = lib
	}
	return &Compiler{model: m, libraries: byName, methodByLib: libraries}
}

// Compile lowers root to an Operand tree and constant-folds it.
func (c *Compiler) Compile(root *ast.Node) (operand.Operand, error) {
	op, err := c.compileNode(root)
	if err != nil {
		return nil, err
	}
	reduced, err := reduce(op)
	if err != nil {
		return nil, errors.WrapOperand(op.NameString(), err)
	}
	return reduced, nil
}

func (c *Compiler) libraryFor(name string) (*library.Library, error) {
	lib, ok := c.libraries[name]
	if !ok {
		return nil, errors.NewModelError("library %q is not installed", name)
	}
	return lib, nil
}

func (c *Compiler) compileChildren(nodes []*ast.Node) ([]operand.Operand, error) {
	out := make([]operand.Operand, len(nodes))
	for i, n := range nodes {
		op, err := c.compileNode(n)
		if err != nil {
			return nil, err
		}
		out[i] = op
	}
	return out, nil
}

func (c *Compiler) compileNode(n *ast.Node) (operand.Operand, error) {
	var op operand.Operand
	var err error

	switch n.Kind {
	case ast.KindConstant:
		op = operand.NewConstant(n.Name)

	case ast.KindVariable:
		op = operand.NewVariable(n.NameString())

	case ast.KindKeyValue:
		op, err = c.compileKeyValue(n)

	case ast.KindArray:
		var children []operand.Operand
		children, err = c.compileChildren(n.Children)
		if err == nil {
			op = operand.NewArray(children)
		}

	case ast.KindObject:
		var children []operand.Operand
		children, err = c.compileChildren(n.Children)
		if err == nil {
			op = operand.NewObject(children)
		}

	case ast.KindOperator:
		op, err = c.compileOperator(n)

	case ast.KindFunction, ast.KindFunctionRef:
		op, err = c.compileFunction(n)

	case ast.KindChildFunction:
		op, err = c.compileChildFunction(n)

	case ast.KindArrowFunction:
		op, err = c.compileArrowFunction(n)

	case ast.KindBlock:
		var children []operand.Operand
		children, err = c.compileChildren(n.Children)
		if err == nil {
			op = operand.NewBlock(children)
		}

	case ast.KindIf:
		op, err = c.compileIf(n)

	case ast.KindWhile:
		op, err = c.compileWhile(n)

	case ast.KindFor:
		op, err = c.compileFor(n)

	case ast.KindForIn:
		op, err = c.compileForIn(n)

	case ast.KindSwitch:
		op, err = c.compileSwitch(n)

	case ast.KindBreak:
		op = operand.NewBreak()

	case ast.KindContinue:
		op = operand.NewContinue()

	case ast.KindReturn:
		op, err = c.compileReturn(n)

	default:
		return nil, errors.WrapNode(n.NameString(), fmt.Errorf("%s not supported", n.Kind))
	}

	if err != nil {
		return nil, err
	}
	operand.AttachChildren(op)
	return op, nil
}

func (c *Compiler) compileKeyValue(n *ast.Node) (operand.Operand, error) {
	if len(n.Children) != 1 {
		return nil, errors.WrapNode(n.NameString(), fmt.Errorf("keyValue requires exactly one child"))
	}
	value, err := c.compileNode(n.Children[0])
	if err != nil {
		return nil, err
	}
	return operand.NewKeyValue(n.NameString(), value), nil
}
