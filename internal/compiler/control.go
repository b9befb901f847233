package compiler

import (
	"github.com/cwbudde/go-xpr/internal/ast"
	"github.com/cwbudde/go-xpr/internal/errors"
	"github.com/cwbudde/go-xpr/internal/operand"
)

// compileIf handles children = [condition, then, elif..., else?] (spec
// §4.4 "Control flow").
func (c *Compiler) compileIf(n *ast.Node) (operand.Operand, error) {
	if len(n.Children) < 2 {
		return nil, errors.WrapNode(n.NameString(), errIfShape)
	}
	condition, err := c.compileNode(n.Children[0])
	if err != nil {
		return nil, err
	}
	then, err := c.compileNode(n.Children[1])
	if err != nil {
		return nil, err
	}

	var elifs []*operand.Elif
	var elseBranch operand.Operand
	for _, child := range n.Children[2:] {
		switch child.Kind {
		case ast.KindElif:
			if len(child.Children) != 2 {
				return nil, errors.WrapNode(n.NameString(), errElifShape)
			}
			elifCond, err := c.compileNode(child.Children[0])
			if err != nil {
				return nil, err
			}
			elifBody, err := c.compileNode(child.Children[1])
			if err != nil {
				return nil, err
			}
			elifs = append(elifs, &operand.Elif{Condition: elifCond, Body: elifBody})
		case ast.KindElse:
			if len(child.Children) != 1 {
				return nil, errors.WrapNode(n.NameString(), errElseShape)
			}
			elseBranch, err = c.compileNode(child.Children[0])
			if err != nil {
				return nil, err
			}
		}
	}
	return operand.NewIf(condition, then, elifs, elseBranch), nil
}

func (c *Compiler) compileWhile(n *ast.Node) (operand.Operand, error) {
	if len(n.Children) != 2 {
		return nil, errors.WrapNode(n.NameString(), errWhileShape)
	}
	condition, err := c.compileNode(n.Children[0])
	if err != nil {
		return nil, err
	}
	body, err := c.compileNode(n.Children[1])
	if err != nil {
		return nil, err
	}
	return operand.NewWhile(condition, body), nil
}

func (c *Compiler) compileFor(n *ast.Node) (operand.Operand, error) {
	if len(n.Children) != 4 {
		return nil, errors.WrapNode(n.NameString(), errForShape)
	}
	init, err := c.compileNode(n.Children[0])
	if err != nil {
		return nil, err
	}
	condition, err := c.compileNode(n.Children[1])
	if err != nil {
		return nil, err
	}
	step, err := c.compileNode(n.Children[2])
	if err != nil {
		return nil, err
	}
	body, err := c.compileNode(n.Children[3])
	if err != nil {
		return nil, err
	}
	return operand.NewFor(init, condition, step, body), nil
}

// compileForIn handles children = [first, list, block], where first names
// the loop variable (spec §4.4 "for-in").
func (c *Compiler) compileForIn(n *ast.Node) (operand.Operand, error) {
	if len(n.Children) != 3 {
		return nil, errors.WrapNode(n.NameString(), errForInShape)
	}
	first, err := c.compileNode(n.Children[0])
	if err != nil {
		return nil, err
	}
	loopVar, ok := first.(*operand.Variable)
	if !ok {
		return nil, errors.WrapNode(n.NameString(), errForInVar)
	}
	iterable, err := c.compileNode(n.Children[1])
	if err != nil {
		return nil, err
	}
	body, err := c.compileNode(n.Children[2])
	if err != nil {
		return nil, err
	}
	return operand.NewForIn(loopVar, iterable, body), nil
}

// compileSwitch handles children = [value, options(case..., default?)]
// (spec §4.4 "switch").
func (c *Compiler) compileSwitch(n *ast.Node) (operand.Operand, error) {
	if len(n.Children) != 2 || n.Children[1].Kind != ast.KindOptions {
		return nil, errors.WrapNode(n.NameString(), errSwitchShape)
	}
	discriminant, err := c.compileNode(n.Children[0])
	if err != nil {
		return nil, err
	}

	var cases []*operand.Case
	var defaultBody operand.Operand
	for _, child := range n.Children[1].Children {
		switch child.Kind {
		case ast.KindCase:
			body, err := c.compileBlockChildren(child.Children)
			if err != nil {
				return nil, err
			}
			cases = append(cases, &operand.Case{Literal: child.Name, Body: body})
		case ast.KindDefault:
			defaultBody, err = c.compileBlockChildren(child.Children)
			if err != nil {
				return nil, err
			}
		}
	}
	return operand.NewSwitch(discriminant, cases, defaultBody), nil
}

// compileBlockChildren wraps a case/default clause's statements in a
// Block (spec §3 Node invariants: "case children are blocks").
func (c *Compiler) compileBlockChildren(nodes []*ast.Node) (operand.Operand, error) {
	children, err := c.compileChildren(nodes)
	if err != nil {
		return nil, err
	}
	block := operand.NewBlock(children)
	operand.AttachChildren(block)
	return block, nil
}

func (c *Compiler) compileReturn(n *ast.Node) (operand.Operand, error) {
	if len(n.Children) == 0 {
		return operand.NewReturn(nil), nil
	}
	valueExpr, err := c.compileNode(n.Children[0])
	if err != nil {
		return nil, err
	}
	return operand.NewReturn(valueExpr), nil
}
