package parser

import (
	"strconv"
	"strings"

	"github.com/cwbudde/go-xpr/internal/ast"
	"github.com/cwbudde/go-xpr/internal/errors"
)

// parseProgram reads top-level statements separated by ';' until the
// buffer is exhausted. A single statement is returned bare; more than one
// is wrapped in a block (spec §4.3 "program").
func (s *scanner) parseProgram() (*ast.Node, error) {
	var nodes []*ast.Node
	for !s.end() {
		node, err := s.getExpression(nil, nil, ";")
		if err != nil {
			return nil, err
		}
		if node == nil {
			break
		}
		nodes = append(nodes, node)
	}
	if len(nodes) == 1 {
		return nodes[0], nil
	}
	return ast.New("block", ast.KindBlock, nodes...), nil
}

// getExpression implements precedence-climbing binary-operator parsing.
// operand1/operator seed a recursive call that resumes an in-progress
// parse with an operand and operator already in hand; both nil means
// "start fresh" (spec §4.4 "Expression parsing").
func (s *scanner) getExpression(operand1 *ast.Node, operator *string, breakSet string) (*ast.Node, error) {
	var operand2 *ast.Node
	for !s.end() {
		if operand1 == nil && operator == nil {
			op1, err := s.getOperand()
			if err != nil {
				return nil, err
			}
			operand1 = op1
			opStr, ok := s.getOperator()
			if !ok || opStr == " " || strings.Contains(breakSet, opStr) {
				return operand1, nil
			}
			operator = &opStr
		}

		op2, err := s.getOperand()
		if err != nil {
			return nil, err
		}
		operand2 = op2

		nextOp, ok := s.getOperator()
		if !ok || strings.Contains(breakSet, nextOp) {
			return ast.New(*operator, ast.KindOperator, operand1, operand2), nil
		}

		p1, err := s.priority(*operator, 2)
		if err != nil {
			return nil, err
		}
		p2, err := s.priority(nextOp, 2)
		if err != nil {
			return nil, err
		}
		if p1 >= p2 {
			operand1 = ast.New(*operator, ast.KindOperator, operand1, operand2)
			operator = &nextOp
		} else {
			sub, err := s.getExpression(operand2, &nextOp, breakSet)
			if err != nil {
				return nil, err
			}
			return ast.New(*operator, ast.KindOperator, operand1, sub), nil
		}
	}
	if operator == nil {
		return operand1, nil
	}
	return ast.New(*operator, ast.KindOperator, operand1, operand2), nil
}

// getOperand parses one primary expression: a leading unary prefix
// (-, !, ~), a literal/identifier/keyword/parenthesized/bracketed/braced
// primary, then any chain of dotted method calls (spec §4.4 "Operand
// parsing").
func (s *scanner) getOperand() (*ast.Node, error) {
	var isNegative, isNot, isBitNot bool
	var operand *ast.Node

	char := s.current()
	switch char {
	case '-':
		isNegative = true
		s.index++
		char = s.current()
	case '~':
		isBitNot = true
		s.index++
		char = s.current()
	case '!':
		isNot = true
		s.index++
		char = s.current()
	}

	var err error
	switch {
	case isIdentStart(char):
		operand, isNegative, isBitNot, err = s.getIdentOperand(isNegative, isBitNot)
	case char == '\'' || char == '"':
		s.index++
		result := s.getString(char)
		operand = ast.New(result, ast.KindConstant)
	case char == '(':
		s.index++
		operand, err = s.getExpression(nil, nil, ")")
	case char == '{':
		s.index++
		operand, err = s.getObject()
	case char == '[':
		s.index++
		var elements []*ast.Node
		elements, err = s.getArgs(']')
		operand = ast.New("array", ast.KindArray, elements...)
	}
	if err != nil {
		return nil, err
	}

	operand, err = s.solveChain(operand)
	if err != nil {
		return nil, err
	}

	if isNegative {
		operand = ast.New("-", ast.KindOperator, operand)
	}
	if isNot {
		operand = ast.New("!", ast.KindOperator, operand)
	}
	if isBitNot {
		operand = ast.New("~", ast.KindOperator, operand)
	}
	return operand, nil
}

// getIdentOperand reads the identifier/keyword/literal starting at the
// current position and dispatches on what follows it. It returns the
// (possibly already-applied) isNegative/isBitNot flags, since a numeric
// literal folds a leading unary sign or complement directly into its value
// instead of being wrapped afterward (spec §4.4 "Unary prefixes").
func (s *scanner) getIdentOperand(isNegative, isBitNot bool) (*ast.Node, bool, bool, error) {
	value := s.getValue(true)

	switch {
	case value == "if" && s.current() == '(':
		s.index++
		op, err := s.getIfBlock()
		return op, isNegative, isBitNot, err

	case value == "for" && s.current() == '(':
		s.index++
		op, err := s.getForBlock()
		return op, isNegative, isBitNot, err

	case value == "while" && s.current() == '(':
		s.index++
		op, err := s.getWhileBlock()
		return op, isNegative, isBitNot, err

	case value == "switch" && s.current() == '(':
		s.index++
		op, err := s.getSwitchBlock()
		return op, isNegative, isBitNot, err

	case !s.end() && s.current() == '(':
		s.index++
		if dot := strings.LastIndexByte(value, '.'); dot >= 0 {
			variableName := value[:dot]
			name := value[dot+1:]
			variable := ast.New(variableName, ast.KindVariable)
			op, err := s.getChildFunction(name, variable)
			return op, isNegative, isBitNot, err
		}
		args, err := s.getArgs(')')
		if err != nil {
			return nil, isNegative, isBitNot, err
		}
		return ast.New(value, ast.KindFunctionRef, args...), isNegative, isBitNot, nil

	case !s.end() && s.current() == '[':
		s.index++
		op, err := s.getIndexOperand(value)
		return op, isNegative, isBitNot, err

	case value == "break":
		return ast.New("break", ast.KindBreak), isNegative, isBitNot, nil
	case value == "continue":
		return ast.New("continue", ast.KindContinue), isNegative, isBitNot, nil
	case value == "return":
		return ast.New("return", ast.KindReturn), isNegative, isBitNot, nil
	case value == "true":
		return ast.New(true, ast.KindConstant), isNegative, isBitNot, nil
	case value == "false":
		return ast.New(false, ast.KindConstant), isNegative, isBitNot, nil

	case reInt.MatchString(value):
		iv, convErr := strconv.ParseInt(value, 10, 64)
		if convErr != nil {
			return nil, isNegative, isBitNot, errors.NewExpressionError(value, convErr)
		}
		switch {
		case isNegative:
			iv, isNegative = -iv, false
		case isBitNot:
			iv, isBitNot = ^iv, false
		}
		return ast.New(iv, ast.KindConstant), isNegative, isBitNot, nil

	case reFloat.MatchString(value):
		fv, convErr := strconv.ParseFloat(value, 64)
		if convErr != nil {
			return nil, isNegative, isBitNot, errors.NewExpressionError(value, convErr)
		}
		switch {
		case isNegative:
			fv, isNegative = -fv, false
		case isBitNot:
			fv, isBitNot = float64(^int64(fv)), false
		}
		return ast.New(fv, ast.KindConstant), isNegative, isBitNot, nil

	case s.p.model.IsEnum(value):
		op, err := s.getEnum(value)
		return op, isNegative, isBitNot, err

	default:
		return ast.New(value, ast.KindVariable), isNegative, isBitNot, nil
	}
}

// solveChain consumes any run of `.name(...)` method calls or `.name`
// member accesses trailing a primary operand (spec §4.4 "Method chains").
// A member access without parentheses becomes a childFunction with no
// arguments.
func (s *scanner) solveChain(operand *ast.Node) (*ast.Node, error) {
	for !s.end() && s.current() == '.' {
		s.index++
		name := s.getValue(true)
		if s.end() || s.current() != '(' {
			operand = ast.New(name, ast.KindChildFunction, operand)
			continue
		}
		s.index++
		next, err := s.getChildFunction(name, operand)
		if err != nil {
			return nil, err
		}
		operand = next
	}
	return operand, nil
}

// isIdentStart reports whether r can open the identifier/keyword/number
// branch of getOperand: a letter, digit, or underscore (spec §6 "Source
// syntax": identifiers are `[A-Za-z_][A-Za-z0-9_.]*`). A number literal
// therefore starts with a digit; a leading '.' (as in `.5`) does not open
// this branch.
func isIdentStart(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '_'
}
