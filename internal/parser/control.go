package parser

import "github.com/cwbudde/go-xpr/internal/ast"

// getBlock reads `{ stmt; stmt; ... }` lines, already past the opening
// brace, and returns them wrapped in a block node (spec §4.4 "Blocks").
func (s *scanner) getBlock() (*ast.Node, error) {
	var lines []*ast.Node
	for {
		line, err := s.getExpression(nil, nil, ";}")
		if err != nil {
			return nil, err
		}
		if line != nil {
			lines = append(lines, line)
		}
		if s.previous() == '}' {
			break
		}
	}
	return ast.New("block", ast.KindBlock, lines...), nil
}

// getControlBlock reads either a braced block or a single statement
// terminated by ';' — the body shape every control-flow construct shares
// (spec §4.4 "Control-flow bodies").
func (s *scanner) getControlBlock() (*ast.Node, error) {
	if s.current() == '{' {
		s.index++
		return s.getBlock()
	}
	return s.getExpression(nil, nil, ";")
}

// getIfBlock reads `if(cond) body (else if(cond) body)* (else body)?`,
// already past `if(` (spec §4.4 "if").
func (s *scanner) getIfBlock() (*ast.Node, error) {
	condition, err := s.getExpression(nil, nil, ")")
	if err != nil {
		return nil, err
	}
	block, err := s.getControlBlock()
	if err != nil {
		return nil, err
	}
	children := []*ast.Node{condition, block}

	for s.nextIs("else if(") {
		s.index += len("else if(")
		elifCond, err := s.getExpression(nil, nil, ")")
		if err != nil {
			return nil, err
		}
		elifBlock, err := s.getControlBlock()
		if err != nil {
			return nil, err
		}
		children = append(children, ast.New("elif", ast.KindElif, elifCond, elifBlock))
	}

	if s.nextIs("else") {
		s.index += len("else")
		elseBlock, err := s.getControlBlock()
		if err != nil {
			return nil, err
		}
		children = append(children, ast.New("else", ast.KindElse, elseBlock))
	}

	return ast.New("if", ast.KindIf, children...), nil
}

// getWhileBlock reads `while(cond) body`, already past `while(` (spec §4.4
// "while").
func (s *scanner) getWhileBlock() (*ast.Node, error) {
	condition, err := s.getExpression(nil, nil, ")")
	if err != nil {
		return nil, err
	}
	block, err := s.getControlBlock()
	if err != nil {
		return nil, err
	}
	return ast.New("while", ast.KindWhile, condition, block), nil
}

// getForBlock reads either a C-style `for(init;cond;step) body` or a
// `for(x in list) body` loop, already past `for(`, disambiguating on
// whether the first clause ends on ';' or is followed by "in" (spec §4.4
// "for" / "for-in").
func (s *scanner) getForBlock() (*ast.Node, error) {
	first, err := s.getExpression(nil, nil, ";")
	if err != nil {
		return nil, err
	}

	switch {
	case s.previous() == ';':
		condition, err := s.getExpression(nil, nil, ";")
		if err != nil {
			return nil, err
		}
		increment, err := s.getExpression(nil, nil, ")")
		if err != nil {
			return nil, err
		}
		block, err := s.getControlBlock()
		if err != nil {
			return nil, err
		}
		return ast.New("for", ast.KindFor, first, condition, increment, block), nil

	case s.nextIs("in"):
		s.index += 2
		for !s.end() && s.current() == ' ' {
			s.index++
		}
		list, err := s.getExpression(nil, nil, ")")
		if err != nil {
			return nil, err
		}
		block, err := s.getControlBlock()
		if err != nil {
			return nil, err
		}
		return ast.New("forIn", ast.KindForIn, first, list, block), nil

	default:
		return nil, errForBlockShape
	}
}

// getSwitchBlock reads `switch(value) { case x: stmts... default: stmts }`,
// already past `switch(` (spec §4.4 "switch").
func (s *scanner) getSwitchBlock() (*ast.Node, error) {
	value, err := s.getExpression(nil, nil, ")")
	if err != nil {
		return nil, err
	}
	if s.current() == '{' {
		s.index++
	}

	var children []*ast.Node
	for s.nextIs("case") {
		s.index += len("case")
		for !s.end() && s.current() == ' ' {
			s.index++
		}
		var compare string
		if s.current() == '\'' || s.current() == '"' {
			quote := s.current()
			s.index++
			compare = s.getString(quote)
		} else {
			compare = s.getValue(true)
		}
		if s.current() == ':' {
			s.index++
		}

		var lines []*ast.Node
		for {
			line, err := s.getExpression(nil, nil, ";")
			if err != nil {
				return nil, err
			}
			if line != nil {
				lines = append(lines, line)
			}
			if s.nextIs("case") || s.nextIs("default:") || s.current() == '}' {
				break
			}
		}
		block := ast.New("block", ast.KindBlock, lines...)
		children = append(children, ast.New(compare, ast.KindCase, block))
	}

	if s.nextIs("default:") {
		s.index += len("default:")
		var lines []*ast.Node
		for {
			line, err := s.getExpression(nil, nil, ";")
			if err != nil {
				return nil, err
			}
			if line != nil {
				lines = append(lines, line)
			}
			if s.current() == '}' {
				break
			}
		}
		block := ast.New("block", ast.KindBlock, lines...)
		children = append(children, ast.New("default", ast.KindDefault, block))
	}

	if s.current() == '}' {
		s.index++
	}

	options := ast.New("options", ast.KindOptions, children...)
	return ast.New("switch", ast.KindSwitch, value, options), nil
}

// getChildFunction reads a dotted call's argument list, already past the
// method name and opening paren: an arrow-registered name parses the
// `x => body` or no-lambda call form directly into an arrowFunction node;
// any other name becomes a plain childFunction call with parent prepended
// to its arguments (spec §4.4 "Method / arrow calls").
func (s *scanner) getChildFunction(name string, parent *ast.Node) (*ast.Node, error) {
	if s.p.arrowFunctions[name] {
		variableName := s.getValue(true)
		if variableName == "" && s.current() == ')' {
			s.index++
			return ast.New(name, ast.KindArrowFunction, parent), nil
		}
		if s.current() == '=' && s.peekNext() == '>' {
			s.index += 2
		} else {
			return nil, errArrowWithoutBody
		}
		variable := ast.New(variableName, ast.KindVariable)
		body, err := s.getExpression(nil, nil, ")")
		if err != nil {
			return nil, err
		}
		return ast.New(name, ast.KindArrowFunction, parent, variable, body), nil
	}

	args, err := s.getArgs(')')
	if err != nil {
		return nil, err
	}
	children := append([]*ast.Node{parent}, args...)
	return ast.New(name, ast.KindChildFunction, children...), nil
}
