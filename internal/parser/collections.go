package parser

import (
	"sort"

	"github.com/cwbudde/go-xpr/internal/ast"
	"github.com/cwbudde/go-xpr/internal/errors"
)

// getArgs reads a comma-separated argument list terminated by end (spec
// §4.4 "Argument lists"), consuming the terminator.
func (s *scanner) getArgs(end rune) ([]*ast.Node, error) {
	var args []*ast.Node
	for {
		arg, err := s.getExpression(nil, nil, ","+string(end))
		if err != nil {
			return nil, err
		}
		if arg != nil {
			args = append(args, arg)
		}
		if s.previous() == end {
			break
		}
	}
	return args, nil
}

// getObject reads a `{ name: value, ... }` literal, already past the
// opening brace (spec §4.4 "Object literals").
func (s *scanner) getObject() (*ast.Node, error) {
	var attributes []*ast.Node
	for {
		var name string
		if s.current() == '"' || s.current() == '\'' {
			quote := s.current()
			s.index++
			name = s.getString(quote)
		} else {
			name = s.getValue(true)
		}
		if s.current() == ':' {
			s.index++
		} else {
			return nil, errors.NewExpressionError(name, errAttributeWithoutValue)
		}
		value, err := s.getExpression(nil, nil, ",}")
		if err != nil {
			return nil, err
		}
		attributes = append(attributes, ast.New(name, ast.KindKeyValue, value))
		if s.previous() == '}' {
			break
		}
	}
	return ast.New("object", ast.KindObject, attributes...), nil
}

// getIndexOperand reads `name[idx]`, already past the opening bracket
// (spec §4.4 "Indexing").
func (s *scanner) getIndexOperand(name string) (*ast.Node, error) {
	idx, err := s.getExpression(nil, nil, "]")
	if err != nil {
		return nil, err
	}
	variable := ast.New(name, ast.KindVariable)
	return ast.New("[]", ast.KindOperator, variable, idx), nil
}

// getEnum expands a bare enum name into an object literal of its options,
// or a dotted `Enum.Option` reference into the option's constant value
// (spec §4.1 "Enums").
func (s *scanner) getEnum(value string) (*ast.Node, error) {
	if dot := indexByte(value, '.'); dot >= 0 && s.p.model.IsEnum(value) {
		enumName := value[:dot]
		option := value[dot+1:]
		v, err := s.p.model.GetEnumValue(enumName, option)
		if err != nil {
			return nil, err
		}
		return ast.New(v, ast.KindConstant), nil
	}

	values, err := s.p.model.GetEnum(value)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(values))
	for name := range values {
		names = append(names, name)
	}
	sort.Strings(names)

	attributes := make([]*ast.Node, 0, len(names))
	for _, name := range names {
		attributes = append(attributes, ast.New(name, ast.KindKeyValue, ast.New(values[name], ast.KindConstant)))
	}
	return ast.New("object", ast.KindObject, attributes...), nil
}

func indexByte(s string, b byte) int {
	for i := 0; i < len(s); i++ {
		if s[i] == b {
			return i
		}
	}
	return -1
}
