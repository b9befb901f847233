// Package parser turns expression text into the untyped ast.Node tree
// (spec §4.3/§4.4): a recursive-descent, precedence-climbing expression
// parser plus the control-flow productions (if/while/for/for-in/switch).
package parser

import (
	"regexp"

	"github.com/cwbudde/go-xpr/internal/ast"
	"github.com/cwbudde/go-xpr/internal/errors"
	"github.com/cwbudde/go-xpr/internal/model"
)

var (
	reInt   = regexp.MustCompile(`^[0-9]+$`)
	reFloat = regexp.MustCompile(`^(\d+(\.\d*)?|\.\d+)([eE]\d+)?$`)
)

// Parser lexes and parses expression text against a Model: it caches the
// operator lexeme tables and arrow-function name set the Model exposes, and
// rebuilds them whenever the host installs a new library (spec §4.4
// "Operator lexing").
type Parser struct {
	model *model.Model

	doubleOperators []string
	tripleOperators []string
	arrowFunctions  map[string]bool
}

// New builds a Parser over model. Refresh must be called once libraries are
// installed before any expression is parsed.
func New(m *model.Model) *Parser {
	p := &Parser{model: m}
	p.Refresh()
	return p
}

// Refresh rebuilds the operator-lexeme and arrow-function lookup tables
// from the Model's current registrations. Call it after every AddLibrary.
func (p *Parser) Refresh() {
	var doubles, triples []string
	for _, name := range p.model.OperatorNames() {
		switch len(name) {
		case 2:
			doubles = append(doubles, name)
		case 3:
			triples = append(triples, name)
		}
	}
	p.doubleOperators = doubles
	p.tripleOperators = triples

	arrows := make(map[string]bool)
	for _, name := range p.model.ArrowFunctionNames() {
		arrows[name] = true
	}
	p.arrowFunctions = arrows
}

// Parse minifies expression (stripping whitespace outside string literals,
// spec §4.4 "Lexical preprocessing") and parses it into a single ast.Node,
// assigning parent/index back-links across the whole tree before returning.
func (p *Parser) Parse(expression string) (*ast.Node, error) {
	minified := minify(expression)
	s := newScanner(p, minified)
	node, err := s.parseProgram()
	if err != nil {
		return nil, errors.NewExpressionError(expression, err)
	}
	ast.SetParent(node)
	return node, nil
}

// minify strips whitespace outside of single- or double-quoted string
// literals (spec §4.4): whitespace inside a string is part of the literal.
// Outside a string, a run of whitespace collapses to a single space when it
// separates two identifier characters (so "x in list" and "else if(" keep
// the single space their keyword boundaries need) and is dropped entirely
// otherwise, since punctuation and operator lexing never depend on it.
func minify(expression string) string {
	runes := []rune(expression)
	var inString bool
	var quote rune
	out := make([]rune, 0, len(runes))

	for i := 0; i < len(runes); i++ {
		r := runes[i]
		if inString {
			out = append(out, r)
			if r == quote {
				inString = false
			}
			continue
		}
		if r == '\'' || r == '"' {
			inString = true
			quote = r
			out = append(out, r)
			continue
		}
		if !isSpace(r) {
			out = append(out, r)
			continue
		}

		j := i
		for j < len(runes) && isSpace(runes[j]) {
			j++
		}
		prevIdent := len(out) > 0 && isIdentRune(out[len(out)-1])
		nextIdent := j < len(runes) && isIdentRune(runes[j])
		if prevIdent && nextIdent {
			out = append(out, ' ')
		}
		i = j - 1
	}
	return string(out)
}

func isSpace(r rune) bool {
	return r == ' ' || r == '\n' || r == '\r' || r == '\t'
}
