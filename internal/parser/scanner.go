package parser

import "fmt"

// scanner walks one expression's rune buffer, producing ast.Nodes. It is
// created fresh per call to Parser.Parse (spec §4.4: "the parser holds no
// state across calls").
type scanner struct {
	p      *Parser
	buf    []rune
	length int
	index  int
}

func newScanner(p *Parser, expression string) *scanner {
	buf := []rune(expression)
	return &scanner{p: p, buf: buf, length: len(buf)}
}

func (s *scanner) end() bool {
	return s.index >= s.length
}

func (s *scanner) current() rune {
	return s.buf[s.index]
}

func (s *scanner) peekNext() rune {
	return s.buf[s.index+1]
}

func (s *scanner) previous() rune {
	if s.index == 0 {
		return 0
	}
	return s.buf[s.index-1]
}

// nextIs reports whether key appears verbatim starting at the current
// position, without consuming it.
func (s *scanner) nextIs(key string) bool {
	runes := []rune(key)
	if s.index+len(runes) > s.length {
		return false
	}
	for i, r := range runes {
		if s.buf[s.index+i] != r {
			return false
		}
	}
	return true
}

// priority looks up an operator's precedence for the given arity, wrapping
// any Model lookup failure the same way the original parser does (spec §4.1
// "priority").
func (s *scanner) priority(name string, arity int) (int, error) {
	meta, err := s.p.model.GetOperatorMetadata(name, arity)
	if err != nil {
		return 0, fmt.Errorf("priority: %s error: %w", name, err)
	}
	return meta.Priority, nil
}

// getValue reads a maximal run of identifier characters ([a-zA-Z0-9_.]) from
// the current position, without consuming anything when consume is false.
func (s *scanner) getValue(consume bool) string {
	var buf []rune
	if consume {
		for !s.end() && isIdentRune(s.current()) {
			buf = append(buf, s.current())
			s.index++
		}
	} else {
		i := s.index
		for i < s.length && isIdentRune(s.buf[i]) {
			buf = append(buf, s.buf[i])
			i++
		}
	}
	return string(buf)
}

func isIdentRune(r rune) bool {
	return r == '_' || r == '.' ||
		(r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
}

// getOperator reads the next operator lexeme: a registered 3- or 2-char
// operator if one matches at the current position, else the single current
// character (spec §4.4 "Operator lexing"). Returns ok=false at end of input.
func (s *scanner) getOperator() (string, bool) {
	if s.end() {
		return "", false
	}
	var op string
	if s.index+2 < s.length {
		triple := string(s.buf[s.index : s.index+3])
		if contains(s.p.tripleOperators, triple) {
			op = triple
		}
	}
	if op == "" && s.index+1 < s.length {
		double := string(s.buf[s.index : s.index+2])
		if contains(s.p.doubleOperators, double) {
			op = double
		}
	}
	if op == "" {
		op = string(s.current())
	}
	s.index += len([]rune(op))
	return op, true
}

func contains(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}

// getString reads a quoted literal's body, starting just past the opening
// quote. Doubling the quote character mid-string escapes it (spec §4.4
// "String literals").
func (s *scanner) getString(quote rune) string {
	var buf []rune
	for !s.end() {
		if s.current() == quote {
			if s.index+1 < s.length && s.peekNext() == quote {
				buf = append(buf, quote)
				s.index += 2
				continue
			}
			break
		}
		buf = append(buf, s.current())
		s.index++
	}
	s.index++
	return string(buf)
}
