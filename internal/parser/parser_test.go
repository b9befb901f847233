package parser

import (
	"testing"

	"github.com/cwbudde/go-xpr/internal/ast"
	"github.com/cwbudde/go-xpr/internal/corelib"
	"github.com/cwbudde/go-xpr/internal/model"
)

func newTestParser(t *testing.T) *Parser {
	t.Helper()
	m := model.New()
	corelib.New().Install(m)
	return New(m)
}

func TestParsePrecedenceClimbing(t *testing.T) {
	p := newTestParser(t)
	node, err := p.Parse("1 + 2 * 3")
	if err != nil {
		t.Fatalf("Parse() returned unexpected error: %v", err)
	}
	if node.NameString() != "+" {
		t.Fatalf("root operator = %q, want \"+\"", node.NameString())
	}
	if node.Children[0].Name != int64(1) {
		t.Errorf("left operand = %v, want 1", node.Children[0].Name)
	}
	mul := node.Children[1]
	if mul.NameString() != "*" {
		t.Fatalf("right operand = %q, want \"*\" (higher-priority operator binds tighter)", mul.NameString())
	}
}

func TestParseParenthesesOverridePrecedence(t *testing.T) {
	p := newTestParser(t)
	node, err := p.Parse("(1 + 2) * 3")
	if err != nil {
		t.Fatalf("Parse() returned unexpected error: %v", err)
	}
	if node.NameString() != "*" {
		t.Fatalf("root operator = %q, want \"*\"", node.NameString())
	}
	if node.Children[0].NameString() != "+" {
		t.Errorf("left operand = %q, want \"+\"", node.Children[0].NameString())
	}
}

func TestParseStringLiteralWithEscapedQuote(t *testing.T) {
	p := newTestParser(t)
	node, err := p.Parse(`'it''s here'`)
	if err != nil {
		t.Fatalf("Parse() returned unexpected error: %v", err)
	}
	if node.Name != "it's here" {
		t.Errorf("string literal = %q, want \"it's here\"", node.Name)
	}
}

func TestParseArrayAndObjectLiterals(t *testing.T) {
	p := newTestParser(t)

	arr, err := p.Parse("[1, 2, 3]")
	if err != nil {
		t.Fatalf("Parse(array) returned unexpected error: %v", err)
	}
	if arr.Kind != ast.KindArray || len(arr.Children) != 3 {
		t.Fatalf("array node = %+v, want 3-element array", arr)
	}

	obj, err := p.Parse(`{a: 1, b: 2}`)
	if err != nil {
		t.Fatalf("Parse(object) returned unexpected error: %v", err)
	}
	if obj.Kind != ast.KindObject || len(obj.Children) != 2 {
		t.Fatalf("object node = %+v, want 2-attribute object", obj)
	}
	if obj.Children[0].NameString() != "a" {
		t.Errorf("first attribute name = %q, want \"a\"", obj.Children[0].NameString())
	}
}

func TestParseIfElifElse(t *testing.T) {
	p := newTestParser(t)
	node, err := p.Parse("if(x > 0){1;} else if(x < 0){2;} else {3;}")
	if err != nil {
		t.Fatalf("Parse() returned unexpected error: %v", err)
	}
	if node.Kind != ast.KindIf {
		t.Fatalf("root kind = %v, want if", node.Kind)
	}
	if len(node.Children) != 4 {
		t.Fatalf("if node has %d children, want 4 (cond, then, elif, else)", len(node.Children))
	}
	if node.Children[2].Kind != ast.KindElif {
		t.Errorf("child[2].Kind = %v, want elif", node.Children[2].Kind)
	}
	if node.Children[3].Kind != ast.KindElse {
		t.Errorf("child[3].Kind = %v, want else", node.Children[3].Kind)
	}
}

func TestParseWhile(t *testing.T) {
	p := newTestParser(t)
	node, err := p.Parse("while(n < 10) n = n + 1;")
	if err != nil {
		t.Fatalf("Parse() returned unexpected error: %v", err)
	}
	if node.Kind != ast.KindWhile || len(node.Children) != 2 {
		t.Fatalf("while node = %+v, want [condition, body]", node)
	}
}

func TestParseCStyleFor(t *testing.T) {
	p := newTestParser(t)
	node, err := p.Parse("for(i = 0; i < 10; i = i + 1){ sum = sum + i; }")
	if err != nil {
		t.Fatalf("Parse() returned unexpected error: %v", err)
	}
	if node.Kind != ast.KindFor || len(node.Children) != 4 {
		t.Fatalf("for node = %+v, want [init, condition, step, body]", node)
	}
}

func TestParseForIn(t *testing.T) {
	p := newTestParser(t)
	node, err := p.Parse("for(item in list){ sum = sum + item; }")
	if err != nil {
		t.Fatalf("Parse() returned unexpected error: %v", err)
	}
	if node.Kind != ast.KindForIn || len(node.Children) != 3 {
		t.Fatalf("forIn node = %+v, want [variable, iterable, body]", node)
	}
	if node.Children[0].NameString() != "item" {
		t.Errorf("loop variable = %q, want \"item\"", node.Children[0].NameString())
	}
}

func TestParseSwitch(t *testing.T) {
	p := newTestParser(t)
	node, err := p.Parse(`switch(x) { case 1: a; case 2: b; default: c; }`)
	if err != nil {
		t.Fatalf("Parse() returned unexpected error: %v", err)
	}
	if node.Kind != ast.KindSwitch {
		t.Fatalf("root kind = %v, want switch", node.Kind)
	}
	options := node.Children[1]
	if options.Kind != ast.KindOptions || len(options.Children) != 3 {
		t.Fatalf("options node = %+v, want 2 cases + 1 default", options)
	}
	if options.Children[2].Kind != ast.KindDefault {
		t.Errorf("last option kind = %v, want default", options.Children[2].Kind)
	}
}

func TestParseArrowFunctionCall(t *testing.T) {
	p := newTestParser(t)
	node, err := p.Parse("list.map(x => x * 2)")
	if err != nil {
		t.Fatalf("Parse() returned unexpected error: %v", err)
	}
	if node.Kind != ast.KindArrowFunction {
		t.Fatalf("root kind = %v, want arrowFunction", node.Kind)
	}
	if len(node.Children) != 3 {
		t.Fatalf("arrow node has %d children, want [receiver, param, body]", len(node.Children))
	}
	if node.Children[1].NameString() != "x" {
		t.Errorf("param name = %q, want \"x\"", node.Children[1].NameString())
	}
}

func TestParseNoLambdaMethodCall(t *testing.T) {
	p := newTestParser(t)
	node, err := p.Parse("list.sum()")
	if err != nil {
		t.Fatalf("Parse() returned unexpected error: %v", err)
	}
	if node.Kind != ast.KindChildFunction {
		t.Fatalf("root kind = %v, want childFunction", node.Kind)
	}
}

func TestParseBreakContinueReturn(t *testing.T) {
	p := newTestParser(t)
	for _, tc := range []struct {
		src  string
		kind ast.Kind
	}{
		{"break", ast.KindBreak},
		{"continue", ast.KindContinue},
		{"return", ast.KindReturn},
	} {
		node, err := p.Parse(tc.src)
		if err != nil {
			t.Fatalf("Parse(%q) returned unexpected error: %v", tc.src, err)
		}
		if node.Kind != tc.kind {
			t.Errorf("Parse(%q).Kind = %v, want %v", tc.src, node.Kind, tc.kind)
		}
	}
}

func TestParseMultiStatementProgramWrapsInBlock(t *testing.T) {
	p := newTestParser(t)
	node, err := p.Parse("a = 1; b = 2;")
	if err != nil {
		t.Fatalf("Parse() returned unexpected error: %v", err)
	}
	if node.Kind != ast.KindBlock || len(node.Children) != 2 {
		t.Fatalf("program node = %+v, want a 2-statement block", node)
	}
}
