// Package xpr is the embeddable facade over the parser/compiler/operand
// pipeline (spec §6 "External interfaces"): construct an Engine, install
// whatever libraries the host needs beyond the core one, then Parse/
// Compile/Run/Eval expression text against a variable context.
package xpr

import (
	"github.com/cwbudde/go-xpr/internal/ast"
	"github.com/cwbudde/go-xpr/internal/compiler"
	"github.com/cwbudde/go-xpr/internal/context"
	"github.com/cwbudde/go-xpr/internal/corelib"
	"github.com/cwbudde/go-xpr/internal/library"
	"github.com/cwbudde/go-xpr/internal/model"
	"github.com/cwbudde/go-xpr/internal/operand"
	"github.com/cwbudde/go-xpr/internal/parser"
	"github.com/cwbudde/go-xpr/internal/value"
)

// Engine bundles the Model, Parser, and Compiler a host needs to turn
// expression text into a result: one Engine is built once per set of
// installed libraries and reused across many Parse/Compile/Run/Eval calls.
type Engine struct {
	model     *model.Model
	parser    *parser.Parser
	compiler  *compiler.Compiler
	libs      []*library.Library
	stepLimit int
}

// Option configures an Engine at construction time.
type Option func(*Engine)

// WithLibrary installs an additional library.Library alongside the core
// one every Engine carries by default. Later libraries take precedence
// over earlier ones for any operator or function name/arity both
// register; a method registered by more than one library resolves to the
// earliest.
func WithLibrary(lib *library.Library) Option {
	return func(e *Engine) {
		e.libs = append(e.libs, lib)
	}
}

// WithStepLimit bounds every loop construct (while/for/for-in) a Run or
// Eval executes to at most limit iterations total, returning
// context.ErrStepLimitExceeded once spent (spec §5 "a step counter if
// desired"). limit <= 0 means unbounded, the default.
func WithStepLimit(limit int) Option {
	return func(e *Engine) {
		e.stepLimit = limit
	}
}

// New builds an Engine with the core library installed plus any libraries
// supplied via WithLibrary. There is no failure mode at construction time
// (installing a library cannot itself error), so New returns a bare
// *Engine rather than the (value, error) shape its Parse/Compile/Run/Eval
// siblings use for things that genuinely can fail.
func New(opts ...Option) *Engine {
	e := &Engine{libs: []*library.Library{corelib.New()}}
	for _, opt := range opts {
		opt(e)
	}

	m := model.New()
	for _, lib := range e.libs {
		lib.Install(m)
	}
	e.model = m
	e.parser = parser.New(m)
	e.compiler = compiler.New(m, e.libs...)
	return e
}

// AddLibrary installs an additional library into a running Engine,
// refreshing the Parser's operator/arrow-function lookup tables so
// expressions parsed afterward see the new names (spec §4.2 "install").
// Operands already compiled before this call keep their original
// bindings.
func (e *Engine) AddLibrary(lib *library.Library) {
	e.libs = append(e.libs, lib)
	lib.Install(e.model)
	e.parser.Refresh()
	e.compiler = compiler.New(e.model, e.libs...)
}

// Parse turns source into an untyped ast.Node tree without compiling it.
func (e *Engine) Parse(source string) (*ast.Node, error) {
	return e.parser.Parse(source)
}

// Compile parses and compiles source into an executable Operand tree. The
// returned Operand is not yet wired to a Context; Run does that.
func (e *Engine) Compile(source string) (operand.Operand, error) {
	node, err := e.Parse(source)
	if err != nil {
		return nil, err
	}
	return e.CompileNode(node)
}

// CompileNode compiles an already-parsed ast.Node, e.g. one rebuilt by
// DeserializeOperand or obtained by editing a Parse result before
// compiling it.
func (e *Engine) CompileNode(node *ast.Node) (operand.Operand, error) {
	return e.compiler.Compile(node)
}

// Run wires op to a fresh Context seeded with vars (bounded by
// WithStepLimit, if any) and evaluates it, returning the last/returned
// value.
func (e *Engine) Run(op operand.Operand, vars map[string]value.Value) (value.Value, error) {
	ctx := context.NewBounded(vars, e.stepLimit)
	operand.Wire(op, ctx)
	v, _, err := op.Eval()
	return v, err
}

// Eval parses, compiles, and runs source against vars in one call — the
// common case for a one-shot expression evaluation (spec §6 "eval").
func (e *Engine) Eval(source string, vars map[string]value.Value) (value.Value, error) {
	op, err := e.Compile(source)
	if err != nil {
		return nil, err
	}
	return e.Run(op, vars)
}

// DeserializeOperand rebuilds a compiled Operand from its wire form by
// converting it back to an ast.Node and recompiling (see
// internal/operand.Serialize's doc comment for why compiling is preferred
// over a direct reconstruction of bound callables).
func (e *Engine) DeserializeOperand(s ast.Serialized) (operand.Operand, error) {
	return e.CompileNode(ast.Deserialize(s))
}

// Vars returns every variable name reachable from op, mapped to its
// inferred type.
func (e *Engine) Vars(op operand.Operand) map[string]string { return operand.Vars(op) }

// Constants returns every constant literal reachable from op, mapped to
// its type tag.
func (e *Engine) Constants(op operand.Operand) map[string]string { return operand.Constants(op) }

// Operators returns the operators found in op, mapped to their category;
// operators nested inside another operator's operands are not listed (see
// operand.Operators).
func (e *Engine) Operators(op operand.Operand) map[string]string { return operand.Operators(op) }

// Functions returns the function calls found in op, mapped to their
// metadata; calls nested inside another call's arguments are not listed
// (see operand.Functions).
func (e *Engine) Functions(op operand.Operand) map[string]any { return operand.Functions(op) }

// OperandType infers op's expected type from its parent operator/function.
func (e *Engine) OperandType(op operand.Operand) string { return operand.OperandType(op) }

// Model exposes the Engine's registry for hosts that need direct access
// to operator/function/enum metadata beyond the introspection helpers
// above.
func (e *Engine) Model() *model.Model { return e.model }

// Serialize converts a compiled Operand tree back to its {n,t,c} wire
// form (spec §4.3, §6 "serialize"). It does not depend on the Engine that
// compiled op and is exported as a free function to mirror
// ast.Deserialize/ast.Serialize's shape.
func Serialize(op operand.Operand) ast.Serialized {
	return operand.Serialize(op)
}
