// Package library implements the Library component (spec §4.2): a named
// bundle of operator, function, and enum implementations that installs
// metadata into a Model and supplies the callables/constructors the
// Compiler binds into Operands.
package library

import (
	"github.com/cwbudde/go-xpr/internal/model"
	"github.com/cwbudde/go-xpr/internal/operand"
	"github.com/cwbudde/go-xpr/internal/value"
)

// OperatorConstructor builds a custom Operand for an operator whose
// children must not be blindly pre-evaluated or constant-folded — e.g.
// short-circuit &&/||, or an assignment whose LHS is an lvalue rather
// than a value. children are already-compiled, unevaluated Operands.
type OperatorConstructor func(name string, children []operand.Operand) operand.Operand

// FunctionConstructor is the function-call equivalent of
// OperatorConstructor, used by arrow-accepting functions (map, filter,
// ...) that need to see the raw arrow-function body rather than its
// evaluated result.
type FunctionConstructor func(name string, children []operand.Operand) operand.Operand

// operatorEntry is one (name, arity) registration.
type operatorEntry struct {
	meta      model.OperatorMetadata
	fn        operand.PlainFunc
	construct OperatorConstructor // nil for the common case: evaluate children, call fn
}

// functionEntry is one registered function.
type functionEntry struct {
	meta      model.FunctionMetadata
	fn        operand.PlainFunc
	construct FunctionConstructor
}

// Library is a named, installable bundle of behavior (spec §4.2). Hosts
// build one Library per concern (core arithmetic, string/collection
// helpers, a domain-specific extension, ...) and install every Library
// they want into a Model + Compiler before parsing anything.
type Library struct {
	Name string

	operators map[string]map[int]operatorEntry
	functions map[string]functionEntry
	methods   map[string]operand.MethodFunc
	enums     map[string]map[string]any
}

// New creates an empty, named Library.
func New(name string) *Library {
	return &Library{
		Name:      name,
		operators: make(map[string]map[int]operatorEntry),
		functions: make(map[string]functionEntry),
		methods:   make(map[string]operand.MethodFunc),
		enums:     make(map[string]map[string]any),
	}
}

// AddOperator registers a plain operator: every child is evaluated before
// fn is called.
func (l *Library) AddOperator(name string, arity int, meta model.OperatorMetadata, fn operand.PlainFunc) {
	l.addOperatorEntry(name, arity, operatorEntry{meta: meta, fn: fn})
}

// AddCustomOperator registers an operator whose Operand is built by
// construct instead of the generic evaluate-then-call path (spec §4.2
// "custom constructor hook"): short-circuit booleans and assignment
// operators both need this.
func (l *Library) AddCustomOperator(name string, arity int, meta model.OperatorMetadata, construct OperatorConstructor) {
	l.addOperatorEntry(name, arity, operatorEntry{meta: meta, construct: construct})
}

func (l *Library) addOperatorEntry(name string, arity int, entry operatorEntry) {
	meta := entry.meta
	meta.Lib = l.Name
	entry.meta = meta
	if l.operators[name] == nil {
		l.operators[name] = make(map[int]operatorEntry)
	}
	l.operators[name][arity] = entry
}

// AddFunction registers a plain function.
func (l *Library) AddFunction(name string, meta model.FunctionMetadata, fn operand.PlainFunc) {
	meta.Lib = l.Name
	l.functions[name] = functionEntry{meta: meta, fn: fn}
}

// AddArrowFunction registers a function that receives its final argument
// as a compiled but unevaluated lambda body — map/filter/any/all/forEach/sortBy and
// similar higher-order collection helpers (spec §4.4 "Method / arrow
// calls").
func (l *Library) AddArrowFunction(name string, meta model.FunctionMetadata, construct FunctionConstructor) {
	meta.Lib = l.Name
	meta.IsArrowFunction = true
	l.functions[name] = functionEntry{meta: meta, construct: construct}
}

// AddMethod registers a ContextFunction resolver: a method callable as
// `receiver.name(args...)` where name is not itself a registered function
// (spec §9 "ContextFunction ... dynamic dispatch").
func (l *Library) AddMethod(name string, fn operand.MethodFunc) {
	l.methods[name] = fn
}

// AddEnum registers an enum's option->value mapping.
func (l *Library) AddEnum(name string, mapping map[string]any) {
	l.enums[name] = mapping
}

// Install copies this Library's metadata into model. It returns nothing;
// the Compiler reads callables/constructors/method resolvers from the
// Library itself when binding Operands. Multiple libraries may be
// installed into the same Model; a later install overwrites metadata for
// a name/arity already claimed by an earlier one.
func (l *Library) Install(m *model.Model) {
	for name, byArity := range l.operators {
		for arity, entry := range byArity {
			m.AddOperator(name, arity, entry.meta)
		}
	}
	for name, entry := range l.functions {
		m.AddFunction(name, entry.meta)
	}
	for name, mapping := range l.enums {
		m.AddEnum(name, toValueMap(mapping))
	}
}

// OperatorFunc returns the plain callable registered for (name, arity),
// or ok=false if none was registered (either unregistered, or registered
// via AddCustomOperator instead).
func (l *Library) OperatorFunc(name string, arity int) (operand.PlainFunc, bool) {
	entry, ok := l.operatorEntry(name, arity)
	if !ok || entry.fn == nil {
		return nil, false
	}
	return entry.fn, true
}

// OperatorConstructor returns the custom constructor registered for
// (name, arity), or ok=false if the operator uses the generic path.
func (l *Library) OperatorConstructor(name string, arity int) (OperatorConstructor, bool) {
	entry, ok := l.operatorEntry(name, arity)
	if !ok || entry.construct == nil {
		return nil, false
	}
	return entry.construct, true
}

func (l *Library) operatorEntry(name string, arity int) (operatorEntry, bool) {
	byArity, ok := l.operators[name]
	if !ok {
		return operatorEntry{}, false
	}
	entry, ok := byArity[arity]
	return entry, ok
}

// FunctionFunc returns the plain callable registered for name.
func (l *Library) FunctionFunc(name string) (operand.PlainFunc, bool) {
	entry, ok := l.functions[name]
	if !ok || entry.fn == nil {
		return nil, false
	}
	return entry.fn, true
}

// FunctionConstructor returns the arrow-function constructor registered
// for name.
func (l *Library) FunctionConstructor(name string) (FunctionConstructor, bool) {
	entry, ok := l.functions[name]
	if !ok || entry.construct == nil {
		return nil, false
	}
	return entry.construct, true
}

// Method returns the ContextFunction resolver registered for name.
func (l *Library) Method(name string) (operand.MethodFunc, bool) {
	fn, ok := l.methods[name]
	return fn, ok
}

// HasOperator reports whether name/arity is registered in this Library
// specifically (as opposed to model.Model.HasOperator, which answers
// across every installed library).
func (l *Library) HasOperator(name string, arity int) bool {
	_, ok := l.operatorEntry(name, arity)
	return ok
}

// HasFunction reports whether name is registered in this Library.
func (l *Library) HasFunction(name string) bool {
	_, ok := l.functions[name]
	return ok
}

// toValueMap adapts an enum mapping declared with plain `any` values
// (convenient for library authors) to the value.Value map the Model
// stores; value.Value is itself `any`; this only exists to keep a
// library author's AddEnum call sites free of the internal/value import.
func toValueMap(m map[string]any) map[string]value.Value {
	out := make(map[string]value.Value, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
