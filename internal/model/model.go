// Package model implements the Model (registry) component (spec §4.1): it
// holds operator metadata, function metadata, and enums, and answers the
// lookup queries the Parser and Compiler depend on. The Model carries no
// behavior of its own — libraries (internal/library) supply the callables;
// the Model only remembers where to find them and how to parse/compile
// around them.
package model

import (
	"strings"

	"github.com/cwbudde/go-xpr/internal/errors"
	"github.com/cwbudde/go-xpr/internal/value"
)

// Category classifies an operator for precedence-independent purposes: the
// comparison category in particular drives sibling-based type inference
// (spec §4.7 operandType).
type Category string

const (
	CategoryArithmetic Category = "arithmetic"
	CategoryComparison Category = "comparison"
	CategoryLogical    Category = "logical"
	CategoryBitwise    Category = "bitwise"
	CategoryAssignment Category = "assignment"
	CategoryOther      Category = "other"
)

// ArgSpec describes one typed parameter of an operator or function.
type ArgSpec struct {
	Name string
	Type string // a type tag such as "int", "float", "string", "array", "any"
}

// OperatorMetadata is the per (name, arity) record the Model stores for an
// operator (spec §3 "Operator metadata").
type OperatorMetadata struct {
	Priority int
	Category Category
	Args     []ArgSpec
	Return   string
	Lib      string
}

// FunctionMetadata is the per-name record the Model stores for a function.
type FunctionMetadata struct {
	Args            []ArgSpec
	Return          string
	Lib             string
	IsArrowFunction bool
}

// Model is the operator/function/enum registry. It is safe to read
// concurrently once all libraries are installed (spec §5); mutating it
// after operands have been compiled against it is undefined behavior the
// Model does not need to detect.
type Model struct {
	operators map[string]map[int]OperatorMetadata // name -> arity -> metadata
	functions map[string]FunctionMetadata
	enums     map[string]map[string]value.Value
}

// New creates an empty Model. Hosts install behavior into it via
// library.Library.Install before parsing or compiling anything.
func New() *Model {
	return &Model{
		operators: make(map[string]map[int]OperatorMetadata),
		functions: make(map[string]FunctionMetadata),
		enums:     make(map[string]map[string]value.Value),
	}
}

// AddOperator inserts metadata into the nested operators[name][arity] table.
func (m *Model) AddOperator(name string, arity int, meta OperatorMetadata) {
	if m.operators[name] == nil {
		m.operators[name] = make(map[int]OperatorMetadata)
	}
	m.operators[name][arity] = meta
}

// AddFunction registers metadata for a named function.
func (m *Model) AddFunction(name string, meta FunctionMetadata) {
	m.functions[name] = meta
}

// AddEnum registers a named enum mapping.
func (m *Model) AddEnum(name string, mapping map[string]value.Value) {
	m.enums[name] = mapping
}

// GetOperatorMetadata returns the metadata installed for (name, arity), or a
// ModelError if nothing is registered for that arity.
func (m *Model) GetOperatorMetadata(name string, arity int) (OperatorMetadata, error) {
	byArity, ok := m.operators[name]
	if !ok {
		return OperatorMetadata{}, errors.NewModelError("operator %q is not registered", name)
	}
	meta, ok := byArity[arity]
	if !ok {
		return OperatorMetadata{}, errors.NewModelError("operator %q has no metadata for arity %d", name, arity)
	}
	return meta, nil
}

// OperatorArities reports which arities are registered for name. The
// parser does not consult it: it reads a leading '-'/'!'/'~' as a unary
// prefix unconditionally.
func (m *Model) OperatorArities(name string) []int {
	byArity := m.operators[name]
	arities := make([]int, 0, len(byArity))
	for a := range byArity {
		arities = append(arities, a)
	}
	return arities
}

// HasOperator reports whether name is registered for any arity; the parser
// uses this to build its triple/double operator lexeme tables.
func (m *Model) HasOperator(name string) bool {
	_, ok := m.operators[name]
	return ok
}

// GetFunctionMetadata returns the metadata installed for name, or a
// ModelError if the function is not registered.
func (m *Model) GetFunctionMetadata(name string) (FunctionMetadata, error) {
	meta, ok := m.functions[name]
	if !ok {
		return FunctionMetadata{}, errors.NewModelError("function %q is not registered", name)
	}
	return meta, nil
}

// HasFunction reports whether name is registered as a function at all.
func (m *Model) HasFunction(name string) bool {
	_, ok := m.functions[name]
	return ok
}

// OperatorNames returns every registered operator lexeme, used by the
// parser to build its 3-/2-character lookahead tables (spec §4.4
// "Operator lexing").
func (m *Model) OperatorNames() []string {
	names := make([]string, 0, len(m.operators))
	for name := range m.operators {
		names = append(names, name)
	}
	return names
}

// ArrowFunctionNames returns every function name registered with
// IsArrowFunction = true, which the parser needs to decide whether a
// dotted call is `a.map(x => body)` or a plain `a.f(args...)`.
func (m *Model) ArrowFunctionNames() []string {
	names := make([]string, 0)
	for name, meta := range m.functions {
		if meta.IsArrowFunction {
			names = append(names, name)
		}
	}
	return names
}

// GetEnum returns the named enum's option->value mapping.
func (m *Model) GetEnum(name string) (map[string]value.Value, error) {
	mapping, ok := m.enums[name]
	if !ok {
		return nil, errors.NewModelError("enum %q is not registered", name)
	}
	return mapping, nil
}

// GetEnumValue returns the value bound to option within enum name.
func (m *Model) GetEnumValue(name, option string) (value.Value, error) {
	mapping, err := m.GetEnum(name)
	if err != nil {
		return nil, err
	}
	v, ok := mapping[option]
	if !ok {
		return nil, errors.NewModelError("enum %q has no option %q", name, option)
	}
	return v, nil
}

// IsEnum reports true for both a bare registered enum name and any
// "Name.option" where Name is a registered enum and option is one of its
// keys (spec §4.1).
func (m *Model) IsEnum(name string) bool {
	if _, ok := m.enums[name]; ok {
		return true
	}
	enumName, option, found := strings.Cut(name, ".")
	if !found {
		return false
	}
	mapping, ok := m.enums[enumName]
	if !ok {
		return false
	}
	_, ok = mapping[option]
	return ok
}
