// Package context implements the nested variable scope operands are
// evaluated against (spec §4, "Context"). A child context delegates lookups
// it can't satisfy to its parent; assignments write to the nearest scope
// that already defines the name, falling back to the root.
package context

import (
	"errors"

	"github.com/cwbudde/go-xpr/internal/value"
)

// ErrStepLimitExceeded is returned by Step once a bounded Context's loop
// iteration budget runs out (spec §5: "long-running evaluations ... must be
// bounded by the host via ... a step counter if desired").
var ErrStepLimitExceeded = errors.New("step limit exceeded")

// stepBudget is shared by a root Context and every scope descended from it,
// so a loop nested arbitrarily deep still counts against the one budget the
// host configured at Run/Eval time.
type stepBudget struct {
	limit int
	count int
}

func (b *stepBudget) step() error {
	if b == nil || b.limit <= 0 {
		return nil
	}
	b.count++
	if b.count > b.limit {
		return ErrStepLimitExceeded
	}
	return nil
}

// Context is one lexical scope: a mapping of name to value plus an
// optional link to the enclosing scope. The root Context wraps the
// caller-supplied variable mapping (spec §6 run/eval ctx parameter).
type Context struct {
	vars   map[string]value.Value
	parent *Context
	budget *stepBudget
}

// New wraps a caller-supplied mapping as a root Context with no step limit.
func New(vars map[string]value.Value) *Context {
	return NewBounded(vars, 0)
}

// NewBounded wraps a caller-supplied mapping as a root Context whose loop
// constructs fail with ErrStepLimitExceeded after limit Step calls; limit
// <= 0 means unbounded (spec §5 "step counter if desired").
func NewBounded(vars map[string]value.Value, limit int) *Context {
	if vars == nil {
		vars = make(map[string]value.Value)
	}
	var budget *stepBudget
	if limit > 0 {
		budget = &stepBudget{limit: limit}
	}
	return &Context{vars: vars, budget: budget}
}

// NewChild creates a child scope whose lookups fall back to c. Used for
// arrow-function bodies, loop iterations, and block-scoped control flow
// (spec §4.6 "Context wiring", §5 "Resource acquisition").
func (c *Context) NewChild() *Context {
	return &Context{vars: make(map[string]value.Value), parent: c, budget: c.budget}
}

// Step counts one loop iteration against this Context's shared budget,
// returning ErrStepLimitExceeded once it's spent. While/For/ForIn call this
// once per iteration (spec §5).
func (c *Context) Step() error {
	return c.budget.step()
}

// Get looks up name in this scope, then recursively in enclosing scopes.
// The bool result is false when name is undefined anywhere in the chain;
// whether that yields null or an error is library policy (spec §7), not
// Context's.
func (c *Context) Get(name string) (value.Value, bool) {
	for scope := c; scope != nil; scope = scope.parent {
		if v, ok := scope.vars[name]; ok {
			return v, true
		}
	}
	return nil, false
}

// Set writes name in the nearest scope that already defines it, or in the
// root scope if no enclosing scope defines it yet (spec §3 Context
// invariants: "assignments write to the nearest defining scope, otherwise
// to the root").
func (c *Context) Set(name string, v value.Value) {
	for scope := c; scope != nil; scope = scope.parent {
		if _, ok := scope.vars[name]; ok {
			scope.vars[name] = v
			return
		}
		if scope.parent == nil {
			scope.vars[name] = v
			return
		}
	}
}

// Declare binds name in this exact scope, shadowing any outer binding of
// the same name (spec §8 property 7, arrow-function parameter shadowing;
// also used to bind for-in loop variables in their fresh child scope).
func (c *Context) Declare(name string, v value.Value) {
	c.vars[name] = v
}
