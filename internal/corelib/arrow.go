package corelib

import (
	"fmt"
	"sort"

	"github.com/cwbudde/go-xpr/internal/library"
	"github.com/cwbudde/go-xpr/internal/model"
	"github.com/cwbudde/go-xpr/internal/operand"
	"github.com/cwbudde/go-xpr/internal/value"
	"github.com/maruel/natural"
)

// arrow function calls compile to children = [receiver, param, body] when a
// lambda is present, or just [receiver] for the no-lambda call form (e.g.
// `list.map()`). `.sum()` is not one of these: sum is a plain function and
// compiles to fnSum without going through here.
func registerArrow(lib *library.Library) {
	arr := model.ArgSpec{Name: "list", Type: "array"}
	meta := model.FunctionMetadata{Args: []model.ArgSpec{arr}, Return: "array"}

	lib.AddArrowFunction("map", meta, arrowCtor(invokeMap))
	lib.AddArrowFunction("filter", meta, arrowCtor(invokeFilter))
	lib.AddArrowFunction("forEach", model.FunctionMetadata{Args: []model.ArgSpec{arr}, Return: "any"}, arrowCtor(invokeForEach))
	lib.AddArrowFunction("any", model.FunctionMetadata{Args: []model.ArgSpec{arr}, Return: "bool"}, arrowCtor(invokeAny))
	lib.AddArrowFunction("all", model.FunctionMetadata{Args: []model.ArgSpec{arr}, Return: "bool"}, arrowCtor(invokeAll))
	lib.AddArrowFunction("sortBy", meta, arrowCtor(invokeSortBy))
}

func arrowCtor(invoke operand.LambdaInvoker) library.FunctionConstructor {
	return func(name string, children []operand.Operand) operand.Operand {
		receiver := children[0]
		var param *operand.Variable
		var body operand.Operand
		if len(children) >= 3 {
			param, _ = children[1].(*operand.Variable)
			body = children[2]
		}
		return operand.NewArrowFunction(name, receiver, param, body, invoke)
	}
}

func invokeMap(items []value.Value, call func(value.Value) (value.Value, error)) (value.Value, error) {
	out := make([]value.Value, len(items))
	for i, item := range items {
		v, err := call(item)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

func invokeFilter(items []value.Value, call func(value.Value) (value.Value, error)) (value.Value, error) {
	var out []value.Value
	for _, item := range items {
		v, err := call(item)
		if err != nil {
			return nil, err
		}
		if value.IsTruthy(v) {
			out = append(out, item)
		}
	}
	if out == nil {
		out = []value.Value{}
	}
	return out, nil
}

func invokeForEach(items []value.Value, call func(value.Value) (value.Value, error)) (value.Value, error) {
	for _, item := range items {
		if _, err := call(item); err != nil {
			return nil, err
		}
	}
	return nil, nil
}

func invokeAny(items []value.Value, call func(value.Value) (value.Value, error)) (value.Value, error) {
	for _, item := range items {
		v, err := call(item)
		if err != nil {
			return nil, err
		}
		if value.IsTruthy(v) {
			return true, nil
		}
	}
	return false, nil
}

func invokeAll(items []value.Value, call func(value.Value) (value.Value, error)) (value.Value, error) {
	for _, item := range items {
		v, err := call(item)
		if err != nil {
			return nil, err
		}
		if !value.IsTruthy(v) {
			return false, nil
		}
	}
	return true, nil
}

// invokeSortBy calls the lambda once per element to compute a sort key,
// then orders elements by that key (strings naturally, numbers
// numerically) without re-invoking the lambda during the sort itself.
func invokeSortBy(items []value.Value, call func(value.Value) (value.Value, error)) (value.Value, error) {
	keys := make([]value.Value, len(items))
	for i, item := range items {
		k, err := call(item)
		if err != nil {
			return nil, err
		}
		keys[i] = k
	}

	order := make([]int, len(items))
	for i := range order {
		order[i] = i
	}
	var sortErr error
	less := func(i, j int) bool {
		a, b := keys[order[i]], keys[order[j]]
		if as, ok := a.(string); ok {
			if bs, ok := b.(string); ok {
				return natural.Less(as, bs)
			}
		}
		c, err := compare(a, b)
		if err != nil {
			sortErr = err
			return false
		}
		return c < 0
	}
	sort.SliceStable(order, less)
	if sortErr != nil {
		return nil, fmt.Errorf("sortBy: %w", sortErr)
	}

	out := make([]value.Value, len(items))
	for i, idx := range order {
		out[i] = items[idx]
	}
	return out, nil
}
