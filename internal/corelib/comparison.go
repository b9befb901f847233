package corelib

import (
	"fmt"

	"github.com/cwbudde/go-xpr/internal/library"
	"github.com/cwbudde/go-xpr/internal/model"
	"github.com/cwbudde/go-xpr/internal/value"
)

func registerComparison(lib *library.Library) {
	a := model.ArgSpec{Name: "a", Type: "any"}
	b := model.ArgSpec{Name: "b", Type: "any"}

	lib.AddOperator("==", 2, model.OperatorMetadata{Priority: 30, Category: model.CategoryComparison, Args: []model.ArgSpec{a, b}, Return: "bool"}, opEq)
	lib.AddOperator("!=", 2, model.OperatorMetadata{Priority: 30, Category: model.CategoryComparison, Args: []model.ArgSpec{a, b}, Return: "bool"}, opNe)
	lib.AddOperator("<", 2, model.OperatorMetadata{Priority: 35, Category: model.CategoryComparison, Args: []model.ArgSpec{a, b}, Return: "bool"}, cmpOp(func(c int) bool { return c < 0 }))
	lib.AddOperator("<=", 2, model.OperatorMetadata{Priority: 35, Category: model.CategoryComparison, Args: []model.ArgSpec{a, b}, Return: "bool"}, cmpOp(func(c int) bool { return c <= 0 }))
	lib.AddOperator(">", 2, model.OperatorMetadata{Priority: 35, Category: model.CategoryComparison, Args: []model.ArgSpec{a, b}, Return: "bool"}, cmpOp(func(c int) bool { return c > 0 }))
	lib.AddOperator(">=", 2, model.OperatorMetadata{Priority: 35, Category: model.CategoryComparison, Args: []model.ArgSpec{a, b}, Return: "bool"}, cmpOp(func(c int) bool { return c >= 0 }))
}

func opEq(args []value.Value) (value.Value, error) {
	return value.Equal(args[0], args[1]), nil
}

func opNe(args []value.Value) (value.Value, error) {
	return !value.Equal(args[0], args[1]), nil
}

// cmpOp builds an ordering operator from a predicate over the three-way
// comparison result; numbers compare numerically, strings lexically.
func cmpOp(accept func(int) bool) func([]value.Value) (value.Value, error) {
	return func(args []value.Value) (value.Value, error) {
		c, err := compare(args[0], args[1])
		if err != nil {
			return nil, err
		}
		return accept(c), nil
	}
}

func compare(x, y value.Value) (int, error) {
	if sx, ok := x.(string); ok {
		sy, ok := y.(string)
		if !ok {
			return 0, numericTypeError("compare", []value.Value{x, y})
		}
		switch {
		case sx < sy:
			return -1, nil
		case sx > sy:
			return 1, nil
		default:
			return 0, nil
		}
	}
	fx, ok1 := asFloat(x)
	fy, ok2 := asFloat(y)
	if !ok1 || !ok2 {
		return 0, fmt.Errorf("compare: cannot order %s and %s", value.TypeName(x), value.TypeName(y))
	}
	switch {
	case fx < fy:
		return -1, nil
	case fx > fy:
		return 1, nil
	default:
		return 0, nil
	}
}
