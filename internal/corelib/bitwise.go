package corelib

import (
	"github.com/cwbudde/go-xpr/internal/library"
	"github.com/cwbudde/go-xpr/internal/model"
	"github.com/cwbudde/go-xpr/internal/value"
)

func registerBitwise(lib *library.Library) {
	i := model.ArgSpec{Name: "value", Type: "int"}

	lib.AddOperator("&", 2, model.OperatorMetadata{Priority: 25, Category: model.CategoryBitwise, Args: []model.ArgSpec{i, i}, Return: "int"}, intOp(func(a, b int64) int64 { return a & b }))
	lib.AddOperator("|", 2, model.OperatorMetadata{Priority: 25, Category: model.CategoryBitwise, Args: []model.ArgSpec{i, i}, Return: "int"}, intOp(func(a, b int64) int64 { return a | b }))
	lib.AddOperator("^", 2, model.OperatorMetadata{Priority: 25, Category: model.CategoryBitwise, Args: []model.ArgSpec{i, i}, Return: "int"}, intOp(func(a, b int64) int64 { return a ^ b }))
	lib.AddOperator("<<", 2, model.OperatorMetadata{Priority: 45, Category: model.CategoryBitwise, Args: []model.ArgSpec{i, i}, Return: "int"}, intOp(func(a, b int64) int64 { return a << uint(b) }))
	lib.AddOperator(">>", 2, model.OperatorMetadata{Priority: 45, Category: model.CategoryBitwise, Args: []model.ArgSpec{i, i}, Return: "int"}, intOp(func(a, b int64) int64 { return a >> uint(b) }))
	lib.AddOperator("~", 1, model.OperatorMetadata{Priority: 80, Category: model.CategoryBitwise, Args: []model.ArgSpec{i}, Return: "int"}, opBitNot)
}

func intOp(fn func(a, b int64) int64) func([]value.Value) (value.Value, error) {
	return func(args []value.Value) (value.Value, error) {
		a, b, err := requireInts("bitwise", args)
		if err != nil {
			return nil, err
		}
		return fn(a, b), nil
	}
}

func opBitNot(args []value.Value) (value.Value, error) {
	a, ok := asInt(args[0])
	if !ok {
		return nil, numericTypeError("~", args)
	}
	return ^a, nil
}
