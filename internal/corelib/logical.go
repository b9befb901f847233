package corelib

import (
	"github.com/cwbudde/go-xpr/internal/library"
	"github.com/cwbudde/go-xpr/internal/model"
	"github.com/cwbudde/go-xpr/internal/operand"
	"github.com/cwbudde/go-xpr/internal/value"
)

func registerLogical(lib *library.Library) {
	b := model.ArgSpec{Name: "value", Type: "bool"}

	lib.AddCustomOperator("&&", 2, model.OperatorMetadata{Priority: 20, Category: model.CategoryLogical, Args: []model.ArgSpec{b, b}, Return: "bool"}, shortCircuit(false))
	lib.AddCustomOperator("||", 2, model.OperatorMetadata{Priority: 15, Category: model.CategoryLogical, Args: []model.ArgSpec{b, b}, Return: "bool"}, shortCircuit(true))
	lib.AddOperator("!", 1, model.OperatorMetadata{Priority: 80, Category: model.CategoryLogical, Args: []model.ArgSpec{b}, Return: "bool"}, opNot)
}

func shortCircuit(isOr bool) library.OperatorConstructor {
	return func(name string, children []operand.Operand) operand.Operand {
		return operand.NewShortCircuitOperator(name, children, isOr)
	}
}

func opNot(args []value.Value) (value.Value, error) {
	return !value.IsTruthy(args[0]), nil
}
