package corelib

import (
	"github.com/cwbudde/go-xpr/internal/library"
	"github.com/cwbudde/go-xpr/internal/model"
	"github.com/cwbudde/go-xpr/internal/operand"
)

func registerAssignment(lib *library.Library) {
	any := model.ArgSpec{Name: "value", Type: "any"}

	lib.AddCustomOperator("=", 2, model.OperatorMetadata{Priority: 5, Category: model.CategoryAssignment, Args: []model.ArgSpec{any, any}, Return: "any"}, assign(nil))
	lib.AddCustomOperator("+=", 2, model.OperatorMetadata{Priority: 5, Category: model.CategoryAssignment, Args: []model.ArgSpec{any, any}, Return: "any"}, assign(opAdd))
	lib.AddCustomOperator("-=", 2, model.OperatorMetadata{Priority: 5, Category: model.CategoryAssignment, Args: []model.ArgSpec{any, any}, Return: "any"}, assign(opSub))
	lib.AddCustomOperator("*=", 2, model.OperatorMetadata{Priority: 5, Category: model.CategoryAssignment, Args: []model.ArgSpec{any, any}, Return: "any"}, assign(opMul))
	lib.AddCustomOperator("/=", 2, model.OperatorMetadata{Priority: 5, Category: model.CategoryAssignment, Args: []model.ArgSpec{any, any}, Return: "any"}, assign(opDiv))
	lib.AddCustomOperator("%=", 2, model.OperatorMetadata{Priority: 5, Category: model.CategoryAssignment, Args: []model.ArgSpec{any, any}, Return: "any"}, assign(opMod))
}

// assign returns a constructor binding combine as the compound-assignment
// combiner; combine is nil for plain `=`.
func assign(combine operand.PlainFunc) library.OperatorConstructor {
	return func(name string, children []operand.Operand) operand.Operand {
		return operand.NewAssignmentOperator(name, children, combine)
	}
}
