package corelib

import (
	"github.com/cwbudde/go-xpr/internal/library"
	"github.com/cwbudde/go-xpr/internal/model"
	"github.com/cwbudde/go-xpr/internal/value"
)

func registerArithmetic(lib *library.Library) {
	num := model.ArgSpec{Name: "value", Type: "number"}

	lib.AddOperator("+", 2, model.OperatorMetadata{Priority: 50, Category: model.CategoryArithmetic, Args: []model.ArgSpec{num, num}, Return: "number"}, opAdd)
	lib.AddOperator("-", 2, model.OperatorMetadata{Priority: 50, Category: model.CategoryArithmetic, Args: []model.ArgSpec{num, num}, Return: "number"}, opSub)
	lib.AddOperator("*", 2, model.OperatorMetadata{Priority: 60, Category: model.CategoryArithmetic, Args: []model.ArgSpec{num, num}, Return: "number"}, opMul)
	lib.AddOperator("/", 2, model.OperatorMetadata{Priority: 60, Category: model.CategoryArithmetic, Args: []model.ArgSpec{num, num}, Return: "number"}, opDiv)
	lib.AddOperator("%", 2, model.OperatorMetadata{Priority: 60, Category: model.CategoryArithmetic, Args: []model.ArgSpec{num, num}, Return: "int"}, opMod)
	lib.AddOperator("-", 1, model.OperatorMetadata{Priority: 80, Category: model.CategoryArithmetic, Args: []model.ArgSpec{num}, Return: "number"}, opNeg)
}

// opAdd adds numbers, or concatenates when either operand is a string —
// the only arithmetic operator with a non-numeric overload.
func opAdd(args []value.Value) (value.Value, error) {
	if s, ok := args[0].(string); ok {
		return s + value.String(args[1]), nil
	}
	if s, ok := args[1].(string); ok {
		return value.String(args[0]) + s, nil
	}
	if isFloat(args[0]) || isFloat(args[1]) {
		a, b, err := requireFloats("+", args)
		if err != nil {
			return nil, err
		}
		return a + b, nil
	}
	a, b, err := requireInts("+", args)
	if err != nil {
		return nil, err
	}
	return a + b, nil
}

func opSub(args []value.Value) (value.Value, error) {
	if isFloat(args[0]) || isFloat(args[1]) {
		a, b, err := requireFloats("-", args)
		if err != nil {
			return nil, err
		}
		return a - b, nil
	}
	a, b, err := requireInts("-", args)
	if err != nil {
		return nil, err
	}
	return a - b, nil
}

func opMul(args []value.Value) (value.Value, error) {
	if isFloat(args[0]) || isFloat(args[1]) {
		a, b, err := requireFloats("*", args)
		if err != nil {
			return nil, err
		}
		return a * b, nil
	}
	a, b, err := requireInts("*", args)
	if err != nil {
		return nil, err
	}
	return a * b, nil
}

func opDiv(args []value.Value) (value.Value, error) {
	a, b, err := requireFloats("/", args)
	if err != nil {
		return nil, err
	}
	if b == 0 {
		return nil, numericTypeError("/ by zero", args)
	}
	return a / b, nil
}

func opMod(args []value.Value) (value.Value, error) {
	a, b, err := requireInts("%", args)
	if err != nil {
		return nil, err
	}
	if b == 0 {
		return nil, numericTypeError("%% by zero", args)
	}
	return a % b, nil
}

func opNeg(args []value.Value) (value.Value, error) {
	if isFloat(args[0]) {
		f, _ := asFloat(args[0])
		return -f, nil
	}
	i, ok := asInt(args[0])
	if !ok {
		return nil, numericTypeError("unary -", args)
	}
	return -i, nil
}
