package corelib

import (
	"fmt"
	"math"
	"sort"

	"github.com/cwbudde/go-xpr/internal/library"
	"github.com/cwbudde/go-xpr/internal/model"
	"github.com/cwbudde/go-xpr/internal/value"
	"github.com/maruel/natural"
)

func registerCollections(lib *library.Library) {
	arr := model.ArgSpec{Name: "list", Type: "array"}
	obj := model.ArgSpec{Name: "object", Type: "object"}
	num := model.ArgSpec{Name: "value", Type: "number"}

	lib.AddFunction("keys", model.FunctionMetadata{Args: []model.ArgSpec{obj}, Return: "array"}, fnKeys)
	lib.AddFunction("values", model.FunctionMetadata{Args: []model.ArgSpec{obj}, Return: "array"}, fnValues)
	lib.AddFunction("sum", model.FunctionMetadata{Args: []model.ArgSpec{arr}, Return: "number"}, fnSum)
	lib.AddFunction("min", model.FunctionMetadata{Args: []model.ArgSpec{arr}, Return: "number"}, fnMin)
	lib.AddFunction("max", model.FunctionMetadata{Args: []model.ArgSpec{arr}, Return: "number"}, fnMax)
	lib.AddFunction("sort", model.FunctionMetadata{Args: []model.ArgSpec{arr}, Return: "array"}, fnSort)
	lib.AddFunction("abs", model.FunctionMetadata{Args: []model.ArgSpec{num}, Return: "number"}, fnAbs)
	lib.AddFunction("round", model.FunctionMetadata{Args: []model.ArgSpec{num}, Return: "int"}, fnRound)
	lib.AddFunction("floor", model.FunctionMetadata{Args: []model.ArgSpec{num}, Return: "int"}, fnFloor)
	lib.AddFunction("ceil", model.FunctionMetadata{Args: []model.ArgSpec{num}, Return: "int"}, fnCeil)
}

func fnKeys(args []value.Value) (value.Value, error) {
	obj, ok := args[0].(map[string]value.Value)
	if !ok {
		return nil, fmt.Errorf("keys: expected an object")
	}
	names := make([]string, 0, len(obj))
	for k := range obj {
		names = append(names, k)
	}
	sort.Strings(names)
	out := make([]value.Value, len(names))
	for i, k := range names {
		out[i] = k
	}
	return out, nil
}

func fnValues(args []value.Value) (value.Value, error) {
	obj, ok := args[0].(map[string]value.Value)
	if !ok {
		return nil, fmt.Errorf("values: expected an object")
	}
	names := make([]string, 0, len(obj))
	for k := range obj {
		names = append(names, k)
	}
	sort.Strings(names)
	out := make([]value.Value, len(names))
	for i, k := range names {
		out[i] = obj[k]
	}
	return out, nil
}

func fnSum(args []value.Value) (value.Value, error) {
	list, ok := args[0].([]value.Value)
	if !ok {
		return nil, fmt.Errorf("sum: expected an array")
	}
	var intTotal int64
	var floatTotal float64
	anyFloat := false
	for _, item := range list {
		if isFloat(item) {
			anyFloat = true
		}
		f, ok := asFloat(item)
		if !ok {
			return nil, fmt.Errorf("sum: non-numeric element %s", value.TypeName(item))
		}
		floatTotal += f
		if i, ok := asInt(item); ok {
			intTotal += i
		}
	}
	if anyFloat {
		return floatTotal, nil
	}
	return intTotal, nil
}

func fnMin(args []value.Value) (value.Value, error) { return extremum(args, -1) }
func fnMax(args []value.Value) (value.Value, error) { return extremum(args, 1) }

func extremum(args []value.Value, sign int) (value.Value, error) {
	list, ok := args[0].([]value.Value)
	if !ok || len(list) == 0 {
		return nil, fmt.Errorf("expected a non-empty array")
	}
	best := list[0]
	for _, item := range list[1:] {
		c, err := compare(item, best)
		if err != nil {
			return nil, err
		}
		if c*sign > 0 {
			best = item
		}
	}
	return best, nil
}

// fnSort sorts strings in natural order (so "item2" precedes "item10"),
// and numbers numerically; mixed-type arrays are an error.
func fnSort(args []value.Value) (value.Value, error) {
	list, ok := args[0].([]value.Value)
	if !ok {
		return nil, fmt.Errorf("sort: expected an array")
	}
	out := make([]value.Value, len(list))
	copy(out, list)

	if len(out) == 0 {
		return out, nil
	}
	_, firstIsString := out[0].(string)
	for _, item := range out {
		_, isString := item.(string)
		_, isNumber := asFloat(item)
		if isString != firstIsString || (!isString && !isNumber) {
			return nil, fmt.Errorf("sort: elements must be all strings or all numbers")
		}
	}
	if firstIsString {
		sort.Slice(out, func(i, j int) bool {
			return natural.Less(out[i].(string), out[j].(string))
		})
		return out, nil
	}
	sort.Slice(out, func(i, j int) bool {
		c, _ := compare(out[i], out[j])
		return c < 0
	})
	return out, nil
}

func fnAbs(args []value.Value) (value.Value, error) {
	if isFloat(args[0]) {
		f, _ := asFloat(args[0])
		return math.Abs(f), nil
	}
	i, ok := asInt(args[0])
	if !ok {
		return nil, numericTypeError("abs", args)
	}
	if i < 0 {
		i = -i
	}
	return i, nil
}

func fnRound(args []value.Value) (value.Value, error) {
	f, ok := asFloat(args[0])
	if !ok {
		return nil, numericTypeError("round", args)
	}
	return int64(math.Round(f)), nil
}

func fnFloor(args []value.Value) (value.Value, error) {
	f, ok := asFloat(args[0])
	if !ok {
		return nil, numericTypeError("floor", args)
	}
	return int64(math.Floor(f)), nil
}

func fnCeil(args []value.Value) (value.Value, error) {
	f, ok := asFloat(args[0])
	if !ok {
		return nil, numericTypeError("ceil", args)
	}
	return int64(math.Ceil(f)), nil
}
