package corelib

import (
	"fmt"

	"github.com/cwbudde/go-xpr/internal/library"
	"github.com/cwbudde/go-xpr/internal/model"
	"github.com/cwbudde/go-xpr/internal/value"
)

func registerIndex(lib *library.Library) {
	lib.AddOperator("[]", 2, model.OperatorMetadata{
		Priority: 90,
		Category: model.CategoryOther,
		Args: []model.ArgSpec{
			{Name: "container", Type: "any"},
			{Name: "index", Type: "any"},
		},
		Return: "any",
	}, opIndex)
}

func opIndex(args []value.Value) (value.Value, error) {
	switch container := args[0].(type) {
	case []value.Value:
		i, ok := asInt(args[1])
		if !ok || i < 0 || int(i) >= len(container) {
			return nil, fmt.Errorf("[]: array index out of range")
		}
		return container[i], nil
	case map[string]value.Value:
		key, ok := args[1].(string)
		if !ok {
			return nil, fmt.Errorf("[]: object key must be a string")
		}
		v, ok := container[key]
		if !ok {
			return nil, nil
		}
		return v, nil
	case string:
		i, ok := asInt(args[1])
		runes := []rune(container)
		if !ok || i < 0 || int(i) >= len(runes) {
			return nil, fmt.Errorf("[]: string index out of range")
		}
		return string(runes[i]), nil
	default:
		return nil, fmt.Errorf("[]: cannot index into %s", value.TypeName(args[0]))
	}
}
