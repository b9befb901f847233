package corelib

import (
	"fmt"

	"github.com/cwbudde/go-xpr/internal/value"
)

func asFloat(v value.Value) (float64, bool) {
	switch n := v.(type) {
	case int64:
		return float64(n), true
	case float64:
		return n, true
	}
	return 0, false
}

func asInt(v value.Value) (int64, bool) {
	switch n := v.(type) {
	case int64:
		return n, true
	case float64:
		return int64(n), true
	}
	return 0, false
}

func isFloat(v value.Value) bool {
	_, ok := v.(float64)
	return ok
}

func numericTypeError(op string, args []value.Value) error {
	return fmt.Errorf("%s: expected numeric operands, got %s", op, describe(args))
}

func describe(args []value.Value) string {
	names := make([]string, len(args))
	for i, a := range args {
		names[i] = value.TypeName(a)
	}
	return fmt.Sprint(names)
}

func requireFloats(op string, args []value.Value) (float64, float64, error) {
	a, ok1 := asFloat(args[0])
	b, ok2 := asFloat(args[1])
	if !ok1 || !ok2 {
		return 0, 0, numericTypeError(op, args)
	}
	return a, b, nil
}

func requireInts(op string, args []value.Value) (int64, int64, error) {
	a, ok1 := asInt(args[0])
	b, ok2 := asInt(args[1])
	if !ok1 || !ok2 {
		return 0, 0, numericTypeError(op, args)
	}
	return a, b, nil
}
