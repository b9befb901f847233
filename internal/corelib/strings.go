package corelib

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cwbudde/go-xpr/internal/library"
	"github.com/cwbudde/go-xpr/internal/model"
	"github.com/cwbudde/go-xpr/internal/value"
	"github.com/tidwall/match"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	upperCaser = cases.Upper(language.Und)
	lowerCaser = cases.Lower(language.Und)
)

func registerStrings(lib *library.Library) {
	strArg := model.ArgSpec{Name: "value", Type: "string"}
	anyArg := model.ArgSpec{Name: "value", Type: "any"}

	lib.AddFunction("upper", model.FunctionMetadata{Args: []model.ArgSpec{strArg}, Return: "string"}, fnUpper)
	lib.AddFunction("lower", model.FunctionMetadata{Args: []model.ArgSpec{strArg}, Return: "string"}, fnLower)
	lib.AddFunction("like", model.FunctionMetadata{Args: []model.ArgSpec{strArg, strArg}, Return: "bool"}, fnLike)
	lib.AddFunction("len", model.FunctionMetadata{Args: []model.ArgSpec{anyArg}, Return: "int"}, fnLen)
	lib.AddFunction("str", model.FunctionMetadata{Args: []model.ArgSpec{anyArg}, Return: "string"}, fnStr)
	lib.AddFunction("num", model.FunctionMetadata{Args: []model.ArgSpec{anyArg}, Return: "number"}, fnNum)
	lib.AddFunction("join", model.FunctionMetadata{Args: []model.ArgSpec{{Name: "list", Type: "array"}, strArg}, Return: "string"}, fnJoin)
	lib.AddFunction("split", model.FunctionMetadata{Args: []model.ArgSpec{strArg, strArg}, Return: "array"}, fnSplit)
	lib.AddFunction("contains", model.FunctionMetadata{Args: []model.ArgSpec{anyArg, anyArg}, Return: "bool"}, fnContains)
	lib.AddFunction("trim", model.FunctionMetadata{Args: []model.ArgSpec{strArg}, Return: "string"}, fnTrim)
}

func fnUpper(args []value.Value) (value.Value, error) {
	s, ok := args[0].(string)
	if !ok {
		return nil, fmt.Errorf("upper: expected a string, got %s", value.TypeName(args[0]))
	}
	return upperCaser.String(s), nil
}

func fnLower(args []value.Value) (value.Value, error) {
	s, ok := args[0].(string)
	if !ok {
		return nil, fmt.Errorf("lower: expected a string, got %s", value.TypeName(args[0]))
	}
	return lowerCaser.String(s), nil
}

// fnLike performs shell-glob pattern matching (`*`, `?`) rather
// than SQL LIKE wildcards, matching tidwall/match's semantics directly.
func fnLike(args []value.Value) (value.Value, error) {
	s, ok1 := args[0].(string)
	pattern, ok2 := args[1].(string)
	if !ok1 || !ok2 {
		return nil, fmt.Errorf("like: expected (string, string)")
	}
	return match.Match(s, pattern), nil
}

func fnLen(args []value.Value) (value.Value, error) {
	switch v := args[0].(type) {
	case string:
		return int64(len([]rune(v))), nil
	case []value.Value:
		return int64(len(v)), nil
	case map[string]value.Value:
		return int64(len(v)), nil
	default:
		return nil, fmt.Errorf("len: unsupported type %s", value.TypeName(args[0]))
	}
}

func fnStr(args []value.Value) (value.Value, error) {
	return value.String(args[0]), nil
}

func fnNum(args []value.Value) (value.Value, error) {
	switch v := args[0].(type) {
	case int64, float64:
		return v, nil
	case string:
		if i, err := strconv.ParseInt(v, 10, 64); err == nil {
			return i, nil
		}
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, fmt.Errorf("num: cannot convert %q to a number", v)
		}
		return f, nil
	case bool:
		if v {
			return int64(1), nil
		}
		return int64(0), nil
	default:
		return nil, fmt.Errorf("num: cannot convert %s to a number", value.TypeName(args[0]))
	}
}

func fnJoin(args []value.Value) (value.Value, error) {
	list, ok := args[0].([]value.Value)
	if !ok {
		return nil, fmt.Errorf("join: expected an array")
	}
	sep, ok := args[1].(string)
	if !ok {
		return nil, fmt.Errorf("join: expected a string separator")
	}
	parts := make([]string, len(list))
	for i, v := range list {
		parts[i] = value.String(v)
	}
	return strings.Join(parts, sep), nil
}

func fnSplit(args []value.Value) (value.Value, error) {
	s, ok1 := args[0].(string)
	sep, ok2 := args[1].(string)
	if !ok1 || !ok2 {
		return nil, fmt.Errorf("split: expected (string, string)")
	}
	parts := strings.Split(s, sep)
	out := make([]value.Value, len(parts))
	for i, p := range parts {
		out[i] = p
	}
	return out, nil
}

func fnContains(args []value.Value) (value.Value, error) {
	switch c := args[0].(type) {
	case string:
		needle, ok := args[1].(string)
		if !ok {
			return nil, fmt.Errorf("contains: expected a string needle")
		}
		return strings.Contains(c, needle), nil
	case []value.Value:
		for _, item := range c {
			if value.Equal(item, args[1]) {
				return true, nil
			}
		}
		return false, nil
	case map[string]value.Value:
		key, ok := args[1].(string)
		if !ok {
			return nil, fmt.Errorf("contains: expected a string key")
		}
		_, found := c[key]
		return found, nil
	default:
		return nil, fmt.Errorf("contains: unsupported type %s", value.TypeName(args[0]))
	}
}

func fnTrim(args []value.Value) (value.Value, error) {
	s, ok := args[0].(string)
	if !ok {
		return nil, fmt.Errorf("trim: expected a string, got %s", value.TypeName(args[0]))
	}
	return strings.TrimSpace(s), nil
}
