// Package value defines the dynamic value type threaded through parsing,
// compilation, and evaluation: a small closed sum of the primitive kinds an
// expression can produce, plus ordered and keyed collections of itself.
package value

import (
	"fmt"
	"sort"
)

// Value is a dynamically typed expression result. It is always one of:
// nil (the null/undefined marker), bool, int64, float64, string, []Value,
// or map[string]Value. No other concrete type should ever be stored in a
// Value; library callables are responsible for only ever producing and
// consuming these seven shapes.
type Value = any

// TypeName returns the library-facing type tag for v, used by operand
// metadata and the operandType inference query.
func TypeName(v Value) string {
	switch v.(type) {
	case nil:
		return "null"
	case bool:
		return "bool"
	case int64:
		return "int"
	case float64:
		return "float"
	case string:
		return "string"
	case []Value:
		return "array"
	case map[string]Value:
		return "object"
	default:
		return fmt.Sprintf("%T", v)
	}
}

// IsTruthy reports whether v should be treated as true in a boolean
// context (if/while/for conditions, && / || short-circuiting, ! negation).
// Null, false, zero numbers, and the empty string are falsey; everything
// else, including empty arrays and objects, is truthy.
func IsTruthy(v Value) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case int64:
		return t != 0
	case float64:
		return t != 0
	case string:
		return t != ""
	default:
		return true
	}
}

// Equal reports whether two values are equal. Numbers compare by numeric
// value across int64/float64, so int64(2) equals 2.0; any other pair must
// have the same dynamic type and the same content. No other coercion is
// applied: the string "1" does not equal the number 1. The core library's
// ==/!= operators, contains, and switch/case matching (spec §4.6 Switch)
// all use it.
func Equal(a, b Value) bool {
	an, aIsNum := asFloat(a)
	bn, bIsNum := asFloat(b)
	if aIsNum && bIsNum {
		return an == bn
	}

	switch av := a.(type) {
	case nil:
		return b == nil
	case bool:
		bv, ok := b.(bool)
		return ok && av == bv
	case string:
		bv, ok := b.(string)
		return ok && av == bv
	case []Value:
		bv, ok := b.([]Value)
		if !ok || len(av) != len(bv) {
			return false
		}
		for i := range av {
			if !Equal(av[i], bv[i]) {
				return false
			}
		}
		return true
	case map[string]Value:
		bv, ok := b.(map[string]Value)
		if !ok || len(av) != len(bv) {
			return false
		}
		for k, v := range av {
			other, present := bv[k]
			if !present || !Equal(v, other) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

func asFloat(v Value) (float64, bool) {
	switch t := v.(type) {
	case int64:
		return float64(t), true
	case float64:
		return t, true
	default:
		return 0, false
	}
}

// String renders a Value the way the facade and CLI print results: plain
// for scalars, JSON-ish for collections (but without quoting rules that
// would require importing encoding/json here).
func String(v Value) string {
	switch t := v.(type) {
	case nil:
		return "null"
	case bool, int64, float64:
		return fmt.Sprintf("%v", t)
	case string:
		return t
	case []Value:
		out := "["
		for i, e := range t {
			if i > 0 {
				out += ","
			}
			out += String(e)
		}
		return out + "]"
	case map[string]Value:
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		out := "{"
		for i, k := range keys {
			if i > 0 {
				out += ","
			}
			out += k + ":" + String(t[k])
		}
		return out + "}"
	default:
		return fmt.Sprintf("%v", t)
	}
}
