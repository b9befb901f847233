package operand

import "github.com/cwbudde/go-xpr/internal/value"

// KeyValue is one `key: value` pair inside an Object literal. It has
// exactly one child: the value expression (spec §3 Node invariants).
type KeyValue struct {
	base
}

// NewKeyValue builds a KeyValue operand for the given key with valueChild
// as its sole child.
func NewKeyValue(key string, valueChild Operand) *KeyValue {
	return &KeyValue{base: base{name: key, children: []Operand{valueChild}}}
}

func (kv *KeyValue) Eval() (value.Value, Signal, error) {
	return kv.children[0].Eval()
}

// Array is an ordered `[a, b, c]` literal.
type Array struct {
	base
}

// NewArray builds an Array operand from its element operands.
func NewArray(elements []Operand) *Array {
	return &Array{base: base{name: "array", children: elements}}
}

func (a *Array) Eval() (value.Value, Signal, error) {
	out := make([]value.Value, 0, len(a.children))
	for _, child := range a.children {
		v, sig, err := child.Eval()
		if err != nil {
			return nil, SigNone, err
		}
		if sig != SigNone {
			return v, sig, nil
		}
		out = append(out, v)
	}
	return out, SigNone, nil
}

// Object is a `{k: v, ...}` literal; every child must be a *KeyValue.
type Object struct {
	base
}

// NewObject builds an Object operand from its KeyValue children.
func NewObject(attributes []Operand) *Object {
	return &Object{base: base{name: "object", children: attributes}}
}

func (o *Object) Eval() (value.Value, Signal, error) {
	out := make(map[string]value.Value, len(o.children))
	for _, child := range o.children {
		kv, ok := child.(*KeyValue)
		if !ok {
			continue
		}
		v, sig, err := kv.Eval()
		if err != nil {
			return nil, SigNone, err
		}
		if sig != SigNone {
			return v, sig, nil
		}
		out[kv.NameString()] = v
	}
	return out, SigNone, nil
}
