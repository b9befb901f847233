package ast

// Serialized is the stable on-wire representation of a Node: {n,t,c}
// (spec §4.3, §6). Field names are fixed by the spec's serialized form.
type Serialized struct {
	N any          `json:"n"`
	T string       `json:"t"`
	C []Serialized `json:"c,omitempty"`
}

// Serialize converts a Node to its wire representation.
func Serialize(n *Node) Serialized {
	children := make([]Serialized, 0, len(n.Children))
	for _, c := range n.Children {
		children = append(children, Serialize(c))
	}
	return Serialized{N: n.Name, T: string(n.Kind), C: children}
}

// Deserialize is Serialize's left inverse up to back-links: it rebuilds a
// Node tree and then re-derives Parent/Index via SetParent (spec §4.3).
func Deserialize(s Serialized) *Node {
	n := deserialize(s)
	SetParent(n)
	return n
}

func deserialize(s Serialized) *Node {
	children := make([]*Node, 0, len(s.C))
	for _, c := range s.C {
		children = append(children, deserialize(c))
	}
	return &Node{Name: normalizeName(s.N), Kind: Kind(s.T), Children: children}
}

// normalizeName coerces round-tripped JSON numbers (float64, per
// encoding/json and gjson's untyped decoding) back to int64 when the value
// has no fractional part, since constant nodes distinguish int from float.
func normalizeName(v any) any {
	f, ok := v.(float64)
	if !ok {
		return v
	}
	if i := int64(f); float64(i) == f {
		return i
	}
	return f
}
