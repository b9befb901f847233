package ast

import "testing"

func TestSetParentAssignsIndexAndParent(t *testing.T) {
	leaf1 := New(int64(1), KindConstant)
	leaf2 := New(int64(2), KindConstant)
	root := New("+", KindOperator, leaf1, leaf2)
	SetParent(root)

	if leaf1.Parent != root {
		t.Error("leaf1.Parent was not set to root")
	}
	if leaf1.Index != 0 {
		t.Errorf("leaf1.Index = %d, want 0", leaf1.Index)
	}
	if leaf2.Index != 1 {
		t.Errorf("leaf2.Index = %d, want 1", leaf2.Index)
	}
	if root.Parent != nil {
		t.Error("root.Parent should remain nil")
	}
}

func TestSerializeDeserializeRoundTrip(t *testing.T) {
	original := New("+", KindOperator,
		New("x", KindVariable),
		New(int64(1), KindConstant),
	)
	SetParent(original)

	serialized := Serialize(original)
	rebuilt := Deserialize(serialized)

	if rebuilt.Kind != KindOperator || rebuilt.NameString() != "+" {
		t.Fatalf("rebuilt root = %+v, want operator \"+\"", rebuilt)
	}
	if len(rebuilt.Children) != 2 {
		t.Fatalf("rebuilt has %d children, want 2", len(rebuilt.Children))
	}
	if rebuilt.Children[0].NameString() != "x" {
		t.Errorf("rebuilt.Children[0].Name = %v, want \"x\"", rebuilt.Children[0].Name)
	}
	if rebuilt.Children[1].Name != int64(1) {
		t.Errorf("rebuilt.Children[1].Name = %v, want int64(1)", rebuilt.Children[1].Name)
	}
	if rebuilt.Children[1].Parent != rebuilt {
		t.Error("Deserialize should re-derive Parent back-links")
	}
}

func TestDeserializeNormalizesWholeFloats(t *testing.T) {
	s := Serialized{N: float64(3), T: string(KindConstant)}
	n := Deserialize(s)
	if n.Name != int64(3) {
		t.Errorf("Deserialize whole-float name = %#v, want int64(3)", n.Name)
	}

	s2 := Serialized{N: float64(3.5), T: string(KindConstant)}
	n2 := Deserialize(s2)
	if n2.Name != float64(3.5) {
		t.Errorf("Deserialize fractional-float name = %#v, want float64(3.5)", n2.Name)
	}
}
