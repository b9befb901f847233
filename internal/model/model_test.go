package model

import "testing"

func TestOperatorMetadataRoundTrip(t *testing.T) {
	m := New()
	m.AddOperator("+", 2, OperatorMetadata{Priority: 50, Category: CategoryArithmetic, Return: "number"})

	meta, err := m.GetOperatorMetadata("+", 2)
	if err != nil {
		t.Fatalf("GetOperatorMetadata(+, 2) returned unexpected error: %v", err)
	}
	if meta.Category != CategoryArithmetic {
		t.Errorf("meta.Category = %v, want arithmetic", meta.Category)
	}

	if _, err := m.GetOperatorMetadata("+", 1); err == nil {
		t.Error("GetOperatorMetadata(+, 1) expected an error for an unregistered arity")
	}
	if _, err := m.GetOperatorMetadata("nope", 2); err == nil {
		t.Error("GetOperatorMetadata(nope, 2) expected an error for an unregistered name")
	}
	if !m.HasOperator("+") {
		t.Error("HasOperator(+) = false, want true")
	}
}

func TestFunctionMetadata(t *testing.T) {
	m := New()
	m.AddFunction("map", FunctionMetadata{IsArrowFunction: true})

	if !m.HasFunction("map") {
		t.Error("HasFunction(map) = false, want true")
	}
	names := m.ArrowFunctionNames()
	if len(names) != 1 || names[0] != "map" {
		t.Errorf("ArrowFunctionNames() = %v, want [map]", names)
	}

	if _, err := m.GetFunctionMetadata("missing"); err == nil {
		t.Error("GetFunctionMetadata(missing) expected an error")
	}
}

func TestEnumLookup(t *testing.T) {
	m := New()
	m.AddEnum("Color", map[string]any{"Red": int64(0), "Green": int64(1)})

	if !m.IsEnum("Color") {
		t.Error("IsEnum(Color) = false, want true")
	}
	if !m.IsEnum("Color.Red") {
		t.Error("IsEnum(Color.Red) = false, want true")
	}
	if m.IsEnum("Color.Purple") {
		t.Error("IsEnum(Color.Purple) = true, want false")
	}
	if m.IsEnum("NotAnEnum") {
		t.Error("IsEnum(NotAnEnum) = true, want false")
	}

	v, err := m.GetEnumValue("Color", "Green")
	if err != nil {
		t.Fatalf("GetEnumValue(Color, Green) returned unexpected error: %v", err)
	}
	if v != int64(1) {
		t.Errorf("GetEnumValue(Color, Green) = %v, want 1", v)
	}

	if _, err := m.GetEnumValue("Color", "Purple"); err == nil {
		t.Error("GetEnumValue(Color, Purple) expected an error")
	}
}

func TestOperatorNamesForLexing(t *testing.T) {
	m := New()
	m.AddOperator("==", 2, OperatorMetadata{})
	m.AddOperator("&&", 2, OperatorMetadata{})

	names := m.OperatorNames()
	if len(names) != 2 {
		t.Fatalf("OperatorNames() returned %d names, want 2", len(names))
	}
}
