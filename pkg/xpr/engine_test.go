package xpr

import (
	"testing"

	"github.com/cwbudde/go-xpr/internal/value"
	"github.com/gkampitakis/go-snaps/snaps"
)

func TestEval_Arithmetic(t *testing.T) {
	e := New()

	result, err := e.Eval("1 + 2 * 3", nil)
	if err != nil {
		t.Fatalf("Eval() returned unexpected error: %v", err)
	}
	if result != int64(7) {
		t.Errorf("Eval() = %v, want 7", result)
	}
}

func TestEval_VariablesFromContext(t *testing.T) {
	e := New()
	vars := map[string]value.Value{"x": int64(10), "y": int64(5)}

	result, err := e.Eval("x - y", vars)
	if err != nil {
		t.Fatalf("Eval() returned unexpected error: %v", err)
	}
	if result != int64(5) {
		t.Errorf("Eval() = %v, want 5", result)
	}
}

func TestEval_While(t *testing.T) {
	e := New()
	vars := map[string]value.Value{"n": int64(0)}

	result, err := e.Eval("while(n < 5){n = n + 1;}; n", vars)
	if err != nil {
		t.Fatalf("Eval() returned unexpected error: %v", err)
	}
	if result != int64(5) {
		t.Errorf("Eval() = %v, want 5", result)
	}
}

func TestEval_StepLimitExceeded(t *testing.T) {
	e := New(WithStepLimit(3))
	vars := map[string]value.Value{"n": int64(0)}

	_, err := e.Eval("while(true){n = n + 1;}; n", vars)
	if err == nil {
		t.Fatal("Eval() expected a step-limit error, got nil")
	}
}

func TestCompileRunRoundTrip(t *testing.T) {
	e := New()

	op, err := e.Compile("a + b")
	if err != nil {
		t.Fatalf("Compile() returned unexpected error: %v", err)
	}

	result, err := e.Run(op, map[string]value.Value{"a": int64(2), "b": int64(3)})
	if err != nil {
		t.Fatalf("Run() returned unexpected error: %v", err)
	}
	if result != int64(5) {
		t.Errorf("Run() = %v, want 5", result)
	}
}

func TestSerializeDeserializeOperand(t *testing.T) {
	e := New()

	op, err := e.Compile("x + 1")
	if err != nil {
		t.Fatalf("Compile() returned unexpected error: %v", err)
	}

	serialized := Serialize(op)
	rebuilt, err := e.DeserializeOperand(serialized)
	if err != nil {
		t.Fatalf("DeserializeOperand() returned unexpected error: %v", err)
	}

	result, err := e.Run(rebuilt, map[string]value.Value{"x": int64(4)})
	if err != nil {
		t.Fatalf("Run() on rebuilt operand returned unexpected error: %v", err)
	}
	if result != int64(5) {
		t.Errorf("Run() on rebuilt operand = %v, want 5", result)
	}
}

func TestVarsIntrospection(t *testing.T) {
	e := New()

	op, err := e.Compile("x + y")
	if err != nil {
		t.Fatalf("Compile() returned unexpected error: %v", err)
	}

	vars := e.Vars(op)
	if len(vars) != 2 {
		t.Errorf("Vars() returned %d entries, want 2", len(vars))
	}
	if _, ok := vars["x"]; !ok {
		t.Error("Vars() missing \"x\"")
	}
	if _, ok := vars["y"]; !ok {
		t.Error("Vars() missing \"y\"")
	}
}

func TestExportImportJSONRoundTrip(t *testing.T) {
	e := New()

	op, err := e.Compile("x + 1")
	if err != nil {
		t.Fatalf("Compile() returned unexpected error: %v", err)
	}

	jsonText, err := ExportJSON(Serialize(op), false)
	if err != nil {
		t.Fatalf("ExportJSON() returned unexpected error: %v", err)
	}

	roundTripped, err := ImportJSON(jsonText)
	if err != nil {
		t.Fatalf("ImportJSON() returned unexpected error: %v", err)
	}

	rebuilt, err := e.DeserializeOperand(roundTripped)
	if err != nil {
		t.Fatalf("DeserializeOperand() returned unexpected error: %v", err)
	}

	result, err := e.Run(rebuilt, map[string]value.Value{"x": int64(9)})
	if err != nil {
		t.Fatalf("Run() on JSON round-tripped operand returned unexpected error: %v", err)
	}
	if result != int64(10) {
		t.Errorf("Run() on JSON round-tripped operand = %v, want 10", result)
	}
}

// TestExportJSON_Snapshot pins the pretty-printed {n,t,c} wire format
// against a stored snapshot so a change to the field order, nesting, or
// indentation sjson/tidwall-pretty produce is caught explicitly rather
// than only failing downstream consumers of the .xprc format.
func TestExportJSON_Snapshot(t *testing.T) {
	e := New()

	op, err := e.Compile("if(x > 0){ list.map(y => y * 2).sum(); } else { 0; }")
	if err != nil {
		t.Fatalf("Compile() returned unexpected error: %v", err)
	}

	jsonText, err := ExportJSON(Serialize(op), true)
	if err != nil {
		t.Fatalf("ExportJSON() returned unexpected error: %v", err)
	}

	snaps.MatchSnapshot(t, jsonText)
}
