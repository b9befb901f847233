package library

import (
	"testing"

	"github.com/cwbudde/go-xpr/internal/model"
	"github.com/cwbudde/go-xpr/internal/operand"
	"github.com/cwbudde/go-xpr/internal/value"
)

func plainAdd(args []value.Value) (value.Value, error) {
	return args[0].(int64) + args[1].(int64), nil
}

func TestAddOperatorInstallsMetadataAndFunc(t *testing.T) {
	lib := New("test")
	lib.AddOperator("+", 2, model.OperatorMetadata{Priority: 50}, plainAdd)

	m := model.New()
	lib.Install(m)

	meta, err := m.GetOperatorMetadata("+", 2)
	if err != nil {
		t.Fatalf("GetOperatorMetadata returned unexpected error: %v", err)
	}
	if meta.Lib != "test" {
		t.Errorf("meta.Lib = %q, want \"test\" (Install should stamp the owning library)", meta.Lib)
	}

	fn, ok := lib.OperatorFunc("+", 2)
	if !ok {
		t.Fatal("OperatorFunc(+, 2) ok=false, want true")
	}
	result, err := fn([]value.Value{int64(1), int64(2)})
	if err != nil || result != int64(3) {
		t.Errorf("fn(1,2) = %v, %v; want 3, nil", result, err)
	}

	if !lib.HasOperator("+", 2) {
		t.Error("HasOperator(+, 2) = false, want true")
	}
	if lib.HasOperator("+", 1) {
		t.Error("HasOperator(+, 1) = true, want false")
	}
}

func TestAddCustomOperatorHasNoPlainFunc(t *testing.T) {
	lib := New("test")
	construct := func(name string, children []operand.Operand) operand.Operand {
		return operand.NewBlock(children)
	}
	lib.AddCustomOperator("=", 2, model.OperatorMetadata{}, construct)

	if _, ok := lib.OperatorFunc("=", 2); ok {
		t.Error("OperatorFunc(=, 2) ok=true, want false for a custom-constructed operator")
	}
	if _, ok := lib.OperatorConstructor("=", 2); !ok {
		t.Error("OperatorConstructor(=, 2) ok=false, want true")
	}
}

func TestAddArrowFunctionMarksMetadata(t *testing.T) {
	lib := New("test")
	lib.AddArrowFunction("map", model.FunctionMetadata{}, func(name string, children []operand.Operand) operand.Operand {
		return operand.NewBlock(children)
	})

	m := model.New()
	lib.Install(m)

	meta, err := m.GetFunctionMetadata("map")
	if err != nil {
		t.Fatalf("GetFunctionMetadata(map) returned unexpected error: %v", err)
	}
	if !meta.IsArrowFunction {
		t.Error("meta.IsArrowFunction = false, want true")
	}
}

func TestAddMethodAndEnum(t *testing.T) {
	lib := New("test")
	lib.AddMethod("length", func(receiver value.Value, args []value.Value) (value.Value, error) {
		return int64(len(receiver.(string))), nil
	})
	lib.AddEnum("Color", map[string]any{"Red": int64(0)})

	fn, ok := lib.Method("length")
	if !ok {
		t.Fatal("Method(length) ok=false, want true")
	}
	result, err := fn("abc", nil)
	if err != nil || result != int64(3) {
		t.Errorf("fn(\"abc\") = %v, %v; want 3, nil", result, err)
	}

	m := model.New()
	lib.Install(m)
	if !m.IsEnum("Color") {
		t.Error("IsEnum(Color) = false after Install, want true")
	}
}
