package corelib

import (
	"testing"

	"github.com/cwbudde/go-xpr/internal/model"
	"github.com/cwbudde/go-xpr/internal/value"
)

func TestFnUpperLowerUseGolangXText(t *testing.T) {
	v, err := fnUpper([]value.Value{"Hello"})
	if err != nil || v != "HELLO" {
		t.Errorf("fnUpper(Hello) = %v, %v; want HELLO, nil", v, err)
	}
	v, err = fnLower([]value.Value{"Hello"})
	if err != nil || v != "hello" {
		t.Errorf("fnLower(Hello) = %v, %v; want hello, nil", v, err)
	}
}

func TestFnLikeUsesTidwallMatch(t *testing.T) {
	v, err := fnLike([]value.Value{"report.csv", "*.csv"})
	if err != nil || v != true {
		t.Errorf("fnLike(report.csv, *.csv) = %v, %v; want true, nil", v, err)
	}
	v, err = fnLike([]value.Value{"report.txt", "*.csv"})
	if err != nil || v != false {
		t.Errorf("fnLike(report.txt, *.csv) = %v, %v; want false, nil", v, err)
	}
}

func TestFnSortUsesNaturalOrderingForStrings(t *testing.T) {
	v, err := fnSort([]value.Value{[]value.Value{"item10", "item2", "item1"}})
	if err != nil {
		t.Fatalf("fnSort returned unexpected error: %v", err)
	}
	got := v.([]value.Value)
	want := []value.Value{"item1", "item2", "item10"}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("fnSort result[%d] = %v, want %v (natural ordering)", i, got[i], want[i])
		}
	}
}

func TestFnSumAndJoin(t *testing.T) {
	sum, err := fnSum([]value.Value{[]value.Value{int64(1), int64(2), int64(3)}})
	if err != nil || sum != int64(6) {
		t.Errorf("fnSum = %v, %v; want 6, nil", sum, err)
	}

	joined, err := fnJoin([]value.Value{[]value.Value{"a", "b", "c"}, "-"})
	if err != nil || joined != "a-b-c" {
		t.Errorf("fnJoin = %v, %v; want \"a-b-c\", nil", joined, err)
	}
}

func TestLoadEnumsFromYAML(t *testing.T) {
	lib := New()
	yamlDoc := []byte(`
Color:
  Red: 0
  Green: 1
  Blue: 2
`)
	if err := LoadEnumsFromYAML(lib, yamlDoc); err != nil {
		t.Fatalf("LoadEnumsFromYAML returned unexpected error: %v", err)
	}

	m := model.New()
	lib.Install(m)
	if !m.IsEnum("Color.Green") {
		t.Error("IsEnum(Color.Green) = false, want true after loading YAML enums")
	}
	v, err := m.GetEnumValue("Color", "Green")
	if err != nil || v != int64(1) {
		t.Errorf("GetEnumValue(Color, Green) = %v, %v; want 1, nil", v, err)
	}
}
