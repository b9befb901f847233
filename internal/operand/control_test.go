package operand

import (
	"testing"

	"github.com/cwbudde/go-xpr/internal/context"
	"github.com/cwbudde/go-xpr/internal/value"
)

func wired(t *testing.T, op Operand, vars map[string]value.Value) (*context.Context, Operand) {
	t.Helper()
	ctx := context.New(vars)
	AttachChildren(op)
	Wire(op, ctx)
	return ctx, op
}

func TestBlockStopsAtFirstSignal(t *testing.T) {
	block := NewBlock([]Operand{
		NewConstant(int64(1)),
		NewBreak(),
		NewConstant(int64(99)),
	})
	_, op := wired(t, block, nil)
	v, sig, err := op.Eval()
	if err != nil {
		t.Fatalf("Eval returned unexpected error: %v", err)
	}
	if sig != SigBreak {
		t.Fatalf("signal = %v, want SigBreak", sig)
	}
	if v != nil {
		t.Errorf("value = %v, want nil (break carries no value)", v)
	}
}

func TestIfTakesElifWhenConditionFalse(t *testing.T) {
	ifOp := NewIf(
		NewConstant(false),
		NewConstant(int64(1)),
		[]*Elif{{Condition: NewConstant(true), Body: NewConstant(int64(2))}},
		NewConstant(int64(3)),
	)
	_, op := wired(t, ifOp, nil)
	v, sig, err := op.Eval()
	if err != nil || sig != SigNone {
		t.Fatalf("Eval() = %v, %v, %v", v, sig, err)
	}
	if v != int64(2) {
		t.Errorf("result = %v, want 2 (elif branch)", v)
	}
}

func TestIfFallsThroughToElse(t *testing.T) {
	ifOp := NewIf(NewConstant(false), NewConstant(int64(1)), nil, NewConstant(int64(3)))
	_, op := wired(t, ifOp, nil)
	v, _, err := op.Eval()
	if err != nil {
		t.Fatalf("Eval returned unexpected error: %v", err)
	}
	if v != int64(3) {
		t.Errorf("result = %v, want 3 (else branch)", v)
	}
}

func TestWhileBreakStopsLoop(t *testing.T) {
	// while(true) { break; }
	w := NewWhile(NewConstant(true), NewBlock([]Operand{NewBreak()}))
	_, op := wired(t, w, nil)
	v, sig, err := op.Eval()
	if err != nil {
		t.Fatalf("Eval returned unexpected error: %v", err)
	}
	if sig != SigNone {
		t.Errorf("signal = %v, want SigNone (break is absorbed by the loop)", sig)
	}
	if v != nil {
		t.Errorf("result = %v, want nil", v)
	}
}

func TestWhileReturnPropagatesOut(t *testing.T) {
	w := NewWhile(NewConstant(true), NewBlock([]Operand{NewReturn(NewConstant(int64(42)))}))
	_, op := wired(t, w, nil)
	v, sig, err := op.Eval()
	if err != nil {
		t.Fatalf("Eval returned unexpected error: %v", err)
	}
	if sig != SigReturn {
		t.Fatalf("signal = %v, want SigReturn to propagate past the loop", sig)
	}
	if v != int64(42) {
		t.Errorf("result = %v, want 42", v)
	}
}

func TestForStepsUntilConditionFalse(t *testing.T) {
	// for(i = 0; i < 3; i = i + 1) { }  -- increment done by direct context mutation
	incr := &fakeIncrement{varName: "i"}
	cond := &fakeLessThan{varName: "i", limit: int64(3)}
	f := NewFor(NewConstant(nil), cond, incr, NewBlock(nil))
	ctx := context.New(map[string]value.Value{"i": int64(0)})
	AttachChildren(f)
	Wire(f, ctx)
	if _, _, err := f.Eval(); err != nil {
		t.Fatalf("Eval returned unexpected error: %v", err)
	}
	got, _ := ctx.Get("i")
	if got != int64(3) {
		t.Errorf("i = %v, want 3", got)
	}
}

func TestForInBreakStopsEarly(t *testing.T) {
	loopVar := NewVariable("item")
	body := NewIf(
		&equalsConstant{base: base{children: []Operand{loopVar}}, target: loopVar, want: int64(2)},
		NewBreak(),
		nil,
		NewConstant(nil),
	)
	iterable := NewConstant([]value.Value{int64(1), int64(2), int64(3)})
	forIn := NewForIn(loopVar, iterable, body)
	_, op := wired(t, forIn, nil)
	if _, sig, err := op.Eval(); err != nil || sig != SigNone {
		t.Fatalf("Eval() signal=%v err=%v, want SigNone, nil", sig, err)
	}
}

func TestSwitchMatchesFirstEqualCase(t *testing.T) {
	sw := NewSwitch(
		NewConstant(int64(2)),
		[]*Case{
			{Literal: int64(1), Body: NewConstant("one")},
			{Literal: int64(2), Body: NewConstant("two")},
		},
		NewConstant("default"),
	)
	_, op := wired(t, sw, nil)
	v, _, err := op.Eval()
	if err != nil {
		t.Fatalf("Eval returned unexpected error: %v", err)
	}
	if v != "two" {
		t.Errorf("result = %q, want \"two\"", v)
	}
}

func TestSwitchFallsBackToDefault(t *testing.T) {
	sw := NewSwitch(
		NewConstant(int64(9)),
		[]*Case{{Literal: int64(1), Body: NewConstant("one")}},
		NewConstant("default"),
	)
	_, op := wired(t, sw, nil)
	v, _, err := op.Eval()
	if err != nil {
		t.Fatalf("Eval returned unexpected error: %v", err)
	}
	if v != "default" {
		t.Errorf("result = %q, want \"default\"", v)
	}
}

func TestReturnBareCarriesNilValue(t *testing.T) {
	r := NewReturn(nil)
	_, op := wired(t, r, nil)
	v, sig, err := op.Eval()
	if err != nil {
		t.Fatalf("Eval returned unexpected error: %v", err)
	}
	if sig != SigReturn || v != nil {
		t.Errorf("Eval() = %v, %v, want nil, SigReturn", v, sig)
	}
}

// fakeIncrement and fakeLessThan are minimal hand-rolled Operands used to
// drive a For loop's init/condition/step slots without depending on the
// compiler or corelib operators.
type fakeIncrement struct {
	base
	varName string
}

func (f *fakeIncrement) Eval() (value.Value, Signal, error) {
	cur, _ := f.Context().Get(f.varName)
	f.Context().Set(f.varName, cur.(int64)+1)
	return nil, SigNone, nil
}

type fakeLessThan struct {
	base
	varName string
	limit   value.Value
}

func (f *fakeLessThan) Eval() (value.Value, Signal, error) {
	cur, _ := f.Context().Get(f.varName)
	return cur.(int64) < f.limit.(int64), SigNone, nil
}

type equalsConstant struct {
	base
	target Operand
	want   value.Value
}

func (e *equalsConstant) Eval() (value.Value, Signal, error) {
	v, sig, err := e.target.Eval()
	if err != nil || sig != SigNone {
		return nil, sig, err
	}
	return value.Equal(v, e.want), SigNone, nil
}
