package maybe_test

import (
	"testing"

	"github.com/npillmayer/grow/maybe"
)

func TestMaybeValue(t *testing.T) {
	x := maybe.Just(7) // infers type
	y := maybe.Nothing[int]()

	if v, ok := x.Value(); !ok || v != 7 {
		t.Errorf("expected Just(7) to unwrap to 7, is %v (ok=%v)", v, ok)
	}
	if w, ok := y.Value(); ok || w != 0 {
		t.Errorf("expected Nothing to unwrap to (0, false), is %v (ok=%v)", w, ok)
	}
	if x.IsNothing() {
		t.Error("expected Just(7) not to be Nothing, is")
	}
	if !y.IsNothing() {
		t.Error("expected Nothing to be Nothing, isn't")
	}
}

func TestMaybeWithDefault(t *testing.T) {
	if xx := maybe.Just(7).WithDefault(100); xx != 7 {
		t.Logf("x = %d", xx)
		t.Error("expected Just(7) to have value 7, isn't")
	}
	if yy := maybe.Nothing[int]().WithDefault(100); yy != 100 {
		t.Logf("y = %d", yy)
		t.Error("expected Nothing to default to 100, isn't")
	}
}

func TestMaybeMap(t *testing.T) {
	double := func(n int) int { return n * 2 }
	if v, _ := maybe.Just(7).Map(double).Value(); v != 14 {
		t.Logf("x * 2 = %d", v)
		t.Error("expected Just(7).Map(…) to return 14, didn't")
	}
	if !maybe.Nothing[int]().Map(double).IsNothing() {
		t.Error("expected Nothing.Map(…) to stay Nothing, didn't")
	}
}

func TestMaybeAndThen(t *testing.T) {
	gt0 := func(n int) maybe.Maybe[bool] {
		if n > 0 {
			return maybe.Just(true)
		}
		return maybe.Nothing[bool]()
	}
	if gt := maybe.AndThen(gt0, maybe.Just(7)); gt.IsNothing() {
		t.Error("expected Just(7) |> andThen(gt0) to be true, isn't")
	}
	if gt := maybe.AndThen(gt0, maybe.Nothing[int]()); !gt.IsNothing() {
		t.Error("expected Nothing |> andThen(gt0) to stay Nothing, didn't")
	}
}
