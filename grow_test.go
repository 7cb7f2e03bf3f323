package grow_test

import (
	"math"
	"testing"

	"github.com/npillmayer/grow"
)

func TestEqInts(t *testing.T) {
	if !grow.Eq(7, 7) {
		t.Error("expected Eq(7, 7) to be true, isn't")
	}
	if grow.Eq(7, 8) {
		t.Error("expected Eq(7, 8) to be false, isn't")
	}
}

func TestEqNaN(t *testing.T) {
	nan := math.NaN()
	if nan == nan {
		t.Fatal("expected NaN != NaN under the language operator")
	}
	if !grow.Eq(nan, nan) {
		t.Error("expected Eq(NaN, NaN) to be true, isn't")
	}
	if !grow.Eq(float32(math.NaN()), float32(math.NaN())) {
		t.Error("expected Eq to treat float32 NaNs as equal, doesn't")
	}
	if grow.Eq(nan, 1.5) {
		t.Error("expected Eq(NaN, 1.5) to be false, isn't")
	}
	if !grow.Eq(1.5, 1.5) {
		t.Error("expected Eq(1.5, 1.5) to be true, isn't")
	}
}

func TestEqMixedDynamic(t *testing.T) {
	var a any = math.NaN()
	var b any = "NaN"
	if grow.Eq(a, b) {
		t.Error("expected a float and a string to be unequal, aren't")
	}
}

func TestEqDeep(t *testing.T) {
	if !grow.Eq([]int{1, 2}, []int{1, 2}) {
		t.Error("expected slices with equal elements to be equal, aren't")
	}
	if grow.Eq([]int{1, 2}, []int{2, 1}) {
		t.Error("expected differently ordered slices to be unequal, aren't")
	}
}
