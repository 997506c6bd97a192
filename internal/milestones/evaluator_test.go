package milestones

import (
	"reflect"
	"testing"
)

func TestCrossedBeforeFirstThreshold(t *testing.T) {
	if got := Crossed(ShortTable, 0, 59); got != nil {
		t.Errorf("Crossed(0, 59) = %v, want none", got)
	}
}

func TestCrossedSingleThreshold(t *testing.T) {
	got := Crossed(ShortTable, 0, 61)
	want := []int64{60}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Crossed(0, 61) = %v, want %v", got, want)
	}
}

func TestCrossedCatchUpReturnsAllInAscendingOrder(t *testing.T) {
	// Evaluation was delayed past several milestones at once.
	got := Crossed(ShortTable, 0, 400)
	want := []int64{60, 300}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Crossed(0, 400) = %v, want %v", got, want)
	}
}

func TestCrossedRespectsHighWaterMark(t *testing.T) {
	got := Crossed(ShortTable, 60, 400)
	want := []int64{300}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Crossed(60, 400) = %v, want %v", got, want)
	}

	// Exactly at the mark: a threshold equal to last is not re-reported.
	if got := Crossed(ShortTable, 300, 300); got != nil {
		t.Errorf("Crossed(300, 300) = %v, want none", got)
	}
}

func TestCrossedThresholdBoundaryInclusive(t *testing.T) {
	// t <= current is a crossing, t > current is not.
	if got := Crossed(ShortTable, 0, 60); !reflect.DeepEqual(got, []int64{60}) {
		t.Errorf("Crossed(0, 60) = %v, want [60]", got)
	}
}

func TestCrossedIsDeterministic(t *testing.T) {
	a := Crossed(LongTable, 0, 100*86400)
	b := Crossed(LongTable, 0, 100*86400)
	if !reflect.DeepEqual(a, b) {
		t.Errorf("Crossed not deterministic: %v vs %v", a, b)
	}
	want := []int64{86400, 3 * 86400, 7 * 86400, 14 * 86400, 30 * 86400, 90 * 86400}
	if !reflect.DeepEqual(a, want) {
		t.Errorf("Crossed(long, 0, 100d) = %v, want %v", a, want)
	}
}
