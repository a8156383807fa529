package stackvec

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestDrainScenario(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	v := Of(1, 2, 3)
	d, err := v.Drain(1, 3)
	if err != nil {
		t.Fatal(err.Error())
	}
	if item, ok := d.Next(); !ok || item != 2 {
		t.Errorf("expected first drained element 2, got %v/%v", item, ok)
	}
	if item, ok := d.Next(); !ok || item != 3 {
		t.Errorf("expected second drained element 3, got %v/%v", item, ok)
	}
	if _, ok := d.Next(); ok {
		t.Errorf("drain should be fused after exhaustion")
	}
	d.Close()
	if !Equal(v, Of(1)) {
		t.Errorf("expected [1] after drain, got %s", v)
	}
	//
	d, err = v.Drain(0, v.Len())
	if err != nil {
		t.Fatal(err.Error())
	}
	if item, ok := d.Next(); !ok || item != 1 {
		t.Errorf("expected drained element 1, got %v/%v", item, ok)
	}
	d.Close()
	if !v.IsEmpty() {
		t.Errorf("expected empty vector, got %s", v)
	}
}

func TestDrainOutOfRangeLeavesVecUntouched(t *testing.T) {
	v := Of(1, 2, 3)
	for _, r := range [][2]int{{-1, 2}, {2, 1}, {0, 4}} {
		if _, err := v.Drain(r[0], r[1]); !errors.Is(err, ErrIndexOutOfBounds) {
			t.Fatalf("expected ErrIndexOutOfBounds for [%d,%d), got %v", r[0], r[1], err)
		}
	}
	if !Equal(v, Of(1, 2, 3)) {
		t.Fatalf("failed drain requests must not modify the vector: %s", v)
	}
}

func TestDrainHidesTailWhileActive(t *testing.T) {
	v := Of(1, 2, 3, 4, 5)
	d, err := v.Drain(1, 3)
	if err != nil {
		t.Fatalf("unexpected drain error: %v", err)
	}
	// While the guard is alive, only the untouched prefix is visible.
	if v.Len() != 1 {
		t.Fatalf("expected visible length 1 while draining, got %d", v.Len())
	}
	d.Close()
	if !Equal(v, Of(1, 4, 5)) {
		t.Fatalf("expected [1 4 5], got %s", v)
	}
}

func TestDrainAbandonedWithoutIteration(t *testing.T) {
	v := Of(1, 2, 3, 4, 5)
	d, err := v.Drain(1, 4)
	if err != nil {
		t.Fatalf("unexpected drain error: %v", err)
	}
	d.Close() // zero iteration: finalization alone removes the range
	if !Equal(v, Of(1, 5)) {
		t.Fatalf("expected [1 5] after abandoned drain, got %s", v)
	}
}

func TestDrainCloseIsIdempotent(t *testing.T) {
	v := Of(1, 2, 3, 4)
	d, err := v.Drain(1, 3)
	if err != nil {
		t.Fatalf("unexpected drain error: %v", err)
	}
	d.Next()
	d.Close()
	d.Close()
	d.Close()
	if !Equal(v, Of(1, 4)) {
		t.Fatalf("repeated close must not restore twice: %s", v)
	}
	if _, ok := d.Next(); ok {
		t.Fatalf("closed drain must not yield")
	}
	if d.AsSlice() != nil || d.Len() != 0 {
		t.Fatalf("closed drain should expose nothing")
	}
}

func TestDrainBackward(t *testing.T) {
	v := Of(1, 2, 3, 4, 5)
	d, err := v.Drain(1, 4)
	if err != nil {
		t.Fatalf("unexpected drain error: %v", err)
	}
	defer d.Close()
	if item, ok := d.NextBack(); !ok || item != 4 {
		t.Fatalf("expected back element 4, got %v/%v", item, ok)
	}
	if item, ok := d.Next(); !ok || item != 2 {
		t.Fatalf("expected front element 2, got %v/%v", item, ok)
	}
	if d.Len() != 1 {
		t.Fatalf("expected one remaining element, got %d", d.Len())
	}
	if item, ok := d.NextBack(); !ok || item != 3 {
		t.Fatalf("expected final element 3, got %v/%v", item, ok)
	}
	if _, ok := d.NextBack(); ok {
		t.Fatalf("drain should be fused backwards too")
	}
}

func TestDrainAsSliceTracksRemainder(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	v := Of("a", "b", "c")
	d, err := v.Drain(0, 3)
	if err != nil {
		t.Fatal(err.Error())
	}
	defer d.Close()
	s := d.AsSlice()
	if len(s) != 3 || s[0] != "a" || s[2] != "c" {
		t.Errorf("unexpected remainder view: %v", s)
	}
	d.Next()
	s = d.AsSlice()
	if len(s) != 2 || s[0] != "b" {
		t.Errorf("unexpected remainder after one step: %v", s)
	}
}

func TestDrainValuesSequence(t *testing.T) {
	v := Of(1, 2, 3, 4)
	d, err := v.Drain(1, 4)
	if err != nil {
		t.Fatalf("unexpected drain error: %v", err)
	}
	var got []int
	for item := range d.Values() {
		got = append(got, item)
		if len(got) == 2 {
			break // abandon mid-sequence
		}
	}
	d.Close()
	if len(got) != 2 || got[0] != 2 || got[1] != 3 {
		t.Fatalf("unexpected yielded elements: %v", got)
	}
	if !Equal(v, Of(1)) {
		t.Fatalf("partial consumption must still remove the range: %s", v)
	}
}

func TestDrainPartialThenCloseClearsSlots(t *testing.T) {
	a, b, c := 1, 2, 3
	v := Of(&a, &b, &c)
	d, err := v.Drain(0, 3)
	if err != nil {
		t.Fatalf("unexpected drain error: %v", err)
	}
	d.Next() // yield &a, slot cleared on the spot
	d.Close()
	for i, slot := range v.Backing() {
		if slot != nil {
			t.Fatalf("slot %d should be cleared after close", i)
		}
	}
}

func TestDrainEmptyRange(t *testing.T) {
	v := Of(1, 2, 3)
	d, err := v.Drain(1, 1)
	if err != nil {
		t.Fatalf("unexpected drain error: %v", err)
	}
	if _, ok := d.Next(); ok {
		t.Fatalf("empty range should yield nothing")
	}
	d.Close()
	if !Equal(v, Of(1, 2, 3)) {
		t.Fatalf("empty-range drain must restore the vector: %s", v)
	}
}
