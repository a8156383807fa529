package stackvec

import "testing"

func TestDedupCollapsesRuns(t *testing.T) {
	v := Of(1, 2, 2, 3, 2)
	Dedup(&v)
	if !Equal(v, Of(1, 2, 3, 2)) {
		t.Fatalf("expected [1 2 3 2], got %s", v)
	}
}

func TestDedupKey(t *testing.T) {
	v := Of(10, 20, 21, 30, 20)
	DedupKey(&v, func(p *int) int { return *p / 10 })
	if !Equal(v, Of(10, 20, 30, 20)) {
		t.Fatalf("expected [10 20 30 20], got %s", v)
	}
}

func TestDedupFuncKeepsFirstOfRun(t *testing.T) {
	v := Of("a", "A", "b", "B", "b")
	v.DedupFunc(func(a, b *string) bool {
		return len(*a) == len(*b) && (*a == *b || differOnlyInCase(*a, *b))
	})
	if !Equal(v, Of("a", "b")) {
		t.Fatalf("expected [a b], got %s", v)
	}
}

func TestDedupEdgeCases(t *testing.T) {
	var empty Vec[int]
	Dedup(&empty)
	if !empty.IsEmpty() {
		t.Fatalf("dedup of empty vector should stay empty")
	}
	single := Of(7)
	Dedup(&single)
	if !Equal(single, Of(7)) {
		t.Fatalf("dedup of single element should be a no-op")
	}
}

func differOnlyInCase(a, b string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := 0; i < len(a); i++ {
		ca, cb := a[i], b[i]
		if ca != cb && ca|0x20 != cb|0x20 {
			return false
		}
	}
	return true
}
