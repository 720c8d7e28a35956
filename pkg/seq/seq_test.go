package seq

import "testing"

func TestSameSeedSameStream(t *testing.T) {
	a := New(42)
	b := New(42)
	for i := 0; i < 1000; i++ {
		va, vb := a.Float64(), b.Float64()
		if va != vb {
			t.Fatalf("streams diverged at %d: %v != %v", i, va, vb)
		}
	}
}

func TestDifferentSeedsDiverge(t *testing.T) {
	a := New(1)
	b := New(2)
	same := true
	for i := 0; i < 10; i++ {
		if a.Float64() != b.Float64() {
			same = false
		}
	}
	if same {
		t.Error("different seeds produced identical streams")
	}
}

func TestFloat64Bounds(t *testing.T) {
	s := New(7)
	for i := 0; i < 10000; i++ {
		v := s.Float64()
		if v < 0 || v >= 1 {
			t.Fatalf("value out of [0,1): %v", v)
		}
	}
}

func TestRange(t *testing.T) {
	s := New(99)
	for i := 0; i < 1000; i++ {
		v := s.Range(5, 10)
		if v < 5 || v >= 10 {
			t.Fatalf("value out of [5,10): %v", v)
		}
	}
}

func TestIntn(t *testing.T) {
	s := New(3)
	seen := make(map[int]bool)
	for i := 0; i < 1000; i++ {
		v := s.Intn(4)
		if v < 0 || v >= 4 {
			t.Fatalf("value out of [0,4): %d", v)
		}
		seen[v] = true
	}
	if len(seen) != 4 {
		t.Errorf("expected all 4 values, saw %d", len(seen))
	}
	if s.Intn(0) != 0 {
		t.Error("Intn(0) should return 0")
	}
}

func TestPermIsPermutation(t *testing.T) {
	s := New(11)
	p := s.Perm(8)
	if len(p) != 8 {
		t.Fatalf("expected length 8, got %d", len(p))
	}
	seen := make(map[int]bool)
	for _, v := range p {
		if v < 0 || v >= 8 || seen[v] {
			t.Fatalf("not a permutation: %v", p)
		}
		seen[v] = true
	}
}

func TestPermDeterministic(t *testing.T) {
	pa := New(5).Perm(8)
	pb := New(5).Perm(8)
	for i := range pa {
		if pa[i] != pb[i] {
			t.Fatalf("permutations differ at %d: %v vs %v", i, pa, pb)
		}
	}
}
