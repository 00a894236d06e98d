package munkres

import (
	"math/rand"
	"testing"
)

// checkAny verifies that Any agrees with the reference membership slice:
// it must return a present member, and report empty exactly when the
// reference holds no members.
func checkAny(t *testing.T, s *ZeroSet, ref []bool) {
	t.Helper()
	idx, ok := s.Any()
	want := false
	for _, b := range ref {
		if b {
			want = true
			break
		}
	}
	if ok != want {
		t.Fatalf("Any() ok = %v, want %v", ok, want)
	}
	if ok && !ref[idx] {
		t.Fatalf("Any() = %d, which is not a member", idx)
	}
}

func TestZeroSetReplay(t *testing.T) {
	const capacity = 1000
	rng := rand.New(rand.NewSource(42))

	s := NewZeroSet(capacity)
	ref := make([]bool, capacity)

	for op := 0; op < 20000; op++ {
		i := rng.Intn(capacity)
		if rng.Intn(2) == 0 {
			s.Add(i)
			ref[i] = true
		} else {
			s.Remove(i)
			ref[i] = false
		}
		checkAny(t, s, ref)
	}

	// Drain and confirm the empty transition is reported.
	for i, b := range ref {
		if b {
			s.Remove(i)
			ref[i] = false
		}
	}
	if _, ok := s.Any(); ok {
		t.Fatal("Any() reported a member after draining the set")
	}
}

func TestZeroSetWordBoundaries(t *testing.T) {
	// Indices straddling 64-bit word edges exercise the linked-list splice
	// on every empty/non-empty transition.
	for _, idx := range []int{0, 1, 63, 64, 65, 127, 128, 191} {
		s := NewZeroSet(192)
		s.Add(idx)
		got, ok := s.Any()
		if !ok || got != idx {
			t.Errorf("Add(%d): Any() = %d, %v; want %d, true", idx, got, ok, idx)
		}
		s.Remove(idx)
		if _, ok := s.Any(); ok {
			t.Errorf("Remove(%d): set should be empty", idx)
		}
	}
}

func TestZeroSetMultipleWords(t *testing.T) {
	s := NewZeroSet(256)
	members := []int{3, 70, 140, 200}
	for _, i := range members {
		s.Add(i)
	}

	// Removing whole words must keep Any valid for the survivors.
	seen := map[int]bool{}
	for range members {
		idx, ok := s.Any()
		if !ok {
			t.Fatal("Any() empty while members remain")
		}
		if seen[idx] {
			t.Fatalf("Any() returned %d after it was removed", idx)
		}
		seen[idx] = true
		s.Remove(idx)
	}
	if _, ok := s.Any(); ok {
		t.Fatal("set should be empty after removing all members")
	}
	for _, i := range members {
		if !seen[i] {
			t.Errorf("member %d was never returned", i)
		}
	}
}

func TestZeroSetIdempotentOps(t *testing.T) {
	s := NewZeroSet(128)

	s.Add(5)
	s.Add(5) // double add must not corrupt the word links
	s.Add(70)
	s.Remove(5)
	s.Remove(5) // double remove of an absent member is a no-op

	idx, ok := s.Any()
	if !ok || idx != 70 {
		t.Fatalf("Any() = %d, %v; want 70, true", idx, ok)
	}
	s.Remove(70)
	if _, ok := s.Any(); ok {
		t.Fatal("set should be empty")
	}
}

func TestFloorLog2(t *testing.T) {
	for bit := 0; bit < 64; bit++ {
		if got := floorLog2(1 << uint(bit)); got != bit {
			t.Errorf("floorLog2(1<<%d) = %d, want %d", bit, got, bit)
		}
	}
}
