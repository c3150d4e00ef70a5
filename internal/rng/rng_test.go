package rng

import (
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// sequence replays fixed values, wrapping each into [0, n).
type sequence struct {
	values []int
	pos    int
}

func (s *sequence) IntN(n int) int {
	v := s.values[s.pos%len(s.values)]
	s.pos++
	return v % n
}

func TestNewIsDeterministic(t *testing.T) {
	a, b := New(42), New(42)
	for i := 0; i < 20; i++ {
		if x, y := a.IntN(1000), b.IntN(1000); x != y {
			t.Fatalf("draw %d: %d != %d", i, x, y)
		}
	}
}

func TestFromSeedZeroUsesCrypto(t *testing.T) {
	r, err := FromSeed(0)
	if err != nil {
		t.Fatalf("FromSeed(0): %v", err)
	}
	if v := r.IntN(10); v < 0 || v >= 10 {
		t.Fatalf("IntN out of range: %d", v)
	}
}

func TestPick(t *testing.T) {
	if _, ok := Pick[string](&sequence{values: []int{0}}, nil); ok {
		t.Fatal("Pick on empty slice should report false")
	}
	got, ok := Pick(&sequence{values: []int{2}}, []string{"a", "b", "c"})
	if !ok || got != "c" {
		t.Fatalf("Pick = %q, %v; want c, true", got, ok)
	}
}

func TestDeckDealsEveryItemBeforeRepeating(t *testing.T) {
	items := []string{"one", "two", "three", "four"}
	deck := NewDeck(New(7), items)

	var dealt []string
	for range items {
		item, ok := deck.Next()
		if !ok {
			t.Fatal("deck reported empty")
		}
		dealt = append(dealt, item)
	}
	sort.Strings(dealt)
	want := append([]string(nil), items...)
	sort.Strings(want)
	if diff := cmp.Diff(want, dealt); diff != "" {
		t.Fatalf("first round mismatch (-want +got):\n%s", diff)
	}

	if _, ok := deck.Next(); !ok {
		t.Fatal("deck should reshuffle after a full round")
	}
	if deck.Remaining() != len(items)-1 {
		t.Fatalf("Remaining = %d, want %d", deck.Remaining(), len(items)-1)
	}
}

func TestDeckEmpty(t *testing.T) {
	deck := NewDeck[int](New(1), nil)
	if _, ok := deck.Next(); ok {
		t.Fatal("empty deck should report false")
	}
}
