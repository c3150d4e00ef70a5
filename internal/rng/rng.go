// Package rng provides the injectable random source shared by the exercises.
//
// Every exercise that picks something at random takes a Source instead of
// reaching for a package-level generator, so a fixed seed reproduces a run.
package rng

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand/v2"
)

// Source is the subset of *rand.Rand the exercises rely on.
type Source interface {
	// IntN returns a uniform value in [0, n). It panics if n <= 0.
	IntN(n int) int
}

// NewSeed generates a random seed using crypto/rand.
func NewSeed() (uint64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}
	return binary.LittleEndian.Uint64(b[:]), nil
}

// New returns a deterministic generator for seed.
func New(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// FromSeed returns a generator for seed, or a crypto-seeded one when seed is 0.
func FromSeed(seed uint64) (*rand.Rand, error) {
	if seed != 0 {
		return New(seed), nil
	}
	s, err := NewSeed()
	if err != nil {
		return nil, err
	}
	return New(s), nil
}

// Pick returns a uniformly chosen element of items.
// The bool is false when items is empty.
func Pick[T any](src Source, items []T) (T, bool) {
	var zero T
	if len(items) == 0 {
		return zero, false
	}
	return items[src.IntN(len(items))], true
}

// Deck hands out items in random order without repeating any until every
// item has been dealt, then reshuffles.
type Deck[T any] struct {
	src       Source
	items     []T
	remaining []T
}

// NewDeck returns a deck over a copy of items.
func NewDeck[T any](src Source, items []T) *Deck[T] {
	return &Deck[T]{src: src, items: append([]T(nil), items...)}
}

// Next deals one item. The bool is false when the deck has no items at all.
func (d *Deck[T]) Next() (T, bool) {
	var zero T
	if len(d.items) == 0 {
		return zero, false
	}
	if len(d.remaining) == 0 {
		d.remaining = append(d.remaining[:0], d.items...)
	}
	idx := d.src.IntN(len(d.remaining))
	item := d.remaining[idx]
	d.remaining = append(d.remaining[:idx], d.remaining[idx+1:]...)
	return item, true
}

// Remaining reports how many items are left before the next reshuffle.
func (d *Deck[T]) Remaining() int {
	if len(d.remaining) == 0 {
		return len(d.items)
	}
	return len(d.remaining)
}
