// Package shuffle implements the deterministic, seed-driven permutation used
// to order quiz questions and their choices.
package shuffle

import (
	"errors"
	"fmt"
)

var ErrInvalidMapping = errors.New("invalid mapping")

// Result is a shuffled copy together with its forward mapping:
// Shuffled[i] == original[Mapping[i]].
type Result[T any] struct {
	Shuffled []T
	Mapping  []int
}

// Shuffle returns a permuted copy of items. The same seed always yields the
// same order.
func Shuffle[T any](items []T, seed string) []T {
	return ShuffleWithMapping(items, seed).Shuffled
}

// ShuffleWithMapping is Shuffle that also reports, for every shuffled
// position, the index the element held in items.
func ShuffleWithMapping[T any](items []T, seed string) Result[T] {
	out := make([]T, len(items))
	copy(out, items)
	mapping := make([]int, len(items))
	for i := range mapping {
		mapping[i] = i
	}

	rng := NewRand(seed)
	for i := len(out) - 1; i > 0; i-- {
		var v float64
		v, rng = rng.Next()
		j := int(v * float64(i+1))
		out[i], out[j] = out[j], out[i]
		mapping[i], mapping[j] = mapping[j], mapping[i]
	}
	return Result[T]{Shuffled: out, Mapping: mapping}
}

// ReverseMapping returns the original index of the element at shuffledIndex,
// or -1 when shuffledIndex is outside mapping.
func ReverseMapping(shuffledIndex int, mapping []int) int {
	if shuffledIndex < 0 || shuffledIndex >= len(mapping) {
		return -1
	}
	return mapping[shuffledIndex]
}

// Unshuffle restores the original order of a slice produced by
// ShuffleWithMapping. mapping must be a permutation of [0, len(shuffled)).
func Unshuffle[T any](shuffled []T, mapping []int) ([]T, error) {
	if len(mapping) != len(shuffled) {
		return nil, fmt.Errorf("%w: %d indexes for %d elements", ErrInvalidMapping, len(mapping), len(shuffled))
	}
	out := make([]T, len(shuffled))
	seen := make([]bool, len(shuffled))
	for i, orig := range mapping {
		if orig < 0 || orig >= len(shuffled) {
			return nil, fmt.Errorf("%w: index %d out of range at position %d", ErrInvalidMapping, orig, i)
		}
		if seen[orig] {
			return nil, fmt.Errorf("%w: index %d repeated at position %d", ErrInvalidMapping, orig, i)
		}
		seen[orig] = true
		out[orig] = shuffled[i]
	}
	return out, nil
}

// SubSeed derives the seed for an entity-scoped shuffle, e.g. the choices of
// one question.
func SubSeed(seed, id string) string {
	return seed + "-" + id
}
