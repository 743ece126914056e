package position

import "sort"

// Compare defines the canonical dictionary order over Positions: rhyme
// group first, then initial, rank, medial, and tone, each axis in its
// canonical enumeration order. It returns -1, 0, or +1. Positions with
// identical primary five-tuples compare equal regardless of frozen state.
func Compare(a, b Position) int {
	if c := cmpIndex(rhymeIndex[a.rhyme], rhymeIndex[b.rhyme]); c != 0 {
		return c
	}
	if c := cmpIndex(initialIndex[a.initial], initialIndex[b.initial]); c != 0 {
		return c
	}
	if c := cmpIndex(rankIndex[a.rank], rankIndex[b.rank]); c != 0 {
		return c
	}
	if c := cmpIndex(medialIndex[a.medial], medialIndex[b.medial]); c != 0 {
		return c
	}
	return cmpIndex(toneIndex[a.tone], toneIndex[b.tone])
}

// Less reports whether a sorts before b under Compare.
func Less(a, b Position) bool { return Compare(a, b) < 0 }

// Sort orders the slice in place under Compare.
func Sort(positions []Position) {
	sort.Slice(positions, func(i, j int) bool {
		return Compare(positions[i], positions[j]) < 0
	})
}

// Dedupe sorts the slice and returns it with duplicate five-tuples
// collapsed. Two Positions are duplicates when Equal reports true.
func Dedupe(positions []Position) []Position {
	Sort(positions)
	out := positions[:0]
	for _, p := range positions {
		if len(out) == 0 || !out[len(out)-1].Equal(p) {
			out = append(out, p)
		}
	}
	return out
}

func cmpIndex(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
