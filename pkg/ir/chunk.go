package ir

import "slices"

// Chunks partitions text into maximal runs of instructions sharing a pc.
// The chunks are sub-slices of text and must not be modified.
func Chunks(text []Inst) [][]Inst {
	var chunks [][]Inst
	start := 0
	for i := 1; i <= len(text); i++ {
		if i == len(text) || text[i].PC != text[start].PC {
			chunks = append(chunks, text[start:i:i])
			start = i
		}
	}
	return chunks
}

// Reversed returns a reversed copy of s.
func Reversed[S ~[]E, E any](s S) S {
	out := slices.Clone(s)
	slices.Reverse(out)
	return out
}
