package automaton

import (
	"encoding/binary"

	"github.com/bits-and-blooms/bitset"
)

// setKey encodes the members of a state set so that equal sets produce
// equal keys regardless of the bitset's capacity.
func setKey(s *bitset.BitSet) string {
	buf := make([]byte, 0, 2*s.Count())
	for i, ok := s.NextSet(0); ok; i, ok = s.NextSet(i + 1) {
		buf = binary.AppendUvarint(buf, uint64(i))
	}
	return string(buf)
}

// pairKey identifies a product state by its two component states.
type pairKey struct {
	a, b StateID
}

// members lists the state ids of s in increasing order.
func members(s *bitset.BitSet) []StateID {
	out := make([]StateID, 0, s.Count())
	for i, ok := s.NextSet(0); ok; i, ok = s.NextSet(i + 1) {
		out = append(out, StateID(i))
	}
	return out
}
