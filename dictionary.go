// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/centaurean-go/chameleon

package chameleon

// dictionarySize is the number of entries in the hash dictionary: 2^16.
const dictionarySize = 1 << 16

// hashMultiplier is the multiplicative hash constant from the reference
// kernel. It has no particular structure beyond spreading 32-bit words
// across the 16-bit dictionary index well in practice.
const hashMultiplier = 0x9D6EB

// dictionary is a flat, direct-mapped cache of the most recently seen 4-byte
// words, indexed by hash(word). It never chains on collision: a new word
// simply evicts whatever was at its slot. Lossy by design — correctness of
// decoding never depends on the dictionary being "right", only on encoder and
// decoder computing identical hash(word) and performing identical updates.
type dictionary struct {
	entries [dictionarySize]uint32
}

// hash maps a 32-bit word to a dictionary index.
func hash(word uint32) uint32 {
	return (word * hashMultiplier) >> 16 & (dictionarySize - 1)
}

// reset clears every entry, used at Init and on each periodic dictionary
// reset at a block boundary.
func (d *dictionary) reset() {
	for i := range d.entries {
		d.entries[i] = 0
	}
}
