// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/centaurean-go/chameleon

package chameleon

// Parameters is the opaque 8-byte control block shared by Encoder and
// Decoder Init. Only as_bytes[0] is currently defined: the dictionary
// reset-cycle shift. A value of 0 disables periodic dictionary resets
// entirely; a value of k>0 resets the dictionary every 2^k blocks.
type Parameters struct {
	asBytes [8]byte
}

// NewParameters builds a Parameters block from a reset-cycle shift byte.
// With resetCycleShift == 0, the dictionary is never reset periodically.
// With resetCycleShift == k > 0, the dictionary is reset every 2^k blocks.
func NewParameters(resetCycleShift byte) Parameters {
	var p Parameters
	p.asBytes[0] = resetCycleShift
	return p
}

// DefaultParameters returns the parameters the reference kernel uses absent
// any caller tuning: periodic dictionary resets disabled.
func DefaultParameters() Parameters {
	return NewParameters(0)
}

// resetCycleShift returns the configured reset-cycle shift byte.
func (p Parameters) resetCycleShift() byte {
	return p.asBytes[0]
}

// resetCycleLength returns the number of blocks between periodic dictionary
// resets (2^shift), or 0 if periodic resets are disabled (shift == 0).
func (p Parameters) resetCycleLength() uint32 {
	if p.asBytes[0] == 0 {
		return 0
	}
	return uint32(1) << p.asBytes[0]
}
