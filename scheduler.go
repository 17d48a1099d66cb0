// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/centaurean-go/chameleon

package chameleon

const (
	// preferredEfficiencyCheckSignatures is the signature count, within a
	// block, at which an efficiency-check event fires once.
	preferredEfficiencyCheckSignatures = 128
	// preferredBlockSignatures is the signature count that closes a block.
	preferredBlockSignatures = 256
)

// scheduler tracks the shared block/efficiency-check bookkeeping used by both
// the encoder and the decoder: how many signatures have been seen since the
// last block boundary, whether this block's efficiency check already fired,
// and how many blocks remain before the next periodic dictionary reset.
type scheduler struct {
	signaturesCount   int
	efficiencyChecked bool
	// resetCycleLength is the number of blocks between periodic dictionary
	// resets (2^resetCycleShift), or 0 if periodic resets are disabled
	// (resetCycleShift == 0, per Parameters).
	resetCycleLength uint32
	blocksUntilReset uint32
}

// init resets the scheduler's counters for a fresh stream, per Parameters.
func (s *scheduler) init(p Parameters) {
	s.signaturesCount = 0
	s.efficiencyChecked = false
	s.resetCycleLength = p.resetCycleLength()
	s.blocksUntilReset = s.resetCycleLength
}

// advance is called before each new signature: by the encoder before it
// writes one, by the decoder before it decodes one. The encoder also calls it
// once more when a flushed stream ends exactly on an event boundary, so that
// boundary's event still fires. It reports any INFO_* event that
// fires at this boundary, and resets dict when a block boundary's periodic
// reset cycle elapses. Ready means no event: the caller proceeds with a new
// signature in the same block.
func (s *scheduler) advance(dict *dictionary) Status {
	switch s.signaturesCount {
	case preferredEfficiencyCheckSignatures:
		if !s.efficiencyChecked {
			s.efficiencyChecked = true
			return InfoEfficiencyCheck
		}
	case preferredBlockSignatures:
		s.signaturesCount = 0
		s.efficiencyChecked = false
		if s.resetCycleLength > 0 {
			s.blocksUntilReset--
			if s.blocksUntilReset == 0 {
				dict.reset()
				s.blocksUntilReset = s.resetCycleLength
			}
		}
		return InfoNewBlock
	}
	s.signaturesCount++
	return Ready
}
