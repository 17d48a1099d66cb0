// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/centaurean-go/chameleon

package chameleon

// Status is returned by every call to Process and describes why control
// returned to the caller.
type Status int

const (
	// Ready is never returned by Process; it is the kernel's internal
	// "keep going" signal between sub-states of a single Process call, and
	// the value Finish returns.
	Ready Status = iota
	// StallOnInput means the input cursor was exhausted before a full unit
	// could be consumed. Supply more input (or flush) and call Process again.
	StallOnInput
	// StallOnOutput means the output cursor did not have enough room for the
	// next packet or signature. Supply more output space and call Process again.
	StallOnOutput
	// InfoEfficiencyCheck is returned once per block, 128 signatures in, so a
	// framing layer can evaluate whether this block compressed well.
	InfoEfficiencyCheck
	// InfoNewBlock is returned once per block boundary (every 256 signatures),
	// so a framing layer can emit a block marker.
	InfoNewBlock
	// Finished means flush was requested and all buffered data has been
	// emitted; the state may still be reused for a new stream after Init.
	Finished
	// Error means the state machine reached an invariant violation; the
	// state must not be reused.
	Error
)

func (s Status) String() string {
	switch s {
	case Ready:
		return "ready"
	case StallOnInput:
		return "stall_on_input"
	case StallOnOutput:
		return "stall_on_output"
	case InfoEfficiencyCheck:
		return "info_efficiency_check"
	case InfoNewBlock:
		return "info_new_block"
	case Finished:
		return "finished"
	case Error:
		return "error"
	default:
		return "unknown"
	}
}
