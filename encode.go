// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/centaurean-go/chameleon

package chameleon

// encodeState names the encoder's internal sub-state between Process calls.
type encodeState int

const (
	encodeCompress encodeState = iota
	encodeAccumulate
	encodeCompressAccumulated
	encodeFlush
)

// Encoder is the Chameleon encoder state machine. The zero value is not
// ready to use; call Init before the first Process.
type Encoder struct {
	dict    dictionary
	sched   scheduler
	partial [processUnitSize]byte
	partLen int
	state   encodeState
}

// Init (re)initializes e for a new stream under the given Parameters.
func (e *Encoder) Init(p Parameters) {
	e.dict.reset()
	e.sched.init(p)
	e.partLen = 0
	e.state = encodeCompress
}

// Finish is a no-op reserved for symmetry with the control surface; the
// encoder has no resources to release. See stream.go's Close for how a
// framing layer is expected to use it.
func (e *Encoder) Finish() Status {
	return Ready
}

// prepareNewBlock ensures a fresh signature is reserved in out for the next
// packet: it checks for minimumEncodeOutputLookahead free bytes, advances the
// block/efficiency-check scheduler, and — if that doesn't produce an INFO_*
// event — writes a zeroed signature placeholder and returns Ready. It is
// safe to call again after a non-Ready result: the scheduler's own state
// (efficiencyChecked, signaturesCount) ensures the retry falls through to
// the reservation step instead of re-firing the same event.
func (e *Encoder) prepareNewBlock(out *Cursor) Status {
	if out.Available() < minimumEncodeOutputLookahead {
		return StallOnOutput
	}
	if st := e.sched.advance(&e.dict); st != Ready {
		return st
	}
	putSignature(out.Remaining(), 0)
	out.Advance(signatureSize)
	return Ready
}

// encodeUnit reads exactly signatureSlots words from in and writes one full
// packet (the signature already reserved at out.Pos-signatureSize) to out.
func (e *Encoder) encodeUnit(in, out *Cursor) {
	sigPos := out.Pos - signatureSize
	var sig uint64
	for i := uint(0); i < signatureSlots; i++ {
		w := readWord(in.Remaining())
		in.Advance(wordSize)
		h := hash(w)
		if e.dict.entries[h] == w {
			setSignatureBit(&sig, i)
			putHashRef(out.Remaining(), h)
			out.Advance(hashRefSize)
		} else {
			e.dict.entries[h] = w
			putWord(out.Remaining(), w)
			out.Advance(wordSize)
		}
	}
	putSignature(out.Data[sigPos:], sig)
}

// Process consumes as much of in as possible, writing compressed packets to
// out, until one of: input is exhausted (StallOnInput), output lacks room
// for the next packet (StallOnOutput), a block boundary fires
// (InfoEfficiencyCheck/InfoNewBlock), or, with flush set and all input
// consumed, the stream is terminated (Finished).
func (e *Encoder) Process(in, out *Cursor, flush bool) Status {
	for {
		switch e.state {
		case encodeCompress:
			for in.Available() >= processUnitSize {
				if st := e.prepareNewBlock(out); st != Ready {
					return st
				}
				e.encodeUnit(in, out)
			}
			if in.Available() > 0 {
				e.state = encodeAccumulate
				continue
			}
			if flush {
				if n := e.sched.signaturesCount; n == preferredBlockSignatures ||
					(n == preferredEfficiencyCheckSignatures && !e.sched.efficiencyChecked) {
					return e.sched.advance(&e.dict)
				}
				return Finished
			}
			return StallOnInput

		case encodeAccumulate:
			missing := processUnitSize - e.partLen
			n := min(in.Available(), missing)
			copy(e.partial[e.partLen:], in.Remaining()[:n])
			in.Advance(n)
			e.partLen += n
			if e.partLen == processUnitSize {
				e.state = encodeCompressAccumulated
				continue
			}
			if flush {
				e.state = encodeFlush
				continue
			}
			return StallOnInput

		case encodeCompressAccumulated:
			if st := e.prepareNewBlock(out); st != Ready {
				return st
			}
			pc := Cursor{Data: e.partial[:e.partLen]}
			e.encodeUnit(&pc, out)
			e.partLen = 0
			e.state = encodeCompress
			continue

		case encodeFlush:
			if out.Available() < minimumEncodeOutputLookahead {
				return StallOnOutput
			}
			wordCount := e.partLen / wordSize
			tailLen := e.partLen % wordSize
			pc := Cursor{Data: e.partial[:e.partLen]}

			if wordCount > 0 {
				if st := e.sched.advance(&e.dict); st != Ready {
					return st
				}
				sigPos := out.Pos
				out.Advance(signatureSize)
				var sig uint64
				for i := 0; i < wordCount; i++ {
					w := readWord(pc.Remaining())
					pc.Advance(wordSize)
					h := hash(w)
					if e.dict.entries[h] == w {
						setSignatureBit(&sig, uint(i))
						putHashRef(out.Remaining(), h)
						out.Advance(hashRefSize)
					} else {
						e.dict.entries[h] = w
						putWord(out.Remaining(), w)
						out.Advance(wordSize)
					}
				}
				putSignature(out.Data[sigPos:], sig)
			}
			if tailLen > 0 {
				copy(out.Remaining(), pc.Remaining())
				out.Advance(tailLen)
			}
			e.partLen = 0
			e.state = encodeCompress
			return Finished
		}
	}
}
