// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/centaurean-go/chameleon

package chameleon

import "math/bits"

// decodeState names the decoder's internal sub-state between Process calls.
type decodeState int

const (
	decodeContinue decodeState = iota
	decodeFlush
)

// Decoder is the Chameleon decoder state machine, mirroring Encoder. The
// zero value is not ready to use; call Init before the first Process.
type Decoder struct {
	dict     dictionary
	sched    scheduler
	partial  [minimumEncodeOutputLookahead]byte // worst-case packet size
	partLen  int
	overhead int
	state    decodeState
}

// Init (re)initializes d for a new stream under the given Parameters.
// endDataOverhead is the number of trailing input bytes that belong to the
// framing layer (e.g. a trailer) and must not be consumed as kernel payload
// until flush is set.
func (d *Decoder) Init(p Parameters, endDataOverhead int) {
	d.dict.reset()
	d.sched.init(p)
	d.partLen = 0
	d.overhead = endDataOverhead
	d.state = decodeContinue
}

// Finish is a no-op reserved for symmetry with the control surface.
func (d *Decoder) Finish() Status {
	return Ready
}

func (d *Decoder) checkState(out *Cursor) Status {
	if out.Available() < minimumDecodeOutputLookahead {
		return StallOnOutput
	}
	return d.sched.advance(&d.dict)
}

// packetLength returns the exact wire length of a full, 64-slot packet whose
// signature word is sig.
func packetLength(sig uint64) int {
	bitcount := bits.OnesCount64(sig)
	return signatureSize + (signatureSlots-bitcount)*wordSize + bitcount*hashRefSize
}

// decodeUnit reads one full packet (signature + signatureSlots slots) from
// in and writes its decoded words to out. The caller guarantees in holds at
// least the packet's actual wire length.
func (d *Decoder) decodeUnit(in, out *Cursor) {
	sig := readSignature(in.Remaining())
	in.Advance(signatureSize)
	for i := uint(0); i < signatureSlots; i++ {
		if signatureBit(sig, i) {
			h := readHashRef(in.Remaining())
			in.Advance(hashRefSize)
			putWord(out.Remaining(), d.dict.entries[h])
		} else {
			w := readWord(in.Remaining())
			in.Advance(wordSize)
			hv := hash(w)
			d.dict.entries[hv] = w
			putWord(out.Remaining(), w)
		}
		out.Advance(wordSize)
	}
}

// reservedAvailable returns how many bytes of in may be consumed right now:
// all of it if flush, otherwise everything but the reserved overhead tail.
func (d *Decoder) reservedAvailable(in *Cursor, flush bool) int {
	if flush {
		return in.Available()
	}
	n := in.Available() - d.overhead
	if n < 0 {
		return 0
	}
	return n
}

func (d *Decoder) fill(in *Cursor, n int) {
	copy(d.partial[d.partLen:], in.Remaining()[:n])
	d.partLen += n
	in.Advance(n)
}

func (d *Decoder) stashRemaining(in *Cursor, flush bool) {
	n := d.reservedAvailable(in, flush)
	if n > 0 {
		d.fill(in, n)
	}
}

// Process consumes in and writes decoded words to out until one of: input is
// exhausted (StallOnInput), output lacks room for a full unit
// (StallOnOutput), a block boundary fires (InfoEfficiencyCheck/InfoNewBlock),
// or, with flush set and all input consumed, the trailing partial packet (if
// any) is decoded and the stream terminates (Finished).
func (d *Decoder) Process(in, out *Cursor, flush bool) Status {
	for {
		switch d.state {
		case decodeContinue:
			if d.partLen > 0 {
				if d.partLen < signatureSize {
					missing := signatureSize - d.partLen
					if d.reservedAvailable(in, flush) < missing {
						d.stashRemaining(in, flush)
						if flush {
							d.state = decodeFlush
							continue
						}
						return StallOnInput
					}
					d.fill(in, missing)
				}
				sig := readSignature(d.partial[:])
				pl := packetLength(sig)
				missing := pl - d.partLen
				if missing > 0 {
					if d.reservedAvailable(in, flush) < missing {
						d.stashRemaining(in, flush)
						if flush {
							d.state = decodeFlush
							continue
						}
						return StallOnInput
					}
					d.fill(in, missing)
				}
				if st := d.checkState(out); st != Ready {
					return st
				}
				pc := Cursor{Data: d.partial[:pl]}
				d.decodeUnit(&pc, out)
				remaining := d.partLen - pl
				copy(d.partial[:remaining], d.partial[pl:d.partLen])
				d.partLen = remaining
				continue
			}

			for {
				avail := d.reservedAvailable(in, flush)
				if avail < signatureSize || avail < packetLength(readSignature(in.Remaining())) {
					break
				}
				if st := d.checkState(out); st != Ready {
					return st
				}
				d.decodeUnit(in, out)
			}
			d.stashRemaining(in, flush)
			if flush {
				d.state = decodeFlush
				continue
			}
			return StallOnInput

		case decodeFlush:
			if d.partLen > signatureSize {
				if st := d.checkState(out); st != Ready {
					return st
				}
				sig := readSignature(d.partial[:])
				pos := signatureSize
				for shift := uint(0); shift < signatureSlots; shift++ {
					slotSize := wordSize
					if signatureBit(sig, shift) {
						slotSize = hashRefSize
					}
					if d.partLen-pos < slotSize {
						break
					}
					if signatureBit(sig, shift) {
						h := readHashRef(d.partial[pos:])
						pos += hashRefSize
						putWord(out.Remaining(), d.dict.entries[h])
					} else {
						w := readWord(d.partial[pos:])
						pos += wordSize
						hv := hash(w)
						d.dict.entries[hv] = w
						putWord(out.Remaining(), w)
					}
					out.Advance(wordSize)
				}
				copy(d.partial[:], d.partial[pos:d.partLen])
				d.partLen -= pos
			}
			if d.partLen > 0 {
				if out.Available() < d.partLen {
					return StallOnOutput
				}
				copy(out.Remaining(), d.partial[:d.partLen])
				out.Advance(d.partLen)
				d.partLen = 0
			}
			d.state = decodeContinue
			return Finished
		}
	}
}
