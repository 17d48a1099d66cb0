// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/centaurean-go/chameleon

// Package frametest drives chameleon.Encoder and chameleon.Decoder through
// arbitrary input/output chunking schedules, so callers can check that
// suspending at every possible byte boundary produces the same bytes as a
// one-shot call. It lives under internal/ because the chunking schedules it
// implements are a test harness, not part of the public control surface.
package frametest

import (
	"math/rand"

	"github.com/centaurean-go/chameleon"
)

// Schedule returns a sequence of chunk lengths summing to n, describing how
// an n-byte buffer is handed to Process across repeated calls.
type Schedule func(n int, rnd *rand.Rand) []int

// OneByte schedules every byte of an n-byte buffer as its own chunk,
// exercising every possible suspension point.
func OneByte(n int, _ *rand.Rand) []int {
	if n == 0 {
		return nil
	}
	chunks := make([]int, n)
	for i := range chunks {
		chunks[i] = 1
	}
	return chunks
}

// Random schedules chunks of between 1 and n/8+1 bytes.
func Random(n int, rnd *rand.Rand) []int {
	if n == 0 {
		return nil
	}
	var chunks []int
	top := n/8 + 1
	for remaining := n; remaining > 0; {
		c := rnd.Intn(top) + 1
		if c > remaining {
			c = remaining
		}
		chunks = append(chunks, c)
		remaining -= c
	}
	return chunks
}

// outputLen cycles through outSched, so a schedule shorter than the output
// still covers all of it; an empty schedule gives 1-byte chunks.
func outputLen(outSched []int, idx int) int {
	if len(outSched) == 0 {
		return 1
	}
	return outSched[idx%len(outSched)]
}

// EncodeChunked runs data through enc, presenting input in the chunks named
// by inSched and draining output in chunks named by outSched (cycled if
// shorter than needed). It returns the full compressed stream and the
// status Process returned on the call that finished the stream.
func EncodeChunked(enc *chameleon.Encoder, data []byte, inSched, outSched []int) ([]byte, chameleon.Status) {
	var out []byte
	chunkIdx, outIdx := 0, 0
	offset := 0

chunks:
	for {
		end := len(data)
		if chunkIdx < len(inSched) {
			end = offset + inSched[chunkIdx]
			if end > len(data) {
				end = len(data)
			}
		}
		in := chameleon.NewCursor(data[offset:end])
		lastChunk := chunkIdx >= len(inSched) || end == len(data)
		chunkIdx++

		for {
			scratch := make([]byte, outputLen(outSched, outIdx))
			outIdx++
			outCur := chameleon.NewCursor(scratch)

			status := enc.Process(in, outCur, lastChunk)
			out = append(out, scratch[:outCur.Pos]...)

			switch status {
			case chameleon.StallOnOutput, chameleon.InfoEfficiencyCheck, chameleon.InfoNewBlock:
				continue
			case chameleon.Finished:
				return out, status
			case chameleon.StallOnInput:
				offset = end
				if offset >= len(data) && lastChunk {
					return out, status
				}
				continue chunks
			default:
				return out, status
			}
		}
	}
}

// DecodeChunked is EncodeChunked's decoder counterpart, chunking both the
// compressed input (by inSched) and the decoded output (by outSched, cycled).
func DecodeChunked(dec *chameleon.Decoder, data []byte, inSched, outSched []int) ([]byte, chameleon.Status) {
	var out []byte
	chunkIdx, outIdx := 0, 0
	offset := 0

chunks:
	for {
		end := len(data)
		if chunkIdx < len(inSched) {
			end = offset + inSched[chunkIdx]
			if end > len(data) {
				end = len(data)
			}
		}
		in := chameleon.NewCursor(data[offset:end])
		lastChunk := chunkIdx >= len(inSched) || end == len(data)
		chunkIdx++

		for {
			scratch := make([]byte, outputLen(outSched, outIdx))
			outIdx++
			outCur := chameleon.NewCursor(scratch)

			status := dec.Process(in, outCur, lastChunk)
			out = append(out, scratch[:outCur.Pos]...)

			switch status {
			case chameleon.StallOnOutput, chameleon.InfoEfficiencyCheck, chameleon.InfoNewBlock:
				continue
			case chameleon.Finished:
				return out, status
			case chameleon.StallOnInput:
				offset = end
				if offset >= len(data) && lastChunk {
					return out, status
				}
				continue chunks
			default:
				return out, status
			}
		}
	}
}
