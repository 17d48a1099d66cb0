// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/centaurean-go/chameleon

package chameleon_test

import (
	"bytes"
	"math/rand"
	"testing"

	"github.com/centaurean-go/chameleon"
	"github.com/centaurean-go/chameleon/internal/frametest"
)

// encodeOneShot encodes data with all input and ample output room on every
// call, as the reference the chunked runs are compared against.
func encodeOneShot(t *testing.T, p chameleon.Parameters, data []byte) []byte {
	t.Helper()
	var enc chameleon.Encoder
	enc.Init(p)
	out, status := frametest.EncodeChunked(&enc, data, nil, []int{64 * 1024})
	if status != chameleon.Finished {
		t.Fatalf("one-shot encode status = %s, want Finished", status)
	}
	return out
}

// TestSuspensionFidelity_OneByteBoundaries injects StallOnInput at every
// possible 1-byte input boundary, and StallOnOutput after every packet by
// giving each call only the output room one packet needs (264 bytes to
// encode, 256 to decode), and checks the result matches a one-shot call, for
// both directions of the codec.
func TestSuspensionFidelity_OneByteBoundaries(t *testing.T) {
	data := bytes.Repeat([]byte("suspend here "), 3000)
	p := chameleon.DefaultParameters()

	oneShot := encodeOneShot(t, p, data)

	var enc chameleon.Encoder
	enc.Init(p)
	inSched := frametest.OneByte(len(data), nil)
	outSched := []int{264}
	chunked, status := frametest.EncodeChunked(&enc, data, inSched, outSched)
	if status != chameleon.Finished {
		t.Fatalf("chunked encode status = %s, want Finished", status)
	}
	if !bytes.Equal(chunked, oneShot) {
		t.Fatalf("chunked encode (1-byte boundaries) diverged from one-shot: %d vs %d bytes", len(chunked), len(oneShot))
	}

	var dec chameleon.Decoder
	dec.Init(p, 0)
	decOutSched := []int{256}
	decoded, status := frametest.DecodeChunked(&dec, oneShot, frametest.OneByte(len(oneShot), nil), decOutSched)
	if status != chameleon.Finished {
		t.Fatalf("chunked decode status = %s, want Finished", status)
	}
	if !bytes.Equal(decoded, data) {
		t.Fatalf("chunked decode (1-byte boundaries) diverged from original: %d vs %d bytes", len(decoded), len(data))
	}
}

// TestSuspensionFidelity_RandomSchedules exercises random chunk sizes on
// both sides instead of the exhaustive 1-byte case.
func TestSuspensionFidelity_RandomSchedules(t *testing.T) {
	data := bytes.Repeat([]byte{0x01, 0x02, 0x03, 0x04, 0x05}, 4000)
	p := chameleon.DefaultParameters()
	rnd := rand.New(rand.NewSource(1))

	oneShot := encodeOneShot(t, p, data)

	for i := 0; i < 5; i++ {
		var enc chameleon.Encoder
		enc.Init(p)
		inSched := frametest.Random(len(data), rnd)
		outSched := frametest.Random(len(oneShot)+256, rnd)
		chunked, status := frametest.EncodeChunked(&enc, data, inSched, outSched)
		if status != chameleon.Finished {
			t.Fatalf("round %d: chunked encode status = %s, want Finished", i, status)
		}
		if !bytes.Equal(chunked, oneShot) {
			t.Fatalf("round %d: chunked encode diverged from one-shot", i)
		}

		var dec chameleon.Decoder
		dec.Init(p, 0)
		decInSched := frametest.Random(len(oneShot), rnd)
		decOutSched := frametest.Random(len(data)+256, rnd)
		decoded, status := frametest.DecodeChunked(&dec, oneShot, decInSched, decOutSched)
		if status != chameleon.Finished {
			t.Fatalf("round %d: chunked decode status = %s, want Finished", i, status)
		}
		if !bytes.Equal(decoded, data) {
			t.Fatalf("round %d: chunked decode diverged from original", i)
		}
	}
}
