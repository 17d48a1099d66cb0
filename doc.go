// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/centaurean-go/chameleon

/*
Package chameleon implements the Chameleon kernel: a streaming, hash-dictionary
compression codec that encodes and decodes a byte stream as a sequence of
fixed-size packets, each introduced by a 64-bit signature word. It favors very
high throughput over compression ratio, and is meant to sit as the innermost
kernel of a larger compression pipeline rather than be used as a self-contained
container format.

# Encoding

An Encoder is initialized once and driven by repeated Process calls, each
supplying an input cursor and an output cursor. Process returns a Status
describing why control came back: StallOnInput/StallOnOutput mean "call again
with more room"; InfoEfficiencyCheck/InfoNewBlock are informational block
events a framing layer may act on; Finished means a flush completed.

	var enc Encoder
	enc.Init(DefaultParameters())
	status := enc.Process(in, out, flush)

# Decoding

A Decoder mirrors the Encoder and must be handed exactly the bytes the Encoder
produced, since the wire format carries no explicit terminator:

	var dec Decoder
	dec.Init(DefaultParameters(), endDataOverhead)
	status := dec.Process(in, out, flush)

# Streaming helpers

NewEncoder and NewDecoder wrap the low-level state machines as io.Writer and
io.Reader for straightforward use:

	w := chameleon.NewEncoder(dst, chameleon.DefaultParameters())
	_, err := io.Copy(w, src)
	err = w.Close()
*/
package chameleon
