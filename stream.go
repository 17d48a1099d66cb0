// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/centaurean-go/chameleon

package chameleon

import (
	"fmt"
	"io"
	"log/slog"
)

// stagingBufferSize is the internal buffer size stream.go's wrappers use to
// poll the kernel. It comfortably exceeds minimumEncodeOutputLookahead so a
// packet never needs to split across an internal poll.
const stagingBufferSize = 64 * 1024

// StreamEncoder adapts Encoder to io.Writer, buffering writes internally and
// draining them to the destination writer as the kernel fills its output.
type StreamEncoder struct {
	enc    Encoder
	w      io.Writer
	out    []byte
	log    *slog.Logger
	closed bool
}

// NewEncoder wraps w with a Chameleon Encoder under the given Parameters.
func NewEncoder(w io.Writer, p Parameters) *StreamEncoder {
	var se StreamEncoder
	se.enc.Init(p)
	se.w = w
	se.out = make([]byte, stagingBufferSize)
	se.log = slog.Default()
	return &se
}

// Write implements io.Writer, compressing p through the kernel.
func (se *StreamEncoder) Write(p []byte) (int, error) {
	in := Cursor{Data: p}
	written := 0
	for in.Available() > 0 {
		out := Cursor{Data: se.out}
		status := se.enc.Process(&in, &out, false)
		if out.Pos > 0 {
			if _, err := se.w.Write(se.out[:out.Pos]); err != nil {
				return in.Pos, err
			}
		}
		switch status {
		case StallOnInput:
			written = in.Pos
		case StallOnOutput:
			// Drained above; the staging buffer filled up before the input
			// ran out, so loop and go on with it empty again.
		case InfoEfficiencyCheck:
			se.log.Debug("chameleon: efficiency check boundary")
		case InfoNewBlock:
			se.log.Debug("chameleon: new block boundary")
		default:
			return in.Pos, fmt.Errorf("chameleon: unexpected encode status %s", status)
		}
	}
	return written, nil
}

// Close flushes any buffered partial unit and terminates the stream. It does
// not close the underlying writer.
func (se *StreamEncoder) Close() error {
	if se.closed {
		return nil
	}
	se.closed = true
	in := Cursor{}
	for {
		out := Cursor{Data: se.out}
		status := se.enc.Process(&in, &out, true)
		if out.Pos > 0 {
			if _, err := se.w.Write(se.out[:out.Pos]); err != nil {
				return err
			}
		}
		switch status {
		case Finished:
			se.enc.Finish()
			return nil
		case InfoEfficiencyCheck, InfoNewBlock:
			continue
		default:
			return fmt.Errorf("chameleon: unexpected flush status %s", status)
		}
	}
}

// StreamDecoder adapts Decoder to io.Reader, pulling compressed bytes from
// the source reader and decoding them into a caller-provided buffer.
type StreamDecoder struct {
	dec   Decoder
	r     io.Reader
	in    []byte
	inCur Cursor
	eof   bool
	log   *slog.Logger
}

// NewDecoder wraps r with a Chameleon Decoder under the given Parameters.
// endDataOverhead mirrors Decoder.Init: bytes at the tail of the stream that
// belong to a framing trailer, not to kernel payload.
func NewDecoder(r io.Reader, p Parameters, endDataOverhead int) *StreamDecoder {
	var sd StreamDecoder
	sd.dec.Init(p, endDataOverhead)
	sd.r = r
	sd.in = make([]byte, stagingBufferSize)
	sd.log = slog.Default()
	return &sd
}

// Read implements io.Reader, decoding compressed bytes from the source
// reader into p.
func (sd *StreamDecoder) Read(p []byte) (int, error) {
	out := Cursor{Data: p}
	for out.Pos == 0 {
		if sd.inCur.Available() == 0 && !sd.eof {
			n, err := sd.r.Read(sd.in)
			sd.inCur = Cursor{Data: sd.in[:n]}
			if err != nil {
				if err != io.EOF {
					return 0, err
				}
				sd.eof = true
			}
		}
		status := sd.dec.Process(&sd.inCur, &out, sd.eof)
		switch status {
		case StallOnInput:
			if sd.eof {
				return out.Pos, io.EOF
			}
		case StallOnOutput:
			return out.Pos, nil
		case InfoEfficiencyCheck:
			sd.log.Debug("chameleon: efficiency check boundary")
		case InfoNewBlock:
			sd.log.Debug("chameleon: new block boundary")
		case Finished:
			sd.dec.Finish()
			return out.Pos, io.EOF
		default:
			return out.Pos, fmt.Errorf("chameleon: unexpected decode status %s", status)
		}
	}
	return out.Pos, nil
}
