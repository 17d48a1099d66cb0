// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/centaurean-go/chameleon

package chameleon

import "encoding/binary"

const (
	// signatureSize is the width in bytes of a packet's signature word.
	signatureSize = 8
	// signatureSlots is the number of unit-slots one signature describes.
	signatureSlots = 64
	// wordSize is the width in bytes of one dictionary word.
	wordSize = 4
	// hashRefSize is the width in bytes of a compressed slot (a dictionary index).
	hashRefSize = 2

	// processUnitSize is the amount of input consumed per full signature: 64
	// words of 4 bytes each. See DESIGN.md Open Question 1 for why this is
	// 256 and not the "32 B" figure that also appears in the distilled spec.
	processUnitSize = signatureSlots * wordSize

	// minimumEncodeOutputLookahead is the worst case a single packet can
	// occupy in the output: an all-literal unit, 8 + 64*4 bytes.
	minimumEncodeOutputLookahead = signatureSize + signatureSlots*wordSize
	// minimumDecodeOutputLookahead is the exact size a decoded unit always
	// expands to: 64 reconstructed 4-byte words.
	minimumDecodeOutputLookahead = signatureSlots * wordSize
)

// signatureBit reports whether slot i of sig is set (a compressed reference).
func signatureBit(sig uint64, i uint) bool {
	return sig>>i&1 != 0
}

// setSignatureBit marks slot i of sig as a compressed reference.
func setSignatureBit(sig *uint64, i uint) {
	*sig |= uint64(1) << i
}

// putSignature writes sig as 8 little-endian bytes at the start of dst.
func putSignature(dst []byte, sig uint64) {
	binary.LittleEndian.PutUint64(dst, sig)
}

// readSignature reads a little-endian signature word from the start of src.
func readSignature(src []byte) uint64 {
	return binary.LittleEndian.Uint64(src)
}

// putWord writes a 4-byte little-endian literal word.
func putWord(dst []byte, w uint32) {
	binary.LittleEndian.PutUint32(dst, w)
}

// readWord reads a 4-byte little-endian literal word.
func readWord(src []byte) uint32 {
	return binary.LittleEndian.Uint32(src)
}

// putHashRef writes a 2-byte little-endian dictionary index.
func putHashRef(dst []byte, h uint32) {
	binary.LittleEndian.PutUint16(dst, uint16(h))
}

// readHashRef reads a 2-byte little-endian dictionary index.
func readHashRef(src []byte) uint32 {
	return uint32(binary.LittleEndian.Uint16(src))
}
