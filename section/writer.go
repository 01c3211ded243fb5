package section

import "github.com/nireeson/tdmsgo/endian"

// writeEngine is the endian engine every segment builder writes metadata and
// lead-in fields with. TDMS segments are always little-endian on the wire.
var writeEngine = endian.LittleEndian()

// PutUint32 writes v little-endian at buf[0:4] and returns 4, the number of
// bytes written. If buf is nil, it returns 4 without writing — callers use
// this during size-query mode to accumulate a size without a destination
// buffer.
func PutUint32(buf []byte, v uint32) int {
	if buf != nil {
		writeEngine.PutUint32(buf, v)
	}

	return 4
}

// PutUint64 writes v little-endian at buf[0:8] and returns 8.
func PutUint64(buf []byte, v uint64) int {
	if buf != nil {
		writeEngine.PutUint64(buf, v)
	}

	return 8
}

// PutBytes copies src into buf[0:len(src)] and returns len(src).
func PutBytes(buf []byte, src []byte) int {
	if buf != nil {
		copy(buf, src)
	}

	return len(src)
}

// PutString writes a 4-byte little-endian length prefix followed by the raw
// bytes of s (no terminator) and returns 4+len(s). s is taken as-is: the
// encoder does not validate or re-escape it.
func PutString(buf []byte, s string) int {
	n := PutUint32(buf, uint32(len(s)))
	if buf != nil {
		n += PutBytes(buf[n:], []byte(s))
	} else {
		n += len(s)
	}

	return n
}

// PutBigEndianUint32 writes v big-endian at buf[0:4] and returns 4. Used only
// for the lead-in's Tag and Version fields, the two fields the TDMS binary
// specification fixes as big-endian regardless of segment content.
func PutBigEndianUint32(buf []byte, v uint32) int {
	if buf != nil {
		endian.BigEndian().PutUint32(buf, v)
	}

	return 4
}
