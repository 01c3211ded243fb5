// Package endian provides byte order utilities for binary encoding.
//
// TDMS lead-ins and metadata are always written little-endian on the wire
// (the lead-in's Tag and Version fields are the big-endian exceptions,
// written by the section package). This package exists so the low-level byte writer in
// section is not hard-coded to binary.LittleEndian: tests exercise it against
// both orders to prove the writer swaps bytes correctly on a big-endian host,
// and a future big-endian-segment mode (TDMS supports one, the encoder here
// never emits it per spec) has somewhere to plug in.
package endian

import (
	"encoding/binary"
	"unsafe"
)

// EndianEngine combines ByteOrder and AppendByteOrder from encoding/binary
// into one interface, satisfied by both binary.LittleEndian and
// binary.BigEndian.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// CheckEndianness determines the host's native byte order.
func CheckEndianness() binary.ByteOrder {
	var i uint16 = 0x0100

	b := (*[2]byte)(unsafe.Pointer(&i))
	if b[0] == 0x01 {
		return binary.BigEndian
	}

	return binary.LittleEndian
}

// IsNativeLittleEndian reports whether the host is little-endian.
func IsNativeLittleEndian() bool {
	return CheckEndianness() == binary.LittleEndian
}

// LittleEndian returns the little-endian engine. TDMS segments are written
// with this engine exclusively.
func LittleEndian() EndianEngine {
	return binary.LittleEndian
}

// BigEndian returns the big-endian engine, used by the section package for
// the lead-in's Tag and Version fields and by tests of the non-native path.
func BigEndian() EndianEngine {
	return binary.BigEndian
}
