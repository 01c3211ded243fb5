package section

import "github.com/nireeson/tdmsgo/tdstype"

// WriteObjectHeader writes the common object-declaration header shared by
// every metadata object: a length-prefixed path, a raw-data index (either
// NoRawData or RawDataIndexLength, per the caller), and a property count.
// The properties themselves, if any, are written separately by
// WriteProperty.
func WriteObjectHeader(buf []byte, path string, rawDataIndex, numProperties uint32) int {
	n := 0
	n += PutString(Sub(buf, n), path)
	n += PutUint32(Sub(buf, n), rawDataIndex)
	n += PutUint32(Sub(buf, n), numProperties)

	return n
}

// ObjectHeaderSize returns the byte size WriteObjectHeader(nil, path, ...)
// would report, without needing a dry-run call.
func ObjectHeaderSize(path string) int {
	return 4 + len(path) + 4 + 4
}

// RawDataIndexLength is the literal "index information length" value the
// TDMS binary format expects for an object that carries raw data: it counts
// itself (4 bytes) plus the data-type (4), dimension (4), and
// number-of-values (8) fields that follow — 20 bytes, 0x14. The
// total-byte-size field variable-length types add is not counted by this
// literal; it follows immediately after in the wire layout regardless.
const RawDataIndexLength uint32 = 0x14

// WriteRawDataIndex writes the raw-data index information for a data-bearing
// object: the RawDataIndexLength marker, the wire type code, a fixed
// dimension of 1, the number of values, and — only when typ is
// tdstype.String — the total byte size of the string data that follows.
func WriteRawDataIndex(buf []byte, typ tdstype.Type, numValues uint64, totalByteSize *uint64) int {
	n := 0
	n += PutUint32(Sub(buf, n), RawDataIndexLength)
	n += PutUint32(Sub(buf, n), uint32(typ))
	n += PutUint32(Sub(buf, n), 1)
	n += PutUint64(Sub(buf, n), numValues)

	if typ == tdstype.String && totalByteSize != nil {
		n += PutUint64(Sub(buf, n), *totalByteSize)
	}

	return n
}

// RawDataIndexSize returns the byte size WriteRawDataIndex would report for
// typ, without a dry-run call: 20 bytes, plus 8 more if typ is
// tdstype.String.
func RawDataIndexSize(typ tdstype.Type) int {
	n := 20
	if typ == tdstype.String {
		n += 8
	}

	return n
}

// WriteProperty writes one (name, type, value) property:
//
//	u32 name_length; bytes name
//	u32 data_type
//	bytes value   // length-prefixed if data_type == tdstype.String, else
//	              // fixed-width, raw little-endian bytes otherwise
//
// value must already be exactly tdstype.FixedWidth(typ) bytes for a
// fixed-width type, or the raw (unprefixed) string bytes for
// tdstype.String — WriteProperty adds the length prefix itself in that case.
func WriteProperty(buf []byte, name string, typ tdstype.Type, value []byte) int {
	n := 0
	n += PutString(Sub(buf, n), name)
	n += PutUint32(Sub(buf, n), uint32(typ))

	if typ == tdstype.String {
		n += PutString(Sub(buf, n), string(value))
	} else {
		n += PutBytes(Sub(buf, n), value)
	}

	return n
}

// PropertySize returns the byte size WriteProperty would report for a
// property with the given name, type, and value, without a dry-run call.
func PropertySize(name string, typ tdstype.Type, value []byte) int {
	n := 4 + len(name) + 4
	if typ == tdstype.String {
		n += 4 + len(value)
	} else {
		n += len(value)
	}

	return n
}
