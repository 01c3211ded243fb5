package section

// WriteLeadIn writes a 28-byte TDMS segment lead-in into buf[0:28]:
//
//	offset 0  (4B, big-endian)    Tag "TDSm"
//	offset 4  (4B, little-endian) ToC mask
//	offset 8  (4B, big-endian)    Version (4713)
//	offset 12 (8B, little-endian) next-segment offset (bytes after lead-in)
//	offset 20 (8B, little-endian) raw-data offset (length of metadata)
//
// As with every writer in this package, buf == nil computes the size (always
// LeadInSize) without writing.
func WriteLeadIn(buf []byte, toc uint32, nextSegmentOffset, rawDataOffset uint64) int {
	n := 0
	n += PutBigEndianUint32(Sub(buf, n), Tag)
	n += PutUint32(Sub(buf, n), toc)
	n += PutBigEndianUint32(Sub(buf, n), Version)
	n += PutUint64(Sub(buf, n), nextSegmentOffset)
	n += PutUint64(Sub(buf, n), rawDataOffset)

	return n
}

// Sub returns buf[off:], or nil if buf is nil — the common idiom every
// builder in this module uses to thread the size-query/emit duality through
// a running offset without special-casing every call site.
func Sub(buf []byte, off int) []byte {
	if buf == nil {
		return nil
	}

	return buf[off:]
}
