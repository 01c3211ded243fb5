package section

// LeadInSize is the fixed size, in bytes, of every TDMS segment lead-in.
const LeadInSize = 28

// Tag is the segment tag "TDSm", written big-endian at lead-in offset 0.
const Tag uint32 = 0x5444536D

// Version is the TDMS version number this encoder emits (4713), written
// big-endian at lead-in offset 8.
const Version uint32 = 0x69120000

// ToC mask bits (Table of Contents), little-endian at lead-in offset 4. This
// encoder only ever combines Meta, Raw, and NewObjList; Interleaved,
// BigEndian, and DAQmxRawData are declared for completeness but never set.
const (
	TocMetaData     uint32 = 0x00000002
	TocNewObjList   uint32 = 0x00000004
	TocRawData      uint32 = 0x00000008
	TocInterleaved  uint32 = 0x00000020
	TocBigEndian    uint32 = 0x00000040
	TocDAQmxRawData uint32 = 0x00000080
)

// NoRawData is the sentinel raw-data index value for an object that has no
// raw data attached in this segment.
const NoRawData uint32 = 0xFFFFFFFF
