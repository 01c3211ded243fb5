// Package tdstype implements the TDMS type registry: the mapping from a
// channel or property data type to its on-the-wire u32 code and its fixed
// byte width (0 for variable-length types).
package tdstype

import "fmt"

// Type is a TDMS data type tag, matching the wire-format codes from the NI
// TDMS binary specification.
type Type uint32

// Data type tags. Values match the NI TDMS binary specification's tdsType*
// constants exactly; they are the wire codes emitted for object raw-data
// type and property data type fields.
const (
	Void                  Type = 0x00000000
	I8                    Type = 0x00000001
	I16                   Type = 0x00000002
	I32                   Type = 0x00000003
	I64                   Type = 0x00000004
	U8                    Type = 0x00000005
	U16                   Type = 0x00000006
	U32                   Type = 0x00000007
	U64                   Type = 0x00000008
	SingleFloat           Type = 0x00000009
	DoubleFloat           Type = 0x0000000A
	ExtendedFloat         Type = 0x0000000B
	SingleFloatWithUnit   Type = 0x00000019
	DoubleFloatWithUnit   Type = 0x0000001A
	ExtendedFloatWithUnit Type = 0x0000001B
	String                Type = 0x00000020
	Boolean               Type = 0x00000021
	Timestamp             Type = 0x00000044
	FixedPoint            Type = 0x0000004F
	ComplexSingleFloat    Type = 0x0008000C
	ComplexDoubleFloat    Type = 0x0010000D
	DAQmxRawData          Type = 0xFFFFFFFF
)

// fixedWidths holds the fixed byte width of each type that has one. Types
// absent from this table have no fixed representation; apart from String
// (handled separately as variable-length), IsWritable rejects them.
var fixedWidths = map[Type]uint8{
	I8:          1,
	I16:         2,
	I32:         4,
	I64:         8,
	U8:          1,
	U16:         2,
	U32:         4,
	U64:         8,
	SingleFloat: 4,
	DoubleFloat: 8,
	Boolean:     1,
	Timestamp:   16, // Fraction (u64) + Second (i64)
}

// FixedWidth returns the fixed byte width of typ, or 0 if typ has no fixed
// width (String, or a reserved/unsupported type such as ExtendedFloat,
// FixedPoint, or the Complex types).
func FixedWidth(typ Type) uint8 {
	return fixedWidths[typ]
}

// IsWritable reports whether typ can be declared as a channel's data type or
// used as a property type in this encoder: it must have a nonzero fixed
// width, or be String (variable-length, length-prefixed on the wire). Raw
// channel data additionally requires a nonzero fixed width, so String
// channels take no raw data.
func IsWritable(typ Type) bool {
	return FixedWidth(typ) > 0 || typ == String
}

// String implements fmt.Stringer for diagnostics and error messages; it is
// not the TDMS String type (see the Type constant above).
func (t Type) String() string {
	switch t {
	case Void:
		return "Void"
	case I8:
		return "I8"
	case I16:
		return "I16"
	case I32:
		return "I32"
	case I64:
		return "I64"
	case U8:
		return "U8"
	case U16:
		return "U16"
	case U32:
		return "U32"
	case U64:
		return "U64"
	case SingleFloat:
		return "SingleFloat"
	case DoubleFloat:
		return "DoubleFloat"
	case ExtendedFloat:
		return "ExtendedFloat"
	case SingleFloatWithUnit:
		return "SingleFloatWithUnit"
	case DoubleFloatWithUnit:
		return "DoubleFloatWithUnit"
	case ExtendedFloatWithUnit:
		return "ExtendedFloatWithUnit"
	case String:
		return "String"
	case Boolean:
		return "Boolean"
	case Timestamp:
		return "Timestamp"
	case FixedPoint:
		return "FixedPoint"
	case ComplexSingleFloat:
		return "ComplexSingleFloat"
	case ComplexDoubleFloat:
		return "ComplexDoubleFloat"
	case DAQmxRawData:
		return "DAQmxRawData"
	default:
		return fmt.Sprintf("Type(0x%08X)", uint32(t))
	}
}
