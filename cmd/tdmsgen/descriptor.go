package main

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/nireeson/tdmsgo/tdstype"
)

// descriptor is the JSON shape tdmsgen reads: a file description plus an
// ordered list of groups, each with an ordered list of channels and the
// sample values to write for each.
type descriptor struct {
	Description string            `json:"description"`
	Groups      []groupDescriptor `json:"groups"`
}

type groupDescriptor struct {
	Name        string              `json:"name"`
	Description string              `json:"description"`
	Channels    []channelDescriptor `json:"channels"`
}

type channelDescriptor struct {
	Name        string    `json:"name"`
	Type        string    `json:"type"`
	Unit        string    `json:"unit"`
	Description string    `json:"description"`
	Values      []float64 `json:"values"`
}

// typeByName maps the descriptor's JSON type names to wire type tags. Only
// the fixed-width numeric types are listed — tdmsgen writes sample data,
// and WriteChannelData rejects variable-length types.
var typeByName = map[string]tdstype.Type{
	"i8":     tdstype.I8,
	"i16":    tdstype.I16,
	"i32":    tdstype.I32,
	"i64":    tdstype.I64,
	"u8":     tdstype.U8,
	"u16":    tdstype.U16,
	"u32":    tdstype.U32,
	"u64":    tdstype.U64,
	"float":  tdstype.SingleFloat,
	"double": tdstype.DoubleFloat,
	"bool":   tdstype.Boolean,
}

func resolveType(name string) (tdstype.Type, error) {
	typ, ok := typeByName[name]
	if !ok {
		return 0, fmt.Errorf("tdmsgen: unknown channel type %q", name)
	}

	return typ, nil
}

// encodeValues converts a descriptor channel's JSON numeric values into the
// little-endian byte layout WriteChannelData expects for typ.
func encodeValues(typ tdstype.Type, values []float64) ([]byte, error) {
	width := tdstype.FixedWidth(typ)
	if width == 0 {
		return nil, fmt.Errorf("tdmsgen: type %s has no fixed width", typ)
	}

	buf := make([]byte, 0, len(values)*int(width))

	for _, v := range values {
		switch typ {
		case tdstype.I8:
			buf = append(buf, byte(int8(v)))
		case tdstype.I16:
			buf = binary.LittleEndian.AppendUint16(buf, uint16(int16(v)))
		case tdstype.I32:
			buf = binary.LittleEndian.AppendUint32(buf, uint32(int32(v)))
		case tdstype.I64:
			buf = binary.LittleEndian.AppendUint64(buf, uint64(int64(v)))
		case tdstype.U8, tdstype.Boolean:
			buf = append(buf, byte(uint8(v)))
		case tdstype.U16:
			buf = binary.LittleEndian.AppendUint16(buf, uint16(v))
		case tdstype.U32:
			buf = binary.LittleEndian.AppendUint32(buf, uint32(v))
		case tdstype.U64:
			buf = binary.LittleEndian.AppendUint64(buf, uint64(v))
		case tdstype.SingleFloat:
			buf = binary.LittleEndian.AppendUint32(buf, math.Float32bits(float32(v)))
		case tdstype.DoubleFloat:
			buf = binary.LittleEndian.AppendUint64(buf, math.Float64bits(v))
		default:
			return nil, fmt.Errorf("tdmsgen: type %s is not a supported channel-data type", typ)
		}
	}

	return buf, nil
}
