package segment

import (
	"fmt"

	"github.com/nireeson/tdmsgo/errs"
	"github.com/nireeson/tdmsgo/model"
	"github.com/nireeson/tdmsgo/section"
	"github.com/nireeson/tdmsgo/tdstype"
)

// WriteChannelData writes a segment carrying n raw values for a single
// channel — ToC = Meta | Raw | NewObjList. values must hold exactly
// n*tdstype.FixedWidth(ch.DataType()) bytes, already encoded little-endian
// by the caller; WriteChannelData copies them verbatim.
//
// ch's data type must have a nonzero fixed byte width: variable-length
// types, including tdstype.String, are rejected with errs.ErrWrongArg — a
// string channel's raw-data layout (an offsets table plus concatenated
// bytes) is outside what this builder produces.
//
// If ch's data type is tdstype.Boolean, every byte of values is normalized
// to 0 or 1 in place before anything is written — the only mutation this
// package performs on caller-owned data.
func WriteChannelData(buf []byte, ch *model.Channel, values []byte, n uint64) (int, error) {
	typ := ch.DataType()
	width := tdstype.FixedWidth(typ)
	if width == 0 {
		return 0, fmt.Errorf("%w: channel %q data type %s has no fixed byte width", errs.ErrWrongArg, ch.Path(), typ)
	}

	rawLen := n * uint64(width)
	if uint64(len(values)) < rawLen {
		return 0, fmt.Errorf("%w: channel %q needs %d bytes of values, got %d", errs.ErrWrongArg, ch.Path(), rawLen, len(values))
	}

	if typ == tdstype.Boolean {
		normalizeBooleans(values[:rawLen])
	}

	path := ch.Path()
	metaLen := 4 + 4 + len(path) + section.RawDataIndexSize(typ) + 4

	if err := checkSize(uint64(section.LeadInSize)+uint64(metaLen)+rawLen, buf); err != nil {
		return 0, err
	}

	n2 := 0
	n2 += section.WriteLeadIn(section.Sub(buf, n2), section.TocMetaData|section.TocRawData|section.TocNewObjList, uint64(metaLen)+rawLen, uint64(metaLen))
	n2 += section.PutUint32(section.Sub(buf, n2), 1)
	n2 += section.PutString(section.Sub(buf, n2), path)
	n2 += section.WriteRawDataIndex(section.Sub(buf, n2), typ, n, nil)
	n2 += section.PutUint32(section.Sub(buf, n2), 0)
	n2 += section.PutBytes(section.Sub(buf, n2), values[:rawLen])

	return n2, nil
}

// normalizeBooleans rewrites every byte of values to 0 or 1 in place.
func normalizeBooleans(values []byte) {
	for i, v := range values {
		if v != 0 {
			values[i] = 1
		}
	}
}
