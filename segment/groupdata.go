package segment

import (
	"fmt"

	"github.com/nireeson/tdmsgo/errs"
	"github.com/nireeson/tdmsgo/model"
	"github.com/nireeson/tdmsgo/section"
	"github.com/nireeson/tdmsgo/tdstype"
)

// ChannelValues pairs one channel's raw value bytes with its value count.
// A WriteGroupData call takes one ChannelValues per channel in group,
// positionally matched to group.Channels() — the typed replacement for the
// source library's varargs (pointer, count) pairs.
type ChannelValues struct {
	Values []byte
	Count  uint64
}

// WriteGroupData writes a segment carrying raw data for some or all
// channels of group in one non-interleaved block: all of the first included
// channel's values, then the next included channel's, and so on, in group
// insertion order. data must have exactly len(group.Channels()) entries;
// data[i] supplies the values for group.Channels()[i].
//
// A channel whose ChannelValues.Count is 0 is skipped entirely: it is not
// declared in this segment's metadata and contributes no raw data. If every
// entry has Count == 0, WriteGroupData reports size 0 and writes nothing.
//
// As with WriteChannelData, every included channel's data type must have a
// nonzero fixed byte width; tdstype.String channels are rejected with
// errs.ErrWrongArg.
func WriteGroupData(buf []byte, group *model.Group, data []ChannelValues) (int, error) {
	channels := group.Channels()
	if len(data) != len(channels) {
		return 0, fmt.Errorf("%w: group %q has %d channels, got %d value sets", errs.ErrWrongArg, group.Path(), len(channels), len(data))
	}

	type included struct {
		path   string
		typ    tdstype.Type
		count  uint64
		values []byte
	}

	var items []included
	for i, ch := range channels {
		if data[i].Count == 0 {
			continue
		}

		typ := ch.DataType()
		width := tdstype.FixedWidth(typ)
		if width == 0 {
			return 0, fmt.Errorf("%w: channel %q data type %s has no fixed byte width", errs.ErrWrongArg, ch.Path(), typ)
		}

		rawLen := data[i].Count * uint64(width)
		if uint64(len(data[i].Values)) < rawLen {
			return 0, fmt.Errorf("%w: channel %q needs %d bytes of values, got %d", errs.ErrWrongArg, ch.Path(), rawLen, len(data[i].Values))
		}

		values := data[i].Values[:rawLen]
		if typ == tdstype.Boolean {
			normalizeBooleans(values)
		}

		items = append(items, included{path: ch.Path(), typ: typ, count: data[i].Count, values: values})
	}

	if len(items) == 0 {
		return 0, nil
	}

	metaLen := 4
	var rawLen uint64
	for _, it := range items {
		metaLen += 4 + len(it.path) + section.RawDataIndexSize(it.typ) + 4
		rawLen += uint64(len(it.values))
	}

	if err := checkSize(uint64(section.LeadInSize)+uint64(metaLen)+rawLen, buf); err != nil {
		return 0, err
	}

	n := 0
	n += section.WriteLeadIn(section.Sub(buf, n), section.TocMetaData|section.TocRawData|section.TocNewObjList, uint64(metaLen)+rawLen, uint64(metaLen))
	n += section.PutUint32(section.Sub(buf, n), uint32(len(items)))

	for _, it := range items {
		n += section.PutString(section.Sub(buf, n), it.path)
		n += section.WriteRawDataIndex(section.Sub(buf, n), it.typ, it.count, nil)
		n += section.PutUint32(section.Sub(buf, n), 0)
	}

	for _, it := range items {
		n += section.PutBytes(section.Sub(buf, n), it.values)
	}

	return n, nil
}
