// Package legacy reproduces the older TDMS writer API's combined
// declaration segment, in which a file's Description/Title/Author, a
// group's Description, and a channel's Description/Unit are baked directly
// into the initial declaration segment as properties, rather than attached
// by separate segments after the fact (see segment.AddPropertyToPath and
// friends for the current, preferred model). It exists only so a caller
// that needs bit-for-bit compatibility with files produced by that older
// API can still produce them; new code should prefer package segment.
package legacy

import (
	"fmt"
	"math"

	"github.com/nireeson/tdmsgo/errs"
	"github.com/nireeson/tdmsgo/model"
	"github.com/nireeson/tdmsgo/section"
	"github.com/nireeson/tdmsgo/tdstype"
)

// Info supplies the extra file-level fields the legacy API baked into its
// combined segment but the current model.File does not carry (Title,
// Author — model.File only keeps Description, matching the later,
// property-based API).
type Info struct {
	File   *model.File
	Title  string
	Author string
}

// Declaration writes a single metadata-only segment — ToC = Meta |
// NewObjList — declaring the file, every group, and every channel, each
// already carrying its conventional properties: "Description" on the file,
// group, and channel objects; "Title" and "Author" additionally on the
// file; "Unit" additionally on the channel. Property values come from
// model.File.Description, model.Group.Description, model.Channel.Description,
// and model.Channel.Unit, plus info.Title and info.Author for the file.
//
// The size this reports is derived from the same object-header and
// property primitives package section uses elsewhere, not from the older
// API's own literal size formula — that formula undercounts the file
// object's metadata by 4 bytes relative to what its own writer actually
// emits, which would break the size-query/emit equivalence every other
// builder in this module upholds. See the design notes for the
// discrepancy; this function always reports the size it actually writes.
func Declaration(buf []byte, info Info) (int, error) {
	file := info.File

	numObjects := uint32(1)
	for _, g := range file.Groups() {
		numObjects += 1 + uint32(len(g.Channels()))
	}

	metaLen := 4 // object count
	metaLen += fileObjectSize(file, info.Title, info.Author)
	for _, g := range file.Groups() {
		metaLen += groupObjectSize(g)
		for _, ch := range g.Channels() {
			metaLen += channelObjectSize(ch)
		}
	}

	if err := checkSize(uint64(section.LeadInSize)+uint64(metaLen), buf); err != nil {
		return 0, err
	}

	n := 0
	n += section.WriteLeadIn(section.Sub(buf, n), section.TocMetaData|section.TocNewObjList, uint64(metaLen), uint64(metaLen))
	n += section.PutUint32(section.Sub(buf, n), numObjects)
	n += writeFileObject(section.Sub(buf, n), file, info.Title, info.Author)

	for _, g := range file.Groups() {
		n += writeGroupObject(section.Sub(buf, n), g)
		for _, ch := range g.Channels() {
			n += writeChannelObject(section.Sub(buf, n), ch)
		}
	}

	return n, nil
}

// checkSize validates a segment's total computed size before it is
// written, matching segment.checkSize: total must fit the 32-bit running
// size counters the emit path aggregates in, and a non-nil buf must be at
// least total bytes long.
func checkSize(total uint64, buf []byte) error {
	if total > math.MaxUint32 {
		return fmt.Errorf("%w: segment size %d exceeds the 4 GiB limit", errs.ErrSizeOverflow, total)
	}
	if buf != nil && uint64(len(buf)) < total {
		return fmt.Errorf("%w: buffer holds %d bytes, segment needs %d", errs.ErrBufferTooSmall, len(buf), total)
	}

	return nil
}

func fileObjectSize(file *model.File, title, author string) int {
	size := section.ObjectHeaderSize(file.Path())
	size += section.PropertySize("Description", tdstype.String, []byte(file.Description()))
	size += section.PropertySize("Title", tdstype.String, []byte(title))
	size += section.PropertySize("Author", tdstype.String, []byte(author))

	return size
}

func writeFileObject(buf []byte, file *model.File, title, author string) int {
	n := 0
	n += section.WriteObjectHeader(section.Sub(buf, n), file.Path(), section.NoRawData, 3)
	n += section.WriteProperty(section.Sub(buf, n), "Description", tdstype.String, []byte(file.Description()))
	n += section.WriteProperty(section.Sub(buf, n), "Title", tdstype.String, []byte(title))
	n += section.WriteProperty(section.Sub(buf, n), "Author", tdstype.String, []byte(author))

	return n
}

func groupObjectSize(g *model.Group) int {
	size := section.ObjectHeaderSize(g.Path())
	size += section.PropertySize("Description", tdstype.String, []byte(g.Description()))

	return size
}

func writeGroupObject(buf []byte, g *model.Group) int {
	n := 0
	n += section.WriteObjectHeader(section.Sub(buf, n), g.Path(), section.NoRawData, 1)
	n += section.WriteProperty(section.Sub(buf, n), "Description", tdstype.String, []byte(g.Description()))

	return n
}

func channelObjectSize(ch *model.Channel) int {
	size := section.ObjectHeaderSize(ch.Path())
	size += section.PropertySize("Description", tdstype.String, []byte(ch.Description()))
	size += section.PropertySize("Unit", tdstype.String, []byte(ch.Unit()))

	return size
}

func writeChannelObject(buf []byte, ch *model.Channel) int {
	n := 0
	n += section.WriteObjectHeader(section.Sub(buf, n), ch.Path(), section.NoRawData, 2)
	n += section.WriteProperty(section.Sub(buf, n), "Description", tdstype.String, []byte(ch.Description()))
	n += section.WriteProperty(section.Sub(buf, n), "Unit", tdstype.String, []byte(ch.Unit()))

	return n
}
