package segment

import (
	"fmt"

	"github.com/nireeson/tdmsgo/errs"
	"github.com/nireeson/tdmsgo/model"
	"github.com/nireeson/tdmsgo/section"
	"github.com/nireeson/tdmsgo/tdstype"
)

// AddPropertyToPath writes a metadata-only segment that attaches a single
// (name, type, value) property to the object already declared at path — the
// file itself (objpath.Root), a group, or a channel. The object's raw-data
// index is section.NoRawData: this segment neither introduces nor changes
// raw data for the object, only its properties.
//
// value must already be exactly tdstype.FixedWidth(typ) bytes for a
// fixed-width type, or the raw (unprefixed) string bytes for
// tdstype.String. A type with no fixed byte width that is not
// tdstype.String is rejected with errs.ErrWrongArg.
func AddPropertyToPath(buf []byte, path string, name string, typ tdstype.Type, value []byte) (int, error) {
	if !tdstype.IsWritable(typ) {
		return 0, fmt.Errorf("%w: property %q data type %s has no fixed byte width and is not String", errs.ErrWrongArg, name, typ)
	}

	metaLen := 4 + section.ObjectHeaderSize(path) + section.PropertySize(name, typ, value)

	if err := checkSize(uint64(section.LeadInSize)+uint64(metaLen), buf); err != nil {
		return 0, err
	}

	n := 0
	n += section.WriteLeadIn(section.Sub(buf, n), section.TocMetaData|section.TocNewObjList, uint64(metaLen), uint64(metaLen))
	n += section.PutUint32(section.Sub(buf, n), 1)
	n += section.WriteObjectHeader(section.Sub(buf, n), path, section.NoRawData, 1)
	n += section.WriteProperty(section.Sub(buf, n), name, typ, value)

	return n, nil
}

// AddPropertyToFile attaches a property to file's root object.
func AddPropertyToFile(buf []byte, file *model.File, name string, typ tdstype.Type, value []byte) (int, error) {
	return AddPropertyToPath(buf, file.Path(), name, typ, value)
}

// AddPropertyToGroup attaches a property to group's object.
func AddPropertyToGroup(buf []byte, group *model.Group, name string, typ tdstype.Type, value []byte) (int, error) {
	return AddPropertyToPath(buf, group.Path(), name, typ, value)
}

// AddPropertyToChannel attaches a property to channel's object.
func AddPropertyToChannel(buf []byte, channel *model.Channel, name string, typ tdstype.Type, value []byte) (int, error) {
	return AddPropertyToPath(buf, channel.Path(), name, typ, value)
}
