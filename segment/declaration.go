// Package segment assembles complete TDMS segments — lead-in plus metadata,
// plus (for data-bearing segments) the raw-data block — from a model.File's
// object hierarchy. Each builder follows the package's size-query/emit
// convention: call with buf == nil to learn how many bytes the segment would
// occupy, then call again with a buffer of that size to actually write it.
package segment

import (
	"github.com/nireeson/tdmsgo/model"
	"github.com/nireeson/tdmsgo/section"
)

// Declaration writes a metadata-only segment that declares the object
// hierarchy of file — the file itself, its groups, and their channels, in
// insertion order — with no properties and no raw data attached to any
// object. Channels are declared with a raw-data index of
// section.NoRawData: nothing is reserved for future data segments to append
// to, and the object's actual data type is not yet observable on the wire
// from this segment alone.
//
// Because a declaration segment carries no raw data, NextSegmentOffset and
// RawDataOffset are always equal — both point past the metadata.
func Declaration(buf []byte, file *model.File) (int, error) {
	paths := objectPaths(file)

	metaLen := 4 // object count
	for _, p := range paths {
		metaLen += section.ObjectHeaderSize(p)
	}

	if err := checkSize(uint64(section.LeadInSize)+uint64(metaLen), buf); err != nil {
		return 0, err
	}

	n := 0
	n += section.WriteLeadIn(section.Sub(buf, n), section.TocMetaData|section.TocNewObjList, uint64(metaLen), uint64(metaLen))
	n += section.PutUint32(section.Sub(buf, n), uint32(len(paths)))

	for _, p := range paths {
		n += section.WriteObjectHeader(section.Sub(buf, n), p, section.NoRawData, 0)
	}

	return n, nil
}

// objectPaths returns every object path in file, in the canonical
// declaration order: the file itself, then each group, then that group's
// channels, before moving to the next group.
func objectPaths(file *model.File) []string {
	paths := make([]string, 0, 1+file.ChannelCount()+len(file.Groups()))
	paths = append(paths, file.Path())

	for _, g := range file.Groups() {
		paths = append(paths, g.Path())
		for _, ch := range g.Channels() {
			paths = append(paths, ch.Path())
		}
	}

	return paths
}
