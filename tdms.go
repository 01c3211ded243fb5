// Package tdmsgo provides an encoder for the NI TDMS (Technical Data
// Management Streaming) binary container format, version 4713.
//
// A TDMS file is a self-describing stream of segments: each segment carries
// a fixed-size lead-in header, an optional metadata block describing
// objects (the file, channel groups, channels) and their properties, and an
// optional raw-data block of channel sample values. This package builds
// that stream segment by segment over a caller-supplied object hierarchy —
// it does not read, parse, or write files itself; the caller owns I/O.
//
// # Basic usage
//
//	file := tdmsgo.NewFile(tdmsgo.WithFileDescription("acquisition run 42"))
//	group, _ := file.AddGroup("Sensors")
//	channel, _ := group.AddChannel("Temperature", tdstype.DoubleFloat, tdmsgo.WithChannelUnit("C"))
//
//	var out []byte
//	n, _ := tdmsgo.Declaration(nil, file)
//	buf := make([]byte, n)
//	tdmsgo.Declaration(buf, file)
//	out = append(out, buf...)
//
//	values := make([]byte, 8*3) // 3 float64 samples, little-endian
//	n, _ = tdmsgo.WriteChannelData(nil, channel, values, 3)
//	buf = make([]byte, n)
//	tdmsgo.WriteChannelData(buf, channel, values, 3)
//	out = append(out, buf...)
//
// Every segment builder in this package follows the same size-query/emit
// calling convention: pass buf == nil first to learn how many bytes the
// call would produce, then call again with an allocated buffer of that
// size to actually write them.
//
// # Package structure
//
// This file is a thin set of top-level wrappers around package model (the
// file/group/channel object hierarchy) and package segment (the actual
// byte-layout builders). For advanced usage — the legacy combined
// declaration segment, direct access to section-level primitives — use
// those packages directly.
package tdmsgo

import (
	"github.com/nireeson/tdmsgo/epoch"
	"github.com/nireeson/tdmsgo/model"
	"github.com/nireeson/tdmsgo/segment"
	"github.com/nireeson/tdmsgo/tdstype"
)

type (
	// File is the root of a TDMS object hierarchy.
	File = model.File
	// Group is a named collection of channels within a File.
	Group = model.Group
	// Channel is a named, typed leaf of a Group.
	Channel = model.Channel
	// Type is a TDMS wire data type tag.
	Type = tdstype.Type

	// FileOption configures a File at construction time.
	FileOption = model.FileOption
	// GroupOption configures a Group at AddGroup time.
	GroupOption = model.GroupOption
	// ChannelOption configures a Channel at AddChannel time.
	ChannelOption = model.ChannelOption

	// ChannelValues pairs one channel's raw value bytes with its value
	// count, for WriteGroupData.
	ChannelValues = segment.ChannelValues
)

var (
	// NewFile constructs an empty File ready to receive Groups via
	// File.AddGroup.
	NewFile = model.NewFile

	// WithFileDescription sets the file's free-text description.
	WithFileDescription = model.WithFileDescription
	// WithMaxGroups overrides the default per-file group capacity.
	WithMaxGroups = model.WithMaxGroups
	// WithMaxChannels overrides the default per-group channel capacity.
	WithMaxChannels = model.WithMaxChannels
	// WithNameLimit overrides the default name-length bound.
	WithNameLimit = model.WithNameLimit
	// WithGroupDescription sets a group's free-text description.
	WithGroupDescription = model.WithGroupDescription
	// WithChannelDescription sets a channel's free-text description.
	WithChannelDescription = model.WithChannelDescription
	// WithChannelUnit sets a channel's engineering unit string.
	WithChannelUnit = model.WithChannelUnit

	// Declaration writes the initial metadata-only segment declaring a
	// File's full object hierarchy with no raw data attached.
	Declaration = segment.Declaration
	// AddPropertyToFile attaches one property to a File's root object.
	AddPropertyToFile = segment.AddPropertyToFile
	// AddPropertyToGroup attaches one property to a Group's object.
	AddPropertyToGroup = segment.AddPropertyToGroup
	// AddPropertyToChannel attaches one property to a Channel's object.
	AddPropertyToChannel = segment.AddPropertyToChannel
	// WriteChannelData writes a raw-data segment for a single channel.
	WriteChannelData = segment.WriteChannelData
	// WriteGroupData writes a raw-data segment for some or all channels
	// of a group, concatenated in group insertion order.
	WriteGroupData = segment.WriteGroupData

	// Second converts a civil (year, month, day, hour, minute, second)
	// instant into whole seconds since the LabVIEW epoch, 1904-01-01
	// 00:00:00 UTC — the reference instant for TDMS timestamps.
	Second = epoch.Second
	// MustSecond is Second, but panics instead of returning an error.
	MustSecond = epoch.MustSecond
)
