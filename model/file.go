package model

import (
	"fmt"

	"github.com/nireeson/tdmsgo/errs"
	"github.com/nireeson/tdmsgo/internal/options"
	"github.com/nireeson/tdmsgo/objpath"
)

// File is the root object of a TDMS object hierarchy: a bounded,
// insertion-ordered collection of Groups. It is constructed by the caller,
// mutated only through AddGroup, and carries no dynamic allocation beyond
// its own Groups/Channels slices — there is no cycle between File, Group,
// and Channel; the back-references exist only to resolve paths and for
// diagnostics.
type File struct {
	description string

	groups []*Group

	maxGroups   int
	maxChannels int
	nameLimit   int
}

// FileOption configures a File at construction time.
type FileOption = options.Option[*File]

// WithFileDescription sets the file's free-text description, emitted as a
// conventional "Description" property.
func WithFileDescription(description string) FileOption {
	return options.NoError(func(f *File) { f.description = description })
}

// WithMaxGroups overrides the default per-file group capacity
// (model.DefaultMaxGroups).
func WithMaxGroups(n int) FileOption {
	return options.NoError(func(f *File) { f.maxGroups = n })
}

// WithMaxChannels overrides the default per-group channel capacity
// (model.DefaultMaxChannels).
func WithMaxChannels(n int) FileOption {
	return options.NoError(func(f *File) { f.maxChannels = n })
}

// WithNameLimit overrides the default bound (model.DefaultNameLen) on
// group and channel name lengths.
func WithNameLimit(n int) FileOption {
	return options.NoError(func(f *File) { f.nameLimit = n })
}

// NewFile constructs an empty File ready to receive Groups via AddGroup.
func NewFile(opts ...FileOption) *File {
	f := &File{
		maxGroups:   DefaultMaxGroups,
		maxChannels: DefaultMaxChannels,
		nameLimit:   DefaultNameLen,
	}

	_ = options.Apply(f, opts...)

	return f
}

// Description returns the file's free-text description, or "" if unset.
func (f *File) Description() string { return f.description }

// Path returns the file's canonical path, always objpath.Root ("/").
func (f *File) Path() string { return objpath.Root }

// Groups returns the file's groups in insertion order. The returned slice is
// owned by the File; callers must not mutate it.
func (f *File) Groups() []*Group { return f.groups }

// AddGroup adds a new channel group to the file, in the order this method
// is called. It returns errs.ErrOutOfCapacity if the file already holds its
// configured MaxGroups, or errs.ErrNameTooLong if name exceeds the
// configured bound.
func (f *File) AddGroup(name string, opts ...GroupOption) (*Group, error) {
	if len(f.groups) >= f.maxGroups {
		return nil, fmt.Errorf("%w: file already holds %d groups", errs.ErrOutOfCapacity, f.maxGroups)
	}

	g, err := newGroup(f, name, opts...)
	if err != nil {
		return nil, err
	}

	f.groups = append(f.groups, g)

	return g, nil
}

// ChannelCount returns the total number of channels across all groups.
func (f *File) ChannelCount() int {
	n := 0
	for _, g := range f.groups {
		n += len(g.channels)
	}

	return n
}
