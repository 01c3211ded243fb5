package model

import (
	"fmt"

	"github.com/nireeson/tdmsgo/errs"
	"github.com/nireeson/tdmsgo/internal/options"
	"github.com/nireeson/tdmsgo/objpath"
	"github.com/nireeson/tdmsgo/tdstype"
)

// Group is a named child of a File with a bounded, insertion-ordered
// collection of Channels and a cached canonical path "/'Name'". It holds a
// non-owning back-reference to its File. A Group may be attached to exactly
// one File — Groups are always constructed through File.AddGroup.
type Group struct {
	file *File

	name        string
	path        string
	description string

	channels []*Channel
}

// GroupOption configures optional Group fields at AddGroup time.
type GroupOption = options.Option[*Group]

// WithGroupDescription sets the group's free-text description, emitted as a
// conventional "Description" property.
func WithGroupDescription(description string) GroupOption {
	return options.NoError(func(g *Group) { g.description = description })
}

// Name returns the group's name, as given to AddGroup.
func (g *Group) Name() string { return g.name }

// Path returns the group's cached canonical path, "/'Name'".
func (g *Group) Path() string { return g.path }

// Description returns the group's free-text description, or "" if unset.
func (g *Group) Description() string { return g.description }

// File returns the group's parent file.
func (g *Group) File() *File { return g.file }

// Channels returns the group's channels in insertion order. The returned
// slice is owned by the Group; callers must not mutate it.
func (g *Group) Channels() []*Channel { return g.channels }

// AddChannel adds a new channel to the group, in the order this method is
// called. It returns errs.ErrOutOfCapacity if the group already holds
// File's configured MaxChannels, or errs.ErrWrongArg if dataType has no
// fixed byte width and is not tdstype.String, or errs.ErrNameTooLong if name
// exceeds the configured bound.
func (g *Group) AddChannel(name string, dataType tdstype.Type, opts ...ChannelOption) (*Channel, error) {
	if len(g.channels) >= g.file.maxChannels {
		return nil, fmt.Errorf("%w: group %q already holds %d channels", errs.ErrOutOfCapacity, g.name, g.file.maxChannels)
	}

	ch, err := newChannel(g, name, dataType, opts...)
	if err != nil {
		return nil, err
	}

	g.channels = append(g.channels, ch)

	return ch, nil
}

func newGroup(file *File, name string, opts ...GroupOption) (*Group, error) {
	if len(name) > file.nameLimit {
		return nil, fmt.Errorf("%w: group name %q exceeds %d bytes", errs.ErrNameTooLong, name, file.nameLimit)
	}

	g := &Group{
		file: file,
		name: name,
		path: objpath.Group(name),
	}

	_ = options.Apply(g, opts...)

	return g, nil
}
