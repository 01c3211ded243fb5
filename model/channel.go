package model

import (
	"fmt"

	"github.com/nireeson/tdmsgo/errs"
	"github.com/nireeson/tdmsgo/internal/hash"
	"github.com/nireeson/tdmsgo/internal/options"
	"github.com/nireeson/tdmsgo/objpath"
	"github.com/nireeson/tdmsgo/tdstype"
)

// Channel is a named child of a Group with a fixed data type and a cached
// canonical path "/'Group'/'Channel'". It holds a non-owning back-reference
// to its Group, used only for diagnostics — path resolution already
// happened at attach time.
type Channel struct {
	group *Group

	name string
	path string

	dataType tdstype.Type

	description string
	unit        string
}

// ChannelOption configures optional Channel fields at AddChannel time.
type ChannelOption = options.Option[*Channel]

// WithChannelDescription sets the channel's free-text description, emitted
// as a conventional "Description" property (see Channel.Description).
func WithChannelDescription(description string) ChannelOption {
	return options.NoError(func(c *Channel) { c.description = description })
}

// WithChannelUnit sets the channel's engineering unit string, emitted as a
// conventional "unit_string" property (see Channel.Unit). The TDMS wire
// format has no dedicated slot for a channel's unit; this is NI's own
// property-name convention.
func WithChannelUnit(unit string) ChannelOption {
	return options.NoError(func(c *Channel) { c.unit = unit })
}

// Name returns the channel's name, as given to AddChannel.
func (c *Channel) Name() string { return c.name }

// Path returns the channel's cached canonical path, "/'Group'/'Channel'".
func (c *Channel) Path() string { return c.path }

// DataType returns the channel's fixed data type.
func (c *Channel) DataType() tdstype.Type { return c.dataType }

// Group returns the channel's parent group.
func (c *Channel) Group() *Group { return c.group }

// Description returns the channel's free-text description, or "" if unset.
func (c *Channel) Description() string { return c.description }

// Unit returns the channel's engineering unit string, or "" if unset.
func (c *Channel) Unit() string { return c.unit }

// FastID returns the xxHash64 of the channel's canonical path, a stable O(1)
// lookup key for callers indexing large channel sets by path rather than
// string-comparing full paths on every access.
func (c *Channel) FastID() uint64 {
	return hash.ID(c.path)
}

func newChannel(group *Group, name string, dataType tdstype.Type, opts ...ChannelOption) (*Channel, error) {
	if !tdstype.IsWritable(dataType) {
		return nil, fmt.Errorf("%w: channel data type %s has no fixed width and is not String", errs.ErrWrongArg, dataType)
	}
	if len(name) > group.file.nameLimit {
		return nil, fmt.Errorf("%w: channel name %q exceeds %d bytes", errs.ErrNameTooLong, name, group.file.nameLimit)
	}

	ch := &Channel{
		group:    group,
		name:     name,
		path:     objpath.Channel(group.path, name),
		dataType: dataType,
	}

	_ = options.Apply(ch, opts...)

	return ch, nil
}
