// Package hash provides the fast hashing primitive backing
// model.Channel.FastID: a stable, collision-resistant key callers can index
// large channel sets by without string-comparing full TDMS paths.
package hash

import "github.com/cespare/xxhash/v2"

// ID computes the xxHash64 of the given string, typically a channel's
// canonical TDMS path.
func ID(data string) uint64 {
	return xxhash.Sum64String(data)
}
