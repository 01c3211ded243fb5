package segment

import (
	"fmt"
	"math"

	"github.com/nireeson/tdmsgo/errs"
)

// checkSize validates a segment's total computed size (lead-in plus
// metadata plus any raw data) before it is written. The emit path
// aggregates segment sizes in 32-bit counters, matching the source
// library's regime, even though the lead-in's own NextSegmentOffset and
// RawDataOffset fields are 64-bit on the wire — so total must still fit
// uint32. If buf is non-nil (emit mode), buf must also be at least total
// bytes long, or slicing it further down would panic instead of failing
// cleanly.
func checkSize(total uint64, buf []byte) error {
	if total > math.MaxUint32 {
		return fmt.Errorf("%w: segment size %d exceeds the 4 GiB limit", errs.ErrSizeOverflow, total)
	}
	if buf != nil && uint64(len(buf)) < total {
		return fmt.Errorf("%w: buffer holds %d bytes, segment needs %d", errs.ErrBufferTooSmall, len(buf), total)
	}

	return nil
}
