// Package epoch converts civil (year-month-day hour:minute:second) instants
// into whole seconds since the LabVIEW epoch, 1904-01-01 00:00:00 UTC — the
// reference instant TDMS Timestamp values are measured from.
//
// The original MahdaSystem/TDMS C library computes this with a hand-rolled
// leap-year table and day-count loop (TDMS_DateDef/TDMS_TimeSecond). This
// reimplementation delegates the calendar arithmetic to time.Date, which is
// provably equivalent for the proleptic Gregorian calendar TDMS assumes, and
// validates its inputs instead of indexing an unchecked sentinel table.
package epoch

import (
	"fmt"
	"time"
)

// labviewEpoch is 1904-01-01 00:00:00 UTC expressed as a time.Time, the zero
// instant Second counts forward from.
var labviewEpoch = time.Date(1904, time.January, 1, 0, 0, 0, 0, time.UTC)

// Second returns the number of whole seconds between the LabVIEW epoch
// (1904-01-01 00:00:00 UTC) and the given civil instant.
//
// Year must be >= 1904; years before the epoch return 0, matching the
// original library's defined behavior for out-of-domain input. Month must be
// in [1, 12] and Day in [1, 31] or Second returns an error instead of
// producing a silently wrong result.
func Second(year int, month, day int, hour, minute, second int) (int64, error) {
	if month < 1 || month > 12 {
		return 0, fmt.Errorf("epoch: month %d out of range [1,12]", month)
	}
	if day < 1 || day > 31 {
		return 0, fmt.Errorf("epoch: day %d out of range [1,31]", day)
	}

	if year < 1904 {
		return 0, nil
	}

	t := time.Date(year, time.Month(month), day, hour, minute, second, 0, time.UTC)

	return int64(t.Sub(labviewEpoch).Seconds()), nil
}

// MustSecond is Second without an error return, for use with constants known
// at compile time to be valid; it panics on invalid input.
func MustSecond(year int, month, day int, hour, minute, second int) int64 {
	s, err := Second(year, month, day, hour, minute, second)
	if err != nil {
		panic(err)
	}

	return s
}
