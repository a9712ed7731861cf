// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package converter

import (
	"time"

	timefmt "github.com/itchyny/timefmt-go"
)

// ParseWithZone parses text against a strftime format and interprets it
// relative to a fixed zone offset (seconds east of UTC).
//
// The format may itself capture an offset embedded in the text (%z and
// friends); parsing offset-less text yields UTC wall-clock fields, i.e.
// an embedded offset of zero. The result is then corrected by
//
//	result = parsed_instant + embedded_offset - zone_offset
//
// in exactly that order. The net effect is that the wall-clock text is
// interpreted in the configured zone, with the embedded offset folded
// through the same arithmetic whether or not the format captures one.
func ParseWithZone(text, format string, zoneOffset int) (time.Time, error) {
	parsed, err := timefmt.Parse(text, format)
	if err != nil {
		return time.Time{}, err
	}
	_, embedded := parsed.Zone()
	correction := time.Duration(embedded-zoneOffset) * time.Second
	return parsed.Add(correction).UTC(), nil
}

// FormatWithZone shifts an instant into the given zone offset and
// renders it with a strftime format.
func FormatWithZone(t time.Time, format string, zoneOffset int) string {
	return timefmt.Format(t.In(time.FixedZone("", zoneOffset)), format)
}

// EpochFloat renders an instant as fractional epoch seconds, the
// representation TIMESTAMP destination columns carry.
func EpochFloat(t time.Time) float64 {
	return float64(t.Unix()) + float64(t.Nanosecond())/float64(time.Second)
}
