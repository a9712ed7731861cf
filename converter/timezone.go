// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package converter

import (
	"regexp"
	"strconv"
	"time"

	"github.com/columncast/ccerr"
)

var (
	numericOffsetPattern = regexp.MustCompile(`^([+-])(\d{2})(?::?(\d{2}))?$`)
	namedZonePattern     = regexp.MustCompile(`^[A-Za-z][A-Za-z_\-]*(?:/[A-Za-z][A-Za-z_\-]*){1,2}$`)
)

// ResolveZoneOffset parses a timezone specification into a fixed offset
// in seconds east of UTC. Numeric forms ([+-]HH or [+-]HH[:MM]) are
// parsed directly. Named zones (Region/City, optionally a third level)
// and the literal "UTC" go through the IANA database, using the offset
// in effect right now: the offset is resolved once per run, so a column
// crossing a daylight-saving boundary within one run keeps a single,
// possibly stale, offset. That staleness is intentional; re-resolving
// per value would change the produced data.
//
// Anything else is an InvalidTimezoneError, which is a configuration
// error and never subject to the strict/lenient policy.
func ResolveZoneOffset(spec string) (int, error) {
	if spec == "" || spec == "UTC" {
		return 0, nil
	}
	if m := numericOffsetPattern.FindStringSubmatch(spec); m != nil {
		hours, err := strconv.Atoi(m[2])
		if err != nil {
			return 0, ccerr.NewInvalidTimezoneError(spec, err)
		}
		minutes := 0
		if m[3] != "" {
			minutes, err = strconv.Atoi(m[3])
			if err != nil {
				return 0, ccerr.NewInvalidTimezoneError(spec, err)
			}
		}
		offset := hours*3600 + minutes*60
		if m[1] == "-" {
			offset = -offset
		}
		return offset, nil
	}
	if namedZonePattern.MatchString(spec) {
		loc, err := time.LoadLocation(spec)
		if err != nil {
			return 0, ccerr.NewInvalidTimezoneError(spec, err)
		}
		_, offset := time.Now().In(loc).Zone()
		return offset, nil
	}
	return 0, ccerr.NewInvalidTimezoneError(spec, nil)
}
