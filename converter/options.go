// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package converter

import (
	"github.com/columncast/ccerr"
	types "github.com/columncast/cctypes"
)

const (
	// DefaultTimestampFormat is the task-level fallback used when
	// rendering TIMESTAMP values as text.
	DefaultTimestampFormat = "%Y-%m-%d %H:%M:%S.%6N"

	// DefaultTimezone is the task-level fallback zone specification.
	DefaultTimezone = "UTC"
)

// ColumnOptions is the per-column override bundle supplied by the host,
// keyed by column name. Every field is individually optional; zero
// values mean "use the task defaults".
type ColumnOptions struct {
	// Type overrides the destination type inferred from the source
	// type (e.g. "TIMESTAMP" for a string column carrying datetimes).
	Type string `mapstructure:"type"`

	// TimestampFormat is the strftime format for this column. For a
	// string column cast to TIMESTAMP it also decides whether the text
	// is parsed at all: without a column-level format the raw text is
	// passed through untouched.
	TimestampFormat string `mapstructure:"timestamp_format"`

	// Timezone is the zone specification ("UTC", "+09:00",
	// "Asia/Tokyo") used to interpret and render this column's
	// timestamps.
	Timezone string `mapstructure:"timezone"`

	// Strict overrides the task-level cast-failure policy.
	Strict *bool `mapstructure:"strict"`
}

// TaskDefaults are the run-wide fallbacks merged under each column's
// options.
type TaskDefaults struct {
	TimestampFormat string `mapstructure:"default_timestamp_format"`
	Timezone        string `mapstructure:"default_timezone"`
	Strict          *bool  `mapstructure:"strict"`
}

// ResolvedColumnSpec is the fully merged, immutable configuration for
// one column. It is computed once at construction time and never
// mutated afterwards, so the conversion function built from it holds
// no shared mutable state.
type ResolvedColumnSpec struct {
	Name            string
	Source          types.SourceType
	Dest            types.DestinationType
	TimestampFormat string
	HasColumnFormat bool
	ZoneOffset      int
	Strict          bool
}

// ResolveColumnSpec merges one column's options with the task defaults
// and resolves the timezone specification into a fixed offset. It
// fails with an InvalidTimezoneError or UnsupportedTypeError before
// any data flows.
func ResolveColumnSpec(column types.ColumnSchema, opts ColumnOptions, defaults TaskDefaults) (ResolvedColumnSpec, error) {
	dest := types.DefaultDestinationType(column.Source)
	if opts.Type != "" {
		parsed, err := types.ParseDestinationType(opts.Type)
		if err != nil {
			return ResolvedColumnSpec{}, ccerr.NewUnsupportedTypeError(
				column.Name, column.Source.String(), opts.Type, err)
		}
		dest = parsed
	}

	format := opts.TimestampFormat
	hasColumnFormat := format != ""
	if format == "" {
		format = defaults.TimestampFormat
	}
	if format == "" {
		format = DefaultTimestampFormat
	}

	zone := opts.Timezone
	if zone == "" {
		zone = defaults.Timezone
	}
	if zone == "" {
		zone = DefaultTimezone
	}
	offset, err := ResolveZoneOffset(zone)
	if err != nil {
		if tzErr, ok := err.(*ccerr.InvalidTimezoneError); ok {
			tzErr.AddDetail("column", column.Name)
		}
		return ResolvedColumnSpec{}, err
	}

	strict := true
	if defaults.Strict != nil {
		strict = *defaults.Strict
	}
	if opts.Strict != nil {
		strict = *opts.Strict
	}

	return ResolvedColumnSpec{
		Name:            column.Name,
		Source:          column.Source,
		Dest:            dest,
		TimestampFormat: format,
		HasColumnFormat: hasColumnFormat,
		ZoneOffset:      offset,
		Strict:          strict,
	}, nil
}
