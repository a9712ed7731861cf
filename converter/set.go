// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package converter

import (
	"github.com/columncast/ccerr"
	types "github.com/columncast/cctypes"
	"github.com/columncast/logging"
)

// TaskConfig is everything the host hands over for one conversion run:
// run-wide defaults, per-column overrides keyed by column name, and an
// optional diagnostic sink for lenient-mode failures.
type TaskConfig struct {
	Defaults TaskDefaults
	Columns  map[string]ColumnOptions
	Sink     DiagnosticSink
}

// ConverterSet holds one conversion function per schema column, in
// schema order. Building the set is a one-time, single-threaded step;
// once built, the functions may be invoked concurrently across rows
// and columns.
type ConverterSet struct {
	specs []ResolvedColumnSpec
	funcs []ConversionFunc
}

// NewConverterSet resolves every column's options against the task
// defaults and builds its conversion function. It fails on the first
// unsupported pairing or invalid timezone, naming the column, so a
// misconfigured column never reaches row-processing time.
func NewConverterSet(schema types.Schema, cfg TaskConfig) (*ConverterSet, error) {
	sink := cfg.Sink
	if sink == nil {
		sink = NewLogSink(logging.GlobalLogger.WithRunID(logging.NewRunID()))
	}

	specs := make([]ResolvedColumnSpec, 0, len(schema.Columns))
	funcs := make([]ConversionFunc, 0, len(schema.Columns))
	for _, column := range schema.Columns {
		if column.Name == "" {
			return nil, ccerr.NewInvalidArgumentErrorf("schema column without a name")
		}
		spec, err := ResolveColumnSpec(column, cfg.Columns[column.Name], cfg.Defaults)
		if err != nil {
			return nil, err
		}
		fn, err := BuildConversionFunc(spec, sink)
		if err != nil {
			return nil, err
		}
		specs = append(specs, spec)
		funcs = append(funcs, fn)
	}
	return &ConverterSet{specs: specs, funcs: funcs}, nil
}

// Len returns the number of columns the set was built for.
func (s *ConverterSet) Len() int {
	return len(s.funcs)
}

// Funcs returns the conversion functions index-aligned with the schema.
func (s *ConverterSet) Funcs() []ConversionFunc {
	out := make([]ConversionFunc, len(s.funcs))
	copy(out, s.funcs)
	return out
}

// Specs returns the resolved per-column configurations, index-aligned
// with the schema.
func (s *ConverterSet) Specs() []ResolvedColumnSpec {
	out := make([]ResolvedColumnSpec, len(s.specs))
	copy(out, s.specs)
	return out
}

// Convert applies column i's conversion function to one value.
func (s *ConverterSet) Convert(i int, value any) (any, error) {
	return s.funcs[i](value)
}
