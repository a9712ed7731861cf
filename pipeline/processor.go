// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package pipeline applies a built converter set to rows. It owns the
// row-level fan-out the conversion core deliberately stays out of;
// there is still no destination I/O here.
package pipeline

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/columncast/ccerr"
	types "github.com/columncast/cctypes"
	"github.com/columncast/converter"
)

const DefaultParallelism = 4

type Processor struct {
	set *converter.ConverterSet
}

func NewProcessor(set *converter.ConverterSet) *Processor {
	return &Processor{set: set}
}

// ConvertRow converts every value of one row through its column's
// conversion function. Columns are independent; a strict cast failure
// aborts with the offending column in the error, a lenient one has
// already degraded to null inside the conversion function.
func (p *Processor) ConvertRow(row types.Row) (types.Row, error) {
	if len(row) != p.set.Len() {
		return nil, ccerr.NewInvalidArgumentErrorf(
			"row has %d values, schema has %d columns", len(row), p.set.Len())
	}
	out := make(types.Row, len(row))
	for i, value := range row {
		converted, err := p.set.Convert(i, value)
		if err != nil {
			return nil, err
		}
		out[i] = converted
	}
	return out, nil
}

// ConvertBatch converts rows with bounded parallelism. Conversion
// functions are stateless, so rows can be processed on any goroutine;
// output order matches input order regardless.
func (p *Processor) ConvertBatch(ctx context.Context, rows []types.Row, parallelism int) ([]types.Row, error) {
	if parallelism <= 0 {
		parallelism = DefaultParallelism
	}
	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(parallelism)

	out := make([]types.Row, len(rows))
	for i, row := range rows {
		i, row := i, row
		g.Go(func() error {
			converted, err := p.ConvertRow(row)
			if err != nil {
				return err
			}
			out[i] = converted
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
