// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package converter builds per-column conversion functions that map
// source-typed row values onto a columnar destination's primitive
// types. Construction happens once per run; the functions it returns
// are pure and safe for concurrent use across rows and columns.
package converter

import (
	"fmt"
	"math"
	"strconv"

	jsoniter "github.com/json-iterator/go"

	"github.com/columncast/ccerr"
	types "github.com/columncast/cctypes"
	"github.com/columncast/logging"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// ConversionFunc transforms one nullable value of a column into its
// destination representation. Built once per column, invoked once per
// row value; no state is shared between invocations.
type ConversionFunc func(value any) (any, error)

// BuildConversionFunc selects and builds the conversion function for a
// single resolved column. Unsupported (source, destination) pairings
// fail here with an UnsupportedTypeError, before any row is processed.
// A nil sink falls back to logging through the global logger.
func BuildConversionFunc(spec ResolvedColumnSpec, sink DiagnosticSink) (ConversionFunc, error) {
	if sink == nil {
		sink = NewLogSink(logging.GlobalLogger)
	}
	cell, err := buildCell(spec)
	if err != nil {
		return nil, err
	}
	return withPolicy(spec, sink, cell), nil
}

// withPolicy wraps a matrix cell with the column's strict/lenient
// policy. Strict failures abort with a TypecastError carrying the type
// pair and offending value; lenient failures emit a diagnostic and
// degrade to null.
func withPolicy(spec ResolvedColumnSpec, sink DiagnosticSink, cell ConversionFunc) ConversionFunc {
	return func(value any) (any, error) {
		converted, err := cell(value)
		if err == nil {
			return converted, nil
		}
		if spec.Strict {
			return nil, ccerr.NewTypecastError(
				spec.Name, spec.Source.String(), spec.Dest.String(), value, err)
		}
		sink.Emit(Diagnostic{
			Column: spec.Name,
			Source: spec.Source,
			Dest:   spec.Dest,
			Value:  value,
		})
		return nil, nil
	}
}

// passthrough forwards the value unchanged, null included. Used for
// the identity cells whose underlying representation already carries
// nullability.
func passthrough(value any) (any, error) {
	return value, nil
}

// nullable short-circuits null to null around a cell that only handles
// non-null values.
func nullable(cell ConversionFunc) ConversionFunc {
	return func(value any) (any, error) {
		if value == nil {
			return nil, nil
		}
		return cell(value)
	}
}

func buildCell(spec ResolvedColumnSpec) (ConversionFunc, error) {
	switch spec.Source {
	case types.Boolean:
		return buildBooleanCell(spec)
	case types.Integer:
		return buildIntegerCell(spec)
	case types.Float:
		return buildFloatCell(spec)
	case types.String:
		return buildStringCell(spec)
	case types.Timestamp:
		return buildTimestampCell(spec)
	case types.JSON:
		return buildJSONCell(spec)
	default:
		return nil, unsupported(spec)
	}
}

func unsupported(spec ResolvedColumnSpec) error {
	return ccerr.NewUnsupportedTypeError(
		spec.Name, spec.Source.String(), spec.Dest.String(), nil)
}

func buildBooleanCell(spec ResolvedColumnSpec) (ConversionFunc, error) {
	switch spec.Dest {
	case types.DestBoolean:
		return passthrough, nil
	case types.DestString:
		return nullable(func(value any) (any, error) {
			b, err := types.CastToBool(value)
			if err != nil {
				return nil, err
			}
			return strconv.FormatBool(b), nil
		}), nil
	default:
		return nil, unsupported(spec)
	}
}

func buildIntegerCell(spec ResolvedColumnSpec) (ConversionFunc, error) {
	switch spec.Dest {
	case types.DestBoolean:
		return nullable(func(value any) (any, error) {
			i, err := types.CastNumberToInt64(value)
			if err != nil {
				return nil, err
			}
			switch i {
			case 1:
				return true, nil
			case 0:
				return false, nil
			default:
				return nil, fmt.Errorf("cannot cast %d to boolean", i)
			}
		}), nil
	case types.DestInteger:
		return passthrough, nil
	case types.DestFloat:
		return nullable(func(value any) (any, error) {
			f, err := types.CastNumberToFloat64(value)
			if err != nil {
				return nil, err
			}
			return f, nil
		}), nil
	case types.DestString:
		return nullable(func(value any) (any, error) {
			s, err := types.CastToString(value)
			if err != nil {
				return nil, err
			}
			return s, nil
		}), nil
	case types.DestTimestamp:
		// Forwarded numerically; the destination treats the value as
		// epoch seconds.
		return passthrough, nil
	default:
		return nil, unsupported(spec)
	}
}

func buildFloatCell(spec ResolvedColumnSpec) (ConversionFunc, error) {
	switch spec.Dest {
	case types.DestInteger:
		return nullable(func(value any) (any, error) {
			f, err := types.CastNumberToFloat64(value)
			if err != nil {
				return nil, err
			}
			if math.IsNaN(f) || math.IsInf(f, 0) {
				return nil, fmt.Errorf("cannot cast %v to integer", f)
			}
			return int64(f), nil
		}), nil
	case types.DestFloat:
		return passthrough, nil
	case types.DestString:
		return nullable(func(value any) (any, error) {
			s, err := types.CastToString(value)
			if err != nil {
				return nil, err
			}
			return s, nil
		}), nil
	case types.DestTimestamp:
		return passthrough, nil
	default:
		return nil, unsupported(spec)
	}
}

func buildStringCell(spec ResolvedColumnSpec) (ConversionFunc, error) {
	switch spec.Dest {
	case types.DestBoolean:
		return nullable(func(value any) (any, error) {
			s, err := castString(value)
			if err != nil {
				return nil, err
			}
			switch s {
			case "true":
				return true, nil
			case "false":
				return false, nil
			default:
				return nil, fmt.Errorf("cannot cast %q to boolean", s)
			}
		}), nil
	case types.DestInteger:
		return nullable(func(value any) (any, error) {
			s, err := castString(value)
			if err != nil {
				return nil, err
			}
			return strconv.ParseInt(s, 10, 64)
		}), nil
	case types.DestFloat:
		return nullable(func(value any) (any, error) {
			s, err := castString(value)
			if err != nil {
				return nil, err
			}
			return strconv.ParseFloat(s, 64)
		}), nil
	case types.DestString:
		return passthrough, nil
	case types.DestTimestamp:
		if !spec.HasColumnFormat {
			// Without a column-level format the raw text is forwarded;
			// the destination is expected to understand it.
			return passthrough, nil
		}
		format := spec.TimestampFormat
		zoneOffset := spec.ZoneOffset
		return nullable(func(value any) (any, error) {
			s, err := castString(value)
			if err != nil {
				return nil, err
			}
			t, err := ParseWithZone(s, format, zoneOffset)
			if err != nil {
				return nil, err
			}
			return EpochFloat(t), nil
		}), nil
	case types.DestRecord:
		return nullable(func(value any) (any, error) {
			s, err := castString(value)
			if err != nil {
				return nil, err
			}
			var record any
			if err := json.UnmarshalFromString(s, &record); err != nil {
				return nil, err
			}
			return record, nil
		}), nil
	default:
		return nil, unsupported(spec)
	}
}

func buildTimestampCell(spec ResolvedColumnSpec) (ConversionFunc, error) {
	switch spec.Dest {
	case types.DestInteger:
		return nullable(func(value any) (any, error) {
			t, err := types.CastToTime(value)
			if err != nil {
				return nil, err
			}
			return t.Unix(), nil
		}), nil
	case types.DestFloat:
		return nullable(func(value any) (any, error) {
			t, err := types.CastToTime(value)
			if err != nil {
				return nil, err
			}
			return EpochFloat(t), nil
		}), nil
	case types.DestString:
		format := spec.TimestampFormat
		zoneOffset := spec.ZoneOffset
		return nullable(func(value any) (any, error) {
			t, err := types.CastToTime(value)
			if err != nil {
				return nil, err
			}
			return FormatWithZone(t, format, zoneOffset), nil
		}), nil
	case types.DestTimestamp:
		return nullable(func(value any) (any, error) {
			t, err := types.CastToTime(value)
			if err != nil {
				return nil, err
			}
			return EpochFloat(t), nil
		}), nil
	default:
		return nil, unsupported(spec)
	}
}

func buildJSONCell(spec ResolvedColumnSpec) (ConversionFunc, error) {
	switch spec.Dest {
	case types.DestString:
		return nullable(func(value any) (any, error) {
			return json.MarshalToString(value)
		}), nil
	case types.DestRecord:
		// Structured values pass through one level untouched; the
		// factory does not recurse into record fields.
		return passthrough, nil
	default:
		return nil, unsupported(spec)
	}
}

func castString(v any) (string, error) {
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("cannot cast %T to string", v)
	}
	return s, nil
}
