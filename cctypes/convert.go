// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package types

import (
	"fmt"
	"strconv"
	"time"
)

// CastNumberToInt64 casts a dynamically typed numeric (or numeric
// string) value to int64.
func CastNumberToInt64(v any) (int64, error) {
	switch casted := v.(type) {
	case int:
		return int64(casted), nil
	case int32:
		return int64(casted), nil
	case int64:
		return casted, nil
	case float32:
		return int64(casted), nil
	case float64:
		return int64(casted), nil
	case string:
		intVal, err := strconv.ParseInt(casted, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("failed to parse int64 from string: %w", err)
		}
		return intVal, nil
	default:
		return 0, fmt.Errorf("cannot cast %T to int64", v)
	}
}

// CastNumberToFloat64 casts a dynamically typed numeric (or numeric
// string) value to float64.
func CastNumberToFloat64(v any) (float64, error) {
	switch casted := v.(type) {
	case int:
		return float64(casted), nil
	case int32:
		return float64(casted), nil
	case int64:
		return float64(casted), nil
	case float32:
		return float64(casted), nil
	case float64:
		return casted, nil
	case string:
		floatVal, err := strconv.ParseFloat(casted, 64)
		if err != nil {
			return 0, fmt.Errorf("failed to parse float64 from string: %w", err)
		}
		return floatVal, nil
	default:
		return 0, fmt.Errorf("cannot cast %T to float64", v)
	}
}

// CastToString renders a primitive value in its plain text form.
func CastToString(v any) (string, error) {
	switch casted := v.(type) {
	case string:
		return casted, nil
	case bool:
		return strconv.FormatBool(casted), nil
	case int:
		return strconv.FormatInt(int64(casted), 10), nil
	case int32:
		return strconv.FormatInt(int64(casted), 10), nil
	case int64:
		return strconv.FormatInt(casted, 10), nil
	case float32:
		return strconv.FormatFloat(float64(casted), 'f', -1, 32), nil
	case float64:
		return strconv.FormatFloat(casted, 'f', -1, 64), nil
	default:
		return "", fmt.Errorf("cannot cast %T to string", v)
	}
}

// CastToBool casts a dynamically typed value to bool.
func CastToBool(v any) (bool, error) {
	switch casted := v.(type) {
	case bool:
		return casted, nil
	default:
		return false, fmt.Errorf("cannot cast %T to bool", v)
	}
}

// CastToTime casts a dynamically typed value to time.Time.
func CastToTime(v any) (time.Time, error) {
	switch casted := v.(type) {
	case time.Time:
		return casted, nil
	default:
		return time.Time{}, fmt.Errorf("cannot cast %T to time.Time", v)
	}
}
