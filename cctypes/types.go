// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package types

import (
	"fmt"
	"strings"
)

// SourceType classifies a column's values as produced by the upstream
// row source. It is assigned once per column from the source schema and
// never changes afterwards.
type SourceType int

const (
	Boolean SourceType = iota
	Integer
	Float
	String
	Timestamp
	JSON
)

var sourceTypeNames = map[SourceType]string{
	Boolean:   "boolean",
	Integer:   "integer",
	Float:     "float",
	String:    "string",
	Timestamp: "timestamp",
	JSON:      "json",
}

func (t SourceType) String() string {
	if name, ok := sourceTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("unknown(%d)", int(t))
}

// ParseSourceType maps a schema type name to a SourceType.
func ParseSourceType(name string) (SourceType, error) {
	for t, n := range sourceTypeNames {
		if n == strings.ToLower(name) {
			return t, nil
		}
	}
	return 0, fmt.Errorf("unknown source type %q", name)
}

// DestinationType is the type a column must conform to in the
// destination store.
type DestinationType string

const (
	DestBoolean   DestinationType = "BOOLEAN"
	DestInteger   DestinationType = "INTEGER"
	DestFloat     DestinationType = "FLOAT"
	DestString    DestinationType = "STRING"
	DestTimestamp DestinationType = "TIMESTAMP"
	DestRecord    DestinationType = "RECORD"
)

func (t DestinationType) String() string {
	return string(t)
}

// ParseDestinationType maps a configured type name to a DestinationType.
func ParseDestinationType(name string) (DestinationType, error) {
	switch DestinationType(strings.ToUpper(name)) {
	case DestBoolean:
		return DestBoolean, nil
	case DestInteger:
		return DestInteger, nil
	case DestFloat:
		return DestFloat, nil
	case DestString:
		return DestString, nil
	case DestTimestamp:
		return DestTimestamp, nil
	case DestRecord:
		return DestRecord, nil
	default:
		return "", fmt.Errorf("unknown destination type %q", name)
	}
}

// DefaultDestinationType returns the destination type a column gets
// when no explicit override is configured for it.
func DefaultDestinationType(source SourceType) DestinationType {
	switch source {
	case Boolean:
		return DestBoolean
	case Integer:
		return DestInteger
	case Float:
		return DestFloat
	case String:
		return DestString
	case Timestamp:
		return DestTimestamp
	case JSON:
		return DestRecord
	default:
		return DestString
	}
}

// ColumnSchema describes one column of the ordered source schema.
type ColumnSchema struct {
	Name   string
	Source SourceType
}

// Schema is the ordered column list handed over by the row source.
type Schema struct {
	Columns []ColumnSchema
}

// Row holds one value per schema column, index-aligned with the schema.
// Values are nullable and dynamically typed.
type Row []interface{}
