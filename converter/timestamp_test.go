package converter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseWithZone(t *testing.T) {
	tests := []struct {
		name       string
		text       string
		format     string
		zoneOffset int
		expected   time.Time
	}{
		{
			"utc zone",
			"2021-01-01 00:00:00", "%Y-%m-%d %H:%M:%S", 0,
			time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			"nine hours east",
			"2021-01-01 00:00:00", "%Y-%m-%d %H:%M:%S", 9 * 3600,
			time.Date(2020, 12, 31, 15, 0, 0, 0, time.UTC),
		},
		{
			"five thirty west",
			"2021-01-01 00:00:00", "%Y-%m-%d %H:%M:%S", -(5*3600 + 30*60),
			time.Date(2021, 1, 1, 5, 30, 0, 0, time.UTC),
		},
		{
			// The embedded offset folds through the correction
			// (+embedded, -zone), so the configured zone governs the
			// resulting instant even when the text carries its own.
			"embedded offset folds through",
			"2021-01-01 00:00:00 +0900", "%Y-%m-%d %H:%M:%S %z", 0,
			time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			"embedded offset with matching zone",
			"2021-01-01 00:00:00 +0900", "%Y-%m-%d %H:%M:%S %z", 9 * 3600,
			time.Date(2020, 12, 31, 15, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseWithZone(tt.text, tt.format, tt.zoneOffset)
			require.NoError(t, err)
			assert.True(t, got.Equal(tt.expected), "got %v, want %v", got, tt.expected)
		})
	}
}

func TestParseWithZoneMalformed(t *testing.T) {
	_, err := ParseWithZone("definitely not a date", "%Y-%m-%d %H:%M:%S", 0)
	assert.Error(t, err)
}

func TestFormatWithZone(t *testing.T) {
	instant := time.Date(2021, 6, 15, 23, 30, 0, 0, time.UTC)

	assert.Equal(t, "2021-06-15", FormatWithZone(instant, "%Y-%m-%d", 0))
	assert.Equal(t, "2021-06-16", FormatWithZone(instant, "%Y-%m-%d", 3600))
	assert.Equal(t, "2021-06-16 08:30:00", FormatWithZone(instant, "%Y-%m-%d %H:%M:%S", 9*3600))
}

func TestEpochFloat(t *testing.T) {
	instant := time.Date(2021, 1, 1, 0, 0, 0, 500000000, time.UTC)
	assert.InDelta(t, 1609459200.5, EpochFloat(instant), 1e-9)
}
