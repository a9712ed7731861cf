package converter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	types "github.com/columncast/cctypes"
)

func TestResolveColumnSpecDefaults(t *testing.T) {
	column := types.ColumnSchema{Name: "created_at", Source: types.Timestamp}

	spec, err := ResolveColumnSpec(column, ColumnOptions{}, TaskDefaults{})
	require.NoError(t, err)

	assert.Equal(t, "created_at", spec.Name)
	assert.Equal(t, types.Timestamp, spec.Source)
	assert.Equal(t, types.DestTimestamp, spec.Dest)
	assert.Equal(t, DefaultTimestampFormat, spec.TimestampFormat)
	assert.False(t, spec.HasColumnFormat)
	assert.Equal(t, 0, spec.ZoneOffset)
	assert.True(t, spec.Strict, "strict is the default policy")
}

func TestResolveColumnSpecMerging(t *testing.T) {
	column := types.ColumnSchema{Name: "note", Source: types.String}
	lenient := false
	defaults := TaskDefaults{
		TimestampFormat: "%Y-%m-%d",
		Timezone:        "+01:00",
		Strict:          &lenient,
	}

	t.Run("task defaults apply when options are empty", func(t *testing.T) {
		spec, err := ResolveColumnSpec(column, ColumnOptions{}, defaults)
		require.NoError(t, err)
		assert.Equal(t, types.DestString, spec.Dest)
		assert.Equal(t, "%Y-%m-%d", spec.TimestampFormat)
		assert.False(t, spec.HasColumnFormat)
		assert.Equal(t, 3600, spec.ZoneOffset)
		assert.False(t, spec.Strict)
	})

	t.Run("column options win over task defaults", func(t *testing.T) {
		strict := true
		opts := ColumnOptions{
			Type:            "timestamp",
			TimestampFormat: "%Y-%m-%d %H:%M:%S",
			Timezone:        "-05:00",
			Strict:          &strict,
		}
		spec, err := ResolveColumnSpec(column, opts, defaults)
		require.NoError(t, err)
		assert.Equal(t, types.DestTimestamp, spec.Dest)
		assert.Equal(t, "%Y-%m-%d %H:%M:%S", spec.TimestampFormat)
		assert.True(t, spec.HasColumnFormat)
		assert.Equal(t, -5*3600, spec.ZoneOffset)
		assert.True(t, spec.Strict)
	})
}
