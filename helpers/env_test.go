package helpers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetEnv(t *testing.T) {
	t.Setenv("COLUMNCAST_TEST_STRING", "value")
	assert.Equal(t, "value", GetEnv("COLUMNCAST_TEST_STRING", "fallback"))
	assert.Equal(t, "fallback", GetEnv("COLUMNCAST_TEST_MISSING", "fallback"))
}

func TestGetEnvInt(t *testing.T) {
	t.Setenv("COLUMNCAST_TEST_INT", "42")
	assert.Equal(t, 42, GetEnvInt("COLUMNCAST_TEST_INT", 7))
	assert.Equal(t, 7, GetEnvInt("COLUMNCAST_TEST_MISSING", 7))

	t.Setenv("COLUMNCAST_TEST_BAD_INT", "abc")
	assert.Equal(t, 7, GetEnvInt("COLUMNCAST_TEST_BAD_INT", 7))
}

func TestGetEnvBool(t *testing.T) {
	t.Setenv("COLUMNCAST_TEST_BOOL", "false")
	assert.False(t, GetEnvBool("COLUMNCAST_TEST_BOOL", true))
	assert.True(t, GetEnvBool("COLUMNCAST_TEST_MISSING", true))
}

func TestLoadDotEnvMissingFile(t *testing.T) {
	assert.NoError(t, LoadDotEnv("does_not_exist.env"))
}
