package converter

import (
	"github.com/mitchellh/mapstructure"

	"github.com/columncast/ccerr"
	"github.com/columncast/helpers"
)

// rawTaskConfig is the generic shape the surrounding host hands over,
// e.g. decoded from its own job configuration.
type rawTaskConfig struct {
	TaskDefaults  `mapstructure:",squash"`
	ColumnOptions map[string]ColumnOptions `mapstructure:"column_options"`
}

// DecodeTaskConfig decodes a generic configuration tree into task
// defaults plus per-column options. Unknown keys fail the decode so a
// misspelled option surfaces as a configuration error instead of being
// silently ignored.
func DecodeTaskConfig(raw map[string]interface{}) (TaskDefaults, map[string]ColumnOptions, error) {
	var cfg rawTaskConfig
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:      &cfg,
		ErrorUnused: true,
	})
	if err != nil {
		return TaskDefaults{}, nil, ccerr.NewInternalError(err)
	}
	if err := decoder.Decode(raw); err != nil {
		return TaskDefaults{}, nil, ccerr.NewInvalidArgumentError(err)
	}
	return cfg.TaskDefaults, cfg.ColumnOptions, nil
}

// TaskDefaultsFromEnv builds run-wide defaults from the environment,
// falling back to the package defaults.
func TaskDefaultsFromEnv() TaskDefaults {
	strict := helpers.GetEnvBool("COLUMNCAST_STRICT", true)
	return TaskDefaults{
		TimestampFormat: helpers.GetEnv("COLUMNCAST_DEFAULT_TIMESTAMP_FORMAT", DefaultTimestampFormat),
		Timezone:        helpers.GetEnv("COLUMNCAST_DEFAULT_TIMEZONE", DefaultTimezone),
		Strict:          &strict,
	}
}
