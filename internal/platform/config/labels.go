package config

import (
	"fmt"
	"strings"

	"github.com/SscSPs/ifrs_ledger/internal/core/domain"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// LabelOverrides is the shape of the optional labels file.
type LabelOverrides struct {
	AccountTypes map[string]string `mapstructure:"account_types" validate:"dive,keys,required,endkeys,required"`
	BaseCodes    map[string]int    `mapstructure:"base_codes" validate:"dive,keys,required,endkeys,gte=0"`
}

// LoadLabels returns the default label table, overridden by the file at path when path is set.
// Any format viper understands (YAML, JSON, TOML) is accepted.
func LoadLabels(path string) (domain.Labels, error) {
	labels := domain.DefaultLabels()
	if path == "" {
		return labels, nil
	}

	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return labels, fmt.Errorf("failed to read labels file %s: %w", path, err)
	}
	var overrides LabelOverrides
	if err := v.Unmarshal(&overrides); err != nil {
		return labels, fmt.Errorf("failed to decode labels file %s: %w", path, err)
	}
	if err := validator.New().Struct(overrides); err != nil {
		return labels, fmt.Errorf("invalid labels file %s: %w", path, err)
	}
	return labels.WithOverrides(upperKeys(overrides.AccountTypes), upperKeys(overrides.BaseCodes))
}

// upperKeys restores account type keys, which viper lower-cases on read.
func upperKeys[V any](in map[string]V) map[string]V {
	out := make(map[string]V, len(in))
	for k, v := range in {
		out[strings.ToUpper(k)] = v
	}
	return out
}
