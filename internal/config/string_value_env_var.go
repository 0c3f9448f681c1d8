package config

import (
	"context"
	"os"

	"github.com/pkg/errors"
)

type StringValueEnvVar struct {
	EnvVar string `json:"env_var" yaml:"env_var"`
}

func (sv *StringValueEnvVar) HasValue(ctx context.Context) bool {
	val, present := os.LookupEnv(sv.EnvVar)
	return present && len(val) > 0
}

func (sv *StringValueEnvVar) GetValue(ctx context.Context) (string, error) {
	val, present := os.LookupEnv(sv.EnvVar)
	if !present || len(val) == 0 {
		return "", errors.Errorf("environment variable '%s' does not have value", sv.EnvVar)
	}
	return val, nil
}
