package config

import "context"

// StringValueDirect is where the value is specified directly in configuration.
type StringValueDirect struct {
	Value string `json:"value" yaml:"value"`
}

func (sv *StringValueDirect) HasValue(ctx context.Context) bool {
	return len(sv.Value) > 0
}

func (sv *StringValueDirect) GetValue(ctx context.Context) (string, error) {
	return sv.Value, nil
}
