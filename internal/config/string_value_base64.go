package config

import (
	"context"
	"encoding/base64"
)

type StringValueBase64 struct {
	Base64 string `json:"base64" yaml:"base64"`
}

func (sv *StringValueBase64) HasValue(ctx context.Context) bool {
	return len(sv.Base64) > 0
}

func (sv *StringValueBase64) GetValue(ctx context.Context) (string, error) {
	decodedBytes, err := base64.StdEncoding.DecodeString(sv.Base64)
	if err != nil {
		return "", err
	}

	return string(decodedBytes), nil
}
