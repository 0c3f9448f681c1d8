package config

import (
	"context"
	"os"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/pkg/errors"
)

type StringValueFile struct {
	Path string `json:"path" yaml:"path"`
}

func (sv *StringValueFile) HasValue(ctx context.Context) bool {
	if _, err := os.Stat(sv.Path); err != nil {
		// attempt home path expansion
		path, err := homedir.Expand(sv.Path)
		if err != nil {
			return false
		}

		if _, err := os.Stat(path); err != nil {
			return false
		}
	}

	return true
}

func (sv *StringValueFile) GetValue(ctx context.Context) (string, error) {
	path := sv.Path
	if _, err := os.Stat(path); os.IsNotExist(err) {
		// attempt home path expansion
		var err2 error
		path, err2 = homedir.Expand(sv.Path)
		if err2 != nil {
			return "", err
		}

		if _, err := os.Stat(path); err != nil {
			return "", errors.Errorf("token file '%s' does not exist", sv.Path)
		}
	}

	bytes, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(string(bytes)), nil
}
