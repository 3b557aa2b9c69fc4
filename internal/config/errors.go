package config

import (
	"errors"
)

var (
	// ErrInvalidConfig wraps every validation failure.
	ErrInvalidConfig = errors.New("invalid config")
	// ErrLoadConfig wraps failures reading a settings file or the environment.
	ErrLoadConfig = errors.New("load config failed")

	// ErrMissingSetting marks a configuration bundle key that no layer set.
	ErrMissingSetting = errors.New("required setting missing")
	// ErrFileFormat marks a settings file that is neither TOML nor YAML.
	ErrFileFormat = errors.New("unsupported settings file")
)
