package config

import (
	"errors"
	"fmt"
)

// Sentinel error kinds for this package. These allow errors.Is/As from callers.
var (
	ErrInvalidConfig = errors.New("invalid config")
	ErrLoadConfig    = errors.New("load config failed")
)

// WrapLoadError tags provider/parse failures with the load sentinel.
func WrapLoadError(err error) error {
	return fmt.Errorf("%w: %v", ErrLoadConfig, err)
}
