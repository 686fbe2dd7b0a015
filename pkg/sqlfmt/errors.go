package sqlfmt

import (
	"errors"
	"fmt"
)

// ErrInvalidOption is wrapped by ConfigurationError for out of range option values.
var ErrInvalidOption = errors.New("invalid option")

// ConfigurationError reports options that cannot produce a formatter.
type ConfigurationError struct {
	Option string
	Err    error
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configuration error: %s: %v", e.Option, e.Err)
}

func (e *ConfigurationError) Unwrap() error {
	return e.Err
}
