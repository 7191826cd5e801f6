package environment

import "errors"

// ErrConfiguration is wrapped by every ConfigurationError
var ErrConfiguration = errors.New("invalid configuration")

// ConfigurationError reports a grid or hyperparameter that would make
// training impossible or unterminating. ConfigurationErrors are
// returned by validation, before any training starts.
type ConfigurationError struct {
	Op  string
	Err error
}

// NewConfigurationError returns a new ConfigurationError for operation
// op
func NewConfigurationError(op string, err error) *ConfigurationError {
	return &ConfigurationError{Op: op, Err: err}
}

// Error satisifes the error interface
func (e *ConfigurationError) Error() string {
	return e.Op + ": " + e.Err.Error()
}

// Unwrap returns the underlying error
func (e *ConfigurationError) Unwrap() error {
	return e.Err
}

// Is reports ErrConfiguration as matching every ConfigurationError
func (e *ConfigurationError) Is(target error) bool {
	return target == ErrConfiguration
}

// IsConfiguration returns whether or not an error reports an invalid
// configuration
func IsConfiguration(err error) bool {
	return errors.Is(err, ErrConfiguration)
}
