package config

import "fmt"

// ConfigError marks a configuration problem that stops the run.
type ConfigError struct {
	Message string
	Err     error
}

// Error implements the error interface
func (e *ConfigError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("configuration error: %s (%s)", e.Message, e.Err.Error())
	}
	return "configuration error: " + e.Message
}

// Unwrap returns the underlying error
func (e *ConfigError) Unwrap() error {
	return e.Err
}

// NewConfigError creates a new configuration error
func NewConfigError(message string, err error) *ConfigError {
	return &ConfigError{Message: message, Err: err}
}
