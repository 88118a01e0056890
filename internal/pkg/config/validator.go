package config

import (
	"fmt"
	"strings"
)

// ValidateOneOf returns a validator accepting only the given values,
// compared case-insensitively.
//
// Example:
//
//	result := LoadEnvWithFallback("LOG_FORMAT", "json", ValidateOneOf("json", "text"))
func ValidateOneOf(allowed ...string) func(string) error {
	return func(value string) error {
		for _, a := range allowed {
			if strings.EqualFold(value, a) {
				return nil
			}
		}
		return fmt.Errorf("must be one of %s", strings.Join(allowed, ", "))
	}
}

// ValidateLogLevel accepts debug, info, warn, warning and error.
func ValidateLogLevel(level string) error {
	return ValidateOneOf("debug", "info", "warn", "warning", "error")(level)
}

// ValidateLogFormat accepts json and text.
func ValidateLogFormat(format string) error {
	return ValidateOneOf("json", "text")(format)
}

// ValidateOutputFormat accepts the report encodings the CLI can print.
func ValidateOutputFormat(format string) error {
	return ValidateOneOf("json", "yaml")(format)
}
