package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidators(t *testing.T) {
	tests := []struct {
		name     string
		validate func(string) error
		value    string
		wantErr  bool
	}{
		{"log level debug", ValidateLogLevel, "debug", false},
		{"log level upper", ValidateLogLevel, "ERROR", false},
		{"log level unknown", ValidateLogLevel, "trace", true},
		{"log format json", ValidateLogFormat, "json", false},
		{"log format text", ValidateLogFormat, "Text", false},
		{"log format xml", ValidateLogFormat, "xml", true},
		{"output yaml", ValidateOutputFormat, "yaml", false},
		{"output text", ValidateOutputFormat, "text", true},
		{"empty", ValidateOutputFormat, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.validate(tt.value)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateOneOf_Message(t *testing.T) {
	err := ValidateOneOf("json", "yaml")("toml")

	assert.EqualError(t, err, "must be one of json, yaml")
}
