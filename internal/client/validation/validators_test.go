package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateToken(t *testing.T) {
	tests := []struct {
		name      string
		token     string
		wantError bool
	}{
		{name: "oauth token", token: "gho_abc123"},
		{name: "empty", token: "", wantError: true},
		{name: "inner space", token: "gho abc", wantError: true},
		{name: "trailing newline", token: "gho_abc\n", wantError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateToken(tt.token)
			if tt.wantError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateOutputFormat(t *testing.T) {
	for _, f := range []string{"table", "json", "yaml"} {
		assert.NoError(t, ValidateOutputFormat(f))
	}
	err := ValidateOutputFormat("xml")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "xml")
}
