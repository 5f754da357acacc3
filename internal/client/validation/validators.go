package validation

import (
	"fmt"
	"strings"
	"unicode"
)

// Output formats accepted by --output
const (
	FormatTable = "table"
	FormatJSON  = "json"
	FormatYAML  = "yaml"
)

// ValidateToken checks a token supplied on the command line or at a prompt
func ValidateToken(token string) error {
	if token == "" {
		return fmt.Errorf("token cannot be empty")
	}
	if strings.IndexFunc(token, unicode.IsSpace) >= 0 {
		return fmt.Errorf("token must not contain whitespace")
	}
	return nil
}

// ValidateOutputFormat validates --output (table, json or yaml)
func ValidateOutputFormat(format string) error {
	switch format {
	case FormatTable, FormatJSON, FormatYAML:
		return nil
	default:
		return fmt.Errorf("invalid output format. Expected table, json or yaml, got: '%s'", format)
	}
}
