package errors

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapHTTPStatusToExitCode(t *testing.T) {
	tests := []struct {
		status   int
		expected int
	}{
		{http.StatusOK, ExitSuccess},
		{http.StatusNoContent, ExitSuccess},
		{http.StatusUnauthorized, ExitAuthError},
		{http.StatusForbidden, ExitPermissionDenied},
		{http.StatusNotFound, ExitPermissionDenied},
		{http.StatusTooManyRequests, ExitGeneralError},
		{http.StatusInternalServerError, ExitGeneralError},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			assert.Equal(t, tt.expected, MapHTTPStatusToExitCode(tt.status))
		})
	}
}
