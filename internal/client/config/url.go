package config

import (
	"fmt"
	"net/url"
	"strings"
)

// NormalizeURL removes trailing slashes from URLs
func NormalizeURL(url string) string {
	return strings.TrimRight(url, "/")
}

// ValidateEndpoint checks that raw is an absolute http(s) URL
func ValidateEndpoint(raw string) error {
	if raw == "" {
		return fmt.Errorf("URL cannot be empty")
	}
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("failed to parse URL: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("unsupported URL scheme %q, expected http or https", u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("URL %q has no host", raw)
	}
	return nil
}
