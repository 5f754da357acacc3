package auth

// Mask returns a form of token that is safe to log or print
func Mask(token string) string {
	if len(token) <= 8 {
		return "***"
	}
	return token[:8] + "..."
}
