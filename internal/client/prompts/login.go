package prompts

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"
)

// PromptToken prompts for a GitHub OAuth token (hidden input when stdin is
// a terminal)
func PromptToken() (string, error) {
	fmt.Fprint(os.Stderr, "GitHub OAuth token: ")

	if !term.IsTerminal(int(os.Stdin.Fd())) {
		reader := bufio.NewReader(os.Stdin)
		token, err := reader.ReadString('\n')
		if err != nil && token == "" {
			return "", fmt.Errorf("failed to read token: %w", err)
		}
		return strings.TrimSpace(token), nil
	}

	token, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(os.Stderr) // Print newline after hidden input
	if err != nil {
		return "", fmt.Errorf("failed to read token: %w", err)
	}
	return strings.TrimSpace(string(token)), nil
}
