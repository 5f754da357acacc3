package commands

import (
	"context"

	"github.com/criteo/copilot-auth/internal/client/errors"
	"github.com/criteo/copilot-auth/internal/client/prompts"
	"github.com/criteo/copilot-auth/internal/client/validation"
)

// resolveToken resolves the token to check using precedence:
// 1. flagToken (--token flag)
// 2. Locator (env, hosts.json, apps.json, gh)
// 3. Interactive prompt, when allowed
// Exits when no token is available.
func resolveToken(ctx context.Context, flagToken string, prompt bool) string {
	// Priority 1: CLI flag
	if flagToken != "" {
		if err := validation.ValidateToken(flagToken); err != nil {
			errors.ExitWithCode(errors.ExitInvalidArguments, err.Error())
		}
		return flagToken
	}

	// Priority 2: Token sources
	if token, ok := newLocator().Discover(ctx); ok {
		return token
	}

	// Priority 3: Ask the user
	if prompt {
		token, err := prompts.PromptToken()
		if err != nil {
			errors.ExitWithError(err, "failed to read token")
		}
		if err := validation.ValidateToken(token); err != nil {
			errors.ExitWithCode(errors.ExitInvalidArguments, err.Error())
		}
		return token
	}

	errors.ExitWithCode(errors.ExitNotFound, notFoundMessage)
	return ""
}
