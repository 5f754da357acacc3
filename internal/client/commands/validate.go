package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/criteo/copilot-auth/internal/client/errors"
	"github.com/criteo/copilot-auth/internal/client/output"
)

var (
	// Validate command flags
	validateToken  string
	validatePrompt bool
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check that the token has active Copilot access",
	Long: `Check the token against the Copilot token endpoint.

The token is taken from --token, or discovered using normal precedence:
GH_COPILOT_TOKEN > hosts.json > apps.json > gh auth token

Exit codes:
  0  token is valid
  1  validity unknown (network error, timeout)
  3  no token found
  5  token rejected`,
	Args: cobra.NoArgs,
	Run:  runValidate,
}

func runValidate(cmd *cobra.Command, args []string) {
	token := resolveToken(cmd.Context(), validateToken, validatePrompt)

	valid, err := newAPIClient().Validate(cmd.Context(), token)
	if err != nil {
		if flagJSON {
			output.OutputJSON(map[string]interface{}{"valid": nil}, err)
		}
		errors.ExitWithError(err, "could not determine token validity")
	}

	if flagJSON {
		output.OutputJSON(map[string]interface{}{
			"endpoint": cfg.Endpoint.URL,
			"valid":    valid,
		}, nil)
	} else if valid {
		output.PrintSuccess("Token has active Copilot access")
	} else {
		output.PrintError(fmt.Sprintf("Token rejected by %s", cfg.Endpoint.URL))
	}

	if !valid {
		errors.ExitWithCode(errors.ExitAuthError, "")
	}
}

func init() {
	validateCmd.Flags().StringVar(&validateToken, "token", "", "Token to validate instead of discovering one")
	validateCmd.Flags().BoolVar(&validatePrompt, "prompt", false, "Prompt for a token when none is found")
	rootCmd.AddCommand(validateCmd)
}
