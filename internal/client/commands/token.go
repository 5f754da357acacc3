package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/criteo/copilot-auth/internal/client/auth"
	"github.com/criteo/copilot-auth/internal/client/errors"
	"github.com/criteo/copilot-auth/internal/client/output"
)

var flagMask bool

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Print the discovered GitHub OAuth token",
	Long: `Print the first GitHub OAuth token found, using normal precedence:
GH_COPILOT_TOKEN > hosts.json > apps.json > gh auth token

Exits with code 3 when no source has a token.`,
	Args: cobra.NoArgs,
	Run:  runToken,
}

func runToken(cmd *cobra.Command, args []string) {
	o, ok := newLocator().Lookup(cmd.Context())
	if !ok {
		if flagJSON {
			output.OutputJSON(nil, fmt.Errorf("no GitHub token found"))
		}
		errors.ExitWithCode(errors.ExitNotFound, notFoundMessage)
	}

	token := o.Token
	if flagMask {
		token = auth.Mask(token)
	}

	if flagJSON {
		output.OutputJSON(map[string]string{
			"source":   o.Source,
			"location": o.Location,
			"token":    token,
		}, nil)
		return
	}
	fmt.Fprintln(cmd.OutOrStdout(), token)
}

const notFoundMessage = "no GitHub token found. Set GH_COPILOT_TOKEN, sign in to Copilot in your editor, or run 'gh auth login'"

func init() {
	tokenCmd.Flags().BoolVar(&flagMask, "mask", false, "Print a masked token")
	rootCmd.AddCommand(tokenCmd)
}
