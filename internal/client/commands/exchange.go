package commands

import (
	stderrors "errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/criteo/copilot-auth/internal/client"
	"github.com/criteo/copilot-auth/internal/client/auth"
	"github.com/criteo/copilot-auth/internal/client/errors"
	"github.com/criteo/copilot-auth/internal/client/output"
)

var (
	// Exchange command flags
	exchangeToken  string
	exchangeReveal bool
)

var exchangeCmd = &cobra.Command{
	Use:   "exchange",
	Short: "Exchange the token for a Copilot session token",
	Long: `Exchange the GitHub OAuth token for a short-lived Copilot session token
and show when it expires. The session token is masked unless --reveal is set.

Nothing is cached; every run performs one exchange.`,
	Args: cobra.NoArgs,
	Run:  runExchange,
}

func runExchange(cmd *cobra.Command, args []string) {
	token := resolveToken(cmd.Context(), exchangeToken, false)

	session, err := newAPIClient().Exchange(cmd.Context(), token)
	if err != nil {
		var statusErr *client.StatusError
		if stderrors.As(err, &statusErr) {
			errors.HandleHTTPError(statusErr.StatusCode, statusErr.Error())
		}
		errors.ExitWithError(err, "token exchange failed")
	}

	sessionToken := session.Token
	if !exchangeReveal {
		sessionToken = auth.Mask(sessionToken)
	}
	expiresIn := session.ExpiresIn(time.Now()).Round(time.Second)

	if flagJSON {
		output.OutputJSON(map[string]interface{}{
			"token":      sessionToken,
			"expires_at": session.ExpiresAt,
			"expires_in": expiresIn.String(),
			"refresh_in": session.RefreshIn.String(),
		}, nil)
		return
	}

	output.PrintSuccess(fmt.Sprintf("Session token issued (expires in %s, refresh in %s)", expiresIn, session.RefreshIn))
	fmt.Fprintln(cmd.OutOrStdout(), sessionToken)
}

func init() {
	exchangeCmd.Flags().StringVar(&exchangeToken, "token", "", "Token to exchange instead of discovering one")
	exchangeCmd.Flags().BoolVar(&exchangeReveal, "reveal", false, "Print the full session token")
	rootCmd.AddCommand(exchangeCmd)
}
