package commands

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/criteo/copilot-auth/internal/client/output"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if flagJSON {
			output.OutputJSON(map[string]string{
				"version":  version,
				"platform": runtime.GOOS + "/" + runtime.GOARCH,
			}, nil)
			return
		}
		fmt.Fprintf(cmd.OutOrStdout(), "copilot-authctl version %s (%s/%s)\n", version, runtime.GOOS, runtime.GOARCH)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
