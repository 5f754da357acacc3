package commands

import (
	"path/filepath"
	"runtime"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/criteo/copilot-auth/internal/client/auth"
	"github.com/criteo/copilot-auth/internal/client/output"
)

var dirsCmd = &cobra.Command{
	Use:   "dirs",
	Short: "List the directories searched for Copilot config files",
	Args:  cobra.NoArgs,
	Run:   runDirs,
}

// dirReport lists which config files exist in one candidate directory
type dirReport struct {
	Dir   string   `json:"dir"`
	Files []string `json:"files"`
}

// buildDirReports checks each directory on fs for hosts.json and apps.json
func buildDirReports(fs afero.Fs, dirs []string) []dirReport {
	reports := make([]dirReport, 0, len(dirs))
	for _, dir := range dirs {
		r := dirReport{Dir: dir, Files: []string{}}
		for _, name := range []string{auth.HostsFile, auth.AppsFile} {
			if _, err := fs.Stat(filepath.Join(dir, name)); err == nil {
				r.Files = append(r.Files, name)
			}
		}
		reports = append(reports, r)
	}
	return reports
}

func runDirs(cmd *cobra.Command, args []string) {
	dirs := auth.CandidateDirs(runtime.GOOS, auth.OSEnvironment{})
	reports := buildDirReports(afero.NewOsFs(), dirs)

	if flagJSON {
		output.OutputJSON(reports, nil)
		return
	}

	tw := output.NewTableWriterTo(cmd.OutOrStdout())
	tw.WriteHeader("DIRECTORY", "FILES")
	for _, r := range reports {
		files := "-"
		if len(r.Files) > 0 {
			files = strings.Join(r.Files, ", ")
		}
		tw.WriteRow(r.Dir, files)
	}
	tw.Flush()
}

func init() {
	rootCmd.AddCommand(dirsCmd)
}
