package app

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/ridersearch/internal/config"
	"github.com/blackwell-systems/ridersearch/internal/output"
	"github.com/blackwell-systems/ridersearch/internal/rider"
)

var doctorFlagJSON bool

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check whether Rider session history can be read",
	Long: `Run a series of health checks against the home directory and the
Rider installations found in it. Prints a pass/fail line for each check
and a summary of how many checks passed.`,
	Args: cobra.NoArgs,
	RunE: runDoctor,
}

func init() {
	doctorCmd.Flags().BoolVar(&doctorFlagJSON, "json", false, "Output as JSON")
	rootCmd.AddCommand(doctorCmd)
}

// doctorCheck holds the result of a single health check.
type doctorCheck struct {
	Name    string `json:"name"`
	Passed  bool   `json:"passed"`
	Message string `json:"message"`
}

// doctorOutput is the JSON-serializable result of the doctor command.
type doctorOutput struct {
	Checks        []doctorCheck        `json:"checks"`
	Installations []rider.Installation `json:"installations"`
	PassedCount   int                  `json:"passed"`
	TotalCount    int                  `json:"total"`
}

func runDoctor(cmd *cobra.Command, args []string) error {
	var checks []doctorCheck

	checks = append(checks, checkConfigFile(flagConfig))
	checks = append(checks, checkHome(cfg.Home))

	installs, installCheck := checkInstallations(cfg.Home, cfg.Pattern, cfg.SessionFile)
	checks = append(checks, installCheck)

	// The remaining checks only make sense against the newest installation.
	if len(installs) > 0 {
		newest := installs[0]
		checks = append(checks, checkSessionFile(newest))
		if newest.HasSessionFile {
			entries, parseCheck := checkSessionParse(newest.SessionFile)
			checks = append(checks, parseCheck)
			if parseCheck.Passed {
				checks = append(checks, checkSolutions(cmd, newest.SessionFile, entries))
			}
		}
	}

	passed := 0
	for _, c := range checks {
		if c.Passed {
			passed++
		}
	}

	w := cmd.OutOrStdout()
	if doctorFlagJSON {
		return output.WriteIndentedJSON(w, doctorOutput{
			Checks:        checks,
			Installations: installs,
			PassedCount:   passed,
			TotalCount:    len(checks),
		})
	}

	fmt.Fprintln(w, output.Section("Doctor"))
	fmt.Fprintln(w)
	for _, c := range checks {
		renderDoctorCheck(w, c)
	}
	fmt.Fprintln(w)

	summary := fmt.Sprintf("%d/%d checks passed", passed, len(checks))
	if passed == len(checks) {
		fmt.Fprintf(w, " %s\n\n", output.StyleSuccess.Render(summary))
	} else {
		fmt.Fprintf(w, " %s\n\n", output.StyleWarning.Render(summary))
	}
	return nil
}

// renderDoctorCheck prints a single check result line.
func renderDoctorCheck(w io.Writer, c doctorCheck) {
	var indicator string
	if c.Passed {
		indicator = output.StyleSuccess.Render("✓")
	} else {
		indicator = output.StyleWarning.Render("✗")
	}
	label := output.StyleBold.Render(c.Name)
	detail := output.StyleMuted.Render(c.Message)
	fmt.Fprintf(w, "  %s  %-30s %s\n", indicator, label, detail)
}

// checkConfigFile reports which configuration file is in effect. Running on
// defaults is not a failure.
func checkConfigFile(cfgFile string) doctorCheck {
	path := cfgFile
	if path == "" {
		path = filepath.Join(config.ConfigDir(), config.DefaultConfigFile)
	}
	if _, err := os.Stat(path); err != nil {
		return doctorCheck{
			Name:    "Config file",
			Passed:  true,
			Message: fmt.Sprintf("using defaults (%s not found)", path),
		}
	}
	return doctorCheck{
		Name:    "Config file",
		Passed:  true,
		Message: path,
	}
}

// checkHome verifies that home exists and is a directory.
func checkHome(home string) doctorCheck {
	info, err := os.Stat(home)
	if err != nil {
		return doctorCheck{
			Name:    "Home directory",
			Passed:  false,
			Message: fmt.Sprintf("not found: %s", home),
		}
	}
	if !info.IsDir() {
		return doctorCheck{
			Name:    "Home directory",
			Passed:  false,
			Message: fmt.Sprintf("path exists but is not a directory: %s", home),
		}
	}
	return doctorCheck{
		Name:    "Home directory",
		Passed:  true,
		Message: home,
	}
}

// checkInstallations lists Rider configuration directories under home.
func checkInstallations(home, pattern, rel string) ([]rider.Installation, doctorCheck) {
	installs, err := rider.ListInstallations(home, pattern, rel)
	if err != nil {
		return nil, doctorCheck{
			Name:    "Rider installations",
			Passed:  false,
			Message: fmt.Sprintf("error listing %s: %v", pattern, err),
		}
	}
	if len(installs) == 0 {
		return nil, doctorCheck{
			Name:    "Rider installations",
			Passed:  false,
			Message: fmt.Sprintf("no %s directory in %s", pattern, home),
		}
	}
	return installs, doctorCheck{
		Name:    "Rider installations",
		Passed:  true,
		Message: fmt.Sprintf("%d found, newest %s", len(installs), installs[0].Name),
	}
}

// checkSessionFile verifies that the newest installation has a session history.
func checkSessionFile(newest rider.Installation) doctorCheck {
	if !newest.HasSessionFile {
		return doctorCheck{
			Name:    "Session history",
			Passed:  false,
			Message: fmt.Sprintf("not found: %s", newest.SessionFile),
		}
	}
	return doctorCheck{
		Name:    "Session history",
		Passed:  true,
		Message: newest.SessionFile,
	}
}

// checkSessionParse verifies that the session history parses and returns
// its stored entries.
func checkSessionParse(path string) ([]string, doctorCheck) {
	entries, err := rider.ParseSessionHistoryFile(path)
	if err != nil {
		return nil, doctorCheck{
			Name:    "Session history parse",
			Passed:  false,
			Message: fmt.Sprintf("parse error: %v", err),
		}
	}
	return entries, doctorCheck{
		Name:    "Session history parse",
		Passed:  true,
		Message: fmt.Sprintf("%d recent paths listed", len(entries)),
	}
}

// checkSolutions verifies that the listed entries resolve to solutions.
func checkSolutions(cmd *cobra.Command, path string, entries []string) doctorCheck {
	recent, err := newFinder().FindIn(cmd.Context(), path)
	if err != nil {
		return doctorCheck{
			Name:    "Recent solutions",
			Passed:  false,
			Message: fmt.Sprintf("error reading solutions: %v", err),
		}
	}
	if len(recent) == 0 {
		return doctorCheck{
			Name:    "Recent solutions",
			Passed:  false,
			Message: fmt.Sprintf("none of %d listed paths exist", len(entries)),
		}
	}
	return doctorCheck{
		Name:    "Recent solutions",
		Passed:  true,
		Message: fmt.Sprintf("%d of %d listed paths resolve", len(recent), len(entries)),
	}
}
