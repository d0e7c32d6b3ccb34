package app

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/ridersearch/internal/output"
	"github.com/blackwell-systems/ridersearch/internal/rider"
)

var (
	listFlagSort string
	listFlagJSON bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Show recent solutions as a table",
	Long: `List prints the recent solutions of the newest Rider installation
as a table of names and paths. Solutions whose path no longer exists are
omitted, exactly as in the JSON output.`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func init() {
	listCmd.Flags().StringVar(&listFlagSort, "sort", "name", "Sort by: name, path")
	listCmd.Flags().BoolVar(&listFlagJSON, "json", false, "Output as JSON")

	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	if listFlagSort != "name" && listFlagSort != "path" {
		return fmt.Errorf("invalid --sort %q: want name or path", listFlagSort)
	}

	recent, err := newFinder().Find(cmd.Context())
	if err != nil {
		return err
	}

	if listFlagJSON {
		return output.WriteJSON(cmd.OutOrStdout(), recent)
	}

	solutions := sortSolutions(recent, listFlagSort)
	w := cmd.OutOrStdout()
	if len(solutions) == 0 {
		_, err := fmt.Fprintln(w, output.StyleMuted.Render("No recent solutions."))
		return err
	}

	tbl := output.NewTable("NAME", "PATH")
	tbl.SetMaxColumnWidth(60)
	for _, s := range solutions {
		tbl.AddRow(s.Name, s.Path)
	}
	if err := tbl.Fprint(w); err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "\n%s\n", output.StyleMuted.Render(fmt.Sprintf("%d solutions", tbl.Len())))
	return err
}

// sortSolutions flattens recent into a slice ordered by key, breaking ties
// by ID so output is stable.
func sortSolutions(recent rider.RecentSolutions, key string) []rider.Solution {
	solutions := make([]rider.Solution, 0, len(recent))
	for _, s := range recent {
		solutions = append(solutions, s)
	}

	sort.Slice(solutions, func(i, j int) bool {
		a, b := solutions[i], solutions[j]
		switch key {
		case "path":
			if a.Path != b.Path {
				return a.Path < b.Path
			}
		default:
			if a.Name != b.Name {
				return a.Name < b.Name
			}
		}
		return a.ID < b.ID
	})
	return solutions
}
