package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/cubesim/cubesim/internal/storage"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recorded solves, newest first",
	RunE:  runHistory,
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().IntVar(&historyLimit, "limit", 20, "Maximum number of solves to list")
}

func runHistory(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	db, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	solves, err := storage.NewSolveRepository(db).List(historyLimit)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(solves) == 0 {
		fmt.Fprintln(out, "No solves recorded yet.")
		return nil
	}

	for _, s := range solves {
		fmt.Fprintf(out, "%s  %s  scramble %2d moves, solution %3d moves\n",
			s.CreatedAt.Local().Format(time.DateTime), s.SolveID[:8], s.ScrambleCount, s.SolutionCount)
		fmt.Fprintf(out, "    scramble: %s\n", s.Scramble)
		fmt.Fprintf(out, "    solution: %s\n", s.Solution)
	}
	return nil
}
