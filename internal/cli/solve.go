package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cubesim/cubesim"
	"github.com/cubesim/cubesim/internal/storage"
	"github.com/cubesim/cubesim/solver"
)

var solveScramble string

var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Solve a scrambled cube and print the solution",
	Long: `Apply a scramble to a solved cube, run the layer-by-layer solver, and
print the solution. Without --scramble a random scramble is used. The
solve is recorded in the history database.`,
	RunE: runSolve,
}

func init() {
	rootCmd.AddCommand(solveCmd)
	solveCmd.Flags().StringVar(&solveScramble, "scramble", "", "Scramble sequence in standard notation")
}

func runSolve(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger := newLogger(cfg)

	c := cubesim.New()
	var scramble []cubesim.Move
	if solveScramble != "" {
		scramble, err = cubesim.Parse(solveScramble)
		if err != nil {
			return err
		}
		c.ApplyAll(scramble)
	} else {
		scramble = cubesim.Scramble(c, cfg.ScrambleMoves)
	}

	solution := solver.Solve(c)
	if !c.IsSolved() {
		return fmt.Errorf("solver did not reach the solved state")
	}
	logger.Debug("solved cube", "scramble_moves", len(scramble), "solution_moves", len(solution))

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Scramble: %s\n", cubesim.Format(scramble))
	fmt.Fprintf(out, "Solution: %s\n", cubesim.Format(solution))
	fmt.Fprintf(out, "Solved in %d moves\n", len(solution))

	if db, err := openStore(cfg); err != nil {
		logger.Warn("solve history unavailable", "error", err)
	} else {
		defer db.Close()
		repo := storage.NewSolveRepository(db)
		id, err := repo.Create(cubesim.Format(scramble), cubesim.Format(solution), len(scramble), len(solution))
		if err != nil {
			logger.Warn("could not record solve", "error", err)
		} else {
			logger.Debug("recorded solve", "id", id)
		}
	}

	return nil
}
