package cli

import (
	"fmt"
	"math/rand/v2"

	"github.com/spf13/cobra"

	"github.com/cubesim/cubesim"
)

var (
	scrambleMoves int
	scrambleSeed  uint64
)

var scrambleCmd = &cobra.Command{
	Use:   "scramble",
	Short: "Scramble a solved cube and print the sequence",
	Long: `Apply random moves to a solved cube and print the scramble sequence
followed by the resulting cube net. With --seed the scramble is
reproducible.`,
	RunE: runScramble,
}

func init() {
	rootCmd.AddCommand(scrambleCmd)
	scrambleCmd.Flags().IntVar(&scrambleMoves, "moves", 0, "Number of scramble moves (default from CUBESIM_SCRAMBLE_MOVES)")
	scrambleCmd.Flags().Uint64Var(&scrambleSeed, "seed", 0, "Random seed for a reproducible scramble")
}

func runScramble(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger := newLogger(cfg)

	n := scrambleMoves
	if n <= 0 {
		n = cfg.ScrambleMoves
	}

	c := cubesim.New()
	var moves []cubesim.Move
	if cmd.Flags().Changed("seed") {
		moves = cubesim.ScrambleWithRand(c, n, rand.New(rand.NewPCG(scrambleSeed, 0)))
	} else {
		moves = cubesim.Scramble(c, n)
	}
	logger.Debug("scrambled cube", "moves", len(moves))

	fmt.Fprintln(cmd.OutOrStdout(), cubesim.Format(moves))
	fmt.Fprint(cmd.OutOrStdout(), RenderNet(c))
	return nil
}
