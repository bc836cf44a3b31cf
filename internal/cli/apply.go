package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cubesim/cubesim"
)

var applyCmd = &cobra.Command{
	Use:   `apply "MOVES"`,
	Short: "Apply a move sequence to a solved cube and show the result",
	Args:  cobra.ExactArgs(1),
	RunE:  runApply,
}

func init() {
	rootCmd.AddCommand(applyCmd)
}

func runApply(cmd *cobra.Command, args []string) error {
	moves, err := cubesim.Parse(args[0])
	if err != nil {
		return err
	}

	c := cubesim.New()
	c.ApplyAll(moves)

	out := cmd.OutOrStdout()
	fmt.Fprint(out, RenderNet(c))
	fmt.Fprintf(out, "Phase: %s\n", c.DetectPhase())
	return nil
}
