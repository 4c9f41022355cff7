package cmd

import (
	"errors"
	"fmt"
	"github.com/spf13/cobra"
	"github.com/they4kman/gomaze/game"
	"io"
	"os"
)

var errNotPerfect = errors.New("maze is not perfect")

var verifyCmd = &cobra.Command{
	Use:   "verify FILE",
	Short: "Check that a YAML maze snapshot is a perfect maze",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		in, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}
		return verify(cmd.OutOrStdout(), string(in))
	},
}

func verify(out io.Writer, in string) error {
	snapshot, err := game.LoadSnapshot(in)
	if err != nil {
		return fmt.Errorf("loading snapshot: %w", err)
	}

	buffer, err := snapshot.Buffer()
	if err != nil {
		return err
	}

	topology := game.Analyze(buffer, snapshot.Config())
	fmt.Fprintf(out, "%dx%d maze, seed %d: %d open cells, %d passages, %d connected regions\n",
		snapshot.Width, snapshot.Height, snapshot.Seed, topology.Cells, topology.Edges, topology.Components)

	if snapshot.Start != nil && snapshot.End != nil {
		route := game.FindRoute(buffer, snapshot.Config(), *snapshot.Start, *snapshot.End)
		if route == nil {
			return fmt.Errorf("%w: no route from %v to %v", errNotPerfect, *snapshot.Start, *snapshot.End)
		}
		fmt.Fprintf(out, "route from %v to %v: %d steps\n", *snapshot.Start, *snapshot.End, len(route)-1)
	}

	if !topology.Perfect() {
		return errNotPerfect
	}
	fmt.Fprintln(out, "perfect")
	return nil
}

func init() {
	rootCmd.AddCommand(verifyCmd)
}
