package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/gabriel-vanca/infoarena/numtheory"
)

// euclid3Cmd runs the linear Diophantine task: for each (a, b, c)
// print one solution of ax + by = c, or "0 0" when none exists.
func euclid3Cmd() *cobra.Command {
	return &cobra.Command{
		Use:   "euclid3",
		Short: "Solve ax + by = c with Bézout coefficients",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTask("euclid3", runEuclid3)
		},
	}
}

func runEuclid3(in io.Reader, out io.Writer) error {
	var cases int
	if _, err := fmt.Fscan(in, &cases); err != nil {
		return fmt.Errorf("reading case count: %w", err)
	}
	for t := 0; t < cases; t++ {
		var a, b, c int64
		if _, err := fmt.Fscan(in, &a, &b, &c); err != nil {
			return fmt.Errorf("reading case %d: %w", t+1, err)
		}

		x, y, err := numtheory.SolveDiophantine(a, b, c)
		if errors.Is(err, numtheory.ErrNoSolution) {
			x, y = 0, 0
		} else if err != nil {
			return err
		}
		if _, err := fmt.Fprintf(out, "%d %d\n", x, y); err != nil {
			return err
		}
	}

	return nil
}
