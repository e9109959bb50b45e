package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/gabriel-vanca/infoarena/numtheory"
)

// trialBound covers √lcm/gcd for the task's ceiling of 100'000'000.
const trialBound = 10_100

// divmulCmd runs the gcd/lcm pair counting task.
func divmulCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "divmul",
		Short: "Count pairs with a given gcd and lcm",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTask("divmul", runDivmul)
		},
	}
}

func runDivmul(in io.Reader, out io.Writer) error {
	primes, err := numtheory.Primes(trialBound)
	if err != nil {
		return err
	}

	var cases int
	if _, err = fmt.Fscan(in, &cases); err != nil {
		return fmt.Errorf("reading case count: %w", err)
	}
	for t := 0; t < cases; t++ {
		var gcd, lcm int
		if _, err = fmt.Fscan(in, &gcd, &lcm); err != nil {
			return fmt.Errorf("reading case %d: %w", t+1, err)
		}
		if _, err = fmt.Fprintln(out, numtheory.PairsWithGCDLCM(gcd, lcm, primes)); err != nil {
			return err
		}
	}

	return nil
}
