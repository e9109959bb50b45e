package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/gabriel-vanca/infoarena/numtheory"
)

// ciurCmd runs the prime counting task.
func ciurCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ciur",
		Short: "Count primes up to N",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTask("ciur", runCiur)
		},
	}
}

func runCiur(in io.Reader, out io.Writer) error {
	var n int
	if _, err := fmt.Fscan(in, &n); err != nil {
		return fmt.Errorf("reading N: %w", err)
	}

	count, err := numtheory.CountPrimes(n)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, count)

	return err
}
