package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/gabriel-vanca/infoarena/numtheory"
)

// lgputModulus is the fixed modulus of the fast exponentiation task.
const lgputModulus = 1_999_999_973

// lgputCmd runs the fast exponentiation task: a^b mod 1999999973.
func lgputCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lgput",
		Short: "Modular fast exponentiation",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTask("lgput", runLgput)
		},
	}
}

func runLgput(in io.Reader, out io.Writer) error {
	var base, exp uint64
	if _, err := fmt.Fscan(in, &base, &exp); err != nil {
		return fmt.Errorf("reading base and exponent: %w", err)
	}

	result, err := numtheory.PowMod(base, exp, lgputModulus)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, result)

	return err
}
