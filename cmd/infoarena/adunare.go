package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

// adunareCmd runs the warm-up addition task.
func adunareCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "adunare",
		Short: "Add two integers",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTask("adunare", runAdunare)
		},
	}
}

func runAdunare(in io.Reader, out io.Writer) error {
	var a, b int64
	if _, err := fmt.Fscan(in, &a, &b); err != nil {
		return fmt.Errorf("reading operands: %w", err)
	}
	_, err := fmt.Fprintln(out, a+b)

	return err
}
