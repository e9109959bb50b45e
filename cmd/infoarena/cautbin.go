package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/gabriel-vanca/infoarena/search"
)

// cautbinCmd runs the binary search queries task. Positions in the
// output are 1-indexed, matching the task statement.
func cautbinCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cautbin",
		Short: "Positional queries over a sorted sequence",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTask("cautbin", runCautbin)
		},
	}
}

func runCautbin(in io.Reader, out io.Writer) error {
	var n int
	if _, err := fmt.Fscan(in, &n); err != nil {
		return fmt.Errorf("reading array size: %w", err)
	}
	numbers := make([]int, n)
	for i := range numbers {
		if _, err := fmt.Fscan(in, &numbers[i]); err != nil {
			return fmt.Errorf("reading element %d: %w", i+1, err)
		}
	}

	var queries int
	if _, err := fmt.Fscan(in, &queries); err != nil {
		return fmt.Errorf("reading query count: %w", err)
	}
	for q := 0; q < queries; q++ {
		var kind, value int
		if _, err := fmt.Fscan(in, &kind, &value); err != nil {
			return fmt.Errorf("reading query %d: %w", q+1, err)
		}

		var answer int
		switch kind {
		case 0:
			// last occurrence of value, or -1
			if idx := search.LastIndexOf(numbers, value); idx < 0 {
				answer = -1
			} else {
				answer = idx + 1
			}
		case 1:
			// last position holding a value <= query
			answer = search.LastLessEqual(numbers, value) + 1
		case 2:
			// first position holding a value >= query
			answer = search.FirstGreaterEqual(numbers, value) + 1
		default:
			return fmt.Errorf("query %d: invalid type %d", q+1, kind)
		}
		if _, err := fmt.Fprintln(out, answer); err != nil {
			return err
		}
	}

	return nil
}
