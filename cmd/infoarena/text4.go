package main

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gabriel-vanca/infoarena/textio"
	"github.com/gabriel-vanca/infoarena/textwrap"
)

// text4Cmd runs the line justification task: the first input line is
// the width, every following line is wrapped independently.
func text4Cmd() *cobra.Command {
	return &cobra.Command{
		Use:   "text4",
		Short: "Justify text to a fixed line width",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTask("text4", runText4)
		},
	}
}

func runText4(in io.Reader, out io.Writer) error {
	lines, err := textio.ReadLines(in)
	if err != nil {
		return err
	}
	if len(lines) == 0 {
		return errors.New("missing width header")
	}
	width, err := strconv.Atoi(strings.TrimSpace(lines[0]))
	if err != nil {
		return fmt.Errorf("bad width %q: %w", lines[0], err)
	}

	wrapped, err := textwrap.Justify(lines[1:], width)
	if err != nil {
		return err
	}
	for _, line := range wrapped {
		if _, err = fmt.Fprintln(out, line); err != nil {
			return err
		}
	}

	return nil
}
