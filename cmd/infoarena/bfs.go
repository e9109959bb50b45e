package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gabriel-vanca/infoarena/graphs"
)

// bfsCmd runs the hop distance task: distances from a source vertex to
// every vertex of a directed graph, -1 for unreachable ones.
func bfsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "bfs",
		Short: "Hop distances from a source vertex",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTask("bfs", runBFS)
		},
	}
}

func runBFS(in io.Reader, out io.Writer) error {
	var n, m, source int
	if _, err := fmt.Fscan(in, &n, &m, &source); err != nil {
		return fmt.Errorf("reading header: %w", err)
	}

	edges := make([]graphs.Edge, m)
	for i := range edges {
		if _, err := fmt.Fscan(in, &edges[i].From, &edges[i].To); err != nil {
			return fmt.Errorf("reading edge %d: %w", i+1, err)
		}
	}

	dist, err := graphs.BFSDistances(n, edges, source)
	if err != nil {
		return err
	}

	fields := make([]string, len(dist))
	for i, d := range dist {
		fields[i] = strconv.Itoa(d)
	}
	_, err = fmt.Fprintln(out, strings.Join(fields, " "))

	return err
}
