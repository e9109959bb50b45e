// Package main provides end-to-end tests for the task runners.
package main

import (
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run feeds input through a task runner and returns its output text.
func run(t *testing.T, fn func(in io.Reader, out io.Writer) error, input string) string {
	t.Helper()

	var sb strings.Builder
	require.NoError(t, fn(strings.NewReader(input), &sb))

	return sb.String()
}

func TestRunText3(t *testing.T) {
	got := run(t, runText3, "dog goose emu cat unicorn newt\n")
	assert.Equal(t, "6\n1\ndog\ngoose\nemu\nunicorn\nnewt\n", got)
}

func TestRunText3_NoChain(t *testing.T) {
	got := run(t, runText3, "1a a2 33\n")
	assert.Equal(t, "3\n3\n", got)
}

func TestRunText4(t *testing.T) {
	got := run(t, runText4, "10\naa bb cc dd\n")
	assert.Equal(t, "aa  bb  cc\ndd\n", got)
}

func TestRunCiur(t *testing.T) {
	assert.Equal(t, "25\n", run(t, runCiur, "100\n"))
}

func TestRunDivmul(t *testing.T) {
	got := run(t, runDivmul, "3\n2 12\n7 7\n4 6\n")
	assert.Equal(t, "4\n1\n0\n", got)
}

func TestRunCautbin(t *testing.T) {
	// positions are 1-indexed in the output
	got := run(t, runCautbin, "5\n1 2 2 5 7\n4\n0 2\n0 4\n1 4\n2 4\n")
	assert.Equal(t, "3\n-1\n3\n4\n", got)
}

func TestRunEuclid3(t *testing.T) {
	got := run(t, runEuclid3, "2\n4 6 7\n3 5 7\n")
	lines := strings.Split(strings.TrimSpace(got), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "0 0", lines[0])

	var x, y int64
	_, err := fmt.Sscan(lines[1], &x, &y)
	require.NoError(t, err)
	assert.Equal(t, int64(7), 3*x+5*y)
}

func TestRunLgput(t *testing.T) {
	assert.Equal(t, "1024\n", run(t, runLgput, "2 10\n"))
}

func TestRunBFS(t *testing.T) {
	got := run(t, runBFS, "4 3 1\n1 2\n2 3\n3 4\n")
	assert.Equal(t, "0 1 2 3\n", got)
}

func TestRunAdunare(t *testing.T) {
	assert.Equal(t, "7\n", run(t, runAdunare, "3 4\n"))
}
