package textio

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/gabriel-vanca/infoarena/wordchain"
)

// ErrRead is returned when scanning the token source fails.
var ErrRead = errors.New("textio: reading token source failed")

// ReadTokens splits r on whitespace and returns the tokens in input
// order. An empty source yields an empty slice, not an error.
func ReadTokens(r io.Reader) ([]string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)

	var tokens []string
	for scanner.Scan() {
		tokens = append(tokens, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRead, err)
	}

	return tokens, nil
}

// ReadLines splits r on newlines, preserving interior whitespace.
func ReadLines(r io.Reader) ([]string, error) {
	scanner := bufio.NewScanner(r)

	var lines []string
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRead, err)
	}

	return lines, nil
}

// WriteChain emits a scan result in the sink format: total token
// count, excluded token count, then the chain one token per line.
func WriteChain(w io.Writer, res *wordchain.Result) error {
	if _, err := fmt.Fprintf(w, "%d\n%d\n", res.Total, res.Excluded); err != nil {
		return err
	}
	for _, tok := range res.Chain {
		if _, err := fmt.Fprintln(w, tok); err != nil {
			return err
		}
	}

	return nil
}
