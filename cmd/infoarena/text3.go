package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/gabriel-vanca/infoarena/textio"
	"github.com/gabriel-vanca/infoarena/wordchain"
)

// text3Cmd runs the longest word-chain task.
func text3Cmd() *cobra.Command {
	return &cobra.Command{
		Use:   "text3",
		Short: "Longest letter-linked word chain",
		Long: `Reads whitespace-delimited words and reports the total word count,
the number of words outside the best chain, and the chain itself, one
word per line. Words whose boundary characters are not letters are
skipped and only counted toward the total.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTask("text3", runText3)
		},
	}
}

func runText3(in io.Reader, out io.Writer) error {
	tokens, err := textio.ReadTokens(in)
	if err != nil {
		return err
	}

	var opts []wordchain.Option
	if verbose {
		opts = append(opts, wordchain.WithOnInvalid(func(tok string) {
			fmt.Fprintf(os.Stderr, "invalid word: %s\n", tok)
		}))
	}

	res, err := wordchain.Longest(tokens, opts...)
	if errors.Is(err, wordchain.ErrNoChain) {
		// No chain at all: every token counts as excluded.
		_, werr := fmt.Fprintf(out, "%d\n%d\n", len(tokens), len(tokens))

		return werr
	}
	if err != nil {
		return err
	}

	return textio.WriteChain(out, res)
}
