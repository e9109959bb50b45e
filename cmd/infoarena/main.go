package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/gabriel-vanca/infoarena/textio"
)

var (
	inPath  string
	outPath string
	profile bool
	verbose bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "infoarena",
	Short: "Runners for the archive tasks",
	Long: `infoarena runs each archive task against its conventional file pair:
input is read from <task>.in and the answer is written to <task>.out,
unless --in/--out point elsewhere.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&inPath, "in", "", "input file (default <task>.in)")
	rootCmd.PersistentFlags().StringVar(&outPath, "out", "", "output file (default <task>.out)")
	rootCmd.PersistentFlags().BoolVar(&profile, "profile", false, "print elapsed wall time to stderr")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "print per-token diagnostics to stderr")

	rootCmd.AddCommand(
		text3Cmd(),
		text4Cmd(),
		ciurCmd(),
		divmulCmd(),
		cautbinCmd(),
		euclid3Cmd(),
		lgputCmd(),
		bfsCmd(),
		adunareCmd(),
	)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "ERROR:", err)
		os.Exit(1)
	}
}

// runTask resolves the task's file pair, hands buffered handles to fn,
// and reports the elapsed wall time when --profile is set.
func runTask(task string, fn func(in io.Reader, out io.Writer) error) error {
	start := time.Now()

	inName, outName := inPath, outPath
	if inName == "" {
		inName = task + ".in"
	}
	if outName == "" {
		outName = task + ".out"
	}

	src, err := textio.OpenInput(inName)
	if err != nil {
		return err
	}
	defer src.Close()

	dst, err := textio.CreateOutput(outName)
	if err != nil {
		return err
	}
	buffered := bufio.NewWriter(dst)

	if err = fn(bufio.NewReader(src), buffered); err == nil {
		err = buffered.Flush()
	}
	if closeErr := dst.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return fmt.Errorf("%s: %w", task, err)
	}

	if profile {
		fmt.Fprintf(os.Stderr, "%s: %s\n", task, time.Since(start))
	}

	return nil
}
