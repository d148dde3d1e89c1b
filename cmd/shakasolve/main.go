// Command shakasolve reads a text-format Shakashaka puzzle and prints every
// solution it finds.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/shakashaka/solver/shakatext"
	"github.com/shakashaka/solver/solver"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "shakasolve:", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("shakasolve", flag.ExitOnError)
	threads := fs.Int("threads", 0, "maximum search goroutines (default: min(NumCPU, 100))")
	verbose := fs.Bool("verbose", false, "log each branch attempt")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if fs.NArg() != 1 {
		return errors.New("usage: shakasolve [-threads N] [-verbose] <puzzle-file>")
	}

	f, err := os.Open(fs.Arg(0))
	if err != nil {
		return err
	}
	defer f.Close()

	board, err := shakatext.Load(f)
	if err != nil {
		return err
	}

	var opts []solver.Option
	if *threads > 0 {
		opts = append(opts, solver.WithMaxThreads(*threads))
	}
	if *verbose {
		opts = append(opts, solver.WithVerbose())
	}

	s, err := solver.New(board, opts...)
	if err != nil {
		return err
	}

	solutions, err := s.Solve(context.Background())
	if err != nil {
		return err
	}

	if len(solutions) == 0 {
		fmt.Println("no solutions found")
		return nil
	}

	for i, sol := range solutions {
		fmt.Printf("solution %d:\n", i+1)
		if err := shakatext.Print(os.Stdout, sol); err != nil {
			return err
		}
		fmt.Println()
	}
	return nil
}
