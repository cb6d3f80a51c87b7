// Command georoute loads a road graph and answers shortest-path queries from
// the command line or over HTTP.
//
//	georoute route   --graph roads.txt --algorithm astar --from 59.91,30.49 --to 59.95,30.30
//	georoute compare --synthetic grid:200x200
//	georoute serve   --config georoute.yaml
//	georoute stats   --graph roads.txt
//	georoute export  --synthetic random:500:0.02 --out roads.txt
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
)

func main() {
	// Minimal logger until the configured one replaces it.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	if err := run(os.Stdout, os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "georoute:", err)
		os.Exit(1)
	}
}

// run executes the CLI with args, writing command output to out.
func run(out io.Writer, args []string) error {
	cmd := newRootCmd(out)
	cmd.SetArgs(args)

	return cmd.Execute()
}
