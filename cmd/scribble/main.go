package main

import (
	"context"
	"errors"
	"flag"
	"io"
	"os"
	"slices"

	"github.com/osse101/scribble/internal/bootstrap"
	"github.com/osse101/scribble/internal/config"
	"github.com/osse101/scribble/internal/domain"
)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run executes one command and returns the process exit code
func run(ctx context.Context, args []string, in io.Reader, out, errOut io.Writer) int {
	cfg, err := config.Load()
	if err != nil {
		printError(errOut, "Invalid configuration: %v", err)
		return 2
	}
	bootstrap.SetupLogger(cfg, errOut)

	e := &env{app: bootstrap.NewApp(cfg), out: out, in: in}
	registry := newRegistry(e)

	if len(args) == 0 || args[0] == "help" || args[0] == "-h" || args[0] == "--help" {
		registry.PrintHelp(out)
		if len(args) == 0 {
			return 1
		}
		return 0
	}

	cmd, ok := registry.Get(args[0])
	if !ok {
		printError(errOut, "Unknown command: %s", args[0])
		registry.PrintHelp(errOut)
		return 1
	}

	if err := cmd.Run(ctx, args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		reportError(errOut, err)
		return 1
	}
	return 0
}

func newRegistry(e *env) *Registry {
	r := NewRegistry()
	r.Register(&AddItemCommand{e: e})
	r.Register(&RemoveItemCommand{e: e})
	r.Register(&AddEnemyCommand{e: e})
	r.Register(&RollCommand{e: e})
	r.Register(&SearchCommand{e: e})
	r.Register(&ListCommand{e: e})
	r.Register(&StatCommand{e: e})
	r.Register(&ExportCommand{e: e})
	r.Register(&CheckCommand{e: e})
	r.Register(&ServeCommand{e: e})
	r.Register(&ShellCommand{e: e})
	return r
}

// userMessage turns a service error into the line shown to the user
func userMessage(err error) string {
	switch {
	case errors.Is(err, domain.ErrRecordNotFound):
		return "No record with that name"
	case errors.Is(err, domain.ErrItemNotFound):
		return "No item with that name"
	}
	return err.Error()
}

// reportError prints a failed command. Misses are warnings, everything else an error.
func reportError(w io.Writer, err error) {
	if domain.IsNotFound(err) {
		printWarning(w, "%s", userMessage(err))
		return
	}
	printError(w, "%s", userMessage(err))
}

func sortedUnique(words []string) []string {
	out := slices.Clone(words)
	slices.Sort(out)
	return slices.Compact(out)
}
