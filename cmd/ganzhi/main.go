package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/matzehuels/ganzhi/internal/cli"
	gzerrors "github.com/matzehuels/ganzhi/pkg/errors"
)

// Exit codes.
const (
	exitOK          = 0
	exitFailure     = 1   // internal errors, rendering failures
	exitInput       = 2   // bad symbols, charts, flags or unsupported years
	exitInterrupted = 130 // SIGINT, as shells report it
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:])
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string) int {
	root := cli.New(os.Stderr, cli.LogInfo).RootCommand()
	root.SetArgs(args)

	err := root.ExecuteContext(ctx)
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, context.Canceled):
		return exitInterrupted
	}
	cli.ReportError(os.Stderr, err)
	return exitCode(err)
}

func exitCode(err error) int {
	switch gzerrors.GetCode(err) {
	case "", gzerrors.ErrCodeInternal:
		return exitFailure
	}
	return exitInput
}
