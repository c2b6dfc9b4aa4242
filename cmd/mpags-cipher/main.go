package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"mpags/internal/failure"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cmd := newRootCommand()
	cmd.SetArgs(routeArgs(cmd, os.Args[1:]))
	if err := cmd.ExecuteContext(ctx); err != nil {
		if !errors.Is(err, context.Canceled) {
			reportError(os.Stderr, err)
		}
		stop()
		os.Exit(1)
	}
}

func reportError(w io.Writer, err error) {
	if errors.Is(err, failure.ErrMissingArgument) {
		fmt.Fprintf(w, "[error] Missing argument: %s\n", failure.Message(err))
		return
	}
	fmt.Fprintf(w, "[error] %v\n", err)
}
