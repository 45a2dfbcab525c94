package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"ui_automation/presentation/terminal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := terminal.NewRootCommand(os.Stdin, os.Stdout).ExecuteContext(ctx)
	if err == nil {
		return
	}
	if !errors.Is(err, terminal.ErrScenariosFailed) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	stop()
	os.Exit(1)
}
