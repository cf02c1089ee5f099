package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/agbru/questbench/internal/cli"
	apperrors "github.com/agbru/questbench/internal/errors"
	_ "github.com/agbru/questbench/solutions"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := cli.NewRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(apperrors.ExitCodeFor(err))
	}
}
