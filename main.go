package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/shandysiswandi/passcode/internal/app"
	"github.com/shandysiswandi/passcode/internal/passcode/inbound"
	"github.com/shandysiswandi/passcode/internal/pkg/goerror"
)

func main() {
	application, err := app.New(os.Stdout, os.Stderr) // Initialize the application
	if err != nil {
		inbound.WriteError(os.Stderr, err)
		os.Exit(goerror.ExitCode(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	runErr := application.Run(ctx, os.Args[1:]) // Generate and print the codes
	stop()

	stopCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	application.Stop(stopCtx) // Flush telemetry and close resources
	cancel()

	os.Exit(goerror.ExitCode(runErr))
}
