package app

import (
	"context"
	"io"
	"log/slog"

	"github.com/shandysiswandi/passcode/internal/passcode/inbound"
	"github.com/shandysiswandi/passcode/internal/pkg/clock"
	"github.com/shandysiswandi/passcode/internal/pkg/config"
	"github.com/shandysiswandi/passcode/internal/pkg/instrument"
	"github.com/shandysiswandi/passcode/internal/pkg/otp"
	"github.com/shandysiswandi/passcode/internal/pkg/uid"
	"github.com/shandysiswandi/passcode/internal/pkg/validator"
)

// App wires dependencies and manages the command lifecycle.
type App struct {
	stdout io.Writer
	stderr io.Writer

	// configuration
	config config.Config
	ins    instrument.Instrumentation

	// libraries
	validator validator.Validator
	clock     clock.Clocker
	uuid      uid.StringID
	otp       otp.OTP

	// command
	command *inbound.Command

	//
	closers []struct {
		name string
		fn   func(context.Context) error
	}
}

// New initializes the application. Codes are written to stdout, logs and
// error reports to stderr.
func New(stdout, stderr io.Writer) (*App, error) {
	app := &App{
		stdout: stdout,
		stderr: stderr,
	}

	steps := []func() error{
		app.initConfig,
		app.initInstrument,
		app.initLibraries,
		app.initModules,
	}
	for _, step := range steps {
		if err := step(); err != nil {
			app.Stop(context.Background())
			return nil, err
		}
	}

	return app, nil
}

// Run executes the command with args under a fresh correlation ID.
func (a *App) Run(ctx context.Context, args []string) error {
	ctx = instrument.SetCorrelationID(ctx, a.uuid.Generate())

	if err := a.command.Run(ctx, args); err != nil {
		slog.DebugContext(ctx, "command failed", "error", err)
		inbound.WriteError(a.stderr, err)
		return err
	}

	return nil
}

// Stop flushes telemetry and closes resources in reverse order of creation.
func (a *App) Stop(ctx context.Context) {
	for i := len(a.closers) - 1; i >= 0; i-- {
		closer := a.closers[i]
		if err := closer.fn(ctx); err != nil {
			slog.ErrorContext(ctx, "failed to close resources", "name", closer.name, "error", err)
		}
	}
	a.closers = nil
}

func (a *App) addCloser(name string, fn func(context.Context) error) {
	a.closers = append(a.closers, struct {
		name string
		fn   func(context.Context) error
	}{name: name, fn: fn})
}
