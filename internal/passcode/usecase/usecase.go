package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/shandysiswandi/passcode/internal/pkg/config"
	"github.com/shandysiswandi/passcode/internal/pkg/goerror"
	"github.com/shandysiswandi/passcode/internal/pkg/instrument"
	"github.com/shandysiswandi/passcode/internal/pkg/otp"
	"github.com/shandysiswandi/passcode/internal/pkg/uid"
	"github.com/shandysiswandi/passcode/internal/pkg/validator"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	"go.opentelemetry.io/otel/trace"
)

// DefaultMaxBatch caps Count when otp.max_batch is not configured.
const DefaultMaxBatch = 1000

type Usecase struct {
	otp       otp.OTP
	validator validator.Validator
	cfg       config.Config
	uuid      uid.StringID
	ins       instrument.Instrumentation
	generated metric.Int64Counter
}

type Dependency struct {
	OTP        otp.OTP
	Validator  validator.Validator
	Config     config.Config
	UUID       uid.StringID
	Instrument instrument.Instrumentation
}

func New(dep Dependency) *Usecase {
	counter, err := dep.Instrument.Meter("passcode.usecase").Int64Counter(
		"otp.generated",
		metric.WithDescription("Number of one-time passcodes generated"),
		metric.WithUnit("{code}"),
	)
	if err != nil {
		slog.Warn("failed to create otp.generated counter, metrics disabled", "error", err)
		counter = noop.Int64Counter{}
	}

	return &Usecase{
		otp:       dep.OTP,
		validator: dep.Validator,
		cfg:       dep.Config,
		uuid:      dep.UUID,
		ins:       dep.Instrument,
		generated: counter,
	}
}

func (s *Usecase) startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return s.ins.Tracer("passcode.usecase").Start(ctx, name)
}

// mapOTPError classifies errors coming out of the otp package. Configuration
// problems are the caller's fault; anything else comes from the random source.
func mapOTPError(ctx context.Context, err error) error {
	switch {
	case errors.Is(err, otp.ErrInvalidLength),
		errors.Is(err, otp.ErrInvalidExpirationFormat),
		errors.Is(err, otp.ErrInvalidExpirationType),
		errors.Is(err, otp.ErrExpirationOutOfRange),
		errors.Is(err, otp.ErrEmptyPool):
		return goerror.NewInvalidInput(err)

	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return goerror.NewUnavailable(err, "generation canceled")

	default:
		slog.ErrorContext(ctx, "failed to draw from random source", "error", err)
		return goerror.NewUnavailable(err, "random source failed")
	}
}
