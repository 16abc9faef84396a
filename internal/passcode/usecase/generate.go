package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/samber/lo"
	"github.com/shandysiswandi/passcode/internal/passcode/entity"
	"github.com/shandysiswandi/passcode/internal/pkg/goerror"
	"github.com/shandysiswandi/passcode/internal/pkg/goroutine"
	"github.com/shandysiswandi/passcode/internal/pkg/otp"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/atomic"
)

// Classes selects the built-in character classes explicitly.
type Classes struct {
	Digits       bool
	LowerCase    bool
	UpperCase    bool
	SpecialChars bool
}

type GenerateInput struct {
	// Preset fixes the character classes. It cannot be combined with CustomChars.
	Preset string `validate:"omitempty,preset"`
	// Length overrides the preset or default length when set.
	Length *int
	// Classes, when set, replaces the preset configured under otp.default_preset.
	// It cannot be combined with Preset.
	Classes *Classes
	// CustomChars replaces every class when set.
	CustomChars string `validate:"omitempty,charset,excluded_with=Preset"`
	// ExpiresIn is a number of seconds or a spec string like "5m". Nil falls
	// back to otp.default_expires_in.
	ExpiresIn any
	// Count is the number of codes; zero means one.
	Count int `validate:"gte=0"`
}

func (s *Usecase) Generate(ctx context.Context, in GenerateInput) (*entity.Batch, error) {
	ctx, span := s.startSpan(ctx, "Generate")
	defer span.End()

	in.Preset = strings.TrimSpace(strings.ToLower(in.Preset))

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	if in.Preset != "" && in.Classes != nil {
		return nil, goerror.NewInvalidInput(nil, "classes", "classes cannot be combined with preset")
	}

	count := lo.Ternary(in.Count == 0, 1, in.Count)
	maxBatch := lo.Ternary(s.cfg.GetInt("otp.max_batch") > 0, s.cfg.GetInt("otp.max_batch"), DefaultMaxBatch)
	if count > maxBatch {
		slog.WarnContext(ctx, "batch size above limit", "count", count, "max_batch", maxBatch)
		return nil, goerror.NewBusiness(fmt.Sprintf("count must be %d or less", maxBatch), goerror.CodeInvalidInput)
	}

	cfg, source, err := s.resolveConfig(in)
	if err != nil {
		return nil, err
	}

	span.SetAttributes(
		attribute.String("otp.source", source),
		attribute.Int("otp.length", cfg.Length),
		attribute.Int("otp.count", count),
	)

	// The first code is drawn inline so an invalid configuration fails once
	// instead of once per goroutine.
	first, err := s.otp.Generate(cfg)
	if err != nil {
		return nil, mapOTPError(ctx, err)
	}

	codes := make([]entity.Passcode, count)
	codes[0] = toPasscode(first)
	generated := atomic.NewInt64(1)

	if count > 1 {
		mgr := goroutine.NewManager(s.cfg.GetInt("app.max_goroutine"))
		for i := 1; i < count; i++ {
			mgr.Go(ctx, func(context.Context) error {
				res, err := s.otp.Generate(cfg)
				if err != nil {
					return err
				}

				codes[i] = toPasscode(res)
				generated.Inc()
				return nil
			})
		}

		if err := mgr.Wait(); err != nil {
			return nil, mapOTPError(ctx, err)
		}
	}

	s.generated.Add(ctx, generated.Load(), metric.WithAttributes(attribute.String("source", source)))

	batch := &entity.Batch{
		ID:     s.uuid.Generate(),
		Source: source,
		Length: cfg.Length,
		Codes:  codes,
	}

	slog.InfoContext(ctx, "passcodes generated",
		"batch_id", batch.ID,
		"source", source,
		"length", cfg.Length,
		"count", count,
		"expiring", cfg.ExpiresIn != nil,
	)

	return batch, nil
}

// resolveConfig picks the generation settings. An explicit preset wins, then
// explicit classes or custom characters, then otp.default_preset, then the
// six-digit default.
func (s *Usecase) resolveConfig(in GenerateInput) (otp.Config, string, error) {
	var opts []otp.Option

	if in.Length != nil {
		opts = append(opts, otp.WithLength(*in.Length))
	}

	rawExpiry := in.ExpiresIn
	if rawExpiry == nil && strings.TrimSpace(s.cfg.GetString("otp.default_expires_in")) != "" {
		rawExpiry = s.cfg.Get("otp.default_expires_in")
	}

	expiry, err := otp.ExpirationFromValue(rawExpiry)
	if err != nil {
		return otp.Config{}, "", goerror.NewInvalidInput(err)
	}
	if expiry != nil {
		opts = append(opts, otp.WithExpiration(*expiry))
	}

	presetName := in.Preset
	if presetName == "" && in.Classes == nil && in.CustomChars == "" {
		presetName = strings.TrimSpace(strings.ToLower(s.cfg.GetString("otp.default_preset")))
	}

	if presetName != "" {
		preset, ok := lo.Find(otp.Presets(), func(p otp.Preset) bool { return p.Name == presetName })
		if !ok {
			return otp.Config{}, "", goerror.NewInvalidInput(nil, "preset", fmt.Sprintf("unknown preset %q", presetName))
		}

		return preset.Config(opts...), preset.Name, nil
	}

	if in.Classes != nil {
		opts = append(opts,
			otp.WithDigits(in.Classes.Digits),
			otp.WithLowerCase(in.Classes.LowerCase),
			otp.WithUpperCase(in.Classes.UpperCase),
			otp.WithSpecialChars(in.Classes.SpecialChars),
		)
	}
	if in.CustomChars != "" {
		opts = append(opts, otp.WithCustomChars(in.CustomChars))
	}

	source := lo.Ternary(in.Classes == nil && in.CustomChars == "", entity.SourceDefault, entity.SourceCustom)

	return otp.NewConfig(opts...), source, nil
}

func toPasscode(res otp.Result) entity.Passcode {
	p := entity.Passcode{Code: res.OTP}
	if res.Expiry != nil {
		p.Expiring = true
		p.CreatedAt = res.Expiry.CreatedAt
		p.ExpiresAt = res.Expiry.ExpiresAt
		p.ExpiresIn = res.Expiry.ExpiresIn
	}

	return p
}
