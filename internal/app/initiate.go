package app

import (
	"context"
	_ "embed"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/shandysiswandi/passcode/internal/pkg/clock"
	"github.com/shandysiswandi/passcode/internal/pkg/config"
	"github.com/shandysiswandi/passcode/internal/pkg/instrument"
	"github.com/shandysiswandi/passcode/internal/pkg/otp"
	"github.com/shandysiswandi/passcode/internal/pkg/uid"
	"github.com/shandysiswandi/passcode/internal/pkg/validator"
)

//go:embed config.yaml
var defaultConfig []byte

func (a *App) initConfig() error {
	defaults := config.Source{Type: "yaml", Data: defaultConfig}

	var (
		cfg *config.Viper
		err error
	)
	if path := strings.TrimSpace(os.Getenv("CONFIG_PATH")); path != "" {
		cfg, err = config.NewViper(path, defaults)
	} else {
		cfg, err = config.NewViperFromBytes(defaults.Type, defaults.Data)
	}
	if err != nil {
		return fmt.Errorf("failed to init config: %w", err)
	}

	if tz := cfg.GetString("app.tz"); tz != "" {
		loc, err := time.LoadLocation(tz)
		if err != nil {
			_ = cfg.Close()
			return fmt.Errorf("failed to load timezone %q: %w", tz, err)
		}
		time.Local = loc
	}

	a.config = cfg
	a.addCloser("config", func(context.Context) error { return cfg.Close() })

	return nil
}

func (a *App) initInstrument() error {
	ins, err := instrument.New(context.Background(), &instrument.Config{
		Enabled:          a.config.GetBool("instrument.enabled"),
		ServiceName:      a.config.GetString("instrument.service_name"),
		ServiceVersion:   a.config.GetString("instrument.service_version"),
		Environment:      a.config.GetString("instrument.env"),
		OTLPEndpoint:     a.config.GetString("instrument.otlp_endpoint"),
		OTLPSecure:       a.config.GetBool("instrument.otlp_secure"),
		TraceSampleRatio: a.config.GetFloat64("instrument.trace_sample_ratio"),
		MetricsInterval:  a.config.GetSecond("instrument.metric_interval_seconds"),
		MaskFields:       a.config.GetArray("instrument.log_mask_fields"),
		LogLevel:         a.config.GetString("instrument.log_level"),
		LogWriter:        a.stderr,
	})
	if err != nil {
		return fmt.Errorf("failed to init instrumentation: %w", err)
	}

	a.ins = ins
	a.addCloser("instrumentation", ins.Shutdown)

	slog.Debug("instrumentation ready", "service", a.config.GetString("app.name"))

	return nil
}

func (a *App) initLibraries() error {
	a.clock = clock.New()
	a.uuid = uid.NewUUID()
	a.otp = otp.NewRandom(a.clock, nil)

	v, err := validator.NewV10Validator()
	if err != nil {
		return fmt.Errorf("failed to init validation v10 validator: %w", err)
	}
	a.validator = v

	return nil
}
