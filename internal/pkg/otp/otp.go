package otp

import (
	"io"
	"math"
	"strings"
	"time"

	"github.com/shandysiswandi/passcode/internal/pkg/clock"
)

// OTP defines the contract for random one-time passcode generation.
type OTP interface {
	// Generate creates a code for cfg.
	Generate(cfg Config) (Result, error)
	// Numeric creates a digits only code, six characters by default.
	Numeric(opts ...Option) (Result, error)
	// AlphaNumeric creates a code of digits and letters, eight characters by default.
	AlphaNumeric(opts ...Option) (Result, error)
	// Complex creates a code from every built-in class, twelve characters by default.
	Complex(opts ...Option) (Result, error)
}

// Result is a generated code. Expiry is nil unless the configuration asked
// for an expiration.
type Result struct {
	OTP    string
	Expiry *Expiry
}

// String returns the code.
func (r Result) String() string {
	return r.OTP
}

// Expiry is the expiration metadata attached to a code.
//
// ExpiresAt is always CreatedAt plus ExpiresIn seconds. A zero or negative
// ExpiresIn describes a code that is already expired.
type Expiry struct {
	CreatedAt time.Time
	ExpiresAt time.Time
	ExpiresIn int64
}

// Expired reports whether the code is expired at t.
func (e Expiry) Expired(at time.Time) bool {
	return !at.Before(e.ExpiresAt)
}

// Random implements OTP by sampling each character independently from the
// resolved pool.
//
// Random holds no mutable state and is safe for concurrent use as long as
// its reader is.
type Random struct {
	sampler *Sampler
	clock   clock.Clocker
}

// NewRandom constructs a Random reading entropy from r and timestamps from clk.
//
// A nil r uses crypto/rand.Reader and a nil clk uses the system clock.
func NewRandom(clk clock.Clocker, r io.Reader) *Random {
	if clk == nil {
		clk = clock.New()
	}

	return &Random{
		sampler: NewSampler(r),
		clock:   clk,
	}
}

// Generate creates a code for cfg.
//
// Errors are returned as is: ErrInvalidLength, ErrEmptyPool, the expiration
// errors, or whatever the random reader failed with. No partial code is
// returned.
func (o *Random) Generate(cfg Config) (Result, error) {
	if cfg.Length < MinLength || cfg.Length > MaxLength {
		return Result{}, ErrInvalidLength
	}

	pool := ResolvePool(cfg)
	if len(pool) == 0 {
		return Result{}, ErrEmptyPool
	}

	var sb strings.Builder
	sb.Grow(cfg.Length)

	for range cfg.Length {
		idx, err := o.sampler.Intn(0, len(pool))
		if err != nil {
			return Result{}, err
		}
		sb.WriteRune(pool[idx])
	}

	res := Result{OTP: sb.String()}
	if cfg.ExpiresIn == nil {
		return res, nil
	}

	seconds, err := ParseExpiration(*cfg.ExpiresIn)
	if err != nil {
		return Result{}, err
	}

	createdAt := o.clock.Now()
	expiresAt, err := addSeconds(createdAt, seconds)
	if err != nil {
		return Result{}, err
	}

	res.Expiry = &Expiry{
		CreatedAt: createdAt,
		ExpiresAt: expiresAt,
		ExpiresIn: seconds,
	}

	return res, nil
}

// Numeric creates a digits only code. Options may change the length and the
// expiration; the character classes stay fixed.
func (o *Random) Numeric(opts ...Option) (Result, error) {
	return o.Generate(PresetNumeric.Config(opts...))
}

// AlphaNumeric creates a code of digits, lower and upper case letters.
func (o *Random) AlphaNumeric(opts ...Option) (Result, error) {
	return o.Generate(PresetAlphaNumeric.Config(opts...))
}

// Complex creates a code from digits, letters and special characters.
func (o *Random) Complex(opts ...Option) (Result, error) {
	return o.Generate(PresetComplex.Config(opts...))
}

// Expiration instants must stay within years 1 to 9999 so they survive an
// RFC 3339 round trip.
var (
	minExpiresAt = time.Date(1, time.January, 1, 0, 0, 0, 0, time.UTC).Unix()
	maxExpiresAt = time.Date(9999, time.December, 31, 23, 59, 59, 0, time.UTC).Unix()
)

// addSeconds adds whole seconds without going through time.Duration, which
// overflows after roughly 292 years.
func addSeconds(t time.Time, seconds int64) (time.Time, error) {
	base := t.Unix()
	if (seconds > 0 && base > math.MaxInt64-seconds) || (seconds < 0 && base < math.MinInt64-seconds) {
		return time.Time{}, ErrExpirationOutOfRange
	}

	sum := base + seconds
	if sum < minExpiresAt || sum > maxExpiresAt {
		return time.Time{}, ErrExpirationOutOfRange
	}

	return time.Unix(sum, int64(t.Nanosecond())).In(t.Location()), nil
}
