package otp

import (
	"encoding/json"
	"math"
	"regexp"
	"strconv"
)

var reExpiration = regexp.MustCompile(`^(\d+)([smhd])$`)

var unitSeconds = map[string]int64{
	"s": 1,
	"m": 60,
	"h": 3600,
	"d": 86400,
}

type expirationKind uint8

const (
	expirationUnknown expirationKind = iota
	expirationSeconds
	expirationSpec
)

// Expiration is either a number of seconds or a unit-suffixed spec string.
//
// Build one with Seconds or Spec; the zero value is neither and fails to
// parse with ErrInvalidExpirationType.
type Expiration struct {
	kind    expirationKind
	seconds int64
	spec    string
}

// Seconds returns an expiration of n seconds. Zero and negative values are
// accepted and yield codes that are already expired when created.
func Seconds(n int64) Expiration {
	return Expiration{kind: expirationSeconds, seconds: n}
}

// Spec returns an expiration described by a string such as "30s", "5m",
// "2h" or "1d". The string is validated by ParseExpiration.
func Spec(s string) Expiration {
	return Expiration{kind: expirationSpec, spec: s}
}

// String returns the expiration as it was given.
func (e Expiration) String() string {
	switch e.kind {
	case expirationSeconds:
		return strconv.FormatInt(e.seconds, 10)
	case expirationSpec:
		return e.spec
	default:
		return ""
	}
}

// ParseExpiration converts e to seconds.
func ParseExpiration(e Expiration) (int64, error) {
	switch e.kind {
	case expirationSeconds:
		return e.seconds, nil
	case expirationSpec:
		return parseSpec(e.spec)
	default:
		return 0, ErrInvalidExpirationType
	}
}

func parseSpec(spec string) (int64, error) {
	m := reExpiration.FindStringSubmatch(spec)
	if m == nil {
		return 0, ErrInvalidExpirationFormat
	}

	n, err := strconv.ParseInt(m[1], 10, 64)
	if err != nil {
		return 0, ErrInvalidExpirationFormat
	}

	mul := unitSeconds[m[2]]
	if n > math.MaxInt64/mul {
		return 0, ErrInvalidExpirationFormat
	}

	return n * mul, nil
}

// ExpirationFromValue adapts a dynamically typed value, as decoded from a
// config file or JSON, into an Expiration.
//
// Integers and integral floats become Seconds, strings become Spec and nil
// means no expiration. Anything else fails with ErrInvalidExpirationType.
func ExpirationFromValue(v any) (*Expiration, error) {
	var e Expiration

	switch val := v.(type) {
	case nil:
		return nil, nil
	case int:
		e = Seconds(int64(val))
	case int8:
		e = Seconds(int64(val))
	case int16:
		e = Seconds(int64(val))
	case int32:
		e = Seconds(int64(val))
	case int64:
		e = Seconds(val)
	case uint:
		return fromUnsigned(uint64(val))
	case uint8:
		e = Seconds(int64(val))
	case uint16:
		e = Seconds(int64(val))
	case uint32:
		e = Seconds(int64(val))
	case uint64:
		return fromUnsigned(val)
	case float32:
		return fromFloat(float64(val))
	case float64:
		return fromFloat(val)
	case json.Number:
		n, err := val.Int64()
		if err != nil {
			return nil, ErrInvalidExpirationType
		}
		e = Seconds(n)
	case string:
		e = Spec(val)
	default:
		return nil, ErrInvalidExpirationType
	}

	return &e, nil
}

func fromUnsigned(n uint64) (*Expiration, error) {
	if n > math.MaxInt64 {
		return nil, ErrInvalidExpirationFormat
	}

	e := Seconds(int64(n))
	return &e, nil
}

func fromFloat(f float64) (*Expiration, error) {
	if f != math.Trunc(f) || math.IsInf(f, 0) || f >= math.MaxInt64 || f < math.MinInt64 {
		return nil, ErrInvalidExpirationType
	}

	e := Seconds(int64(f))
	return &e, nil
}
