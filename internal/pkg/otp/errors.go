package otp

import "errors"

var (
	// ErrInvalidLength is returned when the requested length is outside [MinLength, MaxLength].
	ErrInvalidLength = errors.New("OTP length must be between 1 to 32 characters")

	// ErrInvalidExpirationFormat is returned when an expiration spec is not a
	// run of digits followed by one of s, m, h or d.
	ErrInvalidExpirationFormat = errors.New(`invalid expiration format, use a duration like "5m", "1h" or "30s"`)

	// ErrInvalidExpirationType is returned when an expiration is neither a
	// number of seconds nor a spec string.
	ErrInvalidExpirationType = errors.New("expiration must be a number of seconds or a duration string")

	// ErrExpirationOutOfRange is returned when creation time plus the
	// expiration falls outside the years 1 to 9999.
	ErrExpirationOutOfRange = errors.New("expiration is out of range")

	// ErrEmptyPool is returned when no character is available to draw from.
	ErrEmptyPool = errors.New("character pool is empty")

	// ErrInvalidRange is returned by Sampler when max is not greater than min.
	ErrInvalidRange = errors.New("random range must contain at least one value")

	// ErrEntropyExhausted is returned by Sampler when the random source keeps
	// producing values outside the acceptance limit.
	ErrEntropyExhausted = errors.New("random source rejected too many draws")
)
