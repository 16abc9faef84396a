// Package otp generates one-time passcodes from a configurable character
// pool.
//
// Every character is drawn with Sampler, which maps bytes from a
// cryptographically secure reader onto an index range using rejection
// sampling, so no character of the pool is favoured over another. A code can
// optionally carry expiration metadata computed from a number of seconds or a
// unit-suffixed spec such as "30s", "5m", "1h" or "1d".
//
// Nothing is stored: a generated code is returned to the caller and never
// referenced again.
package otp
