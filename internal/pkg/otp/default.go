package otp

var std = NewRandom(nil, nil)

// Generate creates a code for cfg using crypto/rand and the system clock.
func Generate(cfg Config) (Result, error) {
	return std.Generate(cfg)
}

// GenerateNumeric creates a digits only code using crypto/rand and the system clock.
func GenerateNumeric(opts ...Option) (Result, error) {
	return std.Numeric(opts...)
}

// GenerateAlphaNumeric creates a code of digits and letters using crypto/rand
// and the system clock.
func GenerateAlphaNumeric(opts ...Option) (Result, error) {
	return std.AlphaNumeric(opts...)
}

// GenerateComplex creates a code from every built-in class using crypto/rand
// and the system clock.
func GenerateComplex(opts ...Option) (Result, error) {
	return std.Complex(opts...)
}
