package otp

// Length bounds and the default length of a code.
const (
	MinLength     = 1
	MaxLength     = 32
	DefaultLength = 6
)

// Config describes a single generation call. It is passed by value, so a
// call never observes changes made by another.
type Config struct {
	// Length is the number of characters in the code, within [MinLength, MaxLength].
	Length int
	// Digits enables CharsetDigits.
	Digits bool
	// LowerCase enables CharsetLowerCase.
	LowerCase bool
	// UpperCase enables CharsetUpperCase.
	UpperCase bool
	// SpecialChars enables CharsetSpecial.
	SpecialChars bool
	// CustomChars replaces the built-in classes entirely when non-empty.
	CustomChars string
	// ExpiresIn requests expiration metadata. Nil means the code does not expire.
	ExpiresIn *Expiration
}

// DefaultConfig returns a six character, digits only configuration.
func DefaultConfig() Config {
	return Config{
		Length: DefaultLength,
		Digits: true,
	}
}

// Option overrides one field of a Config.
type Option func(*Config)

// NewConfig applies opts on top of DefaultConfig.
func NewConfig(opts ...Option) Config {
	cfg := DefaultConfig()
	cfg.apply(opts)
	return cfg
}

func (c *Config) apply(opts []Option) {
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
}

// WithLength sets the code length.
func WithLength(n int) Option {
	return func(c *Config) { c.Length = n }
}

// WithDigits toggles the digits class.
func WithDigits(on bool) Option {
	return func(c *Config) { c.Digits = on }
}

// WithLowerCase toggles the lower case class.
func WithLowerCase(on bool) Option {
	return func(c *Config) { c.LowerCase = on }
}

// WithUpperCase toggles the upper case class.
func WithUpperCase(on bool) Option {
	return func(c *Config) { c.UpperCase = on }
}

// WithSpecialChars toggles the special characters class.
func WithSpecialChars(on bool) Option {
	return func(c *Config) { c.SpecialChars = on }
}

// WithCustomChars sets a custom pool that overrides every class flag.
func WithCustomChars(chars string) Option {
	return func(c *Config) { c.CustomChars = chars }
}

// WithExpiration attaches expiration metadata to the generated code.
func WithExpiration(e Expiration) Option {
	return func(c *Config) { c.ExpiresIn = &e }
}
