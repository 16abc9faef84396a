package otp

// Preset is a fixed combination of character classes with its own default
// length.
type Preset struct {
	Name         string
	Length       int
	Digits       bool
	LowerCase    bool
	UpperCase    bool
	SpecialChars bool
}

var (
	// PresetNumeric draws six digits.
	PresetNumeric = Preset{Name: "numeric", Length: 6, Digits: true}

	// PresetAlphaNumeric draws eight characters from digits and both letter cases.
	PresetAlphaNumeric = Preset{Name: "alphanumeric", Length: 8, Digits: true, LowerCase: true, UpperCase: true}

	// PresetComplex draws twelve characters from every built-in class.
	PresetComplex = Preset{Name: "complex", Length: 12, Digits: true, LowerCase: true, UpperCase: true, SpecialChars: true}
)

// Presets lists the built-in presets.
func Presets() []Preset {
	return []Preset{PresetNumeric, PresetAlphaNumeric, PresetComplex}
}

// Config returns the preset configuration with opts applied. Only length and
// expiration survive from opts: the classes are re-fixed afterwards and any
// custom characters are dropped.
func (p Preset) Config(opts ...Option) Config {
	cfg := Config{Length: p.Length}
	cfg.apply(opts)

	cfg.Digits = p.Digits
	cfg.LowerCase = p.LowerCase
	cfg.UpperCase = p.UpperCase
	cfg.SpecialChars = p.SpecialChars
	cfg.CustomChars = ""

	return cfg
}
