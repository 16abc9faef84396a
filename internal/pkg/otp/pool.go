package otp

// Built-in character classes. Their order inside a resolved pool is always
// digits, lower case, upper case, special.
const (
	CharsetDigits    = "0123456789"
	CharsetLowerCase = "abcdefghijklmnopqrstuvwxyz"
	CharsetUpperCase = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	CharsetSpecial   = "!@#$%^&*()_-+=[]{}|:;,.<>?"
)

// ResolvePool returns the characters a code for cfg is drawn from.
//
// A non-empty CustomChars wins over every class flag. Otherwise the enabled
// classes are concatenated, and when none is enabled the pool falls back to
// digits. Duplicates are kept.
func ResolvePool(cfg Config) []rune {
	if cfg.CustomChars != "" {
		return []rune(cfg.CustomChars)
	}

	var pool []rune
	if cfg.Digits {
		pool = append(pool, []rune(CharsetDigits)...)
	}
	if cfg.LowerCase {
		pool = append(pool, []rune(CharsetLowerCase)...)
	}
	if cfg.UpperCase {
		pool = append(pool, []rune(CharsetUpperCase)...)
	}
	if cfg.SpecialChars {
		pool = append(pool, []rune(CharsetSpecial)...)
	}

	if len(pool) == 0 {
		pool = []rune(CharsetDigits)
	}

	return pool
}
