package entity

import "time"

// Batch sources other than preset names.
const (
	// SourceDefault is the six-digit configuration used when nothing is chosen.
	SourceDefault = "default"
	// SourceCustom is a batch built from explicit classes or custom characters.
	SourceCustom = "custom"
)

// Passcode is one generated code. The timestamps are set only when Expiring
// is true.
type Passcode struct {
	Code      string
	Expiring  bool
	CreatedAt time.Time
	ExpiresAt time.Time
	ExpiresIn int64
}

// Expired reports whether the passcode carries an expiry that has passed at t.
// A passcode without expiry never expires.
func (p Passcode) Expired(at time.Time) bool {
	return p.Expiring && !at.Before(p.ExpiresAt)
}

// Batch is the set of passcodes produced by one request.
type Batch struct {
	ID     string
	Source string
	Length int
	Codes  []Passcode
}
