package validator

// Validator validates a struct using its `validate` tags.
//
// A failed validation returns an error whose concrete type exposes the
// field-to-message map (V10ValidationError for the v10 implementation).
type Validator interface {
	Validate(data any) error
}
