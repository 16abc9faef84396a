// Package validator provides a small validation abstraction for usecase
// inputs.
//
// Business code should depend on the Validator interface so validation can be
// shared and tested consistently. The go-playground/validator v10
// implementation registers the passcode specific rules "preset" and
// "charset" with English messages.
package validator
