// Package clock provides a tiny time abstraction.
//
// Code that stamps creation or expiry times should depend on the Clocker
// interface instead of calling time.Now() directly, so tests can freeze time
// with Fixed and assert exact timestamps.
package clock
