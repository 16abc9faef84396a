package app

import (
	"fmt"

	"github.com/shandysiswandi/passcode/internal/passcode"
)

func (a *App) initModules() error {
	cmd, err := passcode.New(passcode.Dependency{
		Output:     a.stdout,
		Config:     a.config,
		Instrument: a.ins,
		UUID:       a.uuid,
		OTP:        a.otp,
		Validator:  a.validator,
	})
	if err != nil {
		return fmt.Errorf("failed to init module passcode: %w", err)
	}

	a.command = cmd

	return nil
}
