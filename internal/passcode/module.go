package passcode

import (
	"io"

	"github.com/shandysiswandi/passcode/internal/passcode/inbound"
	"github.com/shandysiswandi/passcode/internal/passcode/usecase"
	"github.com/shandysiswandi/passcode/internal/pkg/config"
	"github.com/shandysiswandi/passcode/internal/pkg/instrument"
	"github.com/shandysiswandi/passcode/internal/pkg/otp"
	"github.com/shandysiswandi/passcode/internal/pkg/uid"
	"github.com/shandysiswandi/passcode/internal/pkg/validator"
)

type Dependency struct {
	Output     io.Writer                  `validate:"required"`
	Config     config.Config              `validate:"required"`
	Instrument instrument.Instrumentation `validate:"required"`
	UUID       uid.StringID               `validate:"required"`
	OTP        otp.OTP                    `validate:"required"`
	Validator  validator.Validator        `validate:"required"`
}

func New(dep Dependency) (*inbound.Command, error) {
	if err := dep.Validator.Validate(dep); err != nil {
		return nil, err
	}

	uc := usecase.New(usecase.Dependency{
		OTP:        dep.OTP,
		Validator:  dep.Validator,
		Config:     dep.Config,
		UUID:       dep.UUID,
		Instrument: dep.Instrument,
	})

	return inbound.NewCommand(uc, dep.Output), nil
}
