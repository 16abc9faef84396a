package inbound

import (
	"time"

	"github.com/samber/lo"
	"github.com/shandysiswandi/passcode/internal/passcode/entity"
)

type PasscodeResponse struct {
	OTP       string     `json:"otp"`
	CreatedAt *time.Time `json:"createdAt,omitempty"`
	ExpiresAt *time.Time `json:"expiresAt,omitempty"`
	ExpiresIn *int64     `json:"expiresIn,omitempty"`
}

type BatchResponse struct {
	BatchID string             `json:"batchId"`
	Source  string             `json:"source"`
	Length  int                `json:"length"`
	Codes   []PasscodeResponse `json:"codes"`
}

func toBatchResponse(b *entity.Batch) BatchResponse {
	return BatchResponse{
		BatchID: b.ID,
		Source:  b.Source,
		Length:  b.Length,
		Codes: lo.Map(b.Codes, func(p entity.Passcode, _ int) PasscodeResponse {
			if !p.Expiring {
				return PasscodeResponse{OTP: p.Code}
			}

			return PasscodeResponse{
				OTP:       p.Code,
				CreatedAt: &p.CreatedAt,
				ExpiresAt: &p.ExpiresAt,
				ExpiresIn: &p.ExpiresIn,
			}
		}),
	}
}
