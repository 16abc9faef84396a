package inbound

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/shandysiswandi/passcode/internal/passcode/entity"
	"github.com/shandysiswandi/passcode/internal/passcode/usecase"
	"github.com/shandysiswandi/passcode/internal/pkg/goerror"
	"github.com/shandysiswandi/passcode/internal/pkg/otp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUsecase struct {
	in    usecase.GenerateInput
	calls int
	batch *entity.Batch
	err   error
}

func (f *fakeUsecase) Generate(_ context.Context, in usecase.GenerateInput) (*entity.Batch, error) {
	f.in = in
	f.calls++
	return f.batch, f.err
}

func plainBatch(codes ...string) *entity.Batch {
	b := &entity.Batch{ID: "batch-1", Source: entity.SourceDefault, Length: 6}
	for _, c := range codes {
		b.Codes = append(b.Codes, entity.Passcode{Code: c})
	}
	return b
}

func TestCommand_Run(t *testing.T) {
	t.Run("PrintsOneCodePerLine", func(t *testing.T) {
		// Arrange
		uc := &fakeUsecase{batch: plainBatch("123456", "654321")}
		var out bytes.Buffer

		// Act
		err := NewCommand(uc, &out).Run(context.Background(), []string{"--count", "2"})

		// Assert
		require.NoError(t, err)
		assert.Equal(t, "123456\n654321\n", out.String())
		assert.Equal(t, 2, uc.in.Count)
	})

	t.Run("NoFlagsLeavesEverythingUnset", func(t *testing.T) {
		uc := &fakeUsecase{batch: plainBatch("123456")}

		err := NewCommand(uc, &bytes.Buffer{}).Run(context.Background(), nil)

		require.NoError(t, err)
		assert.Empty(t, uc.in.Preset)
		assert.Nil(t, uc.in.Length)
		assert.Nil(t, uc.in.Classes)
		assert.Nil(t, uc.in.ExpiresIn)
		assert.Equal(t, 1, uc.in.Count)
	})

	t.Run("MapsFlagsToInput", func(t *testing.T) {
		uc := &fakeUsecase{batch: plainBatch("ab12cd34")}

		err := NewCommand(uc, &bytes.Buffer{}).Run(context.Background(),
			[]string{"-l", "8", "--lower", "--upper=false", "--expires", "300"})

		require.NoError(t, err)
		require.NotNil(t, uc.in.Length)
		assert.Equal(t, 8, *uc.in.Length)
		require.NotNil(t, uc.in.Classes)
		assert.Equal(t, usecase.Classes{Digits: true, LowerCase: true}, *uc.in.Classes)
		assert.Equal(t, int64(300), uc.in.ExpiresIn)
	})

	t.Run("ExpiresWithUnitStaysString", func(t *testing.T) {
		uc := &fakeUsecase{batch: plainBatch("123456")}

		err := NewCommand(uc, &bytes.Buffer{}).Run(context.Background(), []string{"-e", "5m", "-p", "numeric"})

		require.NoError(t, err)
		assert.Equal(t, "5m", uc.in.ExpiresIn)
		assert.Equal(t, "numeric", uc.in.Preset)
	})

	t.Run("PresetAndClassFlagsBothReachUsecase", func(t *testing.T) {
		want := goerror.NewInvalidInput(nil, "classes", "classes cannot be combined with preset")
		uc := &fakeUsecase{err: want}
		var out bytes.Buffer

		err := NewCommand(uc, &out).Run(context.Background(),
			[]string{"--preset", "numeric", "--special", "--lower=true", "--digits=false"})

		assert.ErrorIs(t, err, want)
		assert.Equal(t, 2, goerror.ExitCode(err))
		assert.Equal(t, "numeric", uc.in.Preset)
		require.NotNil(t, uc.in.Classes)
		assert.Equal(t, usecase.Classes{LowerCase: true, SpecialChars: true}, *uc.in.Classes)
		assert.Empty(t, out.String())
	})

	t.Run("CustomChars", func(t *testing.T) {
		uc := &fakeUsecase{batch: plainBatch("ABBA")}

		err := NewCommand(uc, &bytes.Buffer{}).Run(context.Background(), []string{"--chars", "AB"})

		require.NoError(t, err)
		assert.Equal(t, "AB", uc.in.CustomChars)
		assert.Nil(t, uc.in.Classes)
	})

	t.Run("JSONWhenExpiring", func(t *testing.T) {
		created := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
		uc := &fakeUsecase{batch: &entity.Batch{
			ID:     "batch-1",
			Source: otp.PresetNumeric.Name,
			Length: 6,
			Codes: []entity.Passcode{{
				Code:      "123456",
				Expiring:  true,
				CreatedAt: created,
				ExpiresAt: created.Add(5 * time.Minute),
				ExpiresIn: 300,
			}},
		}}
		var out bytes.Buffer

		err := NewCommand(uc, &out).Run(context.Background(), []string{"-e", "5m"})

		require.NoError(t, err)
		var got BatchResponse
		require.NoError(t, json.Unmarshal(out.Bytes(), &got))
		assert.Equal(t, "batch-1", got.BatchID)
		assert.Equal(t, "numeric", got.Source)
		require.Len(t, got.Codes, 1)
		assert.Equal(t, "123456", got.Codes[0].OTP)
		require.NotNil(t, got.Codes[0].ExpiresIn)
		assert.Equal(t, int64(300), *got.Codes[0].ExpiresIn)
		require.NotNil(t, got.Codes[0].ExpiresAt)
		assert.True(t, created.Add(5*time.Minute).Equal(*got.Codes[0].ExpiresAt))
	})

	t.Run("JSONFlagWithoutExpiry", func(t *testing.T) {
		uc := &fakeUsecase{batch: plainBatch("123456")}
		var out bytes.Buffer

		err := NewCommand(uc, &out).Run(context.Background(), []string{"--json"})

		require.NoError(t, err)
		assert.Contains(t, out.String(), `"otp": "123456"`)
		assert.NotContains(t, out.String(), "expiresAt")
	})

	t.Run("HelpPrintsUsage", func(t *testing.T) {
		uc := &fakeUsecase{}
		var out bytes.Buffer

		err := NewCommand(uc, &out).Run(context.Background(), []string{"--help"})

		require.NoError(t, err)
		assert.Contains(t, out.String(), "--preset")
		assert.Zero(t, uc.calls)
	})

	t.Run("UnknownFlag", func(t *testing.T) {
		uc := &fakeUsecase{}

		err := NewCommand(uc, &bytes.Buffer{}).Run(context.Background(), []string{"--nope"})

		require.Error(t, err)
		assert.Equal(t, 2, goerror.ExitCode(err))
		assert.Zero(t, uc.calls)
	})

	t.Run("BadLengthValue", func(t *testing.T) {
		err := NewCommand(&fakeUsecase{}, &bytes.Buffer{}).Run(context.Background(), []string{"--length", "six"})

		assert.Equal(t, 2, goerror.ExitCode(err))
	})

	t.Run("PositionalArgument", func(t *testing.T) {
		err := NewCommand(&fakeUsecase{}, &bytes.Buffer{}).Run(context.Background(), []string{"extra"})

		var ge *goerror.Error
		require.ErrorAs(t, err, &ge)
		assert.Equal(t, goerror.CodeInvalidFormat, ge.Code())
	})

	t.Run("UsecaseError", func(t *testing.T) {
		want := goerror.NewUnavailable(errors.New("boom"), "random source failed")
		uc := &fakeUsecase{err: want}
		var out bytes.Buffer

		err := NewCommand(uc, &out).Run(context.Background(), nil)

		assert.ErrorIs(t, err, want)
		assert.Empty(t, out.String())
	})
}

func TestWriteError(t *testing.T) {
	t.Run("Nil", func(t *testing.T) {
		var out bytes.Buffer
		WriteError(&out, nil)
		assert.Empty(t, out.String())
	})

	t.Run("PlainError", func(t *testing.T) {
		var out bytes.Buffer
		WriteError(&out, errors.New("boom"))
		assert.Equal(t, "error: boom\n", out.String())
	})

	t.Run("FieldsSorted", func(t *testing.T) {
		var out bytes.Buffer
		WriteError(&out, goerror.NewInvalidInput(nil, "preset", "bad preset", "count", "too many"))
		assert.Equal(t, "error: Validation error\n  count: too many\n  preset: bad preset\n", out.String())
	})

	t.Run("WrappedOTPError", func(t *testing.T) {
		var out bytes.Buffer
		WriteError(&out, goerror.NewInvalidInput(otp.ErrInvalidLength))
		assert.Equal(t, "error: "+otp.ErrInvalidLength.Error()+"\n", out.String())
	})

	t.Run("Unavailable", func(t *testing.T) {
		var out bytes.Buffer
		WriteError(&out, goerror.NewUnavailable(errors.New("EOF"), "random source failed"))
		assert.Equal(t, "error: random source failed: EOF\n", out.String())
	})
}
