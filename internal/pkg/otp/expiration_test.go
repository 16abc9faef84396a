package otp

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseExpiration(t *testing.T) {
	tests := []struct {
		name    string
		in      Expiration
		want    int64
		wantErr error
	}{
		{name: "SecondsSpec", in: Spec("30s"), want: 30},
		{name: "MinutesSpec", in: Spec("5m"), want: 300},
		{name: "HoursSpec", in: Spec("2h"), want: 7200},
		{name: "DaysSpec", in: Spec("1d"), want: 86400},
		{name: "ZeroSpec", in: Spec("0s"), want: 0},
		{name: "LeadingZeros", in: Spec("007m"), want: 420},
		{name: "PlainSeconds", in: Seconds(60), want: 60},
		{name: "ZeroSeconds", in: Seconds(0), want: 0},
		{name: "NegativeSeconds", in: Seconds(-10), want: -10},
		{name: "Garbage", in: Spec("invalid"), wantErr: ErrInvalidExpirationFormat},
		{name: "UnknownUnit", in: Spec("5x"), wantErr: ErrInvalidExpirationFormat},
		{name: "BareNumberString", in: Spec("60"), wantErr: ErrInvalidExpirationFormat},
		{name: "Empty", in: Spec(""), wantErr: ErrInvalidExpirationFormat},
		{name: "UpperCaseUnit", in: Spec("5M"), wantErr: ErrInvalidExpirationFormat},
		{name: "Whitespace", in: Spec(" 5m"), wantErr: ErrInvalidExpirationFormat},
		{name: "TwoUnits", in: Spec("1h30m"), wantErr: ErrInvalidExpirationFormat},
		{name: "NegativeSpec", in: Spec("-5m"), wantErr: ErrInvalidExpirationFormat},
		{name: "Overflow", in: Spec("999999999999999999d"), wantErr: ErrInvalidExpirationFormat},
		{name: "ZeroValue", in: Expiration{}, wantErr: ErrInvalidExpirationType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseExpiration(tt.in)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Zero(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExpirationFromValue(t *testing.T) {
	tests := []struct {
		name    string
		in      any
		want    *Expiration
		wantErr error
	}{
		{name: "Nil", in: nil, want: nil},
		{name: "Int", in: 60, want: ptr(Seconds(60))},
		{name: "Int64", in: int64(-5), want: ptr(Seconds(-5))},
		{name: "Uint16", in: uint16(90), want: ptr(Seconds(90))},
		{name: "IntegralFloat", in: float64(120), want: ptr(Seconds(120))},
		{name: "JSONNumber", in: json.Number("45"), want: ptr(Seconds(45))},
		{name: "String", in: "5m", want: ptr(Spec("5m"))},
		{name: "FractionalFloat", in: 1.5, wantErr: ErrInvalidExpirationType},
		{name: "NaN", in: math.NaN(), wantErr: ErrInvalidExpirationType},
		{name: "Map", in: map[string]any{}, wantErr: ErrInvalidExpirationType},
		{name: "Bool", in: true, wantErr: ErrInvalidExpirationType},
		{name: "Slice", in: []string{"5m"}, wantErr: ErrInvalidExpirationType},
		{name: "HugeUnsigned", in: uint64(math.MaxUint64), wantErr: ErrInvalidExpirationFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExpirationFromValue(tt.in)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExpiration_String(t *testing.T) {
	assert.Equal(t, "30", Seconds(30).String())
	assert.Equal(t, "1h", Spec("1h").String())
	assert.Empty(t, Expiration{}.String())
}

func ptr[T any](v T) *T {
	return &v
}
