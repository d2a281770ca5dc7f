package crypto

import (
	"crypto/subtle"
	"fmt"
	"time"

	"github.com/pquerna/otp"
	"github.com/pquerna/otp/totp"

	"github.com/MKhiriev/aegis-vault/models"
)

const (
	otpPeriod = 30
	otpDigits = otp.DigitsSix
)

type totpService struct {
	issuer string
	skew   uint
}

// NewOTPService constructs an [OTPService] issuing keys for issuer and
// accepting codes up to skew periods away from the current one.
func NewOTPService(issuer string, skew uint) OTPService {
	return &totpService{issuer: issuer, skew: skew}
}

func (s *totpService) Generate(accountName string) (models.SecondFactorKey, error) {
	key, err := totp.Generate(totp.GenerateOpts{
		Issuer:      s.issuer,
		AccountName: accountName,
		Period:      otpPeriod,
		Digits:      otpDigits,
		Algorithm:   otp.AlgorithmSHA1,
	})
	if err != nil {
		return models.SecondFactorKey{}, fmt.Errorf("error generating totp key: %w", err)
	}

	return models.SecondFactorKey{Secret: key.Secret(), URI: key.URL()}, nil
}

// Validate compares code with the expected code of every step in the skew
// window. Comparison is constant-time.
func (s *totpService) Validate(secret, code string, now time.Time) (int64, bool) {
	if secret == "" || len(code) != otpDigits.Length() {
		return 0, false
	}

	opts := totp.ValidateOpts{
		Period:    otpPeriod,
		Digits:    otpDigits,
		Algorithm: otp.AlgorithmSHA1,
	}

	skew := int64(s.skew)
	for offset := -skew; offset <= skew; offset++ {
		at := now.Add(time.Duration(offset*otpPeriod) * time.Second)

		expected, err := totp.GenerateCodeCustom(secret, at, opts)
		if err != nil {
			return 0, false
		}

		if subtle.ConstantTimeCompare([]byte(expected), []byte(code)) == 1 {
			return Step(at), true
		}
	}

	return 0, false
}

// Step returns the TOTP time step t belongs to.
func Step(t time.Time) int64 {
	return t.Unix() / otpPeriod
}
