package otpauth

import (
	"encoding/base32"
	"time"

	"github.com/pkg/errors"
	"github.com/pquerna/otp"
	"github.com/pquerna/otp/totp"
)

// Scheme is the prefix every credential URI starts with.
const Scheme = "otpauth://"

const (
	// DefaultDigits is the code length used when the URI does not set one.
	DefaultDigits = otp.DigitsSix

	// MaxDigits is the longest code that can be generated. A truncated value
	// has at most 10 decimal digits.
	MaxDigits = 10

	// DefaultPeriod is the validity window, in seconds, used when the URI
	// does not set one.
	DefaultPeriod = 30

	// displayWindow is the window used to compute the remaining seconds of a
	// code. It does not depend on the period of each descriptor.
	displayWindow = 30
)

// secretEncoding is the base32 alphabet without padding used by credential
// URIs.
var secretEncoding = base32.StdEncoding.WithPadding(base32.NoPadding)

// Descriptor contains everything required to generate the codes of one
// credential.
type Descriptor struct {
	Account   string
	Issuer    string
	Secret    []byte
	Algorithm otp.Algorithm
	Digits    otp.Digits
	Period    uint64
}

// String returns the label of the descriptor, "issuer:account" or just
// "account" if there is no issuer.
func (d *Descriptor) String() string {
	if d.Issuer == "" {
		return d.Account
	}
	return d.Issuer + ":" + d.Account
}

// Code returns the time-based one-time code for the given time.
func (d *Descriptor) Code(t time.Time) (string, error) {
	if t.Unix() < 0 {
		return "", errors.Errorf("time %s is before the unix epoch", t.UTC().Format(time.RFC3339))
	}
	if d.Digits > MaxDigits {
		return "", errors.Errorf("error generating code for %s: %d digits is greater than %d", d, d.Digits, MaxDigits)
	}
	// A zero period or zero digits are replaced by totp with its own
	// defaults, 30 seconds and 6 digits.
	code, err := totp.GenerateCodeCustom(secretEncoding.EncodeToString(d.Secret), t, totp.ValidateOpts{
		Period:    uint(d.Period),
		Digits:    d.Digits,
		Algorithm: d.Algorithm,
	})
	if err != nil {
		return "", errors.Wrapf(err, "error generating code for %s", d)
	}
	return code, nil
}

// SecondsRemaining returns the number of seconds left in the current 30 second
// window, a value in the range [1, 30].
//
// The window is always 30 seconds, even for descriptors with a different
// period.
func SecondsRemaining(t time.Time) int64 {
	return displayWindow - (t.Unix() % displayWindow)
}
