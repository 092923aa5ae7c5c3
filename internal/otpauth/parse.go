package otpauth

import (
	"net/url"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/pquerna/otp"
)

// Parse converts a credential URI like
//
//	otpauth://totp/Example:alice@example.com?secret=JBSWY3DPEHPK3PXP&issuer=Example
//
// into a Descriptor. It returns false if the URI cannot be used: it is not a
// valid URL, its label cannot be decoded, or its secret is missing or is not
// valid base32.
//
// The type segment (totp or hotp) is not validated, all credentials are
// treated as time-based.
func Parse(uri string) (*Descriptor, bool) {
	u, err := url.Parse(uri)
	if err != nil {
		return nil, false
	}

	label, ok := parseLabel(u)
	if !ok {
		return nil, false
	}

	var labelIssuer *string
	account := label
	if i := strings.IndexByte(label, ':'); i >= 0 {
		s := label[:i]
		labelIssuer = &s
		account = label[i+1:]
	}

	q := u.Query()
	secret, ok := lastValue(q, "secret")
	if !ok {
		return nil, false
	}

	d := &Descriptor{
		Account:   account,
		Algorithm: otp.AlgorithmSHA1,
		Digits:    DefaultDigits,
		Period:    DefaultPeriod,
	}

	switch issuer, ok := lastValue(q, "issuer"); {
	case ok:
		d.Issuer = issuer
	case labelIssuer != nil:
		d.Issuer = *labelIssuer
	}
	if v, ok := lastValue(q, "algorithm"); ok {
		d.Algorithm = ParseAlgorithm(v)
	}
	if v, ok := lastValue(q, "digits"); ok {
		if n, err := strconv.ParseUint(v, 10, 32); err == nil {
			d.Digits = otp.Digits(n)
		}
	}
	if v, ok := lastValue(q, "period"); ok {
		if n, err := strconv.ParseUint(v, 10, 64); err == nil {
			d.Period = n
		}
	}

	// The decoder ignores line breaks and unused trailing bits, only the
	// canonical encoding of the decoded bytes is accepted.
	secret = strings.ToUpper(secret)
	if d.Secret, err = secretEncoding.DecodeString(secret); err != nil {
		return nil, false
	}
	if secretEncoding.EncodeToString(d.Secret) != secret {
		return nil, false
	}

	return d, true
}

// ParseAlgorithm returns the HMAC algorithm with the given name. The name is
// case-insensitive and anything other than SHA256 or SHA512 is SHA1.
func ParseAlgorithm(name string) otp.Algorithm {
	switch strings.ToUpper(name) {
	case "SHA256":
		return otp.AlgorithmSHA256
	case "SHA512":
		return otp.AlgorithmSHA512
	default:
		return otp.AlgorithmSHA1
	}
}

// parseLabel returns the percent-decoded label of the URI. The label is the
// path without the leading "/totp/" and slashes.
func parseLabel(u *url.URL) (string, bool) {
	p := u.EscapedPath()
	for strings.HasPrefix(p, "/totp/") {
		p = p[len("/totp/"):]
	}
	p = strings.TrimLeft(p, "/")

	label, err := url.PathUnescape(p)
	if err != nil || !utf8.ValidString(label) {
		return "", false
	}
	return label, true
}

// lastValue returns the last value of the given query key. Repeated keys
// overwrite the previous ones.
func lastValue(q url.Values, key string) (string, bool) {
	vs, ok := q[key]
	if !ok || len(vs) == 0 {
		return "", false
	}
	return vs[len(vs)-1], true
}
