package otpauth

import (
	"testing"

	"github.com/pquerna/otp"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	hello := []byte("Hello!\xde\xad\xbe\xef")

	type args struct {
		uri string
	}
	tests := []struct {
		name   string
		args   args
		want   *Descriptor
		wantOK bool
	}{
		{"ok defaults", args{"otpauth://totp/Account?secret=JBSWY3DPEHPK3PXP"}, &Descriptor{
			Account: "Account", Issuer: "", Secret: hello,
			Algorithm: otp.AlgorithmSHA1, Digits: otp.DigitsSix, Period: 30,
		}, true},
		{"ok issuer override", args{"otpauth://totp/Example:alice@example.com?secret=JBSWY3DPEHPK3PXP&issuer=Example"}, &Descriptor{
			Account: "alice@example.com", Issuer: "Example", Secret: hello,
			Algorithm: otp.AlgorithmSHA1, Digits: otp.DigitsSix, Period: 30,
		}, true},
		{"ok query issuer wins", args{"otpauth://totp/Label:bob?secret=JBSWY3DPEHPK3PXP&issuer=Query"}, &Descriptor{
			Account: "bob", Issuer: "Query", Secret: hello,
			Algorithm: otp.AlgorithmSHA1, Digits: otp.DigitsSix, Period: 30,
		}, true},
		{"ok empty query issuer wins", args{"otpauth://totp/Label:bob?secret=JBSWY3DPEHPK3PXP&issuer="}, &Descriptor{
			Account: "bob", Issuer: "", Secret: hello,
			Algorithm: otp.AlgorithmSHA1, Digits: otp.DigitsSix, Period: 30,
		}, true},
		{"ok label issuer", args{"otpauth://totp/ACME%20Co:john.doe%40email.com?secret=JBSWY3DPEHPK3PXP"}, &Descriptor{
			Account: "john.doe@email.com", Issuer: "ACME Co", Secret: hello,
			Algorithm: otp.AlgorithmSHA1, Digits: otp.DigitsSix, Period: 30,
		}, true},
		{"ok split on first colon", args{"otpauth://totp/a:b:c?secret=JBSWY3DPEHPK3PXP"}, &Descriptor{
			Account: "b:c", Issuer: "a", Secret: hello,
			Algorithm: otp.AlgorithmSHA1, Digits: otp.DigitsSix, Period: 30,
		}, true},
		{"ok lowercase secret", args{"otpauth://totp/Account?secret=jbswy3dpehpk3pxp"}, &Descriptor{
			Account: "Account", Issuer: "", Secret: hello,
			Algorithm: otp.AlgorithmSHA1, Digits: otp.DigitsSix, Period: 30,
		}, true},
		{"ok all parameters", args{"otpauth://totp/Account?secret=JBSWY3DPEHPK3PXP&algorithm=sha512&digits=8&period=60"}, &Descriptor{
			Account: "Account", Issuer: "", Secret: hello,
			Algorithm: otp.AlgorithmSHA512, Digits: otp.DigitsEight, Period: 60,
		}, true},
		{"ok sha256", args{"otpauth://totp/Account?secret=JBSWY3DPEHPK3PXP&algorithm=SHA256"}, &Descriptor{
			Account: "Account", Issuer: "", Secret: hello,
			Algorithm: otp.AlgorithmSHA256, Digits: otp.DigitsSix, Period: 30,
		}, true},
		{"ok unknown algorithm", args{"otpauth://totp/Account?secret=JBSWY3DPEHPK3PXP&algorithm=MD5"}, &Descriptor{
			Account: "Account", Issuer: "", Secret: hello,
			Algorithm: otp.AlgorithmSHA1, Digits: otp.DigitsSix, Period: 30,
		}, true},
		{"ok bad digits and period", args{"otpauth://totp/Account?secret=JBSWY3DPEHPK3PXP&digits=six&period=-5"}, &Descriptor{
			Account: "Account", Issuer: "", Secret: hello,
			Algorithm: otp.AlgorithmSHA1, Digits: otp.DigitsSix, Period: 30,
		}, true},
		{"ok hotp type is not validated", args{"otpauth://hotp/Account?secret=JBSWY3DPEHPK3PXP&counter=3"}, &Descriptor{
			Account: "Account", Issuer: "", Secret: hello,
			Algorithm: otp.AlgorithmSHA1, Digits: otp.DigitsSix, Period: 30,
		}, true},
		{"ok totp path", args{"otpauth:/totp/Account?secret=JBSWY3DPEHPK3PXP"}, &Descriptor{
			Account: "Account", Issuer: "", Secret: hello,
			Algorithm: otp.AlgorithmSHA1, Digits: otp.DigitsSix, Period: 30,
		}, true},
		{"ok last secret wins", args{"otpauth://totp/Account?secret=AAAA&secret=JBSWY3DPEHPK3PXP"}, &Descriptor{
			Account: "Account", Issuer: "", Secret: hello,
			Algorithm: otp.AlgorithmSHA1, Digits: otp.DigitsSix, Period: 30,
		}, true},
		{"fail missing secret", args{"otpauth://totp/Account?issuer=Example"}, nil, false},
		{"fail invalid base32", args{"otpauth://totp/Account?secret=JBSWY3DPEHPK3PX1"}, nil, false},
		{"fail padded secret", args{"otpauth://totp/Account?secret=JBSWY3DPEHPK3PX%3D"}, nil, false},
		{"fail secret with line break", args{"otpauth://totp/Account?secret=JBSWY3DP%0AEHPK3PXP"}, nil, false},
		{"fail secret with carriage return", args{"otpauth://totp/Account?secret=JBSWY3DP%0D%0AEHPK3PXP"}, nil, false},
		{"fail non-canonical trailing bits", args{"otpauth://totp/Account?secret=JBSWY3DPEHPK3PXQ"}, nil, false},
		{"fail invalid url", args{"otpauth://totp/%zz?secret=JBSWY3DPEHPK3PXP"}, nil, false},
		{"fail invalid utf8 label", args{"otpauth://totp/%ff%fe?secret=JBSWY3DPEHPK3PXP"}, nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Parse(tt.args.uri)
			require.Equal(t, tt.wantOK, ok)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestParseAlgorithm(t *testing.T) {
	tests := []struct {
		name string
		want otp.Algorithm
	}{
		{"SHA1", otp.AlgorithmSHA1},
		{"sha256", otp.AlgorithmSHA256},
		{"Sha512", otp.AlgorithmSHA512},
		{"", otp.AlgorithmSHA1},
		{"SHA384", otp.AlgorithmSHA1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, ParseAlgorithm(tt.name))
		})
	}
}

func TestDescriptor_String(t *testing.T) {
	d, ok := Parse("otpauth://totp/Example:alice@example.com?secret=JBSWY3DPEHPK3PXP")
	require.True(t, ok)
	require.Equal(t, "Example:alice@example.com", d.String())

	d, ok = Parse("otpauth://totp/alice@example.com?secret=JBSWY3DPEHPK3PXP")
	require.True(t, ok)
	require.Equal(t, "alice@example.com", d.String())
}
