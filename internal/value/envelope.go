package value

import "github.com/pkg/errors"

const (
	envelopePrefix = "$2"
	envelopeSuffix = "$"
)

// IsEnveloped reports whether s carries the `$2...$` markers.
func IsEnveloped(s string) bool {
	return len(s) >= 3 && s[0] == '$' && s[1] == '2' && s[len(s)-1] == '$'
}

// Unwrap strips the `$2` prefix and `$` suffix and returns the encoded payload.
// "$2$" is a valid envelope with an empty payload.
func Unwrap(s string) (string, error) {
	if !IsEnveloped(s) {
		return "", errors.Wrapf(ErrMalformedEnvelope, "input of %d chars", len(s))
	}
	return s[len(envelopePrefix) : len(s)-len(envelopeSuffix)], nil
}

// Wrap is the inverse of Unwrap.
func Wrap(payload string) string {
	return envelopePrefix + payload + envelopeSuffix
}
