package value

import "github.com/pkg/errors"

/*
the payload alphabet (HW_AES_AscUnvisible) is printable ascii 0x21..0x7e shifted down
by 0x21 (char !), except 0x7e (char ~) which maps to 0x1e.

0x3f (char ?) also lands on 0x1e, so the encoder emits ~ for that digit and never ?.
*/

const (
	alphabetFirst = 0x21
	alphabetLast  = 0x7e
	tildeDigit    = 0x1e

	base = 93
)

// CharsToDigits maps every payload character to its base-93 digit.
func CharsToDigits(payload string) ([]byte, error) {
	digits := make([]byte, len(payload))
	for i := 0; i < len(payload); i++ {
		c := payload[i]
		switch {
		case c == alphabetLast:
			digits[i] = tildeDigit
		case c >= alphabetFirst && c < alphabetLast:
			digits[i] = c - alphabetFirst
		default:
			return nil, errors.Wrapf(ErrInvalidCharacter, "0x%02x at offset %d", c, i)
		}
	}
	return digits, nil
}

// DigitsToChars is the inverse of CharsToDigits.
func DigitsToChars(digits []byte) (string, error) {
	chars := make([]byte, len(digits))
	for i, d := range digits {
		switch {
		case d == tildeDigit:
			chars[i] = alphabetLast
		case d < base:
			chars[i] = d + alphabetFirst
		default:
			return "", errors.Wrapf(ErrInvalidDigit, "%d at offset %d", d, i)
		}
	}
	return string(chars), nil
}
