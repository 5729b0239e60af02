package value

import "github.com/pkg/errors"

var (
	// ErrMalformedEnvelope is returned when the input is not of the form `$2...$`.
	ErrMalformedEnvelope = errors.New("malformed envelope")
	// ErrInvalidCharacter is returned for payload characters outside 0x21..0x7e.
	ErrInvalidCharacter = errors.New("invalid payload character")
	// ErrInvalidBlockLength is returned when the payload is not made of whole 20 char blocks.
	ErrInvalidBlockLength = errors.New("invalid block length")
	// ErrInvalidDigitGroup is returned when a digit buffer is not a multiple of 5.
	ErrInvalidDigitGroup = errors.New("invalid digit group")
	// ErrInvalidByteGroup is returned when a byte buffer is not a multiple of 4.
	ErrInvalidByteGroup = errors.New("invalid byte group")
	// ErrInvalidDigit is returned for digits outside the base-93 range.
	ErrInvalidDigit = errors.New("invalid digit")
	// ErrInvalidIV is returned when the IV is not one AES block.
	ErrInvalidIV = errors.New("invalid iv")
	// ErrInvalidKey is returned when a key is not valid hex.
	ErrInvalidKey = errors.New("invalid key")
	// ErrCipher is returned when crypto/aes rejects the key.
	ErrCipher = errors.New("cipher failure")
	// ErrTextDecode is returned when the decrypted bytes are not UTF-8.
	ErrTextDecode = errors.New("plaintext is not valid utf-8")

	// ErrUnsupportedInput and ErrUnsupportedKey are returned by DecryptInput for
	// values that are neither text nor bytes.
	ErrUnsupportedInput = errors.New("unsupported input type")
	ErrUnsupportedKey   = errors.New("unsupported key type")
)
