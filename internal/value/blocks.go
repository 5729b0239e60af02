package value

import (
	"crypto/aes"

	"github.com/pkg/errors"
)

// BlockChars is the number of payload characters encoding one 16 byte cipher block.
const BlockChars = aes.BlockSize / groupBytes * groupDigits

// Blocks is a payload split into ciphertext and IV.
//
//	data: <cipher text><IV>
type Blocks struct {
	Ciphertext []byte
	IV         []byte
}

// Split decodes payload and separates the trailing IV block from the ciphertext.
// A payload without blocks yields no IV and an empty ciphertext.
func Split(payload string) (Blocks, error) {
	n := len(payload) / BlockChars
	if len(payload) != n*BlockChars {
		return Blocks{}, errors.Wrapf(ErrInvalidBlockLength, "payload of %d chars", len(payload))
	}
	if n == 0 {
		return Blocks{Ciphertext: []byte{}}, nil
	}

	last := (n - 1) * BlockChars
	iv, err := decodePayload(payload[last:])
	if err != nil {
		return Blocks{}, errors.Wrap(err, "iv block")
	}
	ct, err := decodePayload(payload[:last])
	if err != nil {
		return Blocks{}, errors.Wrap(err, "ciphertext blocks")
	}
	return Blocks{Ciphertext: ct, IV: iv}, nil
}

// Join packs ciphertext followed by iv into a payload.
func Join(ciphertext, iv []byte) (string, error) {
	if len(iv) != aes.BlockSize {
		return "", errors.Wrapf(ErrInvalidIV, "%d bytes", len(iv))
	}
	if len(ciphertext)%aes.BlockSize != 0 {
		return "", errors.Wrapf(ErrInvalidBlockLength, "ciphertext of %d bytes", len(ciphertext))
	}

	raw := make([]byte, 0, len(ciphertext)+len(iv))
	raw = append(raw, ciphertext...)
	raw = append(raw, iv...)

	digits, err := BytesToDigits(raw)
	if err != nil {
		return "", err
	}
	return DigitsToChars(digits)
}

func decodePayload(s string) ([]byte, error) {
	digits, err := CharsToDigits(s)
	if err != nil {
		return nil, err
	}
	return DigitsToBytes(digits)
}
