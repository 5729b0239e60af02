package value

import (
	"crypto/aes"
	"crypto/cipher"
	"encoding/hex"
	"io"

	"github.com/pkg/errors"
)

// Key is an AES key. Its size is checked by crypto/aes when used.
type Key []byte

// DefaultKey is the firmware value key, sha256("9jK0lk5kLmxn8sjojW962llHY76xAc2zDf7!ui%s9(lmV1L8").
var DefaultKey = MustParseKey("6fc6e3436a53b6310dc09a475494ac774e7afb21b9e58fc8e58b5660e48e2498")

// ParseKey decodes a hex key. Odd length input is rejected rather than guessed at.
func ParseKey(s string) (Key, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, errors.Wrapf(ErrInvalidKey, "%v", err)
	}
	return Key(b), nil
}

// MustParseKey is ParseKey for constants; it panics on bad input.
func MustParseKey(s string) Key {
	k, err := ParseKey(s)
	if err != nil {
		panic(err)
	}
	return k
}

// NewIV reads a fresh IV from r.
func NewIV(r io.Reader) ([]byte, error) {
	iv := make([]byte, aes.BlockSize)
	if _, err := io.ReadFull(r, iv); err != nil {
		return nil, errors.Wrap(err, "read iv")
	}
	return iv, nil
}

func newBlock(key Key, iv []byte) (cipher.Block, error) {
	if len(iv) != aes.BlockSize {
		return nil, errors.Wrapf(ErrInvalidIV, "%d bytes", len(iv))
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, errors.Wrapf(ErrCipher, "%v", err)
	}
	return block, nil
}

// decryptCBC runs raw AES-CBC. No padding is removed: the output is exactly len(ct) bytes.
func decryptCBC(ct []byte, key Key, iv []byte) ([]byte, error) {
	if len(ct)%aes.BlockSize != 0 {
		return nil, errors.Wrapf(ErrInvalidBlockLength, "ciphertext of %d bytes", len(ct))
	}
	block, err := newBlock(key, iv)
	if err != nil {
		return nil, err
	}

	out := make([]byte, len(ct))
	cipher.NewCBCDecrypter(block, iv).CryptBlocks(out, ct)
	return out, nil
}

func encryptCBC(pt []byte, key Key, iv []byte) ([]byte, error) {
	if len(pt)%aes.BlockSize != 0 {
		return nil, errors.Wrapf(ErrInvalidBlockLength, "plaintext of %d bytes", len(pt))
	}
	block, err := newBlock(key, iv)
	if err != nil {
		return nil, err
	}

	out := make([]byte, len(pt))
	cipher.NewCBCEncrypter(block, iv).CryptBlocks(out, pt)
	return out, nil
}
