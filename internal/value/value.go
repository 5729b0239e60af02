// Package value decodes and encodes `$2...$` configuration values (mode 2).
//
// These values are AES-CBC encrypted; the ciphertext and IV are packed into a
// printable base-93 alphabet so they can live inside xml attributes.
//
// the call tree for the decode is
//
//	HW_AESCBC_Decrypt
//		string HTML unescape
//		HW_AES_Trim: extracts $2<data>$
//		HW_AES_AscUnvisible: "unescapes" <data ascii>
//		HW_AES_PlainToBin: iterate in chunks of 5 bytes
//			HW_AES_AesEnhSysToLong: decode 5 bytes in base-93 representation to 4 bytes
//
// based on https://blog.fayaru.me/posts/huawei_router_config/
package value

import (
	"bytes"
	"crypto/aes"
	"html"
	"unicode/utf8"

	"github.com/pkg/errors"
)

// Decrypt recovers the plaintext of an enveloped value.
//
// The CBC output has the ciphertext's length, but trailing NUL bytes are then trimmed
// because the firmware NUL-pads short values. A plaintext that itself ends in NUL comes
// back shorter than the ciphertext. The result must be valid UTF-8.
func Decrypt(input string, key Key) (string, error) {
	payload, err := Unwrap(html.UnescapeString(input))
	if err != nil {
		return "", err
	}

	blocks, err := Split(payload)
	if err != nil {
		return "", err
	}
	if len(blocks.Ciphertext) == 0 {
		return "", nil
	}

	out, err := decryptCBC(blocks.Ciphertext, key, blocks.IV)
	if err != nil {
		return "", err
	}

	out = bytes.TrimRight(out, "\x00")
	if !utf8.Valid(out) {
		return "", errors.Wrapf(ErrTextDecode, "%d bytes", len(out))
	}
	return string(out), nil
}

// DecryptOrEmpty is Decrypt with every failure reported as "".
func DecryptOrEmpty(input string, key Key) string {
	out, err := Decrypt(input, key)
	if err != nil {
		return ""
	}
	return out
}

// DecryptInput is Decrypt for callers holding untyped values. input may be a string
// or []byte; key may be a Key, raw []byte or a hex string.
func DecryptInput(input, key any) (string, error) {
	var s string
	switch v := input.(type) {
	case string:
		s = v
	case []byte:
		s = string(v)
	default:
		return "", errors.Wrapf(ErrUnsupportedInput, "%T", input)
	}

	var k Key
	switch v := key.(type) {
	case Key:
		k = v
	case []byte:
		k = Key(v)
	case string:
		var err error
		if k, err = ParseKey(v); err != nil {
			return "", err
		}
	default:
		return "", errors.Wrapf(ErrUnsupportedKey, "%T", key)
	}

	return Decrypt(s, k)
}

// Encrypt produces an enveloped value for plaintext. The plaintext is padded with NULs
// to the block size, the way the firmware stores short values.
func Encrypt(plaintext string, key Key, iv []byte) (string, error) {
	padded := make([]byte, (len(plaintext)+aes.BlockSize-1)/aes.BlockSize*aes.BlockSize)
	copy(padded, plaintext)

	ct, err := encryptCBC(padded, key, iv)
	if err != nil {
		return "", err
	}

	payload, err := Join(ct, iv)
	if err != nil {
		return "", err
	}
	return Wrap(payload), nil
}
