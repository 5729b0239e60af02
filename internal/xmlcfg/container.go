// Package xmlcfg handles the encrypted config file container and the `$2...$`
// values found inside the decrypted xml.
package xmlcfg

import (
	"bytes"
	"compress/gzip"
	"crypto/aes"
	"crypto/cipher"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"hash/crc32"
	"io"

	"github.com/apex/log"
	"github.com/pkg/errors"
)

/*
the xml config file consists of

[0,   7] header
[8, ...] cipher text (gzip compressed, compress-then-encrypt)

## header
[0]    version, always 1
[4, 7] crc32 of the file name, little-endian

## ciphertext structure

[0,  15] IV
[16, 31] AES encrypted block 1
...
[    N*16,     N*16+15] AES encrypted block N
[(N+1)*16, (N+1)*16+31] HMAC-SHA256(ciphertext)

the last 4 bits of the IV is len(gzip) mod 16; the pad content is taken from the IV

the HMAC is encrypt-then-mac

the AES key (mainkey) is obtained by composing sha256 func 8192 times with the previous value + the init key. the first value are 32 bytes in which the first 16 bytes is the IV
*/

const (
	headerLen = 8
	macLen    = sha256.Size
	keyRounds = 8192

	// DefaultName seeds the IV when no name is given.
	DefaultName = "hw_tree.xml"
)

var initKey = []byte("hex:13395537D2730554A176799F6D56A239")

var headerTable = crc32.MakeTable(crc32.IEEE)

var (
	ErrContainerTooShort = errors.New("container too short")
	ErrContainerLength   = errors.New("container ciphertext is not block aligned")
	ErrHMACMismatch      = errors.New("hmac don't match")
)

// Encode compresses data and wraps it in an encrypted container. The IV is derived
// from the data size and name, so the output is reproducible.
func Encode(data []byte, name string) ([]byte, error) {
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	if _, err := zw.Write(data); err != nil {
		return nil, errors.Wrap(err, "gzip write")
	}
	if err := zw.Close(); err != nil {
		return nil, errors.Wrap(err, "gzip close")
	}
	return seal(buf.Bytes(), uint64(len(data)), name)
}

// seal encrypts an already compressed stream; size is the uncompressed length.
func seal(compressed []byte, size uint64, name string) ([]byte, error) {
	lenmod := len(compressed) % aes.BlockSize

	iv := containerIV(size, name)
	iv[15] = iv[15]&0xf0 | byte(lenmod)

	mainkey := mainKey(iv)
	block, err := aes.NewCipher(mainkey)
	if err != nil {
		return nil, errors.Wrap(err, "aes new cipher")
	}

	padded := len(compressed)
	if lenmod > 0 {
		padded += aes.BlockSize - lenmod
	}
	plain := make([]byte, padded)
	copy(plain, compressed)
	if lenmod > 0 {
		copy(plain[len(compressed):], iv[lenmod:])
	}

	output := make([]byte, headerLen+aes.BlockSize+padded+macLen)
	header := output[:headerLen]
	ciphertext := output[headerLen+aes.BlockSize : len(output)-macLen]

	cipher.NewCBCEncrypter(block, iv).CryptBlocks(ciphertext, plain)

	mac := hmac.New(sha256.New, mainkey)
	mac.Write(ciphertext)

	header[0] = 1
	binary.LittleEndian.PutUint32(header[4:8], crc32.Checksum([]byte(name), headerTable))

	copy(output[headerLen:headerLen+aes.BlockSize], iv)
	copy(output[len(output)-macLen:], mac.Sum(nil))

	return output, nil
}

// Decode verifies and decrypts a container and returns the decompressed xml.
func Decode(input []byte) ([]byte, error) {
	if len(input) < headerLen+aes.BlockSize+macLen {
		return nil, errors.Wrapf(ErrContainerTooShort, "%d bytes", len(input))
	}
	iv := input[headerLen : headerLen+aes.BlockSize]
	ciphertext := input[headerLen+aes.BlockSize : len(input)-macLen]
	filemac := input[len(input)-macLen:]
	if len(ciphertext)%aes.BlockSize != 0 {
		return nil, errors.Wrapf(ErrContainerLength, "%d bytes", len(ciphertext))
	}
	lenmod := int(iv[15] & 0x0f)

	mainkey := mainKey(iv)

	mac := hmac.New(sha256.New, mainkey)
	mac.Write(ciphertext)
	if !hmac.Equal(mac.Sum(nil), filemac) {
		return nil, ErrHMACMismatch
	}

	block, err := aes.NewCipher(mainkey)
	if err != nil {
		return nil, errors.Wrap(err, "aes new cipher")
	}
	compressed := make([]byte, len(ciphertext))
	cipher.NewCBCDecrypter(block, iv).CryptBlocks(compressed, ciphertext)

	if lenmod > 0 && len(compressed) > 0 {
		compressed = compressed[:len(compressed)-(aes.BlockSize-lenmod)]
	}

	zr, err := gzip.NewReader(bytes.NewReader(compressed))
	if err != nil {
		return nil, errors.Wrap(err, "gzip new reader")
	}
	zr.Multistream(false)

	var out bytes.Buffer
	if n, err := io.Copy(&out, zr); err != nil {
		if n == 0 {
			return nil, errors.Wrap(err, "gzip read")
		}
		log.WithError(err).WithField("read", n).Warn("gzip stream ended early")
	}
	return out.Bytes(), nil
}

// containerIV is sha256(size || name)[:16].
func containerIV(size uint64, name string) []byte {
	dig := sha256.New()
	binary.Write(dig, binary.BigEndian, size)
	dig.Write([]byte(name))

	return dig.Sum(nil)[:aes.BlockSize]
}

func mainKey(iv []byte) []byte {
	mainkey := make([]byte, 32)
	copy(mainkey[:aes.BlockSize], iv)

	dig := sha256.New()
	for r := 0; r < keyRounds; r++ {
		dig.Write(mainkey)
		dig.Write(initKey)
		mainkey = dig.Sum(mainkey[:0])
		dig.Reset()
	}
	return mainkey
}
