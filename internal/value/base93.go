package value

import (
	"encoding/binary"

	"github.com/pkg/errors"
)

/*
data is grouped in chunks of 5 digits which are the base-93 representation of a uint32
(least significant digit first), stored little-endian as 4 bytes.

	f(c) = \sum_{i=0}^4 93^i * c[i]   (mod 2^32)

93^5 > 2^32 so a hostile group can overflow; the sum is done in uint32 on purpose so it
wraps exactly like the firmware does.
*/

const (
	groupDigits = 5
	groupBytes  = 4
)

var weights = [groupDigits]uint32{1, base, base * base, base * base * base, base * base * base * base}

// DigitsToBytes packs every 5 digits into 4 bytes (HW_AES_PlainToBin).
func DigitsToBytes(digits []byte) ([]byte, error) {
	if len(digits)%groupDigits != 0 {
		return nil, errors.Wrapf(ErrInvalidDigitGroup, "%d digits", len(digits))
	}

	out := make([]byte, 0, len(digits)/groupDigits*groupBytes)
	for i := 0; i < len(digits); i += groupDigits {
		out = binary.LittleEndian.AppendUint32(out, groupToUint32(digits[i:i+groupDigits]))
	}
	return out, nil
}

// groupToUint32 is HW_AES_AesEnhSysToLong.
func groupToUint32(group []byte) uint32 {
	var v uint32
	for i, d := range group {
		v += uint32(d) * weights[i]
	}
	return v
}

// BytesToDigits is the inverse of DigitsToBytes.
func BytesToDigits(b []byte) ([]byte, error) {
	if len(b)%groupBytes != 0 {
		return nil, errors.Wrapf(ErrInvalidByteGroup, "%d bytes", len(b))
	}

	out := make([]byte, 0, len(b)/groupBytes*groupDigits)
	for i := 0; i < len(b); i += groupBytes {
		v := binary.LittleEndian.Uint32(b[i : i+groupBytes])
		for j := 0; j < groupDigits; j++ {
			out = append(out, byte(v%base))
			v /= base
		}
	}
	return out, nil
}
