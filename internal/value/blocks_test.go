package value

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestSplitLength(t *testing.T) {
	// bad characters must not matter, length is checked first
	for _, n := range []int{1, 19, 21, 39, 41} {
		_, err := Split(strings.Repeat(" ", n))
		if !errors.Is(err, ErrInvalidBlockLength) {
			t.Fatalf("%d chars: expected ErrInvalidBlockLength, got %v", n, err)
		}
	}
}

func TestSplitDegenerate(t *testing.T) {
	b, err := Split("")
	if err != nil {
		t.Fatal(err)
	}
	if len(b.Ciphertext) != 0 || b.IV != nil {
		t.Fatalf("unexpected blocks %+v", b)
	}

	b, err = Split(strings.Repeat("!", BlockChars))
	if err != nil {
		t.Fatal(err)
	}
	if len(b.Ciphertext) != 0 || !bytes.Equal(b.IV, make([]byte, 16)) {
		t.Fatalf("unexpected blocks %+v", b)
	}
}

func TestSplitIVIsolation(t *testing.T) {
	last := "{8RL,D$Ii;jl~)K3X6FZ"
	want := mustHex("00112233445566778899aabbccddeeff")
	filler := "<*$I<(xS2#}],[CUmC^R"

	for n := 1; n <= 4; n++ {
		payload := strings.Repeat(filler, n-1) + last
		b, err := Split(payload)
		if err != nil {
			t.Fatalf("n=%d: %v", n, err)
		}
		if !bytes.Equal(b.IV, want) {
			t.Fatalf("n=%d: expected iv %x got %x", n, want, b.IV)
		}
		if len(b.Ciphertext) != (n-1)*16 {
			t.Fatalf("n=%d: ciphertext of %d bytes", n, len(b.Ciphertext))
		}
	}
}

func TestSplitJoin(t *testing.T) {
	for _, v := range vectors[1:] {
		payload, err := Unwrap(v.in)
		if err != nil {
			t.Fatal(err)
		}
		b, err := Split(payload)
		if err != nil {
			t.Fatalf("%s: %v", v.name, err)
		}
		if !bytes.Equal(b.IV, mustHex(v.iv)) {
			t.Fatalf("%s: unexpected iv %x", v.name, b.IV)
		}
		back, err := Join(b.Ciphertext, b.IV)
		if err != nil {
			t.Fatal(err)
		}
		if back != payload {
			t.Fatalf("%s: expected %q got %q", v.name, payload, back)
		}
	}
}

func TestJoinValidation(t *testing.T) {
	if _, err := Join(nil, make([]byte, 15)); !errors.Is(err, ErrInvalidIV) {
		t.Fatalf("expected ErrInvalidIV, got %v", err)
	}
	if _, err := Join(make([]byte, 17), make([]byte, 16)); !errors.Is(err, ErrInvalidBlockLength) {
		t.Fatalf("expected ErrInvalidBlockLength, got %v", err)
	}
}

func TestSplitInvalidCharacter(t *testing.T) {
	_, err := Split(strings.Repeat("!", 19) + " ")
	if !errors.Is(err, ErrInvalidCharacter) {
		t.Fatalf("expected ErrInvalidCharacter, got %v", err)
	}
}
