package value

import (
	"errors"
	"testing"
)

func TestUnwrap(t *testing.T) {
	cases := []struct {
		in      string
		payload string
		err     error
	}{
		{in: "", err: ErrMalformedEnvelope},
		{in: "$2", err: ErrMalformedEnvelope},
		{in: "no-markers", err: ErrMalformedEnvelope},
		{in: "$3abc$", err: ErrMalformedEnvelope},
		{in: "2$abc$", err: ErrMalformedEnvelope},
		{in: "$2abc", err: ErrMalformedEnvelope},
		{in: "$2$", payload: ""},
		{in: "$2abc$", payload: "abc"},
		{in: "$2$$", payload: "$"},
	}

	for _, tc := range cases {
		got, err := Unwrap(tc.in)
		if !errors.Is(err, tc.err) {
			t.Fatalf("Unwrap(%q): expected error %v, got %v", tc.in, tc.err, err)
		}
		if got != tc.payload {
			t.Fatalf("Unwrap(%q): expected %q, got %q", tc.in, tc.payload, got)
		}
	}
}

func TestWrapUnwrap(t *testing.T) {
	for _, p := range []string{"", "x", "<*$I<(xS2#}],[CUmC^R5"} {
		w := Wrap(p)
		if !IsEnveloped(w) {
			t.Fatalf("%q is not enveloped", w)
		}
		got, err := Unwrap(w)
		if err != nil || got != p {
			t.Fatalf("expected %q, got %q (%v)", p, got, err)
		}
	}
}

func TestUnwrapIsNotRepeated(t *testing.T) {
	payload, err := Unwrap(vectors[1].in)
	if err != nil {
		t.Fatal(err)
	}
	// an already stripped payload must not decode partially
	if _, err := Unwrap(payload); !errors.Is(err, ErrMalformedEnvelope) {
		t.Fatalf("expected ErrMalformedEnvelope, got %v", err)
	}
	if out := DecryptOrEmpty(payload, DefaultKey); out != "" {
		t.Fatalf("expected empty result, got %q", out)
	}
}
