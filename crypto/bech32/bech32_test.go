package bech32

import (
	"bytes"
	"encoding/hex"
	"strings"
	"testing"

	"github.com/iov-one/composite/compositetest"
	"github.com/iov-one/composite/compositetest/assert"
	"github.com/iov-one/composite/errors"
)

func TestBench32EncodeDecode(t *testing.T) {
	// bech32  -e -h tiov 746573742d7061796c6f6164
	const enc = `tiov1w3jhxapdwpshjmr0v9jqymqq4y`

	want, err := hex.DecodeString("746573742d7061796c6f6164")
	if err != nil {
		t.Fatal(err)
	}

	hrp, payload, err := Decode(enc)
	if err != nil {
		t.Fatal(err)
	}

	if !bytes.Equal(want, payload) {
		t.Logf("want %d", want)
		t.Logf("got  %d", payload)
		t.Fatal("invalid decode")
	}

	raw, err := Encode(hrp, payload)
	if err != nil {
		t.Fatalf("cannot encode: %s", err)
	}

	if string(raw) != enc {
		t.Fatalf("invalid encoding: %q", raw)
	}
}

func TestDecodeInvalid(t *testing.T) {
	// Last character changed, checksum does not match.
	_, _, err := Decode(`tiov1w3jhxapdwpshjmr0v9jqymqq4z`)
	assert.IsErr(t, errors.ErrEncoding, err)
}

func TestFingerprint(t *testing.T) {
	key := compositetest.NewKey(t, compositetest.Components(2)...)

	fp, err := Fingerprint(key)
	assert.Nil(t, err)
	if !strings.HasPrefix(fp, FingerprintHRP+"1") {
		t.Fatalf("unexpected prefix: %s", fp)
	}

	hrp, payload, err := Decode(fp)
	assert.Nil(t, err)
	assert.Equal(t, FingerprintHRP, hrp)
	want, err := key.Fingerprint()
	assert.Nil(t, err)
	assert.Equal(t, want, payload)

	_, err = Fingerprint(nil)
	assert.IsErr(t, errors.ErrEmptyComponentSet, err)
}
