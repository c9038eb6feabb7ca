package crypto

import (
	"bytes"
	"crypto"
	"testing"

	"github.com/iov-one/composite/compositetest/assert"
)

func TestMaxDERSignatureSize(t *testing.T) {
	cases := map[string]struct {
		OrderBits int
		Want      int
	}{
		"p256":      {OrderBits: 256, Want: 72},
		"secp256k1": {OrderBits: 256, Want: 72},
		"p384":      {OrderBits: 384, Want: 104},
		"p521":      {OrderBits: 521, Want: 141},
	}
	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			assert.Equal(t, tc.Want, maxDERSignatureSize(tc.OrderBits))
		})
	}
}

func TestRSASecurityBits(t *testing.T) {
	cases := map[int]int{
		512:   0,
		1024:  80,
		2048:  112,
		3072:  128,
		4096:  128,
		7680:  192,
		15360: 256,
	}
	for bits, want := range cases {
		if got := rsaSecurityBits(bits); got != want {
			t.Errorf("%d bits: want %d, got %d", bits, want, got)
		}
	}
}

func TestHashedInput(t *testing.T) {
	cases := map[string]struct {
		Digest   []byte
		WantHash crypto.Hash
		WantSame bool
	}{
		"sha256 sized": {Digest: make([]byte, 32), WantHash: crypto.SHA256, WantSame: true},
		"sha384 sized": {Digest: make([]byte, 48), WantHash: crypto.SHA384, WantSame: true},
		"sha512 sized": {Digest: make([]byte, 64), WantHash: crypto.SHA512, WantSame: true},
		"odd size":     {Digest: make([]byte, 20), WantHash: crypto.SHA256, WantSame: false},
	}
	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			h, hashed := hashedInput(tc.Digest)
			assert.Equal(t, tc.WantHash, h)
			assert.Equal(t, h.Size(), len(hashed))
			assert.Equal(t, tc.WantSame, bytes.Equal(tc.Digest, hashed))
		})
	}
}
