/*
Package bech32 renders composite key fingerprints in a human friendly,
checksummed form.
*/
package bech32

import (
	"github.com/btcsuite/btcutil/bech32"
	composite "github.com/iov-one/composite"
	"github.com/iov-one/composite/errors"
)

// FingerprintHRP is the human readable part of encoded key fingerprints.
const FingerprintHRP = "csig"

// Decode converts given bech32 encoded representation into raw payload and a
// human readable part.
func Decode(raw string) (string, []byte, error) {
	hrp, payload, err := bech32.Decode(raw)
	if err != nil {
		return "", nil, errors.Wrapf(errors.ErrEncoding, "bech32 decode: %s", err)
	}
	payload, err = bech32.ConvertBits(payload, 5, 8, false)
	if err != nil {
		return "", nil, errors.Wrapf(errors.ErrEncoding, "convert bits: %s", err)
	}
	return hrp, payload, nil
}

// Encode converts given bytes into bech32 encoded representation.
func Encode(hrp string, payload []byte) ([]byte, error) {
	payload, err := bech32.ConvertBits(payload, 8, 5, true)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrEncoding, "convert bits: %s", err)
	}
	raw, err := bech32.Encode(hrp, payload)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrEncoding, "bech32 encode: %s", err)
	}
	return []byte(raw), nil
}

// Fingerprint returns the bech32 encoded fingerprint of given key.
func Fingerprint(key *composite.Key) (string, error) {
	fp, err := key.Fingerprint()
	if err != nil {
		return "", errors.Wrap(err, "fingerprint")
	}
	raw, err := Encode(FingerprintHRP, fp)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}
