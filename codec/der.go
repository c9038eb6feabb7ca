package codec

import (
	encoding_asn1 "encoding/asn1"

	"github.com/iov-one/composite/errors"
	"golang.org/x/crypto/cryptobyte"
	"golang.org/x/crypto/cryptobyte/asn1"
)

// DERName is the name of the DER wire format.
const DERName = "der"

// DER encodes signatures as
//
//	CompositeSignatureValue ::= SEQUENCE SIZE (1..MAX) OF BIT STRING
//
// Each BIT STRING carries one component signature with no unused bits.
type DER struct{}

var _ Codec = DER{}

// Name returns DERName.
func (DER) Name() string {
	return DERName
}

// Encode returns the DER representation of given blobs.
func (DER) Encode(blobs [][]byte) ([]byte, error) {
	if err := validateBlobs(blobs); err != nil {
		return nil, err
	}
	var b cryptobyte.Builder
	b.AddASN1(asn1.SEQUENCE, func(b *cryptobyte.Builder) {
		for _, blob := range blobs {
			b.AddASN1BitString(blob)
		}
	})
	raw, err := b.Bytes()
	if err != nil {
		return nil, errors.Wrap(errors.ErrEncoding, err.Error())
	}
	return raw, nil
}

// Decode parses a DER encoded sequence of bit strings.
//
// Bit strings with unused bits are accepted as long as the unused bits are
// zero, as some encoders compute the unused bits count from the trailing
// zero bits of the last octet. The returned blobs always contain all octets.
func (DER) Decode(raw []byte) ([][]byte, error) {
	input := cryptobyte.String(raw)
	var seq cryptobyte.String
	if !input.ReadASN1(&seq, asn1.SEQUENCE) {
		return nil, errors.Wrap(errors.ErrEncoding, "not a DER sequence")
	}
	if !input.Empty() {
		return nil, errors.Wrap(errors.ErrEncoding, "trailing data after sequence")
	}

	var blobs [][]byte
	for i := 0; !seq.Empty(); i++ {
		if !seq.PeekASN1Tag(asn1.BIT_STRING) {
			return nil, errors.Wrapf(errors.ErrEncoding, "element %d is not a bit string", i)
		}
		var bs encoding_asn1.BitString
		if !seq.ReadASN1BitString(&bs) {
			return nil, errors.Wrapf(errors.ErrEncoding, "malformed bit string element %d", i)
		}
		if len(bs.Bytes) == 0 {
			return nil, errors.Wrapf(errors.ErrEncoding, "empty element %d", i)
		}
		blobs = append(blobs, bs.Bytes)
	}
	return blobs, nil
}

// MaxEncodedLen returns the size of the DER encoding of bit strings of given
// sizes.
func (DER) MaxEncodedLen(sizes []int) int {
	var content int
	for _, s := range sizes {
		// The bit string content is prefixed with the unused bits octet.
		content += tlvLen(s + 1)
	}
	return tlvLen(content)
}

// tlvLen returns the full size of a DER element with n content octets.
func tlvLen(n int) int {
	size := 1 + 1 + n
	if n >= 0x80 {
		for l := n; l > 0; l >>= 8 {
			size++
		}
	}
	return size
}
