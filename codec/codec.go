/*
Package codec implements the serialization of a composite signature: an
ordered sequence of opaque, non empty byte blobs, one per key component.

Two wire formats are provided. DER is the canonical one and encodes the
sequence as an ASN.1 SEQUENCE OF BIT STRING, compatible with composite
signatures produced by other PKI toolkits. Proto encodes the same sequence as
a protobuf message with a single repeated bytes field.
*/
package codec

import (
	"github.com/iov-one/composite/errors"
)

// Codec encodes and decodes an ordered list of signature blobs.
type Codec interface {
	// Name returns the identifier of the wire format.
	Name() string

	// Encode serializes given blobs. Blobs order is preserved. An empty
	// list or an empty blob cannot be encoded.
	Encode(blobs [][]byte) ([]byte, error)

	// Decode parses raw data into the list of blobs. Any trailing data,
	// unexpected element type or empty element results in an error.
	Decode(raw []byte) ([][]byte, error)

	// MaxEncodedLen returns the upper bound of the encoded size of a
	// sequence of blobs whose sizes do not exceed given values.
	MaxEncodedLen(sizes []int) int
}

// Default is the canonical codec.
var Default Codec = DER{}

// ByName returns a codec for given wire format name.
func ByName(name string) (Codec, error) {
	switch name {
	case "", DERName:
		return DER{}, nil
	case ProtoName:
		return Proto{}, nil
	default:
		return nil, errors.Wrapf(errors.ErrNotFound, "codec %q", name)
	}
}

// Names returns all supported wire format names.
func Names() []string {
	return []string{DERName, ProtoName}
}

func validateBlobs(blobs [][]byte) error {
	if len(blobs) == 0 {
		return errors.Wrap(errors.ErrEncoding, "empty sequence")
	}
	for i, b := range blobs {
		if len(b) == 0 {
			return errors.Wrapf(errors.ErrEncoding, "empty element %d", i)
		}
	}
	return nil
}
