package codec

import (
	"github.com/gogo/protobuf/proto"
	"github.com/iov-one/composite/errors"
)

// ProtoName is the name of the protobuf wire format.
const ProtoName = "proto"

// componentsField is the key of
//
//	message CompositeSignature { repeated bytes components = 1; }
const componentsField = 1<<3 | proto.WireBytes

// Proto encodes signatures as a protobuf message with a single repeated bytes
// field. Only that field is accepted when decoding.
type Proto struct{}

var _ Codec = Proto{}

// Name returns ProtoName.
func (Proto) Name() string {
	return ProtoName
}

// Encode returns the protobuf representation of given blobs.
func (Proto) Encode(blobs [][]byte) ([]byte, error) {
	if err := validateBlobs(blobs); err != nil {
		return nil, err
	}
	buf := proto.NewBuffer(nil)
	for i, blob := range blobs {
		if err := buf.EncodeVarint(componentsField); err != nil {
			return nil, errors.Wrapf(errors.ErrEncoding, "element %d key: %s", i, err)
		}
		if err := buf.EncodeRawBytes(blob); err != nil {
			return nil, errors.Wrapf(errors.ErrEncoding, "element %d: %s", i, err)
		}
	}
	return buf.Bytes(), nil
}

// Decode parses the protobuf representation of a composite signature.
func (Proto) Decode(raw []byte) ([][]byte, error) {
	if len(raw) == 0 {
		return nil, errors.Wrap(errors.ErrEncoding, "empty message")
	}
	var blobs [][]byte
	for i := 0; len(raw) > 0; i++ {
		key, n := proto.DecodeVarint(raw)
		if n == 0 {
			return nil, errors.Wrapf(errors.ErrEncoding, "malformed key of element %d", i)
		}
		if key != componentsField {
			return nil, errors.Wrapf(errors.ErrEncoding, "unexpected field key %d of element %d", key, i)
		}
		raw = raw[n:]

		size, n := proto.DecodeVarint(raw)
		if n == 0 {
			return nil, errors.Wrapf(errors.ErrEncoding, "malformed length of element %d", i)
		}
		raw = raw[n:]
		if size == 0 {
			return nil, errors.Wrapf(errors.ErrEncoding, "empty element %d", i)
		}
		if size > uint64(len(raw)) {
			return nil, errors.Wrapf(errors.ErrEncoding, "element %d exceeds message", i)
		}
		blob := make([]byte, size)
		copy(blob, raw[:size])
		blobs = append(blobs, blob)
		raw = raw[size:]
	}
	return blobs, nil
}

// MaxEncodedLen returns the size of the protobuf encoding of blobs of given
// sizes.
func (Proto) MaxEncodedLen(sizes []int) int {
	var total int
	for _, s := range sizes {
		total += proto.SizeVarint(componentsField) + proto.SizeVarint(uint64(s)) + s
	}
	return total
}
