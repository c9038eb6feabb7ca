package codec

import (
	"bytes"
	"testing"

	"github.com/iov-one/composite/compositetest/assert"
	"github.com/iov-one/composite/errors"
)

func TestRoundTrip(t *testing.T) {
	cases := map[string][][]byte{
		"single byte":   {{0x01}},
		"trailing zero": {{0x80, 0x00}},
		"two elements":  {bytes.Repeat([]byte{0xAA}, 64), bytes.Repeat([]byte{0x55}, 72)},
		"long element":  {bytes.Repeat([]byte{0x01}, 3309), {0xff}},
		"many elements": {{1}, {2, 2}, {3, 3, 3}, {4, 4, 4, 4}, {5, 5, 5, 5, 5}},
	}

	for _, c := range []Codec{DER{}, Proto{}} {
		for testName, blobs := range cases {
			t.Run(c.Name()+"/"+testName, func(t *testing.T) {
				raw, err := c.Encode(blobs)
				assert.Nil(t, err)
				got, err := c.Decode(raw)
				assert.Nil(t, err)
				assert.Equal(t, blobs, got)

				sizes := make([]int, len(blobs))
				for i, b := range blobs {
					sizes[i] = len(b)
				}
				if bound := c.MaxEncodedLen(sizes); len(raw) != bound {
					t.Fatalf("want encoded size %d, got %d", bound, len(raw))
				}
			})
		}
	}
}

func TestEncodeRejectsEmpty(t *testing.T) {
	for _, c := range []Codec{DER{}, Proto{}} {
		t.Run(c.Name(), func(t *testing.T) {
			_, err := c.Encode(nil)
			assert.IsErr(t, errors.ErrEncoding, err)
			_, err = c.Encode([][]byte{{1}, {}})
			assert.IsErr(t, errors.ErrEncoding, err)
		})
	}
}

func TestDERDecode(t *testing.T) {
	cases := map[string]struct {
		raw     []byte
		want    [][]byte
		wantErr *errors.Error
	}{
		"two bit strings": {
			raw:  []byte{0x30, 0x08, 0x03, 0x02, 0x00, 0x01, 0x03, 0x02, 0x00, 0x02},
			want: [][]byte{{0x01}, {0x02}},
		},
		"unused bits are accepted when zero": {
			raw:  []byte{0x30, 0x04, 0x03, 0x02, 0x04, 0xf0},
			want: [][]byte{{0xf0}},
		},
		"empty sequence": {
			raw:  []byte{0x30, 0x00},
			want: nil,
		},
		"not a sequence": {
			raw:     []byte{0x31, 0x04, 0x03, 0x02, 0x00, 0x01},
			wantErr: errors.ErrEncoding,
		},
		"octet string element": {
			raw:     []byte{0x30, 0x03, 0x04, 0x01, 0x01},
			wantErr: errors.ErrEncoding,
		},
		"trailing data": {
			raw:     []byte{0x30, 0x04, 0x03, 0x02, 0x00, 0x01, 0x00},
			wantErr: errors.ErrEncoding,
		},
		"truncated": {
			raw:     []byte{0x30, 0x08, 0x03, 0x02, 0x00, 0x01},
			wantErr: errors.ErrEncoding,
		},
		"empty bit string": {
			raw:     []byte{0x30, 0x03, 0x03, 0x01, 0x00},
			wantErr: errors.ErrEncoding,
		},
		"non zero padding bits": {
			raw:     []byte{0x30, 0x04, 0x03, 0x02, 0x04, 0xf1},
			wantErr: errors.ErrEncoding,
		},
		"nil input": {
			raw:     nil,
			wantErr: errors.ErrEncoding,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			got, err := DER{}.Decode(tc.raw)
			assert.IsErr(t, tc.wantErr, err)
			if tc.wantErr == nil {
				assert.Equal(t, tc.want, got)
			}
		})
	}
}

func TestProtoDecode(t *testing.T) {
	cases := map[string]struct {
		raw     []byte
		want    [][]byte
		wantErr *errors.Error
	}{
		"two elements": {
			raw:  []byte{0x0a, 0x01, 0x01, 0x0a, 0x02, 0x02, 0x02},
			want: [][]byte{{0x01}, {0x02, 0x02}},
		},
		"unknown field": {
			raw:     []byte{0x12, 0x01, 0x01},
			wantErr: errors.ErrEncoding,
		},
		"varint wire type": {
			raw:     []byte{0x08, 0x01},
			wantErr: errors.ErrEncoding,
		},
		"length exceeds data": {
			raw:     []byte{0x0a, 0x05, 0x01},
			wantErr: errors.ErrEncoding,
		},
		"empty element": {
			raw:     []byte{0x0a, 0x00},
			wantErr: errors.ErrEncoding,
		},
		"missing length": {
			raw:     []byte{0x0a},
			wantErr: errors.ErrEncoding,
		},
		"empty message": {
			raw:     []byte{},
			wantErr: errors.ErrEncoding,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			got, err := Proto{}.Decode(tc.raw)
			assert.IsErr(t, tc.wantErr, err)
			if tc.wantErr == nil {
				assert.Equal(t, tc.want, got)
			}
		})
	}
}

func TestDERIsNotProto(t *testing.T) {
	raw, err := DER{}.Encode([][]byte{{1, 2, 3}})
	assert.Nil(t, err)
	if _, err := (Proto{}).Decode(raw); !errors.ErrEncoding.Is(err) {
		t.Fatalf("DER data must not decode as protobuf, got %v", err)
	}
}

func TestByName(t *testing.T) {
	for _, name := range Names() {
		c, err := ByName(name)
		assert.Nil(t, err)
		assert.Equal(t, name, c.Name())
	}
	c, err := ByName("")
	assert.Nil(t, err)
	assert.Equal(t, DERName, c.Name())

	_, err = ByName("xml")
	assert.IsErr(t, errors.ErrNotFound, err)
}
