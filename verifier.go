package composite

import (
	"context"

	"github.com/iov-one/composite/codec"
	"github.com/iov-one/composite/errors"
	"github.com/tendermint/tendermint/libs/log"
	"golang.org/x/sync/errgroup"
)

// Verifier checks composite signatures. A signature is accepted only if it
// contains exactly one signature per key component and every component
// accepts its signature.
//
// Verifier is stateless and safe for concurrent use.
type Verifier struct {
	codec    codec.Codec
	logger   log.Logger
	parallel bool
}

// NewVerifier returns a verifier expecting the canonical DER encoding.
func NewVerifier() Verifier {
	return Verifier{
		codec:  codec.Default,
		logger: log.NewNopLogger(),
	}
}

// WithCodec returns a copy of the verifier that decodes signatures with
// given codec.
func (v Verifier) WithCodec(c codec.Codec) Verifier {
	v.codec = c
	return v
}

// WithLogger returns a copy of the verifier that writes diagnostics to given
// logger.
func (v Verifier) WithLogger(l log.Logger) Verifier {
	v.logger = l
	return v
}

// Parallel returns a copy of the verifier that checks components
// concurrently. The signature is still rejected if any component rejects.
func (v Verifier) Parallel() Verifier {
	v.parallel = true
	return v
}

// Verify returns nil if sig is a valid composite signature of digest made
// with key.
//
// The returned error is ErrEncoding when sig cannot be decoded,
// ErrComponentCountMismatch when the number of signatures is not equal to
// the number of components and ErrComponentOperation when a component
// rejected its signature.
func (v Verifier) Verify(key *Key, digest, sig []byte) error {
	if err := v.verify(key, digest, sig); err != nil {
		report(v.logger, "composite verify", err)
		return err
	}
	return nil
}

func (v Verifier) verify(key *Key, digest, sig []byte) error {
	if key.Len() == 0 {
		return errors.ErrEmptyComponentSet.New("verify")
	}
	if len(sig) == 0 {
		return errors.ErrParamNull.New("signature")
	}

	blobs, err := v.codec.Decode(sig)
	if err != nil {
		return errors.Wrap(err, "decode signature sequence")
	}
	v.logger.Debug("signature sequence decoded", "components", len(blobs), "encoding", v.codec.Name())

	if len(blobs) != key.Len() {
		return errors.ErrComponentCountMismatch.Newf("%d signatures, %d components", len(blobs), key.Len())
	}

	if !v.parallel {
		for i, c := range key.components {
			if err := v.verifyComponent(i, c, digest, blobs[i]); err != nil {
				return err
			}
		}
		return nil
	}

	g, ctx := errgroup.WithContext(context.Background())
	for i, c := range key.components {
		g.Go(func() error {
			// A sibling already rejected, the signature is invalid
			// regardless of this component.
			if ctx.Err() != nil {
				return nil
			}
			return v.verifyComponent(i, c, digest, blobs[i])
		})
	}
	return g.Wait()
}

func (v Verifier) verifyComponent(i int, c ComponentKey, digest, blob []byte) (err error) {
	defer func() {
		if err != nil {
			err = errors.Wrapf(errors.ErrComponentOperation, "verify component %d: %s", i, err)
		}
	}()
	defer errors.Recover(&err)

	if !c.Verify(digest, blob) {
		return errors.ErrComponentOperation.New("signature rejected")
	}
	v.logger.Debug("component signature verified", "component", i)
	return nil
}
