package profile

import (
	"encoding/json"
	"io/ioutil"

	composite "github.com/iov-one/composite"
	"github.com/iov-one/composite/codec"
	"github.com/iov-one/composite/crypto"
	"github.com/iov-one/composite/errors"
	"github.com/opencontainers/go-digest"
	"github.com/tendermint/tendermint/libs/log"
)

// OptionsKey is the configuration document key holding the profile.
const OptionsKey = "composite"

// DefaultDigest is used when a profile does not declare a digest algorithm.
const DefaultDigest = digest.SHA256

// Profile describes how to build and use a composite key.
type Profile struct {
	// Components lists component scheme names, in order.
	Components []string `json:"components"`
	// Digest is the algorithm used to hash messages before signing.
	Digest digest.Algorithm `json:"digest,omitempty"`
	// Encoding is the wire format of composite signatures.
	Encoding string `json:"encoding,omitempty"`
	// Parallel enables concurrent component processing.
	Parallel bool `json:"parallel,omitempty"`
}

// Validate returns all problems found in the profile as field errors.
func (p *Profile) Validate() error {
	var errs error

	if len(p.Components) == 0 {
		errs = errors.Append(errs,
			errors.Field("Components", errors.ErrEmptyComponentSet, "at least one component is required"))
	}
	for i, name := range p.Components {
		if !crypto.Has(name) {
			errs = errors.Append(errs,
				errors.Field("Components", errors.ErrNotFound, "component %d: unknown scheme %q", i, name))
		}
	}
	if p.Digest != "" && !p.Digest.Available() {
		errs = errors.Append(errs,
			errors.Field("Digest", errors.ErrUnsupported, "digest %q is not available", p.Digest))
	}
	if _, err := codec.ByName(p.Encoding); err != nil {
		errs = errors.AppendField(errs, "Encoding", err)
	}
	return errs
}

// DigestAlgorithm returns the declared digest algorithm or DefaultDigest.
func (p *Profile) DigestAlgorithm() digest.Algorithm {
	if p.Digest == "" {
		return DefaultDigest
	}
	return p.Digest
}

// Codec returns the codec of the declared encoding.
func (p *Profile) Codec() (codec.Codec, error) {
	return codec.ByName(p.Encoding)
}

// NewKey generates a fresh component of every declared scheme and returns
// them as a composite key.
func (p *Profile) NewKey() (*composite.Key, error) {
	if err := p.Validate(); err != nil {
		return nil, errors.Wrap(err, "profile")
	}
	ctx := composite.NewContextWithDigest(p.DigestAlgorithm())
	for i, name := range p.Components {
		c, err := crypto.Generate(name)
		if err != nil {
			return nil, errors.Wrapf(err, "component %d", i)
		}
		if err := ctx.Push(c); err != nil {
			return nil, errors.Wrapf(err, "component %d", i)
		}
	}
	return ctx.Finalize()
}

// Signer returns a signer configured according to the profile.
func (p *Profile) Signer(logger log.Logger) (composite.Signer, error) {
	c, err := p.Codec()
	if err != nil {
		return composite.Signer{}, err
	}
	s := composite.NewSigner().WithCodec(c).WithLogger(logger)
	if p.Parallel {
		s = s.Parallel()
	}
	return s, nil
}

// Verifier returns a verifier configured according to the profile.
func (p *Profile) Verifier(logger log.Logger) (composite.Verifier, error) {
	c, err := p.Codec()
	if err != nil {
		return composite.Verifier{}, err
	}
	v := composite.NewVerifier().WithCodec(c).WithLogger(logger)
	if p.Parallel {
		v = v.Parallel()
	}
	return v, nil
}

// FromOptions reads opts[OptionsKey] into a profile and validates it.
// Returns an error if anything goes wrong.
func FromOptions(opts composite.Options) (*Profile, error) {
	if opts[OptionsKey] == nil {
		return nil, errors.Wrapf(errors.ErrNotFound, "no %q configuration", OptionsKey)
	}
	var p Profile
	if err := opts.ReadOptions(OptionsKey, &p); err != nil {
		return nil, errors.Wrapf(errors.ErrInvalidInput, "read %s configuration: %s", OptionsKey, err)
	}
	if err := p.Validate(); err != nil {
		return nil, errors.Wrap(err, "validation")
	}
	return &p, nil
}

// Load reads a JSON configuration document from given path and returns the
// profile it contains.
func Load(path string) (*Profile, error) {
	raw, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrNotFound, "read %q: %s", path, err)
	}
	var opts composite.Options
	if err := json.Unmarshal(raw, &opts); err != nil {
		return nil, errors.Wrapf(errors.ErrInvalidInput, "parse %q: %s", path, err)
	}
	p, err := FromOptions(opts)
	if err != nil {
		return nil, errors.Wrapf(err, "load %q", path)
	}
	return p, nil
}
