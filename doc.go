/*
Package composite implements composite signatures: a single logical keypair
made of an ordered list of independent component keys, typically a classic
algorithm combined with a post-quantum one.

A Key is built with a Context and is immutable once finalized. Signer asks
every component to sign the same digest and encodes the resulting signatures,
in component order, with a codec from the codec package. Verifier accepts a
composite signature only if it carries exactly one signature per component and
every component accepts its own.

Concrete component implementations live in the crypto package. Method exposes
the same lifecycle through a named registry.
*/
package composite
