/*
Package crypto provides component keys for composite signatures and a
registry of the schemes they implement.

Classic schemes are Ed25519, ECDSA on P-256, P-384 and secp256k1, and RSA-PSS.
Post-quantum ML-DSA and Ed448 are backed by circl. Every key can expose a
verification only copy of itself with PublicComponent.
*/
package crypto
