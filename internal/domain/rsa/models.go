package rsa

import "math/big"

// DefaultPublicExponent is the conventional RSA public exponent.
const DefaultPublicExponent = 65537

// DefaultMillerRabinRounds is the witness count used by the primality test
// when no explicit round count is configured.
const DefaultMillerRabinRounds = 5

// PaddingOverhead is the fixed PKCS#1 v1.5 cost per block: two header bytes,
// at least eight random nonzero filler bytes and one separator.
const PaddingOverhead = 11

// PublicKey is the public half of an RSA key pair: the exponent e and the
// modulus n.
type PublicKey struct {
	E *big.Int
	N *big.Int
}

// PrivateKey is the private half of an RSA key pair: the exponent d and the
// same modulus n.
type PrivateKey struct {
	D *big.Int
	N *big.Int
}

// KeyPair owns both halves of a generated key pair. Both share the modulus
// n = p*q by construction and the pair is immutable after generation.
// The primes p and q are retained so that the factorization of the modulus
// and the exponent relation e*d = 1 (mod (p-1)(q-1)) remain verifiable.
type KeyPair struct {
	Public  *PublicKey
	Private *PrivateKey
	P       *big.Int
	Q       *big.Int
}

// ModulusByteLength returns the byte length of the modulus, i.e. the exact
// ciphertext block size: ceil(bitlen(n)/8).
func (k *PublicKey) ModulusByteLength() int {
	return (k.N.BitLen() + 7) / 8
}

// ModulusByteLength returns the byte length of the modulus.
func (k *PrivateKey) ModulusByteLength() int {
	return (k.N.BitLen() + 7) / 8
}

// MaxMessageLength returns the longest plaintext that fits into one block
// under PKCS#1 v1.5 padding.
func (k *PublicKey) MaxMessageLength() int {
	return k.ModulusByteLength() - PaddingOverhead
}
