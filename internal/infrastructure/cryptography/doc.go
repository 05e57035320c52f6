// Package cryptography implements the RSA cryptosystem from first
// principles on top of math/big: probabilistic prime generation with a
// Miller-Rabin test, the extended Euclidean modular inverse used to derive
// the private exponent, PKCS#1 v1.5 block padding and the encrypt/decrypt
// engine.
//
// The arithmetic here is not hardened against timing side channels, so the
// package is suitable for educational and low-assurance use only. All
// randomness is drawn from an injected io.Reader; production callers pass
// crypto/rand.Reader, tests may pass a seeded source for determinism.
package cryptography
