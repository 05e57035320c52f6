package rsa

import "math/big"

// PrimeGenerator produces probable primes of an exact bit length.
type PrimeGenerator interface {
	// GeneratePrime draws random odd integers of exactly the given bit
	// length until one passes the primality test. The bit length must be
	// at least 2.
	GeneratePrime(bits int) (*big.Int, error)

	// IsProbablyPrime reports whether n passes the configured number of
	// Miller-Rabin rounds.
	IsProbablyPrime(n *big.Int) (bool, error)
}

// KeyPairGenerator constructs RSA key pairs.
type KeyPairGenerator interface {
	// GenerateKeyPair produces a key pair whose modulus has roughly the
	// given bit length (the product of two bitLength/2-bit primes).
	GenerateKeyPair(bitLength int) (*KeyPair, error)
}

// CryptoEngine performs single-block PKCS#1 v1.5 encryption and decryption.
// Encrypt is non-deterministic because of the random filler bytes, but
// Decrypt(Encrypt(m)) always recovers m under the matching key pair.
type CryptoEngine interface {
	// Encrypt pads the message and returns a ciphertext of exactly the
	// modulus byte length.
	Encrypt(message []byte, publicKey *PublicKey) ([]byte, error)

	// Decrypt reverses Encrypt. It returns ErrInvalidPadding when the
	// recovered block does not carry a valid padding structure.
	Decrypt(ciphertext []byte, privateKey *PrivateKey) ([]byte, error)
}

// KeyCodec translates key material to and from the textual exchange format.
// The format is transparent and unauthenticated: records with base64-encoded
// big-endian integer fields, no versioning and no integrity protection.
type KeyCodec interface {
	ExportPublicKey(publicKey *PublicKey) (string, error)
	ExportPrivateKey(privateKey *PrivateKey) (string, error)
	ImportPublicKey(encoded string) (*PublicKey, error)
	ImportPrivateKey(encoded string) (*PrivateKey, error)
}
