package rsa

import "errors"

// All four conditions are unrecoverable at the point of detection and are
// surfaced to the caller as explicit errors. None of them stems from a
// transient condition, so callers must not retry automatically.
var (
	// ErrMessageTooLong indicates a plaintext longer than the modulus can
	// hold once the 11 bytes of PKCS#1 v1.5 overhead are accounted for.
	ErrMessageTooLong = errors.New("message too long for RSA modulus")

	// ErrInvalidPadding indicates a decrypted block that does not match the
	// expected 0x00 0x02 ... 0x00 structure. It signals a wrong key,
	// corrupted ciphertext or tampering.
	ErrInvalidPadding = errors.New("invalid PKCS#1 v1.5 padding")

	// ErrNoModularInverse indicates that the public exponent shares a common
	// factor with the totient, so no private exponent exists. Key-pair
	// construction must abort when this is reported.
	ErrNoModularInverse = errors.New("no modular inverse exists")

	// ErrMalformedKeyMaterial indicates exported key material that cannot be
	// imported: invalid JSON, invalid base64 or a missing field.
	ErrMalformedKeyMaterial = errors.New("malformed key material")
)
