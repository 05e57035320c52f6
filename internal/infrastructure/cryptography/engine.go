package cryptography

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"math/big"

	"rsa_vault_service/internal/domain/rsa"
	"rsa_vault_service/internal/pkg/logger"
)

// rsaEngine struct that implements the CryptoEngine interface
type rsaEngine struct {
	random io.Reader
	logger logger.Logger
}

// NewCryptoEngine creates an RSA encrypt/decrypt engine. The random reader
// feeds the padding filler bytes; nil falls back to crypto/rand.Reader.
func NewCryptoEngine(random io.Reader, logger logger.Logger) (rsa.CryptoEngine, error) {
	if random == nil {
		random = rand.Reader
	}
	return &rsaEngine{
		random: random,
		logger: logger,
	}, nil
}

// Encrypt pads the message into one PKCS#1 v1.5 block, interprets it as a
// big-endian integer m and computes c = m^e mod n. The ciphertext is always
// exactly the modulus byte length, left-zero-padded when the exponentiation
// result has fewer significant bytes.
func (r *rsaEngine) Encrypt(message []byte, publicKey *rsa.PublicKey) ([]byte, error) {
	if publicKey == nil {
		return nil, errors.New("public key cannot be nil")
	}

	modulusBytes := publicKey.ModulusByteLength()

	padded, err := pkcs1Pad(r.random, message, modulusBytes)
	if err != nil {
		return nil, err
	}

	m := new(big.Int).SetBytes(padded)
	c := new(big.Int).Exp(m, publicKey.E, publicKey.N)

	r.logger.Info("RSA encryption succeeded")
	return leftZeroPad(c.Bytes(), modulusBytes), nil
}

// Decrypt interprets the ciphertext as a big-endian integer c, computes
// m = c^d mod n and strips the padding. A padding failure is surfaced as
// ErrInvalidPadding and indicates a wrong key or corrupted ciphertext.
func (r *rsaEngine) Decrypt(ciphertext []byte, privateKey *rsa.PrivateKey) ([]byte, error) {
	if privateKey == nil {
		return nil, errors.New("private key cannot be nil")
	}

	modulusBytes := privateKey.ModulusByteLength()

	c := new(big.Int).SetBytes(ciphertext)
	m := new(big.Int).Exp(c, privateKey.D, privateKey.N)

	message, err := pkcs1Unpad(leftZeroPad(m.Bytes(), modulusBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to decrypt data: %w", err)
	}

	r.logger.Info("RSA decryption succeeded")
	return message, nil
}

// leftZeroPad extends b on the left with zero bytes to exactly size bytes.
func leftZeroPad(b []byte, size int) []byte {
	if len(b) >= size {
		return b
	}
	out := make([]byte, size)
	copy(out[size-len(b):], b)
	return out
}
