package cryptography

import (
	"crypto/rand"
	"fmt"
	"io"
	"math/big"

	"rsa_vault_service/internal/domain/rsa"
	"rsa_vault_service/internal/pkg/config"
	"rsa_vault_service/internal/pkg/logger"
)

// keyPairBuilder struct that implements the KeyPairGenerator interface
type keyPairBuilder struct {
	publicExponent *big.Int
	primes         rsa.PrimeGenerator
	logger         logger.Logger
}

// NewKeyPairBuilder creates a key pair generator. A nil random reader falls
// back to crypto/rand.Reader; nil settings fall back to the conventional
// e = 65537 and 5 Miller-Rabin rounds.
func NewKeyPairBuilder(random io.Reader, settings *config.RSASettings, logger logger.Logger) (rsa.KeyPairGenerator, error) {
	if random == nil {
		random = rand.Reader
	}

	exponent := uint64(rsa.DefaultPublicExponent)
	rounds := rsa.DefaultMillerRabinRounds
	if settings != nil {
		if err := settings.Validate(); err != nil {
			return nil, fmt.Errorf("invalid RSA settings: %w", err)
		}
		exponent = settings.PublicExponent
		rounds = settings.MillerRabinRounds
	}

	primes, err := NewPrimeGenerator(random, rounds, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create prime generator: %w", err)
	}

	return &keyPairBuilder{
		publicExponent: new(big.Int).SetUint64(exponent),
		primes:         primes,
		logger:         logger,
	}, nil
}

// GenerateKeyPair generates two primes of bitLength/2 bits each, computes
// n = p*q and phi = (p-1)(q-1), and derives the private exponent as the
// modular inverse of e modulo phi. If no inverse exists (e shares a factor
// with phi, exceptionally rare with e = 65537) generation aborts with
// ErrNoModularInverse.
func (b *keyPairBuilder) GenerateKeyPair(bitLength int) (*rsa.KeyPair, error) {
	if bitLength < 16 || bitLength%2 != 0 {
		return nil, fmt.Errorf("modulus bit length must be an even number of at least 16, got %d", bitLength)
	}

	primeBits := bitLength / 2

	p, err := b.primes.GeneratePrime(primeBits)
	if err != nil {
		return nil, fmt.Errorf("failed to generate first prime: %w", err)
	}

	q, err := b.primes.GeneratePrime(primeBits)
	if err != nil {
		return nil, fmt.Errorf("failed to generate second prime: %w", err)
	}
	// The two primes must be distinct.
	for p.Cmp(q) == 0 {
		q, err = b.primes.GeneratePrime(primeBits)
		if err != nil {
			return nil, fmt.Errorf("failed to generate second prime: %w", err)
		}
	}

	n := new(big.Int).Mul(p, q)
	phi := new(big.Int).Mul(
		new(big.Int).Sub(p, bigOne),
		new(big.Int).Sub(q, bigOne),
	)

	e := new(big.Int).Set(b.publicExponent)
	d, err := ModularInverse(e, phi)
	if err != nil {
		return nil, fmt.Errorf("failed to derive private exponent: %w", err)
	}

	b.logger.Info("Generated RSA key pair with ", n.BitLen(), " bit modulus")

	return &rsa.KeyPair{
		Public:  &rsa.PublicKey{E: e, N: n},
		Private: &rsa.PrivateKey{D: d, N: new(big.Int).Set(n)},
		P:       p,
		Q:       q,
	}, nil
}
