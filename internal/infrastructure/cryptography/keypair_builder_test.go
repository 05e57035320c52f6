//go:build unit
// +build unit

package cryptography

import (
	"math/big"
	"testing"

	"rsa_vault_service/internal/domain/rsa"
	"rsa_vault_service/internal/pkg/config"
	"rsa_vault_service/internal/pkg/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupKeyPairBuilder(t *testing.T, settings *config.RSASettings) rsa.KeyPairGenerator {
	t.Helper()
	logger := testutil.SetupTestLogger(t)
	builder, err := NewKeyPairBuilder(nil, settings, logger)
	require.NoError(t, err)
	return builder
}

func TestGenerateKeyPair_Invariants(t *testing.T) {
	builder := setupKeyPairBuilder(t, nil)

	keyPair, err := builder.GenerateKeyPair(256)
	require.NoError(t, err)

	// n = p * q
	n := new(big.Int).Mul(keyPair.P, keyPair.Q)
	assert.Zero(t, n.Cmp(keyPair.Public.N))
	assert.Zero(t, n.Cmp(keyPair.Private.N))

	// e * d == 1 (mod phi)
	phi := new(big.Int).Mul(
		new(big.Int).Sub(keyPair.P, bigOne),
		new(big.Int).Sub(keyPair.Q, bigOne),
	)
	product := new(big.Int).Mul(keyPair.Public.E, keyPair.Private.D)
	product.Mod(product, phi)
	assert.Zero(t, product.Cmp(bigOne), "e*d mod phi must be 1")

	assert.Equal(t, int64(65537), keyPair.Public.E.Int64())
}

func TestGenerateKeyPair_ModulusBitLength(t *testing.T) {
	builder := setupKeyPairBuilder(t, nil)

	for _, bitLength := range []int{64, 128, 256} {
		keyPair, err := builder.GenerateKeyPair(bitLength)
		require.NoError(t, err)

		// Both primes have their top bit forced, so the product has either
		// bitLength or bitLength-1 bits.
		got := keyPair.Public.N.BitLen()
		assert.GreaterOrEqual(t, got, bitLength-1)
		assert.LessOrEqual(t, got, bitLength)
	}
}

func TestGenerateKeyPair_DistinctPrimes(t *testing.T) {
	builder := setupKeyPairBuilder(t, nil)

	for i := 0; i < 10; i++ {
		keyPair, err := builder.GenerateKeyPair(16)
		require.NoError(t, err)
		assert.NotZero(t, keyPair.P.Cmp(keyPair.Q), "primes must be distinct")
	}
}

func TestGenerateKeyPair_RejectsInvalidBitLength(t *testing.T) {
	builder := setupKeyPairBuilder(t, nil)

	for _, bitLength := range []int{0, 8, 15, 17, 255} {
		_, err := builder.GenerateKeyPair(bitLength)
		assert.Error(t, err, "bit length %d must be rejected", bitLength)
	}
}

func TestGenerateKeyPair_CustomExponent(t *testing.T) {
	builder := setupKeyPairBuilder(t, &config.RSASettings{
		DefaultKeySize:    256,
		PublicExponent:    3,
		MillerRabinRounds: 5,
	})

	// With e = 3 the totient often shares the factor 3, in which case
	// generation must fail with ErrNoModularInverse rather than produce a
	// broken key. Retry until one generation succeeds.
	for attempt := 0; attempt < 50; attempt++ {
		keyPair, err := builder.GenerateKeyPair(128)
		if err != nil {
			require.ErrorIs(t, err, rsa.ErrNoModularInverse)
			continue
		}
		assert.Equal(t, int64(3), keyPair.Public.E.Int64())
		return
	}
	t.Fatal("no key pair generated with e = 3 in 50 attempts")
}

func TestGenerateKeyPair_RejectsInvalidSettings(t *testing.T) {
	logger := testutil.SetupTestLogger(t)

	_, err := NewKeyPairBuilder(nil, &config.RSASettings{
		DefaultKeySize:    256,
		PublicExponent:    4,
		MillerRabinRounds: 5,
	}, logger)
	assert.Error(t, err, "even public exponent must be rejected")
}

func TestGenerateKeyPair_DeterministicWithSeededSource(t *testing.T) {
	logger := testutil.SetupTestLogger(t)

	first, err := NewKeyPairBuilder(testutil.NewSeededRandom(11), nil, logger)
	require.NoError(t, err)
	second, err := NewKeyPairBuilder(testutil.NewSeededRandom(11), nil, logger)
	require.NoError(t, err)

	keyPairA, err := first.GenerateKeyPair(128)
	require.NoError(t, err)
	keyPairB, err := second.GenerateKeyPair(128)
	require.NoError(t, err)

	assert.Zero(t, keyPairA.Public.N.Cmp(keyPairB.Public.N))
	assert.Zero(t, keyPairA.Private.D.Cmp(keyPairB.Private.D))
}
