//go:build unit
// +build unit

package cryptography

import (
	"math/big"
	"testing"

	"rsa_vault_service/internal/domain/rsa"
	"rsa_vault_service/internal/pkg/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupPrimeGenerator(t *testing.T, rounds int) rsa.PrimeGenerator {
	t.Helper()
	logger := testutil.SetupTestLogger(t)
	generator, err := NewPrimeGenerator(nil, rounds, logger)
	require.NoError(t, err)
	return generator
}

// isPrimeByTrialDivision is the brute-force cross-check for small values.
func isPrimeByTrialDivision(n uint64) bool {
	if n < 2 {
		return false
	}
	for d := uint64(2); d*d <= n; d++ {
		if n%d == 0 {
			return false
		}
	}
	return true
}

func TestGeneratePrime_SmallBitLengthsAgainstTrialDivision(t *testing.T) {
	generator := setupPrimeGenerator(t, 5)

	for bits := 8; bits <= 16; bits++ {
		prime, err := generator.GeneratePrime(bits)
		require.NoError(t, err)

		assert.Equal(t, bits, prime.BitLen(), "prime must have exactly the requested bit length")
		assert.Equal(t, uint(1), prime.Bit(0), "prime must be odd")
		assert.True(t, isPrimeByTrialDivision(prime.Uint64()), "generated value %s is not prime", prime)
	}
}

func TestIsProbablyPrime_KnownValues(t *testing.T) {
	generator := setupPrimeGenerator(t, 10)

	tests := []struct {
		name  string
		value string
		prime bool
	}{
		{"zero", "0", false},
		{"one", "1", false},
		{"two", "2", true},
		{"three", "3", true},
		{"four", "4", false},
		{"seventeen", "17", true},
		{"carmichael 561", "561", false},
		{"carmichael 41041", "41041", false},
		{"prime 7919", "7919", true},
		{"even composite", "100000", false},
		{"mersenne prime 2^89-1", "618970019642690137449562111", true},
		{"mersenne composite 2^83-1", "9671406556917033397649407", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, ok := new(big.Int).SetString(tt.value, 10)
			require.True(t, ok)

			result, err := generator.IsProbablyPrime(n)
			require.NoError(t, err)
			assert.Equal(t, tt.prime, result)
		})
	}
}

func TestGeneratePrime_RejectsTinyBitLength(t *testing.T) {
	generator := setupPrimeGenerator(t, 5)

	for _, bits := range []int{-1, 0, 1} {
		_, err := generator.GeneratePrime(bits)
		assert.Error(t, err)
	}
}

func TestGeneratePrime_DeterministicWithSeededSource(t *testing.T) {
	logger := testutil.SetupTestLogger(t)

	first, err := NewPrimeGenerator(testutil.NewSeededRandom(7), 5, logger)
	require.NoError(t, err)
	second, err := NewPrimeGenerator(testutil.NewSeededRandom(7), 5, logger)
	require.NoError(t, err)

	primeA, err := first.GeneratePrime(64)
	require.NoError(t, err)
	primeB, err := second.GeneratePrime(64)
	require.NoError(t, err)

	assert.Zero(t, primeA.Cmp(primeB), "identical seeds must yield identical primes")
}
