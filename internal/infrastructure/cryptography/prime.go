package cryptography

import (
	"crypto/rand"
	"fmt"
	"io"
	"math/big"

	"rsa_vault_service/internal/domain/rsa"
	"rsa_vault_service/internal/pkg/logger"
)

var (
	bigOne   = big.NewInt(1)
	bigTwo   = big.NewInt(2)
	bigThree = big.NewInt(3)
)

// primeGenerator struct that implements the PrimeGenerator interface
type primeGenerator struct {
	random io.Reader
	rounds int
	logger logger.Logger
}

// NewPrimeGenerator creates a prime generator drawing randomness from the
// given reader and testing candidates with the given number of Miller-Rabin
// rounds. A non-positive round count falls back to the default of 5.
func NewPrimeGenerator(random io.Reader, rounds int, logger logger.Logger) (rsa.PrimeGenerator, error) {
	if random == nil {
		random = rand.Reader
	}
	if rounds <= 0 {
		rounds = rsa.DefaultMillerRabinRounds
	}
	return &primeGenerator{
		random: random,
		rounds: rounds,
		logger: logger,
	}, nil
}

// GeneratePrime draws random odd integers of exactly `bits` bits until one
// passes the primality test. There is no iteration cap: termination is
// probabilistic but effectively guaranteed by the density of primes.
func (g *primeGenerator) GeneratePrime(bits int) (*big.Int, error) {
	if bits < 2 {
		return nil, fmt.Errorf("prime bit length must be at least 2, got %d", bits)
	}

	for {
		candidate, err := g.randomOddInt(bits)
		if err != nil {
			return nil, err
		}

		prime, err := g.IsProbablyPrime(candidate)
		if err != nil {
			return nil, err
		}
		if prime {
			return candidate, nil
		}
	}
}

// randomOddInt draws a uniformly random integer of exactly `bits` bits with
// the highest bit forced to 1 (exact bit length) and the lowest bit forced
// to 1 (oddness).
func (g *primeGenerator) randomOddInt(bits int) (*big.Int, error) {
	buf := make([]byte, (bits+7)/8)
	if _, err := io.ReadFull(g.random, buf); err != nil {
		return nil, fmt.Errorf("failed to draw random bytes: %w", err)
	}

	n := new(big.Int).SetBytes(buf)

	// Drop the surplus high bits so the candidate fits `bits` exactly.
	if excess := len(buf)*8 - bits; excess > 0 {
		n.Rsh(n, uint(excess))
	}

	n.SetBit(n, bits-1, 1)
	n.SetBit(n, 0, 1)
	return n, nil
}

// IsProbablyPrime runs the configured number of Miller-Rabin rounds against
// n. A false result is definitive; a true result is wrong with probability
// at most 4^-rounds.
func (g *primeGenerator) IsProbablyPrime(n *big.Int) (bool, error) {
	if n.Cmp(bigOne) <= 0 {
		return false, nil
	}
	if n.Cmp(bigThree) <= 0 {
		return true, nil
	}
	if n.Bit(0) == 0 {
		return false, nil
	}

	// Decompose n-1 = 2^s * d with d odd.
	nMinusOne := new(big.Int).Sub(n, bigOne)
	d := new(big.Int).Set(nMinusOne)
	s := 0
	for d.Bit(0) == 0 {
		d.Rsh(d, 1)
		s++
	}

	// Witnesses are drawn uniformly from [2, n-2].
	witnessRange := new(big.Int).Sub(n, bigThree)

	for i := 0; i < g.rounds; i++ {
		a, err := rand.Int(g.random, witnessRange)
		if err != nil {
			return false, fmt.Errorf("failed to draw witness: %w", err)
		}
		a.Add(a, bigTwo)

		x := new(big.Int).Exp(a, d, n)
		if x.Cmp(bigOne) == 0 || x.Cmp(nMinusOne) == 0 {
			continue
		}

		composite := true
		for j := 0; j < s-1; j++ {
			x.Exp(x, bigTwo, n)
			if x.Cmp(nMinusOne) == 0 {
				composite = false
				break
			}
		}
		if composite {
			return false, nil
		}
	}

	return true, nil
}
