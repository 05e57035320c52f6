package cryptography

import (
	"math/big"

	"rsa_vault_service/internal/domain/rsa"
)

// ModularInverse computes the multiplicative inverse of a modulo m using the
// extended Euclidean algorithm, tracking the Bezout coefficient t alongside
// the remainder sequence. It returns ErrNoModularInverse when a and m are
// not coprime.
//
// The intermediate coefficient t can go negative, so the computation runs on
// signed integers and the result is normalized into [0, m) at the end.
func ModularInverse(a, m *big.Int) (*big.Int, error) {
	t, newT := big.NewInt(0), big.NewInt(1)
	r, newR := new(big.Int).Set(m), new(big.Int).Set(a)

	for newR.Sign() != 0 {
		quotient := new(big.Int).Quo(r, newR)

		t, newT = newT, new(big.Int).Sub(t, new(big.Int).Mul(quotient, newT))
		r, newR = newR, new(big.Int).Sub(r, new(big.Int).Mul(quotient, newR))
	}

	if r.Cmp(bigOne) != 0 {
		return nil, rsa.ErrNoModularInverse
	}

	if t.Sign() < 0 {
		t.Add(t, m)
	}
	return t, nil
}
