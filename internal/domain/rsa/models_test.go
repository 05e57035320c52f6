//go:build unit
// +build unit

package rsa

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestModulusByteLength(t *testing.T) {
	tests := []struct {
		name     string
		modulus  *big.Int
		expected int
	}{
		{"one byte", big.NewInt(255), 1},
		{"two bytes", big.NewInt(3233), 2},
		{"exact byte boundary", big.NewInt(256), 2},
		{"2048 bits", new(big.Int).Lsh(big.NewInt(1), 2047), 256},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			publicKey := &PublicKey{E: big.NewInt(DefaultPublicExponent), N: tt.modulus}
			assert.Equal(t, tt.expected, publicKey.ModulusByteLength())

			privateKey := &PrivateKey{D: big.NewInt(1), N: tt.modulus}
			assert.Equal(t, tt.expected, privateKey.ModulusByteLength())
		})
	}
}

func TestMaxMessageLength(t *testing.T) {
	// A 2048 bit modulus leaves 256 - 11 = 245 message bytes.
	publicKey := &PublicKey{
		E: big.NewInt(DefaultPublicExponent),
		N: new(big.Int).Lsh(big.NewInt(1), 2047),
	}
	assert.Equal(t, 245, publicKey.MaxMessageLength())
}
