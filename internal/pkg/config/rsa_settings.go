package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// RSASettings holds the tunable parameters of the RSA core: the default
// modulus size for generated key pairs, the public exponent and the number
// of Miller-Rabin witness rounds.
//
// The defaults follow convention: e = 65537 and 5 witness rounds. Tests may
// lower the round count to trade confidence for speed; production use may
// raise it for stronger guarantees.
type RSASettings struct {
	DefaultKeySize    int    `mapstructure:"default_key_size" validate:"required,min=16"`
	PublicExponent    uint64 `mapstructure:"public_exponent" validate:"required,min=3"`
	MillerRabinRounds int    `mapstructure:"miller_rabin_rounds" validate:"required,min=1"`
}

// Validate checks that all fields in RSASettings are valid
func (s *RSASettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for RSASettings: %w", err)
	}

	// An even exponent can never be coprime with the even totient.
	if s.PublicExponent%2 == 0 {
		return fmt.Errorf("public exponent must be odd")
	}

	return nil
}
