package v1

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// GenerateKeyPairRequest is the request body for generating a key pair.
// BitLength is optional; the server default applies when it is zero.
type GenerateKeyPairRequest struct {
	BitLength int `json:"bit_length" validate:"omitempty,min=16,max=8192"`
}

// Validate checks the request parameters.
func (r *GenerateKeyPairRequest) Validate() error {
	validate := validator.New()
	if err := validate.Struct(r); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}
	return nil
}

// KeyPairMetaResponse describes a stored key pair without its material.
type KeyPairMetaResponse struct {
	ID              string    `json:"id"`
	BitLength       int       `json:"bit_length"`
	PublicExponent  uint64    `json:"public_exponent"`
	DateTimeCreated time.Time `json:"date_time_created"`
	UserID          string    `json:"user_id"`
}

// KeyMaterialResponse carries exported key material in the textual exchange
// format.
type KeyMaterialResponse struct {
	KeyPairID string `json:"key_pair_id"`
	Material  string `json:"material"`
}

// EncryptRequest is the request body for encrypting a payload. The payload
// is base64-encoded and must fit into a single block under the key pair's
// modulus.
type EncryptRequest struct {
	Plaintext string `json:"plaintext" validate:"required,base64"`
}

// Validate checks the request parameters.
func (r *EncryptRequest) Validate() error {
	validate := validator.New()
	if err := validate.Struct(r); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}
	return nil
}

// EncryptResponse carries the base64-encoded ciphertext block.
type EncryptResponse struct {
	KeyPairID  string `json:"key_pair_id"`
	Ciphertext string `json:"ciphertext"`
}

// DecryptRequest is the request body for decrypting a ciphertext block.
type DecryptRequest struct {
	Ciphertext string `json:"ciphertext" validate:"required,base64"`
}

// Validate checks the request parameters.
func (r *DecryptRequest) Validate() error {
	validate := validator.New()
	if err := validate.Struct(r); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}
	return nil
}

// DecryptResponse carries the base64-encoded recovered plaintext.
type DecryptResponse struct {
	KeyPairID string `json:"key_pair_id"`
	Plaintext string `json:"plaintext"`
}

// ErrorResponse is the error body returned by all handlers.
type ErrorResponse struct {
	Message string `json:"message"`
}
