// Package keycodec implements the textual key exchange format: JSON records
// whose fields carry the base64 encoding of the big-endian bytes of the key
// integers. The format is transparent and unauthenticated.
package keycodec

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"math/big"

	"rsa_vault_service/internal/domain/rsa"
	"rsa_vault_service/internal/pkg/logger"
)

// publicKeyExport is the wire record for public keys.
type publicKeyExport struct {
	E string `json:"e"`
	N string `json:"n"`
}

// privateKeyExport is the wire record for private keys.
type privateKeyExport struct {
	D string `json:"d"`
	N string `json:"n"`
}

// jsonKeyCodec struct that implements the KeyCodec interface
type jsonKeyCodec struct {
	logger logger.Logger
}

// NewJSONKeyCodec creates and returns a new instance of jsonKeyCodec
func NewJSONKeyCodec(logger logger.Logger) (rsa.KeyCodec, error) {
	return &jsonKeyCodec{
		logger: logger,
	}, nil
}

// ExportPublicKey encodes (e, n) as a JSON record with base64 fields.
func (c *jsonKeyCodec) ExportPublicKey(publicKey *rsa.PublicKey) (string, error) {
	if publicKey == nil || publicKey.E == nil || publicKey.N == nil {
		return "", errors.New("public key cannot be nil")
	}

	export := publicKeyExport{
		E: base64.StdEncoding.EncodeToString(publicKey.E.Bytes()),
		N: base64.StdEncoding.EncodeToString(publicKey.N.Bytes()),
	}

	out, err := json.Marshal(export)
	if err != nil {
		return "", fmt.Errorf("failed to marshal public key export: %w", err)
	}
	return string(out), nil
}

// ExportPrivateKey encodes (d, n) as a JSON record with base64 fields.
func (c *jsonKeyCodec) ExportPrivateKey(privateKey *rsa.PrivateKey) (string, error) {
	if privateKey == nil || privateKey.D == nil || privateKey.N == nil {
		return "", errors.New("private key cannot be nil")
	}

	export := privateKeyExport{
		D: base64.StdEncoding.EncodeToString(privateKey.D.Bytes()),
		N: base64.StdEncoding.EncodeToString(privateKey.N.Bytes()),
	}

	out, err := json.Marshal(export)
	if err != nil {
		return "", fmt.Errorf("failed to marshal private key export: %w", err)
	}
	return string(out), nil
}

// ImportPublicKey is the exact inverse of ExportPublicKey.
func (c *jsonKeyCodec) ImportPublicKey(encoded string) (*rsa.PublicKey, error) {
	var export publicKeyExport
	if err := json.Unmarshal([]byte(encoded), &export); err != nil {
		return nil, fmt.Errorf("%w: %v", rsa.ErrMalformedKeyMaterial, err)
	}

	e, err := decodeIntegerField("e", export.E)
	if err != nil {
		return nil, err
	}
	n, err := decodeIntegerField("n", export.N)
	if err != nil {
		return nil, err
	}

	return &rsa.PublicKey{E: e, N: n}, nil
}

// ImportPrivateKey is the exact inverse of ExportPrivateKey.
func (c *jsonKeyCodec) ImportPrivateKey(encoded string) (*rsa.PrivateKey, error) {
	var export privateKeyExport
	if err := json.Unmarshal([]byte(encoded), &export); err != nil {
		return nil, fmt.Errorf("%w: %v", rsa.ErrMalformedKeyMaterial, err)
	}

	d, err := decodeIntegerField("d", export.D)
	if err != nil {
		return nil, err
	}
	n, err := decodeIntegerField("n", export.N)
	if err != nil {
		return nil, err
	}

	return &rsa.PrivateKey{D: d, N: n}, nil
}

// decodeIntegerField base64-decodes a record field and interprets the bytes
// as a big-endian unsigned integer.
func decodeIntegerField(name, value string) (*big.Int, error) {
	if value == "" {
		return nil, fmt.Errorf("%w: missing field %q", rsa.ErrMalformedKeyMaterial, name)
	}

	raw, err := base64.StdEncoding.DecodeString(value)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid base64 in field %q: %v", rsa.ErrMalformedKeyMaterial, name, err)
	}

	return new(big.Int).SetBytes(raw), nil
}
