package cryptography

import (
	"fmt"
	"io"

	"rsa_vault_service/internal/domain/rsa"
)

// pkcs1Pad formats a message into a PKCS#1 v1.5 block of exactly
// modulusBytes bytes: 0x00 0x02, random nonzero filler, 0x00, message.
func pkcs1Pad(random io.Reader, message []byte, modulusBytes int) ([]byte, error) {
	maxMessageLen := modulusBytes - rsa.PaddingOverhead
	if len(message) > maxMessageLen {
		return nil, fmt.Errorf("%w: %d bytes exceeds maximum of %d", rsa.ErrMessageTooLong, len(message), maxMessageLen)
	}

	padded := make([]byte, 0, modulusBytes)
	padded = append(padded, 0x00, 0x02)

	filler := make([]byte, 1)
	for len(padded) < modulusBytes-len(message)-1 {
		if _, err := io.ReadFull(random, filler); err != nil {
			return nil, fmt.Errorf("failed to draw padding byte: %w", err)
		}
		// Filler bytes must be nonzero; redraw zeros so the separator
		// stays unambiguous.
		if filler[0] == 0x00 {
			continue
		}
		padded = append(padded, filler[0])
	}

	padded = append(padded, 0x00)
	padded = append(padded, message...)
	return padded, nil
}

// pkcs1Unpad validates the 0x00 0x02 ... 0x00 structure and returns the
// message bytes after the separator. Any structural violation yields
// ErrInvalidPadding.
func pkcs1Unpad(padded []byte) ([]byte, error) {
	if len(padded) < rsa.PaddingOverhead || padded[0] != 0x00 || padded[1] != 0x02 {
		return nil, rsa.ErrInvalidPadding
	}

	i := 2
	for i < len(padded) && padded[i] != 0x00 {
		i++
	}
	if i >= len(padded) {
		return nil, rsa.ErrInvalidPadding
	}

	message := make([]byte, len(padded)-i-1)
	copy(message, padded[i+1:])
	return message, nil
}
