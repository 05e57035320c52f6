package keys

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// KeyPairRecord is the persisted form of a generated key pair: metadata plus
// the exported public and private material in the textual exchange format.
type KeyPairRecord struct {
	ID              string    `validate:"required,uuid"`
	BitLength       int       `validate:"required,min=16"`
	PublicExponent  uint64    `validate:"required"`
	PublicMaterial  string    `validate:"required"`
	PrivateMaterial string    `validate:"required"`
	DateTimeCreated time.Time `validate:"required"`
	UserID          string    `validate:"required"`
}

// Validate checks the record before it is handed to the repository.
func (r *KeyPairRecord) Validate() error {
	validate := validator.New()

	err := validate.Struct(r)
	if err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			var messages []string
			for _, fieldErr := range validationErrors {
				messages = append(messages, fmt.Sprintf("Field: %s, Tag: %s", fieldErr.Field(), fieldErr.Tag()))
			}
			return fmt.Errorf("validation failed: %v", messages)
		}
		return fmt.Errorf("validation error: %w", err)
	}

	return nil
}

// KeyPairQuery carries optional filters, sorting and pagination for listings.
type KeyPairQuery struct {
	BitLength       int       `validate:"omitempty,min=16"`
	DateTimeCreated time.Time
	SortBy          string `validate:"omitempty,oneof=id bit_length date_time_created"`
	SortOrder       string `validate:"omitempty,oneof=asc desc"`
	Limit           int    `validate:"omitempty,min=1,max=500"`
	Offset          int    `validate:"omitempty,min=0"`
}

// NewKeyPairQuery returns a query with no filters set.
func NewKeyPairQuery() *KeyPairQuery {
	return &KeyPairQuery{}
}

// Validate checks the query parameters.
func (q *KeyPairQuery) Validate() error {
	validate := validator.New()
	if err := validate.Struct(q); err != nil {
		return fmt.Errorf("invalid query parameters: %w", err)
	}
	return nil
}
