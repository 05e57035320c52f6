// Package models holds the GORM database models backing the domain
// entities.
package models

import (
	"time"

	"rsa_vault_service/internal/domain/keys"
)

// KeyPairModel is the GORM database model for stored key pairs
// (infrastructure concern).
type KeyPairModel struct {
	ID              string    `gorm:"primaryKey;type:uuid"`
	BitLength       int       `gorm:"not null;type:integer"`
	PublicExponent  uint64    `gorm:"not null;type:bigint"`
	PublicMaterial  string    `gorm:"not null;type:text"`
	PrivateMaterial string    `gorm:"not null;type:text"`
	DateTimeCreated time.Time `gorm:"not null"`
	UserID          string    `gorm:"not null;index;type:varchar(255)"`
}

// TableName specifies the table name for GORM
func (KeyPairModel) TableName() string {
	return "key_pairs"
}

// ToDomain converts the GORM model to the domain entity
func (m *KeyPairModel) ToDomain() *keys.KeyPairRecord {
	return &keys.KeyPairRecord{
		ID:              m.ID,
		BitLength:       m.BitLength,
		PublicExponent:  m.PublicExponent,
		PublicMaterial:  m.PublicMaterial,
		PrivateMaterial: m.PrivateMaterial,
		DateTimeCreated: m.DateTimeCreated,
		UserID:          m.UserID,
	}
}

// FromDomain converts the domain entity to the GORM model
func (m *KeyPairModel) FromDomain(r *keys.KeyPairRecord) {
	m.ID = r.ID
	m.BitLength = r.BitLength
	m.PublicExponent = r.PublicExponent
	m.PublicMaterial = r.PublicMaterial
	m.PrivateMaterial = r.PrivateMaterial
	m.DateTimeCreated = r.DateTimeCreated
	m.UserID = r.UserID
}
