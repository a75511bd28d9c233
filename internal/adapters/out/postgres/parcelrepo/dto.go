// Package parcelrepo provides data transfer objects and mapping functions for parcel persistence.
// This package implements the repository pattern for the parcel domain aggregate, handling
// the conversion between domain entities and database representations.
package parcelrepo

import (
	"depot/internal/core/domain/model/kernel"
	"depot/internal/core/domain/model/parcel"

	"github.com/google/uuid"
)

// ParcelDTO represents the database structure for persisting parcel
// aggregates. State and size are stored as their string tokens so the rows
// stay readable and the enums can evolve without renumbering.
type ParcelDTO struct {
	ID          uuid.UUID    `gorm:"type:uuid;primaryKey"`
	ClientID    uuid.UUID    `gorm:"type:uuid;index"`
	Tracking    string       `gorm:"uniqueIndex"`
	Recipient   RecipientDTO `gorm:"embedded;embeddedPrefix:recipient_"`
	WeightGrams float64
	HeightCm    float64
	State       string `gorm:"index"`
	Size        string
}

// TableName specifies the database table name for parcel entities.
// Overrides GORM's default naming convention to use "parcels".
func (ParcelDTO) TableName() string {
	return "parcels"
}

// RecipientDTO represents the embedded recipient contact fields within the
// parcel table.
type RecipientDTO struct {
	Name    string
	Phone   string
	Address string
}

// fromDomain converts a parcel domain aggregate to its database representation.
func fromDomain(p *parcel.Parcel) ParcelDTO {
	return ParcelDTO{
		ID:       p.ID().Bytes(),
		ClientID: p.ClientID().Bytes(),
		Tracking: p.Tracking(),
		Recipient: RecipientDTO{
			Name:    p.Recipient().Name(),
			Phone:   p.Recipient().Phone(),
			Address: p.Recipient().Address(),
		},
		WeightGrams: p.WeightGrams(),
		HeightCm:    p.HeightCm(),
		State:       p.State().String(),
		Size:        p.Size().String(),
	}
}

// toDomain converts a database DTO to a parcel domain aggregate.
// Reconstructs the aggregate with its persisted state and size using RestoreParcel.
func toDomain(dto ParcelDTO) (*parcel.Parcel, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	clientID, err := kernel.UUIDFromBytes(dto.ClientID[:])
	if err != nil {
		return nil, err
	}

	recipient, err := parcel.NewRecipient(dto.Recipient.Name, dto.Recipient.Phone, dto.Recipient.Address)
	if err != nil {
		return nil, err
	}

	state, err := parcel.StateFromString(dto.State)
	if err != nil {
		return nil, err
	}

	size, err := parcel.SizeFromString(dto.Size)
	if err != nil {
		return nil, err
	}

	return parcel.RestoreParcel(id, clientID, dto.Tracking, recipient,
		dto.WeightGrams, dto.HeightCm, state, size)
}
