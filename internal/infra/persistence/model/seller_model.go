package model

import (
	"time"

	"github.com/google/uuid"
)

// SellerModel is the GORM-specific struct for the 'sellers' table.
type SellerModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	Username      string    `gorm:"type:varchar(64);not null"`
	Email         string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	Phone         string    `gorm:"type:varchar(16)"`
	PhoneVerified bool      `gorm:"not null;default:false"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (SellerModel) TableName() string {
	return "sellers"
}
