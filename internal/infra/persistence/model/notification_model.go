package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// NotificationModel is the GORM-specific struct for the 'notifications' table.
type NotificationModel struct {
	ID            uuid.UUID      `gorm:"type:uuid;primaryKey"`
	Type          string         `gorm:"type:varchar(32);not null"`
	RecipientType string         `gorm:"type:varchar(16);not null;index:idx_notifications_recipient"`
	RecipientID   string         `gorm:"type:varchar(64);not null;index:idx_notifications_recipient"`
	Title         string         `gorm:"type:text;not null"`
	Message       string         `gorm:"type:text;not null"`
	Payload       datatypes.JSON `gorm:"not null"`
	IsRead        bool           `gorm:"not null;default:false"`
	CreatedAt     time.Time      `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (NotificationModel) TableName() string {
	return "notifications"
}
