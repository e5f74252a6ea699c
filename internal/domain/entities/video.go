package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Video struct {
	ID           uuid.UUID      `gorm:"type:uuid;primaryKey"`
	Title        string         `gorm:"type:varchar(500);not null"`
	ThumbnailURL string         `gorm:"type:varchar(1000)"`
	Tags         datatypes.JSON `gorm:"type:jsonb"`
	CreatedBy    string         `gorm:"type:varchar(255)"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type DownloadLink struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	VideoID  uuid.UUID `gorm:"type:uuid;not null;index"`
	Label    string    `gorm:"type:varchar(255);not null"`
	URL      string    `gorm:"type:varchar(2000);not null"`
	Position int       `gorm:"not null"` // preserves the submitted link order
}
