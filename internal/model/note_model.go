package model

import (
	"time"

	"github.com/google/uuid"
)

// Note timestamps are written by the service, not by GORM's auto time
// tracking, so updated_at stays monotonic per note.
type Note struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Title     string    `gorm:"type:varchar(255);not null;default:''"`
	Content   string    `gorm:"type:text;not null;default:''"`
	OwnerId   string    `gorm:"type:varchar(128);not null;index:idx_notes_owner_updated,priority:1"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime:false"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime:false;index:idx_notes_owner_updated,priority:2"`
}

func (Note) TableName() string {
	return "notes"
}

// AllModels lists every table owned by this service, in migration order.
func AllModels() []interface{} {
	return []interface{}{
		&Note{},
	}
}
