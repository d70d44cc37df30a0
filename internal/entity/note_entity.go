package entity

import (
	"time"

	"github.com/google/uuid"
)

type Note struct {
	Id        uuid.UUID
	Title     string
	Content   string
	OwnerId   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NoteSummary is the listing projection of a Note.
type NoteSummary struct {
	Id    uuid.UUID
	Title string
}

func (n *Note) Summary() NoteSummary {
	return NoteSummary{Id: n.Id, Title: n.Title}
}
