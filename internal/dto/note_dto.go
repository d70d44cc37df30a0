package dto

import (
	"time"

	"github.com/google/uuid"
)

// SaveNoteRequest creates a note when Id is nil and updates it otherwise.
type SaveNoteRequest struct {
	Id      *uuid.UUID `json:"id,omitempty"`
	Title   string     `json:"title" validate:"max=255"`
	Content string     `json:"content"`
}

type NoteResponse struct {
	Id        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	OwnerId   string    `json:"owner_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type NoteSummaryResponse struct {
	Id    uuid.UUID `json:"id"`
	Title string    `json:"title"`
}

// NoteChangedMessage travels on the in-process event bus after every save.
type NoteChangedMessage struct {
	NoteId    uuid.UUID `json:"note_id"`
	OwnerId   string    `json:"owner_id"`
	Title     string    `json:"title"`
	Created   bool      `json:"created"`
	UpdatedAt time.Time `json:"updated_at"`
}
