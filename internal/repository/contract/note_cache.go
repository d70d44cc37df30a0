package contract

import (
	"context"

	"notepad-be/internal/entity"

	"github.com/google/uuid"
)

// NoteCache is a read-through cache in front of NoteRepository.
// Get reports found=false on a miss; errors are reserved for backend failures.
type NoteCache interface {
	Get(ctx context.Context, id uuid.UUID) (*entity.Note, bool, error)
	Set(ctx context.Context, note *entity.Note) error
	Delete(ctx context.Context, id uuid.UUID) error
}
