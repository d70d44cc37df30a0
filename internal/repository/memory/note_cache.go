package memory

import (
	"context"
	"time"

	"notepad-be/internal/entity"
	"notepad-be/internal/repository/contract"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
)

type NoteCache struct {
	cache *cache.Cache
}

var _ contract.NoteCache = (*NoteCache)(nil)

// NewNoteCache keeps notes in process memory for ttl and purges expired
// items every 2*ttl.
func NewNoteCache(ttl time.Duration) *NoteCache {
	return &NoteCache{
		cache: cache.New(ttl, 2*ttl),
	}
}

func (r *NoteCache) Get(_ context.Context, id uuid.UUID) (*entity.Note, bool, error) {
	if x, found := r.cache.Get(id.String()); found {
		// hand out a copy so callers cannot mutate the cached value
		note := *x.(*entity.Note)
		return &note, true, nil
	}
	return nil, false, nil
}

func (r *NoteCache) Set(_ context.Context, note *entity.Note) error {
	stored := *note
	r.cache.Set(note.Id.String(), &stored, cache.DefaultExpiration)
	return nil
}

func (r *NoteCache) Delete(_ context.Context, id uuid.UUID) error {
	r.cache.Delete(id.String())
	return nil
}
