package memory

import (
	"context"
	"testing"
	"time"

	"notepad-be/internal/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNoteCacheRoundTrip(t *testing.T) {
	c := NewNoteCache(time.Minute)
	ctx := context.Background()
	note := &entity.Note{Id: uuid.New(), Title: "cached", OwnerId: "alice"}

	_, found, err := c.Get(ctx, note.Id)
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, c.Set(ctx, note))
	note.Title = "mutated after set"

	got, found, err := c.Get(ctx, note.Id)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "cached", got.Title)

	got.Title = "mutated after get"
	again, _, _ := c.Get(ctx, note.Id)
	assert.Equal(t, "cached", again.Title)

	require.NoError(t, c.Delete(ctx, note.Id))
	_, found, _ = c.Get(ctx, note.Id)
	assert.False(t, found)
}

func TestNoteCacheExpires(t *testing.T) {
	c := NewNoteCache(20 * time.Millisecond)
	ctx := context.Background()
	note := &entity.Note{Id: uuid.New()}

	require.NoError(t, c.Set(ctx, note))
	time.Sleep(40 * time.Millisecond)

	_, found, _ := c.Get(ctx, note.Id)
	assert.False(t, found)
}
