package rediscache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"notepad-be/internal/entity"
	"notepad-be/internal/repository/contract"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "note:"

type NoteCache struct {
	rdb *redis.Client
	ttl time.Duration
}

var _ contract.NoteCache = (*NoteCache)(nil)

func NewNoteCache(rdb *redis.Client, ttl time.Duration) *NoteCache {
	return &NoteCache{rdb: rdb, ttl: ttl}
}

type cachedNote struct {
	Id        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	OwnerId   string    `json:"owner_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func key(id uuid.UUID) string {
	return keyPrefix + id.String()
}

func (c *NoteCache) Get(ctx context.Context, id uuid.UUID) (*entity.Note, bool, error) {
	raw, err := c.rdb.Get(ctx, key(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("redis get %s: %w", key(id), err)
	}

	var cn cachedNote
	if err := json.Unmarshal(raw, &cn); err != nil {
		return nil, false, fmt.Errorf("decode cached note %s: %w", id, err)
	}

	return &entity.Note{
		Id:        cn.Id,
		Title:     cn.Title,
		Content:   cn.Content,
		OwnerId:   cn.OwnerId,
		CreatedAt: cn.CreatedAt,
		UpdatedAt: cn.UpdatedAt,
	}, true, nil
}

func (c *NoteCache) Set(ctx context.Context, note *entity.Note) error {
	raw, err := json.Marshal(cachedNote{
		Id:        note.Id,
		Title:     note.Title,
		Content:   note.Content,
		OwnerId:   note.OwnerId,
		CreatedAt: note.CreatedAt,
		UpdatedAt: note.UpdatedAt,
	})
	if err != nil {
		return fmt.Errorf("encode note %s: %w", note.Id, err)
	}

	if err := c.rdb.Set(ctx, key(note.Id), raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key(note.Id), err)
	}
	return nil
}

func (c *NoteCache) Delete(ctx context.Context, id uuid.UUID) error {
	if err := c.rdb.Del(ctx, key(id)).Err(); err != nil {
		return fmt.Errorf("redis del %s: %w", key(id), err)
	}
	return nil
}
