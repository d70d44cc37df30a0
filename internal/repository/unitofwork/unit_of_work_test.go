package unitofwork

import (
	"context"
	"testing"
	"time"

	"notepad-be/internal/entity"
	"notepad-be/internal/repository/specification"
	"notepad-be/internal/repository/testdb"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnitOfWorkRollbackDiscardsWrites(t *testing.T) {
	factory := NewRepositoryFactory(testdb.New(t))
	ctx := context.Background()

	uow := factory.NewUnitOfWork(ctx)
	require.NoError(t, uow.Begin(ctx))

	note := &entity.Note{Id: uuid.New(), OwnerId: "alice", CreatedAt: time.Now().UTC(), UpdatedAt: time.Now().UTC()}
	require.NoError(t, uow.NoteRepository().Create(ctx, note))
	require.NoError(t, uow.Rollback())

	found, err := factory.NewUnitOfWork(ctx).NoteRepository().FindOne(ctx, specification.ByID{ID: note.Id})
	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestUnitOfWorkCommit(t *testing.T) {
	factory := NewRepositoryFactory(testdb.New(t))
	ctx := context.Background()

	uow := factory.NewUnitOfWork(ctx)
	require.NoError(t, uow.Begin(ctx))
	assert.Error(t, uow.Begin(ctx), "nested Begin must fail")

	note := &entity.Note{Id: uuid.New(), OwnerId: "alice", CreatedAt: time.Now().UTC(), UpdatedAt: time.Now().UTC()}
	require.NoError(t, uow.NoteRepository().Create(ctx, note))
	require.NoError(t, uow.Commit())
	assert.NoError(t, uow.Rollback(), "rollback after commit is a no-op")
	assert.Error(t, uow.Commit())

	found, err := factory.NewUnitOfWork(ctx).NoteRepository().FindOne(ctx, specification.ByID{ID: note.Id})
	require.NoError(t, err)
	assert.NotNil(t, found)
}
