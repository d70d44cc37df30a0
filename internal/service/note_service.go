package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"notepad-be/internal/dto"
	"notepad-be/internal/entity"
	"notepad-be/internal/mapper"
	"notepad-be/internal/pkg/apperror"
	"notepad-be/internal/pkg/logger"
	"notepad-be/internal/repository/contract"
	"notepad-be/internal/repository/specification"
	"notepad-be/internal/repository/unitofwork"
	"notepad-be/pkg/sanitizer"

	"github.com/google/uuid"
)

const maxTitleLength = 255

type INoteService interface {
	// SaveNote creates the note when req.Id is nil, otherwise updates the
	// caller's existing note. Updating an unknown id is a not-found error.
	SaveNote(ctx context.Context, ownerId string, req *dto.SaveNoteRequest) (*dto.NoteResponse, error)
	// FetchUserNotes lists the owner's notes, most recently updated first.
	FetchUserNotes(ctx context.Context, ownerId string) ([]*dto.NoteSummaryResponse, error)
	// LoadNote returns (nil, nil) when the note does not exist.
	LoadNote(ctx context.Context, noteId uuid.UUID) (*dto.NoteResponse, error)
	CreateNewNote(ctx context.Context, ownerId string) (*dto.NoteResponse, error)
}

type noteService struct {
	uowFactory       unitofwork.RepositoryFactory
	cache            contract.NoteCache
	publisherService IPublisherService
	sanitizer        *sanitizer.NoteContentSanitizer
	mapper           *mapper.NoteMapper
	logger           logger.ILogger
	now              func() time.Time
}

func NewNoteService(
	uowFactory unitofwork.RepositoryFactory,
	cache contract.NoteCache,
	publisherService IPublisherService,
	contentSanitizer *sanitizer.NoteContentSanitizer,
	log logger.ILogger,
) INoteService {
	return &noteService{
		uowFactory:       uowFactory,
		cache:            cache,
		publisherService: publisherService,
		sanitizer:        contentSanitizer,
		mapper:           mapper.NewNoteMapper(),
		logger:           log,
		now: func() time.Time {
			return time.Now().UTC()
		},
	}
}

func (s *noteService) SaveNote(ctx context.Context, ownerId string, req *dto.SaveNoteRequest) (*dto.NoteResponse, error) {
	if ownerId == "" {
		return nil, apperror.NewInvalidArgumentError("owner id is required")
	}
	if req == nil {
		return nil, apperror.NewInvalidArgumentError("note is required")
	}

	title := strings.TrimSpace(req.Title)
	if utf8.RuneCountInString(title) > maxTitleLength {
		return nil, apperror.NewInvalidArgumentError(fmt.Sprintf("title must be at most %d characters", maxTitleLength))
	}
	content := s.sanitizer.Sanitize(req.Content)

	var (
		note    *entity.Note
		created bool
		err     error
	)
	if req.Id == nil {
		note, err = s.create(ctx, ownerId, title, content)
		created = true
	} else {
		note, err = s.update(ctx, ownerId, *req.Id, title, content)
	}
	if err != nil {
		return nil, err
	}

	if !created && s.cache != nil {
		if err := s.cache.Delete(ctx, note.Id); err != nil {
			s.logger.Warn("NoteService", "failed to evict cached note", map[string]interface{}{
				"note_id": note.Id,
				"error":   err.Error(),
			})
		}
	}

	s.publishChange(ctx, note, created)

	return toNoteResponse(note), nil
}

func (s *noteService) create(ctx context.Context, ownerId, title, content string) (*entity.Note, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	now := s.timestamp()

	note := entity.Note{
		Id:        uuid.New(),
		Title:     title,
		Content:   content,
		OwnerId:   ownerId,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := uow.NoteRepository().Create(ctx, &note); err != nil {
		return nil, apperror.NewInternalError("failed to save note", err)
	}

	return &note, nil
}

func (s *noteService) update(ctx context.Context, ownerId string, id uuid.UUID, title, content string) (*entity.Note, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if err := uow.Begin(ctx); err != nil {
		return nil, apperror.NewInternalError("failed to save note", err)
	}
	defer uow.Rollback()

	note, err := uow.NoteRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.NoteOwnedBy{OwnerId: ownerId},
	)
	if err != nil {
		return nil, apperror.NewInternalError("failed to save note", err)
	}
	if note == nil {
		// foreign notes look exactly like missing ones
		return nil, apperror.NewNotFoundError("note not found")
	}

	updatedAt := s.timestamp()
	if updatedAt.Before(note.UpdatedAt) {
		updatedAt = note.UpdatedAt
	}

	note.Title = title
	note.Content = content
	note.UpdatedAt = updatedAt

	if err := uow.NoteRepository().Update(ctx, note); err != nil {
		return nil, apperror.NewInternalError("failed to save note", err)
	}

	if err := uow.Commit(); err != nil {
		return nil, apperror.NewInternalError("failed to save note", err)
	}

	return note, nil
}

// timestamp is truncated to the microsecond precision Postgres stores, so a
// saved note and its later reload carry identical times.
func (s *noteService) timestamp() time.Time {
	return s.now().Truncate(time.Microsecond)
}

// publishChange never fails the save; the change feed is auxiliary.
func (s *noteService) publishChange(ctx context.Context, note *entity.Note, created bool) {
	if s.publisherService == nil {
		return
	}

	payload, err := json.Marshal(dto.NoteChangedMessage{
		NoteId:    note.Id,
		OwnerId:   note.OwnerId,
		Title:     note.Title,
		Created:   created,
		UpdatedAt: note.UpdatedAt,
	})
	if err == nil {
		err = s.publisherService.Publish(ctx, payload)
	}
	if err != nil {
		s.logger.Warn("NoteService", "failed to publish note change", map[string]interface{}{
			"note_id": note.Id,
			"error":   err.Error(),
		})
	}
}

func (s *noteService) FetchUserNotes(ctx context.Context, ownerId string) ([]*dto.NoteSummaryResponse, error) {
	if ownerId == "" {
		return nil, apperror.NewInvalidArgumentError("owner id is required")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	specs := append(
		[]specification.Specification{specification.NoteOwnedBy{OwnerId: ownerId}},
		specification.MostRecentlyUpdated()...,
	)
	notes, err := uow.NoteRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, apperror.NewInternalError("failed to fetch notes", err)
	}

	summaries := s.mapper.ToSummaries(notes)
	res := make([]*dto.NoteSummaryResponse, 0, len(summaries))
	for _, summary := range summaries {
		res = append(res, &dto.NoteSummaryResponse{
			Id:    summary.Id,
			Title: summary.Title,
		})
	}

	return res, nil
}

func (s *noteService) LoadNote(ctx context.Context, noteId uuid.UUID) (*dto.NoteResponse, error) {
	if s.cache != nil {
		cached, found, err := s.cache.Get(ctx, noteId)
		if err != nil {
			s.logger.Warn("NoteService", "note cache read failed", map[string]interface{}{
				"note_id": noteId,
				"error":   err.Error(),
			})
		} else if found {
			return toNoteResponse(cached), nil
		}
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	note, err := uow.NoteRepository().FindOne(ctx, specification.ByID{ID: noteId})
	if err != nil {
		return nil, apperror.NewInternalError("failed to load note", err)
	}
	if note == nil {
		return nil, nil
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, note); err != nil {
			s.logger.Warn("NoteService", "note cache write failed", map[string]interface{}{
				"note_id": noteId,
				"error":   err.Error(),
			})
		}
	}

	return toNoteResponse(note), nil
}

func (s *noteService) CreateNewNote(ctx context.Context, ownerId string) (*dto.NoteResponse, error) {
	return s.SaveNote(ctx, ownerId, &dto.SaveNoteRequest{})
}

func toNoteResponse(note *entity.Note) *dto.NoteResponse {
	return &dto.NoteResponse{
		Id:        note.Id,
		Title:     note.Title,
		Content:   note.Content,
		OwnerId:   note.OwnerId,
		CreatedAt: note.CreatedAt,
		UpdatedAt: note.UpdatedAt,
	}
}
