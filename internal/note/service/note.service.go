package service

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"github.com/emresolakcbu/Connectinno-Notes-Api/internal/note/model"
	"github.com/emresolakcbu/Connectinno-Notes-Api/internal/note/repository"
	"github.com/emresolakcbu/Connectinno-Notes-Api/pkg/logger"
	"github.com/emresolakcbu/Connectinno-Notes-Api/socket"
)

var (
	// ErrForbidden means the caller is authenticated but does not own the note.
	ErrForbidden = errors.New("forbidden")
	// ErrTitleRequired is returned when a create request has no usable title.
	ErrTitleRequired = errors.New("title is required")
)

// EventPublisher receives note change events for the websocket feed.
type EventPublisher interface {
	Publish(userID string, event socket.Event)
}

type NoteService struct {
	Repo   repository.NoteRepository
	Events EventPublisher
}

func NewNoteService(repo repository.NoteRepository, events EventPublisher) *NoteService {
	return &NoteService{Repo: repo, Events: events}
}

// List returns the caller's notes, most recently updated first.
func (s *NoteService) List(ctx context.Context, userID string) ([]model.Note, error) {
	notes, err := s.Repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	for i := range notes {
		notes[i] = notes[i].WithDefaults()
	}
	return notes, nil
}

// Create validates and normalizes the request, stores the note with
// server-assigned timestamps and returns the stored record.
func (s *NoteService) Create(ctx context.Context, userID string, req model.CreateNoteRequest) (model.Note, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return model.Note{}, ErrTitleRequired
	}
	skin := model.DefaultSkin
	if req.Skin != "" {
		skin = strings.TrimSpace(req.Skin)
	}

	id, err := s.Repo.Create(ctx, model.Note{
		UserID:  userID,
		Title:   title,
		Content: strings.TrimSpace(req.Content),
		Kind:    model.KindText,
		Skin:    skin,
	})
	if err != nil {
		return model.Note{}, err
	}

	// Re-fetch so the response carries the store's timestamps.
	created, err := s.Repo.Get(ctx, id)
	if err != nil {
		return model.Note{}, err
	}
	created = created.WithDefaults()
	s.publish(userID, socket.NoteCreatedType, created)
	return created, nil
}

// Update applies the provided fields to a note the caller owns. Fields left
// out of the request are untouched; provided fields are trimmed and applied
// as-is, so a title may be cleared here even though Create rejects empty ones.
func (s *NoteService) Update(ctx context.Context, userID, id string, req model.UpdateNoteRequest) (model.Note, error) {
	existing, err := s.Repo.Get(ctx, id)
	if err != nil {
		return model.Note{}, err
	}
	if existing.UserID != userID {
		return model.Note{}, ErrForbidden
	}

	fields := make(map[string]any)
	if req.Title != nil {
		fields["title"] = strings.TrimSpace(*req.Title)
	}
	if req.Content != nil {
		fields["content"] = strings.TrimSpace(*req.Content)
	}
	if req.Skin != nil {
		fields["skin"] = strings.TrimSpace(*req.Skin)
	}
	fields["kind"] = model.KindText

	if err := s.Repo.Update(ctx, id, fields); err != nil {
		return model.Note{}, err
	}

	updated, err := s.Repo.Get(ctx, id)
	if err != nil {
		return model.Note{}, err
	}
	updated = updated.WithDefaults()
	s.publish(userID, socket.NoteUpdatedType, updated)
	return updated, nil
}

// Delete removes a note the caller owns. The lookup precedes the ownership
// check, so a non-owner gets ErrForbidden for an existing note and
// repository.ErrNotFound only when the id does not exist.
func (s *NoteService) Delete(ctx context.Context, userID, id string) error {
	existing, err := s.Repo.Get(ctx, id)
	if err != nil {
		return err
	}
	if existing.UserID != userID {
		return ErrForbidden
	}

	if err := s.Repo.Delete(ctx, id); err != nil {
		return err
	}
	s.publish(userID, socket.NoteDeletedType, map[string]string{"id": id})
	return nil
}

func (s *NoteService) publish(userID, eventType string, note any) {
	if s.Events == nil {
		return
	}
	payload, err := json.Marshal(note)
	if err != nil {
		logger.Sugar.Errorf("Failed to marshal %s event: %v", eventType, err)
		return
	}
	s.Events.Publish(userID, socket.Event{Type: eventType, Note: payload})
}
