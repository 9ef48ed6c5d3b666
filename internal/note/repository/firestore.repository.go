package repository

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/emresolakcbu/Connectinno-Notes-Api/internal/note/model"
	"github.com/emresolakcbu/Connectinno-Notes-Api/pkg/logger"
)

const notesCollection = "notes"

// FirestoreNoteRepository stores notes in a Firestore collection with
// server-assigned timestamps.
type FirestoreNoteRepository struct {
	client *firestore.Client
}

func NewFirestoreNoteRepository(client *firestore.Client) *FirestoreNoteRepository {
	return &FirestoreNoteRepository{client: client}
}

func (r *FirestoreNoteRepository) ListByUser(ctx context.Context, userID string) ([]model.Note, error) {
	iter := r.client.Collection(notesCollection).
		Where("userId", "==", userID).
		OrderBy("updated_at", firestore.Desc).
		Documents(ctx)
	defer iter.Stop()

	notes := make([]model.Note, 0)
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			logger.Sugar.Errorf("Failed to list notes for user %s: %v", userID, err)
			return nil, err
		}
		note, err := snapToNote(snap)
		if err != nil {
			logger.Sugar.Errorf("Skipping malformed note %s: %v", snap.Ref.ID, err)
			continue
		}
		notes = append(notes, note)
	}
	return notes, nil
}

func (r *FirestoreNoteRepository) Get(ctx context.Context, id string) (model.Note, error) {
	snap, err := r.client.Collection(notesCollection).Doc(id).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return model.Note{}, ErrNotFound
	}
	if err != nil {
		logger.Sugar.Errorf("Failed to get note %s: %v", id, err)
		return model.Note{}, err
	}
	return snapToNote(snap)
}

func (r *FirestoreNoteRepository) Create(ctx context.Context, note model.Note) (string, error) {
	ref := r.client.Collection(notesCollection).NewDoc()
	_, err := ref.Set(ctx, map[string]any{
		"userId":     note.UserID,
		"title":      note.Title,
		"content":    note.Content,
		"kind":       note.Kind,
		"skin":       note.Skin,
		"created_at": firestore.ServerTimestamp,
		"updated_at": firestore.ServerTimestamp,
	})
	if err != nil {
		logger.Sugar.Errorf("Failed to create note: %v", err)
		return "", err
	}
	return ref.ID, nil
}

func (r *FirestoreNoteRepository) Update(ctx context.Context, id string, fields map[string]any) error {
	updates := make([]firestore.Update, 0, len(fields)+1)
	for path, value := range fields {
		updates = append(updates, firestore.Update{Path: path, Value: value})
	}
	updates = append(updates, firestore.Update{Path: "updated_at", Value: firestore.ServerTimestamp})

	_, err := r.client.Collection(notesCollection).Doc(id).Update(ctx, updates)
	if status.Code(err) == codes.NotFound {
		return ErrNotFound
	}
	if err != nil {
		logger.Sugar.Errorf("Failed to update note %s: %v", id, err)
	}
	return err
}

func (r *FirestoreNoteRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.Collection(notesCollection).Doc(id).Delete(ctx)
	if err != nil {
		logger.Sugar.Errorf("Failed to delete note %s: %v", id, err)
	}
	return err
}

func snapToNote(snap *firestore.DocumentSnapshot) (model.Note, error) {
	var note model.Note
	if err := snap.DataTo(&note); err != nil {
		return model.Note{}, err
	}
	note.ID = snap.Ref.ID
	return note, nil
}
