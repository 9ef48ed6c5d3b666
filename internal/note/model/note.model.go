package model

import "time"

const (
	// KindText is the only note kind currently produced. The field exists so
	// future kinds don't need a schema migration.
	KindText = "text"

	// DefaultSkin is the presentation tag applied when the client sends none.
	DefaultSkin = "plain"
)

// Note is the persistent entity. Field names match the stored document so
// records written by earlier deployments deserialize unchanged.
type Note struct {
	ID        string    `json:"id" firestore:"-"`
	UserID    string    `json:"userId" firestore:"userId"`
	Title     string    `json:"title" firestore:"title"`
	Content   string    `json:"content" firestore:"content"`
	Kind      string    `json:"kind" firestore:"kind"`
	Skin      string    `json:"skin" firestore:"skin"`
	CreatedAt time.Time `json:"created_at" firestore:"created_at"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updated_at"`
}

// WithDefaults fills kind and skin for records that predate those fields.
func (n Note) WithDefaults() Note {
	if n.Kind == "" {
		n.Kind = KindText
	}
	if n.Skin == "" {
		n.Skin = DefaultSkin
	}
	return n
}

type CreateNoteRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	Skin    string `json:"skin"`
}

// UpdateNoteRequest carries a partial update; nil fields are left untouched.
type UpdateNoteRequest struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
	Skin    *string `json:"skin"`
}

type DeleteNoteResponse struct {
	OK        bool   `json:"ok"`
	DeletedID string `json:"deletedId"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
