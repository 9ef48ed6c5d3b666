package socket

import (
	"encoding/json"

	"github.com/emresolakcbu/Connectinno-Notes-Api/pkg/logger"
)

const (
	NoteCreatedType = "note.created" // A note was created via the API
	NoteUpdatedType = "note.updated" // A note's fields changed
	NoteDeletedType = "note.deleted" // A note was removed
)

// Event is what connected clients receive. For deletions the note payload
// only carries the id.
type Event struct {
	Type string          `json:"type"`
	Note json.RawMessage `json:"note"`
}

type envelope struct {
	userID  string
	payload []byte
}

// Hub fans note events out to every open connection of the owning user.
// Rooms are keyed by user id. The hub holds no note state and never touches
// the store; the REST handlers are the only write path.
type Hub struct {
	Rooms      map[string]map[*Client]bool
	Broadcast  chan envelope
	Register   chan *Client
	Unregister chan *Client
}

func NewHub() *Hub {
	return &Hub{
		Rooms:      make(map[string]map[*Client]bool),
		Broadcast:  make(chan envelope),
		Register:   make(chan *Client),
		Unregister: make(chan *Client),
	}
}

// Publish sends an event to every connection of the given user. It is
// fire-and-forget: REST responses never wait on delivery to clients.
func (h *Hub) Publish(userID string, event Event) {
	payload, err := json.Marshal(event)
	if err != nil {
		logger.Sugar.Errorf("Error marshalling event for user %s: %v", userID, err)
		return
	}
	h.Broadcast <- envelope{userID: userID, payload: payload}
}

// Run owns the room map; all membership changes and deliveries happen on this
// goroutine, so no locking is needed.
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.Register:
			if h.Rooms[client.UserID] == nil {
				h.Rooms[client.UserID] = make(map[*Client]bool)
			}
			h.Rooms[client.UserID][client] = true

		case client := <-h.Unregister:
			h.drop(client)

		case env := <-h.Broadcast:
			for client := range h.Rooms[env.userID] {
				select {
				case client.Send <- env.payload:
				default:
					// The send buffer is full, the client is lagging.
					// Drop it to keep the hub from blocking.
					logger.Sugar.Warnf("Client of user %s is lagging, dropping connection", client.UserID)
					h.drop(client)
				}
			}
		}
	}
}

func (h *Hub) drop(client *Client) {
	if _, ok := h.Rooms[client.UserID][client]; !ok {
		return
	}
	delete(h.Rooms[client.UserID], client)
	close(client.Send)
	if len(h.Rooms[client.UserID]) == 0 {
		delete(h.Rooms, client.UserID)
	}
}
