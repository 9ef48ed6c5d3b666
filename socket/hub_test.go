package socket

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emresolakcbu/Connectinno-Notes-Api/pkg/logger"
)

func TestMain(m *testing.M) {
	logger.Init()
	m.Run()
}

// Helper function to read one event from a WebSocket connection with a timeout.
func readEvent(t *testing.T, conn *websocket.Conn) Event {
	t.Helper()
	var event Event
	// Set a deadline to avoid tests hanging forever.
	conn.SetReadDeadline(time.Now().Add(1 * time.Second))
	_, p, err := conn.ReadMessage()
	require.NoError(t, err, "Failed to read message from WebSocket")
	err = json.Unmarshal(p, &event)
	require.NoError(t, err, "Failed to unmarshal Event JSON")
	return event
}

func TestHubDeliversEventsPerUser(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// For simplicity, the user ID comes straight from the query in tests.
		ServeWs(hub, w, r, r.URL.Query().Get("user_id"))
	}))
	defer server.Close()

	wsURL := "ws" + strings.TrimPrefix(server.URL, "http")

	conn1, _, err := websocket.DefaultDialer.Dial(wsURL+"/ws?user_id=user1", nil)
	require.NoError(t, err, "Client 1 failed to connect")
	defer conn1.Close()

	conn2, _, err := websocket.DefaultDialer.Dial(wsURL+"/ws?user_id=user2", nil)
	require.NoError(t, err, "Client 2 failed to connect")
	defer conn2.Close()

	// Give the hub a moment to register both clients.
	time.Sleep(50 * time.Millisecond)

	notePayload := `{"id":"n1","userId":"user1","title":"Hi"}`
	hub.Publish("user1", Event{Type: NoteCreatedType, Note: json.RawMessage(notePayload)})

	// The owner's connection receives the event.
	event := readEvent(t, conn1)
	assert.Equal(t, NoteCreatedType, event.Type)
	assert.JSONEq(t, notePayload, string(event.Note))

	// The other user's connection does not.
	conn2.SetReadDeadline(time.Now().Add(200 * time.Millisecond))
	_, _, err = conn2.ReadMessage()
	assert.Error(t, err, "Client 2 should not receive user1's event")
}

func TestHubDeliversToAllConnectionsOfUser(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ServeWs(hub, w, r, "user1")
	}))
	defer server.Close()

	wsURL := "ws" + strings.TrimPrefix(server.URL, "http")

	conn1, _, err := websocket.DefaultDialer.Dial(wsURL+"/ws", nil)
	require.NoError(t, err)
	defer conn1.Close()

	conn2, _, err := websocket.DefaultDialer.Dial(wsURL+"/ws", nil)
	require.NoError(t, err)
	defer conn2.Close()

	time.Sleep(50 * time.Millisecond)

	hub.Publish("user1", Event{Type: NoteDeletedType, Note: json.RawMessage(`{"id":"n1"}`)})

	first := readEvent(t, conn1)
	second := readEvent(t, conn2)
	assert.Equal(t, NoteDeletedType, first.Type)
	assert.Equal(t, NoteDeletedType, second.Type)
}
