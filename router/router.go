package router

import (
	"encoding/json"
	"net/http"

	"github.com/emresolakcbu/Connectinno-Notes-Api/internal/ai"
	"github.com/emresolakcbu/Connectinno-Notes-Api/internal/auth"
	noteHandler "github.com/emresolakcbu/Connectinno-Notes-Api/internal/note"
	"github.com/emresolakcbu/Connectinno-Notes-Api/internal/note/repository"
	"github.com/emresolakcbu/Connectinno-Notes-Api/internal/note/service"
	"github.com/emresolakcbu/Connectinno-Notes-Api/middleware"
	"github.com/emresolakcbu/Connectinno-Notes-Api/socket"
)

func Setup(repo repository.NoteRepository, verifier auth.Verifier, hub *socket.Hub) http.Handler {
	mux := http.NewServeMux()

	noteService := service.NewNoteService(repo, hub)
	notes := noteHandler.NewNoteHandler(noteService)
	guard := middleware.AuthMiddleware(verifier)

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	})

	// Notes CRUD, all behind the auth guard
	mux.Handle("GET /notes", guard(http.HandlerFunc(notes.ListNotes)))
	mux.Handle("POST /notes", guard(http.HandlerFunc(notes.CreateNote)))
	mux.Handle("PUT /notes/{id}", guard(http.HandlerFunc(notes.UpdateNote)))
	mux.Handle("DELETE /notes/{id}", guard(http.HandlerFunc(notes.DeleteNote)))

	// AI stubs are a public utility surface, no auth
	mux.HandleFunc("POST /ai/suggest_title", ai.SuggestTitle)
	mux.HandleFunc("POST /ai/summarize", ai.Summarize)
	mux.HandleFunc("POST /ai/tags", ai.Tags)

	// Note event feed
	wsHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ident := middleware.IdentityFrom(r.Context())
		socket.ServeWs(hub, w, r, ident.UID)
	})
	mux.Handle("GET /ws", guard(wsHandler))

	return middleware.CORSMiddleware(mux)
}
