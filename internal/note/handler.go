package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/emresolakcbu/Connectinno-Notes-Api/internal/note/model"
	"github.com/emresolakcbu/Connectinno-Notes-Api/internal/note/repository"
	"github.com/emresolakcbu/Connectinno-Notes-Api/internal/note/service"
	"github.com/emresolakcbu/Connectinno-Notes-Api/middleware"
	"github.com/emresolakcbu/Connectinno-Notes-Api/pkg/logger"
)

type NoteHandler struct {
	Service *service.NoteService
}

func NewNoteHandler(svc *service.NoteService) *NoteHandler {
	return &NoteHandler{Service: svc}
}

func (h *NoteHandler) ListNotes(w http.ResponseWriter, r *http.Request) {
	ident := middleware.IdentityFrom(r.Context())

	notes, err := h.Service.List(r.Context(), ident.UID)
	if err != nil {
		logger.Sugar.Errorf("Error fetching notes: %v", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusOK, notes)
}

func (h *NoteHandler) CreateNote(w http.ResponseWriter, r *http.Request) {
	ident := middleware.IdentityFrom(r.Context())

	var req model.CreateNoteRequest
	_ = json.NewDecoder(r.Body).Decode(&req) // Ignore error, default to empty

	note, err := h.Service.Create(r.Context(), ident.UID, req)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, note)
}

func (h *NoteHandler) UpdateNote(w http.ResponseWriter, r *http.Request) {
	ident := middleware.IdentityFrom(r.Context())
	noteID := r.PathValue("id")

	var req model.UpdateNoteRequest
	_ = json.NewDecoder(r.Body).Decode(&req)

	note, err := h.Service.Update(r.Context(), ident.UID, noteID, req)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, note)
}

func (h *NoteHandler) DeleteNote(w http.ResponseWriter, r *http.Request) {
	ident := middleware.IdentityFrom(r.Context())
	noteID := r.PathValue("id")

	if err := h.Service.Delete(r.Context(), ident.UID, noteID); err != nil {
		h.writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, model.DeleteNoteResponse{OK: true, DeletedID: noteID})
}

func (h *NoteHandler) writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrTitleRequired):
		writeError(w, http.StatusBadRequest, "title is required")
	case errors.Is(err, repository.ErrNotFound):
		writeError(w, http.StatusNotFound, "not found")
	case errors.Is(err, service.ErrForbidden):
		writeError(w, http.StatusForbidden, "forbidden")
	default:
		logger.Sugar.Errorf("Unexpected error from note service: %v", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, model.ErrorResponse{Error: msg})
}
