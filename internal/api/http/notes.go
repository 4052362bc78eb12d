package http

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/globalnotes/notes-workspace/internal/api/respond"
	notescore "github.com/globalnotes/notes-workspace/internal/core/notes"
	"github.com/globalnotes/notes-workspace/internal/model"
)

// NotesHandler provides HTTP transport for note and folder operations.
// The path segment "guest" addresses the anonymous namespace.
type NotesHandler struct {
	notesService *notescore.Service
}

func NewNotesHandler(svc *notescore.Service) *NotesHandler {
	return &NotesHandler{notesService: svc}
}

// userVar resolves the {user} path variable; the reserved guest name maps to
// the empty namespace key.
func userVar(r *http.Request) string {
	user := mux.Vars(r)["user"]
	if user == "guest" {
		return ""
	}
	return user
}

// writeDomainError maps typed core errors to HTTP status codes.
func writeDomainError(w http.ResponseWriter, err error) {
	switch {
	case notescore.IsValidationError(err):
		respond.WriteBadRequest(w, err.Error())
	case notescore.IsNotFoundError(err):
		respond.WriteNotFound(w, err.Error())
	case notescore.IsConflictError(err):
		respond.WriteConflict(w, err.Error())
	default:
		respond.WriteInternalError(w, err.Error())
	}
}

// ListNotes GET /api/users/{user}/notes
func (h *NotesHandler) ListNotes(w http.ResponseWriter, r *http.Request) {
	notes := h.notesService.List(userVar(r))
	respond.WriteJSON(w, http.StatusOK, map[string]interface{}{"notes": notes, "count": len(notes)})
}

// CreateNote POST /api/users/{user}/notes
func (h *NotesHandler) CreateNote(w http.ResponseWriter, r *http.Request) {
	var partial model.Note
	if err := json.NewDecoder(r.Body).Decode(&partial); err != nil {
		respond.WriteBadRequest(w, "Invalid JSON")
		return
	}
	n := h.notesService.Create(userVar(r), partial)
	respond.WriteJSON(w, http.StatusCreated, n)
}

// GetNote GET /api/users/{user}/notes/{noteId}
func (h *NotesHandler) GetNote(w http.ResponseWriter, r *http.Request) {
	n, err := h.notesService.Get(userVar(r), mux.Vars(r)["noteId"])
	if err != nil {
		writeDomainError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, n)
}

// UpdateNote PUT /api/users/{user}/notes/{noteId}
func (h *NotesHandler) UpdateNote(w http.ResponseWriter, r *http.Request) {
	var req notescore.UpdateNoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.WriteBadRequest(w, "Invalid JSON")
		return
	}
	n, err := h.notesService.Update(userVar(r), mux.Vars(r)["noteId"], req)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, n)
}

// DeleteNote DELETE /api/users/{user}/notes/{noteId}
func (h *NotesHandler) DeleteNote(w http.ResponseWriter, r *http.Request) {
	if err := h.notesService.Delete(userVar(r), mux.Vars(r)["noteId"]); err != nil {
		writeDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ListFolders GET /api/users/{user}/folders
func (h *NotesHandler) ListFolders(w http.ResponseWriter, r *http.Request) {
	folders := h.notesService.ListFolders(userVar(r))
	respond.WriteJSON(w, http.StatusOK, map[string]interface{}{"folders": folders, "count": len(folders)})
}

// CreateFolder POST /api/users/{user}/folders
func (h *NotesHandler) CreateFolder(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.WriteBadRequest(w, "Invalid JSON")
		return
	}
	f := h.notesService.CreateFolder(userVar(r), req.Name)
	respond.WriteJSON(w, http.StatusCreated, f)
}

// DeleteFolder DELETE /api/users/{user}/folders/{folderId}
func (h *NotesHandler) DeleteFolder(w http.ResponseWriter, r *http.Request) {
	if err := h.notesService.DeleteFolder(userVar(r), mux.Vars(r)["folderId"]); err != nil {
		writeDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
