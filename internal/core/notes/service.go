package notes

import (
	"time"

	"github.com/rs/zerolog/log"

	"github.com/globalnotes/notes-workspace/internal/model"
	"github.com/globalnotes/notes-workspace/internal/store"
)

// Service contains the core business logic for note and folder operations.
// All mutations go through the persistence façade; the service owns the
// invariant that UpdatedAt is refreshed on every content-affecting change.
type Service struct {
	store *store.Store
}

// NewService creates a new notes service.
func NewService(st *store.Store) *Service {
	return &Service{store: st}
}

// List returns the user's notes, guaranteeing at least the welcome note so
// the UI never shows a fully empty state for a first-time user.
func (s *Service) List(user string) []model.Note {
	notes := s.store.GetNotes(user)
	return s.EnsureAtLeastOneNote(user, notes)
}

// EnsureAtLeastOneNote appends and persists the welcome note when the
// collection is empty, returning the (possibly appended) collection.
func (s *Service) EnsureAtLeastOneNote(user string, notes []model.Note) []model.Note {
	if len(notes) > 0 {
		return notes
	}
	initial := WelcomeNote()
	notes = append(notes, initial)
	s.store.SetNotes(user, notes)
	log.Info().Str("user", displayUser(user)).Msg("Created welcome note for empty namespace")
	return notes
}

// Create stamps defaults onto partial, persists it at the end of the user's
// note array and returns the stored note.
func (s *Service) Create(user string, partial model.Note) model.Note {
	n := NewNote(partial)
	all := append(s.store.GetNotes(user), n)
	s.store.SetNotes(user, all)
	return n
}

// Get returns the note with the given id from the user's namespace.
func (s *Service) Get(user, noteID string) (*model.Note, error) {
	if noteID == "" {
		return nil, NewValidationError("noteId", "note ID is required")
	}
	for _, n := range s.store.GetNotes(user) {
		if n.ID == noteID {
			return &n, nil
		}
	}
	return nil, NewNotFoundError("noteId", "note not found")
}

// UpdateNoteRequest carries the mutable note fields. Nil fields are left
// untouched.
type UpdateNoteRequest struct {
	Title    *string   `json:"title,omitempty"`
	Content  *string   `json:"content,omitempty"`
	Tags     *[]string `json:"tags,omitempty"`
	FolderID *string   `json:"folderId,omitempty"`
	Theme    *string   `json:"theme,omitempty"`
}

// Update mutates the note in place and refreshes UpdatedAt. The note id and
// CreatedAt are immutable.
func (s *Service) Update(user, noteID string, req UpdateNoteRequest) (*model.Note, error) {
	if noteID == "" {
		return nil, NewValidationError("noteId", "note ID is required")
	}
	all := s.store.GetNotes(user)
	for i := range all {
		if all[i].ID != noteID {
			continue
		}
		if req.Title != nil {
			all[i].Title = *req.Title
		}
		if req.Content != nil {
			all[i].Content = *req.Content
		}
		if req.Tags != nil {
			all[i].Tags = *req.Tags
		}
		if req.FolderID != nil {
			all[i].FolderID = *req.FolderID
		}
		if req.Theme != nil {
			all[i].Theme = *req.Theme
		}
		all[i].UpdatedAt = time.Now().UTC().Format(time.RFC3339)
		s.store.SetNotes(user, all)
		n := all[i]
		return &n, nil
	}
	return nil, NewNotFoundError("noteId", "note not found")
}

// Delete removes the note from the user's namespace.
func (s *Service) Delete(user, noteID string) error {
	if noteID == "" {
		return NewValidationError("noteId", "note ID is required")
	}
	all := s.store.GetNotes(user)
	for i := range all {
		if all[i].ID == noteID {
			s.store.SetNotes(user, append(all[:i], all[i+1:]...))
			return nil
		}
	}
	return NewNotFoundError("noteId", "note not found")
}

// ListFolders returns the user's folders.
func (s *Service) ListFolders(user string) []model.Folder {
	return s.store.GetFolders(user)
}

// CreateFolder persists a new folder in the user's namespace.
func (s *Service) CreateFolder(user, name string) model.Folder {
	f := NewFolder(name)
	s.store.SetFolders(user, append(s.store.GetFolders(user), f))
	return f
}

// DeleteFolder removes a folder. Notes referencing it keep their folderId;
// the reference is weak and orphaned notes fall back to the "All Notes" view.
func (s *Service) DeleteFolder(user, folderID string) error {
	if folderID == "" {
		return NewValidationError("folderId", "folder ID is required")
	}
	all := s.store.GetFolders(user)
	for i := range all {
		if all[i].ID == folderID {
			s.store.SetFolders(user, append(all[:i], all[i+1:]...))
			return nil
		}
	}
	return NewNotFoundError("folderId", "folder not found")
}

func displayUser(user string) string {
	if user == "" {
		return store.GuestUser
	}
	return user
}
