package notes

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"

	"github.com/globalnotes/notes-workspace/internal/model"
)

// DefaultTheme is the preset applied to notes created without one.
const DefaultTheme = "classic-blue"

const (
	welcomeTitle   = "Welcome to Notes Workspace"
	welcomeContent = "This is your first note. Use the sidebar to switch notes, add tags above, and search from the top bar.\n\nYour notes are saved locally in this browser."
	welcomeTag     = "ideas"
)

// newID returns a random UUID, falling back to a lower-entropy
// timestamp+random id if UUID generation fails.
func newID() string {
	if id, err := uuid.NewRandom(); err == nil {
		return id.String()
	}
	return fmt.Sprintf("%d-%04d", time.Now().UnixNano(), rand.IntN(10000))
}

// NewNote fills an id, theme and current timestamps for any field not
// supplied in partial. Tags are coerced to an empty slice when absent.
func NewNote(partial model.Note) model.Note {
	now := time.Now().UTC().Format(time.RFC3339)
	n := partial
	if n.ID == "" {
		n.ID = newID()
	}
	if n.Tags == nil {
		n.Tags = []string{}
	}
	if n.Theme == "" {
		n.Theme = DefaultTheme
	}
	if n.CreatedAt == "" {
		n.CreatedAt = now
	}
	if n.UpdatedAt == "" {
		n.UpdatedAt = now
	}
	return n
}

// NewFolder creates a folder with a fresh id, defaulting the name to a
// placeholder when empty.
func NewFolder(name string) model.Folder {
	if name == "" {
		name = "New Folder"
	}
	return model.Folder{
		ID:        newID(),
		Name:      name,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	}
}

// WelcomeNote builds the fixed first note shown to new users.
func WelcomeNote() model.Note {
	return NewNote(model.Note{
		Title:   welcomeTitle,
		Content: welcomeContent,
		Tags:    []string{welcomeTag},
	})
}
