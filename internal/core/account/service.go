// Package account manages locally registered accounts: signup, login, profile
// updates and adoption of guest notes at the login/signup transition.
package account

import (
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	notescore "github.com/globalnotes/notes-workspace/internal/core/notes"
	"github.com/globalnotes/notes-workspace/internal/model"
	"github.com/globalnotes/notes-workspace/internal/store"
)

const minPasswordLen = 6

// Service contains the core business logic for account operations.
type Service struct {
	store *store.Store
}

// NewService creates a new account service.
func NewService(st *store.Store) *Service {
	return &Service{store: st}
}

// Register creates an account with a bcrypt password hash. Usernames are
// unique case-insensitively.
func (s *Service) Register(username, password string) (*model.Account, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, notescore.NewValidationError("username", "username is required")
	}
	if len(password) < minPasswordLen {
		return nil, notescore.NewValidationError("password", "password must be at least 6 characters")
	}
	if existing := s.store.GetAccountDetails(username); existing != nil {
		return nil, notescore.NewConflictError("username", "username already taken")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	acc := model.Account{
		Username:     username,
		PasswordHash: string(hash),
		Joined:       time.Now().UTC().Format(time.RFC3339),
	}
	s.store.SetAccounts(append(s.store.GetAccounts(), acc))
	log.Info().Str("username", username).Msg("Registered account")
	return &acc, nil
}

// Authenticate checks the password against the stored bcrypt hash. The hash
// comparison is constant-time; lookup failures and password mismatches
// return the same error so usernames cannot be probed.
func (s *Service) Authenticate(username, password string) (*model.Account, error) {
	acc := s.store.GetAccountDetails(username)
	if acc == nil {
		return nil, notescore.NewValidationError("credentials", "invalid username or password")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(acc.PasswordHash), []byte(password)); err != nil {
		return nil, notescore.NewValidationError("credentials", "invalid username or password")
	}
	return acc, nil
}

// Login authenticates, persists the active-user pointer and adopts any guest
// notes into the user's namespace.
func (s *Service) Login(username, password string) (*model.Account, error) {
	acc, err := s.Authenticate(username, password)
	if err != nil {
		return nil, err
	}
	s.store.SetActiveUser(acc.Username)
	s.AdoptGuestNotes(acc.Username)
	return acc, nil
}

// Logout clears the active-user pointer.
func (s *Service) Logout() {
	s.store.ClearActiveUser()
}

// AdoptGuestNotes applies the canonical guest-migration policy: guest notes
// are appended onto the user's notes and the guest namespace is cleared.
// The copy-only-if-empty variant remains available on the store for callers
// that need it.
func (s *Service) AdoptGuestNotes(username string) {
	s.store.MergeGuestNotes(username)
}

// Details returns the account for username, or a not-found error.
func (s *Service) Details(username string) (*model.Account, error) {
	acc := s.store.GetAccountDetails(username)
	if acc == nil {
		return nil, notescore.NewNotFoundError("username", "account not found")
	}
	return acc, nil
}

// ProfileUpdate carries the optional profile fields for UpdateProfile.
type ProfileUpdate struct {
	Avatar *string `json:"avatar,omitempty"`
	Joined *string `json:"joined,omitempty"`
}

// UpdateProfile shallow-merges the given fields into the account.
func (s *Service) UpdateProfile(username string, upd ProfileUpdate) (*model.Account, error) {
	ok := s.store.UpdateAccountDetails(username, store.AccountUpdate{
		Avatar: upd.Avatar,
		Joined: upd.Joined,
	})
	if !ok {
		return nil, notescore.NewNotFoundError("username", "account not found")
	}
	return s.store.GetAccountDetails(username), nil
}
