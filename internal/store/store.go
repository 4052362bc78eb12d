// Package store is the namespaced persistence façade for notes, folders,
// accounts and the active-user pointer. It sits on a kv.Store and enforces
// the layer's defensive contract: reads degrade to empty collections on
// missing or corrupt data, writes log failures and continue, and no store
// error ever propagates to a caller.
package store

import (
	"encoding/json"
	"strings"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/globalnotes/notes-workspace/internal/kv"
	"github.com/globalnotes/notes-workspace/internal/model"
)

const (
	notesPrefix   = "notes-workspace.notes"
	foldersPrefix = "notes-workspace.folders"
	activeUserKey = "notes-workspace.active-user"
	accountsKey   = "notes-workspace.accounts"

	// GuestUser is the reserved namespace for notes created before login.
	GuestUser = "guest"
)

// Store provides namespaced access to the local key/value store. A single
// mutex keeps whole-collection reads and writes atomic within the process;
// concurrent processes writing the same file can still lose updates, which
// is an accepted limitation of the design.
type Store struct {
	mu sync.Mutex
	kv kv.Store
}

func New(kvs kv.Store) *Store {
	return &Store{kv: kvs}
}

// KeyFor returns the notes key for a user namespace. The empty user maps to
// the reserved guest namespace, distinct from any real username.
func KeyFor(user string) string {
	if user == "" {
		user = GuestUser
	}
	return notesPrefix + "." + user
}

// FolderKeyFor returns the folders key for a user namespace.
func FolderKeyFor(user string) string {
	if user == "" {
		user = GuestUser
	}
	return foldersPrefix + "." + user
}

// readList reads and parses a JSON array at key. Missing keys, invalid JSON
// and non-array values all degrade to an empty slice; corruption is swallowed
// here by contract, not surfaced.
func readList[T any](s *Store, key string) []T {
	raw, ok, err := s.kv.Get(key)
	if err != nil {
		log.Error().Err(err).Str("key", key).Msg("Failed to read from local store")
		return []T{}
	}
	if !ok || raw == "" {
		return []T{}
	}
	var out []T
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		log.Debug().Str("key", key).Msg("Discarding corrupt value in local store")
		return []T{}
	}
	if out == nil {
		return []T{}
	}
	return out
}

// writeList serializes and writes a JSON array at key. Failures (quota, store
// disabled) are logged and dropped; callers must not assume durability.
func writeList[T any](s *Store, key string, items []T) bool {
	raw, err := json.Marshal(items)
	if err != nil {
		log.Error().Err(err).Str("key", key).Msg("Failed to serialize for local store")
		return false
	}
	if err := s.kv.Set(key, string(raw)); err != nil {
		log.Error().Err(err).Str("key", key).Msg("Failed to save to local store")
		return false
	}
	return true
}

// GetNotes returns all notes in the user's namespace, or an empty slice.
func (s *Store) GetNotes(user string) []model.Note {
	s.mu.Lock()
	defer s.mu.Unlock()
	return readList[model.Note](s, KeyFor(user))
}

// SetNotes overwrites the user's note array. Last write wins.
func (s *Store) SetNotes(user string, notes []model.Note) {
	s.mu.Lock()
	defer s.mu.Unlock()
	writeList(s, KeyFor(user), notes)
}

// GetFolders returns all folders in the user's namespace, or an empty slice.
func (s *Store) GetFolders(user string) []model.Folder {
	s.mu.Lock()
	defer s.mu.Unlock()
	return readList[model.Folder](s, FolderKeyFor(user))
}

// SetFolders overwrites the user's folder array.
func (s *Store) SetFolders(user string, folders []model.Folder) {
	s.mu.Lock()
	defer s.mu.Unlock()
	writeList(s, FolderKeyFor(user), folders)
}

// GetActiveUser returns the persisted active-user pointer, or "" when no
// user is logged in.
func (s *Store) GetActiveUser() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	raw, ok, err := s.kv.Get(activeUserKey)
	if err != nil {
		log.Error().Err(err).Msg("Failed to read active user")
		return ""
	}
	if !ok {
		return ""
	}
	return raw
}

// SetActiveUser persists the active-user pointer. No-op on empty username.
func (s *Store) SetActiveUser(username string) {
	if username == "" {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.kv.Set(activeUserKey, username); err != nil {
		log.Error().Err(err).Str("username", username).Msg("Failed to persist active user")
	}
}

// ClearActiveUser removes the active-user pointer (logout).
func (s *Store) ClearActiveUser() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.kv.Delete(activeUserKey); err != nil {
		log.Error().Err(err).Msg("Failed to clear active user")
	}
}

// GetAccounts returns all registered accounts, or an empty slice.
func (s *Store) GetAccounts() []model.Account {
	s.mu.Lock()
	defer s.mu.Unlock()
	return readList[model.Account](s, accountsKey)
}

// SetAccounts overwrites the account array.
func (s *Store) SetAccounts(accounts []model.Account) {
	s.mu.Lock()
	defer s.mu.Unlock()
	writeList(s, accountsKey, accounts)
}

// GetAccountDetails returns the account for username (case-insensitive), or
// nil when no such account exists.
func (s *Store) GetAccountDetails(username string) *model.Account {
	accounts := s.GetAccounts()
	for i := range accounts {
		if strings.EqualFold(accounts[i].Username, username) {
			return &accounts[i]
		}
	}
	return nil
}

// AccountUpdate carries the optional profile fields for UpdateAccountDetails.
// Nil fields are left untouched (shallow merge).
type AccountUpdate struct {
	PasswordHash *string
	Avatar       *string
	Joined       *string
}

// UpdateAccountDetails merges the given fields into the matching account
// (case-insensitive) and persists the account list. Returns false when the
// account is not found.
func (s *Store) UpdateAccountDetails(username string, updates AccountUpdate) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	accounts := readList[model.Account](s, accountsKey)
	for i := range accounts {
		if !strings.EqualFold(accounts[i].Username, username) {
			continue
		}
		if updates.PasswordHash != nil {
			accounts[i].PasswordHash = *updates.PasswordHash
		}
		if updates.Avatar != nil {
			accounts[i].Avatar = *updates.Avatar
		}
		if updates.Joined != nil {
			accounts[i].Joined = *updates.Joined
		}
		writeList(s, accountsKey, accounts)
		return true
	}
	return false
}

// MergeGuestNotes appends the guest namespace's notes onto the target user's
// notes (user notes first), persists the combined array and clears the guest
// namespace. No-op when the guest namespace is empty or username is empty.
// Notes are not deduplicated; unique ids make plain concatenation safe.
func (s *Store) MergeGuestNotes(username string) {
	if username == "" {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	guestKey := KeyFor("")
	guestNotes := readList[model.Note](s, guestKey)
	if len(guestNotes) == 0 {
		return
	}

	userKey := KeyFor(username)
	userNotes := readList[model.Note](s, userKey)
	combined := append(userNotes, guestNotes...)

	if !writeList(s, userKey, combined) {
		// keep guest notes so a later login can retry the merge
		return
	}
	if err := s.kv.Delete(guestKey); err != nil {
		log.Error().Err(err).Msg("Failed to clear guest namespace after merge")
		return
	}
	log.Info().Int("count", len(guestNotes)).Str("username", username).Msg("Merged guest notes into user namespace")
}

// MigrateGuestNotesIfEmpty copies the guest namespace's raw value into the
// user namespace only when the user currently has zero (or unparseable)
// notes. The guest namespace is left untouched either way. This is a
// distinct policy from MergeGuestNotes, preserved as a documented
// alternative; the account service decides which one the product uses.
func (s *Store) MigrateGuestNotesIfEmpty(username string) {
	if username == "" {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	userKey := KeyFor(username)
	if existing := readList[model.Note](s, userKey); len(existing) > 0 {
		return
	}

	raw, ok, err := s.kv.Get(KeyFor(""))
	if err != nil {
		log.Error().Err(err).Msg("Failed to read guest namespace")
		return
	}
	if !ok || raw == "" {
		return
	}
	if err := s.kv.Set(userKey, raw); err != nil {
		log.Error().Err(err).Str("username", username).Msg("Failed to copy guest notes")
	}
}
