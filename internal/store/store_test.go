package store

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/globalnotes/notes-workspace/internal/kv/memory"
	"github.com/globalnotes/notes-workspace/internal/model"
)

func note(id, title string) model.Note {
	return model.Note{ID: id, Title: title, Tags: []string{}}
}

func TestKeyFor_GuestNamespace(t *testing.T) {
	if KeyFor("") != "notes-workspace.notes.guest" {
		t.Fatalf("unexpected guest key: %s", KeyFor(""))
	}
	if KeyFor("alice") != "notes-workspace.notes.alice" {
		t.Fatalf("unexpected user key: %s", KeyFor("alice"))
	}
	if FolderKeyFor("") != "notes-workspace.folders.guest" {
		t.Fatalf("unexpected guest folder key: %s", FolderKeyFor(""))
	}
}

func TestNotes_RoundTrip(t *testing.T) {
	s := New(memory.New())

	in := []model.Note{note("1", "first"), note("2", "second")}
	s.SetNotes("alice", in)

	out := s.GetNotes("alice")
	require.Equal(t, in, out)

	// namespaces are independent
	assert.Empty(t, s.GetNotes("bob"))
	assert.Empty(t, s.GetNotes(""))
}

func TestGetNotes_DefensiveReads(t *testing.T) {
	cases := map[string]string{
		"not json":   "not json",
		"number":     "42",
		"object":     "{}",
		"null":       "null",
		"empty":      "",
		"bad nested": `[{"id":1}]`, // id has the wrong type
	}
	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			kvs := memory.New()
			require.NoError(t, kvs.Set(KeyFor("alice"), raw))
			s := New(kvs)

			out := s.GetNotes("alice")
			require.NotNil(t, out)
			assert.Empty(t, out)
		})
	}

	// missing key entirely
	s := New(memory.New())
	out := s.GetNotes("alice")
	require.NotNil(t, out)
	assert.Empty(t, out)
}

func TestAccounts_DefensiveReads(t *testing.T) {
	kvs := memory.New()
	require.NoError(t, kvs.Set(accountsKey, "{}"))
	s := New(kvs)

	out := s.GetAccounts()
	require.NotNil(t, out)
	assert.Empty(t, out)
}

func TestActiveUser_Pointer(t *testing.T) {
	s := New(memory.New())

	assert.Equal(t, "", s.GetActiveUser())

	s.SetActiveUser("alice")
	assert.Equal(t, "alice", s.GetActiveUser())

	// empty username is a no-op, not a clear
	s.SetActiveUser("")
	assert.Equal(t, "alice", s.GetActiveUser())

	s.ClearActiveUser()
	assert.Equal(t, "", s.GetActiveUser())
}

func TestAccountDetails_CaseInsensitive(t *testing.T) {
	s := New(memory.New())
	s.SetAccounts([]model.Account{{Username: "Alice", Joined: "2024-01-01"}})

	acc := s.GetAccountDetails("aLiCe")
	require.NotNil(t, acc)
	assert.Equal(t, "Alice", acc.Username)

	assert.Nil(t, s.GetAccountDetails("nobody"))
}

func TestUpdateAccountDetails_ShallowMerge(t *testing.T) {
	s := New(memory.New())
	s.SetAccounts([]model.Account{{Username: "alice", Avatar: "old", Joined: "2024-01-01"}})

	avatar := "data:image/png;base64,xyz"
	ok := s.UpdateAccountDetails("ALICE", AccountUpdate{Avatar: &avatar})
	require.True(t, ok)

	acc := s.GetAccountDetails("alice")
	require.NotNil(t, acc)
	assert.Equal(t, avatar, acc.Avatar)
	// untouched field survives the merge
	assert.Equal(t, "2024-01-01", acc.Joined)

	assert.False(t, s.UpdateAccountDetails("ghost", AccountUpdate{Avatar: &avatar}))
}

func TestMergeGuestNotes(t *testing.T) {
	s := New(memory.New())
	s.SetNotes("", []model.Note{note("a", "A"), note("b", "B")})
	s.SetNotes("alice", []model.Note{note("c", "C")})

	s.MergeGuestNotes("alice")

	got := s.GetNotes("alice")
	require.Len(t, got, 3)
	// user notes first, guest notes appended
	assert.Equal(t, []string{"c", "a", "b"}, []string{got[0].ID, got[1].ID, got[2].ID})
	assert.Empty(t, s.GetNotes(""))

	// idempotent after the first merge
	s.MergeGuestNotes("alice")
	assert.Len(t, s.GetNotes("alice"), 3)
}

func TestMergeGuestNotes_NoOps(t *testing.T) {
	s := New(memory.New())
	s.SetNotes("alice", []model.Note{note("c", "C")})

	// empty guest namespace
	s.MergeGuestNotes("alice")
	assert.Len(t, s.GetNotes("alice"), 1)

	// empty username leaves guest notes alone
	s.SetNotes("", []model.Note{note("a", "A")})
	s.MergeGuestNotes("")
	assert.Len(t, s.GetNotes(""), 1)
}

func TestMigrateGuestNotesIfEmpty(t *testing.T) {
	s := New(memory.New())
	s.SetNotes("", []model.Note{note("a", "A"), note("b", "B")})

	// target empty: raw copy, guest untouched
	s.MigrateGuestNotesIfEmpty("bob")
	assert.Len(t, s.GetNotes("bob"), 2)
	assert.Len(t, s.GetNotes(""), 2)

	// target already has notes: both namespaces untouched
	s.SetNotes("carol", []model.Note{note("c", "C")})
	s.MigrateGuestNotesIfEmpty("carol")
	assert.Len(t, s.GetNotes("carol"), 1)
	assert.Len(t, s.GetNotes(""), 2)
}

func TestMigrateGuestNotesIfEmpty_CorruptTarget(t *testing.T) {
	kvs := memory.New()
	s := New(kvs)
	s.SetNotes("", []model.Note{note("a", "A")})
	require.NoError(t, kvs.Set(KeyFor("bob"), "not json"))

	// corrupt target counts as empty and is overwritten with the raw copy
	s.MigrateGuestNotesIfEmpty("bob")
	assert.Len(t, s.GetNotes("bob"), 1)
	assert.Len(t, s.GetNotes(""), 1)
}

// failingKV simulates a disabled or full local store: reads pass through to
// the wrapped store, writes and deletes fail.
type failingKV struct {
	inner interface {
		Get(string) (string, bool, error)
	}
}

func (f failingKV) Get(key string) (string, bool, error) { return f.inner.Get(key) }
func (f failingKV) Set(string, string) error             { return errors.New("quota exceeded") }
func (f failingKV) Delete(string) error                  { return errors.New("quota exceeded") }
func (f failingKV) Close() error                         { return nil }

func TestWrites_NeverPropagateStoreErrors(t *testing.T) {
	seed := memory.New()
	require.NoError(t, seed.Set(KeyFor(""), `[{"id":"a","title":"A","tags":[]}]`))
	s := New(failingKV{inner: seed})

	// none of these may panic or surface an error
	s.SetNotes("alice", []model.Note{note("x", "X")})
	s.SetAccounts([]model.Account{{Username: "alice"}})
	s.SetActiveUser("alice")
	s.ClearActiveUser()

	// a failed merge write must leave the guest namespace intact
	s.MergeGuestNotes("alice")
	assert.Len(t, s.GetNotes(""), 1)
}
