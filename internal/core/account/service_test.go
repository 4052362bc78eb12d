package account

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	notescore "github.com/globalnotes/notes-workspace/internal/core/notes"
	"github.com/globalnotes/notes-workspace/internal/kv/memory"
	"github.com/globalnotes/notes-workspace/internal/model"
	"github.com/globalnotes/notes-workspace/internal/store"
)

func newTestService() (*Service, *store.Store) {
	st := store.New(memory.New())
	return NewService(st), st
}

func TestRegister_HashesPassword(t *testing.T) {
	svc, st := newTestService()

	acc, err := svc.Register("alice", "secret123")
	require.NoError(t, err)
	require.NotEqual(t, "secret123", acc.PasswordHash)
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(acc.PasswordHash), []byte("secret123")))
	assert.NotEmpty(t, acc.Joined)

	stored := st.GetAccountDetails("alice")
	require.NotNil(t, stored)
	assert.NotContains(t, stored.PasswordHash, "secret123")
}

func TestRegister_Validation(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.Register("", "secret123")
	assert.True(t, notescore.IsValidationError(err))

	_, err = svc.Register("alice", "short")
	assert.True(t, notescore.IsValidationError(err))

	_, err = svc.Register("  alice  ", "secret123")
	require.NoError(t, err)

	// duplicate is case-insensitive
	_, err = svc.Register("ALICE", "secret456")
	assert.True(t, notescore.IsConflictError(err))
}

func TestAuthenticate(t *testing.T) {
	svc, _ := newTestService()
	_, err := svc.Register("alice", "secret123")
	require.NoError(t, err)

	acc, err := svc.Authenticate("Alice", "secret123")
	require.NoError(t, err)
	assert.Equal(t, "alice", acc.Username)

	// wrong password and unknown user yield the same error class
	_, errWrong := svc.Authenticate("alice", "nope")
	_, errGhost := svc.Authenticate("ghost", "nope")
	assert.True(t, notescore.IsValidationError(errWrong))
	assert.True(t, notescore.IsValidationError(errGhost))
	assert.Equal(t, errWrong.Error(), errGhost.Error())
}

func TestLogin_SetsActiveUserAndAdoptsGuestNotes(t *testing.T) {
	svc, st := newTestService()
	_, err := svc.Register("alice", "secret123")
	require.NoError(t, err)

	st.SetNotes("", []model.Note{{ID: "g1", Title: "guest note", Tags: []string{}}})
	st.SetNotes("alice", []model.Note{{ID: "u1", Title: "mine", Tags: []string{}}})

	_, err = svc.Login("alice", "secret123")
	require.NoError(t, err)

	assert.Equal(t, "alice", st.GetActiveUser())
	got := st.GetNotes("alice")
	require.Len(t, got, 2)
	assert.Equal(t, "u1", got[0].ID)
	assert.Equal(t, "g1", got[1].ID)
	assert.Empty(t, st.GetNotes(""))

	svc.Logout()
	assert.Equal(t, "", st.GetActiveUser())
}

func TestUpdateProfile(t *testing.T) {
	svc, _ := newTestService()
	_, err := svc.Register("alice", "secret123")
	require.NoError(t, err)

	avatar := "https://ui-avatars.com/api/?name=alice"
	acc, err := svc.UpdateProfile("alice", ProfileUpdate{Avatar: &avatar})
	require.NoError(t, err)
	assert.Equal(t, avatar, acc.Avatar)

	_, err = svc.UpdateProfile("ghost", ProfileUpdate{Avatar: &avatar})
	assert.True(t, notescore.IsNotFoundError(err))
}

func TestDetails(t *testing.T) {
	svc, _ := newTestService()
	_, err := svc.Register("alice", strings.Repeat("x", 10))
	require.NoError(t, err)

	acc, err := svc.Details("ALICE")
	require.NoError(t, err)
	assert.Equal(t, "alice", acc.Username)

	_, err = svc.Details("ghost")
	assert.True(t, notescore.IsNotFoundError(err))
}
