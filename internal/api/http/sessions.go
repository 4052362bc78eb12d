package http

import (
	"encoding/json"
	"net/http"

	"github.com/globalnotes/notes-workspace/internal/api/respond"
	"github.com/globalnotes/notes-workspace/internal/core/account"
	"github.com/globalnotes/notes-workspace/internal/store"
)

// SessionsHandler manages the single local session: the active-user pointer.
type SessionsHandler struct {
	accountService *account.Service
	store          *store.Store
}

func NewSessionsHandler(accounts *account.Service, st *store.Store) *SessionsHandler {
	return &SessionsHandler{accountService: accounts, store: st}
}

// Login POST /api/sessions
// On success the guest namespace is merged into the user's namespace.
func (h *SessionsHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.WriteBadRequest(w, "Invalid JSON")
		return
	}
	acc, err := h.accountService.Login(req.Username, req.Password)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusCreated, viewOf(acc))
}

// Logout DELETE /api/sessions
func (h *SessionsHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.accountService.Logout()
	w.WriteHeader(http.StatusNoContent)
}

// Current GET /api/sessions
// Reports the active user, or {"user": null} when browsing as guest.
func (h *SessionsHandler) Current(w http.ResponseWriter, r *http.Request) {
	user := h.store.GetActiveUser()
	if user == "" {
		respond.WriteJSON(w, http.StatusOK, map[string]interface{}{"user": nil})
		return
	}
	respond.WriteJSON(w, http.StatusOK, map[string]interface{}{"user": user})
}
