package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/globalnotes/notes-workspace/internal/api/respond"
	"github.com/globalnotes/notes-workspace/internal/core/account"
	notescore "github.com/globalnotes/notes-workspace/internal/core/notes"
	"github.com/globalnotes/notes-workspace/internal/model"
)

// AccountsHandler provides HTTP transport for the local account registry.
type AccountsHandler struct {
	accountService *account.Service
	notesService   *notescore.Service
}

func NewAccountsHandler(accounts *account.Service, notes *notescore.Service) *AccountsHandler {
	return &AccountsHandler{accountService: accounts, notesService: notes}
}

// accountView is the wire shape of an account. The password hash never
// leaves the process.
type accountView struct {
	Username string `json:"username"`
	Avatar   string `json:"avatar,omitempty"`
	Joined   string `json:"joined,omitempty"`
}

func viewOf(acc *model.Account) accountView {
	return accountView{Username: acc.Username, Avatar: acc.Avatar, Joined: acc.Joined}
}

// Register POST /api/accounts
func (h *AccountsHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.WriteBadRequest(w, "Invalid JSON")
		return
	}
	acc, err := h.accountService.Register(req.Username, req.Password)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusCreated, viewOf(acc))
}

// GetProfile GET /api/accounts/{user}
// Returns the account together with usage stats for the profile view.
func (h *AccountsHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	username := mux.Vars(r)["user"]
	acc, err := h.accountService.Details(username)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	stats := notescore.ComputeStats(h.notesService.List(username), time.Now().UTC())
	respond.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"account": viewOf(acc),
		"stats":   stats,
	})
}

// UpdateProfile PATCH /api/accounts/{user}
func (h *AccountsHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	var req account.ProfileUpdate
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.WriteBadRequest(w, "Invalid JSON")
		return
	}
	acc, err := h.accountService.UpdateProfile(mux.Vars(r)["user"], req)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, viewOf(acc))
}
