package http

import (
	"github.com/gorilla/mux"
)

// Handlers bundles every handler the router mounts.
type Handlers struct {
	Page     *PageHandler
	Health   *HealthHandler
	Notes    *NotesHandler
	Accounts *AccountsHandler
	Sessions *SessionsHandler
	Share    *ShareHandler
	Auth     *AuthBridgeHandler
}

// NewRouter creates the application router and registers all routes.
func NewRouter(h Handlers) *mux.Router {
	r := mux.NewRouter()

	r.HandleFunc("/", h.Page.Root).Methods("GET")
	r.HandleFunc("/api/health", h.Health.Health).Methods("GET")

	r.HandleFunc("/api/users/{user}/notes", h.Notes.ListNotes).Methods("GET")
	r.HandleFunc("/api/users/{user}/notes", h.Notes.CreateNote).Methods("POST")
	r.HandleFunc("/api/users/{user}/notes/{noteId}", h.Notes.GetNote).Methods("GET")
	r.HandleFunc("/api/users/{user}/notes/{noteId}", h.Notes.UpdateNote).Methods("PUT")
	r.HandleFunc("/api/users/{user}/notes/{noteId}", h.Notes.DeleteNote).Methods("DELETE")

	r.HandleFunc("/api/users/{user}/folders", h.Notes.ListFolders).Methods("GET")
	r.HandleFunc("/api/users/{user}/folders", h.Notes.CreateFolder).Methods("POST")
	r.HandleFunc("/api/users/{user}/folders/{folderId}", h.Notes.DeleteFolder).Methods("DELETE")

	r.HandleFunc("/api/accounts", h.Accounts.Register).Methods("POST")
	r.HandleFunc("/api/accounts/{user}", h.Accounts.GetProfile).Methods("GET")
	r.HandleFunc("/api/accounts/{user}", h.Accounts.UpdateProfile).Methods("PATCH")

	r.HandleFunc("/api/sessions", h.Sessions.Login).Methods("POST")
	r.HandleFunc("/api/sessions", h.Sessions.Current).Methods("GET")
	r.HandleFunc("/api/sessions", h.Sessions.Logout).Methods("DELETE")

	r.HandleFunc("/api/share", h.Share.CreateLink).Methods("POST")
	r.HandleFunc("/api/share/qr", h.Share.RenderQR).Methods("GET")

	r.HandleFunc("/api/auth/signup", h.Auth.SignUp).Methods("POST")
	r.HandleFunc("/api/auth/signin", h.Auth.SignIn).Methods("POST")
	r.HandleFunc("/api/auth/signout", h.Auth.SignOut).Methods("POST")
	r.HandleFunc("/api/auth/session", h.Auth.Session).Methods("GET")
	r.HandleFunc("/api/auth/authorize", h.Auth.Authorize).Methods("GET")

	return r
}
