package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/globalnotes/notes-workspace/internal/api/respond"
	"github.com/globalnotes/notes-workspace/internal/auth"
)

// AuthBridgeHandler proxies the optional external identity provider. When no
// provider is configured every route answers 503; local accounts keep
// working regardless.
type AuthBridgeHandler struct {
	client *auth.Client
}

func NewAuthBridgeHandler(client *auth.Client) *AuthBridgeHandler {
	return &AuthBridgeHandler{client: client}
}

func (h *AuthBridgeHandler) unavailable(w http.ResponseWriter) bool {
	if h.client != nil {
		return false
	}
	respond.WriteError(w, http.StatusServiceUnavailable, "external auth provider is not configured")
	return true
}

// writeProviderError forwards the provider's status and message.
func writeProviderError(w http.ResponseWriter, err error) {
	var perr *auth.ProviderError
	if errors.As(err, &perr) {
		respond.WriteError(w, perr.Status, perr.Message)
		return
	}
	respond.WriteError(w, http.StatusBadGateway, err.Error())
}

// bearerToken pulls the access token from the Authorization header.
func bearerToken(r *http.Request) string {
	return strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
}

// SignUp POST /api/auth/signup
func (h *AuthBridgeHandler) SignUp(w http.ResponseWriter, r *http.Request) {
	if h.unavailable(w) {
		return
	}
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
		Username string `json:"username"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.WriteBadRequest(w, "Invalid JSON")
		return
	}
	res, err := h.client.SignUp(r.Context(), req.Email, req.Password, req.Username)
	if err != nil {
		writeProviderError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusCreated, map[string]interface{}{
		"session":             res.Session,
		"confirmationPending": res.ConfirmationPending,
	})
}

// SignIn POST /api/auth/signin
func (h *AuthBridgeHandler) SignIn(w http.ResponseWriter, r *http.Request) {
	if h.unavailable(w) {
		return
	}
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.WriteBadRequest(w, "Invalid JSON")
		return
	}
	session, err := h.client.SignIn(r.Context(), req.Email, req.Password)
	if err != nil {
		writeProviderError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, session)
}

// SignOut POST /api/auth/signout
func (h *AuthBridgeHandler) SignOut(w http.ResponseWriter, r *http.Request) {
	if h.unavailable(w) {
		return
	}
	if err := h.client.SignOut(r.Context(), bearerToken(r)); err != nil {
		writeProviderError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Authorize GET /api/auth/authorize?provider=github&redirect_to=...
// Redirects the browser into the provider's OAuth flow.
func (h *AuthBridgeHandler) Authorize(w http.ResponseWriter, r *http.Request) {
	if h.unavailable(w) {
		return
	}
	provider := r.URL.Query().Get("provider")
	if provider == "" {
		respond.WriteBadRequest(w, "provider parameter is required")
		return
	}
	u := h.client.ProviderAuthorizeURL(provider, r.URL.Query().Get("redirect_to"))
	http.Redirect(w, r, u, http.StatusFound)
}

// Session GET /api/auth/session
func (h *AuthBridgeHandler) Session(w http.ResponseWriter, r *http.Request) {
	if h.unavailable(w) {
		return
	}
	user, err := h.client.GetSession(r.Context(), bearerToken(r))
	if err != nil {
		writeProviderError(w, err)
		return
	}
	if user == nil {
		respond.WriteJSON(w, http.StatusOK, map[string]interface{}{"user": nil})
		return
	}
	respond.WriteJSON(w, http.StatusOK, map[string]interface{}{"user": user})
}
