// Package auth is the boundary to the external identity provider. The core
// share and persistence logic never calls it; the HTTP layer uses it for
// optional account sign-in and only reads back the resulting username.
package auth

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/go-resty/resty/v2"
)

// User is the provider's view of an account.
type User struct {
	ID           string       `json:"id"`
	Email        string       `json:"email"`
	UserMetadata UserMetadata `json:"user_metadata"`
}

// UserMetadata carries the app-specific fields stored at signup.
type UserMetadata struct {
	Username  string `json:"username"`
	AvatarURL string `json:"avatar_url"`
}

// Session is an authenticated provider session.
type Session struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int    `json:"expires_in"`
	User         User   `json:"user"`
}

// SignUpResult distinguishes immediate sessions from the
// confirmation-pending path (email confirmation enabled on the provider).
type SignUpResult struct {
	Session             *Session
	ConfirmationPending bool
}

// ProviderError surfaces the provider's own error message and status.
type ProviderError struct {
	Status  int
	Message string
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("auth provider error (status %d): %s", e.Status, e.Message)
}

type providerErrorBody struct {
	Message     string `json:"msg"`
	Description string `json:"error_description"`
}

func (b providerErrorBody) text() string {
	if b.Message != "" {
		return b.Message
	}
	if b.Description != "" {
		return b.Description
	}
	return "request rejected"
}

// Client talks to a supabase-style auth REST API.
type Client struct {
	http *resty.Client
}

// NewClient builds a client for the given provider base URL and anon key.
func NewClient(baseURL, anonKey string) *Client {
	c := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(10 * time.Second).
		SetHeader("apikey", anonKey).
		SetHeader("Content-Type", "application/json")
	return &Client{http: c}
}

// SignUp registers email+password, storing the username and a generated
// avatar URL in metadata for the provider's profile hook to pick up.
func (c *Client) SignUp(ctx context.Context, email, password, username string) (*SignUpResult, error) {
	body := map[string]interface{}{
		"email":    email,
		"password": password,
		"data": map[string]string{
			"username":   username,
			"avatar_url": "https://ui-avatars.com/api/?name=" + url.QueryEscape(username) + "&background=random",
		},
	}

	var session Session
	var errBody providerErrorBody
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(body).
		SetResult(&session).
		SetError(&errBody).
		Post("/auth/v1/signup")
	if err != nil {
		return nil, fmt.Errorf("sign up: %w", err)
	}
	if resp.IsError() {
		return nil, &ProviderError{Status: resp.StatusCode(), Message: errBody.text()}
	}
	if session.AccessToken == "" {
		// no session yet: the provider wants the email confirmed first
		return &SignUpResult{ConfirmationPending: true}, nil
	}
	return &SignUpResult{Session: &session}, nil
}

// SignIn authenticates an existing user with the password grant.
func (c *Client) SignIn(ctx context.Context, email, password string) (*Session, error) {
	var session Session
	var errBody providerErrorBody
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParam("grant_type", "password").
		SetBody(map[string]string{"email": email, "password": password}).
		SetResult(&session).
		SetError(&errBody).
		Post("/auth/v1/token")
	if err != nil {
		return nil, fmt.Errorf("sign in: %w", err)
	}
	if resp.IsError() {
		return nil, &ProviderError{Status: resp.StatusCode(), Message: errBody.text()}
	}
	return &session, nil
}

// SignOut revokes the session's tokens.
func (c *Client) SignOut(ctx context.Context, accessToken string) error {
	var errBody providerErrorBody
	resp, err := c.http.R().
		SetContext(ctx).
		SetAuthToken(accessToken).
		SetError(&errBody).
		Post("/auth/v1/logout")
	if err != nil {
		return fmt.Errorf("sign out: %w", err)
	}
	if resp.IsError() {
		return &ProviderError{Status: resp.StatusCode(), Message: errBody.text()}
	}
	return nil
}

// GetSession resolves the user behind an access token. A rejected or expired
// token yields (nil, nil): no session, not an error.
func (c *Client) GetSession(ctx context.Context, accessToken string) (*User, error) {
	if accessToken == "" {
		return nil, nil
	}
	var user User
	resp, err := c.http.R().
		SetContext(ctx).
		SetAuthToken(accessToken).
		SetResult(&user).
		Get("/auth/v1/user")
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}
	if resp.IsError() {
		return nil, nil
	}
	return &user, nil
}

// ProviderAuthorizeURL builds the OAuth redirect entry point for a provider
// such as "google" or "github". The browser follows it; there is no API call.
func (c *Client) ProviderAuthorizeURL(provider, redirectTo string) string {
	q := url.Values{}
	q.Set("provider", provider)
	if redirectTo != "" {
		q.Set("redirect_to", redirectTo)
	}
	return c.http.BaseURL + "/auth/v1/authorize?" + q.Encode()
}
