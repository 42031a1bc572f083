// Package api implements the HTTP client for the RMS backend. It is the
// only place the client talks to the network: branding fetches for the
// cache, and the auth/profile endpoints for the CLI flows. Every outbound
// request is signed with the current bearer token from the auth store.
package api

import (
	"context"

	"github.com/rmsplatform/rms/internal/client/authstore"
	"github.com/rmsplatform/rms/internal/client/branding"
)

// LoginResult is what a successful login returns: the access token and the
// authenticated profile, written to the auth store as an atomic pair by the
// caller.
type LoginResult struct {
	Token string         `json:"token"`
	User  authstore.User `json:"user"`
}

// Client is the backend surface the rest of the client programs against.
type Client interface {
	FetchBranding(ctx context.Context) (branding.Record, error)
	Register(ctx context.Context, firstName, lastName, email string, password []byte) error
	Login(ctx context.Context, email string, password []byte) (*LoginResult, error)
	Profile(ctx context.Context) (*authstore.User, error)
	UpdateProfile(ctx context.Context, patch authstore.UserPatch) (*authstore.User, error)
	Ping(ctx context.Context) error
	Close() error
}

// TokenSource supplies the bearer token attached to outbound requests.
// *authstore.Store satisfies it.
type TokenSource interface {
	Token(ctx context.Context) string
}
