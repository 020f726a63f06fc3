package ports

import "context"

// Session is an authenticated handle to the provider API for one profile.
// Adapters type-assert it back to their own concrete session.
type Session interface {
	Profile() string
}

// SessionPort opens authenticated sessions. Role assumption, credential
// caching and refresh happen behind this seam.
type SessionPort interface {
	Open(ctx context.Context, profile string) (Session, error)
}
