package auth

import "context"

// Identity is the verified caller attached to a request after token checks.
type Identity struct {
	UID   string `json:"uid"`
	Email string `json:"email,omitempty"`
}

// Verifier turns an opaque bearer token into a verified identity.
// Every failure is equivalent to the caller: expired, malformed and revoked
// tokens all surface as an error and become a 401 upstream.
type Verifier interface {
	Verify(ctx context.Context, token string) (Identity, error)
}
