// Package httpauth provides authentication strategies for the HTTP loader.
package httpauth

import (
	"context"
	"net/http"
)

// Authenticator applies credentials to an outgoing request.
type Authenticator interface {
	// Authenticate modifies req in place.
	Authenticate(req *http.Request) error

	// AuthenticateWithContext is Authenticate that first honors ctx cancellation.
	AuthenticateWithContext(ctx context.Context, req *http.Request) error

	// Name describes the method, e.g. "Basic".
	Name() string
}

func applyAuthWithContext(
	ctx context.Context,
	req *http.Request,
	authFn func(*http.Request) error,
) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return authFn(req)
}
