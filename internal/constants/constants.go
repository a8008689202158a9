package constants

import "time"

// ContextKeyUser is the gin context key holding the authenticated user.
const ContextKeyUser = "current_user"

// Token lifecycle.
const (
	// TokenTTL is how long a freshly issued token stays valid.
	TokenTTL = 86400 * time.Second
	// TokenReuseWindow: POST /tokens returns the stored token unchanged as
	// long as it remains valid for more than this.
	TokenReuseWindow = 60 * time.Second
	// TokenBytes of cryptographically secure randomness per token; hex
	// encoding doubles this on the wire.
	TokenBytes = 16
)

// Pagination bounds for list endpoints. Lists are unpaginated unless the
// caller asks for a page.
const (
	MinPage         = 1
	DefaultPageSize = 20
	MaxPageSize     = 100
)
