package ports

import "context"

// TokenProvider obtains a GitHub API token
type TokenProvider interface {
	Token(ctx context.Context) (string, error)
}
