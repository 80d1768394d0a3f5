package domain

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrNoTargetBranches = errors.New("none of the specified branches exist")
)

// AuthenticationError means no GitHub token could be obtained
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// RateLimitExceededError means the API quota is exhausted and we are not going to wait for it
type RateLimitExceededError struct {
	ResetAt time.Time     // When the quota resets (zero if GitHub did not say)
	Wait    time.Duration // How long a retry would have had to wait
}

func (e *RateLimitExceededError) Error() string {
	if e.ResetAt.IsZero() {
		return "GitHub API rate limit exceeded"
	}
	return fmt.Sprintf("GitHub API rate limit exceeded. Resets at: %s\nTry again in %d seconds, or wait and re-run the command.",
		e.ResetAt.Local().Format("15:04:05"), int(e.Wait.Seconds()))
}

// HTTPError is a non-2xx response that is not a rate limit
type HTTPError struct {
	Message    string
	Method     string
	StatusCode int
	URL        string
}

func (e *HTTPError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s %s: %d %s", e.Method, e.URL, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("%s %s: %d", e.Method, e.URL, e.StatusCode)
}

// IsRateLimited reports whether err comes from an exhausted rate limit
func IsRateLimited(err error) bool {
	var rlErr *RateLimitExceededError
	return errors.As(err, &rlErr)
}
