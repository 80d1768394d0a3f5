package auth

import (
	"context"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/renato0307/pickcheck/internal/domain"
	"github.com/renato0307/pickcheck/internal/logging"
	"github.com/renato0307/pickcheck/internal/ports"
)

const ghTokenTimeout = 10 * time.Second

// TokenEnvVar is the environment variable read when gh is not available
const TokenEnvVar = "GITHUB_TOKEN"

const remediation = `Cannot obtain GitHub authentication.

Please configure authentication using one of the following methods:

Method 1: Set GITHUB_TOKEN environment variable
  1. Go to https://github.com/settings/tokens
  2. Click 'Generate new token (classic)'
  3. Select scopes: 'repo' (for private repos) or 'public_repo' (for public repos)
  4. Copy the token and set it:
     export GITHUB_TOKEN=your_token_here

Method 2: Use GitHub CLI (gh)
  1. Install gh: https://cli.github.com/
     - macOS: brew install gh
     - Ubuntu: sudo apt install gh
  2. Login: gh auth login`

var _ ports.TokenProvider = (*TokenProvider)(nil)

// TokenProvider gets a token from the gh CLI, falling back to GITHUB_TOKEN
type TokenProvider struct{}

// NewTokenProvider creates a new TokenProvider
func NewTokenProvider() *TokenProvider {
	return &TokenProvider{}
}

// Token returns a GitHub token or an *domain.AuthenticationError
func (p *TokenProvider) Token(ctx context.Context) (string, error) {
	if token := ghToken(ctx); token != "" {
		logging.Logger.Debug("Using token from gh CLI")
		return token, nil
	}

	if token := strings.TrimSpace(os.Getenv(TokenEnvVar)); token != "" {
		logging.Logger.Debug("Using token from environment", "var", TokenEnvVar)
		return token, nil
	}

	logging.Logger.Warn("No GitHub token available")
	return "", &domain.AuthenticationError{Message: remediation}
}

// ghToken runs `gh auth token`. Returns "" if gh is missing or not logged in.
func ghToken(ctx context.Context) string {
	if _, err := exec.LookPath("gh"); err != nil {
		logging.Logger.Debug("gh CLI not found, skipping")
		return ""
	}

	ctx, cancel := context.WithTimeout(ctx, ghTokenTimeout)
	defer cancel()

	output, err := exec.CommandContext(ctx, "gh", "auth", "token").Output()
	if err != nil {
		logging.Logger.Debug("gh auth token failed", "error", err)
		return ""
	}
	return strings.TrimSpace(string(output))
}
