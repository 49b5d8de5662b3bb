package oauth

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/MKhiriev/inkspire/internal/logger"
	"github.com/MKhiriev/inkspire/internal/utils"
	"github.com/MKhiriev/inkspire/models"
)

const githubRequestTimeout = 10 * time.Second

type githubUser struct {
	ID    int64  `json:"id"`
	Login string `json:"login"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type githubEmail struct {
	Email    string `json:"email"`
	Primary  bool   `json:"primary"`
	Verified bool   `json:"verified"`
}

// GitHubVerifier exchanges a GitHub access token for the user profile.
type GitHubVerifier struct {
	client *utils.HTTPClient
	logger *logger.Logger
}

func NewGitHubVerifier(apiURL string, logger *logger.Logger) *GitHubVerifier {
	return &GitHubVerifier{
		client: utils.NewHTTPClient(apiURL, githubRequestTimeout),
		logger: logger,
	}
}

// Verify calls GET /user and, when the public email is hidden, falls back
// to the primary verified address from GET /user/emails.
func (g *GitHubVerifier) Verify(ctx context.Context, credential string) (models.OAuth2Profile, error) {
	log := logger.FromContext(ctx)

	var user githubUser
	resp, err := g.client.R().
		SetContext(ctx).
		SetAuthToken(credential).
		SetResult(&user).
		Get("/user")
	if err != nil {
		log.Err(err).Str("func", "*GitHubVerifier.Verify").Msg("github user request failed")
		return models.OAuth2Profile{}, fmt.Errorf("%w: %w", ErrVerificationFailed, err)
	}
	if resp.StatusCode() != http.StatusOK || user.ID == 0 {
		log.Warn().Str("func", "*GitHubVerifier.Verify").Int("status", resp.StatusCode()).Msg("github rejected access token")
		return models.OAuth2Profile{}, fmt.Errorf("%w: github responded with %d", ErrVerificationFailed, resp.StatusCode())
	}

	profile := models.OAuth2Profile{
		Email:   user.Email,
		Name:    user.Name,
		Subject: strconv.FormatInt(user.ID, 10),
	}
	if profile.Name == "" {
		profile.Name = user.Login
	}

	if profile.Email == "" {
		profile.Email, err = g.primaryEmail(ctx, credential)
		if err != nil {
			// the account is still resolvable by provider id
			log.Warn().Err(err).Str("func", "*GitHubVerifier.Verify").Msg("no primary email available")
		}
	}

	return profile, nil
}

func (g *GitHubVerifier) primaryEmail(ctx context.Context, credential string) (string, error) {
	var emails []githubEmail
	resp, err := g.client.R().
		SetContext(ctx).
		SetAuthToken(credential).
		SetResult(&emails).
		Get("/user/emails")
	if err != nil {
		return "", err
	}
	if resp.StatusCode() != http.StatusOK {
		return "", fmt.Errorf("github emails responded with %d", resp.StatusCode())
	}

	for _, e := range emails {
		if e.Primary && e.Verified {
			return e.Email, nil
		}
	}
	return "", nil
}
