package toolbroker

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/openintent-io/openintent/ent"
)

// refreshAccessToken exchanges the refresh token in the credential
// metadata for a new access token. Returns the new token.
func (b *Broker) refreshAccessToken(ctx context.Context, cred *ent.Credential) (string, error) {
	tokenURL := metaString(cred.Metadata, "token_url", "")
	refreshToken := metaString(cred.Metadata, "refresh_token", "")
	if tokenURL == "" || refreshToken == "" {
		return "", fmt.Errorf("credential has no token_url or refresh_token")
	}

	form := url.Values{}
	form.Set("grant_type", "refresh_token")
	form.Set("refresh_token", refreshToken)
	if clientID := metaString(cred.Metadata, "client_id", ""); clientID != "" {
		form.Set("client_id", clientID)
	}
	if clientSecret := metaString(cred.Metadata, "client_secret", ""); clientSecret != "" {
		form.Set("client_secret", clientSecret)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, tokenURL,
		strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("build token request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := b.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("token request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", fmt.Errorf("read token response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("token endpoint returned %d", resp.StatusCode)
	}

	var token struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.Unmarshal(body, &token); err != nil {
		return "", fmt.Errorf("decode token response: %w", err)
	}
	if token.AccessToken == "" {
		return "", fmt.Errorf("token response has no access_token")
	}

	// Persist so the next invocation skips the refresh round trip.
	if err := b.tools.UpdateCredentialSecret(ctx, cred.ID, token.AccessToken); err != nil {
		slog.Warn("Failed to persist refreshed access token",
			"credential_id", cred.ID, "error", err)
	}
	return token.AccessToken, nil
}
