package store

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// SignIn exchanges email and password for an access token at the hosted
// auth endpoint. The token authorizes the admin writes (categories,
// branding); read paths work with the anon key alone.
func (c *RestClient) SignIn(ctx context.Context, email, password string) (string, error) {
	payload, err := json.Marshal(map[string]string{
		"email":    email,
		"password": password,
	})
	if err != nil {
		return "", err
	}

	endpoint := c.baseURL + "/auth/v1/token?grant_type=password"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("apikey", c.anonKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("sign in: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return "", fmt.Errorf("sign in: %s: %s", resp.Status, strings.TrimSpace(string(body)))
	}

	var session struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&session); err != nil {
		return "", fmt.Errorf("sign in: %w", err)
	}
	if session.AccessToken == "" {
		return "", fmt.Errorf("sign in: empty access token")
	}

	// Use the fresh token for subsequent requests in this process
	c.token = session.AccessToken
	return session.AccessToken, nil
}
