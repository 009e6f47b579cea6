package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

type credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login exchanges credentials for an opaque token. The backend replies with
// the token as the raw response body; some deployments JSON-quote it, so both
// forms are accepted. The token is NOT installed on the client; that is the
// session store's job.
func (c *Client) Login(ctx context.Context, username, password string) (string, error) {
	body, err := json.Marshal(credentials{Username: username, Password: password})
	if err != nil {
		return "", err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/login", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("POST /login: %w", err)
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", &APIError{StatusCode: resp.StatusCode, Message: strings.TrimSpace(string(raw))}
	}

	token := strings.TrimSpace(string(raw))
	if strings.HasPrefix(token, `"`) {
		var s string
		if err := json.Unmarshal(raw, &s); err == nil {
			token = strings.TrimSpace(s)
		}
	}
	if token == "" {
		return "", &APIError{StatusCode: resp.StatusCode, Message: "login succeeded but no token was returned"}
	}
	return token, nil
}

// Register creates an account. Success carries no required body.
func (c *Client) Register(ctx context.Context, username, password string) error {
	return c.do(ctx, http.MethodPost, "/register", nil, credentials{Username: username, Password: password}, nil)
}
