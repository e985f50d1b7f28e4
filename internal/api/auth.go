// ABOUTME: Authentication call against the backend token endpoint
// ABOUTME: Exchanges credentials for an access/refresh token pair

package api

import "context"

// Credentials is the token pair the backend issues on a successful login
type Credentials struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Authenticate exchanges a username and password for a token pair by calling
// POST /token/. The endpoint is reachable without a stored token; persisting
// the returned pair is the caller's job.
func (c *Client) Authenticate(ctx context.Context, username, password string) (*Credentials, error) {
	var creds Credentials
	if err := c.post(ctx, "/token/", loginRequest{Username: username, Password: password}, &creds); err != nil {
		return nil, err
	}
	return &creds, nil
}
