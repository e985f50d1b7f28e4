// ABOUTME: User and customer management operations against the backend
// ABOUTME: Listing, registration, updates, activation toggling, and deletion

package api

import (
	"context"
	"fmt"
)

// User mirrors the backend user model. Role arrives as the backend's
// internal label (CLIENT/OPERATOR/ADMIN) or as the display label, depending
// on the serializer; the console treats it as opaque text.
type User struct {
	ID          int     `json:"id"`
	Username    string  `json:"username"`
	Email       string  `json:"email"`
	FirstName   string  `json:"first_name"`
	LastName    string  `json:"last_name"`
	Role        string  `json:"role"`
	Phone       *string `json:"phone"`
	Address     *string `json:"address"`
	IsActive    bool    `json:"is_active"`
	DateJoined  string  `json:"date_joined"`
	IsSuperuser bool    `json:"is_superuser,omitempty"`
}

// UserInput is the create/update payload
type UserInput struct {
	Username  string `json:"username"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Role      string `json:"role"`
	Phone     string `json:"phone,omitempty"`
	Address   string `json:"address,omitempty"`
	Password  string `json:"password,omitempty"`
}

const (
	usersEndpoint    = "/users/"
	registerEndpoint = "/register/"
)

// Users lists all users via GET /users/
func (c *Client) Users(ctx context.Context) ([]User, error) {
	var page Paginated[User]
	if err := c.get(ctx, usersEndpoint, nil, &page); err != nil {
		return nil, err
	}
	return page.Results, nil
}

// CreateUser registers a user via POST /register/. The endpoint serves both
// self-service signup (no token) and admin-side creation (token attached).
func (c *Client) CreateUser(ctx context.Context, input UserInput) (*User, error) {
	var created User
	if err := c.post(ctx, registerEndpoint, input, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateUser applies a partial update via PATCH /users/{id}/
func (c *Client) UpdateUser(ctx context.Context, id int, input UserInput) (*User, error) {
	var updated User
	if err := c.patch(ctx, fmt.Sprintf("%s%d/", usersEndpoint, id), input, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// SetUserActive toggles a user's active flag via PATCH /users/{id}/
func (c *Client) SetUserActive(ctx context.Context, id int, active bool) error {
	body := map[string]bool{"is_active": active}
	return c.patch(ctx, fmt.Sprintf("%s%d/", usersEndpoint, id), body, nil)
}

// DeleteUser permanently removes a user via DELETE /users/{id}/
func (c *Client) DeleteUser(ctx context.Context, id int) error {
	return c.delete(ctx, fmt.Sprintf("%s%d/", usersEndpoint, id))
}
