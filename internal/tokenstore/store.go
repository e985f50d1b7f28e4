// ABOUTME: Durable storage for the access/refresh token pair
// ABOUTME: Persists credentials as JSON in the user config directory

package tokenstore

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// Pair is the opaque bearer credential pair issued by the backend on login.
// The store never inspects either value.
type Pair struct {
	Access  string `json:"access_token"`
	Refresh string `json:"refresh_token"`
}

// Store reads and writes the token pair under a config directory.
// Writes and deletes are whole-pair operations; the store never holds a
// partial pair.
type Store struct {
	configDir string
}

// New creates a Store rooted at the given config directory
func New(configDir string) *Store {
	return &Store{configDir: configDir}
}

// credentialsFile returns the path to the stored credentials JSON
func (s *Store) credentialsFile() string {
	return filepath.Join(s.configDir, "credentials.json")
}

// Write persists the pair, replacing any previous one.
func (s *Store) Write(p Pair) error {
	if err := os.MkdirAll(s.configDir, 0700); err != nil {
		return err
	}

	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(s.credentialsFile(), data, 0600)
}

// Read returns the stored pair. The second return is false when no pair is
// stored, the file is unreadable, or its contents are not valid JSON;
// callers treat all three the same way.
func (s *Store) Read() (Pair, bool) {
	data, err := os.ReadFile(s.credentialsFile())
	if err != nil {
		return Pair{}, false
	}

	var p Pair
	if err := json.Unmarshal(data, &p); err != nil {
		return Pair{}, false
	}
	if p.Access == "" {
		return Pair{}, false
	}
	return p, true
}

// Access returns the stored access token, or "" when none is stored.
func (s *Store) Access() string {
	p, ok := s.Read()
	if !ok {
		return ""
	}
	return p.Access
}

// Clear removes the stored pair. Clearing an empty store is a no-op.
func (s *Store) Clear() error {
	err := os.Remove(s.credentialsFile())
	if os.IsNotExist(err) {
		return nil
	}
	return err
}
