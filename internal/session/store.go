package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Store is the single owner of authentication state: the bearer token, the
// derived authenticated flag, and a loading flag that is true until the
// durable token file has been read once. It performs no network calls.
//
// All mutation goes through Login/Logout; consumers get read access only.
// Everything runs on the UI event loop, so there is no locking here.
type Store struct {
	loading bool
	token   string

	// onChange propagates token changes to the API client's default
	// Authorization header, so every request after login carries the new
	// token without callers re-supplying it.
	onChange func(token string)
}

func New() *Store {
	return &Store{loading: true}
}

// OnChange registers the token sink. Registering after Load/Login fires the
// sink immediately with the current token.
func (s *Store) OnChange(fn func(token string)) {
	s.onChange = fn
	if fn != nil && !s.loading {
		fn(s.token)
	}
}

func (s *Store) Loading() bool { return s.loading }

func (s *Store) Token() string { return s.token }

// IsAuthenticated must not be treated as decided while Loading is true.
func (s *Store) IsAuthenticated() bool { return s.token != "" }

// Load reads the durable token file once and resolves the loading state.
// A missing file is a resolved unauthenticated session, not an error.
func (s *Store) Load() error {
	path, err := tokenPath()
	if err != nil {
		return err
	}
	s.loading = false
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			s.setToken("")
			return nil
		}
		s.setToken("")
		return err
	}
	var f tokenFile
	if err := json.Unmarshal(b, &f); err != nil {
		s.setToken("")
		return fmt.Errorf("parse %s: %w", path, err)
	}
	s.setToken(strings.TrimSpace(f.Token))
	return nil
}

// Login records the token in memory and durably.
func (s *Store) Login(token string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return errors.New("empty token")
	}
	s.loading = false
	s.setToken(token)
	return saveToken(token)
}

// Logout clears the token from memory and durable storage.
func (s *Store) Logout() error {
	s.loading = false
	s.setToken("")
	path, err := tokenPath()
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

func (s *Store) setToken(token string) {
	s.token = token
	if s.onChange != nil {
		s.onChange(token)
	}
}

type tokenFile struct {
	Token string `json:"token"`
}

// ConfigDir resolves the durable-state directory.
func ConfigDir() (string, error) {
	// Test/advanced override (keeps unit tests from touching ~/.leadman).
	if v := strings.TrimSpace(os.Getenv("LEADMAN_CONFIG_DIR")); v != "" {
		return v, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".leadman"), nil
}

func tokenPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "session.json"), nil
}

func saveToken(token string) error {
	path, err := tokenPath()
	if err != nil {
		return err
	}
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	b, err := json.MarshalIndent(tokenFile{Token: token}, "", "  ")
	if err != nil {
		return err
	}
	// Unique temp file + atomic rename so a concurrent CLI invocation never
	// observes a torn write.
	return atomicWriteFile(dir, "session.json.*.tmp", path, b, 0o600)
}

func atomicWriteFile(dir, tmpPattern, path string, b []byte, perm os.FileMode) error {
	f, err := os.CreateTemp(dir, tmpPattern)
	if err != nil {
		return err
	}
	tmp := f.Name()
	defer func() { _ = os.Remove(tmp) }()
	if _, err := f.Write(b); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	_ = os.Chmod(tmp, perm)
	return os.Rename(tmp, path)
}
