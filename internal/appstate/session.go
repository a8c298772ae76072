package appstate

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"newshub/internal/contract"
)

// SessionKey is the well-known file name the serialized session user
// lives under when no explicit path is configured.
const SessionKey = "userInfo.json"

// SessionStore persists the single session record read once at
// startup.
type SessionStore interface {
	// Load returns the persisted user and whether a record was present.
	Load() (contract.User, bool, error)
	Save(user contract.User) error
	Clear() error
}

// FileSession keeps the session record as a JSON file at Path. It is
// the localStorage analogue: one record under one well-known key.
type FileSession struct {
	Path string
}

func NewFileSession(path string) *FileSession {
	if path == "" {
		path = SessionKey
	}
	return &FileSession{Path: path}
}

func (f *FileSession) Load() (contract.User, bool, error) {
	raw, err := os.ReadFile(f.Path)
	if errors.Is(err, fs.ErrNotExist) {
		return contract.EmptyUser(""), false, nil
	}
	if err != nil {
		return contract.EmptyUser(""), false, fmt.Errorf("read session file: %w", err)
	}

	var user contract.User
	if err := json.Unmarshal(raw, &user); err != nil {
		// a corrupt record hydrates as absent
		return contract.EmptyUser(""), false, nil
	}

	return user, true, nil
}

func (f *FileSession) Save(user contract.User) error {
	raw, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("marshal session user: %w", err)
	}

	if dir := filepath.Dir(f.Path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return fmt.Errorf("create session dir: %w", err)
		}
	}

	if err := os.WriteFile(f.Path, raw, 0o600); err != nil {
		return fmt.Errorf("write session file: %w", err)
	}

	return nil
}

func (f *FileSession) Clear() error {
	err := os.Remove(f.Path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove session file: %w", err)
	}
	return nil
}
