package session

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// FileTokenStore persists the token as JSON under the stampbook config
// directory (~/.stampbook/session.json by default).
type FileTokenStore struct {
	path string
}

type sessionFile struct {
	Token string `json:"token"`
}

// DefaultSessionPath returns ~/.stampbook/session.json.
func DefaultSessionPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".stampbook", "session.json"), nil
}

// NewFileTokenStore creates a file-backed token store at path.
func NewFileTokenStore(path string) *FileTokenStore {
	return &FileTokenStore{path: path}
}

// Load reads the stored token. A missing file means "not logged in", not an
// error.
func (f *FileTokenStore) Load() (string, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", err
	}

	var s sessionFile
	if err := json.Unmarshal(data, &s); err != nil {
		return "", err
	}
	return s.Token, nil
}

// Save writes the token. The file is mode 0600, it holds a credential.
func (f *FileTokenStore) Save(token string) error {
	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(sessionFile{Token: token}, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(f.path, data, 0600)
}

// Clear removes the stored token. Clearing an empty store is fine.
func (f *FileTokenStore) Clear() error {
	err := os.Remove(f.path)
	if os.IsNotExist(err) {
		return nil
	}
	return err
}
