package client

import (
	"os"
	"strings"

	"github.com/spf13/afero"
)

// TokenStore keeps the last access token between cli invocations
type TokenStore interface {
	Load() (string, error)
	Save(token string) error
}

type fileTokenStore struct {
	fs   afero.Fs
	path string
}

func NewFileTokenStore(fs afero.Fs, path string) TokenStore {
	return &fileTokenStore{fs: fs, path: path}
}

// Load returns "" when no token has been saved
func (s *fileTokenStore) Load() (string, error) {
	data, err := afero.ReadFile(s.fs, s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}

// Save overwrites the file with the token and nothing else
func (s *fileTokenStore) Save(token string) error {
	return afero.WriteFile(s.fs, s.path, []byte(token), 0600)
}
