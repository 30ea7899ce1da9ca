package secrets

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sync"

	"github.com/spf13/afero"
	"projetos/pkg/constants"
)

const SecretKeyEnv = "PROJETOS_SECRET_KEY"

var ErrMissingSecretKey = errors.New("secret key is not set, run `projetos secrets init` or set " + SecretKeyEnv)

type ProjetosSecrets interface {
	GetSecrets() (*Secrets, error)
	SaveSecrets(secretsInput *Secrets) (*Secrets, error)
}

type Secrets struct {
	SecretKey string `json:"secretKey" yaml:"SecretKey"`
}

type projetosSecrets struct {
	fs     afero.Fs
	dir    string
	mu     sync.Mutex
	cached *Secrets
}

// NewProjetosSecrets reads and writes the secrets file in dir.
func NewProjetosSecrets(fs afero.Fs, dir string) ProjetosSecrets {
	return &projetosSecrets{
		fs:  fs,
		dir: dir,
	}
}

func (s *projetosSecrets) path() string {
	return filepath.Join(s.dir, constants.SecretsFileName)
}

// GetSecrets this will retrieve projetos secrets stored on disk, falling back to
// the environment when the file does not exist. The environment wins over the file.
func (s *projetosSecrets) GetSecrets() (*Secrets, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cached != nil {
		return s.cached, nil
	}

	secrets := Secrets{}

	data, err := afero.ReadFile(s.fs, s.path())
	if err != nil && !os.IsNotExist(err) {
		return nil, err
	}
	if err == nil {
		if err := json.Unmarshal(data, &secrets); err != nil {
			return nil, err
		}
	}

	if val, ok := os.LookupEnv(SecretKeyEnv); ok && val != "" {
		secrets.SecretKey = val
	}

	if secrets.SecretKey == "" {
		return nil, ErrMissingSecretKey
	}

	s.cached = &secrets
	return s.cached, nil
}

// SaveSecrets saves the secrets into the secrets file
func (s *projetosSecrets) SaveSecrets(secretsInput *Secrets) (*Secrets, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.Marshal(secretsInput)
	if err != nil {
		return nil, err
	}

	if err := afero.WriteFile(s.fs, s.path(), data, 0600); err != nil {
		return nil, err
	}

	s.cached = secretsInput
	return s.cached, nil
}
