package auth

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/prevostc/graph-tooling/pkg/node"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// DefaultKeystoreFile is the keystore file name inside the user's home directory.
const DefaultKeystoreFile = ".graph-cli.yaml"

// KeyStore defines the deploy key operations used by commands.
// Consumers should accept this interface to enable testing with mocks.
type KeyStore interface {
	SaveDeployKey(nodeURL, key string) error
	IdentifyAccessToken(nodeURL, flagValue string) (string, error)
}

// Store persists deploy keys keyed by normalized node URL.
type Store struct {
	fs   afero.Fs
	path string
}

// Compile-time check that Store implements KeyStore.
var _ KeyStore = (*Store)(nil)

type keystoreFile struct {
	DeployKeys map[string]string `yaml:"deploy-keys"`
}

// NewStore returns a store backed by the file at path on fs.
func NewStore(fs afero.Fs, path string) *Store {
	return &Store{fs: fs, path: path}
}

// DefaultPath returns ~/.graph-cli.yaml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to determine home directory: %w", err)
	}
	return filepath.Join(home, DefaultKeystoreFile), nil
}

// Path returns the keystore file location.
func (s *Store) Path() string {
	return s.path
}

func (s *Store) load() (*keystoreFile, error) {
	kf := &keystoreFile{DeployKeys: map[string]string{}}
	data, err := afero.ReadFile(s.fs, s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return kf, nil
		}
		return nil, fmt.Errorf("failed to read keystore %s: %w", s.path, err)
	}
	if err := yaml.Unmarshal(data, kf); err != nil {
		return nil, fmt.Errorf("failed to parse keystore %s: %w", s.path, err)
	}
	if kf.DeployKeys == nil {
		kf.DeployKeys = map[string]string{}
	}
	return kf, nil
}

// SaveDeployKey stores key for nodeURL, replacing any previous key.
func (s *Store) SaveDeployKey(nodeURL, key string) error {
	normalized, err := node.Normalize(nodeURL)
	if err != nil {
		return err
	}

	kf, err := s.load()
	if err != nil {
		return err
	}
	kf.DeployKeys[normalized] = key

	data, err := yaml.Marshal(kf)
	if err != nil {
		return fmt.Errorf("failed to encode keystore: %w", err)
	}
	if dir := filepath.Dir(s.path); dir != "." {
		if err := s.fs.MkdirAll(dir, 0700); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	if err := afero.WriteFile(s.fs, s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write keystore %s: %w", s.path, err)
	}
	return nil
}

// DeployKey returns the stored key for nodeURL, or "" when none is stored.
func (s *Store) DeployKey(nodeURL string) (string, error) {
	normalized, err := node.Normalize(nodeURL)
	if err != nil {
		return "", err
	}
	kf, err := s.load()
	if err != nil {
		return "", err
	}
	return kf.DeployKeys[normalized], nil
}

// IdentifyAccessToken returns flagValue when set, otherwise the key stored for nodeURL.
// An empty result means the request is sent without credentials.
func (s *Store) IdentifyAccessToken(nodeURL, flagValue string) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}
	return s.DeployKey(nodeURL)
}
