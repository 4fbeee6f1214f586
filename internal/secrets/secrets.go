// Package secrets resolves the OrangeHRM login credentials from the process
// environment, optionally seeded from a local .env file that is never committed.
// Credential values are wrapped so they cannot leak through default formatting.
package secrets

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/joho/godotenv"
)

// Environment variable names consumed by the store.
const (
	UsernameVar = "ORANGEHRM_USERNAME"
	PasswordVar = "ORANGEHRM_PASSWORD"
)

// mask replaces secret values in every string conversion path.
const mask = "********"

// Secret is a credential value whose default formatting is redacted.
// Reveal is the only way to obtain the plaintext; callers must not pass
// the revealed value to a logging call.
type Secret struct {
	value string
}

// NewSecret wraps a plaintext value.
func NewSecret(value string) Secret {
	return Secret{value: value}
}

// Reveal returns the plaintext value.
func (s Secret) Reveal() string {
	return s.value
}

// IsZero reports whether the secret holds no value.
func (s Secret) IsZero() bool {
	return strings.TrimSpace(s.value) == ""
}

func (s Secret) String() string {
	return mask
}

func (s Secret) GoString() string {
	return "secrets.Secret(" + mask + ")"
}

// MarshalText redacts the value so JSON/YAML encoding never emits plaintext.
func (s Secret) MarshalText() ([]byte, error) {
	return []byte(mask), nil
}

// Bundle is the validated credential pair used for login. It is resolved once
// per process and never mutated afterwards.
type Bundle struct {
	Username Secret
	Password Secret
}

// MissingCredentialError reports an absent or blank credential variable.
type MissingCredentialError struct {
	Variable string
}

func (e *MissingCredentialError) Error() string {
	return fmt.Sprintf("credential %s is not set or blank", e.Variable)
}

// Store resolves and caches the credential bundle. Construct one explicitly
// and pass it down; Get is idempotent for the lifetime of the store.
type Store struct {
	envFile string

	once   sync.Once
	bundle *Bundle
	err    error
}

// NewStore creates a store. envFile is an optional path to a local .env file;
// pass "" to read the process environment only.
func NewStore(envFile string) *Store {
	return &Store{envFile: envFile}
}

// Get resolves the bundle on first call and returns the same instance on
// every subsequent call. Resolution failures are sticky: a run must not
// proceed to browser work with incomplete credentials.
func (s *Store) Get() (*Bundle, error) {
	s.once.Do(func() {
		s.bundle, s.err = s.resolve()
	})
	return s.bundle, s.err
}

func (s *Store) resolve() (*Bundle, error) {
	if s.envFile != "" {
		// Overload=false: real environment variables win over the file.
		if err := godotenv.Load(s.envFile); err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("load env file %s: %w", s.envFile, err)
		}
	}

	username := NewSecret(os.Getenv(UsernameVar))
	if username.IsZero() {
		return nil, &MissingCredentialError{Variable: UsernameVar}
	}
	password := NewSecret(os.Getenv(PasswordVar))
	if password.IsZero() {
		return nil, &MissingCredentialError{Variable: PasswordVar}
	}

	return &Bundle{Username: username, Password: password}, nil
}
