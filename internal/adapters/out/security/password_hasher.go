package security

import (
	"github.com/matthewhartstonge/argon2"
)

// Argon2Hasher stores passwords as self-describing argon2id encoded hashes.
type Argon2Hasher struct {
	config argon2.Config
}

// NewArgon2Hasher uses the library defaults.
func NewArgon2Hasher() *Argon2Hasher {
	return NewArgon2HasherWithConfig(argon2.DefaultConfig())
}

// NewArgon2HasherWithConfig allows cheaper parameters, mostly for tests. Hashes keep their
// parameters, so changing the config never invalidates stored passwords.
func NewArgon2HasherWithConfig(config argon2.Config) *Argon2Hasher {
	return &Argon2Hasher{config: config}
}

func (h *Argon2Hasher) Hash(password string) (string, error) {
	encoded, err := h.config.HashEncoded([]byte(password))
	if err != nil {
		return "", err
	}
	return string(encoded), nil
}

func (h *Argon2Hasher) Verify(password, encoded string) (bool, error) {
	return argon2.VerifyEncoded([]byte(password), []byte(encoded))
}
