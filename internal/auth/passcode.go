package auth

import (
	"crypto/subtle"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

var ErrEmptyPasscode = errors.New("empty passcode")

func HashPasscode(passcode string) (string, error) {
	if passcode == "" {
		return "", ErrEmptyPasscode
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(passcode), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

func ComparePasscode(hash, passcode string) error {
	if hash == "" || passcode == "" {
		return errors.New("missing hash or passcode")
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(passcode))
}

// IsBcryptHash reports whether a configured secret is a bcrypt hash rather
// than the passcode itself.
func IsBcryptHash(secret string) bool {
	if len(secret) != 60 {
		return false
	}
	for _, prefix := range []string{"$2a$", "$2b$", "$2y$"} {
		if strings.HasPrefix(secret, prefix) {
			return true
		}
	}
	return false
}

// Verifier checks a submitted passcode against the one configured secret.
type Verifier struct {
	secret string
	hashed bool
}

func NewVerifier(secret string) *Verifier {
	return &Verifier{secret: secret, hashed: IsBcryptHash(secret)}
}

func (v *Verifier) Configured() bool {
	return v != nil && v.secret != ""
}

func (v *Verifier) Verify(passcode string) bool {
	if !v.Configured() || passcode == "" {
		return false
	}
	if v.hashed {
		return ComparePasscode(v.secret, passcode) == nil
	}
	return subtle.ConstantTimeCompare([]byte(v.secret), []byte(passcode)) == 1
}
