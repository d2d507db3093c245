package auth

import (
	"crypto/subtle"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// PasswordEncoder turns raw passwords into their stored form and checks
// candidates against it.
type PasswordEncoder interface {
	Encode(raw string) (string, error)
	Matches(raw, encoded string) bool
}

// NewPasswordEncoder returns the encoder registered under name.
func NewPasswordEncoder(name string) (PasswordEncoder, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "plain":
		return PlainEncoder{}, nil
	case "bcrypt":
		return BcryptEncoder{Cost: bcrypt.DefaultCost}, nil
	default:
		return nil, fmt.Errorf("unknown password encoder %q", name)
	}
}

// PlainEncoder stores passwords verbatim.
type PlainEncoder struct{}

func (PlainEncoder) Encode(raw string) (string, error) {
	return raw, nil
}

func (PlainEncoder) Matches(raw, encoded string) bool {
	return subtle.ConstantTimeCompare([]byte(raw), []byte(encoded)) == 1
}

type BcryptEncoder struct {
	Cost int
}

func (e BcryptEncoder) Encode(raw string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(raw), e.Cost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

func (BcryptEncoder) Matches(raw, encoded string) bool {
	return bcrypt.CompareHashAndPassword([]byte(encoded), []byte(raw)) == nil
}
