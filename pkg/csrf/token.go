package csrf

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"io"
)

const (
	// TokenBytes is the amount of randomness in a token.
	TokenBytes = 32
	// TokenLength is the length of an encoded token.
	TokenLength = TokenBytes * 2
)

// RandomSource supplies token bytes.
type RandomSource = io.Reader

// Generator produces tokens from a random source.
type Generator struct {
	src RandomSource
}

// NewGenerator returns a Generator reading from src. A nil src means
// crypto/rand.Reader. Use a deterministic reader in tests only.
func NewGenerator(src RandomSource) *Generator {
	if src == nil {
		src = rand.Reader
	}
	return &Generator{src: src}
}

// Generate reads TokenBytes bytes and returns them hex-encoded. A short read
// is an error.
func (g *Generator) Generate() (string, error) {
	b := make([]byte, TokenBytes)
	if _, err := io.ReadFull(g.src, b); err != nil {
		return "", errors.Join(ErrRandomSource, err)
	}
	return hex.EncodeToString(b), nil
}

var defaultGenerator = NewGenerator(nil)

// GenerateToken returns a new token from crypto/rand.
func GenerateToken() (string, error) {
	return defaultGenerator.Generate()
}

// ValidateToken reports whether candidate equals stored. Empty values and
// values of different length never match. Equal-length values are compared
// in constant time.
func ValidateToken(candidate, stored string) bool {
	if candidate == "" || stored == "" {
		return false
	}
	if len(candidate) != len(stored) {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(candidate), []byte(stored)) == 1
}

func wellFormed(token string) bool {
	if len(token) != TokenLength {
		return false
	}
	_, err := hex.DecodeString(token)
	return err == nil
}
