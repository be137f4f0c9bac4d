// Package auth implements the credential store: one-way salted password
// digests and verification. Digests are the only form in which secrets are
// persisted or compared.
package auth

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidDigest reports a digest that bcrypt cannot parse, e.g. one read
// back from corrupted storage. It is distinct from a wrong-password result.
var ErrInvalidDigest = errors.New("invalid password digest format")

// HashSecret produces a salted bcrypt digest of secret. A fresh salt is
// generated per call, so two digests of the same secret differ; never
// compare digests for equality directly.
func HashSecret(secret string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(secret), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

// VerifySecret reports whether secret is the input that produced digest.
// A malformed digest fails with ErrInvalidDigest rather than a silent false.
func VerifySecret(secret, digest string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(digest), []byte(secret))
	if err == nil {
		return true, nil
	}
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return false, nil
	}
	return false, ErrInvalidDigest
}
