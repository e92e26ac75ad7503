package utils

import (
	"crypto/rand"
	"encoding/base64"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

const portalAlphabet = "0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

func GenerateRandomKey(length int) (string, error) {
	b := make([]byte, length)
	// err == nil only if len(b) bytes were read.
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.URLEncoding.EncodeToString(b), nil
}

// GeneratePortalToken returns the opaque path segment that addresses a
// project's client portal.
func GeneratePortalToken() (string, error) {
	return gonanoid.Generate(portalAlphabet, 32)
}
