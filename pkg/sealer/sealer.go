// Package sealer creates the short opaque confirmation codes handed to
// customers after a booking lands. The code encrypts the booking ID and date
// so staff can look a booking up from the code alone, while customers cannot
// forge or enumerate codes.
package sealer

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"io"
	"strings"
)

type Sealer struct {
	key []byte
}

// New derives the sealing key from the shared secret; the same secret the
// server signs session tokens with.
func New(secret string) *Sealer {
	sum := sha256.Sum256([]byte(secret))
	return &Sealer{key: sum[:]}
}

// Seal produces an opaque confirmation code for a booking.
func (s *Sealer) Seal(bookingID, date string) (string, error) {
	plaintext := []byte(bookingID + ":" + date)

	block, err := aes.NewCipher(s.key)
	if err != nil {
		return "", err
	}

	aesgcm, err := cipher.NewGCM(block)
	if err != nil {
		return "", err
	}

	nonce := make([]byte, aesgcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", err
	}

	ct := aesgcm.Seal(nonce, nonce, plaintext, nil)
	return base64.RawURLEncoding.EncodeToString(ct), nil
}

// Open recovers the booking ID and date from a confirmation code.
func (s *Sealer) Open(code string) (bookingID, date string, err error) {
	data, err := base64.RawURLEncoding.DecodeString(code)
	if err != nil {
		return "", "", err
	}

	block, err := aes.NewCipher(s.key)
	if err != nil {
		return "", "", err
	}

	aesgcm, err := cipher.NewGCM(block)
	if err != nil {
		return "", "", err
	}

	nonceSize := aesgcm.NonceSize()
	if len(data) < nonceSize {
		return "", "", fmt.Errorf("confirmation code too short")
	}
	nonce := data[:nonceSize]
	ciphertext := data[nonceSize:]

	pt, err := aesgcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return "", "", err
	}

	parts := strings.SplitN(string(pt), ":", 2)
	if len(parts) != 2 {
		return "", "", fmt.Errorf("invalid confirmation code format")
	}

	return parts[0], parts[1], nil
}
