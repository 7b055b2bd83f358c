package encryption

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
)

const envelopeType = "aes-256-gcm"

var ErrDecryptionFailed = errors.New("decryption failed")

// Envelope is the stored form of an encrypted configuration blob. All binary
// fields are hex encoded.
type Envelope struct {
	CipherText string `json:"cipherText"`
	Iv         string `json:"iv"`
	Tag        string `json:"tag"`
	Type       string `json:"type"`
}

type Service interface {
	Encrypt(plainText string) (Envelope, error)
	Decrypt(envelope Envelope) (string, error)
}

// aesGcmService encrypts with a single global key. Tenants are not keyed
// individually; cloned configurations stay decryptable as-is.
type aesGcmService struct {
	key []byte
}

// NewService expects a hex encoded 32 byte key.
func NewService(hexKey string) (Service, error) {
	key, err := hex.DecodeString(hexKey)
	if err != nil {
		return nil, fmt.Errorf("encryption key is not valid hex: %w", err)
	}
	if len(key) != 32 {
		return nil, fmt.Errorf("encryption key must be 32 bytes, got %d", len(key))
	}
	return &aesGcmService{key: key}, nil
}

func (s *aesGcmService) gcm() (cipher.AEAD, error) {
	block, err := aes.NewCipher(s.key)
	if err != nil {
		return nil, err
	}
	return cipher.NewGCM(block)
}

func (s *aesGcmService) Encrypt(plainText string) (Envelope, error) {
	gcm, err := s.gcm()
	if err != nil {
		return Envelope{}, err
	}

	iv := make([]byte, gcm.NonceSize())
	if _, err := rand.Read(iv); err != nil {
		return Envelope{}, err
	}

	sealed := gcm.Seal(nil, iv, []byte(plainText), nil)
	tagOffset := len(sealed) - gcm.Overhead()

	return Envelope{
		CipherText: hex.EncodeToString(sealed[:tagOffset]),
		Iv:         hex.EncodeToString(iv),
		Tag:        hex.EncodeToString(sealed[tagOffset:]),
		Type:       envelopeType,
	}, nil
}

func (s *aesGcmService) Decrypt(envelope Envelope) (string, error) {
	if envelope.Type != envelopeType {
		return "", ErrDecryptionFailed
	}

	cipherText, err := hex.DecodeString(envelope.CipherText)
	if err != nil {
		return "", ErrDecryptionFailed
	}
	iv, err := hex.DecodeString(envelope.Iv)
	if err != nil {
		return "", ErrDecryptionFailed
	}
	tag, err := hex.DecodeString(envelope.Tag)
	if err != nil {
		return "", ErrDecryptionFailed
	}

	gcm, err := s.gcm()
	if err != nil {
		return "", err
	}
	if len(iv) != gcm.NonceSize() {
		return "", ErrDecryptionFailed
	}

	plainText, err := gcm.Open(nil, iv, append(cipherText, tag...), nil)
	if err != nil {
		return "", ErrDecryptionFailed
	}
	return string(plainText), nil
}
