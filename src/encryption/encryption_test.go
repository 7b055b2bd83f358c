package encryption

import (
	"encoding/hex"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

const testKeyHex = "000102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f"

func newTestService(t *testing.T) Service {
	t.Helper()
	svc, err := NewService(testKeyHex)
	assert.NoError(t, err)
	return svc
}

func TestNewServiceRejectsBadKeys(t *testing.T) {
	_, err := NewService("not-hex")
	assert.Error(t, err)

	_, err = NewService("abcd")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "32 bytes")
}

func TestEncryptDecryptRoundtrip(t *testing.T) {
	svc := newTestService(t)

	plainText := `{"baseUrl":"https://resolver.example.com","apiKey":"secret"}`
	envelope, err := svc.Encrypt(plainText)
	assert.NoError(t, err)
	assert.Equal(t, "aes-256-gcm", envelope.Type)
	assert.NotEmpty(t, envelope.CipherText)
	assert.NotEmpty(t, envelope.Iv)
	assert.NotEmpty(t, envelope.Tag)

	decrypted, err := svc.Decrypt(envelope)
	assert.NoError(t, err)
	assert.Equal(t, plainText, decrypted)
}

func TestEncryptUsesFreshIv(t *testing.T) {
	svc := newTestService(t)

	first, err := svc.Encrypt("same input")
	assert.NoError(t, err)
	second, err := svc.Encrypt("same input")
	assert.NoError(t, err)

	assert.NotEqual(t, first.Iv, second.Iv)
	assert.NotEqual(t, first.CipherText, second.CipherText)
}

func TestDecryptRejectsTamperedCipherText(t *testing.T) {
	svc := newTestService(t)

	envelope, err := svc.Encrypt("sensitive configuration")
	assert.NoError(t, err)

	raw, err := hex.DecodeString(envelope.CipherText)
	assert.NoError(t, err)
	raw[0] ^= 0xff
	envelope.CipherText = hex.EncodeToString(raw)

	_, err = svc.Decrypt(envelope)
	assert.ErrorIs(t, err, ErrDecryptionFailed)
}

func TestDecryptRejectsTamperedTag(t *testing.T) {
	svc := newTestService(t)

	envelope, err := svc.Encrypt("sensitive configuration")
	assert.NoError(t, err)

	raw, err := hex.DecodeString(envelope.Tag)
	assert.NoError(t, err)
	raw[len(raw)-1] ^= 0x01
	envelope.Tag = hex.EncodeToString(raw)

	_, err = svc.Decrypt(envelope)
	assert.ErrorIs(t, err, ErrDecryptionFailed)
}

func TestDecryptRejectsWrongKey(t *testing.T) {
	svc := newTestService(t)
	other, err := NewService(strings.Repeat("ff", 32))
	assert.NoError(t, err)

	envelope, err := svc.Encrypt("sensitive configuration")
	assert.NoError(t, err)

	_, err = other.Decrypt(envelope)
	assert.ErrorIs(t, err, ErrDecryptionFailed)
}

func TestDecryptRejectsUnknownEnvelopeType(t *testing.T) {
	svc := newTestService(t)

	envelope, err := svc.Encrypt("sensitive configuration")
	assert.NoError(t, err)
	envelope.Type = "aes-256-cbc"

	_, err = svc.Decrypt(envelope)
	assert.ErrorIs(t, err, ErrDecryptionFailed)
}
