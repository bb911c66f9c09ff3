// Package crypt provides the RSA encryption layer for secret config
// sources. The private key lives in the OS credential store (keyring)
// under a configurable entry name and is generated on first use; config
// files on disk then hold only ciphertext.
package crypt

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/base64"
	"errors"
	"fmt"
	"os"

	"github.com/zalando/go-keyring"
)

const keyBits = 2048

// PKCS#1 v1.5 padding overhead per encrypted block.
const pkcs1Overhead = 11

// Encrypter encrypts and decrypts config payloads with a per-entry RSA
// key. Payloads larger than one RSA block are processed in fixed-size
// chunks: keyBytes-11 on encrypt, keyBytes on decrypt.
type Encrypter struct {
	priv *rsa.PrivateKey
}

// NewEncrypter loads the private key stored in the OS keyring under entry,
// generating and storing a fresh 2048-bit key when none exists. The key is
// serialized as base64 PKCS#1 DER in the keyring password slot.
func NewEncrypter(entry string) (*Encrypter, error) {
	user := os.Getenv("USER")
	if user == "" {
		user = "unknown"
	}
	sec, err := keyring.Get(entry, user)
	switch {
	case err == nil:
		der, err := base64.StdEncoding.DecodeString(sec)
		if err != nil {
			return nil, fmt.Errorf("crypt: stored key is not base64: %w", err)
		}
		priv, err := x509.ParsePKCS1PrivateKey(der)
		if err != nil {
			return nil, fmt.Errorf("crypt: stored key does not parse: %w", err)
		}
		return &Encrypter{priv: priv}, nil
	case errors.Is(err, keyring.ErrNotFound):
		priv, err := rsa.GenerateKey(rand.Reader, keyBits)
		if err != nil {
			return nil, fmt.Errorf("crypt: generate key: %w", err)
		}
		der := x509.MarshalPKCS1PrivateKey(priv)
		if err := keyring.Set(entry, user, base64.StdEncoding.EncodeToString(der)); err != nil {
			return nil, fmt.Errorf("crypt: store key: %w", err)
		}
		return &Encrypter{priv: priv}, nil
	default:
		return nil, fmt.Errorf("crypt: keyring: %w", err)
	}
}

// NewEncrypterFromKey wraps an existing private key, bypassing the
// keyring. Intended for tests and for callers with their own key storage.
func NewEncrypterFromKey(priv *rsa.PrivateKey) *Encrypter {
	return &Encrypter{priv: priv}
}

// Encrypt seals plain into a sequence of PKCS#1 v1.5 blocks.
func (e *Encrypter) Encrypt(plain []byte) ([]byte, error) {
	pub := &e.priv.PublicKey
	step := pub.Size() - pkcs1Overhead
	out := make([]byte, 0, ((len(plain)+step-1)/step)*pub.Size())
	for len(plain) > 0 {
		n := min(step, len(plain))
		block, err := rsa.EncryptPKCS1v15(rand.Reader, pub, plain[:n])
		if err != nil {
			return nil, fmt.Errorf("crypt: encrypt: %w", err)
		}
		out = append(out, block...)
		plain = plain[n:]
	}
	return out, nil
}

// Decrypt opens a sequence of PKCS#1 v1.5 blocks produced by Encrypt.
// Failure usually means the keyring key was modified or recreated since
// the payload was written.
func (e *Encrypter) Decrypt(encrypted []byte) ([]byte, error) {
	step := e.priv.Size()
	if len(encrypted)%step != 0 {
		return nil, fmt.Errorf("crypt: ciphertext length %d is not a multiple of the key size %d", len(encrypted), step)
	}
	var out []byte
	for len(encrypted) > 0 {
		block, err := rsa.DecryptPKCS1v15(nil, e.priv, encrypted[:step])
		if err != nil {
			return nil, fmt.Errorf("crypt: decrypt: %w", err)
		}
		out = append(out, block...)
		encrypted = encrypted[step:]
	}
	return out, nil
}
