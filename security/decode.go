package security

import (
	"crypto"
	"crypto/ed25519"
	"crypto/x509"
	"encoding/pem"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/youmark/pkcs8"
	"golang.org/x/crypto/ssh"
)

// Decoder turns certificate and private key files into key material.
type Decoder interface {
	// DecodeCertificate reads the first certificate in a PEM or DER file.
	DecodeCertificate(path string) (*x509.Certificate, error)
	// DecodePrivateKey reads a private key, decrypting it with password when
	// the key is encrypted.
	DecodePrivateKey(path, password string) (crypto.PrivateKey, error)
}

// PEMDecoder is the file based Decoder.
//
// Certificates may be PEM "CERTIFICATE" blocks or raw DER. Private keys may
// be PKCS#1, SEC 1, PKCS#8, OpenSSH, legacy encrypted PEM (RFC 1423) or
// encrypted PKCS#8.
type PEMDecoder struct{}

var _ Decoder = PEMDecoder{}

// DecodeCertificate implements Decoder.
func (PEMDecoder) DecodeCertificate(path string) (*x509.Certificate, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	rest := data
	sawPEM := false
	for {
		var block *pem.Block
		block, rest = pem.Decode(rest)
		if block == nil {
			break
		}
		sawPEM = true
		if block.Type != "CERTIFICATE" {
			continue
		}
		cert, err := x509.ParseCertificate(block.Bytes)
		if err != nil {
			return nil, fmt.Errorf("parse certificate %s: %w", path, err)
		}
		return cert, nil
	}

	if sawPEM {
		return nil, fmt.Errorf("no certificate found in %s", path)
	}
	cert, err := x509.ParseCertificate(data)
	if err != nil {
		return nil, fmt.Errorf("parse certificate %s: %w", path, err)
	}
	return cert, nil
}

// DecodePrivateKey implements Decoder.
func (PEMDecoder) DecodePrivateKey(path, password string) (crypto.PrivateKey, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	block := findKeyBlock(data)
	if block == nil {
		return nil, fmt.Errorf("no private key found in %s", path)
	}

	if block.Type == "ENCRYPTED PRIVATE KEY" {
		if password == "" {
			return nil, fmt.Errorf("private key %s is encrypted and no password was given", path)
		}
		key, err := pkcs8.ParsePKCS8PrivateKey(block.Bytes, []byte(password))
		if err != nil {
			return nil, fmt.Errorf("decrypt private key %s: %w", path, err)
		}
		return normalizeKey(key), nil
	}

	encoded := pem.EncodeToMemory(block)
	key, err := ssh.ParseRawPrivateKey(encoded)
	var missing *ssh.PassphraseMissingError
	if errors.As(err, &missing) {
		if password == "" {
			return nil, fmt.Errorf("private key %s is encrypted and no password was given", path)
		}
		key, err = ssh.ParseRawPrivateKeyWithPassphrase(encoded, []byte(password))
	}
	if err != nil {
		return nil, fmt.Errorf("parse private key %s: %w", path, err)
	}
	return normalizeKey(key), nil
}

// findKeyBlock returns the first PEM block holding a private key.
func findKeyBlock(data []byte) *pem.Block {
	rest := data
	for {
		var block *pem.Block
		block, rest = pem.Decode(rest)
		if block == nil {
			return nil
		}
		if strings.HasSuffix(block.Type, "PRIVATE KEY") {
			return block
		}
	}
}

// normalizeKey turns OpenSSH ed25519 pointers into the value form crypto/tls expects.
func normalizeKey(key any) crypto.PrivateKey {
	if k, ok := key.(*ed25519.PrivateKey); ok {
		return *k
	}
	return key
}
