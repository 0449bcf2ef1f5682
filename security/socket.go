package security

import (
	"github.com/kbukum/idpclient/validation"
)

// SecureSocket is the secure socket configuration of an endpoint call.
// A nil *SecureSocket means plain transport without a custom TLS context.
type SecureSocket struct {
	// Disable turns off server certificate and hostname verification.
	// Insecure: meant for test environments only. When set, every other
	// field is ignored.
	Disable bool `yaml:"disable" mapstructure:"disable"`

	// CertFile is the path to a single trusted certificate (PEM or DER).
	CertFile string `yaml:"cert_file" mapstructure:"cert_file"`

	// TrustStore is a PKCS12 trust store. Mutually exclusive with CertFile.
	TrustStore *StoreConfig `yaml:"trust_store" mapstructure:"trust_store"`

	// KeyStore is a PKCS12 key store holding the client identity.
	KeyStore *StoreConfig `yaml:"key_store" mapstructure:"key_store"`

	// ClientCert holds the client identity as certificate and key files.
	// Mutually exclusive with KeyStore.
	ClientCert *CertKeyConfig `yaml:"client_cert" mapstructure:"client_cert"`
}

// StoreConfig locates a password protected PKCS12 store.
type StoreConfig struct {
	Path     string `yaml:"path" mapstructure:"path"`
	Password string `yaml:"password" mapstructure:"password"`
}

// CertKeyConfig locates a client certificate and its private key.
type CertKeyConfig struct {
	CertFile    string `yaml:"cert_file" mapstructure:"cert_file"`
	KeyFile     string `yaml:"key_file" mapstructure:"key_file"`
	KeyPassword string `yaml:"key_password" mapstructure:"key_password"`
}

// Validate checks that the configuration names at most one trust source and
// at most one key source, each with its required paths.
func (s *SecureSocket) Validate() error {
	if s == nil || s.Disable {
		return nil
	}

	v := validation.New()
	v.Custom(s.CertFile == "" || s.TrustStore == nil,
		"secure_socket.cert_file", "must not be set together with trust_store")
	v.Custom(s.KeyStore == nil || s.ClientCert == nil,
		"secure_socket.key_store", "must not be set together with client_cert")

	if s.TrustStore != nil {
		v.Required("secure_socket.trust_store.path", s.TrustStore.Path)
	}
	if s.KeyStore != nil {
		v.Required("secure_socket.key_store.path", s.KeyStore.Path)
	}
	if s.ClientCert != nil {
		v.Required("secure_socket.client_cert.cert_file", s.ClientCert.CertFile)
		v.Required("secure_socket.client_cert.key_file", s.ClientCert.KeyFile)
	}
	return v.Err()
}

// Sources converts the configuration into its trust and key sources.
// Either result may be nil.
func (s *SecureSocket) Sources() (TrustSource, KeySource) {
	if s == nil {
		return nil, nil
	}

	var trust TrustSource
	switch {
	case s.CertFile != "":
		trust = InlineCert{Path: s.CertFile}
	case s.TrustStore != nil:
		trust = TrustStoreBundle{Path: s.TrustStore.Path, Password: s.TrustStore.Password}
	}

	var key KeySource
	switch {
	case s.ClientCert != nil:
		key = CertKeyFilePair{
			CertPath:    s.ClientCert.CertFile,
			KeyPath:     s.ClientCert.KeyFile,
			KeyPassword: s.ClientCert.KeyPassword,
		}
	case s.KeyStore != nil:
		key = KeyStoreBundle{Path: s.KeyStore.Path, Password: s.KeyStore.Password}
	}

	return trust, key
}
