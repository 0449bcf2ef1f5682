package main

import (
	"fmt"
	"time"

	"github.com/kbukum/idpclient/config"
	"github.com/kbukum/idpclient/oauth2"
	"github.com/kbukum/idpclient/observability"
	"github.com/kbukum/idpclient/security"
)

const (
	serviceName    = "idpcall"
	envPrefix      = "IDPCALL"
	defaultTimeout = 30 * time.Second
)

// HeaderConfig is one request header. Headers are configured as a list so
// that name case survives the config loader.
type HeaderConfig struct {
	Name  string `yaml:"name" mapstructure:"name"`
	Value string `yaml:"value" mapstructure:"value"`
}

// ClientConfig mirrors oauth2.ClientConfig with list-valued headers.
type ClientConfig struct {
	CustomPayload string                 `yaml:"custom_payload" mapstructure:"custom_payload"`
	CustomHeaders []HeaderConfig         `yaml:"custom_headers" mapstructure:"custom_headers"`
	HTTPVersion   string                 `yaml:"http_version" mapstructure:"http_version"`
	SecureSocket  *security.SecureSocket `yaml:"secure_socket" mapstructure:"secure_socket"`
}

// EndpointConfig describes the endpoint call.
type EndpointConfig struct {
	URL     string         `yaml:"url" mapstructure:"url"`
	Payload string         `yaml:"payload" mapstructure:"payload"`
	Headers []HeaderConfig `yaml:"headers" mapstructure:"headers"`
	Client  ClientConfig   `yaml:"client" mapstructure:"client"`
}

// CallConfig is the configuration of the call command.
type CallConfig struct {
	config.ServiceConfig `yaml:",inline" mapstructure:",squash"`

	// Timeout bounds the whole call. Zero disables the deadline.
	Timeout   time.Duration        `yaml:"timeout" mapstructure:"timeout"`
	Telemetry observability.Config `yaml:"telemetry" mapstructure:"telemetry"`
	Endpoint  EndpointConfig       `yaml:"endpoint" mapstructure:"endpoint"`
}

// ApplyDefaults fills in unset fields.
func (c *CallConfig) ApplyDefaults() {
	if c.Name == "" {
		c.Name = serviceName
	}
	c.ServiceConfig.ApplyDefaults()
	c.Telemetry.ApplyDefaults()
	if c.Timeout == 0 {
		c.Timeout = defaultTimeout
	}
}

// Validate checks the command settings. The endpoint itself is validated by
// the oauth2 client so that its failures are reported as call errors.
func (c *CallConfig) Validate() error {
	if err := c.ServiceConfig.Validate(); err != nil {
		return err
	}
	if err := c.Telemetry.Validate(); err != nil {
		return err
	}
	if c.Timeout < 0 {
		return fmt.Errorf("config.timeout must not be negative (got: %s)", c.Timeout)
	}
	return nil
}

// Request converts the endpoint settings into an oauth2 request.
func (c *CallConfig) Request() oauth2.Request {
	ep := c.Endpoint
	return oauth2.Request{
		URL:     ep.URL,
		Payload: ep.Payload,
		Headers: headerMap(ep.Headers),
		Config: &oauth2.ClientConfig{
			CustomPayload: ep.Client.CustomPayload,
			CustomHeaders: headerMap(ep.Client.CustomHeaders),
			HTTPVersion:   ep.Client.HTTPVersion,
			SecureSocket:  ep.Client.SecureSocket,
		},
	}
}

// loadCallConfig reads the config file, the .env file and IDPCALL_*
// environment variables.
func loadCallConfig(configFile, envFile string) (*CallConfig, error) {
	cfg := &CallConfig{}
	err := config.LoadConfig(serviceName, cfg,
		config.WithConfigFile(configFile),
		config.WithEnvFile(envFile),
		config.WithEnvPrefix(envPrefix),
	)
	if err != nil {
		return nil, err
	}
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// headerMap turns a header list into a map. A later entry replaces an
// earlier one of the same name. Entries without a name are skipped.
func headerMap(headers []HeaderConfig) map[string]string {
	if len(headers) == 0 {
		return nil
	}
	m := make(map[string]string, len(headers))
	for _, h := range headers {
		if h.Name == "" {
			continue
		}
		m[h.Name] = h.Value
	}
	return m
}
