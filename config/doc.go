// Package config loads command configuration from a YAML file, a .env file
// and the environment.
//
// # Usage
//
//	var cfg CallConfig
//	err := config.LoadConfig("idpcall", &cfg, config.WithConfigFile("config.yml"))
//
// Without an explicit path, config.yml is searched under ./cmd/<name>/,
// ./config/ and the working directory, and .env.<name> or .env next to it.
// Environment variables override file values using the upper-cased key path
// with dots replaced by underscores (e.g., LOGGING_LEVEL,
// ENDPOINT_CLIENT_SECURE_SOCKET_TRUST_STORE_PASSWORD).
package config
