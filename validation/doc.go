// Package validation provides boundary validation for request and
// credential configuration.
//
// It supports both struct tag validation (using the validator library) and
// programmatic validation with error collection. Both report failures as
// *errors.AppError with per-field details.
//
// # Struct Tag Validation
//
//	type RequestConfig struct {
//	    URL string `mapstructure:"url" validate:"required,url"`
//	}
//	err := validation.Validate(cfg)
//
// # Programmatic Validation
//
//	v := validation.New()
//	v.Custom(cfg.CertFile == "" || cfg.TrustStore == nil, "cert_file", "conflicts with trust_store")
//	err := v.Err()
package validation
