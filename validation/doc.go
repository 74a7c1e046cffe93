// Package validation wraps go-playground/validator for gofetch.
//
// Struct tag validation is used for configuration structs; Var validates a
// single value against a tag expression and backs the URL value object.
//
//	type Config struct {
//	    BaseURL string `validate:"required,http_url"`
//	}
//	err := validation.Validate(cfg)
package validation
