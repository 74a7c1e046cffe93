package httpclient

import (
	"context"
	"encoding/base64"

	"github.com/kbukum/gofetch/errors"
)

// AuthType identifies the authentication method.
type AuthType int

const (
	// AuthNone disables authentication.
	AuthNone AuthType = iota
	// AuthBearer uses Bearer token authentication.
	AuthBearer
	// AuthBasic uses HTTP Basic authentication.
	AuthBasic
	// AuthAPIKey uses API key authentication (header or query parameter).
	AuthAPIKey
	// AuthCustom uses a custom request transform.
	AuthCustom
)

const defaultAPIKeyName = "X-API-Key"

// AuthConfig configures request authentication.
type AuthConfig struct {
	// Type is the authentication method.
	Type AuthType
	// Token is the bearer token (AuthBearer).
	Token string
	// Username is the basic auth username (AuthBasic).
	Username string
	// Password is the basic auth password (AuthBasic).
	Password string
	// Key is the API key value (AuthAPIKey).
	Key string
	// In is where the API key goes: "header" (default) or "query".
	In string
	// Name is the header or query parameter name. Defaults to "X-API-Key".
	Name string
	// Apply transforms the request (AuthCustom).
	Apply func(Request) (Request, error)
}

// BearerAuth creates a bearer token auth config.
func BearerAuth(token string) *AuthConfig {
	return &AuthConfig{Type: AuthBearer, Token: token}
}

// BasicAuth creates a basic auth config.
func BasicAuth(username, password string) *AuthConfig {
	return &AuthConfig{Type: AuthBasic, Username: username, Password: password}
}

// APIKeyAuth creates an API key auth config sent via the X-API-Key header.
func APIKeyAuth(key string) *AuthConfig {
	return &AuthConfig{Type: AuthAPIKey, Key: key, In: "header", Name: defaultAPIKeyName}
}

// APIKeyAuthHeader creates an API key auth config with a custom header name.
func APIKeyAuthHeader(key, headerName string) *AuthConfig {
	return &AuthConfig{Type: AuthAPIKey, Key: key, In: "header", Name: headerName}
}

// APIKeyAuthQuery creates an API key auth config sent via query parameter.
func APIKeyAuthQuery(key, paramName string) *AuthConfig {
	return &AuthConfig{Type: AuthAPIKey, Key: key, In: "query", Name: paramName}
}

// CustomAuth creates an auth config from a request transform.
func CustomAuth(fn func(Request) (Request, error)) *AuthConfig {
	return &AuthConfig{Type: AuthCustom, Apply: fn}
}

// Interceptor returns a request-only interceptor named "auth" that applies
// the configured credentials.
func (a *AuthConfig) Interceptor() Interceptor {
	return Interceptor{
		Name: "auth",
		Request: func(_ context.Context, req Request) (Request, error) {
			return a.apply(req)
		},
	}
}

func (a *AuthConfig) apply(req Request) (Request, error) {
	if a == nil {
		return req, nil
	}
	switch a.Type {
	case AuthBearer:
		return req.WithHeader("Authorization", "Bearer "+a.Token), nil
	case AuthBasic:
		cred := base64.StdEncoding.EncodeToString([]byte(a.Username + ":" + a.Password))
		return req.WithHeader("Authorization", "Basic "+cred), nil
	case AuthAPIKey:
		name := a.Name
		if name == "" {
			name = defaultAPIKeyName
		}
		if a.In != "query" {
			return req.WithHeader(name, a.Key), nil
		}
		return req.WithQuery(name, a.Key), nil
	case AuthCustom:
		if a.Apply != nil {
			return a.Apply(req)
		}
	}
	return req, nil
}

func (a *AuthConfig) validate() error {
	if a == nil {
		return nil
	}
	switch a.Type {
	case AuthBearer:
		if a.Token == "" {
			return errors.InvalidConfig("auth: bearer token is required")
		}
	case AuthBasic:
		if a.Username == "" {
			return errors.InvalidConfig("auth: basic username is required")
		}
	case AuthAPIKey:
		if a.Key == "" {
			return errors.InvalidConfig("auth: api key is required")
		}
		if a.In != "" && a.In != "header" && a.In != "query" {
			return errors.InvalidConfig("auth: api key location must be header or query")
		}
	case AuthCustom:
		if a.Apply == nil {
			return errors.InvalidConfig("auth: custom auth requires an Apply function")
		}
	}
	return nil
}
