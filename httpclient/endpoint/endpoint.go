// Package endpoint provides the validated URL and Path value objects used to
// address requests. Malformed input is rejected at construction time so call
// sites never handle it.
package endpoint

import (
	"net/url"
	"strings"

	"github.com/kbukum/gofetch/errors"
	"github.com/kbukum/gofetch/validation"
)

// URL is an absolute http or https base URL. The zero value is not valid;
// use NewURL.
type URL struct {
	raw string
}

// NewURL validates raw and returns its canonical form. Scheme and host are
// lower-cased and a trailing slash is dropped so that joining a Path never
// produces "//". A query is rejected, since Join appends the path after it;
// a fragment is dropped.
func NewURL(raw string) (URL, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return URL{}, errors.InvalidURL(raw, "must not be empty")
	}
	if errs := validation.Var(trimmed, "http_url"); errs != nil {
		return URL{}, errors.InvalidURL(raw, errs[0].Message)
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return URL{}, errors.InvalidURL(raw, err.Error())
	}
	u.Scheme = strings.ToLower(u.Scheme)
	if u.Scheme != "http" && u.Scheme != "https" {
		return URL{}, errors.InvalidURL(raw, "scheme must be http or https")
	}
	if u.Host == "" {
		return URL{}, errors.InvalidURL(raw, "host is required")
	}
	if u.RawQuery != "" || u.ForceQuery {
		return URL{}, errors.InvalidURL(raw, "must not contain a query")
	}
	u.Host = strings.ToLower(u.Host)
	u.Path = strings.TrimRight(u.Path, "/")
	u.RawPath = ""
	u.Fragment = ""
	return URL{raw: strings.TrimRight(u.String(), "/")}, nil
}

// MustURL is like NewURL but panics on invalid input. Intended for
// package-level constants.
func MustURL(raw string) URL {
	u, err := NewURL(raw)
	if err != nil {
		panic(err)
	}
	return u
}

// String returns the canonical form.
func (u URL) String() string { return u.raw }

// Equal reports whether both URLs have the same canonical form.
func (u URL) Equal(other URL) bool { return u.raw == other.raw }

// IsZero reports whether u was never constructed.
func (u URL) IsZero() bool { return u.raw == "" }

// Join appends p to the base URL by concatenation.
func (u URL) Join(p Path) string { return u.raw + p.raw }

// Path is an absolute request path: it begins with "/", has no empty
// segments, and has no trailing slash unless it is exactly "/".
type Path struct {
	raw string
}

// NewPath validates raw as a request path.
func NewPath(raw string) (Path, error) {
	switch {
	case raw == "":
		return Path{}, errors.InvalidPath(raw, "must not be empty")
	case !strings.HasPrefix(raw, "/"):
		return Path{}, errors.InvalidPath(raw, "must begin with '/'")
	case raw == "/":
		return Path{raw: raw}, nil
	case strings.Contains(raw, "//"):
		return Path{}, errors.InvalidPath(raw, "must not contain empty segments")
	case strings.HasSuffix(raw, "/"):
		return Path{}, errors.InvalidPath(raw, "must not end with '/'")
	case strings.ContainsAny(raw, "?#"):
		return Path{}, errors.InvalidPath(raw, "must not contain a query or fragment")
	case strings.ContainsAny(raw, " \t\r\n"):
		return Path{}, errors.InvalidPath(raw, "must not contain whitespace")
	}
	return Path{raw: raw}, nil
}

// MustPath is like NewPath but panics on invalid input.
func MustPath(raw string) Path {
	p, err := NewPath(raw)
	if err != nil {
		panic(err)
	}
	return p
}

// String returns the path.
func (p Path) String() string { return p.raw }

// IsZero reports whether p was never constructed.
func (p Path) IsZero() bool { return p.raw == "" }
