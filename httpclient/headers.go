package httpclient

import (
	"context"
	"net/http"
)

// Headers returns a request-only interceptor named "headers" that sets the
// given headers on every request.
func Headers(headers map[string]string) Interceptor {
	fixed := make(http.Header, len(headers))
	for k, v := range headers {
		fixed.Set(k, v)
	}
	return Interceptor{
		Name: "headers",
		Request: func(_ context.Context, req Request) (Request, error) {
			h := req.Header.Clone()
			if h == nil {
				h = make(http.Header, len(fixed))
			}
			for k, vs := range fixed {
				h[k] = append([]string(nil), vs...)
			}
			req.Header = h
			return req, nil
		},
	}
}
