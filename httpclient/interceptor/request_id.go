package interceptor

import (
	"context"

	"github.com/google/uuid"

	"github.com/kbukum/gofetch/httpclient"
)

// RequestID stamps requestId with a random UUID unless one is already set.
func RequestID() httpclient.Interceptor {
	return httpclient.Interceptor{
		Name: "request-id",
		Request: func(_ context.Context, req httpclient.Request) (httpclient.Request, error) {
			if id, ok := req.Metadata.RequestID(); ok && id != "" {
				return req, nil
			}
			return req.WithMetadata(httpclient.MetaRequestID, uuid.NewString()), nil
		},
	}
}
