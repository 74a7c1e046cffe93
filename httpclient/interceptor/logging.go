package interceptor

import (
	"context"
	"time"

	"github.com/kbukum/gofetch/httpclient"
	"github.com/kbukum/gofetch/logger"
)

// Logger writes one info line when a request leaves the chain and one when
// its response comes back. Only metadata fields that are present are
// logged. It never fails the call.
func Logger(log *logger.Logger) httpclient.Interceptor {
	if log == nil {
		log = logger.Nop()
	}
	log = log.WithComponent("httpclient")
	return httpclient.Interceptor{
		Name: "logger",
		Request: func(ctx context.Context, req httpclient.Request) (httpclient.Request, error) {
			fields := logger.Fields(
				logger.FieldMethod, methodOf(req),
				logger.FieldURL, req.URL,
			)
			addMetadata(fields, req.Metadata)
			log.WithContext(ctx).Info("http request", fields)
			return req, nil
		},
		Response: func(ctx context.Context, resp httpclient.Response, req httpclient.Request) (httpclient.Response, error) {
			url := resp.URL
			if url == "" {
				url = req.URL
			}
			fields := logger.Fields(
				logger.FieldMethod, methodOf(req),
				logger.FieldURL, url,
				logger.FieldStatus, resp.Status,
			)
			addMetadata(fields, resp.Metadata)
			log.WithContext(ctx).Info("http response", fields)
			return resp, nil
		},
	}
}

func addMetadata(fields map[string]interface{}, md httpclient.Metadata) {
	if n, ok := md.SequenceNumber(); ok {
		fields[logger.FieldSequenceNumber] = n
	}
	if ts, ok := md.Timestamp(); ok {
		fields[logger.FieldTimestamp] = ts.UTC().Format(time.RFC3339Nano)
	}
	if ms, ok := md.ResponseTimeMs(); ok {
		fields[logger.FieldResponseTimeMs] = ms
	}
	if id, ok := md.RequestID(); ok {
		fields[logger.FieldRequestID] = id
	}
}

func methodOf(req httpclient.Request) string {
	if req.Method == "" {
		return httpclient.MethodGet
	}
	return req.Method
}
