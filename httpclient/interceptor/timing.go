package interceptor

import (
	"context"
	"math"

	"github.com/kbukum/gofetch/httpclient"
)

// Timestamp stamps timestamp on the request and, from a separate read, on
// the response.
func Timestamp(clock Clock) httpclient.Interceptor {
	clock = orSystem(clock)
	return httpclient.Interceptor{
		Name: "timestamp",
		Request: func(_ context.Context, req httpclient.Request) (httpclient.Request, error) {
			return req.WithMetadata(httpclient.MetaTimestamp, clock.Now()), nil
		},
		Response: func(_ context.Context, resp httpclient.Response, _ httpclient.Request) (httpclient.Response, error) {
			return resp.WithMetadata(httpclient.MetaTimestamp, clock.Now()), nil
		},
	}
}

// ResponseTime stamps a start mark on the request and responseTimeMs on the
// response, rounded to two decimals. A missing start mark counts as 0.
func ResponseTime(clock Clock) httpclient.Interceptor {
	clock = orSystem(clock)
	return httpclient.Interceptor{
		Name: "response-time",
		Request: func(_ context.Context, req httpclient.Request) (httpclient.Request, error) {
			return req.WithMetadata(httpclient.MetaResponseTimeStart, clock.Mark()), nil
		},
		Response: func(_ context.Context, resp httpclient.Response, req httpclient.Request) (httpclient.Response, error) {
			start, _ := req.Metadata.Float64(httpclient.MetaResponseTimeStart)
			return resp.WithMetadata(httpclient.MetaResponseTimeMs, round2(clock.Mark()-start)), nil
		},
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
