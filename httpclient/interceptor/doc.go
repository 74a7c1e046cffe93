// Package interceptor provides the standard httpclient interceptors.
//
//   - Sequence stamps a per-client call number on each request.
//   - Timestamp stamps the wall-clock time on the request and the response.
//   - ResponseTime measures the time between the request and response slots.
//   - Logger writes one structured line per request and per response.
//   - RequestID stamps a UUID unless the request already carries one.
//
// Interceptors only read and write httpclient.Metadata. Their order in the
// chain matters: a Logger placed before ResponseTime will not see
// responseTimeMs on the response side.
//
//	seq := interceptor.NewSequence()
//	clock := interceptor.SystemClock()
//	client := httpclient.NewClient(base, exec,
//	    seq.Interceptor(),
//	    interceptor.Timestamp(clock),
//	    interceptor.ResponseTime(clock),
//	    interceptor.Logger(log),
//	)
package interceptor
