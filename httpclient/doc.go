// Package httpclient issues GET requests through a composable interceptor
// chain and decodes response bodies by content type.
//
// A call flows through three layers:
//
//   - Client builds the request from a validated base URL and path.
//   - Chain runs each interceptor's request slot, then the executor, then each
//     response slot. Both passes run in declaration order.
//   - HTTPExecutor performs one HTTP GET, resolves a parser from the
//     Content-Type header and classifies failures into the errors package
//     taxonomy (AbortError, NetworkError, PayloadError).
//
// # Basic Usage
//
//	base := endpoint.MustURL("https://api.example.com")
//	seq := interceptor.NewSequence()
//	client := httpclient.NewClient(base,
//	    httpclient.NewExecutor(http.DefaultClient, httpclient.NewResolver(parser.Default()...)),
//	    seq.Interceptor(),
//	    interceptor.ResponseTime(interceptor.SystemClock()),
//	)
//	resp, err := client.Get(ctx, endpoint.MustPath("/items/1"))
//
// # From Configuration
//
//	client, err := httpclient.New(httpclient.Config{
//	    BaseURL: "https://api.example.com",
//	    Timeout: 10 * time.Second,
//	    Auth:    httpclient.BearerAuth("token"),
//	}, httpclient.WithExecutorMiddleware(httpclient.WithTracing("gofetch")))
package httpclient
