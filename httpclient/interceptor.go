package httpclient

import "context"

// RequestFunc transforms a request before it is executed.
type RequestFunc func(ctx context.Context, req Request) (Request, error)

// ResponseFunc transforms a response after execution. req is the request as
// it left the last request slot of the chain.
type ResponseFunc func(ctx context.Context, resp Response, req Request) (Response, error)

// Interceptor observes or transforms requests and responses. Either slot may
// be nil.
type Interceptor struct {
	// Name identifies the interceptor in logs.
	Name string
	// Request runs before execution.
	Request RequestFunc
	// Response runs after a successful execution.
	Response ResponseFunc
}

// Chain is an ordered list of interceptors.
//
// For a chain [A, B] the request slots run A then B, the executor runs, and
// the response slots run A then B again. Response slots are not reversed.
// Any error returned by a slot or by the executor ends the call and is
// returned unchanged.
type Chain struct {
	interceptors []Interceptor
}

// NewChain creates a chain. The slice is copied.
func NewChain(interceptors ...Interceptor) *Chain {
	list := make([]Interceptor, len(interceptors))
	copy(list, interceptors)
	return &Chain{interceptors: list}
}

// Len returns the number of interceptors.
func (c *Chain) Len() int { return len(c.interceptors) }

// Interceptors returns a copy of the interceptors in declaration order.
func (c *Chain) Interceptors() []Interceptor {
	out := make([]Interceptor, len(c.interceptors))
	copy(out, c.interceptors)
	return out
}

// Append returns a new chain with more interceptors after the existing ones.
func (c *Chain) Append(more ...Interceptor) *Chain {
	list := make([]Interceptor, 0, len(c.interceptors)+len(more))
	list = append(list, c.interceptors...)
	list = append(list, more...)
	return &Chain{interceptors: list}
}

// Then wraps next with the chain.
//
// The response handed to the first response slot carries the final
// request's metadata merged under whatever the executor set, so fields
// stamped on the way out are readable on the way back.
func (c *Chain) Then(next Executor) Executor {
	interceptors := c.interceptors
	return ExecutorFunc(func(ctx context.Context, req Request) (Response, error) {
		var err error
		for _, ic := range interceptors {
			if ic.Request == nil {
				continue
			}
			if req, err = ic.Request(ctx, req); err != nil {
				return Response{}, err
			}
		}

		resp, err := next.Execute(ctx, req)
		if err != nil {
			return Response{}, err
		}
		resp.Metadata = req.Metadata.Merge(resp.Metadata)

		for _, ic := range interceptors {
			if ic.Response == nil {
				continue
			}
			if resp, err = ic.Response(ctx, resp, req); err != nil {
				return Response{}, err
			}
		}
		return resp, nil
	})
}
