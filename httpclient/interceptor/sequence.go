package interceptor

import (
	"context"
	"sync/atomic"

	"github.com/kbukum/gofetch/httpclient"
)

// Sequence numbers requests in the order their request slot runs. One
// Sequence should be shared by every call made through a client; the numbers
// say nothing about completion order.
type Sequence struct {
	n atomic.Int64
}

// NewSequence creates a counter starting at 0. The first request gets 1.
func NewSequence() *Sequence {
	return &Sequence{}
}

// Current returns the last number handed out.
func (s *Sequence) Current() int64 {
	return s.n.Load()
}

// Interceptor returns a request-only interceptor named "sequence" that stamps
// sequenceNumber, overwriting any previous value.
func (s *Sequence) Interceptor() httpclient.Interceptor {
	return httpclient.Interceptor{
		Name: "sequence",
		Request: func(_ context.Context, req httpclient.Request) (httpclient.Request, error) {
			return req.WithMetadata(httpclient.MetaSequenceNumber, s.n.Add(1)), nil
		},
	}
}
