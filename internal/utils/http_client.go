package utils

import (
	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly.
//
// Every request sent through it carries an X-Trace-ID header: the trace id
// found in the request context, or a fresh one.
type HTTPClient struct {
	*resty.Client

	ids *UUIDGenerator
}

// NewHTTPClient creates an independent HTTPClient with its own connection
// pool and configuration.
func NewHTTPClient() *HTTPClient {
	c := &HTTPClient{Client: resty.New(), ids: NewUUIDGenerator()}
	c.OnBeforeRequest(c.setTraceID)
	return c
}

func (c *HTTPClient) setTraceID(_ *resty.Client, req *resty.Request) error {
	if req.Header.Get(TraceIDHeader) != "" {
		return nil
	}

	traceID, ok := GetTraceIDFromContext(req.Context())
	if !ok {
		traceID = c.ids.Generate()
	}
	req.SetHeader(TraceIDHeader, traceID)
	return nil
}
