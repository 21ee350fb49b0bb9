package utils

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHTTPClient_Independence(t *testing.T) {
	client1 := NewHTTPClient()
	client2 := NewHTTPClient()

	require.NotNil(t, client1.Client)
	assert.NotSame(t, client1.Client, client2.Client)
}

func TestHTTPClient_TraceIDHeader(t *testing.T) {
	var (
		mu  sync.Mutex
		got []string
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		defer mu.Unlock()
		got = append(got, r.Header.Get(TraceIDHeader))
	}))
	defer srv.Close()

	client := NewHTTPClient()

	_, err := client.R().SetContext(WithTraceID(context.Background(), "trace-from-ctx")).Get(srv.URL)
	require.NoError(t, err)

	_, err = client.R().SetContext(context.Background()).Get(srv.URL)
	require.NoError(t, err)

	_, err = client.R().SetHeader(TraceIDHeader, "explicit").Get(srv.URL)
	require.NoError(t, err)

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, got, 3)
	assert.Equal(t, "trace-from-ctx", got[0])

	generated, err := uuid.Parse(got[1])
	require.NoError(t, err, "a generated trace id is a uuid")
	assert.Equal(t, uuid.Version(7), generated.Version())

	assert.Equal(t, "explicit", got[2])
}
