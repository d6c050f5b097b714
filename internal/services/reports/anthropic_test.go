package reports

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"leadfair/internal/domain"
)

func testClient(url string) *AnthropicClient {
	c := NewAnthropicClient("test-key", "test-model")
	c.baseURL = url
	return c
}

func TestCompleteJoinsTextBlocks(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/messages", r.URL.Path)
		assert.Equal(t, "test-key", r.Header.Get("x-api-key"))
		assert.Equal(t, "2023-06-01", r.Header.Get("anthropic-version"))

		var req anthropicRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "test-model", req.Model)
		assert.False(t, req.Stream)
		// Non-assistant roles collapse to user.
		require.Len(t, req.Messages, 2)
		assert.Equal(t, "user", req.Messages[0].Role)
		assert.Equal(t, "assistant", req.Messages[1].Role)

		fmt.Fprint(w, `{"content":[{"type":"text","text":"Hello "},{"type":"text","text":"world"}]}`)
	}))
	defer srv.Close()

	out, err := testClient(srv.URL).Complete(context.Background(), "sys", []domain.Message{
		{Role: "system", Content: "hi"},
		{Role: "assistant", Content: "yes"},
	})
	require.NoError(t, err)
	assert.Equal(t, "Hello world", out)
}

func TestCompleteSurfacesAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		fmt.Fprint(w, `{"error":{"type":"rate_limit_error","message":"slow down"}}`)
	}))
	defer srv.Close()

	_, err := testClient(srv.URL).Complete(context.Background(), "", []domain.Message{{Role: "user", Content: "x"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "429")
}

func TestCompleteRequiresAPIKey(t *testing.T) {
	c := NewAnthropicClient("", "m")
	_, err := c.Complete(context.Background(), "", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "API key")
}

func TestStreamForwardsDeltas(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/event-stream")
		fmt.Fprint(w, "event: message_start\n")
		fmt.Fprint(w, `data: {"type":"message_start"}`+"\n\n")
		fmt.Fprint(w, `data: {"type":"content_block_delta","delta":{"type":"text_delta","text":"Hi"}}`+"\n\n")
		fmt.Fprint(w, `data: {"type":"content_block_delta","delta":{"type":"text_delta","text":" there"}}`+"\n\n")
		fmt.Fprint(w, `data: {"type":"message_stop"}`+"\n\n")
	}))
	defer srv.Close()

	deltas, errc := testClient(srv.URL).Stream(context.Background(), "sys", []domain.Message{{Role: "user", Content: "x"}})

	var got string
	for d := range deltas {
		got += d
	}
	assert.Equal(t, "Hi there", got)
	assert.NoError(t, <-errc)
}

func TestStreamReportsMidStreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `data: {"type":"content_block_delta","delta":{"type":"text_delta","text":"partial"}}`+"\n\n")
		fmt.Fprint(w, `data: {"type":"error","error":{"type":"overloaded_error","message":"overloaded"}}`+"\n\n")
	}))
	defer srv.Close()

	deltas, errc := testClient(srv.URL).Stream(context.Background(), "", []domain.Message{{Role: "user", Content: "x"}})

	var got string
	for d := range deltas {
		got += d
	}
	assert.Equal(t, "partial", got)
	err := <-errc
	require.Error(t, err)
	assert.Contains(t, err.Error(), "overloaded")
}
