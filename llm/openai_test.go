package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Raj-Aarav/FinWise/apierr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(serverURL string) *Client {
	return NewClient(ClientConfig{
		APIKey:  "test-key",
		Model:   "gpt-test",
		BaseURL: serverURL,
		Timeout: 2 * time.Second,
	})
}

func TestClientComplete(t *testing.T) {
	var gotAuth string
	var gotBody chatRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]string{"role": "assistant", "content": "Spend less on takeout."}},
			},
		})
	}))
	defer server.Close()

	reply, err := newTestClient(server.URL).Complete(context.Background(), "How am I doing?")

	require.NoError(t, err)
	assert.Equal(t, "Spend less on takeout.", reply)
	assert.Equal(t, "Bearer test-key", gotAuth)
	assert.Equal(t, "gpt-test", gotBody.Model)
	if assert.Len(t, gotBody.Messages, 2) {
		assert.Equal(t, "system", gotBody.Messages[0].Role)
		assert.Equal(t, "How am I doing?", gotBody.Messages[1].Content)
	}
}

func TestClientCompleteUpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"invalid request"}`, http.StatusBadRequest)
	}))
	defer server.Close()

	_, err := newTestClient(server.URL).Complete(context.Background(), "hi")

	require.Error(t, err)
	apiErr := apierr.From(err)
	assert.Equal(t, "upstream_failure", apiErr.Code)
	assert.Equal(t, "completion service unavailable", apiErr.Message)
}

func TestClientCompleteEmptyChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"choices": []any{}})
	}))
	defer server.Close()

	_, err := newTestClient(server.URL).Complete(context.Background(), "hi")

	require.Error(t, err)
	assert.Equal(t, "upstream_failure", apierr.From(err).Code)
}

func TestClientCompleteContextCanceled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer server.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := newTestClient(server.URL).Complete(ctx, "hi")
	assert.Error(t, err)
}
