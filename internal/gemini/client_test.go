package gemini

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"sflix-catalog-service/internal/config"
)

func newTestClient(t *testing.T, apiKey string, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(config.GeminiConfig{
		APIKey:  apiKey,
		BaseURL: srv.URL + "/v1beta",
		Model:   "gemini-test",
		Timeout: 2 * time.Second,
	})
}

func TestClient_GenerateJSON(t *testing.T) {
	var gotPath, gotKey string
	var gotBody []byte
	c := newTestClient(t, "secret", func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.Header.Get("x-goog-api-key")
		gotBody, _ = io.ReadAll(r.Body)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"[{\"id\":\"a\"}]"}]}}]}`))
	})

	text, err := c.GenerateJSON(context.Background(), GenerateRequest{
		Prompt:      "hello",
		Schema:      Schema{"type": "ARRAY"},
		Temperature: 0.7,
	})
	require.NoError(t, err)

	assert.Equal(t, `[{"id":"a"}]`, text)
	assert.Equal(t, "/v1beta/models/gemini-test:generateContent", gotPath)
	assert.Equal(t, "secret", gotKey)

	body := gjson.ParseBytes(gotBody)
	assert.Equal(t, "hello", body.Get("contents.0.parts.0.text").String())
	assert.Equal(t, "application/json", body.Get("generationConfig.responseMimeType").String())
	assert.Equal(t, "ARRAY", body.Get("generationConfig.responseSchema.type").String())
	assert.InDelta(t, 0.7, body.Get("generationConfig.temperature").Float(), 1e-9)
}

func TestClient_GenerateJSON_NoCredential(t *testing.T) {
	called := false
	c := newTestClient(t, "", func(w http.ResponseWriter, r *http.Request) {
		called = true
	})

	assert.False(t, c.Configured())
	_, err := c.GenerateJSON(context.Background(), GenerateRequest{Prompt: "x"})
	assert.ErrorIs(t, err, ErrNoCredential)
	assert.False(t, called)
}

func TestClient_GenerateJSON_Failures(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		check  func(t *testing.T, err error)
	}{
		{
			name:   "server error",
			status: http.StatusInternalServerError,
			body:   `{"error":{"message":"boom"}}`,
			check: func(t *testing.T, err error) {
				var se *StatusError
				require.True(t, errors.As(err, &se))
				assert.Equal(t, http.StatusInternalServerError, se.Code)
				assert.Contains(t, se.Body, "boom")
			},
		},
		{
			name:   "no candidates",
			status: http.StatusOK,
			body:   `{"candidates":[]}`,
			check: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, ErrEmptyResponse)
			},
		},
		{
			name:   "blocked prompt",
			status: http.StatusOK,
			body:   `{"promptFeedback":{"blockReason":"SAFETY"}}`,
			check: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, ErrBlocked)
				assert.Contains(t, err.Error(), "SAFETY")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, "k", func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})
			_, err := c.GenerateJSON(context.Background(), GenerateRequest{Prompt: "x"})
			require.Error(t, err)
			tt.check(t, err)
		})
	}
}

func TestClient_GenerateJSON_ContextCancelled(t *testing.T) {
	c := newTestClient(t, "k", func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	})
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := c.GenerateJSON(ctx, GenerateRequest{Prompt: "x"})
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
