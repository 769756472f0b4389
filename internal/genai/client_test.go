package genai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Aadi2k05/blogging-web/internal/config"
)

func testConfig(baseURL string) config.GeminiConfig {
	return config.GeminiConfig{
		APIKey:  "test-key",
		Model:   "gemini-1.5-flash",
		BaseURL: baseURL,
		Timeout: 5 * time.Second,
	}
}

func TestGenerateSendsPromptAndReturnsText(t *testing.T) {
	var gotPath, gotKey string
	var gotBody generateRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.URL.Query().Get("key")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		resp := map[string]interface{}{
			"candidates": []map[string]interface{}{
				{"content": map[string]interface{}{
					"parts": []map[string]string{{"text": "```json\n"}, {"text": "{\"titles\":[]}\n```"}},
				}},
			},
		}
		_ = json.NewEncoder(w).Encode(resp)
	}))
	defer srv.Close()

	c := NewClient(testConfig(srv.URL))
	text, err := c.Generate(context.Background(), "write about soil")
	require.NoError(t, err)
	require.Equal(t, "```json\n{\"titles\":[]}\n```", text)
	require.Equal(t, "/v1beta/models/gemini-1.5-flash:generateContent", gotPath)
	require.Equal(t, "test-key", gotKey)
	require.Len(t, gotBody.Contents, 1)
	require.Equal(t, "write about soil", gotBody.Contents[0].Parts[0].Text)
}

func TestGenerateNonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error":{"message":"quota exceeded"}}`))
	}))
	defer srv.Close()

	c := NewClient(testConfig(srv.URL))
	_, err := c.Generate(context.Background(), "anything")
	require.Error(t, err)
	require.True(t, strings.Contains(err.Error(), "429"))
	require.True(t, strings.Contains(err.Error(), "quota exceeded"))
}

func TestGenerateNoCandidates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"candidates":[]}`))
	}))
	defer srv.Close()

	c := NewClient(testConfig(srv.URL))
	_, err := c.Generate(context.Background(), "anything")
	require.Error(t, err)
}

func TestGenerateEmptyPromptRejectedLocally(t *testing.T) {
	c := NewClient(testConfig("http://127.0.0.1:1"))
	_, err := c.Generate(context.Background(), "")
	require.Error(t, err)
}
