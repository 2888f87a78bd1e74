package http_test

import (
	"bufio"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/davidbz/synexis/internal/config"
	"github.com/davidbz/synexis/internal/domain"
	"github.com/davidbz/synexis/internal/engine"
	"github.com/davidbz/synexis/internal/engine/echo"
	httpapi "github.com/davidbz/synexis/internal/http"
	"github.com/davidbz/synexis/internal/http/middleware"
	"github.com/davidbz/synexis/internal/media"
	"github.com/davidbz/synexis/internal/mocks"
)

func newTestServer(t *testing.T, eng domain.Engine) *httptest.Server {
	t.Helper()

	renderer, err := domain.NewEngineTemplateRenderer(eng)
	require.NoError(t, err)

	store := media.NewStore(media.NewFileReader(), media.NewMemoryBackend())
	gateway := domain.NewGatewayService(
		eng,
		renderer,
		domain.NewRequestBuilder(store, domain.DefaultGenerationDefaults()),
		domain.NewCompletionService(eng, "/models/test.gguf"),
	)

	handler := httpapi.NewHandler(gateway, &engine.Config{Backend: "echo", ModelPath: "/models/test.gguf"})
	server := httpapi.NewServer(
		&config.ServerConfig{Port: 0, ReadTimeout: 5, WriteTimeout: 5},
		handler,
		middleware.BuildMiddlewareChain(nil),
	)

	ts := httptest.NewServer(server.Routes())
	t.Cleanup(ts.Close)
	return ts
}

func post(t *testing.T, ts *httptest.Server, body string) *http.Response {
	t.Helper()

	resp, err := http.Post(ts.URL+"/v1/chat/completions", "application/json", strings.NewReader(body))
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })
	return resp
}

type errorResponse struct {
	Error struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error"`
}

func decodeError(t *testing.T, resp *http.Response) errorResponse {
	t.Helper()

	var body errorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

// readEvents returns the data payloads and event names of an SSE body.
func readEvents(t *testing.T, resp *http.Response) ([]string, []string) {
	t.Helper()

	var data, events []string
	scanner := bufio.NewScanner(resp.Body)
	for scanner.Scan() {
		line := scanner.Text()
		switch {
		case strings.HasPrefix(line, "data: "):
			data = append(data, strings.TrimPrefix(line, "data: "))
		case strings.HasPrefix(line, "event: "):
			events = append(events, strings.TrimPrefix(line, "event: "))
		}
	}
	require.NoError(t, scanner.Err())
	return data, events
}

func TestHandleCompletion(t *testing.T) {
	t.Run("should return the completion envelope", func(t *testing.T) {
		ts := newTestServer(t, echo.New(engine.DefaultProfile()))

		resp := post(t, ts, `{"messages":[{"role":"user","content":"Hello"}]}`)

		require.Equal(t, http.StatusOK, resp.StatusCode)
		require.Equal(t, "application/json", resp.Header.Get("Content-Type"))
		require.NotEmpty(t, resp.Header.Get("X-Request-Id"))
		require.NotEmpty(t, resp.Header.Get("X-Trace-Id"))

		var result domain.CompletionResult
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
		require.True(t, strings.HasPrefix(result.ID, "chatcmpl-"))
		require.Equal(t, "chat.completion", result.Object)
		require.Equal(t, "assistant", result.Result.Message.Role)
		require.Equal(t, "Hello", result.Result.Message.Content)
		require.Equal(t, "stop", result.Result.FinishReason)
		require.Equal(t, -1, result.Usage.TotalTokens)
	})

	t.Run("should stream server-sent events", func(t *testing.T) {
		ts := newTestServer(t, echo.New(engine.DefaultProfile()))

		resp := post(t, ts, `{"messages":[{"role":"user","content":"Hello big world"}],"stream":true}`)

		require.Equal(t, http.StatusOK, resp.StatusCode)
		require.Equal(t, "text/event-stream", resp.Header.Get("Content-Type"))

		data, events := readEvents(t, resp)
		require.Empty(t, events)
		require.Equal(t, []string{
			`{"delta":"Hello ","done":false}`,
			`{"delta":"big ","done":false}`,
			`{"delta":"world","done":false}`,
			`{"delta":"","done":true}`,
			`[DONE]`,
		}, data)
	})

	t.Run("should report stream failures as error events", func(t *testing.T) {
		profile := engine.DefaultProfile()
		source := mocks.NewMockEngineStream(t)
		source.EXPECT().Next().Return(false)
		source.EXPECT().Err().Return(errors.New("kv cache exhausted"))
		source.EXPECT().Close().Return(nil)

		eng := mocks.NewMockEngine(t)
		eng.EXPECT().Template().Return(profile.Template)
		eng.EXPECT().Tokens().Return(profile.TokensCopy())
		eng.EXPECT().CompleteStream(mock.Anything, mock.Anything).Return(source, nil)
		ts := newTestServer(t, eng)

		resp := post(t, ts, `{"messages":[{"role":"user","content":"Hello"}],"stream":true}`)

		require.Equal(t, http.StatusOK, resp.StatusCode)
		data, events := readEvents(t, resp)
		require.Equal(t, []string{"error"}, events)
		require.Len(t, data, 1)
		require.Contains(t, data[0], "kv cache exhausted")
		require.Contains(t, data[0], "engine_error")
	})

	tests := []struct {
		name           string
		body           string
		expectedStatus int
		expectedType   string
	}{
		{
			name:           "malformed body",
			body:           `{"messages":`,
			expectedStatus: http.StatusBadRequest,
			expectedType:   "invalid_request",
		},
		{
			name:           "empty messages",
			body:           `{"messages":[]}`,
			expectedStatus: http.StatusBadRequest,
			expectedType:   "invalid_request",
		},
		{
			name:           "invalid options",
			body:           `{"messages":[{"role":"user","content":"Hello"}],"top_p":2}`,
			expectedStatus: http.StatusBadRequest,
			expectedType:   "invalid_options",
		},
		{
			name:           "missing media",
			body:           `{"messages":[{"role":"user","content":[{"type":"image","path":"/missing/file.png"}]}]}`,
			expectedStatus: http.StatusNotFound,
			expectedType:   "media_not_found",
		},
		{
			name:           "missing media while streaming",
			body:           `{"messages":[{"role":"user","content":[{"type":"audio","path":"/missing/file.wav"}]}],"stream":true}`,
			expectedStatus: http.StatusNotFound,
			expectedType:   "media_not_found",
		},
	}

	for _, tt := range tests {
		t.Run("should map "+tt.name, func(t *testing.T) {
			ts := newTestServer(t, echo.New(engine.DefaultProfile()))

			resp := post(t, ts, tt.body)

			require.Equal(t, tt.expectedStatus, resp.StatusCode)
			require.Equal(t, tt.expectedType, decodeError(t, resp).Error.Type)
		})
	}

	t.Run("should map template failures", func(t *testing.T) {
		eng := mocks.NewMockEngine(t)
		eng.EXPECT().Template().Return("{{ .undefined_token }}")
		eng.EXPECT().Tokens().Return(map[string]string{})
		ts := newTestServer(t, eng)

		resp := post(t, ts, `{"messages":[{"role":"user","content":"Hello"}]}`)

		require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
		require.Equal(t, "template_error", decodeError(t, resp).Error.Type)
	})

	t.Run("should map engine failures", func(t *testing.T) {
		profile := engine.DefaultProfile()
		eng := mocks.NewMockEngine(t)
		eng.EXPECT().Template().Return(profile.Template)
		eng.EXPECT().Tokens().Return(profile.TokensCopy())
		eng.EXPECT().Complete(mock.Anything, mock.Anything).Return(domain.Generation{}, errors.New("engine crashed"))
		ts := newTestServer(t, eng)

		resp := post(t, ts, `{"messages":[{"role":"user","content":"Hello"}]}`)

		require.Equal(t, http.StatusBadGateway, resp.StatusCode)
		body := decodeError(t, resp)
		require.Equal(t, "engine_error", body.Error.Type)
		require.Contains(t, body.Error.Message, "engine crashed")
	})

	t.Run("should accept media that exists", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "cat.png")
		require.NoError(t, os.WriteFile(path, []byte("png"), 0o600))
		ts := newTestServer(t, echo.New(engine.DefaultProfile()))

		resp := post(t, ts, `{"messages":[{"role":"user","content":[{"type":"text","text":"Describe"},{"type":"image","path":"`+path+`"}]}]}`)

		require.Equal(t, http.StatusOK, resp.StatusCode)
		var result domain.CompletionResult
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
		require.Equal(t, "[1 media] Describe", result.Result.Message.Content)
	})
}

func TestRoutes(t *testing.T) {
	ts := newTestServer(t, echo.New(engine.DefaultProfile()))

	t.Run("should report health", func(t *testing.T) {
		resp, err := http.Get(ts.URL + "/health")
		require.NoError(t, err)
		defer resp.Body.Close()

		require.Equal(t, http.StatusOK, resp.StatusCode)
		var body map[string]string
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		require.Equal(t, "healthy", body["status"])
		require.Equal(t, "echo", body["engine"])
	})

	t.Run("should expose metrics", func(t *testing.T) {
		resp, err := http.Get(ts.URL + "/metrics")
		require.NoError(t, err)
		defer resp.Body.Close()

		require.Equal(t, http.StatusOK, resp.StatusCode)
		scanner := bufio.NewScanner(resp.Body)
		found := false
		for scanner.Scan() {
			if strings.HasPrefix(scanner.Text(), "synexis_streams_active") {
				found = true
			}
		}
		require.True(t, found)
	})

	t.Run("should reject other methods", func(t *testing.T) {
		resp, err := http.Get(ts.URL + "/v1/chat/completions")
		require.NoError(t, err)
		defer resp.Body.Close()

		require.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
	})
}
