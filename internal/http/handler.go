package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/davidbz/synexis/internal/domain"
	"github.com/davidbz/synexis/internal/engine"
	"github.com/davidbz/synexis/internal/observability"
)

// Handler handles HTTP requests.
type Handler struct {
	gateway *domain.GatewayService
	backend string
	model   string
}

// NewHandler creates a new HTTP handler (DI constructor).
func NewHandler(gateway *domain.GatewayService, engineCfg *engine.Config) *Handler {
	return &Handler{
		gateway: gateway,
		backend: engineCfg.Backend,
		model:   engineCfg.ModelPath,
	}
}

type errorBody struct {
	Error errorDetail `json:"error"`
}

type errorDetail struct {
	Message string `json:"message"`
	Type    string `json:"type"`
}

// HandleCompletion processes chat completion requests.
func (h *Handler) HandleCompletion(w http.ResponseWriter, r *http.Request) {
	ctx := observability.WithEngine(r.Context(), h.backend)
	ctx = observability.WithModel(ctx, h.model)

	var req domain.CompletionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid request body: %w", domain.ErrInvalidRequest, err))
		return
	}

	logger := observability.FromContext(ctx)
	logger.Info("completion request received",
		observability.Int("messages", len(req.Messages)),
		observability.Bool("stream", req.Stream))

	if req.Stream {
		h.handleStream(ctx, w, &req)
		return
	}

	result, err := h.gateway.CreateCompletion(ctx, &req)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, result)
}

func (h *Handler) handleStream(ctx context.Context, w http.ResponseWriter, req *domain.CompletionRequest) {
	logger := observability.FromContext(ctx)

	flusher, ok := w.(http.Flusher)
	if !ok {
		logger.Error("streaming not supported")
		http.Error(w, "streaming not supported", http.StatusInternalServerError)
		return
	}

	stream, err := h.gateway.StreamCompletion(ctx, req)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	defer stream.Close()

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)

	for stream.Next() {
		writeEvent(w, domain.StreamChunk{Delta: stream.Current(), Done: false})
		flusher.Flush()
	}

	if streamErr := stream.Err(); streamErr != nil {
		if ctx.Err() != nil {
			logger.Info("client disconnected during stream")
			return
		}
		data, _ := json.Marshal(errorBody{Error: errorDetail{Message: streamErr.Error(), Type: errorType(streamErr)}})
		_, _ = fmt.Fprintf(w, "event: error\ndata: %s\n\n", data)
		flusher.Flush()
		return
	}

	writeEvent(w, domain.StreamChunk{Delta: "", Done: true})
	_, _ = fmt.Fprint(w, "data: [DONE]\n\n")
	flusher.Flush()
}

// HandleHealth handles health check requests.
func (h *Handler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(r.Context(), w, http.StatusOK, map[string]string{
		"status": "healthy",
		"engine": h.backend,
		"model":  h.model,
	})
}

func writeEvent(w http.ResponseWriter, chunk domain.StreamChunk) {
	data, _ := json.Marshal(chunk)
	_, _ = fmt.Fprintf(w, "data: %s\n\n", data)
}

func writeJSON(ctx context.Context, w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		// Status already written, can't change it, just log.
		observability.FromContext(ctx).Error("failed to encode response", observability.Error(err))
	}
}

func writeError(ctx context.Context, w http.ResponseWriter, err error) {
	status := statusFor(err)

	logger := observability.FromContext(ctx)
	if status >= http.StatusInternalServerError {
		logger.Error("request failed", observability.Int("status", status), observability.Error(err))
	} else {
		logger.Warn("request rejected", observability.Int("status", status), observability.Error(err))
	}

	writeJSON(ctx, w, status, errorBody{
		Error: errorDetail{
			Message: err.Error(),
			Type:    errorType(err),
		},
	})
}

// statusFor maps the error taxonomy to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrInvalidRequest), errors.Is(err, domain.ErrInvalidOptions):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrTemplate):
		return http.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrMediaNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrEngine):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func errorType(err error) string {
	switch {
	case errors.Is(err, domain.ErrInvalidRequest):
		return "invalid_request"
	case errors.Is(err, domain.ErrInvalidOptions):
		return "invalid_options"
	case errors.Is(err, domain.ErrTemplate):
		return "template_error"
	case errors.Is(err, domain.ErrMediaNotFound):
		return "media_not_found"
	case errors.Is(err, domain.ErrMediaRead):
		return "media_read_error"
	case errors.Is(err, domain.ErrEngine):
		return "engine_error"
	default:
		return "internal_error"
	}
}
