package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	jsoniter "github.com/json-iterator/go"
	"github.com/mattn/go-isatty"
	"github.com/urfave/cli/v2"
	"github.com/viant/afs"

	"github.com/davidbz/synexis/internal/domain"
	"github.com/davidbz/synexis/internal/media"
)

//nolint:gochecknoglobals // shared codec configuration
var json = jsoniter.ConfigCompatibleWithStandardLibrary

var completeCommand = &cli.Command{
	Name:  "complete",
	Usage: "Run a single chat completion",
	Description: `Complete reads a request from --input or stdin. The request is either a JSON list of
messages or a full request object: {"messages": [...], "temperature": 0.7, "stream": true}.
Media parts reference files by path: {"type": "image", "path": "/tmp/cat.png"}.`,
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:    "input",
			Usage:   "Path or URL of the request; read from stdin when omitted",
			Aliases: []string{"i"},
		},
		&cli.BoolFlag{
			Name:    "stream",
			Usage:   "Print fragments as they are generated",
			Aliases: []string{"s"},
		},
		&cli.IntFlag{
			Name:  "max-tokens",
			Usage: "Generation budget, -1 for the engine default",
		},
		&cli.Float64Flag{
			Name:  "temperature",
			Usage: "Sampling temperature",
		},
	},
	Action: func(c *cli.Context) error {
		data, err := readInput(c.Context, c.String("input"))
		if err != nil {
			return err
		}

		req, err := decodeRequest(data)
		if err != nil {
			return err
		}

		if c.Bool("stream") {
			req.Stream = true
		}
		if c.IsSet("max-tokens") {
			maxTokens := c.Int("max-tokens")
			req.MaxTokens = &maxTokens
		}
		if c.IsSet("temperature") {
			temperature := c.Float64("temperature")
			req.Temperature = &temperature
		}

		container := buildContainer()
		if err := initLogger(container); err != nil {
			return err
		}

		out := c.App.Writer
		return container.Invoke(func(gateway *domain.GatewayService, backend media.Backend) error {
			defer closeRedis(backend)

			if req.Stream {
				return streamCompletion(c.Context, out, gateway, req)
			}
			return printCompletion(c.Context, out, gateway, req)
		})
	},
}

func readInput(ctx context.Context, location string) ([]byte, error) {
	if location != "" {
		data, err := afs.New().DownloadWithURL(ctx, location)
		if err != nil {
			return nil, fmt.Errorf("failed to read input %s: %w", location, err)
		}
		return data, nil
	}

	if isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd()) {
		return nil, errors.New("no input: pass --input or pipe a request on stdin")
	}

	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return nil, fmt.Errorf("failed to read stdin: %w", err)
	}
	return data, nil
}

// decodeRequest accepts a bare list of messages or a full request object.
func decodeRequest(data []byte) (*domain.CompletionRequest, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("%w: empty input", domain.ErrInvalidRequest)
	}

	var req domain.CompletionRequest
	if trimmed[0] == '[' {
		if err := json.Unmarshal(trimmed, &req.Messages); err != nil {
			return nil, fmt.Errorf("%w: invalid messages: %w", domain.ErrInvalidRequest, err)
		}
		return &req, nil
	}

	if err := json.Unmarshal(trimmed, &req); err != nil {
		return nil, fmt.Errorf("%w: invalid request: %w", domain.ErrInvalidRequest, err)
	}
	return &req, nil
}

func printCompletion(ctx context.Context, out io.Writer, gateway *domain.GatewayService, req *domain.CompletionRequest) error {
	result, err := gateway.CreateCompletion(ctx, req)
	if err != nil {
		return err
	}

	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(result)
}

func streamCompletion(ctx context.Context, out io.Writer, gateway *domain.GatewayService, req *domain.CompletionRequest) error {
	stream, err := gateway.StreamCompletion(ctx, req)
	if err != nil {
		return err
	}
	defer stream.Close()

	for stream.Next() {
		if _, err := fmt.Fprint(out, stream.Current()); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	if err := stream.Err(); err != nil {
		return err
	}

	_, err = fmt.Fprintln(out)
	return err
}
