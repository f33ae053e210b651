package platforms

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/ollama/ollama/api"
)

// OllamaPlatform wraps the Ollama API client for a single configured
// host and model.
type OllamaPlatform struct {
	client *api.Client
	model  string
}

func NewOllamaPlatform(host, model string, timeout time.Duration) (*OllamaPlatform, error) {
	if model == "" {
		return nil, fmt.Errorf("ollama model cannot be empty")
	}

	base, err := url.Parse(host)
	if err != nil {
		return nil, fmt.Errorf("invalid ollama host %q: %w", host, err)
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("ollama host %q must include scheme and host", host)
	}

	return &OllamaPlatform{
		client: api.NewClient(base, &http.Client{Timeout: timeout}),
		model:  model,
	}, nil
}

func (o *OllamaPlatform) Client() *api.Client { return o.client }

func (o *OllamaPlatform) Model() string { return o.model }

// Generate runs a non-streaming completion and returns the full
// response text.
func (o *OllamaPlatform) Generate(ctx context.Context, prompt string) (string, error) {
	req := &api.GenerateRequest{
		Model:  o.model,
		Prompt: prompt,
		Stream: new(bool),
	}

	var sb strings.Builder
	respFunc := func(resp api.GenerateResponse) error {
		sb.WriteString(resp.Response)
		return nil
	}

	if err := o.client.Generate(ctx, req, respFunc); err != nil {
		return "", err
	}

	return strings.TrimSpace(sb.String()), nil
}
