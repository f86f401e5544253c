// Package completion relays user text to an OpenAI-compatible chat
// completion API under The Creature persona.
package completion

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"

	"github.com/edgard/creaturebot/internal/config"
	errs "github.com/edgard/creaturebot/internal/errors"
	"github.com/edgard/creaturebot/internal/persona"
	"github.com/edgard/creaturebot/internal/text"
)

// Result is the outcome of one completion request: Text on success,
// Err otherwise. Err carries an API or RESPONSE code from internal/errors.
type Result struct {
	Text string
	Err  error
}

// OK reports whether the request produced text.
func (r Result) OK() bool {
	return r.Err == nil
}

// Client sends one request per call. It is safe for concurrent use.
type Client struct {
	api     openai.Client
	persona persona.Persona
	timeout time.Duration
	rand    persona.Rand
	log     *slog.Logger
}

// Option customises a Client.
type Option func(*clientOptions)

type clientOptions struct {
	httpClient *http.Client
	rand       persona.Rand
}

// WithHTTPClient replaces the HTTP client used for API calls.
func WithHTTPClient(c *http.Client) Option {
	return func(o *clientOptions) { o.httpClient = c }
}

// WithRand replaces the randomness used to embellish replies.
func WithRand(r persona.Rand) Option {
	return func(o *clientOptions) { o.rand = r }
}

// NewClient creates a client for the endpoint in cfg that speaks as p.
func NewClient(cfg config.AIConfig, p persona.Persona, log *slog.Logger, opts ...Option) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, errs.NewConfigError("completion API key is required", nil)
	}
	if cfg.BaseURL == "" {
		return nil, errs.NewConfigError("completion API base URL is required", nil)
	}
	if log == nil {
		log = slog.Default()
	}

	o := clientOptions{rand: persona.DefaultRand}
	for _, opt := range opts {
		opt(&o)
	}

	reqOpts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		option.WithBaseURL(cfg.BaseURL),
		option.WithMaxRetries(0),
	}
	if o.httpClient != nil {
		reqOpts = append(reqOpts, option.WithHTTPClient(o.httpClient))
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = config.DefaultAITimeout
	}

	logger := log.With("component", "completion_client")
	logger.Info("Completion client initialized", "base_url", cfg.BaseURL, "model", p.Model, "timeout", timeout)

	return &Client{
		api:     openai.NewClient(reqOpts...),
		persona: p,
		timeout: timeout,
		rand:    o.rand,
		log:     logger,
	}, nil
}

// Complete sends the persona prompt and input as a system and a user turn and
// returns the first choice, embellished. It never retries.
func (c *Client) Complete(ctx context.Context, input string) Result {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	start := time.Now()
	resp, err := c.api.Chat.Completions.New(ctx, c.params(input))
	if err != nil {
		return Result{Err: errs.NewAPIError("completion request failed", err)}
	}
	if resp == nil || len(resp.Choices) == 0 {
		return Result{Err: errs.NewResponseError("completion response has no choices")}
	}

	content := text.Sanitize(resp.Choices[0].Message.Content)
	if content == "" {
		return Result{Err: errs.NewResponseError("completion response has empty content")}
	}

	c.log.DebugContext(ctx, "Completion received",
		"duration", time.Since(start),
		"finish_reason", resp.Choices[0].FinishReason,
		"total_tokens", resp.Usage.TotalTokens)

	return Result{Text: persona.Embellish(content, c.rand)}
}

// GenerateResponse is Complete for callers that always need something to
// send: every failure is logged and replaced by persona.Fallback.
func (c *Client) GenerateResponse(ctx context.Context, input string) (reply string) {
	defer func() {
		if r := recover(); r != nil {
			c.log.ErrorContext(ctx, "Completion panicked, sending fallback", "panic", fmt.Sprint(r))
			reply = persona.Fallback
		}
	}()

	res := c.Complete(ctx, input)
	if !res.OK() {
		c.log.ErrorContext(ctx, "Completion failed, sending fallback", "error", res.Err, "code", errs.Code(res.Err))
		return persona.Fallback
	}
	return res.Text
}

func (c *Client) params(input string) openai.ChatCompletionNewParams {
	return openai.ChatCompletionNewParams{
		Model: c.persona.Model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(c.persona.SystemPrompt),
			openai.UserMessage(input),
		},
		Temperature:      openai.Float(c.persona.Temperature),
		MaxTokens:        openai.Int(int64(c.persona.MaxTokens)),
		FrequencyPenalty: openai.Float(c.persona.FrequencyPenalty),
		PresencePenalty:  openai.Float(c.persona.PresencePenalty),
	}
}
