package caption

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"marketplace/config"
	"marketplace/internal/domain/service"

	"github.com/pkg/errors"
)

const (
	systemPrompt = "You are an image description assistant that helps with e-commerce search. " +
		"Describe the image in detail, focusing on attributes like color, type of item, style, features, " +
		"condition, size, material, and any text visible. Your description should be helpful for finding " +
		"similar items in a school store that sells books, stationery and uniforms."
	userPrompt = "Describe this image in detail for searching in our school store inventory. " +
		"Include all relevant attributes someone might search for."

	dataURLPrefix     = "data:"
	defaultDataPrefix = "data:image/jpeg;base64,"
	maxErrorBodyBytes = 512
)

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content any    `json:"content"`
}

type contentPart struct {
	Type     string    `json:"type"`
	Text     string    `json:"text,omitempty"`
	ImageURL *imageURL `json:"image_url,omitempty"`
}

type imageURL struct {
	URL string `json:"url"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// openRouterClient describes images through an OpenAI compatible chat completions endpoint
type openRouterClient struct {
	endpoint   string
	apiKey     string
	model      string
	referer    string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewCaptionService creates a caption client from configuration
func NewCaptionService(cfg *config.Config, logger *slog.Logger) service.CaptionService {
	c := cfg.Caption

	return &openRouterClient{
		endpoint: c.Endpoint,
		apiKey:   c.APIKey,
		model:    c.Model,
		referer:  c.Referer,
		httpClient: &http.Client{
			Timeout: c.Timeout,
		},
		logger: logger,
	}
}

func (c *openRouterClient) Describe(ctx context.Context, imageBase64 string) (string, error) {
	url := imageBase64
	if !strings.HasPrefix(url, dataURLPrefix) {
		url = defaultDataPrefix + imageBase64
	}

	payload := chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: []contentPart{
				{Type: "text", Text: userPrompt},
				{Type: "image_url", ImageURL: &imageURL{URL: url}},
			}},
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", errors.WithStack(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}
	if c.referer != "" {
		req.Header.Set("HTTP-Referer", c.referer)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", errors.Wrap(err, "caption request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))

		return "", errors.Errorf("caption endpoint returned status %d: %s", resp.StatusCode, snippet)
	}

	var decoded chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return "", errors.Wrap(err, "failed to decode caption response")
	}

	if len(decoded.Choices) == 0 {
		return "", errors.New("caption response has no choices")
	}

	description := decoded.Choices[0].Message.Content
	c.logger.DebugContext(ctx, "Image captioned",
		slog.String("model", c.model),
		slog.Int("description_length", len(description)),
	)

	return description, nil
}
