package letter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/pribylovaa/credit-dispute/internal/models"
)

const (
	defaultBaseURL = "https://api.openai.com"
	defaultModel   = "gpt-3.5-turbo"

	systemPrompt = "You are a professional credit repair specialist who writes formal dispute letters to credit bureaus. Write clear, professional, and effective dispute letters."
)

// OpenAIConfig — chat-completions client settings.
type OpenAIConfig struct {
	APIKey  string
	BaseURL string
	Model   string
	Timeout time.Duration
}

// OpenAI generates letters through the chat-completions endpoint.
type OpenAI struct {
	cfg    OpenAIConfig
	client *http.Client
}

// NewOpenAI fills defaults for empty BaseURL and Model.
func NewOpenAI(cfg OpenAIConfig) *OpenAI {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if cfg.Model == "" {
		cfg.Model = defaultModel
	}
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")

	return &OpenAI{cfg: cfg, client: &http.Client{Timeout: cfg.Timeout}}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens"`
	Temperature float64       `json:"temperature"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

func (o *OpenAI) Generate(ctx context.Context, req models.LetterRequest) (models.GeneratedLetter, error) {
	const op = "letter.openai.Generate"

	body, err := json.Marshal(chatRequest{
		Model: o.cfg.Model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userPrompt(req)},
		},
		MaxTokens:   800,
		Temperature: 0.7,
	})
	if err != nil {
		return models.GeneratedLetter{}, fmt.Errorf("%s: %w", op, err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, o.cfg.BaseURL+"/v1/chat/completions", bytes.NewReader(body))
	if err != nil {
		return models.GeneratedLetter{}, fmt.Errorf("%s: %w", op, err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+o.cfg.APIKey)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := o.client.Do(httpReq)
	if err != nil {
		return models.GeneratedLetter{}, fmt.Errorf("%s: %w", op, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return models.GeneratedLetter{}, fmt.Errorf("%s: %w", op, err)
	}

	if resp.StatusCode/100 != 2 {
		return models.GeneratedLetter{}, fmt.Errorf("%s: upstream status %d", op, resp.StatusCode)
	}

	var cr chatResponse
	if err := json.Unmarshal(raw, &cr); err != nil {
		return models.GeneratedLetter{}, fmt.Errorf("%s: %w", op, err)
	}

	if len(cr.Choices) == 0 || strings.TrimSpace(cr.Choices[0].Message.Content) == "" {
		return models.GeneratedLetter{}, fmt.Errorf("%s: %w", op, ErrEmptyCompletion)
	}

	return models.GeneratedLetter{
		Content:         strings.TrimSpace(cr.Choices[0].Message.Content),
		GeneratedWithAI: true,
	}, nil
}

func userPrompt(req models.LetterRequest) string {
	return fmt.Sprintf(`Generate a professional credit dispute letter for the following:

Account Name: %s
Account Type: %s
Dispute Reason: %s

The letter should be:
- Professional and formal in tone
- Include proper business letter formatting
- Be specific about the dispute
- Request investigation and removal if inaccurate
- Include a request for written confirmation
- Be between 200-400 words

Format it as a complete business letter with placeholders for [Your Name], [Your Address], [Date], etc.`,
		req.AccountName, req.AccountType, req.Reason)
}
