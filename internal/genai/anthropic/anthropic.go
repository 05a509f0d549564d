// Package anthropic implements the genai.Completer contract on top of the
// Anthropic Messages API. It exists for deployments that hold an Anthropic
// credential instead of a Gemini one; both features use it identically.
package anthropic

import (
	"context"
	"fmt"

	anthropicsdk "github.com/liushuangls/go-anthropic/v2"

	"github.com/krishimitra/krishimitra/internal/genai"
)

// maxTokens bounds the completion. Disease reports and advice replies are a
// few hundred tokens; 1024 leaves headroom for verbose models.
const maxTokens = 1024

type Client struct {
	client *anthropicsdk.Client
	model  string
}

func New(apiKey, model string, opts ...anthropicsdk.ClientOption) *Client {
	return &Client{
		client: anthropicsdk.NewClient(apiKey, opts...),
		model:  model,
	}
}

func (c *Client) Complete(ctx context.Context, prompt string, image *genai.Image) (string, error) {
	var msg anthropicsdk.Message
	if image != nil {
		msg = anthropicsdk.Message{
			Role: anthropicsdk.RoleUser,
			Content: []anthropicsdk.MessageContent{
				anthropicsdk.NewImageMessageContent(anthropicsdk.NewMessageContentSource(
					anthropicsdk.MessagesContentSourceTypeBase64, image.MIMEType, image.Data,
				)),
				anthropicsdk.NewTextMessageContent(prompt),
			},
		}
	} else {
		msg = anthropicsdk.NewUserTextMessage(prompt)
	}

	resp, err := c.client.CreateMessages(ctx, anthropicsdk.MessagesRequest{
		Model:     anthropicsdk.Model(c.model),
		MaxTokens: maxTokens,
		Messages:  []anthropicsdk.Message{msg},
	})
	if err != nil {
		return "", fmt.Errorf("failed to call anthropic: %v: %w", err, genai.ErrUpstream)
	}

	text := resp.GetFirstContentText()
	if text == "" {
		return "", fmt.Errorf("anthropic response has no text content: %w", genai.ErrUpstream)
	}
	return text, nil
}
