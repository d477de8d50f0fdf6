package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

// OpenAIClient implements Client using the OpenAI chat completion API.
type OpenAIClient struct {
	client  *openai.Client
	modelID string
}

// NewOpenAIClient creates a new OpenAI client.
func NewOpenAIClient(apiKey, modelID string) (*OpenAIClient, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, errors.New("llm: openai api key is required")
	}
	if strings.TrimSpace(modelID) == "" {
		modelID = openai.GPT4oMini
	}
	return &OpenAIClient{
		client:  openai.NewClient(apiKey),
		modelID: modelID,
	}, nil
}

// Complete sends a completion request to OpenAI and returns the response.
func (c *OpenAIClient) Complete(ctx context.Context, req Request) (Response, error) {
	if len(req.Messages) == 0 {
		return Response{}, errors.New("llm: openai requires at least one message")
	}

	messages := make([]openai.ChatCompletionMessage, 0, len(req.Messages)+1)
	if systemText := strings.TrimSpace(strings.Join(req.System, "\n\n")); systemText != "" {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleSystem,
			Content: systemText,
		})
	}
	for _, msg := range req.Messages {
		content := strings.TrimSpace(msg.Content)
		if content == "" {
			continue
		}
		role := openai.ChatMessageRoleUser
		switch msg.Role {
		case ChatRoleAssistant:
			role = openai.ChatMessageRoleAssistant
		case ChatRoleSystem:
			role = openai.ChatMessageRoleSystem
		}
		messages = append(messages, openai.ChatCompletionMessage{Role: role, Content: content})
	}

	model := req.Model
	if model == "" {
		model = c.modelID
	}

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       model,
		Messages:    messages,
		MaxTokens:   int(req.MaxTokens),
		Temperature: req.Temperature,
		TopP:        req.TopP,
	})
	if err != nil {
		return Response{}, fmt.Errorf("llm: openai completion failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return Response{}, errors.New("llm: openai returned no choices")
	}

	choice := resp.Choices[0]
	return Response{
		Text:       strings.TrimSpace(choice.Message.Content),
		StopReason: string(choice.FinishReason),
		Usage: TokenUsage{
			InputTokens:  int32(resp.Usage.PromptTokens),
			OutputTokens: int32(resp.Usage.CompletionTokens),
			TotalTokens:  int32(resp.Usage.TotalTokens),
		},
	}, nil
}
