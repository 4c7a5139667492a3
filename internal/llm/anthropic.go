package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

// InvokeRequest carrega o prompt e, opcionalmente, o esquema JSON esperado
// para a resposta.
type InvokeRequest struct {
	Prompt         string
	ResponseSchema map[string]any
}

// Invoker é o contrato de invocação do modelo. A resposta pode ser uma string
// crua ou um objeto já estruturado quando um esquema foi fornecido.
type Invoker interface {
	Invoke(ctx context.Context, req *InvokeRequest) (any, error)
}

type AnthropicClient struct {
	client    anthropic.Client
	model     string
	maxTokens int64
	timeout   time.Duration
}

func NewAnthropicClient(apiKey, model string, maxTokens int64, timeout time.Duration) *AnthropicClient {
	return &AnthropicClient{
		client:    anthropic.NewClient(option.WithAPIKey(apiKey)),
		model:     model,
		maxTokens: maxTokens,
		timeout:   timeout,
	}
}

func (c *AnthropicClient) Invoke(ctx context.Context, req *InvokeRequest) (any, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	prompt := req.Prompt
	if req.ResponseSchema != nil {
		schema, err := json.Marshal(req.ResponseSchema)
		if err != nil {
			return nil, fmt.Errorf("serializar esquema de resposta: %w", err)
		}
		prompt = fmt.Sprintf("%s\n\nRespond with a single JSON object matching this schema, and nothing else:\n%s", prompt, schema)
	}

	msg, err := c.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(c.model),
		MaxTokens: c.maxTokens,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("invocar modelo: %w", err)
	}

	var sb strings.Builder
	for _, block := range msg.Content {
		if block.Type == "text" {
			sb.WriteString(block.Text)
		}
	}
	text := sb.String()

	if req.ResponseSchema != nil {
		var parsed map[string]any
		if err := json.Unmarshal([]byte(text), &parsed); err == nil {
			return parsed, nil
		}
	}

	return text, nil
}
