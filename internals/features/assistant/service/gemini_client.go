package service

import (
	"bufio"
	"bytes"
	"fmt"
	"strings"
	"time"

	"helix_backend/internals/features/assistant/dto"

	"github.com/bytedance/sonic"
	"github.com/hashicorp/go-retryablehttp"
)

const (
	defaultBaseURL = "https://generativelanguage.googleapis.com"
	modelName      = "gemini-2.5-flash"
)

// GeminiClient streams chat completions from the Gemini API. BaseURL is
// overridable so tests can point it at a local server.
type GeminiClient struct {
	BaseURL string
	APIKey  string
	HTTP    *retryablehttp.Client
}

func NewGeminiClient(apiKey string) *GeminiClient {
	client := retryablehttp.NewClient()
	client.RetryMax = 2
	client.HTTPClient.Timeout = 60 * time.Second
	client.Logger = nil

	return &GeminiClient{
		BaseURL: defaultBaseURL,
		APIKey:  apiKey,
		HTTP:    client,
	}
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []geminiPart `json:"parts"`
}

type geminiRequest struct {
	SystemInstruction *geminiContent  `json:"system_instruction,omitempty"`
	Contents          []geminiContent `json:"contents"`
}

type geminiChunk struct {
	Candidates []struct {
		Content struct {
			Parts []geminiPart `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// StreamChat sends the conversation to Gemini and invokes onChunk for each
// piece of generated text as it arrives. Any error means the caller should
// fall back to a canned reply.
func (g *GeminiClient) StreamChat(systemPrompt string, history []dto.ChatTurn, message string, onChunk func(text string) error) error {
	if g.APIKey == "" {
		return fmt.Errorf("assistant api key is not configured")
	}

	contents := make([]geminiContent, 0, len(history)+1)
	for _, turn := range history {
		contents = append(contents, geminiContent{
			Role:  turn.Role,
			Parts: []geminiPart{{Text: turn.Text}},
		})
	}
	contents = append(contents, geminiContent{
		Role:  "user",
		Parts: []geminiPart{{Text: message}},
	})

	payload := geminiRequest{Contents: contents}
	if systemPrompt != "" {
		payload.SystemInstruction = &geminiContent{Parts: []geminiPart{{Text: systemPrompt}}}
	}

	body, err := sonic.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode assistant request: %w", err)
	}

	endpoint := fmt.Sprintf("%s/v1beta/models/%s:streamGenerateContent?alt=sse&key=%s",
		g.BaseURL, modelName, g.APIKey)

	req, err := retryablehttp.NewRequest("POST", endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build assistant request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.HTTP.Do(req)
	if err != nil {
		return fmt.Errorf("failed to reach assistant: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("assistant returned status %d", resp.StatusCode)
	}

	scanner := bufio.NewScanner(resp.Body)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		if !strings.HasPrefix(line, "data:") {
			continue
		}
		data := strings.TrimSpace(strings.TrimPrefix(line, "data:"))
		if data == "" || data == "[DONE]" {
			continue
		}

		var chunk geminiChunk
		if err := sonic.UnmarshalString(data, &chunk); err != nil {
			continue
		}
		for _, cand := range chunk.Candidates {
			for _, part := range cand.Content.Parts {
				if part.Text == "" {
					continue
				}
				if err := onChunk(part.Text); err != nil {
					return err
				}
			}
		}
	}
	return scanner.Err()
}
