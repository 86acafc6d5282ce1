package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// Gemini talks to the Google generative language REST API
// (models/{model}:generateContent). Only plain text in, plain text out.
type Gemini struct {
	baseProvider
}

func NewGemini(baseURL, apiKey, model string) *Gemini {
	return &Gemini{
		baseProvider: newBaseProvider(baseURL, apiKey, model),
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

func (g *Gemini) Chat(ctx context.Context, system, user string) (string, error) {
	payload := geminiRequest{
		Contents: []geminiContent{
			{Role: "user", Parts: []geminiPart{{Text: user}}},
		},
	}
	if system != "" {
		payload.SystemInstruction = &geminiContent{Parts: []geminiPart{{Text: system}}}
	}

	headers := map[string]string{"x-goog-api-key": g.apiKey}
	path := fmt.Sprintf("/models/%s:generateContent", g.model)

	resp, err := g.doRequest(ctx, http.MethodPost, path, payload, headers)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	data, err := readBody(resp)
	if err != nil {
		return "", err
	}

	var result struct {
		Candidates []struct {
			Content struct {
				Parts []geminiPart `json:"parts"`
			} `json:"content"`
		} `json:"candidates"`
	}
	if err := json.Unmarshal(data, &result); err != nil {
		return "", fmt.Errorf("decode: %w", err)
	}
	if len(result.Candidates) == 0 || len(result.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("empty candidates: %s", string(data))
	}

	var text string
	for _, p := range result.Candidates[0].Content.Parts {
		text += p.Text
	}
	return text, nil
}
