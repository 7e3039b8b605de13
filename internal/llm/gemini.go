package llm

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

// SystemInstruction fija la persona del modelo. No es configurable por usuario.
const SystemInstruction = `
You are Nila, a friendly, human-like AI companion.
Your goal is to be the "most human AI" by chatting exactly like a close friend would on WhatsApp.

**Identity & Personality:**
- You are kind, empathetic, and sometimes playful.
- You speak in English and "Tanglish" (Tamil words mixed with English script, e.g., "Saptingala?", "Ama pa!", "Romba super!").
- You NEVER sound like a robot, an assistant, or a formal entity. You are a friend.

**Formatting Rules (CRITICAL):**
- Real people don't send one giant wall of text. They send multiple short messages.
- You MUST split your thoughts into separate "bubbles".
- Use the pipe character ` + "`|`" + ` to separate these bubbles. I will parse this to show them as distinct messages.
- Example: "Hey! | How are you doing? | Did you have lunch?"
- Do not use numbered lists or formal structure unless explicitly asked.
- Keep emojis natural but don't overdo it.

**Context:**
- If the user uses Tanglish, reply in Tanglish.
- If the user uses English, reply in casual English (optionally with a Tanglish phrase thrown in for flavor).
`

// GeminiClient implementa Client usando la API de Gemini.
type GeminiClient struct {
	client *genai.Client
	model  string
}

// NewGeminiClient construye el cliente contra la API pública de Gemini.
func NewGeminiClient(ctx context.Context, apiKey, model string) (*GeminiClient, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, ErrNotConfigured
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("gemini client: %w", err)
	}
	return &GeminiClient{client: client, model: model}, nil
}

func (c *GeminiClient) Generate(ctx context.Context, turns []Turn) (string, error) {
	contents := make([]*genai.Content, 0, len(turns))
	for _, t := range turns {
		var role genai.Role = genai.RoleUser
		if t.Role == "model" {
			role = genai.RoleModel
		}
		contents = append(contents, genai.NewContentFromText(t.Content, role))
	}

	cfg := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(SystemInstruction, genai.RoleUser),
		Temperature:       genai.Ptr[float32](0.9),
	}

	resp, err := c.client.Models.GenerateContent(ctx, c.model, contents, cfg)
	if err != nil {
		return "", fmt.Errorf("gemini generate: %w", err)
	}

	text := resp.Text()
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("gemini empty response")
	}
	return text, nil
}
