package llm

import "context"

type disabledClient struct {
	reason string
}

// NewDisabledClient devuelve un Client que falla siempre; se usa cuando no
// hay GEMINI_API_KEY para que el servicio arranque igual.
func NewDisabledClient(reason string) Client {
	return &disabledClient{reason: reason}
}

func (c *disabledClient) Generate(_ context.Context, _ []Turn) (string, error) {
	return "", ErrNotConfigured
}
