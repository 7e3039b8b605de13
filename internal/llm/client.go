package llm

import (
	"context"
	"errors"
)

// Turn es un mensaje de la conversación tal como lo consume el modelo.
type Turn struct {
	Role    string
	Content string
}

// Client define la interfaz para generar respuestas con un LLM.
type Client interface {
	Generate(ctx context.Context, turns []Turn) (string, error)
}

// ErrNotConfigured indica que no hay credencial de modelo disponible.
var ErrNotConfigured = errors.New("llm client not configured")
