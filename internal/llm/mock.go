package llm

import "context"

// MockClient permite tests sin llamar a un LLM real.
type MockClient struct {
	Response  string
	Err       error
	LastTurns []Turn
}

func (m *MockClient) Generate(_ context.Context, turns []Turn) (string, error) {
	m.LastTurns = turns
	return m.Response, m.Err
}
