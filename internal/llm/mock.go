package llm

import "context"

// MockGenerator is a canned TextGenerator for tests and local development.
// It records the prompts it receives and never calls an external model.
type MockGenerator struct {
	Response string
	Err      error
	Prompts  []string
}

func (m *MockGenerator) Generate(_ context.Context, prompt string) (string, error) {
	m.Prompts = append(m.Prompts, prompt)
	if m.Err != nil {
		return "", m.Err
	}
	return m.Response, nil
}

func (m *MockGenerator) Model() string {
	return "mock"
}
