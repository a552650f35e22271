package coach

import "context"

// MockLLM is a canned-reply client for tests and local debugging. It records
// how many calls it received and the last prompt it saw.
type MockLLM struct {
	Reply string
	Err   error

	Calls      int
	LastPrompt Prompt
}

func (m *MockLLM) Complete(_ context.Context, prompt Prompt) (string, error) {
	m.Calls++
	m.LastPrompt = prompt
	if m.Err != nil {
		return "", m.Err
	}
	return m.Reply, nil
}
