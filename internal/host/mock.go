package host

import (
	"context"
	"sync"

	"github.com/endpoint/summary-panel/internal/models"
)

// SetCall records one Set invocation on a MockClient.
type SetCall struct {
	Key   string
	Value string
}

// MockClient is an in-memory host. Each Err field, when set, makes the
// matching call fail.
type MockClient struct {
	Locale   string
	Settings map[string]string
	Fields   map[string]any

	CurrentUserErr error
	MetadataErr    error
	GetErr         error
	SetErr         error
	ResizeErr      error

	mu       sync.Mutex
	getCalls [][]string
	sets     []SetCall
	resizes  []int
}

func (m *MockClient) CurrentUser(ctx context.Context) (models.CurrentUser, error) {
	if m.CurrentUserErr != nil {
		return models.CurrentUser{}, m.CurrentUserErr
	}
	return models.CurrentUser{Locale: m.Locale}, nil
}

func (m *MockClient) Metadata(ctx context.Context) (models.Metadata, error) {
	if m.MetadataErr != nil {
		return models.Metadata{}, m.MetadataErr
	}
	settings := make(map[string]string, len(m.Settings))
	for k, v := range m.Settings {
		settings[k] = v
	}
	return models.Metadata{Settings: settings}, nil
}

func (m *MockClient) Get(ctx context.Context, keys []string) (map[string]any, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.getCalls = append(m.getCalls, append([]string(nil), keys...))
	if m.GetErr != nil {
		return nil, m.GetErr
	}
	out := map[string]any{}
	for _, k := range keys {
		if v, ok := m.Fields[k]; ok {
			out[k] = v
		}
	}
	return out, nil
}

func (m *MockClient) Set(ctx context.Context, key string, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sets = append(m.sets, SetCall{Key: key, Value: value})
	if m.SetErr != nil {
		return m.SetErr
	}
	if m.Fields == nil {
		m.Fields = map[string]any{}
	}
	m.Fields[key] = value
	return nil
}

func (m *MockClient) Resize(ctx context.Context, maxHeight int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.resizes = append(m.resizes, maxHeight)
	return m.ResizeErr
}

func (m *MockClient) GetCalls() [][]string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([][]string(nil), m.getCalls...)
}

func (m *MockClient) Sets() []SetCall {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]SetCall(nil), m.sets...)
}

func (m *MockClient) Resizes() []int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]int(nil), m.resizes...)
}

// NewMockFactory hands out one MockClient per ticket, created on first use
// by newClient and reused afterwards.
func NewMockFactory(newClient func(ticketID string) *MockClient) Factory {
	var mu sync.Mutex
	clients := map[string]*MockClient{}
	return func(ticketID string) Client {
		mu.Lock()
		defer mu.Unlock()
		if c, ok := clients[ticketID]; ok {
			return c
		}
		c := newClient(ticketID)
		clients[ticketID] = c
		return c
	}
}
