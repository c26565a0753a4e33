package runtime

import (
	"context"
	"sync"
)

// MockRuntime is a mock implementation of Runtime for testing
type MockRuntime struct {
	mu sync.RWMutex

	// Containers tracks the descriptors returned by Inspect, keyed by id
	Containers map[string]*Container

	// Running lists identifiers returned by ListRunning, in order
	Running []string

	// StatsResults maps container ids to predefined resource samples
	StatsResults map[string]*Stats

	// Errors allows injecting errors for specific operations.
	// Keys: "Ping", "ListRunning", "Inspect:<id>", "Stats:<id>"
	Errors map[string]error

	// CallLog records all method calls for verification
	CallLog []MockCall
}

// MockCall represents a recorded method call
type MockCall struct {
	Method string
	Args   []interface{}
}

// NewMockRuntime creates a new mock runtime
func NewMockRuntime() *MockRuntime {
	return &MockRuntime{
		Containers:   make(map[string]*Container),
		StatsResults: make(map[string]*Stats),
		Errors:       make(map[string]error),
		CallLog:      make([]MockCall, 0),
	}
}

func (m *MockRuntime) record(method string, args ...interface{}) {
	m.CallLog = append(m.CallLog, MockCall{Method: method, Args: args})
}

// SetError sets an error to be returned for a specific operation
func (m *MockRuntime) SetError(operation string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Errors[operation] = err
}

// SetStats sets the resource sample returned for a container
func (m *MockRuntime) SetStats(id string, s *Stats) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.StatsResults[id] = s
}

// AddContainer registers a descriptor and, when running, adds it to the
// running set.
func (m *MockRuntime) AddContainer(c *Container) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Containers[c.Name] = c
	if c.State == StateRunning {
		m.Running = append(m.Running, c.Name)
	}
}

// GetCallsFor returns all recorded calls for a specific method
func (m *MockRuntime) GetCallsFor(method string) []MockCall {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var calls []MockCall
	for _, call := range m.CallLog {
		if call.Method == method {
			calls = append(calls, call)
		}
	}
	return calls
}

// Reset clears all state
func (m *MockRuntime) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Containers = make(map[string]*Container)
	m.Running = nil
	m.StatsResults = make(map[string]*Stats)
	m.Errors = make(map[string]error)
	m.CallLog = make([]MockCall, 0)
}

// Name returns the runtime identifier
func (m *MockRuntime) Name() string {
	return "mock"
}

// Ping returns the injected "Ping" error, if any
func (m *MockRuntime) Ping(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.record("Ping")
	return m.Errors["Ping"]
}

// ListRunning returns the configured running set
func (m *MockRuntime) ListRunning(ctx context.Context) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.record("ListRunning")
	if err := m.Errors["ListRunning"]; err != nil {
		return nil, err
	}
	out := make([]string, len(m.Running))
	copy(out, m.Running)
	return out, nil
}

// Inspect returns the registered descriptor or ErrNotFound
func (m *MockRuntime) Inspect(ctx context.Context, id string) (*Container, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.record("Inspect", id)
	if err := m.Errors["Inspect:"+id]; err != nil {
		return nil, err
	}
	c, ok := m.Containers[id]
	if !ok {
		return nil, ErrNotFound
	}
	return c, nil
}

// Stats returns the configured sample or an injected error
func (m *MockRuntime) Stats(ctx context.Context, id string) (*Stats, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.record("Stats", id)
	if err := m.Errors["Stats:"+id]; err != nil {
		return nil, err
	}
	if s, ok := m.StatsResults[id]; ok {
		return s, nil
	}
	return nil, ErrNotFound
}
