package testutil

import (
	"clarity/internal/gateway"
	"clarity/internal/providers"
	"context"
	"fmt"
	"sync"
	"time"
)

// MockLogger implements providers.Logger and records calls.
type MockLogger struct {
	mu   sync.Mutex
	Logs []LogEntry
}

type LogEntry struct {
	Level  string
	Type   providers.TypeEnum
	Format string
	Args   []interface{}
}

func (e LogEntry) Message() string {
	return fmt.Sprintf(e.Format, e.Args...)
}

func (m *MockLogger) record(level string, t providers.TypeEnum, format string, args ...interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Logs = append(m.Logs, LogEntry{Level: level, Type: t, Format: format, Args: args})
}

func (m *MockLogger) Errorf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("error", t, format, args...)
}
func (m *MockLogger) Warnf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("warn", t, format, args...)
}
func (m *MockLogger) Debugf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("debug", t, format, args...)
}
func (m *MockLogger) Infof(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("info", t, format, args...)
}
func (m *MockLogger) Fatalf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("fatal", t, format, args...)
}
func (m *MockLogger) Close() {}

// Entries returns a copy of the recorded entries at the given level.
func (m *MockLogger) Entries(level string) []LogEntry {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []LogEntry
	for _, e := range m.Logs {
		if e.Level == level {
			out = append(out, e)
		}
	}
	return out
}

// MockMetrics implements providers.MetricsProviderInterface and counts ledger events.
type MockMetrics struct {
	mu                 sync.Mutex
	Events             map[string]int
	Swept              int
	PersistenceCalls   int
	CacheHits          int
	CacheMisses        int
	RequestStatusCodes []int
}

func NewMockMetrics() *MockMetrics {
	return &MockMetrics{Events: make(map[string]int)}
}

func (m *MockMetrics) IncRequestsTotal(_ string, status int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.RequestStatusCodes = append(m.RequestStatusCodes, status)
}
func (m *MockMetrics) ObserveRequestDuration(_ string, _ time.Duration) {}
func (m *MockMetrics) IncCacheHits(_ string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CacheHits++
}
func (m *MockMetrics) IncCacheMisses(_ string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CacheMisses++
}
func (m *MockMetrics) ObservePersistenceDuration(_ time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.PersistenceCalls++
}
func (m *MockMetrics) IncLedgerEvent(event string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Events[event]++
}
func (m *MockMetrics) AddSweptSubscriptions(n int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Swept += n
}

func (m *MockMetrics) EventCount(event string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.Events[event]
}

// MockCache implements providers.CacheProviderInterface.
type MockCache struct {
	mu   sync.Mutex
	Data map[string][]byte
}

func NewMockCache() *MockCache {
	return &MockCache{Data: make(map[string][]byte)}
}

func (m *MockCache) Get(key string) ([]byte, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	val, ok := m.Data[key]
	return val, ok
}

func (m *MockCache) Set(key string, value []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Data[key] = value
}

// MockCompressor implements interfaces.CompressorInterface with injectable behavior.
type MockCompressor struct {
	CompressFn   func([]byte) ([]byte, error)
	DecompressFn func([]byte) ([]byte, error)
}

func (m *MockCompressor) Compress(val []byte) ([]byte, error) {
	if m.CompressFn != nil {
		return m.CompressFn(val)
	}
	out := make([]byte, len(val))
	copy(out, val)
	return out, nil
}

func (m *MockCompressor) Decompress(val []byte) ([]byte, error) {
	if m.DecompressFn != nil {
		return m.DecompressFn(val)
	}
	out := make([]byte, len(val))
	copy(out, val)
	return out, nil
}

// MockRegistry implements gateway.RegistryInterface. Submissions are recorded;
// Err, when set, fails every call. OnSubmit runs after a confirmed submission,
// before Submit returns.
type MockRegistry struct {
	mu       sync.Mutex
	Err      error
	Calls    []gateway.TxHandle
	OnSubmit func(kind gateway.TxKind)
	seq      int
}

func (m *MockRegistry) Submit(ctx context.Context, kind gateway.TxKind, from string) (gateway.TxHandle, error) {
	m.mu.Lock()
	if err := ctx.Err(); err != nil {
		m.mu.Unlock()
		return gateway.TxHandle{}, err
	}
	if m.Err != nil {
		m.mu.Unlock()
		return gateway.TxHandle{}, m.Err
	}
	m.seq++
	tx := gateway.TxHandle{Hash: fmt.Sprintf("0x%064x", m.seq), Kind: kind, From: from}
	m.Calls = append(m.Calls, tx)
	hook := m.OnSubmit
	m.mu.Unlock()

	if hook != nil {
		hook(kind)
	}
	return tx, nil
}

func (m *MockRegistry) Kinds() []gateway.TxKind {
	m.mu.Lock()
	defer m.mu.Unlock()
	kinds := make([]gateway.TxKind, len(m.Calls))
	for i, c := range m.Calls {
		kinds[i] = c.Kind
	}
	return kinds
}

// MockContentStore wraps the in-memory gateway store; PutErr fails writes.
type MockContentStore struct {
	gateway.ContentStoreInterface
	PutErr error
}

func NewMockContentStore() *MockContentStore {
	return &MockContentStore{ContentStoreInterface: gateway.NewContentStore()}
}

func (m *MockContentStore) Put(ctx context.Context, blob []byte) (string, error) {
	if m.PutErr != nil {
		return "", m.PutErr
	}
	return m.ContentStoreInterface.Put(ctx, blob)
}
