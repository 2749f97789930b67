package storage

// Memory is an in-process Backend used by tests and as a fallback when no
// database file is wanted.
type Memory struct {
	records map[string]string
}

// NewMemory returns an empty in-memory backend.
func NewMemory() *Memory {
	return &Memory{records: make(map[string]string)}
}

func (m *Memory) Get(key string) (string, bool, error) {
	value, ok := m.records[key]
	return value, ok, nil
}

func (m *Memory) Set(key, value string) error {
	m.records[key] = value
	return nil
}

func (m *Memory) Delete(key string) error {
	delete(m.records, key)
	return nil
}

func (m *Memory) Close() error {
	return nil
}
