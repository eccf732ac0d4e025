package tabstore

import (
	"fmt"
	"sync"

	"github.com/haresh143heri/Ebasket-Return-App/internal/model"
)

// MemoryStore keeps tabs in process memory. Used by tests and by ephemeral
// runs where nothing should outlive the server.
type MemoryStore struct {
	mu   sync.RWMutex
	tabs map[string]*model.Table
}

// NewMemory creates a memory store with every managed tab present and empty.
func NewMemory() *MemoryStore {
	s := &MemoryStore{tabs: make(map[string]*model.Table)}
	for _, tab := range Tabs {
		s.tabs[tab] = &model.Table{}
	}
	return s
}

// CreateIfMissing ensures the tab exists.
func (s *MemoryStore) CreateIfMissing(tab string) error {
	if !KnownTab(tab) {
		return fmt.Errorf("%w: %s", ErrUnknownTab, tab)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.tabs[tab]; !ok {
		s.tabs[tab] = &model.Table{}
	}
	return nil
}

// ReadAll returns a copy of the tab so callers can't mutate stored state.
func (s *MemoryStore) ReadAll(tab string) (*model.Table, error) {
	if !KnownTab(tab) {
		return nil, fmt.Errorf("%w: %s", ErrUnknownTab, tab)
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	src := s.tabs[tab]
	out := &model.Table{}
	if src.Header != nil {
		out.Header = append([]string(nil), src.Header...)
	}
	for _, row := range src.Rows {
		out.Rows = append(out.Rows, append([]string(nil), row...))
	}
	return out, nil
}

// AppendHeaderIfEmpty sets the header only when the tab has none yet.
func (s *MemoryStore) AppendHeaderIfEmpty(tab string, header []string) error {
	if !KnownTab(tab) {
		return fmt.Errorf("%w: %s", ErrUnknownTab, tab)
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	t := s.tabs[tab]
	if t.Header == nil {
		t.Header = append([]string(nil), header...)
	}
	return nil
}

// AppendRows appends copies of rows to the tab.
func (s *MemoryStore) AppendRows(tab string, rows [][]string) error {
	if !KnownTab(tab) {
		return fmt.Errorf("%w: %s", ErrUnknownTab, tab)
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	t := s.tabs[tab]
	for _, row := range rows {
		t.Rows = append(t.Rows, append([]string(nil), row...))
	}
	return nil
}

// OverwriteAll replaces the tab wholesale.
func (s *MemoryStore) OverwriteAll(tab string, header []string, rows [][]string) error {
	if !KnownTab(tab) {
		return fmt.Errorf("%w: %s", ErrUnknownTab, tab)
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	t := &model.Table{}
	if header != nil {
		t.Header = append([]string(nil), header...)
		for _, row := range rows {
			t.Rows = append(t.Rows, append([]string(nil), row...))
		}
	}
	s.tabs[tab] = t
	return nil
}

// Close is a no-op for the memory store.
func (s *MemoryStore) Close() error { return nil }
