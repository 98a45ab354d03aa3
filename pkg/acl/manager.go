package acl

import (
	"errors"
	"sync"
)

// Manager errors.
var (
	ErrEntryNotFound   = errors.New("acl: entry not found")
	ErrTooManyEntries  = errors.New("acl: too many entries for fabric")
	ErrTooManySubjects = errors.New("acl: too many subjects in entry")
	ErrTooManyTargets  = errors.New("acl: too many targets in entry")
	ErrFabricNotFound  = errors.New("acl: fabric not found")
	ErrIndexOutOfRange = errors.New("acl: index out of range")
)

// Resource minimums from Spec 9.10.5 that double as defaults.
const (
	// DefaultMaxEntriesPerFabric is the minimum required by spec.
	DefaultMaxEntriesPerFabric = 4

	// DefaultMaxSubjectsPerEntry is the minimum required by spec.
	DefaultMaxSubjectsPerEntry = 4

	// DefaultMaxTargetsPerEntry is the minimum required by spec.
	DefaultMaxTargetsPerEntry = 3
)

// Store persists ACL entries per fabric. Implementations may keep the
// entries in memory, on disk, or behind any other storage.
type Store interface {
	// Load returns all entries for a fabric, empty if none exist.
	Load(fabricIndex FabricIndex) ([]Entry, error)

	// LoadAll returns the entries of every fabric, keyed by fabric index.
	LoadAll() (map[FabricIndex][]Entry, error)

	// Save appends an entry and returns its index within the fabric's list.
	Save(fabricIndex FabricIndex, entry Entry) (int, error)

	// Update replaces the entry at the given index.
	Update(fabricIndex FabricIndex, index int, entry Entry) error

	// Delete removes the entry at the given index.
	Delete(fabricIndex FabricIndex, index int) error

	// DeleteAllForFabric removes every entry belonging to a fabric.
	DeleteAllForFabric(fabricIndex FabricIndex) error

	// Count returns the number of entries for a fabric.
	Count(fabricIndex FabricIndex) (int, error)
}

// MemoryStore keeps ACL entries in memory. It backs managers that have
// no persistence requirement and most tests.
type MemoryStore struct {
	entries map[FabricIndex][]Entry
	mu      sync.RWMutex
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		entries: make(map[FabricIndex][]Entry),
	}
}

// Load returns a copy of the fabric's entries.
func (s *MemoryStore) Load(fabricIndex FabricIndex) ([]Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries := s.entries[fabricIndex]
	out := make([]Entry, len(entries))
	copy(out, entries)
	return out, nil
}

// LoadAll returns a copy of every fabric's entries.
func (s *MemoryStore) LoadAll() (map[FabricIndex][]Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[FabricIndex][]Entry, len(s.entries))
	for fi, entries := range s.entries {
		copied := make([]Entry, len(entries))
		copy(copied, entries)
		out[fi] = copied
	}
	return out, nil
}

// Save appends an entry and returns its index.
func (s *MemoryStore) Save(fabricIndex FabricIndex, entry Entry) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	index := len(s.entries[fabricIndex])
	s.entries[fabricIndex] = append(s.entries[fabricIndex], entry)
	return index, nil
}

// Update replaces the entry at the given index.
func (s *MemoryStore) Update(fabricIndex FabricIndex, index int, entry Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if index < 0 || index >= len(s.entries[fabricIndex]) {
		return ErrIndexOutOfRange
	}
	s.entries[fabricIndex][index] = entry
	return nil
}

// Delete removes the entry at the given index.
func (s *MemoryStore) Delete(fabricIndex FabricIndex, index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries := s.entries[fabricIndex]
	if index < 0 || index >= len(entries) {
		return ErrIndexOutOfRange
	}

	s.entries[fabricIndex] = append(entries[:index], entries[index+1:]...)
	return nil
}

// DeleteAllForFabric removes every entry belonging to a fabric.
func (s *MemoryStore) DeleteAllForFabric(fabricIndex FabricIndex) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.entries, fabricIndex)
	return nil
}

// Count returns the number of entries for a fabric.
func (s *MemoryStore) Count(fabricIndex FabricIndex) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.entries[fabricIndex]), nil
}

// Manager couples a Store with a Checker: mutations go through the store
// and the checker is rebuilt from it, so checks always see the persisted
// ACL state.
type Manager struct {
	checker *Checker
	store   Store
	mu      sync.RWMutex

	maxEntriesPerFabric int
	maxSubjectsPerEntry int
	maxTargetsPerEntry  int
}

// ManagerOption configures a Manager.
type ManagerOption func(*Manager)

// WithMaxEntriesPerFabric overrides the per-fabric entry limit.
func WithMaxEntriesPerFabric(n int) ManagerOption {
	return func(m *Manager) {
		m.maxEntriesPerFabric = n
	}
}

// WithMaxSubjectsPerEntry overrides the per-entry subject limit.
func WithMaxSubjectsPerEntry(n int) ManagerOption {
	return func(m *Manager) {
		m.maxSubjectsPerEntry = n
	}
}

// WithMaxTargetsPerEntry overrides the per-entry target limit.
func WithMaxTargetsPerEntry(n int) ManagerOption {
	return func(m *Manager) {
		m.maxTargetsPerEntry = n
	}
}

// NewManager creates an ACL manager.
// A nil store defaults to a MemoryStore; a nil resolver defaults to
// NullDeviceTypeResolver.
func NewManager(store Store, resolver DeviceTypeResolver, opts ...ManagerOption) *Manager {
	if store == nil {
		store = NewMemoryStore()
	}

	m := &Manager{
		checker:             NewChecker(resolver),
		store:               store,
		maxEntriesPerFabric: DefaultMaxEntriesPerFabric,
		maxSubjectsPerEntry: DefaultMaxSubjectsPerEntry,
		maxTargetsPerEntry:  DefaultMaxTargetsPerEntry,
	}

	for _, opt := range opts {
		opt(m)
	}

	return m
}

// Check performs an access control check against the loaded entries.
func (m *Manager) Check(subject SubjectDescriptor, target RequestPath, privilege Privilege) Result {
	return m.checker.Check(subject, target, privilege)
}

// CreateEntry validates and stores a new ACL entry for the fabric.
// Returns the index of the new entry within the fabric's entry list.
func (m *Manager) CreateEntry(fabricIndex FabricIndex, entry Entry) (int, error) {
	entry.FabricIndex = fabricIndex

	if err := ValidateEntry(&entry); err != nil {
		return -1, err
	}
	if len(entry.Subjects) > m.maxSubjectsPerEntry {
		return -1, ErrTooManySubjects
	}
	if len(entry.Targets) > m.maxTargetsPerEntry {
		return -1, ErrTooManyTargets
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	count, err := m.store.Count(fabricIndex)
	if err != nil {
		return -1, err
	}
	if count >= m.maxEntriesPerFabric {
		return -1, ErrTooManyEntries
	}

	index, err := m.store.Save(fabricIndex, entry)
	if err != nil {
		return -1, err
	}

	if err := m.reloadChecker(); err != nil {
		return -1, err
	}

	return index, nil
}

// UpdateEntry validates and replaces the entry at the given index.
func (m *Manager) UpdateEntry(fabricIndex FabricIndex, index int, entry Entry) error {
	entry.FabricIndex = fabricIndex

	if err := ValidateEntry(&entry); err != nil {
		return err
	}
	if len(entry.Subjects) > m.maxSubjectsPerEntry {
		return ErrTooManySubjects
	}
	if len(entry.Targets) > m.maxTargetsPerEntry {
		return ErrTooManyTargets
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.store.Update(fabricIndex, index, entry); err != nil {
		return err
	}

	return m.reloadChecker()
}

// DeleteEntry removes the entry at the given index.
func (m *Manager) DeleteEntry(fabricIndex FabricIndex, index int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.store.Delete(fabricIndex, index); err != nil {
		return err
	}

	return m.reloadChecker()
}

// GetEntries returns all entries for a fabric.
func (m *Manager) GetEntries(fabricIndex FabricIndex) ([]Entry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.store.Load(fabricIndex)
}

// GetEntry returns the entry at the given index.
func (m *Manager) GetEntry(fabricIndex FabricIndex, index int) (*Entry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	entries, err := m.store.Load(fabricIndex)
	if err != nil {
		return nil, err
	}

	if index < 0 || index >= len(entries) {
		return nil, ErrEntryNotFound
	}

	return &entries[index], nil
}

// GetEntryCount returns the number of entries for a fabric.
func (m *Manager) GetEntryCount(fabricIndex FabricIndex) (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.store.Count(fabricIndex)
}

// DeleteAllForFabric removes every entry belonging to a fabric.
// Called when a fabric is removed from the node.
func (m *Manager) DeleteAllForFabric(fabricIndex FabricIndex) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.store.DeleteAllForFabric(fabricIndex); err != nil {
		return err
	}

	return m.reloadChecker()
}

// LoadFromStore rebuilds the checker from persisted entries.
// Call after constructing a manager over a store that already has data.
func (m *Manager) LoadFromStore() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.reloadChecker()
}

// reloadChecker gathers the entries of every fabric from the store and
// swaps them into the checker. Must be called with m.mu held.
func (m *Manager) reloadChecker() error {
	byFabric, err := m.store.LoadAll()
	if err != nil {
		return err
	}

	// Fixed iteration order keeps first-match checks deterministic.
	var all []Entry
	for fi := FabricIndexMin; fi <= FabricIndexMax; fi++ {
		all = append(all, byFabric[fi]...)
	}

	m.checker.SetEntries(all)
	return nil
}
