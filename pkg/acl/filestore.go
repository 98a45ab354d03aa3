package acl

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/fxamacker/cbor/v2"
)

// encMode is the CBOR encoder mode for persisted ACL state.
// Configured for deterministic encoding with integer keys.
var encMode cbor.EncMode

// decMode is the CBOR decoder mode for persisted ACL state.
var decMode cbor.DecMode

func init() {
	var err error

	encOpts := cbor.EncOptions{
		Sort:          cbor.SortCanonical, // Deterministic key ordering
		IndefLength:   cbor.IndefLengthForbidden,
		NilContainers: cbor.NilContainerAsNull,
	}
	encMode, err = encOpts.EncMode()
	if err != nil {
		panic(fmt.Sprintf("failed to create CBOR encoder mode: %v", err))
	}

	// Lenient decoding for forward compatibility with newer file versions
	decOpts := cbor.DecOptions{
		DupMapKey:         cbor.DupMapKeyQuiet,
		IndefLength:       cbor.IndefLengthAllowed,
		ExtraReturnErrors: cbor.ExtraDecErrorNone,
	}
	decMode, err = decOpts.DecMode()
	if err != nil {
		panic(fmt.Sprintf("failed to create CBOR decoder mode: %v", err))
	}
}

// fileFormatVersion is the current version of the ACL file format.
const fileFormatVersion = 1

// aclFile is the on-disk layout of the persisted ACL.
type aclFile struct {
	Version int                     `cbor:"1,keyasint"`
	Fabrics map[FabricIndex][]Entry `cbor:"2,keyasint,omitempty"`
}

// FileStore is a Store that persists ACL entries to a single CBOR file.
// Writes go through a temporary file and rename, so a crash mid-write
// leaves the previous file intact.
type FileStore struct {
	mu   sync.Mutex
	path string
}

// NewFileStore creates a file-backed ACL store at the given path.
// The file is created on first write; a missing file reads as empty.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Path returns the file path backing this store.
func (s *FileStore) Path() string {
	return s.path
}

// Load returns all entries for a fabric.
func (s *FileStore) Load(fabricIndex FabricIndex) ([]Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := s.read()
	if err != nil {
		return nil, err
	}
	return f.Fabrics[fabricIndex], nil
}

// LoadAll returns the entries of every fabric, keyed by fabric index.
func (s *FileStore) LoadAll() (map[FabricIndex][]Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := s.read()
	if err != nil {
		return nil, err
	}
	// read decodes a fresh map on every call, so handing it out is safe.
	return f.Fabrics, nil
}

// Save appends an entry and returns its index within the fabric's list.
func (s *FileStore) Save(fabricIndex FabricIndex, entry Entry) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := s.read()
	if err != nil {
		return -1, err
	}

	index := len(f.Fabrics[fabricIndex])
	f.Fabrics[fabricIndex] = append(f.Fabrics[fabricIndex], entry)

	if err := s.write(f); err != nil {
		return -1, err
	}
	return index, nil
}

// Update replaces the entry at the given index.
func (s *FileStore) Update(fabricIndex FabricIndex, index int, entry Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := s.read()
	if err != nil {
		return err
	}

	entries := f.Fabrics[fabricIndex]
	if index < 0 || index >= len(entries) {
		return ErrIndexOutOfRange
	}
	entries[index] = entry

	return s.write(f)
}

// Delete removes the entry at the given index.
func (s *FileStore) Delete(fabricIndex FabricIndex, index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := s.read()
	if err != nil {
		return err
	}

	entries := f.Fabrics[fabricIndex]
	if index < 0 || index >= len(entries) {
		return ErrIndexOutOfRange
	}

	f.Fabrics[fabricIndex] = append(entries[:index], entries[index+1:]...)
	if len(f.Fabrics[fabricIndex]) == 0 {
		delete(f.Fabrics, fabricIndex)
	}

	return s.write(f)
}

// DeleteAllForFabric removes every entry belonging to a fabric.
func (s *FileStore) DeleteAllForFabric(fabricIndex FabricIndex) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := s.read()
	if err != nil {
		return err
	}

	if _, ok := f.Fabrics[fabricIndex]; !ok {
		return nil
	}
	delete(f.Fabrics, fabricIndex)

	return s.write(f)
}

// Count returns the number of entries for a fabric.
func (s *FileStore) Count(fabricIndex FabricIndex) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := s.read()
	if err != nil {
		return 0, err
	}
	return len(f.Fabrics[fabricIndex]), nil
}

// read loads the ACL file, treating a missing file as empty state.
// Must be called with s.mu held.
func (s *FileStore) read() (*aclFile, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return &aclFile{
			Version: fileFormatVersion,
			Fabrics: make(map[FabricIndex][]Entry),
		}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("acl: read store file: %w", err)
	}

	f := &aclFile{}
	if err := decMode.Unmarshal(data, f); err != nil {
		return nil, fmt.Errorf("acl: decode store file: %w", err)
	}
	if f.Fabrics == nil {
		f.Fabrics = make(map[FabricIndex][]Entry)
	}
	return f, nil
}

// write encodes and atomically replaces the ACL file.
// Must be called with s.mu held.
func (s *FileStore) write(f *aclFile) error {
	f.Version = fileFormatVersion

	data, err := encMode.Marshal(f)
	if err != nil {
		return fmt.Errorf("acl: encode store file: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("acl: create store directory: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("acl: write store file: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("acl: replace store file: %w", err)
	}
	return nil
}

var _ Store = (*FileStore)(nil)
