package storage

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"sync"
	"time"
)

// MemoryStore keeps objects in process memory. It backs local development
// (STORAGE_DRIVER=memory) and tests.
type MemoryStore struct {
	mu      sync.Mutex
	objects map[string]MemoryObject
}

type MemoryObject struct {
	ContentType string
	Data        []byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{objects: make(map[string]MemoryObject)}
}

func (s *MemoryStore) Put(ctx context.Context, objectPath, contentType string, r io.Reader, size int64) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.objects[objectPath] = MemoryObject{ContentType: contentType, Data: data}
	return nil
}

func (s *MemoryStore) SignedURL(ctx context.Context, objectPath string, ttl time.Duration) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.objects[objectPath]; !ok {
		return "", fmt.Errorf("object %q not found", objectPath)
	}
	expires := time.Now().Add(ttl).Unix()
	return fmt.Sprintf("memory://%s?expires=%d", url.PathEscape(objectPath), expires), nil
}

func (s *MemoryStore) Remove(ctx context.Context, objectPath string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.objects, objectPath)
	return nil
}

// Object returns a stored object.
func (s *MemoryStore) Object(objectPath string) (MemoryObject, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	o, ok := s.objects[objectPath]
	return o, ok
}

// Len reports how many objects are stored.
func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.objects)
}
