package memory

import (
	"context"
	"sync"

	"dietpet/internal/ports/storage"
)

type kvStore struct {
	mu   sync.RWMutex
	data map[string]string
}

// NewKV crea un KV en memoria. Se usa en tests y como fallback
// cuando el archivo sqlite no se puede abrir (la app nunca debe
// fallar al arrancar por el storage).
func NewKV() storage.KV {
	return &kvStore{
		data: make(map[string]string),
	}
}

func (s *kvStore) Get(ctx context.Context, key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.data[key]
	return v, ok, nil
}

func (s *kvStore) Set(ctx context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data[key] = value
	return nil
}

func (s *kvStore) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.data, key)
	return nil
}
