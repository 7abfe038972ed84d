package store

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"agenda/internal/contact"
)

// Memory is an in-memory Store. It doubles as the test implementation and
// intentionally favors clarity over performance.
type Memory struct {
	mu      sync.RWMutex
	records map[string]contact.Record
	order   []string // insertion order, mirroring a collection's natural order
}

func NewMemory() *Memory {
	return &Memory{records: make(map[string]contact.Record)}
}

func (s *Memory) Insert(_ context.Context, rec contact.Record) (contact.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec.ID = primitive.NewObjectID()
	id := rec.ID.Hex()
	s.records[id] = rec
	s.order = append(s.order, id)
	return rec, nil
}

func (s *Memory) FindByID(_ context.Context, id string) (contact.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if rec, ok := s.records[id]; ok {
		return rec, nil
	}
	return contact.Record{}, ErrNotFound
}

func (s *Memory) FindByTelefono(_ context.Context, telefono string) (contact.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, id := range s.order {
		if rec := s.records[id]; rec.Telefono == telefono {
			return rec, nil
		}
	}
	return contact.Record{}, ErrNotFound
}

func (s *Memory) FindAll(_ context.Context) ([]contact.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	recs := make([]contact.Record, 0, len(s.order))
	for _, id := range s.order {
		recs = append(recs, s.records[id])
	}
	return recs, nil
}

func (s *Memory) Update(_ context.Context, id string, rec contact.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	existing, ok := s.records[id]
	if !ok {
		return ErrNotFound
	}
	existing.Name = rec.Name
	existing.Telefono = rec.Telefono
	existing.Country = rec.Country
	existing.Timezone = rec.Timezone
	s.records[id] = existing
	return nil
}

func (s *Memory) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.records[id]; !ok {
		return ErrNotFound
	}
	delete(s.records, id)
	for i, oid := range s.order {
		if oid == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}
