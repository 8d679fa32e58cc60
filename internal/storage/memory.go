package storage

import (
	"context"
	"sort"
	"sync"

	"fitscape/internal/model"
)

type MemoryStore struct {
	mu         sync.RWMutex
	landscapes map[string]model.LandscapeRecord
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Init(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.landscapes = make(map[string]model.LandscapeRecord)
	return nil
}

func (s *MemoryStore) SaveLandscape(_ context.Context, record model.LandscapeRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.landscapes[record.ID] = record
	return nil
}

func (s *MemoryStore) GetLandscape(_ context.Context, id string) (model.LandscapeRecord, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	record, ok := s.landscapes[id]
	return record, ok, nil
}

func (s *MemoryStore) ListLandscapes(_ context.Context, limit int) ([]model.LandscapeRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	records := make([]model.LandscapeRecord, 0, len(s.landscapes))
	for _, record := range s.landscapes {
		records = append(records, record)
	}
	sort.Slice(records, func(i, j int) bool {
		if records[i].CreatedAtUTC != records[j].CreatedAtUTC {
			return records[i].CreatedAtUTC > records[j].CreatedAtUTC
		}
		return records[i].ID < records[j].ID
	})
	if limit > 0 && len(records) > limit {
		records = records[:limit]
	}
	return records, nil
}

func (s *MemoryStore) Reset(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.landscapes = make(map[string]model.LandscapeRecord)
	return nil
}
