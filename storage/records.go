package storage

import (
	"sync"

	"github.com/dr-lamia/med-nexus-portal/models"
)

// RecordStore holds each user's pending medical-record upload queue. Files
// are metadata only; completing an upload clears the queue.
type RecordStore struct {
	mu      sync.RWMutex
	pending map[string][]models.RecordFile
}

func NewRecordStore() *RecordStore {
	return &RecordStore{pending: make(map[string][]models.RecordFile)}
}

// Queue appends files to the user's pending list and returns the new list.
func (s *RecordStore) Queue(userID string, files []models.RecordFile) []models.RecordFile {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending[userID] = append(s.pending[userID], files...)
	out := make([]models.RecordFile, len(s.pending[userID]))
	copy(out, s.pending[userID])
	return out
}

// Pending returns the user's queued files.
func (s *RecordStore) Pending(userID string) []models.RecordFile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.RecordFile, len(s.pending[userID]))
	copy(out, s.pending[userID])
	return out
}

// Clear empties the user's queue and returns how many files were cleared.
func (s *RecordStore) Clear(userID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	count := len(s.pending[userID])
	delete(s.pending, userID)
	return count
}
