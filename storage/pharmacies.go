package storage

import (
	"sync"

	"github.com/dr-lamia/med-nexus-portal/models"
)

// PharmacyStore is the seeded nearby-pharmacy directory.
type PharmacyStore struct {
	mu         sync.RWMutex
	pharmacies []models.Pharmacy
}

func NewPharmacyStore(seed []models.Pharmacy) *PharmacyStore {
	return &PharmacyStore{pharmacies: seed}
}

// List returns every pharmacy in the directory.
func (s *PharmacyStore) List() []models.Pharmacy {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Pharmacy, len(s.pharmacies))
	copy(out, s.pharmacies)
	return out
}
