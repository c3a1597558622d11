package storage

import (
	"strings"
	"sync"

	"github.com/dr-lamia/med-nexus-portal/models"
)

// DoctorStore is the seeded doctor directory.
type DoctorStore struct {
	mu      sync.RWMutex
	doctors []models.Doctor
}

func NewDoctorStore(seed []models.Doctor) *DoctorStore {
	return &DoctorStore{doctors: seed}
}

// List returns every doctor in the directory.
func (s *DoctorStore) List() []models.Doctor {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Doctor, len(s.doctors))
	copy(out, s.doctors)
	return out
}

// Get returns the doctor with the given id.
func (s *DoctorStore) Get(id string) (*models.Doctor, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, doctor := range s.doctors {
		if doctor.ID == id {
			d := doctor
			return &d, true
		}
	}
	return nil, false
}

// Search filters the directory with case-insensitive substring matching on
// each populated query field, ANDed together. An empty query matches all.
func (s *DoctorStore) Search(query models.DoctorSearchQuery) []models.Doctor {
	s.mu.RLock()
	defer s.mu.RUnlock()

	results := make([]models.Doctor, 0)
	for _, doctor := range s.doctors {
		matchesSpecialty := query.Specialty == "" || containsFold(doctor.Specialty, query.Specialty)
		matchesLocation := query.Location == "" || containsFold(doctor.Location, query.Location)
		matchesName := query.Name == "" || containsFold(doctor.Name, query.Name)

		if matchesSpecialty && matchesLocation && matchesName {
			results = append(results, doctor)
		}
	}
	return results
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}
