package storage

import (
	"strings"
	"sync"

	"github.com/dr-lamia/med-nexus-portal/models"
)

// PrescriptionStore is the seeded prescription history.
type PrescriptionStore struct {
	mu            sync.RWMutex
	prescriptions []models.Prescription
}

func NewPrescriptionStore(seed []models.Prescription) *PrescriptionStore {
	return &PrescriptionStore{prescriptions: seed}
}

// Get returns the prescription with the given id.
func (s *PrescriptionStore) Get(id string) (*models.Prescription, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.prescriptions {
		if p.ID == id {
			out := p
			return &out, true
		}
	}
	return nil, false
}

// Filter returns prescriptions matching the free-text search over patient
// name, medication and patient id, optionally restricted to one patient.
func (s *PrescriptionStore) Filter(patientID, search string) []models.Prescription {
	s.mu.RLock()
	defer s.mu.RUnlock()

	needle := strings.ToLower(search)
	results := make([]models.Prescription, 0)
	for _, p := range s.prescriptions {
		if patientID != "" && p.PatientID != patientID {
			continue
		}
		if needle != "" {
			matchesSearch := strings.Contains(strings.ToLower(p.PatientName), needle) ||
				strings.Contains(strings.ToLower(p.Medication), needle) ||
				strings.Contains(strings.ToLower(p.PatientID), needle)
			if !matchesSearch {
				continue
			}
		}
		results = append(results, p)
	}
	return results
}
