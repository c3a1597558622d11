package storage

import (
	"sync"

	"github.com/dr-lamia/med-nexus-portal/models"
)

// AppointmentStore is the seeded list of upcoming appointments.
type AppointmentStore struct {
	mu           sync.RWMutex
	appointments []models.Appointment
}

func NewAppointmentStore(seed []models.Appointment) *AppointmentStore {
	return &AppointmentStore{appointments: seed}
}

// List returns every upcoming appointment.
func (s *AppointmentStore) List() []models.Appointment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Appointment, len(s.appointments))
	copy(out, s.appointments)
	return out
}
