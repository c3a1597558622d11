package storage

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dr-lamia/med-nexus-portal/models"
)

func TestConsultationRoundTrip(t *testing.T) {
	store := NewConsultationStore()

	consultation := &models.GuidedConsultation{ID: "c1", UserID: "user123"}
	store.SaveGuided(consultation)

	got, ok := store.GetGuided("c1")
	require.True(t, ok)
	assert.Equal(t, "user123", got.UserID)
	assert.False(t, got.UpdatedAt.IsZero())
}

func TestSweepIdleRemovesOnlyStaleSessions(t *testing.T) {
	store := NewConsultationStore()

	store.SaveGuided(&models.GuidedConsultation{ID: "fresh"})
	store.SaveGuided(&models.GuidedConsultation{ID: "stale"})
	store.SaveChat(&models.ChatSession{ID: "stale-chat"})

	store.mu.Lock()
	store.guided["stale"].UpdatedAt = time.Now().Add(-2 * time.Hour)
	store.chats["stale-chat"].UpdatedAt = time.Now().Add(-2 * time.Hour)
	store.mu.Unlock()

	removed := store.SweepIdle(time.Hour)

	assert.Equal(t, 2, removed)
	_, ok := store.GetGuided("fresh")
	assert.True(t, ok)
	_, ok = store.GetGuided("stale")
	assert.False(t, ok)
	_, ok = store.GetChat("stale-chat")
	assert.False(t, ok)
}

func TestPrescriptionFilter(t *testing.T) {
	store := NewPrescriptionStore(seedPrescriptions())

	// Patient-pinned view.
	mine := store.Filter("P123", "")
	assert.Len(t, mine, 3)
	for _, p := range mine {
		assert.Equal(t, "P123", p.PatientID)
	}

	// Free-text search across name, medication and patient id.
	results := store.Filter("", "lisinopril")
	require.Len(t, results, 1)
	assert.Equal(t, "Jane Smith", results[0].PatientName)

	results = store.Filter("", "p789")
	require.Len(t, results, 1)
	assert.Equal(t, "Emma Wilson", results[0].PatientName)

	// Search is further narrowed by the patient pin.
	results = store.Filter("P123", "metformin")
	require.Len(t, results, 1)
	assert.Equal(t, models.PrescriptionStatusExpired, results[0].Status)
}
