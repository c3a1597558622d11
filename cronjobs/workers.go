package cronjobs

import (
	"time"

	"github.com/go-co-op/gocron"

	"github.com/dr-lamia/med-nexus-portal/configuration"
	"github.com/dr-lamia/med-nexus-portal/logger"
	"github.com/dr-lamia/med-nexus-portal/storage"
)

// SessionSweeper periodically clears idle consultations and expired
// in-memory sessions so abandoned wizards don't pile up.
type SessionSweeper struct {
	Consultations *storage.ConsultationStore
	Sessions      storage.SessionStore
}

func NewSessionSweeper(consultations *storage.ConsultationStore, sessions storage.SessionStore) *SessionSweeper {
	return &SessionSweeper{
		Consultations: consultations,
		Sessions:      sessions,
	}
}

// StartSweeperCron starts the background sweep on a fixed schedule.
func (s *SessionSweeper) StartSweeperCron() *gocron.Scheduler {
	scheduler := gocron.NewScheduler(time.Local)

	scheduler.Every(5).Minutes().Do(func() {
		s.Sweep()
	})

	scheduler.StartAsync()
	logger.WithComponent("cronjobs").Info("session sweeper cron job started")

	return scheduler
}

// Sweep removes idle consultations and, for the memory backend, expired
// sessions. Redis expires its own keys via TTL.
func (s *SessionSweeper) Sweep() {
	removed := s.Consultations.SweepIdle(configuration.ConsultationTTL())
	if removed > 0 {
		logger.WithComponent("cronjobs").WithField("removed", removed).Info("swept idle consultations")
	}

	if memory, ok := s.Sessions.(*storage.MemorySessionStore); ok {
		expired := memory.SweepExpired()
		if expired > 0 {
			logger.WithComponent("cronjobs").WithField("removed", expired).Info("swept expired sessions")
		}
	}
}
