package services

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"euston-server/dao/redis"
	"euston-server/forecast"
	"euston-server/models"
)

// SessionService owns the process-wide analysis session: the current
// weekly predictions, their metrics, and the uploaded roster. The core
// algorithms never touch this state; all mutation funnels through here
// under a single lock.
type SessionService struct {
	mu      sync.RWMutex
	dao     *redis.SessionDAO
	current *models.SessionState
}

// NewSessionService starts a fresh session seeded with the default
// weekly predictions, so day analysis works before any training run.
func NewSessionService(dao *redis.SessionDAO) *SessionService {
	s := &SessionService{
		dao: dao,
		current: &models.SessionState{
			ID:                uuid.NewString(),
			WeeklyPredictions: forecast.DefaultWeeklyPredictions.Clone(),
			CreatedAt:         time.Now().UTC(),
		},
	}
	s.persist()
	return s
}

// Current returns a snapshot of the session state.
func (s *SessionService) Current() models.SessionState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	snapshot := *s.current
	snapshot.WeeklyPredictions = s.current.WeeklyPredictions.Clone()
	snapshot.Roster = s.current.Roster.Clone()
	return snapshot
}

// SetPredictions replaces the session's predictions and metrics after a
// successful training run. Failed runs must not call this: the previous
// predictions stay in place.
func (s *SessionService) SetPredictions(p models.WeeklyPrediction, m *models.ModelMetrics) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current.WeeklyPredictions = p.Clone()
	s.current.Metrics = m
	s.persist()
}

// SetRoster replaces the session's roster.
func (s *SessionService) SetRoster(r models.Roster) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current.Roster = r
	s.persist()
}

// Roster returns the session's roster, or an error when none has been
// uploaded yet.
func (s *SessionService) Roster() (models.Roster, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if len(s.current.Roster) == 0 {
		return nil, fmt.Errorf("no roster uploaded")
	}
	return s.current.Roster, nil
}

// persist writes the session through to the store. Store failures are
// logged and swallowed: the in-memory session is the source of truth.
func (s *SessionService) persist() {
	if s.dao == nil {
		return
	}
	if err := s.dao.Upsert(s.current); err != nil {
		log.WithError(err).Warn("[SessionService] Failed to persist session")
	}
}
