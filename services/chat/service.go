// Package chat orchestrates the conversation surface: intent classification,
// the appointment-booking dialog, status lookups, and knowledge-base routing.
package chat

import (
	"context"
	"hash/fnv"
	"sync"

	"go.uber.org/zap"

	"medassist/models"
	"medassist/services/booking"
	"medassist/services/session"
	"medassist/utils"
)

// lockStripes is the size of the fixed session-lock pool. Distinct sessions
// hashing to the same stripe share a mutex, which only costs contention, not
// correctness.
const lockStripes = 64

// Service is the single entry point for a chat turn. Booking dialog state is
// loaded from and persisted to the session store around each turn; turns for
// the same session are serialized so state updates never interleave.
type Service struct {
	Sessions session.Store
	Flow     *booking.Flow
	Status   *StatusService
	Synth    *Synthesizer

	locks [lockStripes]sync.Mutex
}

func NewService(sessions session.Store, flow *booking.Flow, status *StatusService, synth *Synthesizer) *Service {
	return &Service{
		Sessions: sessions,
		Flow:     flow,
		Status:   status,
		Synth:    synth,
	}
}

// Ready reports whether the service has all its collaborators wired.
func (s *Service) Ready() bool {
	return s.Sessions != nil && s.Flow != nil && s.Status != nil && s.Synth != nil
}

func (s *Service) sessionLock(id string) *sync.Mutex {
	h := fnv.New32a()
	h.Write([]byte(id))
	return &s.locks[h.Sum32()%lockStripes]
}

// Handle processes one user message and returns the reply plus the context
// tag describing which subsystem produced it. An active booking dialog owns
// the turn outright; otherwise status checks outrank knowledge queries.
func (s *Service) Handle(ctx context.Context, sessionID, query string) (string, string, error) {
	lock := s.sessionLock(sessionID)
	lock.Lock()
	defer lock.Unlock()

	logger := utils.GetLogger().With(zap.String("sessionID", sessionID))

	state, err := s.Sessions.Get(ctx, sessionID)
	if err != nil {
		logger.Error("failed to load session state", zap.Error(err))
		return "", "", err
	}

	reply, err := s.Flow.Collect(ctx, &state.Booking, query)
	if err != nil {
		logger.Error("booking dialog failed", zap.Error(err))
		return "", "", err
	}
	if reply != "" {
		if err := s.Sessions.Put(ctx, sessionID, state); err != nil {
			logger.Error("failed to persist session state", zap.Error(err))
			return "", "", err
		}
		return reply, models.ContextBooking, nil
	}

	c := Classify(query)
	if c.Status {
		reply, err := s.Status.Check(ctx, query)
		if err != nil {
			logger.Error("status lookup failed", zap.Error(err))
			return "", "", err
		}
		return reply, models.ContextStatus, nil
	}

	return s.Synth.Route(ctx, query, c)
}
