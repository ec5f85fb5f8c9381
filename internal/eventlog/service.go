package eventlog

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/osse101/TavernSim_Go/internal/clock"
	"github.com/osse101/TavernSim_Go/internal/domain"
	"github.com/osse101/TavernSim_Go/internal/event"
	"github.com/osse101/TavernSim_Go/internal/logger"
)

// Service journals every notification published on the bus
type Service interface {
	// Subscribe registers the journal for every notification type
	Subscribe(bus event.Bus) error

	// Recent returns up to limit entries, newest last
	Recent(ctx context.Context, filter EventFilter) ([]Entry, error)

	// CleanupOldEvents drops entries older than retention
	CleanupOldEvents(ctx context.Context, retention time.Duration) (int, error)
}

type service struct {
	repo  Repository
	clock clock.Clock
	seq   atomic.Uint64
}

// NewService creates a journal over repo
func NewService(repo Repository, clk clock.Clock) Service {
	if clk == nil {
		clk = clock.RealClock{}
	}
	return &service{repo: repo, clock: clk}
}

func (s *service) Subscribe(bus event.Bus) error {
	for _, et := range domain.AllEventTypes {
		bus.Subscribe(event.Type(et), s.handleEvent)
	}
	return nil
}

func (s *service) handleEvent(ctx context.Context, evt event.Event) error {
	entry := Entry{
		Seq:        s.seq.Add(1),
		Type:       string(evt.Type),
		Payload:    evt.Payload,
		RecordedAt: s.clock.Now(),
	}

	log := logger.FromContext(ctx)
	if err := s.repo.Append(ctx, entry); err != nil {
		log.Error(LogMsgFailedToLogEvent, LogFieldError, err, LogFieldType, evt.Type)
		return err
	}

	log.Debug(LogMsgEventLogged, LogFieldType, evt.Type, LogFieldSeq, entry.Seq)
	return nil
}

func (s *service) Recent(ctx context.Context, filter EventFilter) ([]Entry, error) {
	return s.repo.Query(ctx, filter)
}

func (s *service) CleanupOldEvents(ctx context.Context, retention time.Duration) (int, error) {
	return s.repo.DeleteBefore(ctx, s.clock.Now().Add(-retention))
}
