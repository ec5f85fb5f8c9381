package gamestate

import (
	"context"
	"fmt"

	"github.com/osse101/TavernSim_Go/internal/domain"
	"github.com/osse101/TavernSim_Go/internal/event"
	"github.com/osse101/TavernSim_Go/internal/logger"
)

// Now returns the clock as an absolute game time.
func (s *State) Now() domain.GameTime {
	return s.data.Time.Now()
}

// TimeOfDay returns SpawnDay between 06:00 and 17:59, SpawnNight otherwise.
func (s *State) TimeOfDay() domain.SpawnTime {
	h := s.data.Time.Hour
	if h >= DayStartHour && h < DayEndHour {
		return domain.SpawnDay
	}
	return domain.SpawnNight
}

// SetPaused toggles the pause flag read by the clock tick job.
func (s *State) SetPaused(paused bool) {
	s.data.Time.Paused = paused
}

// SetSpeed sets the clock speed multiplier.
func (s *State) SetSpeed(speed float64) error {
	if speed <= 0 {
		return fmt.Errorf("%w: speed must be positive, got %v", domain.ErrInvalidInput, speed)
	}
	s.data.Time.Speed = speed
	return nil
}

// AdvanceTime moves the clock forward. Every day boundary crossed runs its
// own DailyReset and NewDay, in order, before time.advanced fires once.
func (s *State) AdvanceTime(ctx context.Context, minutes int) {
	if minutes <= 0 {
		return
	}
	t := &s.data.Time
	total := t.Hour*domain.MinutesPerHour + t.Minute + minutes
	days := total / domain.MinutesPerDay
	rest := total % domain.MinutesPerDay

	for i := 0; i < days; i++ {
		t.Day++
		t.Hour, t.Minute = 0, 0
		s.DailyReset(ctx)
		s.NewDay(ctx)
	}

	t.Hour = rest / domain.MinutesPerHour
	t.Minute = rest % domain.MinutesPerHour
	s.emit(ctx, event.NewTimeAdvancedEvent(t.Day, t.Hour, t.Minute))
}

// DailyReset settles the night: daily counters are zeroed, salaries and rent
// are debited even if gold goes negative, and reputation decays.
func (s *State) DailyReset(ctx context.Context) {
	log := logger.FromContext(ctx)
	st := &s.data.Statistics
	st.DailyWins, st.DailyServed, st.DailySatisfied = 0, 0, 0
	st.DaysPlayed++
	s.data.Tavern.DailyIncome = 0

	salaries := 0
	for _, m := range s.data.Staff {
		salaries += m.Salary
	}
	rent := s.catalog.Economy.DailyRent
	if bill := salaries + rent; bill > 0 {
		s.debit(ctx, bill)
	}
	if s.data.Player.Gold < 0 {
		log.Warn(LogMsgGoldNegative, "gold", s.data.Player.Gold, "salaries", salaries, "rent", rent)
	}

	decay := 0
	if d := s.catalog.Economy.ReputationDecay; d > 0 {
		decay = -s.AddReputation(ctx, -d)
	}

	payload := event.DailyResetPayloadV1{
		Day:              s.data.Time.Day,
		SalariesPaid:     salaries,
		RentPaid:         rent,
		ReputationDecay:  decay,
		GoldAfterSettled: s.data.Player.Gold,
	}
	log.Info(LogMsgDailyReset, "day", payload.Day, "salaries", salaries, "rent", rent, "gold", payload.GoldAfterSettled)
	s.emit(ctx, event.NewDailyResetEvent(payload))
}

// NewDay announces the start of the current day. World event generation
// subscribes to it.
func (s *State) NewDay(ctx context.Context) {
	logger.FromContext(ctx).Info(LogMsgNewDay, "day", s.data.Time.Day)
	s.emit(ctx, event.NewNewDayEvent(s.data.Time.Day))
}
