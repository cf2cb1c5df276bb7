package hunt

import (
	"fmt"
	"time"

	"github.com/osse101/IdleHunt_Go/internal/domain"
)

// Machine wraps a player's hunt state so that its transitions are the only
// mutation points. All triggers for one player are serialized by the caller;
// the machine itself holds no locks.
type Machine struct {
	state *domain.HuntState
	now   func() time.Time
}

// NewMachine wraps a hunt state with an injectable clock
func NewMachine(state *domain.HuntState, now func() time.Time) *Machine {
	if now == nil {
		now = time.Now
	}
	return &Machine{state: state, now: now}
}

// State returns the underlying hunt state
func (m *Machine) State() *domain.HuntState {
	return m.state
}

// sameCalendarDay compares two instants by calendar identity in server-local time
func sameCalendarDay(a, b time.Time) bool {
	a, b = a.Local(), b.Local()
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}

// ApplyDailyRollover zeroes the daily counter when the stored reset date is
// not today. Safe to run any number of times per day; returns true when a
// reset happened.
func (m *Machine) ApplyDailyRollover() bool {
	now := m.now()
	if !m.state.LastResetDate.IsZero() && sameCalendarDay(m.state.LastResetDate, now) {
		return false
	}
	reset := m.state.TotalTimeToday > 0
	m.state.TotalTimeToday = 0
	m.state.LastResetDate = now
	return reset
}

// Configure moves Idle -> Pending. Target existence and level/premium gating
// are validated by the caller against the catalogs; the machine enforces the
// phase and the daily quota (after rollover).
func (m *Machine) Configure(target domain.HuntTarget) error {
	if m.state.Phase != domain.HuntPhaseIdle {
		return fmt.Errorf("%w: phase %s", domain.ErrAlreadyConfigured, m.state.Phase)
	}
	if target.IsZero() {
		return domain.ErrInvalidTarget
	}

	m.ApplyDailyRollover()
	if m.state.TotalTimeToday >= m.state.MaxDailySeconds {
		return domain.ErrDailyLimitReached
	}

	m.state.Target = target
	m.state.Phase = domain.HuntPhasePending
	m.state.StartTime = time.Time{}
	m.state.EndTime = time.Time{}
	m.state.LastClaimTime = time.Time{}
	m.state.LastResetDate = m.now()
	return nil
}

// ActivateOnLogout moves Pending -> Active, stamping the start time. Any
// other phase is a no-op so repeated logout signals are harmless.
func (m *Machine) ActivateOnLogout() bool {
	if m.state.Phase != domain.HuntPhasePending {
		return false
	}
	m.state.StartTime = m.now()
	m.state.Phase = domain.HuntPhaseActive
	return true
}

// ResolveOnLogin freezes an Active hunt into ReadyToClaim with the end time
// stamped at login. Returns true when the transition happened; an already
// ReadyToClaim hunt returns false (unclaimed rewards carry over, the caller
// re-notifies).
func (m *Machine) ResolveOnLogin() bool {
	if m.state.Phase != domain.HuntPhaseActive {
		return false
	}
	m.state.EndTime = m.now()
	m.state.Phase = domain.HuntPhaseReadyToClaim
	return true
}

// ClaimWindow computes the elapsed seconds to simulate for a ReadyToClaim
// hunt: the frozen [start,end] interval, hard-capped at MaxOfflineSeconds and
// clipped to the remaining daily quota (after rollover).
//
// Corrupt timestamps (end before start, zero start, clock gone backwards)
// yield ErrHuntStateCorrupt; the caller must force-stop without rewards.
// clamped reports whether the 24h cap fired; clipped reports quota clipping.
func (m *Machine) ClaimWindow() (elapsed int64, clamped, clipped bool, err error) {
	if m.state.Phase != domain.HuntPhaseReadyToClaim {
		return 0, false, false, domain.ErrNothingToClaim
	}
	if m.state.StartTime.IsZero() || m.state.EndTime.Before(m.state.StartTime) {
		return 0, false, false, fmt.Errorf("%w: start=%d end=%d", domain.ErrHuntStateCorrupt,
			m.state.StartTime.Unix(), m.state.EndTime.Unix())
	}

	elapsed = int64(m.state.EndTime.Sub(m.state.StartTime) / time.Second)
	if elapsed > MaxOfflineSeconds {
		elapsed = MaxOfflineSeconds
		clamped = true
	}

	m.ApplyDailyRollover()
	remaining := m.state.RemainingDailySeconds()
	if remaining <= 0 {
		return 0, clamped, false, domain.ErrDailyLimitReached
	}
	if elapsed > remaining {
		elapsed = remaining
		clipped = true
	}
	return elapsed, clamped, clipped, nil
}

// FinishClaim charges the consumed seconds against the daily quota, stamps
// the claim time, and resets to Idle. TotalTimeToday never exceeds the cap.
func (m *Machine) FinishClaim(consumedSeconds int64) {
	m.state.TotalTimeToday += consumedSeconds
	if m.state.TotalTimeToday > m.state.MaxDailySeconds {
		m.state.TotalTimeToday = m.state.MaxDailySeconds
	}
	m.state.LastClaimTime = m.now()
	m.reset()
}

// Stop unconditionally resets any non-Idle hunt without granting rewards.
// Returns the forfeited configuration for audit logging.
func (m *Machine) Stop() (prevPhase domain.HuntPhase, prevTarget domain.HuntTarget, stopped bool) {
	if m.state.Phase == domain.HuntPhaseIdle {
		return m.state.Phase, m.state.Target, false
	}
	prevPhase, prevTarget = m.state.Phase, m.state.Target
	m.reset()
	return prevPhase, prevTarget, true
}

// ForceReset is the consistency-error escape hatch: drop everything back to
// Idle regardless of phase. Daily accounting is preserved.
func (m *Machine) ForceReset() {
	m.reset()
}

func (m *Machine) reset() {
	m.state.Target = domain.HuntTarget{}
	m.state.Phase = domain.HuntPhaseIdle
	m.state.StartTime = time.Time{}
	m.state.EndTime = time.Time{}
}
