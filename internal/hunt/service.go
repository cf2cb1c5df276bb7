package hunt

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/IdleHunt_Go/internal/domain"
	"github.com/osse101/IdleHunt_Go/internal/event"
	"github.com/osse101/IdleHunt_Go/internal/logger"
	"github.com/osse101/IdleHunt_Go/internal/notify"
	"github.com/osse101/IdleHunt_Go/internal/repository"
)

// GroupCatalog is the group lookup surface the service depends on
type GroupCatalog interface {
	Group(id int64) (*domain.Group, bool)
	Available(playerLevel int, premium bool) []domain.GroupSummary
}

// MonsterCatalog is the monster lookup surface the service depends on
type MonsterCatalog interface {
	Monster(id int64) (*domain.Monster, bool)
	KillDrops(id int64) []domain.MonsterDrop
	PercentDrops(id int64) []domain.MonsterDrop
}

// PlayerService is the player attribute and grant surface the service
// depends on
type PlayerService interface {
	GetCombatSnapshot(ctx context.Context, playerID int64) (domain.CombatSnapshot, error)
	GrantExperience(ctx context.Context, playerID int64, amount int64) error
	GrantGold(ctx context.Context, playerID int64, amount int64) error
	GrantItem(ctx context.Context, playerID int64, stack domain.ItemStack) error
}

// Service is the idle hunt session controller. It owns the lifecycle triggers
// and is the single mutation point for hunt state.
type Service interface {
	// GetAvailableTargets lists the hunting groups the player may configure
	GetAvailableTargets(ctx context.Context, playerID int64) ([]domain.GroupSummary, error)

	// Configure sets up a hunt against a target while the player is online
	Configure(ctx context.Context, playerID int64, target domain.HuntTarget) (*domain.HuntStatus, error)

	// OnLogout activates a pending hunt; safe to call for every logout
	OnLogout(ctx context.Context, playerID int64) error

	// OnLogin freezes an active hunt for claiming; safe to call for every login
	OnLogin(ctx context.Context, playerID int64) error

	// Claim simulates the frozen interval and grants the rewards
	Claim(ctx context.Context, playerID int64) (*domain.ClaimResult, error)

	// Stop cancels any non-idle hunt without granting rewards
	Stop(ctx context.Context, playerID int64) (bool, error)

	// GetStatus returns the read-only view of the player's hunt
	GetStatus(ctx context.Context, playerID int64) (*domain.HuntStatus, error)

	// SetDailyLimit overrides the player's daily quota in seconds
	SetDailyLimit(ctx context.Context, playerID int64, seconds int64) error

	// ResetPlayer wipes the player's hunt record, daily accounting included
	ResetPlayer(ctx context.Context, playerID int64) error
}

// playerSession serializes all triggers for one player and holds the
// authoritative in-memory state between persistence snapshots
type playerSession struct {
	mu      sync.Mutex
	machine *Machine
}

type service struct {
	repo     repository.Hunt
	groups   GroupCatalog
	monsters MonsterCatalog
	players  PlayerService
	notifier notify.Notifier
	bus      event.Bus

	sessions   *expirable.LRU[int64, *playerSession]
	sessionsMu sync.Mutex

	now    func() time.Time
	seedFn func() int64
}

// NewService creates the idle hunt session controller
func NewService(repo repository.Hunt, groups GroupCatalog, monsters MonsterCatalog, players PlayerService, notifier notify.Notifier, bus event.Bus) Service {
	return &service{
		repo:     repo,
		groups:   groups,
		monsters: monsters,
		players:  players,
		notifier: notifier,
		bus:      bus,
		sessions: expirable.NewLRU[int64, *playerSession](SessionCacheSize, nil, SessionCacheTTL),
		now:      time.Now,
		seedFn:   func() int64 { return time.Now().UnixNano() },
	}
}

// session returns the cached per-player session, loading state from the
// repository on a miss. A player with no persisted row gets a fresh record.
func (s *service) session(ctx context.Context, playerID int64) (*playerSession, error) {
	if sess, ok := s.sessions.Get(playerID); ok {
		return sess, nil
	}

	s.sessionsMu.Lock()
	defer s.sessionsMu.Unlock()
	if sess, ok := s.sessions.Get(playerID); ok {
		return sess, nil
	}

	state, err := s.repo.GetHuntState(ctx, playerID)
	if err != nil {
		if !errors.Is(err, domain.ErrPlayerNotFound) {
			return nil, fmt.Errorf("failed to load hunt state: %w", err)
		}
		state = domain.NewHuntState(playerID)
	}
	if state.MaxDailySeconds <= 0 {
		state.MaxDailySeconds = domain.DefaultMaxDailySeconds
	}

	sess := &playerSession{machine: NewMachine(state, s.now)}
	s.sessions.Add(playerID, sess)
	return sess, nil
}

// persist snapshots the state best-effort. The in-memory state stays
// authoritative; a failed write costs at most the window since the last
// trigger and is logged for operators.
func (s *service) persist(ctx context.Context, state *domain.HuntState) {
	if err := s.repo.SaveHuntState(ctx, state); err != nil {
		logger.FromContext(ctx).Error(LogMsgPersistFailed,
			"player_id", state.PlayerID, "error", err)
	}
}

func (s *service) publish(ctx context.Context, evt event.Event) {
	if err := s.bus.Publish(ctx, evt); err != nil {
		logger.FromContext(ctx).Warn(LogMsgPublishFailed,
			"event_type", evt.Type, "error", err)
	}
}

// GetAvailableTargets lists the hunting groups the player may configure
func (s *service) GetAvailableTargets(ctx context.Context, playerID int64) ([]domain.GroupSummary, error) {
	combat, err := s.players.GetCombatSnapshot(ctx, playerID)
	if err != nil {
		return nil, err
	}
	return s.groups.Available(combat.Level, combat.Premium), nil
}

// Configure sets up a hunt against a target while the player is online
func (s *service) Configure(ctx context.Context, playerID int64, target domain.HuntTarget) (*domain.HuntStatus, error) {
	combat, err := s.players.GetCombatSnapshot(ctx, playerID)
	if err != nil {
		return nil, err
	}

	minLevel, err := s.validateTarget(target, combat)
	if err != nil {
		return nil, err
	}

	sess, err := s.session(ctx, playerID)
	if err != nil {
		return nil, err
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()

	if err := sess.machine.Configure(target); err != nil {
		return nil, err
	}

	state := sess.machine.State()
	s.persist(ctx, state)
	s.publish(ctx, event.NewHuntConfiguredEvent(playerID, target, minLevel))

	logger.FromContext(ctx).Info(LogMsgHuntConfigured,
		"player_id", playerID,
		"target_kind", target.Kind,
		"target_id", target.ID)

	return s.statusLocked(sess), nil
}

// validateTarget resolves the target against the catalogs and enforces the
// level and premium gates. Returns the target's minimum level for audit.
func (s *service) validateTarget(target domain.HuntTarget, combat domain.CombatSnapshot) (int, error) {
	switch target.Kind {
	case domain.TargetKindGroup:
		group, ok := s.groups.Group(target.ID)
		if !ok {
			return 0, fmt.Errorf("%w: group %d", domain.ErrInvalidTarget, target.ID)
		}
		if combat.Level < group.MinLevel {
			return 0, fmt.Errorf("%w: need level %d", domain.ErrLevelTooLow, group.MinLevel)
		}
		if group.PremiumOnly && !combat.Premium {
			return 0, domain.ErrPremiumRequired
		}
		return group.MinLevel, nil

	case domain.TargetKindMonster:
		monster, ok := s.monsters.Monster(target.ID)
		if !ok {
			return 0, fmt.Errorf("%w: monster %d", domain.ErrInvalidTarget, target.ID)
		}
		return monster.Level, nil

	default:
		return 0, domain.ErrInvalidTarget
	}
}

// OnLogout activates a pending hunt, stamping the start of the offline window
func (s *service) OnLogout(ctx context.Context, playerID int64) error {
	sess, err := s.session(ctx, playerID)
	if err != nil {
		return err
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()

	if !sess.machine.ActivateOnLogout() {
		return nil
	}

	state := sess.machine.State()
	s.persist(ctx, state)
	s.publish(ctx, event.NewHuntPhaseEvent(event.HuntActivated, playerID, state.Target, state.Phase))

	logger.FromContext(ctx).Info(LogMsgHuntActivated, "player_id", playerID)
	return nil
}

// OnLogin freezes an active hunt so the elapsed interval stops growing. An
// already frozen hunt just re-notifies; unclaimed rewards carry over. A hunt
// whose target dropped out of the catalog while the player was offline is
// force-reset here so the player is never told a dead hunt is ready.
func (s *service) OnLogin(ctx context.Context, playerID int64) error {
	sess, err := s.session(ctx, playerID)
	if err != nil {
		return err
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()

	state := sess.machine.State()
	if state.Phase == domain.HuntPhaseActive || state.Phase == domain.HuntPhaseReadyToClaim {
		if !s.targetResolves(state.Target) {
			logger.FromContext(ctx).Error(LogMsgTargetVanished,
				"player_id", playerID,
				"target_kind", state.Target.Kind,
				"target_id", state.Target.ID)
			s.forceReset(ctx, sess, playerID)
			return nil
		}
	}

	if sess.machine.ResolveOnLogin() {
		s.persist(ctx, state)
		s.publish(ctx, event.NewHuntPhaseEvent(event.HuntReady, playerID, state.Target, state.Phase))
		logger.FromContext(ctx).Info(LogMsgHuntReady, "player_id", playerID)
	}

	if state.Phase == domain.HuntPhaseReadyToClaim {
		s.notifier.HuntReady(ctx, playerID, state.Target)
	}
	return nil
}

// Claim simulates the frozen interval and grants the rewards
func (s *service) Claim(ctx context.Context, playerID int64) (*domain.ClaimResult, error) {
	sess, err := s.session(ctx, playerID)
	if err != nil {
		return nil, err
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()

	log := logger.FromContext(ctx)
	state := sess.machine.State()
	target := state.Target

	elapsed, clamped, clipped, err := sess.machine.ClaimWindow()
	if err != nil {
		if errors.Is(err, domain.ErrHuntStateCorrupt) {
			// Corrupt timestamps forfeit the interval; never leave a player stuck
			log.Error(LogMsgStateCorrupt, "player_id", playerID, "error", err)
			s.forceReset(ctx, sess, playerID)
		}
		if errors.Is(err, domain.ErrDailyLimitReached) {
			// The window fell entirely outside today's quota; nothing to simulate
			sess.machine.FinishClaim(0)
			s.persist(ctx, state)
		}
		return nil, err
	}

	run, err := s.buildRun(target)
	if err != nil {
		log.Warn(LogMsgTargetVanished,
			"player_id", playerID,
			"target_kind", target.Kind,
			"target_id", target.ID)
		s.forceReset(ctx, sess, playerID)
		return nil, err
	}

	combat, err := s.players.GetCombatSnapshot(ctx, playerID)
	if err != nil {
		return nil, err
	}

	engine := NewEngine(combat, run.slots, run.drops, run.expMultiplier, run.yangMultiplier, s.seedFn())
	summary := engine.Run(elapsed)

	if clamped || summary.Clamped {
		log.Warn(LogMsgRewardClamped,
			"player_id", playerID,
			"elapsed", elapsed,
			"raw_kills", summary.RawKills,
			"raw_exp", summary.RawExp,
			"raw_gold", summary.RawGold)
		s.publish(ctx, event.NewHuntRewardClampedEvent(playerID, summary.RawKills, summary.RawExp, summary.RawGold))
	}

	result := &domain.ClaimResult{
		Target:         target,
		ElapsedSeconds: elapsed,
		Rewards:        *summary,
	}

	s.grantRewards(ctx, playerID, summary, result)

	sess.machine.FinishClaim(elapsed)
	result.TimeLeftToday = state.RemainingDailySeconds()
	result.Summary = buildReport(result, clipped)

	s.persist(ctx, state)
	s.publish(ctx, event.NewHuntClaimedEvent(playerID, target, result))
	s.notifier.RewardsClaimed(ctx, playerID, result)

	log.Info(LogMsgHuntClaimed,
		"player_id", playerID,
		"elapsed", elapsed,
		"kills", summary.Kills,
		"exp", summary.Exp,
		"gold", summary.Gold,
		"item_stacks", len(result.ItemsGranted))

	return result, nil
}

// grantRewards applies exp, gold, and item grants. Inventory exhaustion
// truncates the remaining item grants; everything already granted stays.
func (s *service) grantRewards(ctx context.Context, playerID int64, summary *domain.RewardSummary, result *domain.ClaimResult) {
	log := logger.FromContext(ctx)

	if summary.Exp > 0 {
		if err := s.players.GrantExperience(ctx, playerID, summary.Exp); err != nil {
			log.Error(LogMsgGrantFailed, "player_id", playerID, "kind", "exp", "error", err)
		}
	}
	if summary.Gold > 0 {
		if err := s.players.GrantGold(ctx, playerID, summary.Gold); err != nil {
			log.Error(LogMsgGrantFailed, "player_id", playerID, "kind", "gold", "error", err)
		} else {
			s.publish(ctx, event.NewHuntGoldGrantedEvent(playerID, summary.Gold))
		}
	}

	granted := 0
	for _, stack := range summary.Drops {
		if granted >= MaxStacksPerClaim {
			break
		}
		if err := s.players.GrantItem(ctx, playerID, stack); err != nil {
			if errors.Is(err, domain.ErrInventoryFull) {
				result.InventoryFull = true
				log.Info(LogMsgInventoryFull, "player_id", playerID, "dropped_stacks", len(summary.Drops)-granted)
				break
			}
			log.Error(LogMsgGrantFailed, "player_id", playerID, "kind", "item", "item_id", stack.ItemID, "error", err)
			continue
		}
		result.ItemsGranted = append(result.ItemsGranted, stack)
		granted++
	}
	if len(result.ItemsGranted) > 0 {
		s.publish(ctx, event.NewHuntItemsGrantedEvent(playerID, result.ItemsGranted))
	}
}

// huntRun is the resolved simulation input for one claim
type huntRun struct {
	slots          []MonsterSlot
	drops          []domain.GroupDrop
	expMultiplier  float64
	yangMultiplier float64
}

// buildRun resolves the configured target against the current catalog
// snapshots. A target that no longer resolves yields ErrTargetVanished.
func (s *service) buildRun(target domain.HuntTarget) (*huntRun, error) {
	switch target.Kind {
	case domain.TargetKindGroup:
		group, ok := s.groups.Group(target.ID)
		if !ok {
			return nil, fmt.Errorf("%w: group %d", domain.ErrTargetVanished, target.ID)
		}

		slots := make([]MonsterSlot, 0, len(group.Mobs))
		for _, mob := range group.Mobs {
			monster, ok := s.monsters.Monster(mob.MonsterID)
			if !ok {
				// A mob removed from the monster catalog forfeits its share
				continue
			}
			slots = append(slots, MonsterSlot{Monster: monster, Weight: mob.Weight})
		}
		if len(slots) == 0 {
			return nil, fmt.Errorf("%w: group %d has no resolvable mobs", domain.ErrTargetVanished, target.ID)
		}

		return &huntRun{
			slots:          slots,
			drops:          group.Drops,
			expMultiplier:  group.ExpMultiplier,
			yangMultiplier: group.YangMultiplier,
		}, nil

	case domain.TargetKindMonster:
		monster, ok := s.monsters.Monster(target.ID)
		if !ok {
			return nil, fmt.Errorf("%w: monster %d", domain.ErrTargetVanished, target.ID)
		}

		// Both drop tables feed the same halved-chance roll
		kills := s.monsters.KillDrops(target.ID)
		percents := s.monsters.PercentDrops(target.ID)
		drops := make([]domain.GroupDrop, 0, len(kills)+len(percents))
		for _, table := range [][]domain.MonsterDrop{kills, percents} {
			for _, d := range table {
				drops = append(drops, domain.GroupDrop{
					ItemID:   d.ItemID,
					Chance:   d.Chance,
					MinCount: d.MinCount,
					MaxCount: d.MaxCount,
				})
			}
		}

		return &huntRun{
			slots:          []MonsterSlot{{Monster: monster, Weight: 1}},
			drops:          drops,
			expMultiplier:  1.0,
			yangMultiplier: 1.0,
		}, nil

	default:
		return nil, fmt.Errorf("%w: kind %q", domain.ErrTargetVanished, target.Kind)
	}
}

// targetResolves reports whether the configured target still exists in the
// current catalog snapshots
func (s *service) targetResolves(target domain.HuntTarget) bool {
	switch target.Kind {
	case domain.TargetKindGroup:
		_, ok := s.groups.Group(target.ID)
		return ok
	case domain.TargetKindMonster:
		_, ok := s.monsters.Monster(target.ID)
		return ok
	default:
		return false
	}
}

// forceReset drops the player back to idle after a consistency error
func (s *service) forceReset(ctx context.Context, sess *playerSession, playerID int64) {
	state := sess.machine.State()
	target := state.Target
	sess.machine.ForceReset()
	s.persist(ctx, state)
	s.publish(ctx, event.NewHuntPhaseEvent(event.HuntForceReset, playerID, target, state.Phase))
}

// Stop cancels any non-idle hunt without granting rewards
func (s *service) Stop(ctx context.Context, playerID int64) (bool, error) {
	sess, err := s.session(ctx, playerID)
	if err != nil {
		return false, err
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()

	prevPhase, prevTarget, stopped := sess.machine.Stop()
	if !stopped {
		return false, nil
	}

	state := sess.machine.State()
	s.persist(ctx, state)
	s.publish(ctx, event.NewHuntStoppedEvent(playerID, prevTarget, prevPhase, state.TotalTimeToday))

	logger.FromContext(ctx).Info(LogMsgHuntStopped,
		"player_id", playerID,
		"prior_phase", prevPhase)
	return true, nil
}

// GetStatus returns the read-only view of the player's hunt. Reading status
// applies the daily rollover so TimeLeft is accurate across midnight.
func (s *service) GetStatus(ctx context.Context, playerID int64) (*domain.HuntStatus, error) {
	sess, err := s.session(ctx, playerID)
	if err != nil {
		return nil, err
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()

	if sess.machine.ApplyDailyRollover() {
		s.persist(ctx, sess.machine.State())
	}
	return s.statusLocked(sess), nil
}

// statusLocked builds the status view; the caller holds the session lock
func (s *service) statusLocked(sess *playerSession) *domain.HuntStatus {
	state := sess.machine.State()
	return &domain.HuntStatus{
		Active:    state.Phase == domain.HuntPhaseActive || state.Phase == domain.HuntPhaseReadyToClaim,
		Phase:     state.Phase,
		Target:    state.Target,
		TimeLeft:  state.RemainingDailySeconds(),
		MaxTime:   state.MaxDailySeconds,
		StartTime: state.StartTime,
	}
}

// SetDailyLimit overrides the player's daily quota in seconds
func (s *service) SetDailyLimit(ctx context.Context, playerID int64, seconds int64) error {
	if seconds <= 0 || seconds > MaxOfflineSeconds {
		return fmt.Errorf("%w: daily limit %d outside (0,%d]", domain.ErrInvalidTarget, seconds, MaxOfflineSeconds)
	}

	sess, err := s.session(ctx, playerID)
	if err != nil {
		return err
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()

	state := sess.machine.State()
	state.MaxDailySeconds = seconds
	s.persist(ctx, state)

	logger.FromContext(ctx).Info(LogMsgDailyLimitSet, "player_id", playerID, "seconds", seconds)
	return nil
}

// ResetPlayer is the operator escape hatch: it deletes the persisted hunt row
// and evicts the cached session so the next trigger starts from a fresh
// record. Unlike Stop, this also wipes the daily quota accounting.
func (s *service) ResetPlayer(ctx context.Context, playerID int64) error {
	sess, err := s.session(ctx, playerID)
	if err != nil {
		return err
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()

	if err := s.repo.DeleteHuntState(ctx, playerID); err != nil {
		return fmt.Errorf("failed to delete hunt state: %w", err)
	}
	s.sessions.Remove(playerID)

	logger.FromContext(ctx).Info(LogMsgPlayerReset, "player_id", playerID)
	return nil
}
