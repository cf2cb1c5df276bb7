package hunt_test

import (
	"context"
	"sync"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/IdleHunt_Go/internal/domain"
	"github.com/osse101/IdleHunt_Go/internal/event"
)

type mockHuntRepo struct {
	mock.Mock
}

func (m *mockHuntRepo) GetHuntState(ctx context.Context, playerID int64) (*domain.HuntState, error) {
	args := m.Called(ctx, playerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.HuntState), args.Error(1)
}

func (m *mockHuntRepo) SaveHuntState(ctx context.Context, state *domain.HuntState) error {
	args := m.Called(ctx, state)
	return args.Error(0)
}

func (m *mockHuntRepo) DeleteHuntState(ctx context.Context, playerID int64) error {
	args := m.Called(ctx, playerID)
	return args.Error(0)
}

type mockGroups struct {
	mock.Mock
}

func (m *mockGroups) Group(id int64) (*domain.Group, bool) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Bool(1)
	}
	return args.Get(0).(*domain.Group), args.Bool(1)
}

func (m *mockGroups) Available(playerLevel int, premium bool) []domain.GroupSummary {
	args := m.Called(playerLevel, premium)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]domain.GroupSummary)
}

type mockMonsters struct {
	mock.Mock
}

func (m *mockMonsters) Monster(id int64) (*domain.Monster, bool) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Bool(1)
	}
	return args.Get(0).(*domain.Monster), args.Bool(1)
}

func (m *mockMonsters) KillDrops(id int64) []domain.MonsterDrop {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]domain.MonsterDrop)
}

func (m *mockMonsters) PercentDrops(id int64) []domain.MonsterDrop {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]domain.MonsterDrop)
}

type mockPlayers struct {
	mock.Mock
}

func (m *mockPlayers) GetCombatSnapshot(ctx context.Context, playerID int64) (domain.CombatSnapshot, error) {
	args := m.Called(ctx, playerID)
	return args.Get(0).(domain.CombatSnapshot), args.Error(1)
}

func (m *mockPlayers) GrantExperience(ctx context.Context, playerID int64, amount int64) error {
	args := m.Called(ctx, playerID, amount)
	return args.Error(0)
}

func (m *mockPlayers) GrantGold(ctx context.Context, playerID int64, amount int64) error {
	args := m.Called(ctx, playerID, amount)
	return args.Error(0)
}

func (m *mockPlayers) GrantItem(ctx context.Context, playerID int64, stack domain.ItemStack) error {
	args := m.Called(ctx, playerID, stack)
	return args.Error(0)
}

// captureBus records published events synchronously for assertions
type captureBus struct {
	mu     sync.Mutex
	events []event.Event
}

func (b *captureBus) Publish(_ context.Context, evt event.Event) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.events = append(b.events, evt)
	return nil
}

func (b *captureBus) Subscribe(event.Type, event.Handler) {}

func (b *captureBus) published() []event.Event {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]event.Event, len(b.events))
	copy(out, b.events)
	return out
}

func (b *captureBus) typesSeen() []event.Type {
	b.mu.Lock()
	defer b.mu.Unlock()
	types := make([]event.Type, 0, len(b.events))
	for _, evt := range b.events {
		types = append(types, evt.Type)
	}
	return types
}

// recordingNotifier records notification calls
type recordingNotifier struct {
	mu           sync.Mutex
	readyCalls   int
	claimedCalls int
}

func (n *recordingNotifier) HuntReady(context.Context, int64, domain.HuntTarget) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.readyCalls++
}

func (n *recordingNotifier) RewardsClaimed(context.Context, int64, *domain.ClaimResult) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.claimedCalls++
}
