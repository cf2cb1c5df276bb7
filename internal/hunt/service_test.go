package hunt_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/IdleHunt_Go/internal/domain"
	"github.com/osse101/IdleHunt_Go/internal/event"
	"github.com/osse101/IdleHunt_Go/internal/hunt"
)

const testPlayerID = int64(42)

func testCombat() domain.CombatSnapshot {
	return domain.CombatSnapshot{
		PlayerID:        testPlayerID,
		Level:           35,
		AttackGrade:     120,
		AttackSpeed:     100,
		WeaponDamageMin: 40,
		WeaponDamageMax: 60,
		Premium:         false,
	}
}

func testGroup() *domain.Group {
	return &domain.Group{
		ID:             1,
		Name:           "orc_valley",
		DisplayName:    "Orc Valley",
		MinLevel:       30,
		ExpMultiplier:  1.0,
		YangMultiplier: 1.0,
		Mobs: []domain.GroupMob{
			{MonsterID: 101, Weight: 60},
			{MonsterID: 102, Weight: 40},
		},
		Drops: []domain.GroupDrop{
			{ItemID: 5001, Chance: 400, MinCount: 1, MaxCount: 3},
		},
	}
}

func testMonster(id int64) *domain.Monster {
	return &domain.Monster{
		ID:        id,
		Name:      "Orc Warrior",
		Level:     33,
		MaxHP:     2200,
		Defense:   90,
		ExpReward: 350,
		GoldMin:   50,
		GoldMax:   150,
	}
}

type serviceFixture struct {
	repo     *mockHuntRepo
	groups   *mockGroups
	monsters *mockMonsters
	players  *mockPlayers
	notifier *recordingNotifier
	bus      *captureBus
	svc      hunt.Service
	clock    *fakeClock
}

// fakeClock is an advanceable test clock
type fakeClock struct {
	t time.Time
}

func (c *fakeClock) Now() time.Time          { return c.t }
func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

func newServiceFixture(t *testing.T) *serviceFixture {
	t.Helper()
	f := &serviceFixture{
		repo:     &mockHuntRepo{},
		groups:   &mockGroups{},
		monsters: &mockMonsters{},
		players:  &mockPlayers{},
		notifier: &recordingNotifier{},
		bus:      &captureBus{},
		clock:    &fakeClock{t: time.Date(2025, 6, 10, 12, 0, 0, 0, time.Local)},
	}
	f.svc = hunt.NewService(f.repo, f.groups, f.monsters, f.players, f.notifier, f.bus)
	hunt.TestHooks.SetClock(f.svc, f.clock.Now)
	hunt.TestHooks.SetSeed(f.svc, func() int64 { return 12345 })
	return f
}

// fresh player: no persisted row, default stubs for the happy path
func (f *serviceFixture) stubFreshPlayer() {
	f.repo.On("GetHuntState", mock.Anything, testPlayerID).Return(nil, domain.ErrPlayerNotFound).Once()
	f.repo.On("SaveHuntState", mock.Anything, mock.Anything).Return(nil)
	f.players.On("GetCombatSnapshot", mock.Anything, testPlayerID).Return(testCombat(), nil)
}

func (f *serviceFixture) stubGroupTarget() {
	f.groups.On("Group", int64(1)).Return(testGroup(), true)
	f.monsters.On("Monster", int64(101)).Return(testMonster(101), true)
	f.monsters.On("Monster", int64(102)).Return(testMonster(102), true)
}

func groupTarget() domain.HuntTarget {
	return domain.HuntTarget{Kind: domain.TargetKindGroup, ID: 1}
}

func TestService_Configure(t *testing.T) {
	t.Run("configures a valid group target", func(t *testing.T) {
		f := newServiceFixture(t)
		f.stubFreshPlayer()
		f.stubGroupTarget()

		status, err := f.svc.Configure(context.Background(), testPlayerID, groupTarget())

		require.NoError(t, err)
		assert.Equal(t, domain.HuntPhasePending, status.Phase)
		assert.Equal(t, groupTarget(), status.Target)
		assert.False(t, status.Active)
		assert.Equal(t, int64(domain.DefaultMaxDailySeconds), status.TimeLeft)
		assert.Contains(t, f.bus.typesSeen(), event.HuntConfigured)
	})

	t.Run("rejects unknown group", func(t *testing.T) {
		f := newServiceFixture(t)
		f.players.On("GetCombatSnapshot", mock.Anything, testPlayerID).Return(testCombat(), nil)
		f.groups.On("Group", int64(99)).Return(nil, false)

		_, err := f.svc.Configure(context.Background(), testPlayerID, domain.HuntTarget{Kind: domain.TargetKindGroup, ID: 99})

		assert.ErrorIs(t, err, domain.ErrInvalidTarget)
	})

	t.Run("rejects underleveled player", func(t *testing.T) {
		f := newServiceFixture(t)
		combat := testCombat()
		combat.Level = 10
		f.players.On("GetCombatSnapshot", mock.Anything, testPlayerID).Return(combat, nil)
		f.groups.On("Group", int64(1)).Return(testGroup(), true)

		_, err := f.svc.Configure(context.Background(), testPlayerID, groupTarget())

		assert.ErrorIs(t, err, domain.ErrLevelTooLow)
	})

	t.Run("rejects premium group for free player", func(t *testing.T) {
		f := newServiceFixture(t)
		f.players.On("GetCombatSnapshot", mock.Anything, testPlayerID).Return(testCombat(), nil)
		group := testGroup()
		group.PremiumOnly = true
		f.groups.On("Group", int64(1)).Return(group, true)

		_, err := f.svc.Configure(context.Background(), testPlayerID, groupTarget())

		assert.ErrorIs(t, err, domain.ErrPremiumRequired)
	})

	t.Run("rejects double configuration", func(t *testing.T) {
		f := newServiceFixture(t)
		f.stubFreshPlayer()
		f.stubGroupTarget()

		_, err := f.svc.Configure(context.Background(), testPlayerID, groupTarget())
		require.NoError(t, err)

		_, err = f.svc.Configure(context.Background(), testPlayerID, groupTarget())
		assert.ErrorIs(t, err, domain.ErrAlreadyConfigured)
	})
}

func TestService_LifecycleSignals(t *testing.T) {
	t.Run("logout activates and login freezes", func(t *testing.T) {
		f := newServiceFixture(t)
		f.stubFreshPlayer()
		f.stubGroupTarget()

		_, err := f.svc.Configure(context.Background(), testPlayerID, groupTarget())
		require.NoError(t, err)

		require.NoError(t, f.svc.OnLogout(context.Background(), testPlayerID))
		f.clock.Advance(2 * time.Hour)
		require.NoError(t, f.svc.OnLogin(context.Background(), testPlayerID))

		status, err := f.svc.GetStatus(context.Background(), testPlayerID)
		require.NoError(t, err)
		assert.Equal(t, domain.HuntPhaseReadyToClaim, status.Phase)
		assert.True(t, status.Active)
		assert.Equal(t, 1, f.notifier.readyCalls)
	})

	t.Run("logout without a pending hunt is a no-op", func(t *testing.T) {
		f := newServiceFixture(t)
		f.repo.On("GetHuntState", mock.Anything, testPlayerID).Return(nil, domain.ErrPlayerNotFound).Once()

		require.NoError(t, f.svc.OnLogout(context.Background(), testPlayerID))

		f.repo.AssertNotCalled(t, "SaveHuntState", mock.Anything, mock.Anything)
	})

	t.Run("repeated login re-notifies without restamping", func(t *testing.T) {
		f := newServiceFixture(t)
		f.stubFreshPlayer()
		f.stubGroupTarget()

		_, err := f.svc.Configure(context.Background(), testPlayerID, groupTarget())
		require.NoError(t, err)
		require.NoError(t, f.svc.OnLogout(context.Background(), testPlayerID))
		f.clock.Advance(time.Hour)
		require.NoError(t, f.svc.OnLogin(context.Background(), testPlayerID))

		f.clock.Advance(time.Hour)
		require.NoError(t, f.svc.OnLogin(context.Background(), testPlayerID))

		status, err := f.svc.GetStatus(context.Background(), testPlayerID)
		require.NoError(t, err)
		assert.Equal(t, domain.HuntPhaseReadyToClaim, status.Phase)
		assert.Equal(t, 2, f.notifier.readyCalls)
	})

	t.Run("target vanished while offline force-resets at login", func(t *testing.T) {
		f := newServiceFixture(t)
		f.stubFreshPlayer()
		f.groups.On("Group", int64(1)).Return(testGroup(), true).Once()

		_, err := f.svc.Configure(context.Background(), testPlayerID, groupTarget())
		require.NoError(t, err)
		require.NoError(t, f.svc.OnLogout(context.Background(), testPlayerID))
		f.clock.Advance(2 * time.Hour)

		// Catalog reload dropped the group while the player was offline
		f.groups.On("Group", int64(1)).Return(nil, false)
		require.NoError(t, f.svc.OnLogin(context.Background(), testPlayerID))

		assert.Equal(t, 0, f.notifier.readyCalls, "a dead hunt must not be announced as ready")
		assert.Contains(t, f.bus.typesSeen(), event.HuntForceReset)

		status, err := f.svc.GetStatus(context.Background(), testPlayerID)
		require.NoError(t, err)
		assert.Equal(t, domain.HuntPhaseIdle, status.Phase)
	})
}

func TestService_Claim(t *testing.T) {
	runToReady := func(t *testing.T, f *serviceFixture, offline time.Duration) {
		t.Helper()
		_, err := f.svc.Configure(context.Background(), testPlayerID, groupTarget())
		require.NoError(t, err)
		require.NoError(t, f.svc.OnLogout(context.Background(), testPlayerID))
		f.clock.Advance(offline)
		require.NoError(t, f.svc.OnLogin(context.Background(), testPlayerID))
	}

	t.Run("grants rewards and resets to idle", func(t *testing.T) {
		f := newServiceFixture(t)
		f.stubFreshPlayer()
		f.stubGroupTarget()
		f.players.On("GrantExperience", mock.Anything, testPlayerID, mock.Anything).Return(nil)
		f.players.On("GrantGold", mock.Anything, testPlayerID, mock.Anything).Return(nil)
		f.players.On("GrantItem", mock.Anything, testPlayerID, mock.Anything).Return(nil)

		runToReady(t, f, 3*time.Hour)

		result, err := f.svc.Claim(context.Background(), testPlayerID)
		require.NoError(t, err)

		assert.Equal(t, int64(3*3600), result.ElapsedSeconds)
		assert.Positive(t, result.Rewards.Kills)
		assert.Positive(t, result.Rewards.Exp)
		assert.NotEmpty(t, result.Summary)
		assert.Equal(t, int64(domain.DefaultMaxDailySeconds-3*3600), result.TimeLeftToday)
		assert.Equal(t, 1, f.notifier.claimedCalls)
		assert.Contains(t, f.bus.typesSeen(), event.HuntClaimed)

		status, err := f.svc.GetStatus(context.Background(), testPlayerID)
		require.NoError(t, err)
		assert.Equal(t, domain.HuntPhaseIdle, status.Phase)
	})

	t.Run("monster hunts draw from both drop tables", func(t *testing.T) {
		f := newServiceFixture(t)
		f.stubFreshPlayer()
		f.monsters.On("Monster", int64(101)).Return(testMonster(101), true)
		f.monsters.On("KillDrops", int64(101)).Return(nil)
		f.monsters.On("PercentDrops", int64(101)).Return([]domain.MonsterDrop{
			{ItemID: 7001, Chance: 10000, MinCount: 1, MaxCount: 1},
		})
		f.players.On("GrantExperience", mock.Anything, testPlayerID, mock.Anything).Return(nil)
		f.players.On("GrantGold", mock.Anything, testPlayerID, mock.Anything).Return(nil)
		f.players.On("GrantItem", mock.Anything, testPlayerID, mock.Anything).Return(nil)

		target := domain.HuntTarget{Kind: domain.TargetKindMonster, ID: 101}
		_, err := f.svc.Configure(context.Background(), testPlayerID, target)
		require.NoError(t, err)
		require.NoError(t, f.svc.OnLogout(context.Background(), testPlayerID))
		f.clock.Advance(6 * time.Hour)
		require.NoError(t, f.svc.OnLogin(context.Background(), testPlayerID))

		result, err := f.svc.Claim(context.Background(), testPlayerID)
		require.NoError(t, err)

		require.NotEmpty(t, result.Rewards.Drops, "percent-table drops must reach the claim")
		assert.Equal(t, int64(7001), result.Rewards.Drops[0].ItemID)
		f.monsters.AssertCalled(t, "PercentDrops", int64(101))
	})

	t.Run("publishes grant audit events", func(t *testing.T) {
		f := newServiceFixture(t)
		f.stubFreshPlayer()
		group := testGroup()
		group.Drops = []domain.GroupDrop{{ItemID: 5001, Chance: 10000, MinCount: 1, MaxCount: 1}}
		f.groups.On("Group", int64(1)).Return(group, true)
		f.monsters.On("Monster", int64(101)).Return(testMonster(101), true)
		f.monsters.On("Monster", int64(102)).Return(testMonster(102), true)
		f.players.On("GrantExperience", mock.Anything, testPlayerID, mock.Anything).Return(nil)
		f.players.On("GrantGold", mock.Anything, testPlayerID, mock.Anything).Return(nil)
		f.players.On("GrantItem", mock.Anything, testPlayerID, mock.Anything).Return(nil)

		runToReady(t, f, 6*time.Hour)

		result, err := f.svc.Claim(context.Background(), testPlayerID)
		require.NoError(t, err)

		require.NotEmpty(t, result.ItemsGranted)
		assert.Positive(t, result.Rewards.Gold)

		types := f.bus.typesSeen()
		assert.Contains(t, types, event.HuntGoldGranted)
		assert.Contains(t, types, event.HuntItemsGranted)
	})

	t.Run("claim with nothing ready fails", func(t *testing.T) {
		f := newServiceFixture(t)
		f.repo.On("GetHuntState", mock.Anything, testPlayerID).Return(nil, domain.ErrPlayerNotFound).Once()

		_, err := f.svc.Claim(context.Background(), testPlayerID)

		assert.ErrorIs(t, err, domain.ErrNothingToClaim)
	})

	t.Run("clips elapsed time to remaining daily quota", func(t *testing.T) {
		f := newServiceFixture(t)
		f.stubFreshPlayer()
		f.stubGroupTarget()
		f.players.On("GrantExperience", mock.Anything, testPlayerID, mock.Anything).Return(nil)
		f.players.On("GrantGold", mock.Anything, testPlayerID, mock.Anything).Return(nil)
		f.players.On("GrantItem", mock.Anything, testPlayerID, mock.Anything).Return(nil)

		runToReady(t, f, 12*time.Hour)

		result, err := f.svc.Claim(context.Background(), testPlayerID)
		require.NoError(t, err)

		assert.Equal(t, int64(domain.DefaultMaxDailySeconds), result.ElapsedSeconds)
		assert.Equal(t, int64(0), result.TimeLeftToday)
	})

	t.Run("vanished target force-resets without rewards", func(t *testing.T) {
		f := newServiceFixture(t)
		f.stubFreshPlayer()

		// Configure and login both resolve the group
		f.groups.On("Group", int64(1)).Return(testGroup(), true).Times(2)
		runToReady(t, f, time.Hour)
		// Catalog reload dropped the group between login and claim
		f.groups.On("Group", int64(1)).Return(nil, false)

		_, err := f.svc.Claim(context.Background(), testPlayerID)

		assert.ErrorIs(t, err, domain.ErrTargetVanished)
		assert.Contains(t, f.bus.typesSeen(), event.HuntForceReset)
		f.players.AssertNotCalled(t, "GrantExperience", mock.Anything, mock.Anything, mock.Anything)

		status, err := f.svc.GetStatus(context.Background(), testPlayerID)
		require.NoError(t, err)
		assert.Equal(t, domain.HuntPhaseIdle, status.Phase)
	})

	t.Run("inventory full truncates item grants but keeps exp and gold", func(t *testing.T) {
		f := newServiceFixture(t)
		f.stubFreshPlayer()
		f.stubGroupTarget()
		f.players.On("GrantExperience", mock.Anything, testPlayerID, mock.Anything).Return(nil)
		f.players.On("GrantGold", mock.Anything, testPlayerID, mock.Anything).Return(nil)
		f.players.On("GrantItem", mock.Anything, testPlayerID, mock.Anything).Return(domain.ErrInventoryFull)

		runToReady(t, f, 6*time.Hour)

		result, err := f.svc.Claim(context.Background(), testPlayerID)
		require.NoError(t, err)

		assert.True(t, result.InventoryFull)
		assert.Empty(t, result.ItemsGranted)
		assert.Positive(t, result.Rewards.Exp)
	})
}

func TestService_Stop(t *testing.T) {
	t.Run("stops a pending hunt and forfeits it", func(t *testing.T) {
		f := newServiceFixture(t)
		f.stubFreshPlayer()
		f.stubGroupTarget()

		_, err := f.svc.Configure(context.Background(), testPlayerID, groupTarget())
		require.NoError(t, err)

		stopped, err := f.svc.Stop(context.Background(), testPlayerID)
		require.NoError(t, err)
		assert.True(t, stopped)
		assert.Contains(t, f.bus.typesSeen(), event.HuntStopped)

		status, err := f.svc.GetStatus(context.Background(), testPlayerID)
		require.NoError(t, err)
		assert.Equal(t, domain.HuntPhaseIdle, status.Phase)
	})

	t.Run("stop with no hunt is a no-op", func(t *testing.T) {
		f := newServiceFixture(t)
		f.repo.On("GetHuntState", mock.Anything, testPlayerID).Return(nil, domain.ErrPlayerNotFound).Once()

		stopped, err := f.svc.Stop(context.Background(), testPlayerID)
		require.NoError(t, err)
		assert.False(t, stopped)
	})
}

func TestService_GetAvailableTargets(t *testing.T) {
	f := newServiceFixture(t)
	f.players.On("GetCombatSnapshot", mock.Anything, testPlayerID).Return(testCombat(), nil)
	summaries := []domain.GroupSummary{{ID: 1, Name: "orc_valley", MinLevel: 30}}
	f.groups.On("Available", 35, false).Return(summaries)

	got, err := f.svc.GetAvailableTargets(context.Background(), testPlayerID)

	require.NoError(t, err)
	assert.Equal(t, summaries, got)
}

func TestService_SetDailyLimit(t *testing.T) {
	t.Run("overrides the quota", func(t *testing.T) {
		f := newServiceFixture(t)
		f.repo.On("GetHuntState", mock.Anything, testPlayerID).Return(nil, domain.ErrPlayerNotFound).Once()
		f.repo.On("SaveHuntState", mock.Anything, mock.Anything).Return(nil)

		require.NoError(t, f.svc.SetDailyLimit(context.Background(), testPlayerID, 3600))

		status, err := f.svc.GetStatus(context.Background(), testPlayerID)
		require.NoError(t, err)
		assert.Equal(t, int64(3600), status.MaxTime)
	})

	t.Run("rejects out-of-range values", func(t *testing.T) {
		f := newServiceFixture(t)

		assert.Error(t, f.svc.SetDailyLimit(context.Background(), testPlayerID, 0))
		assert.Error(t, f.svc.SetDailyLimit(context.Background(), testPlayerID, hunt.MaxOfflineSeconds+1))
	})
}

func TestService_ResetPlayer(t *testing.T) {
	f := newServiceFixture(t)
	f.repo.On("GetHuntState", mock.Anything, testPlayerID).Return(nil, domain.ErrPlayerNotFound)
	f.repo.On("SaveHuntState", mock.Anything, mock.Anything).Return(nil)
	f.repo.On("DeleteHuntState", mock.Anything, testPlayerID).Return(nil)
	f.players.On("GetCombatSnapshot", mock.Anything, testPlayerID).Return(testCombat(), nil)
	f.stubGroupTarget()

	_, err := f.svc.Configure(context.Background(), testPlayerID, groupTarget())
	require.NoError(t, err)

	require.NoError(t, f.svc.ResetPlayer(context.Background(), testPlayerID))
	f.repo.AssertCalled(t, "DeleteHuntState", mock.Anything, testPlayerID)

	// Session evicted: the next read starts from a fresh record
	status, err := f.svc.GetStatus(context.Background(), testPlayerID)
	require.NoError(t, err)
	assert.Equal(t, domain.HuntPhaseIdle, status.Phase)
}

func TestService_SessionReload(t *testing.T) {
	// A persisted ReadyToClaim row with corrupt timestamps must force-reset on claim
	f := newServiceFixture(t)
	corrupt := &domain.HuntState{
		PlayerID:        testPlayerID,
		Target:          groupTarget(),
		Phase:           domain.HuntPhaseReadyToClaim,
		StartTime:       f.clock.Now(),
		EndTime:         f.clock.Now().Add(-time.Hour),
		MaxDailySeconds: domain.DefaultMaxDailySeconds,
	}
	f.repo.On("GetHuntState", mock.Anything, testPlayerID).Return(corrupt, nil).Once()
	f.repo.On("SaveHuntState", mock.Anything, mock.Anything).Return(nil)

	_, err := f.svc.Claim(context.Background(), testPlayerID)

	assert.ErrorIs(t, err, domain.ErrHuntStateCorrupt)
	assert.Contains(t, f.bus.typesSeen(), event.HuntForceReset)

	status, err := f.svc.GetStatus(context.Background(), testPlayerID)
	require.NoError(t, err)
	assert.Equal(t, domain.HuntPhaseIdle, status.Phase)
}
