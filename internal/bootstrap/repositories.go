package bootstrap

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/IdleHunt_Go/internal/database/postgres"
	"github.com/osse101/IdleHunt_Go/internal/repository"
)

// Repositories holds all repository implementations used by the application.
// This provides a centralized location for repository initialization and
// makes dependency injection clearer.
type Repositories struct {
	Hunt     repository.Hunt
	Player   repository.Player
	EventLog repository.EventLog
}

// InitializeRepositories creates all repository implementations against the
// shared connection pool.
func InitializeRepositories(dbPool *pgxpool.Pool) *Repositories {
	return &Repositories{
		Hunt:     postgres.NewHuntRepository(dbPool),
		Player:   postgres.NewPlayerRepository(dbPool),
		EventLog: postgres.NewEventLogRepository(dbPool),
	}
}
