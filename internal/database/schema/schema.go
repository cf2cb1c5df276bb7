package schema

// SchemaSQL contains the full database schema initialization script, used by
// the dev bootstrap path. Production rollout goes through the goose
// migrations under migrations/.
const SchemaSQL = `
-- Players

CREATE TABLE IF NOT EXISTS players (
    player_id BIGINT PRIMARY KEY,
    name VARCHAR(64) UNIQUE NOT NULL,
    level INTEGER NOT NULL DEFAULT 1,
    attack_grade INTEGER NOT NULL DEFAULT 0,
    attack_speed INTEGER NOT NULL DEFAULT 100,
    weapon_damage_min INTEGER NOT NULL DEFAULT 0,
    weapon_damage_max INTEGER NOT NULL DEFAULT 0,
    premium BOOLEAN NOT NULL DEFAULT FALSE,
    exp BIGINT NOT NULL DEFAULT 0,
    gold BIGINT NOT NULL DEFAULT 0,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

-- Player item inventory, one row per stack

CREATE TABLE IF NOT EXISTS player_items (
    player_id BIGINT NOT NULL REFERENCES players(player_id) ON DELETE CASCADE,
    item_id BIGINT NOT NULL,
    count INTEGER NOT NULL DEFAULT 0,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    PRIMARY KEY (player_id, item_id)
);

-- Idle hunt state, one row per player

CREATE TABLE IF NOT EXISTS idle_hunt_state (
    player_id BIGINT PRIMARY KEY REFERENCES players(player_id) ON DELETE CASCADE,
    target_kind VARCHAR(16) NOT NULL DEFAULT '',
    target_id BIGINT NOT NULL DEFAULT 0,
    phase VARCHAR(16) NOT NULL DEFAULT 'idle',
    start_time TIMESTAMPTZ,
    end_time TIMESTAMPTZ,
    last_claim_time TIMESTAMPTZ,
    total_time_today BIGINT NOT NULL DEFAULT 0,
    last_reset_date TIMESTAMPTZ,
    max_daily_seconds BIGINT NOT NULL DEFAULT 28800,
    updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

-- Event audit log

CREATE TABLE IF NOT EXISTS events (
    id BIGSERIAL PRIMARY KEY,
    event_type VARCHAR(100) NOT NULL,
    player_id BIGINT,
    payload JSONB NOT NULL DEFAULT '{}',
    metadata JSONB,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_events_player ON events(player_id, created_at DESC);
CREATE INDEX IF NOT EXISTS idx_events_type ON events(event_type, created_at DESC);
`
