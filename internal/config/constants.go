package config

const (
	// Configuration file paths
	ConfigPathHuntGroups   = "configs/hunting/groups.json"
	ConfigPathHuntMonsters = "configs/hunting/monsters.json"

	// ConfigPathHuntCommands is the Lua chat command parser script
	ConfigPathHuntCommands = "configs/scripts/hunt_commands.lua"

	// DefaultDeadLetterPath is where exhausted event retries are appended
	DefaultDeadLetterPath = "logs/events_deadletter.jsonl"

	// DefaultEventRetentionDays bounds how long audit events stay in the database
	DefaultEventRetentionDays = 90
)
