package constants

// Centralized constants for headers, env keys and route paths.
const (
	// Environment variable keys
	EnvConfigPath = "ARENA_CONFIG"
	EnvDBPath     = "ARENA_DB"

	// HTTP headers
	HeaderPlayerID = "X-Player-ID"
)

// Routes used by the backend router
const (
	RouteAPIPrefix     = "/api"
	RouteQueueJoin     = "/queue/join"
	RouteQueueLeave    = "/queue/leave"
	RouteQueueStatus   = "/queue/status"
	RouteRoster        = "/roster"
	RoutePlayerStats   = "/player-stats"
	RouteLeaderboard   = "/leaderboard"
	RouteBattleByID    = "/battles/:battleID"
	RouteBattleTeam    = "/battles/:battleID/team"
	RouteBattleTurn    = "/battles/:battleID/turn"
	RouteBattleForfeit = "/battles/:battleID/forfeit"
)

// Common JSON response keys
const (
	JSONKeyError = "error"
)

// Common error messages used across API handlers
const (
	ErrInvalidRequest   = "Invalid request"
	ErrPlayerIDRequired = "X-Player-ID header is required"
	ErrInvalidBattleID  = "Invalid battle ID"
	ErrBattleNotFound   = "Battle not found"

	ErrFailedFetchRoster      = "Failed to fetch roster"
	ErrFailedFetchStats       = "Failed to fetch stats"
	ErrFailedFetchLeaderboard = "Failed to fetch leaderboard"
	ErrFailedJoinQueue        = "Failed to join queue"

	ErrNotAParticipant        = "Player is not a participant of this battle"
	ErrWrongTeamSize          = "Team must have exactly the configured number of units"
	ErrTeamAlreadySubmitted   = "Team already submitted"
	ErrBattleNotInTeamSelect  = "Battle is not in team selection"
	ErrBattleNotActive        = "Battle is not active"
	ErrBattleAlreadyCompleted = "Battle already completed"
	ErrActionAlreadyPending   = "Action already submitted for this turn"
	ErrUnknownSkillSlot       = "Unknown skill slot"
	ErrUnknownUnit            = "Unknown unit in team"
	ErrFailedStoreAction      = "Failed to store action"
	ErrFailedUpdateStats      = "Failed to update stats"
)

// Logging field names
const (
	LogFieldBattleID = "battle_id"
	LogFieldPlayerID = "player_id"
	LogFieldTurn     = "turn"
	LogFieldWinner   = "winner"
	LogFieldReason   = "reason"
	LogFieldAddr     = "addr"
)
