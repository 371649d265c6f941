package game

import (
	"math/rand"
	"strings"
	"sync"
	"time"

	"gorm.io/gorm"
)

// SkillType is a string alias for the closed set of skill types known to the
// combat resolver. Using a dedicated type instead of plain string makes code
// safer and self-documenting.
type SkillType string

const (
	SkillStrike SkillType = "STRIKE"
	SkillPierce SkillType = "PIERCE"
	SkillGuard  SkillType = "GUARD"
	SkillBurst  SkillType = "BURST"
	SkillFocus  SkillType = "FOCUS"
)

// KnownSkillTypes lists every valid skill type; config validation rejects
// anything outside this set.
var KnownSkillTypes = []SkillType{SkillStrike, SkillPierce, SkillGuard, SkillBurst, SkillFocus}

func (t SkillType) Valid() bool {
	for _, k := range KnownSkillTypes {
		if t == k {
			return true
		}
	}
	return false
}

// Skill is an immutable template shared by reference across units. It carries
// no per-battle mutable state.
type Skill struct {
	Name                   string    `json:"name" gorm:"-"`
	Type                   SkillType `json:"type" gorm:"-"`
	Multiplier             float64   `json:"multiplier" gorm:"-"`
	DamageReductionPercent int       `json:"damage_reduction_percent" gorm:"-"`
	AllyHealPercent        int       `json:"ally_heal_percent" gorm:"-"`
}

// UnitTemplate is a battlable unit archetype. Only identity fields are
// persisted; stats and skills are configured via the server config
// (battle_config.json) and marked with `gorm:"-"` so GORM ignores them for
// schema purposes while keeping them available in-memory and in JSON
// responses. The database exists to assign stable template IDs.
type UnitTemplate struct {
	gorm.Model
	Name      string `json:"name" gorm:"uniqueIndex"`
	Class     string `json:"class"`
	Rarity    string `json:"rarity"`
	HitPoints int    `json:"hp" gorm:"-"`
	Attack    int    `json:"atk" gorm:"-"`
	Defense   int    `json:"def" gorm:"-"`
	Speed     int    `json:"spd" gorm:"-"`
	Skill     Skill  `json:"skill_a" gorm:"-"`
	SkillB    Skill  `json:"skill_b" gorm:"-"`
}

func (UnitTemplate) TableName() string { return "unit_templates" }

// Stats is the mutable stat block of a unit inside one match.
type Stats struct {
	HP    int `json:"hp"`
	MaxHP int `json:"max_hp"`
	Atk   int `json:"atk"`
	Def   int `json:"def"`
	Spd   int `json:"spd"`
}

// BattleUnit is a per-match instance of a template. Instance IDs are assigned
// fresh per match so the same template can appear in multiple concurrent
// matches without aliasing. Created at team submit, mutated each turn and
// discarded with the match.
type BattleUnit struct {
	TemplateID uint   `json:"template_id"`
	InstanceID string `json:"instance_id"`
	Name       string `json:"name"`
	Class      string `json:"class"`
	Rarity     string `json:"rarity"`
	Stats      Stats  `json:"stats"`
	SkillA     Skill  `json:"skill_a"`
	SkillB     Skill  `json:"skill_b"`
	IsKO       bool   `json:"is_ko"`
}

// SkillSlot selects one of a unit's two skills.
type SkillSlot string

const (
	SlotA SkillSlot = "A"
	SlotB SkillSlot = "B"
)

// TurnAction is one side's submitted action for the current turn.
type TurnAction struct {
	SkillSlot SkillSlot `json:"skill_slot"`
}

// PlayerState is one side of a match: the ordered team, the index of the
// currently active unit, the bounded momentum counter and the count of this
// side's units knocked out so far.
type PlayerState struct {
	PlayerID      string       `json:"player_id"`
	Team          []BattleUnit `json:"team"`
	ActiveIndex   int          `json:"active_index"`
	Momentum      int          `json:"momentum"`
	KOCount       int          `json:"ko_count"`
	TeamSubmitted bool         `json:"team_submitted"`
	// Pending is intentionally excluded from JSON so the opponent's choice
	// is never leaked before resolution.
	Pending *TurnAction `json:"-"`
}

// ActiveUnit returns the currently active unit, or nil for an empty team.
func (p *PlayerState) ActiveUnit() *BattleUnit {
	if p.ActiveIndex < 0 || p.ActiveIndex >= len(p.Team) {
		return nil
	}
	return &p.Team[p.ActiveIndex]
}

// AdvanceActive moves the active index to the lowest-index unit that is not
// knocked out. This is automatic substitution, not a player choice.
func (p *PlayerState) AdvanceActive() {
	for i := range p.Team {
		if !p.Team[i].IsKO {
			p.ActiveIndex = i
			return
		}
	}
}

// AddMomentum applies a delta and clamps the counter to [0, max].
func (p *PlayerState) AddMomentum(delta, max int) {
	p.Momentum += delta
	if p.Momentum < 0 {
		p.Momentum = 0
	}
	if p.Momentum > max {
		p.Momentum = max
	}
}

// TeamHPFraction returns the aggregate hp/maxHp fraction across the team,
// used to decide turn-cap results.
func (p *PlayerState) TeamHPFraction() float64 {
	hp, max := 0, 0
	for i := range p.Team {
		hp += p.Team[i].Stats.HP
		max += p.Team[i].Stats.MaxHP
	}
	if max == 0 {
		return 0
	}
	return float64(hp) / float64(max)
}

// CounterClass is the qualitative outcome of one skill type resolving
// against another.
type CounterClass string

const (
	CounterNone      CounterClass = "NONE"
	CounterAdvantage CounterClass = "ADVANTAGE"
	CounterCountered CounterClass = "COUNTERED"
	CounterMutual    CounterClass = "MUTUAL"
)

// SideResult reports one side's half of a resolved exchange.
type SideResult struct {
	PlayerID       string       `json:"player_id"`
	UnitInstanceID string       `json:"unit_instance_id"`
	SkillName      string       `json:"skill_name"`
	SkillType      SkillType    `json:"skill_type"`
	Damage         int          `json:"damage"`
	Counter        CounterClass `json:"counter"`
	Crit           bool         `json:"crit"`
	Heal           int          `json:"heal"`
	MomentumDelta  int          `json:"momentum_delta"`
	// Suppressed is true when this side's damage was computed but not
	// applied because the opposing unit used a FOCUS skill.
	Suppressed bool `json:"suppressed"`
}

// KOEvent records a unit reaching zero hp during one exchange.
type KOEvent struct {
	PlayerID       string `json:"player_id"`
	UnitInstanceID string `json:"unit_instance_id"`
}

// TurnResult is the structured outcome of one simultaneous exchange,
// appended to the match history.
type TurnResult struct {
	Turn  int           `json:"turn"`
	Sides [2]SideResult `json:"sides"`
	KOs   []KOEvent     `json:"kos"`
}

type MatchStatus string

const (
	StatusTeamSelect MatchStatus = "team_select"
	StatusActive     MatchStatus = "active"
	StatusCompleted  MatchStatus = "completed"
)

type WinReason string

const (
	ReasonKO      WinReason = "ko"
	ReasonTurns   WinReason = "turns"
	ReasonForfeit WinReason = "forfeit"
)

// Rules is the battle tuning snapshot taken at match creation so config
// reloads never change a running match.
type Rules struct {
	TeamSize          int     `json:"team_size"`
	MaxTurns          int     `json:"max_turns"`
	MomentumMax       int     `json:"momentum_max"`
	CritChancePercent int     `json:"crit_chance_percent"`
	CritMultiplier    float64 `json:"crit_multiplier"`
}

// Match owns one battle's full lifecycle. Every mutation must happen with
// the match mutex held so concurrent submissions from the two sides cannot
// race on shared state.
type Match struct {
	mu sync.Mutex

	ID           string         `json:"id"`
	Players      [2]*PlayerState `json:"players"`
	Turn         int            `json:"turn"`
	Status       MatchStatus    `json:"status"`
	Winner       string         `json:"winner"`
	Reason       WinReason      `json:"reason"`
	History      []TurnResult   `json:"history"`
	CreatedAt    time.Time      `json:"created_at"`
	LastActionAt time.Time      `json:"last_action_at"`
	IsBot        bool           `json:"is_bot"`
	StatsCounted bool           `json:"-"`
	Rules        Rules          `json:"rules"`

	// RNG drives the crit roll. Seeded at creation; tests inject a fixed
	// seed for reproducible outcomes.
	RNG *rand.Rand `json:"-"`
}

// NewMatch creates a match in team_select with both sides registered.
func NewMatch(id string, p1, p2 *PlayerState, rules Rules, seed int64) *Match {
	now := time.Now()
	return &Match{
		ID:           id,
		Players:      [2]*PlayerState{p1, p2},
		Status:       StatusTeamSelect,
		History:      make([]TurnResult, 0, 8),
		CreatedAt:    now,
		LastActionAt: now,
		Rules:        rules,
		RNG:          rand.New(rand.NewSource(seed)),
	}
}

func (m *Match) Lock()   { m.mu.Lock() }
func (m *Match) Unlock() { m.mu.Unlock() }

// Side returns the state for the given player id, or nil.
func (m *Match) Side(playerID string) *PlayerState {
	for _, p := range m.Players {
		if p != nil && p.PlayerID == playerID {
			return p
		}
	}
	return nil
}

// OpponentOf returns the other side's state, or nil if the id is unknown.
func (m *Match) OpponentOf(playerID string) *PlayerState {
	if m.Players[0] != nil && m.Players[0].PlayerID == playerID {
		return m.Players[1]
	}
	if m.Players[1] != nil && m.Players[1].PlayerID == playerID {
		return m.Players[0]
	}
	return nil
}

func (m *Match) IsParticipant(playerID string) bool {
	return m.Side(playerID) != nil
}

// BotIDPrefix marks synthetic players controlled by the bot policy.
const BotIDPrefix = "bot-"

func IsBotID(playerID string) bool {
	return strings.HasPrefix(playerID, BotIDPrefix)
}

// QueueEntry exists only while a player is waiting for an opponent.
type QueueEntry struct {
	PlayerID   string    `json:"player_id"`
	Rating     int       `json:"rating"`
	EnqueuedAt time.Time `json:"enqueued_at"`
}

// PlayerRating stores unique player identity and aggregate ranked stats.
// Rows are created lazily the first time a player is referenced.
type PlayerRating struct {
	gorm.Model
	PlayerID string `json:"player_id" gorm:"uniqueIndex"`
	Rating   int    `json:"rating"`
	Wins     int    `json:"wins"`
	Losses   int    `json:"losses"`
	Draws    int    `json:"draws"`
}

func (PlayerRating) TableName() string { return "player_ratings" }

func (r *PlayerRating) TotalGames() int {
	return r.Wins + r.Losses + r.Draws
}

func (r *PlayerRating) WinRate() float64 {
	total := r.TotalGames()
	if total == 0 {
		return 0
	}
	return float64(r.Wins) / float64(total)
}
