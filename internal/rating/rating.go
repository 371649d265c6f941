package rating

import "math"

// Settings holds the rating tuning. Values come from the server config with
// these defaults.
type Settings struct {
	Starting     int
	KFactor      float64
	BotWinDelta  int
	BotLossDelta int
}

// DefaultSettings returns the standard ladder tuning: everyone starts at
// 1000 with K=32, and bot matches move a small fixed amount instead of
// running the full formula.
func DefaultSettings() Settings {
	return Settings{
		Starting:     1000,
		KFactor:      32,
		BotWinDelta:  15,
		BotLossDelta: -8,
	}
}

// Expected returns the expected score of a player rated ra against an
// opponent rated rb (standard logistic curve).
func Expected(ra, rb int) float64 {
	return 1.0 / (1.0 + math.Pow(10, float64(rb-ra)/400.0))
}

// Apply returns the rating deltas for a decisive result. The deltas are
// computed from a single rounded quantity so they are exactly equal and
// opposite: the winner's gain shrinks as the gap in their favor grows, and
// an upset transfers more.
func (s Settings) Apply(winnerRating, loserRating int) (dWinner, dLoser int) {
	d := int(math.Round(s.KFactor * (1.0 - Expected(winnerRating, loserRating))))
	return d, -d
}

// ApplyDraw returns the deltas for a draw (actual score 0.5 both sides).
// Equal ratings yield zero movement.
func (s Settings) ApplyDraw(ra, rb int) (da, db int) {
	d := int(math.Round(s.KFactor * (0.5 - Expected(ra, rb))))
	return d, -d
}

// Clamp keeps a rating non-negative.
func Clamp(r int) int {
	if r < 0 {
		return 0
	}
	return r
}

// Tier derives the display rank from a rating using fixed ascending
// thresholds. Purely presentational; it never feeds back into the number.
func Tier(r int) string {
	switch {
	case r >= 1900:
		return "Apex"
	case r >= 1700:
		return "Royal"
	case r >= 1500:
		return "Warrior"
	case r >= 1300:
		return "Scuttler"
	case r >= 1100:
		return "Nymph"
	default:
		return "Grub"
	}
}
