package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/roachygames/battle-arena/internal/constants"
	"github.com/roachygames/battle-arena/internal/logging"
	"github.com/roachygames/battle-arena/internal/rating"
)

const (
	defaultLeaderboardSize = 10
	maxLeaderboardSize     = 100
)

// GetRoster returns the unit pool available for team selection.
func (h *BattleHandler) GetRoster(c *gin.Context) {
	templates, err := h.repo.GetUnitTemplates()
	if err != nil {
		logging.Error(constants.ErrFailedFetchRoster, err, nil)
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedFetchRoster})
		return
	}
	c.JSON(http.StatusOK, templates)
}

// GetPlayerStats returns the caller's rating row plus derived tier and
// win rate. First reference creates the row at the starting rating.
func (h *BattleHandler) GetPlayerStats(c *gin.Context) {
	pr, err := h.repo.EnsureRating(playerID(c))
	if err != nil {
		logging.Error(constants.ErrFailedFetchStats, err, logging.Fields{constants.LogFieldPlayerID: playerID(c)})
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedFetchStats})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"player_id":   pr.PlayerID,
		"rating":      pr.Rating,
		"tier":        rating.Tier(pr.Rating),
		"wins":        pr.Wins,
		"losses":      pr.Losses,
		"draws":       pr.Draws,
		"total_games": pr.TotalGames(),
		"win_rate":    pr.WinRate(),
	})
}

// GetLeaderboard returns the top rated players. The optional `limit` query
// parameter defaults to 10 and is capped at 100.
func (h *BattleHandler) GetLeaderboard(c *gin.Context) {
	limit := defaultLeaderboardSize
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
			return
		}
		limit = n
	}
	if limit > maxLeaderboardSize {
		limit = maxLeaderboardSize
	}

	rows, err := h.repo.GetTopPlayers(limit)
	if err != nil {
		logging.Error(constants.ErrFailedFetchLeaderboard, err, nil)
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedFetchLeaderboard})
		return
	}

	type entry struct {
		Rank     int    `json:"rank"`
		PlayerID string `json:"player_id"`
		Rating   int    `json:"rating"`
		Tier     string `json:"tier"`
		Wins     int    `json:"wins"`
		Losses   int    `json:"losses"`
		Draws    int    `json:"draws"`
	}
	out := make([]entry, 0, len(rows))
	for i, r := range rows {
		out = append(out, entry{
			Rank:     i + 1,
			PlayerID: r.PlayerID,
			Rating:   r.Rating,
			Tier:     rating.Tier(r.Rating),
			Wins:     r.Wins,
			Losses:   r.Losses,
			Draws:    r.Draws,
		})
	}
	c.JSON(http.StatusOK, out)
}
