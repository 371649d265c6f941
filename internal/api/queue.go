package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/roachygames/battle-arena/internal/constants"
	"github.com/roachygames/battle-arena/internal/logging"
	"github.com/roachygames/battle-arena/internal/service"
)

// JoinQueue enqueues the caller or pairs them with a waiting opponent.
func (h *BattleHandler) JoinQueue(c *gin.Context) {
	res, err := service.JoinQueue(h.reg, h.repo, h.queueCfg, h.rules, playerID(c))
	if err != nil {
		switch err {
		case service.ErrInvalidPlayerID:
			c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrPlayerIDRequired})
		default:
			logging.Error(constants.ErrFailedJoinQueue, err, logging.Fields{constants.LogFieldPlayerID: playerID(c)})
			c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedJoinQueue})
		}
		return
	}
	c.JSON(http.StatusOK, res)
}

// LeaveQueue removes the caller from the queue; leaving while absent is not
// an error.
func (h *BattleHandler) LeaveQueue(c *gin.Context) {
	if err := service.LeaveQueue(h.reg, playerID(c)); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrPlayerIDRequired})
		return
	}
	c.JSON(http.StatusOK, gin.H{})
}

// QueueStatus reports pairing progress and escalates long waits into a bot
// match.
func (h *BattleHandler) QueueStatus(c *gin.Context) {
	res, err := service.CheckQueue(h.reg, h.repo, h.queueCfg, h.rules, playerID(c))
	if err != nil {
		switch err {
		case service.ErrInvalidPlayerID:
			c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrPlayerIDRequired})
		default:
			logging.Error(constants.ErrFailedJoinQueue, err, logging.Fields{constants.LogFieldPlayerID: playerID(c)})
			c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedJoinQueue})
		}
		return
	}
	c.JSON(http.StatusOK, res)
}
