package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/roachygames/battle-arena/internal/constants"
	"github.com/roachygames/battle-arena/internal/game"
	"github.com/roachygames/battle-arena/internal/logging"
	"github.com/roachygames/battle-arena/internal/service"
)

type TeamRequest struct {
	TemplateIDs []uint `json:"template_ids"`
}

type TurnRequest struct {
	SkillSlot string `json:"skill_slot"`
}

// battleID validates the path parameter; battle ids are UUIDs.
func battleID(c *gin.Context) (string, bool) {
	id := c.Param("battleID")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidBattleID})
		return "", false
	}
	return id, true
}

// SubmitTeam assigns the caller's team during team selection.
func (h *BattleHandler) SubmitTeam(c *gin.Context) {
	id, ok := battleID(c)
	if !ok {
		return
	}
	var req TeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}

	status, err := service.SubmitTeam(h.reg, h.repo, id, playerID(c), req.TemplateIDs)
	if err != nil {
		switch err {
		case service.ErrMatchNotFound:
			c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrBattleNotFound})
		case service.ErrNotParticipant:
			c.JSON(http.StatusForbidden, gin.H{constants.JSONKeyError: constants.ErrNotAParticipant})
		case service.ErrMatchNotInTeamSelect:
			c.JSON(http.StatusConflict, gin.H{constants.JSONKeyError: constants.ErrBattleNotInTeamSelect})
		case service.ErrTeamAlreadySubmitted:
			c.JSON(http.StatusConflict, gin.H{constants.JSONKeyError: constants.ErrTeamAlreadySubmitted})
		case service.ErrWrongTeamSize:
			c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrWrongTeamSize})
		case service.ErrUnknownUnit:
			c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrUnknownUnit})
		default:
			logging.Error(constants.ErrFailedStoreAction, err, logging.Fields{constants.LogFieldBattleID: id})
			c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedStoreAction})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"match_status": status})
}

// SubmitTurn stores the caller's action for the current turn and returns
// the resolution when both sides are in.
func (h *BattleHandler) SubmitTurn(c *gin.Context) {
	id, ok := battleID(c)
	if !ok {
		return
	}
	var req TurnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}

	action := game.TurnAction{SkillSlot: game.SkillSlot(req.SkillSlot)}
	outcome, err := service.SubmitTurn(h.reg, h.repo, h.ratingCfg, id, playerID(c), action)
	if err != nil {
		switch err {
		case service.ErrMatchNotFound:
			c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrBattleNotFound})
		case service.ErrNotParticipant:
			c.JSON(http.StatusForbidden, gin.H{constants.JSONKeyError: constants.ErrNotAParticipant})
		case service.ErrMatchCompleted:
			c.JSON(http.StatusConflict, gin.H{constants.JSONKeyError: constants.ErrBattleAlreadyCompleted})
		case service.ErrMatchNotActive:
			c.JSON(http.StatusConflict, gin.H{constants.JSONKeyError: constants.ErrBattleNotActive})
		case service.ErrActionAlreadyPending:
			c.JSON(http.StatusConflict, gin.H{constants.JSONKeyError: constants.ErrActionAlreadyPending})
		case service.ErrInvalidAction:
			c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrUnknownSkillSlot})
		default:
			logging.Error(constants.ErrFailedStoreAction, err, logging.Fields{constants.LogFieldBattleID: id})
			c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedStoreAction})
		}
		return
	}
	c.JSON(http.StatusOK, outcome)
}

// GetBattle returns the redacted match summary plus whether the caller owes
// an action this turn.
func (h *BattleHandler) GetBattle(c *gin.Context) {
	id, ok := battleID(c)
	if !ok {
		return
	}
	summary, hasPending, err := service.GetMatch(h.reg, id, playerID(c))
	if err != nil {
		switch err {
		case service.ErrMatchNotFound:
			c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrBattleNotFound})
		case service.ErrNotParticipant:
			c.JSON(http.StatusForbidden, gin.H{constants.JSONKeyError: constants.ErrNotAParticipant})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrBattleNotFound})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"match": summary, "has_pending_action": hasPending})
}

// Forfeit completes the battle immediately with the caller's opponent as
// winner.
func (h *BattleHandler) Forfeit(c *gin.Context) {
	id, ok := battleID(c)
	if !ok {
		return
	}
	winner, err := service.Forfeit(h.reg, h.repo, h.ratingCfg, id, playerID(c))
	if err != nil {
		switch err {
		case service.ErrMatchNotFound:
			c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrBattleNotFound})
		case service.ErrNotParticipant:
			c.JSON(http.StatusForbidden, gin.H{constants.JSONKeyError: constants.ErrNotAParticipant})
		case service.ErrMatchCompleted:
			c.JSON(http.StatusConflict, gin.H{constants.JSONKeyError: constants.ErrBattleAlreadyCompleted})
		default:
			logging.Error(constants.ErrFailedStoreAction, err, logging.Fields{constants.LogFieldBattleID: id})
			c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedStoreAction})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"winner": winner})
}
