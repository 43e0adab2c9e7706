package handler

import (
	"net/http"

	"spinx-engine/internal/model"

	"github.com/gin-gonic/gin"
)

// PlaceWager
// @Summary Place a single-play wager
// @Description Settles a coin, dice, wheel or lucky-number play: debits the stake, draws the outcome and credits any winnings
// @Tags games
// @Accept json
// @Produce json
// @Param account_id query int true "Account ID"
// @Param wager body model.WagerRequest true "Wager details"
// @Success 200 {object} model.WagerResponse
// @Failure 400 {object} model.ErrorResponse "Invalid wager or insufficient funds"
// @Failure 403 {object} model.ErrorResponse "Account suspended"
// @Router /wagers [post]
func (h *Handler) PlaceWager(c *gin.Context) {
	accountID, ok := accountIDQuery(c)
	if !ok {
		return
	}

	var req model.WagerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{
			Error: "Invalid request body",
			Code:  "INVALID_REQUEST",
		})
		return
	}

	resp, err := h.settlementService.PlaceWager(c.Request.Context(), accountID, &req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// StartMines
// @Summary Start a mines session
// @Description Debits the stake and opens a session; at most one active session per account
// @Tags games
// @Accept json
// @Produce json
// @Param account_id query int true "Account ID"
// @Param session body model.MinesStartRequest true "Session parameters"
// @Success 201 {object} model.MinesSessionResponse
// @Failure 400 {object} model.ErrorResponse "Invalid parameters or insufficient funds"
// @Failure 409 {object} model.ErrorResponse "Session already active"
// @Router /mines [post]
func (h *Handler) StartMines(c *gin.Context) {
	accountID, ok := accountIDQuery(c)
	if !ok {
		return
	}

	var req model.MinesStartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{
			Error: "Invalid request body",
			Code:  "INVALID_REQUEST",
		})
		return
	}

	resp, err := h.minesService.Start(c.Request.Context(), accountID, &req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// RevealMinesCell
// @Summary Reveal a cell
// @Description Opens one cell; a safe cell raises the multiplier, a mine busts the session
// @Tags games
// @Accept json
// @Produce json
// @Param account_id query int true "Account ID"
// @Param id path int true "Session ID"
// @Param cell body model.MinesRevealRequest true "Cell index"
// @Success 200 {object} model.MinesRevealResponse
// @Failure 404 {object} model.ErrorResponse "Session not found"
// @Failure 409 {object} model.ErrorResponse "Session finished or cell already revealed"
// @Router /mines/{id}/reveal [post]
func (h *Handler) RevealMinesCell(c *gin.Context) {
	accountID, ok := accountIDQuery(c)
	if !ok {
		return
	}

	sessionID, err := pathID(c)
	if err != nil {
		h.handleError(c, model.ErrSessionNotFound)
		return
	}

	var req model.MinesRevealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{
			Error: "Invalid request body",
			Code:  "INVALID_REQUEST",
		})
		return
	}

	resp, err := h.minesService.Reveal(c.Request.Context(), accountID, sessionID, req.Cell)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// CashoutMines
// @Summary Cash out a mines session
// @Description Finalizes the session and credits floor(stake x multiplier)
// @Tags games
// @Produce json
// @Param account_id query int true "Account ID"
// @Param id path int true "Session ID"
// @Success 200 {object} model.MinesCashoutResponse
// @Failure 404 {object} model.ErrorResponse "Session not found"
// @Failure 409 {object} model.ErrorResponse "Session finished"
// @Router /mines/{id}/cashout [post]
func (h *Handler) CashoutMines(c *gin.Context) {
	accountID, ok := accountIDQuery(c)
	if !ok {
		return
	}

	sessionID, err := pathID(c)
	if err != nil {
		h.handleError(c, model.ErrSessionNotFound)
		return
	}

	resp, err := h.minesService.Cashout(c.Request.Context(), accountID, sessionID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
